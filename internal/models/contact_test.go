package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		input string
		want  Role
	}{
		{input: "peleador", want: RolePeleador},
		{input: "arbitro", want: RoleArbitro},
		{input: "entrenador", want: RoleEntrenador},
		{input: "club", want: RoleClub},
		{input: "federacion", want: RoleFederacion},
		{input: "otros", want: RoleOtros},
		{input: "", want: RoleOtros},
		{input: "promotor", want: RoleOtros},
		{input: "PELEADOR", want: RoleOtros},
	}

	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRole(tt.input))
		})
	}
}

func TestRoleLabel(t *testing.T) {
	labels := map[Role]string{
		RolePeleador:   "Peleador",
		RoleArbitro:    "Árbitro",
		RoleEntrenador: "Entrenador",
		RoleClub:       "Club",
		RoleFederacion: "Federación",
		RoleOtros:      "Otros",
	}
	for role, want := range labels {
		assert.Equal(t, want, role.Label())
	}
}

func TestHasRequiredFields(t *testing.T) {
	sub := ContactSubmission{Name: "José", Email: "jose@example.com", Message: "Hola, quisiera más información."}
	assert.True(t, sub.HasRequiredFields())

	for _, clear := range []func(*ContactSubmission){
		func(s *ContactSubmission) { s.Name = "" },
		func(s *ContactSubmission) { s.Email = "" },
		func(s *ContactSubmission) { s.Message = "" },
	} {
		incomplete := sub
		clear(&incomplete)
		assert.False(t, incomplete.HasRequiredFields())
	}

	// Phone, organization, city and country are not required server-side
	minimal := ContactSubmission{Name: "a", Email: "b", Message: "c"}
	assert.True(t, minimal.HasRequiredFields())
}

func TestValidSubmissionStatus(t *testing.T) {
	for _, status := range []string{"new", "contacted", "quoted", "closed", "declined"} {
		assert.True(t, ValidSubmissionStatus(status), status)
	}
	assert.False(t, ValidSubmissionStatus("archived"))
	assert.False(t, ValidSubmissionStatus(""))
	assert.False(t, ValidSubmissionStatus("New"))
}
