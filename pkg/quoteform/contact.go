package quoteform

import (
	"github.com/go-playground/validator/v10"

	"github.com/profefranko/profefranko-api/internal/models"
)

var contactValidate = validator.New()

// contactSchema mirrors the contact form's client-side rules. Organization is
// the only optional field.
type contactSchema struct {
	Name    string `validate:"min=2"`
	Email   string `validate:"required,email"`
	Phone   string `validate:"min=8"`
	City    string `validate:"min=2"`
	Country string `validate:"min=2"`
	Message string `validate:"min=10"`
}

// Per-field messages shown next to the offending control, in the site's
// language.
var contactMessages = map[string]string{
	"Name":    "El nombre debe tener al menos 2 caracteres",
	"Email":   "Email inválido",
	"Phone":   "Teléfono inválido",
	"City":    "La ciudad es requerida",
	"Country": "El país es requerido",
	"Message": "El mensaje debe tener al menos 10 caracteres",
}

var contactFieldNames = map[string]string{
	"Name":    "name",
	"Email":   "email",
	"Phone":   "phone",
	"City":    "city",
	"Country": "country",
	"Message": "message",
}

// Contact holds the contact form state. Unlike the quote wizard it is a
// single-step form validated as a whole before submission.
type Contact struct {
	record models.ContactSubmission
}

// NewContact creates an empty contact form with the site's defaults.
func NewContact() *Contact {
	return &Contact{
		record: models.ContactSubmission{
			Role:    models.RoleOtros,
			Country: "Chile",
		},
	}
}

// Record returns a copy of the current submission record.
func (f *Contact) Record() models.ContactSubmission {
	return f.record
}

// SetField sets exactly one field from its control value. The role select
// goes through ParseRole so the record never holds an unknown role.
func (f *Contact) SetField(name, value string) {
	switch name {
	case "role":
		f.record.Role = models.ParseRole(value)
	case "name":
		f.record.Name = value
	case "email":
		f.record.Email = value
	case "phone":
		f.record.Phone = value
	case "organization":
		f.record.Organization = value
	case "city":
		f.record.City = value
	case "country":
		f.record.Country = value
	case "message":
		f.record.Message = value
	}
}

// Validate checks every field and returns a field-to-message map, empty when
// the form is submittable.
func (f *Contact) Validate() map[string]string {
	schema := contactSchema{
		Name:    f.record.Name,
		Email:   f.record.Email,
		Phone:   f.record.Phone,
		City:    f.record.City,
		Country: f.record.Country,
		Message: f.record.Message,
	}

	problems := make(map[string]string)
	if err := contactValidate.Struct(schema); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors, ok := err.(validator.ValidationErrors); ok {
			fieldErrs = errors
		}
		for _, fe := range fieldErrs {
			problems[contactFieldNames[fe.StructField()]] = contactMessages[fe.StructField()]
		}
	}
	return problems
}

// Valid reports whether the form passes every client-side rule.
func (f *Contact) Valid() bool {
	return len(f.Validate()) == 0
}

// Reset clears the form after a successful submission, keeping the role and
// country selections the way the site does.
func (f *Contact) Reset() {
	role := f.record.Role
	country := f.record.Country
	f.record = models.ContactSubmission{
		Role:    role,
		Country: country,
	}
}
