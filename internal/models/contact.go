package models

import "time"

// Role identifies who is reaching out through the contact form.
type Role string

const (
	RolePeleador   Role = "peleador"
	RoleArbitro    Role = "arbitro"
	RoleEntrenador Role = "entrenador"
	RoleClub       Role = "club"
	RoleFederacion Role = "federacion"
	RoleOtros      Role = "otros"
)

// ParseRole coerces arbitrary input to a known role. Unknown or empty values
// collapse to "otros" at this boundary only; a Role held in memory is always
// one of the six members.
func ParseRole(raw string) Role {
	switch Role(raw) {
	case RolePeleador, RoleArbitro, RoleEntrenador, RoleClub, RoleFederacion, RoleOtros:
		return Role(raw)
	default:
		return RoleOtros
	}
}

// Label returns the display label for the role, used in notification bodies.
func (r Role) Label() string {
	switch r {
	case RolePeleador:
		return "Peleador"
	case RoleArbitro:
		return "Árbitro"
	case RoleEntrenador:
		return "Entrenador"
	case RoleClub:
		return "Club"
	case RoleFederacion:
		return "Federación"
	case RoleOtros:
		return "Otros"
	default:
		return "Otros"
	}
}

// ContactSubmission is the canonical contact form record after normalization.
type ContactSubmission struct {
	Role         Role   `json:"role"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Organization string `json:"organization"`
	City         string `json:"city"`
	Country      string `json:"country"`
	Message      string `json:"message"`
}

// HasRequiredFields reports whether the fields the server insists on are
// present. Everything else is validated client-side.
func (c *ContactSubmission) HasRequiredFields() bool {
	return c.Name != "" && c.Email != "" && c.Message != ""
}

// RawContactPayload matches the wire shape of the contact form, including the
// Spanish field aliases legacy embeds on the site still send.
type RawContactPayload struct {
	Role         string `json:"role"`
	Name         string `json:"name"`
	Nombre       string `json:"nombre"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Telefono     string `json:"telefono"`
	Organization string `json:"organization"`
	City         string `json:"city"`
	Country      string `json:"country"`
	Message      string `json:"message"`
	Mensaje      string `json:"mensaje"`

	// Optional spam-protection token; verified only when reCAPTCHA is
	// configured.
	CaptchaToken string `json:"captcha_token"`
}

// SubmitResponse is the uniform response body for both public form endpoints.
type SubmitResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// ContactInquiry is the persisted form of a contact submission.
type ContactInquiry struct {
	ID         int64             `json:"id"`
	Reference  string            `json:"reference"`
	Submission ContactSubmission `json:"submission"`
	Status     SubmissionStatus  `json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}
