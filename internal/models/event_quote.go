package models

import "time"

// EventType classifies the boxing event being quoted.
type EventType string

const (
	EventTypeAmateur       EventType = "amateur"
	EventTypeProfesional   EventType = "profesional"
	EventTypeExhibicion    EventType = "exhibicion"
	EventTypeEntrenamiento EventType = "entrenamiento"
)

// Label returns the display label for the event type. Unknown values render
// "-" like any other absent event field.
func (t EventType) Label() string {
	switch t {
	case EventTypeAmateur:
		return "Amateur"
	case EventTypeProfesional:
		return "Profesional"
	case EventTypeExhibicion:
		return "Exhibición"
	case EventTypeEntrenamiento:
		return "Entrenamiento/Sparring"
	default:
		return "-"
	}
}

// BudgetRanges are the selectable budget brackets, in USD.
var BudgetRanges = []string{
	"0-5000 USD",
	"5000-10000 USD",
	"10000-25000 USD",
	"25000-50000 USD",
	"50000+ USD",
}

// EquipmentOptions is the fixed catalog of equipment the promoter can supply.
var EquipmentOptions = []string{
	"Guantes de boxeo",
	"Protectores bucales",
	"Vendas",
	"Cronómetro",
	"Campana",
	"Sillas de esquina",
	"Cubetas y toallas",
	"Botiquín médico",
}

// AdditionalServiceOptions is the fixed catalog of bookable event services.
var AdditionalServiceOptions = []string{
	"Árbitro profesional",
	"Jueces oficiales",
	"Médico en sitio",
	"Ambulancia standby",
	"Pesaje oficial",
	"Seguridad",
	"Fotografía profesional",
	"Video en vivo",
	"Presentador/MC",
	"Sistema de sonido",
	"Iluminación profesional",
}

// EventQuoteSubmission is the four-step quote wizard payload. The JSON field
// names are the wire contract with the site.
type EventQuoteSubmission struct {
	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
	ClientPhone string `json:"client_phone"`

	EventDate          string    `json:"event_date"`
	EventTime          string    `json:"event_time"`
	EventType          EventType `json:"event_type"`
	NumberOfFights     int       `json:"number_of_fights"`
	ExpectedAttendance int       `json:"expected_attendance"`
	BudgetRange        string    `json:"budget_range"`

	VenueName    string `json:"venue_name"`
	VenueAddress string `json:"venue_address"`

	RingNeeded          bool     `json:"ring_needed"`
	EquipmentNeeded     []string `json:"equipment_needed"`
	AdditionalServices  []string `json:"additional_services"`
	SpecialRequirements string   `json:"special_requirements"`
}

// EventQuote is the persisted form of a quote submission.
type EventQuote struct {
	ID         int64                `json:"id"`
	Reference  string               `json:"reference"`
	Submission EventQuoteSubmission `json:"submission"`
	Status     SubmissionStatus     `json:"status"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
}
