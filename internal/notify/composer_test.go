package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profefranko/profefranko-api/internal/models"
)

func testComposer() *Composer {
	return NewComposer("", "https://profefranko.com")
}

func fullContact() models.ContactSubmission {
	return models.ContactSubmission{
		Role:         models.RoleEntrenador,
		Name:         "José Muñoz",
		Email:        "jose@example.com",
		Phone:        "+56912345678",
		Organization: "Club Los Andes",
		City:         "Santiago",
		Country:      "Chile",
		Message:      "Quisiera coordinar un entrenamiento.",
	}
}

func fullQuote() models.EventQuoteSubmission {
	return models.EventQuoteSubmission{
		ClientName:          "María Paz",
		ClientEmail:         "maria@example.com",
		ClientPhone:         "+56911112222",
		EventDate:           "2026-10-12",
		EventTime:           "19:00",
		EventType:           models.EventTypeProfesional,
		NumberOfFights:      6,
		ExpectedAttendance:  300,
		BudgetRange:         "5000-10000 USD",
		VenueName:           "Gimnasio Municipal",
		VenueAddress:        "Av. Libertad 123, Viña del Mar",
		RingNeeded:          true,
		EquipmentNeeded:     []string{"Campana", "Vendas"},
		AdditionalServices:  []string{"Pesaje oficial"},
		SpecialRequirements: "Acceso para prensa",
	}
}

func TestComposeContact(t *testing.T) {
	msg, err := testComposer().ComposeContact(fullContact())
	require.NoError(t, err)

	assert.Equal(t, "Nuevo mensaje de contacto de José Muñoz", msg.Subject)
	assert.Equal(t, "jose@example.com", msg.ReplyTo)

	assert.Contains(t, msg.HTML, "Entrenador")
	assert.Contains(t, msg.HTML, "José Muñoz")
	assert.Contains(t, msg.HTML, "Club Los Andes")
	assert.Contains(t, msg.HTML, "cid:"+LogoCID)

	assert.Contains(t, msg.Text, "Rol: Entrenador")
	assert.Contains(t, msg.Text, "Nombre: José Muñoz")
	assert.Contains(t, msg.Text, "Quisiera coordinar un entrenamiento.")

	assert.Equal(t, ContactPDFFilename, msg.PDF.Filename)
	assert.NotEmpty(t, msg.PDF.Content)
	assert.Equal(t, "%PDF", string(msg.PDF.Content[:4]))
}

func TestComposeContactOmitsEmptyOptionalRows(t *testing.T) {
	sub := models.ContactSubmission{
		Role:    models.RoleOtros,
		Name:    "Ana",
		Email:   "ana@example.com",
		Message: "Hola, tengo una consulta.",
	}

	msg, err := testComposer().ComposeContact(sub)
	require.NoError(t, err)

	assert.NotContains(t, msg.HTML, "Teléfono")
	assert.NotContains(t, msg.HTML, "Organización")
	assert.NotContains(t, msg.Text, "Ciudad:")
	assert.NotContains(t, msg.Text, "País:")
	assert.Contains(t, msg.Text, "Rol: Otros")
}

func TestComposeContactEscapesHTML(t *testing.T) {
	sub := fullContact()
	sub.Name = `<script>alert("x")</script>`
	sub.Message = `Hola <b>amigo</b> & chao`

	msg, err := testComposer().ComposeContact(sub)
	require.NoError(t, err)

	assert.NotContains(t, msg.HTML, "<script>")
	assert.Contains(t, msg.HTML, "&lt;script&gt;")
	assert.NotContains(t, msg.HTML, "<b>amigo</b>")

	// The text alternative carries the input verbatim
	assert.Contains(t, msg.Text, `Hola <b>amigo</b> & chao`)
}

func TestComposeQuote(t *testing.T) {
	msg, err := testComposer().ComposeQuote(fullQuote())
	require.NoError(t, err)

	assert.Equal(t, "Nueva cotización de evento - María Paz", msg.Subject)
	assert.Equal(t, "maria@example.com", msg.ReplyTo)

	// The HTML and text bodies word the attendance row differently
	assert.Contains(t, msg.HTML, "Cantidad de asistentes (aprox.)")
	assert.Contains(t, msg.Text, "Cantidad de publico (aprox.)")

	assert.Contains(t, msg.HTML, "Profesional")
	assert.Contains(t, msg.HTML, "Campana, Vendas")
	assert.Contains(t, msg.HTML, "Pesaje oficial")
	assert.Contains(t, msg.HTML, "Sí")

	assert.Contains(t, msg.Text, "[DATOS DEL CLIENTE]")
	assert.Contains(t, msg.Text, "[DETALLES DEL EVENTO]")
	assert.Contains(t, msg.Text, "[LUGAR]")
	assert.Contains(t, msg.Text, "[SERVICIOS]")
	assert.Contains(t, msg.Text, "[REQUERIMIENTOS ESPECIALES]")

	assert.Equal(t, QuotePDFFilename, msg.PDF.Filename)
	assert.Equal(t, "%PDF", string(msg.PDF.Content[:4]))
}

func TestComposeQuoteFallbacks(t *testing.T) {
	quote := models.EventQuoteSubmission{
		ClientName:  "María Paz",
		ClientEmail: "maria@example.com",
		ClientPhone: "+56911112222",
	}

	msg, err := testComposer().ComposeQuote(quote)
	require.NoError(t, err)

	// Empty sets render N/A, absent event fields render a dash
	assert.Contains(t, msg.Text, "Equipo necesario: N/A")
	assert.Contains(t, msg.Text, "Servicios adicionales: N/A")
	assert.Contains(t, msg.Text, "Fecha: -")
	assert.Contains(t, msg.Text, "Tipo de evento: -")
	assert.Contains(t, msg.Text, "Ring profesional: No")
}

func TestComposeQuoteEscapesHTML(t *testing.T) {
	quote := fullQuote()
	quote.SpecialRequirements = `<img src=x onerror="alert(1)">`

	msg, err := testComposer().ComposeQuote(quote)
	require.NoError(t, err)

	assert.NotContains(t, msg.HTML, `<img src=x`)
	assert.Contains(t, msg.Text, `<img src=x onerror="alert(1)">`)
}

func TestAvailableLogo(t *testing.T) {
	assert.Empty(t, NewComposer("", "https://profefranko.com").availableLogo())
	assert.Empty(t, NewComposer("does/not/exist.png", "https://profefranko.com").availableLogo())

	msg, err := NewComposer("missing.png", "https://profefranko.com").ComposeContact(fullContact())
	require.NoError(t, err)
	assert.Empty(t, msg.LogoPath)
}
