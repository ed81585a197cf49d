package notify

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/profefranko/profefranko-api/internal/models"
	"github.com/profefranko/profefranko-api/pkg/metrics"
)

// Fixed attachment filenames; the promoter's inbox rules match on them.
const (
	ContactPDFFilename = "contacto.pdf"
	QuotePDFFilename   = "cotizacion-evento.pdf"
)

// renderContactPDF produces the one-page PDF summary of a contact submission.
func renderContactPDF(sub models.ContactSubmission) ([]byte, error) {
	start := time.Now()

	pdf, tr := newDocument("Nuevo mensaje de contacto")

	sectionTitle(pdf, tr, "Datos del contacto")
	fieldRow(pdf, tr, "Rol", sub.Role.Label())
	fieldRow(pdf, tr, "Nombre", sub.Name)
	fieldRow(pdf, tr, "Email", sub.Email)
	if sub.Phone != "" {
		fieldRow(pdf, tr, "Teléfono", sub.Phone)
	}
	if sub.Organization != "" {
		fieldRow(pdf, tr, "Organización", sub.Organization)
	}
	if sub.City != "" {
		fieldRow(pdf, tr, "Ciudad", sub.City)
	}
	if sub.Country != "" {
		fieldRow(pdf, tr, "País", sub.Country)
	}

	sectionTitle(pdf, tr, "Mensaje")
	paragraph(pdf, tr, sub.Message)

	out, err := output(pdf)
	metrics.PDFGenerationDuration.WithLabelValues("contact").Observe(metrics.MeasureDuration(start))
	return out, err
}

// renderQuotePDF produces the one-page PDF summary of an event quote.
func renderQuotePDF(quote models.EventQuoteSubmission) ([]byte, error) {
	start := time.Now()

	pdf, tr := newDocument("Cotización de Evento")

	sectionTitle(pdf, tr, "Datos del cliente")
	fieldRow(pdf, tr, "Nombre", quote.ClientName)
	fieldRow(pdf, tr, "Email", quote.ClientEmail)
	fieldRow(pdf, tr, "Teléfono", quote.ClientPhone)

	sectionTitle(pdf, tr, "Detalles del evento")
	fieldRow(pdf, tr, "Fecha", orDash(quote.EventDate))
	fieldRow(pdf, tr, "Hora", orDash(quote.EventTime))
	fieldRow(pdf, tr, "Tipo de evento", quote.EventType.Label())
	fieldRow(pdf, tr, "Número de peleas", fmt.Sprintf("%d", quote.NumberOfFights))
	fieldRow(pdf, tr, "Cantidad de asistentes (aprox.)", fmt.Sprintf("%d", quote.ExpectedAttendance))
	fieldRow(pdf, tr, "Presupuesto", orDash(quote.BudgetRange))

	sectionTitle(pdf, tr, "Lugar del evento")
	fieldRow(pdf, tr, "Nombre del lugar", orDash(quote.VenueName))
	fieldRow(pdf, tr, "Dirección", orDash(quote.VenueAddress))

	sectionTitle(pdf, tr, "Servicios y equipo")
	fieldRow(pdf, tr, "Ring profesional", siNo(quote.RingNeeded))
	fieldRow(pdf, tr, "Equipo necesario", joinOrNA(quote.EquipmentNeeded))
	fieldRow(pdf, tr, "Servicios adicionales", joinOrNA(quote.AdditionalServices))

	sectionTitle(pdf, tr, "Requerimientos especiales")
	paragraph(pdf, tr, orDash(quote.SpecialRequirements))

	out, err := output(pdf)
	metrics.PDFGenerationDuration.WithLabelValues("quote").Observe(metrics.MeasureDuration(start))
	return out, err
}

// newDocument creates an A4 portrait page with the title set. The translator
// maps UTF-8 to cp1252 so the core fonts can render Spanish accents.
func newDocument(title string) (*fpdf.Fpdf, func(string) string) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr(title), false)
	pdf.SetMargins(18, 18, 18)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(17, 24, 39)
	pdf.CellFormat(0, 10, tr(title), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(107, 114, 128)
	pdf.CellFormat(0, 5, tr("Solicitud enviada desde profefranko.com"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	return pdf, tr
}

func sectionTitle(pdf *fpdf.Fpdf, tr func(string) string, title string) {
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(75, 85, 99)
	pdf.CellFormat(0, 7, tr(title), "B", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func fieldRow(pdf *fpdf.Fpdf, tr func(string) string, label, value string) {
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(107, 114, 128)
	pdf.CellFormat(62, 6, tr(label+":"), "", 0, "L", false, 0, "")
	pdf.SetTextColor(17, 24, 39)
	pdf.MultiCell(0, 6, tr(value), "", "L", false)
}

func paragraph(pdf *fpdf.Fpdf, tr func(string) string, text string) {
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(17, 24, 39)
	pdf.MultiCell(0, 5.5, tr(text), "", "L", false)
}

func output(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
