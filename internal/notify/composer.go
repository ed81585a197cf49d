// Package notify composes the notification messages sent to the promoter
// when a contact or event quote submission arrives: an HTML body, a plain
// text alternative and a PDF summary attached to the mail.
package notify

import (
	"bytes"
	"html/template"
	"os"
	"strings"
	texttemplate "text/template"

	"github.com/profefranko/profefranko-api/internal/models"
	"github.com/profefranko/profefranko-api/pkg/errors"
)

// Attachment is a file attached to an outbound notification.
type Attachment struct {
	Filename string
	Content  []byte
}

// Message is a fully composed notification, ready for dispatch. PDF is always
// present; composition fails rather than producing a message without it.
type Message struct {
	Subject string
	HTML    string
	Text    string
	ReplyTo string
	PDF     Attachment

	// LogoPath is empty when no logo file is available; the dispatcher then
	// skips the CID embed.
	LogoPath string
}

// LogoCID is the content ID the HTML bodies reference for the inline logo.
const LogoCID = "profefranko-logo"

// Composer renders notification messages from submission records.
type Composer struct {
	logoPath string
	baseURL  string

	contactHTML *template.Template
	quoteHTML   *template.Template
	contactText *texttemplate.Template
	quoteText   *texttemplate.Template
}

// NewComposer creates a Composer. logoPath may point at a file that does not
// exist; the logo is then simply left out of the mails.
func NewComposer(logoPath, baseURL string) *Composer {
	return &Composer{
		logoPath:    logoPath,
		baseURL:     baseURL,
		contactHTML: template.Must(template.New("contact").Parse(contactHTMLTemplate)),
		quoteHTML:   template.Must(template.New("quote").Parse(quoteHTMLTemplate)),
		contactText: texttemplate.Must(texttemplate.New("contact").Parse(contactTextTemplate)),
		quoteText:   texttemplate.Must(texttemplate.New("quote").Parse(quoteTextTemplate)),
	}
}

// ComposeContact builds the notification for a contact form submission.
func (c *Composer) ComposeContact(sub models.ContactSubmission) (*Message, error) {
	data := contactTemplateData{
		Submission: sub,
		RoleLabel:  sub.Role.Label(),
		BaseURL:    c.baseURL,
	}

	var htmlBuf bytes.Buffer
	if err := c.contactHTML.Execute(&htmlBuf, data); err != nil {
		return nil, errors.CompositionError("contact html body", err)
	}

	var textBuf bytes.Buffer
	if err := c.contactText.Execute(&textBuf, data); err != nil {
		return nil, errors.CompositionError("contact text body", err)
	}

	pdfBytes, err := renderContactPDF(sub)
	if err != nil {
		return nil, errors.CompositionError("contact pdf", err)
	}

	return &Message{
		Subject:  "Nuevo mensaje de contacto de " + sub.Name,
		HTML:     htmlBuf.String(),
		Text:     textBuf.String(),
		ReplyTo:  sub.Email,
		PDF:      Attachment{Filename: ContactPDFFilename, Content: pdfBytes},
		LogoPath: c.availableLogo(),
	}, nil
}

// ComposeQuote builds the notification for an event quote submission.
func (c *Composer) ComposeQuote(quote models.EventQuoteSubmission) (*Message, error) {
	data := quoteTemplateData{
		Submission:     quote,
		EventTypeLabel: quote.EventType.Label(),
		EventDate:      orDash(quote.EventDate),
		EventTime:      orDash(quote.EventTime),
		BudgetRange:    orDash(quote.BudgetRange),
		VenueName:      orDash(quote.VenueName),
		VenueAddress:   orDash(quote.VenueAddress),
		RingNeeded:     siNo(quote.RingNeeded),
		Equipment:      joinOrNA(quote.EquipmentNeeded),
		Services:       joinOrNA(quote.AdditionalServices),
		Requirements:   orDash(quote.SpecialRequirements),
		BaseURL:        c.baseURL,
	}

	var htmlBuf bytes.Buffer
	if err := c.quoteHTML.Execute(&htmlBuf, data); err != nil {
		return nil, errors.CompositionError("quote html body", err)
	}

	var textBuf bytes.Buffer
	if err := c.quoteText.Execute(&textBuf, data); err != nil {
		return nil, errors.CompositionError("quote text body", err)
	}

	pdfBytes, err := renderQuotePDF(quote)
	if err != nil {
		return nil, errors.CompositionError("quote pdf", err)
	}

	return &Message{
		Subject:  "Nueva cotización de evento - " + quote.ClientName,
		HTML:     htmlBuf.String(),
		Text:     textBuf.String(),
		ReplyTo:  quote.ClientEmail,
		PDF:      Attachment{Filename: QuotePDFFilename, Content: pdfBytes},
		LogoPath: c.availableLogo(),
	}, nil
}

// availableLogo returns the logo path only when the file actually exists, so
// a misconfigured path degrades to a logo-less mail instead of a send error.
func (c *Composer) availableLogo() string {
	if c.logoPath == "" {
		return ""
	}
	if _, err := os.Stat(c.logoPath); err != nil {
		return ""
	}
	return c.logoPath
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func siNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}

func joinOrNA(items []string) string {
	if len(items) == 0 {
		return "N/A"
	}
	return strings.Join(items, ", ")
}

type contactTemplateData struct {
	Submission models.ContactSubmission
	RoleLabel  string
	BaseURL    string
}

type quoteTemplateData struct {
	Submission     models.EventQuoteSubmission
	EventTypeLabel string
	EventDate      string
	EventTime      string
	BudgetRange    string
	VenueName      string
	VenueAddress   string
	RingNeeded     string
	Equipment      string
	Services       string
	Requirements   string
	BaseURL        string
}
