// Package normalize turns raw form payloads into canonical submission
// records. The public forms are embedded on several pages of the site, some
// of which still post legacy Spanish field names or url-encoded bodies, so
// everything funnels through here before validation.
package normalize

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/profefranko/profefranko-api/internal/models"
)

// IsJSONContent reports whether a Content-Type header indicates a JSON body.
// Anything else is treated as a flat form-field map.
func IsJSONContent(contentType string) bool {
	return strings.Contains(contentType, "application/json")
}

// ContactFromJSON decodes a JSON contact payload and normalizes it. The
// second return value is the optional captcha token.
func ContactFromJSON(r io.Reader) (models.ContactSubmission, string, error) {
	var raw models.RawContactPayload
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return models.ContactSubmission{}, "", fmt.Errorf("failed to decode contact payload: %w", err)
	}
	return contactFromRaw(raw), raw.CaptchaToken, nil
}

// ContactFromForm normalizes a contact submission posted as form fields
// (url-encoded or multipart).
func ContactFromForm(values url.Values) (models.ContactSubmission, string) {
	raw := models.RawContactPayload{
		Role:         values.Get("role"),
		Name:         values.Get("name"),
		Nombre:       values.Get("nombre"),
		Email:        values.Get("email"),
		Phone:        values.Get("phone"),
		Telefono:     values.Get("telefono"),
		Organization: values.Get("organization"),
		City:         values.Get("city"),
		Country:      values.Get("country"),
		Message:      values.Get("message"),
		Mensaje:      values.Get("mensaje"),
		CaptchaToken: values.Get("captcha_token"),
	}
	return contactFromRaw(raw), raw.CaptchaToken
}

// contactFromRaw resolves field aliases (first present wins) and applies
// defaults. Role coercion happens here and nowhere else.
func contactFromRaw(raw models.RawContactPayload) models.ContactSubmission {
	return models.ContactSubmission{
		Role:         models.ParseRole(raw.Role),
		Name:         firstNonEmpty(raw.Name, raw.Nombre),
		Email:        raw.Email,
		Phone:        firstNonEmpty(raw.Phone, raw.Telefono),
		Organization: raw.Organization,
		City:         raw.City,
		Country:      raw.Country,
		Message:      firstNonEmpty(raw.Message, raw.Mensaje),
	}
}

// QuoteFromJSON decodes an event quote payload. Absent strings decode to ""
// and absent numerics to 0; the wizard enforces completeness client-side, so
// the server takes the payload as sent.
func QuoteFromJSON(r io.Reader) (models.EventQuoteSubmission, error) {
	var quote models.EventQuoteSubmission
	if err := json.NewDecoder(r).Decode(&quote); err != nil {
		return models.EventQuoteSubmission{}, fmt.Errorf("failed to decode event quote payload: %w", err)
	}
	return quote, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
