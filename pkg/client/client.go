// Package client drives the public form endpoints the way the site does:
// validate locally, post JSON, and track a small idle/loading/success/error
// lifecycle around each submission. It backs embeds and smoke tooling that
// need to submit forms without a browser.
package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/profefranko/profefranko-api/internal/models"
	"github.com/profefranko/profefranko-api/pkg/httpclient"
	"github.com/profefranko/profefranko-api/pkg/quoteform"
)

// Status is the submission lifecycle state of a form client.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

const (
	ContactPath    = "/api/contact"
	EventQuotePath = "/api/event-quote"

	// How long the success state lingers before the form returns to idle.
	DefaultContactDismiss = 2500 * time.Millisecond
	DefaultQuoteDismiss   = 5 * time.Second
)

// Fallback messages when the server gives no usable error body.
const (
	contactFallbackError = "No se pudo enviar el mensaje"
	quoteFallbackError   = "Error al enviar la cotización"
)

var (
	// ErrSubmissionInFlight is returned when Submit is called while a
	// previous submission is still loading.
	ErrSubmissionInFlight = errors.New("submission already in flight")

	// ErrFormInvalid is returned when the form fails its own validation
	// and nothing is posted.
	ErrFormInvalid = errors.New("form is not valid")
)

// transport holds the lifecycle state shared by both form clients.
type transport struct {
	http         httpclient.Client
	baseURL      string
	dismissAfter time.Duration

	mu           sync.Mutex
	status       Status
	errorMessage string
	dismissTimer *time.Timer
}

func newTransport(httpClient httpclient.Client, baseURL string, dismissAfter time.Duration) *transport {
	return &transport{
		http:         httpClient,
		baseURL:      baseURL,
		dismissAfter: dismissAfter,
		status:       StatusIdle,
	}
}

// begin flips the state to loading unless a submission is already running.
func (t *transport) begin() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.status == StatusLoading {
		return ErrSubmissionInFlight
	}
	if t.dismissTimer != nil {
		t.dismissTimer.Stop()
		t.dismissTimer = nil
	}
	t.status = StatusLoading
	t.errorMessage = ""
	return nil
}

func (t *transport) succeed() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status = StatusSuccess
	t.dismissTimer = time.AfterFunc(t.dismissAfter, func() {
		t.mu.Lock()
		t.status = StatusIdle
		t.dismissTimer = nil
		t.mu.Unlock()
	})
}

func (t *transport) fail(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status = StatusError
	t.errorMessage = message
}

func (t *transport) currentStatus() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

func (t *transport) lastError() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.errorMessage
}

// post sends the payload and returns the server's error message when the
// submission was rejected. A nil error with ok=false never happens on the
// wire, but the fallback covers it anyway.
func (t *transport) post(path string, payload any, fallback string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	resp, err := t.http.Post(t.baseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return errors.New(fallback)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	message := fallback
	if raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 4096)); readErr == nil {
		var submitResp models.SubmitResponse
		if json.Unmarshal(raw, &submitResp) == nil && submitResp.Error != "" {
			message = submitResp.Error
		}
	}
	return errors.New(message)
}

// ContactClient submits the contact form.
type ContactClient struct {
	form *quoteform.Contact
	t    *transport
}

func NewContactClient(httpClient httpclient.Client, baseURL string) *ContactClient {
	return &ContactClient{
		form: quoteform.NewContact(),
		t:    newTransport(httpClient, baseURL, DefaultContactDismiss),
	}
}

// SetDismissAfter overrides how long the success state lingers.
func (c *ContactClient) SetDismissAfter(d time.Duration) {
	c.t.dismissAfter = d
}

// Form exposes the underlying form state for field edits.
func (c *ContactClient) Form() *quoteform.Contact {
	return c.form
}

func (c *ContactClient) Status() Status {
	return c.t.currentStatus()
}

func (c *ContactClient) ErrorMessage() string {
	return c.t.lastError()
}

// Submit validates and posts the contact form. On success the form resets
// keeping the role and country selections; on failure the entered values
// stay intact for another attempt.
func (c *ContactClient) Submit() error {
	if !c.form.Valid() {
		return ErrFormInvalid
	}
	if err := c.t.begin(); err != nil {
		return err
	}

	if err := c.t.post(ContactPath, c.form.Record(), contactFallbackError); err != nil {
		c.t.fail(err.Error())
		return err
	}

	c.form.Reset()
	c.t.succeed()
	return nil
}

// QuoteClient submits the event quote wizard.
type QuoteClient struct {
	form *quoteform.Quote
	t    *transport
}

func NewQuoteClient(httpClient httpclient.Client, baseURL string) *QuoteClient {
	return &QuoteClient{
		form: quoteform.NewQuote(),
		t:    newTransport(httpClient, baseURL, DefaultQuoteDismiss),
	}
}

// SetDismissAfter overrides how long the success state lingers.
func (q *QuoteClient) SetDismissAfter(d time.Duration) {
	q.t.dismissAfter = d
}

// Form exposes the underlying wizard state for field edits and navigation.
func (q *QuoteClient) Form() *quoteform.Quote {
	return q.form
}

func (q *QuoteClient) Status() Status {
	return q.t.currentStatus()
}

func (q *QuoteClient) ErrorMessage() string {
	return q.t.lastError()
}

// Submit posts the quote once the wizard sits on its final step with every
// earlier step valid. On success the wizard resets to step 1 once the
// success state is dismissed; on failure the entered values stay intact.
func (q *QuoteClient) Submit() error {
	if !q.form.CanSubmit() {
		return ErrFormInvalid
	}
	if err := q.t.begin(); err != nil {
		return err
	}

	if err := q.t.post(EventQuotePath, q.form.Record(), quoteFallbackError); err != nil {
		q.t.fail(err.Error())
		return err
	}

	q.form.Reset()
	q.t.succeed()
	return nil
}
