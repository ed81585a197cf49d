package client

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profefranko/profefranko-api/internal/models"
)

// stubHTTPClient answers every Post with a canned response and records the
// requests it saw.
type stubHTTPClient struct {
	mu         sync.Mutex
	statusCode int
	body       string
	err        error
	delay      time.Duration
	calls      int
	lastURL    string
	lastBody   []byte
}

func (s *stubHTTPClient) Post(url, contentType string, body io.Reader) (*http.Response, error) {
	s.mu.Lock()
	s.calls++
	s.lastURL = url
	if body != nil {
		s.lastBody, _ = io.ReadAll(body)
	}
	delay := s.delay
	s.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}
	if s.err != nil {
		return nil, s.err
	}
	return &http.Response{
		StatusCode: s.statusCode,
		Body:       io.NopCloser(bytes.NewReader([]byte(s.body))),
	}, nil
}

func (s *stubHTTPClient) Get(url string) (*http.Response, error) {
	return nil, nil
}

func (s *stubHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return nil, nil
}

func (s *stubHTTPClient) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func readyContactClient(stub *stubHTTPClient) *ContactClient {
	c := NewContactClient(stub, "https://profefranko.com")
	c.Form().SetField("name", "José Muñoz")
	c.Form().SetField("email", "jose@example.com")
	c.Form().SetField("phone", "+56912345678")
	c.Form().SetField("city", "Santiago")
	c.Form().SetField("message", "Quisiera coordinar un entrenamiento.")
	return c
}

func readyQuoteClient(stub *stubHTTPClient) *QuoteClient {
	q := NewQuoteClient(stub, "https://profefranko.com")
	form := q.Form()
	form.SetField("client_name", "María Paz")
	form.SetField("client_email", "maria@example.com")
	form.SetField("client_phone", "+56911112222")
	form.SetField("event_date", "2026-10-12")
	form.SetField("event_time", "19:00")
	form.SetField("event_type", "amateur")
	form.SetField("budget_range", "0-5000 USD")
	form.SetField("venue_name", "Gimnasio Municipal")
	form.SetField("venue_address", "Av. Libertad 123")
	form.AdvanceStep()
	form.AdvanceStep()
	form.AdvanceStep()
	return q
}

func TestContactSubmitSuccess(t *testing.T) {
	stub := &stubHTTPClient{statusCode: http.StatusOK, body: `{"ok":true}`}
	c := readyContactClient(stub)
	c.SetDismissAfter(20 * time.Millisecond)
	c.Form().SetField("role", "club")

	require.NoError(t, c.Submit())

	assert.Equal(t, StatusSuccess, c.Status())
	assert.Equal(t, "https://profefranko.com/api/contact", stub.lastURL)

	var posted models.ContactSubmission
	require.NoError(t, json.Unmarshal(stub.lastBody, &posted))
	assert.Equal(t, "José Muñoz", posted.Name)
	assert.Equal(t, models.RoleClub, posted.Role)

	// Success resets the form but keeps role and country
	record := c.Form().Record()
	assert.Empty(t, record.Name)
	assert.Equal(t, models.RoleClub, record.Role)
	assert.Equal(t, "Chile", record.Country)

	// The success state dismisses back to idle on its own
	assert.Eventually(t, func() bool {
		return c.Status() == StatusIdle
	}, time.Second, 5*time.Millisecond)
}

func TestContactSubmitServerError(t *testing.T) {
	stub := &stubHTTPClient{statusCode: http.StatusInternalServerError, body: `{"ok":false,"error":"No se pudo enviar el mensaje."}`}
	c := readyContactClient(stub)

	err := c.Submit()
	require.Error(t, err)

	assert.Equal(t, StatusError, c.Status())
	assert.Equal(t, "No se pudo enviar el mensaje.", c.ErrorMessage())

	// The entered values survive a failed submission
	assert.Equal(t, "José Muñoz", c.Form().Record().Name)
}

func TestContactSubmitFallbackMessage(t *testing.T) {
	stub := &stubHTTPClient{statusCode: http.StatusBadGateway, body: "<html>bad gateway</html>"}
	c := readyContactClient(stub)

	require.Error(t, c.Submit())
	assert.Equal(t, "No se pudo enviar el mensaje", c.ErrorMessage())
}

func TestContactSubmitInvalidFormDoesNotPost(t *testing.T) {
	stub := &stubHTTPClient{statusCode: http.StatusOK, body: `{"ok":true}`}
	c := NewContactClient(stub, "https://profefranko.com")

	err := c.Submit()
	assert.ErrorIs(t, err, ErrFormInvalid)
	assert.Equal(t, 0, stub.callCount())
	assert.Equal(t, StatusIdle, c.Status())
}

func TestContactDoubleSubmitGuard(t *testing.T) {
	stub := &stubHTTPClient{statusCode: http.StatusOK, body: `{"ok":true}`, delay: 50 * time.Millisecond}
	c := readyContactClient(stub)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, c.Submit())
	}()

	assert.Eventually(t, func() bool {
		return c.Status() == StatusLoading
	}, time.Second, time.Millisecond)

	assert.ErrorIs(t, c.Submit(), ErrSubmissionInFlight)
	wg.Wait()
	assert.Equal(t, 1, stub.callCount())
}

func TestQuoteSubmitSuccess(t *testing.T) {
	stub := &stubHTTPClient{statusCode: http.StatusOK, body: `{"ok":true}`}
	q := readyQuoteClient(stub)
	q.SetDismissAfter(20 * time.Millisecond)
	q.Form().ToggleMember("equipment_needed", "Campana")

	require.NoError(t, q.Submit())

	assert.Equal(t, StatusSuccess, q.Status())
	assert.Equal(t, "https://profefranko.com/api/event-quote", stub.lastURL)

	var posted models.EventQuoteSubmission
	require.NoError(t, json.Unmarshal(stub.lastBody, &posted))
	assert.Equal(t, "María Paz", posted.ClientName)
	assert.Equal(t, []string{"Campana"}, posted.EquipmentNeeded)

	// Success restores the wizard defaults
	record := q.Form().Record()
	assert.Empty(t, record.ClientName)
	assert.Equal(t, 1, record.NumberOfFights)
	assert.True(t, record.RingNeeded)
	assert.Equal(t, 1, q.Form().CurrentStep())
}

func TestQuoteSubmitBlockedBeforeFinalStep(t *testing.T) {
	stub := &stubHTTPClient{statusCode: http.StatusOK, body: `{"ok":true}`}
	q := NewQuoteClient(stub, "https://profefranko.com")
	q.Form().SetField("client_name", "María Paz")

	assert.ErrorIs(t, q.Submit(), ErrFormInvalid)
	assert.Equal(t, 0, stub.callCount())
}

func TestQuoteSubmitServerError(t *testing.T) {
	stub := &stubHTTPClient{statusCode: http.StatusInternalServerError, body: `{"ok":false,"error":"Error al enviar la cotización"}`}
	q := readyQuoteClient(stub)

	require.Error(t, q.Submit())
	assert.Equal(t, StatusError, q.Status())
	assert.Equal(t, "Error al enviar la cotización", q.ErrorMessage())
	assert.Equal(t, "María Paz", q.Form().Record().ClientName)
	assert.Equal(t, 4, q.Form().CurrentStep())
}

func TestQuoteSubmitTransportFailure(t *testing.T) {
	stub := &stubHTTPClient{err: io.ErrUnexpectedEOF}
	q := readyQuoteClient(stub)

	require.Error(t, q.Submit())
	assert.Equal(t, StatusError, q.Status())
	assert.Equal(t, "Error al enviar la cotización", q.ErrorMessage())
}
