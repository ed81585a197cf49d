package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/profefranko/profefranko-api/internal/models"
	apperrors "github.com/profefranko/profefranko-api/pkg/errors"
)

func contactRouter(service *MockContactService) *gin.Engine {
	handler := NewContactHandler(service)
	router := gin.New()
	router.POST("/api/contact", handler.SubmitContact)
	router.OPTIONS("/api/contact", handler.ContactPreflight)
	return router
}

func TestSubmitContact_JSONSuccess(t *testing.T) {
	service := new(MockContactService)
	service.On("Submit", mock.Anything, mock.MatchedBy(func(sub models.ContactSubmission) bool {
		return sub.Name == "José" && sub.Role == models.RoleClub
	}), "tok-123").Return(nil)

	body := `{"role":"club","name":"José","email":"jose@example.com","message":"Hola, una consulta","captcha_token":"tok-123"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	contactRouter(service).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	service.AssertExpectations(t)
}

func TestSubmitContact_FormEncodedWithAliases(t *testing.T) {
	service := new(MockContactService)
	service.On("Submit", mock.Anything, mock.MatchedBy(func(sub models.ContactSubmission) bool {
		return sub.Name == "María" && sub.Phone == "987654321" && sub.Message == "Consulta"
	}), "").Return(nil)

	form := url.Values{}
	form.Set("nombre", "María")
	form.Set("email", "maria@example.com")
	form.Set("telefono", "987654321")
	form.Set("mensaje", "Consulta")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	contactRouter(service).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	service.AssertExpectations(t)
}

func TestSubmitContact_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "no name", body: `{"email":"a@b.cl","message":"hola que tal"}`},
		{name: "no email", body: `{"name":"José","message":"hola que tal"}`},
		{name: "no message", body: `{"name":"José","email":"a@b.cl"}`},
		{name: "empty body", body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockContactService)

			w := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			contactRouter(service).ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"ok":false,"error":"Faltan campos obligatorios."}`, w.Body.String())
			service.AssertNotCalled(t, "Submit")
		})
	}
}

func TestSubmitContact_MalformedJSON(t *testing.T) {
	service := new(MockContactService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(`{"name":`))
	req.Header.Set("Content-Type", "application/json")

	contactRouter(service).ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"ok":false,"error":"No se pudo enviar el mensaje."}`, w.Body.String())
}

func TestSubmitContact_DispatchFailure(t *testing.T) {
	service := new(MockContactService)
	service.On("Submit", mock.Anything, mock.Anything, mock.Anything).
		Return(apperrors.DispatchError(assert.AnError))

	body := `{"name":"José","email":"jose@example.com","message":"Hola, una consulta"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	contactRouter(service).ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"ok":false,"error":"No se pudo enviar el mensaje."}`, w.Body.String())
}

func TestSubmitContact_CaptchaFailure(t *testing.T) {
	service := new(MockContactService)
	service.On("Submit", mock.Anything, mock.Anything, "bad-token").
		Return(apperrors.ErrUnauthorized)

	body := `{"name":"José","email":"jose@example.com","message":"Hola, una consulta","captcha_token":"bad-token"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	contactRouter(service).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"ok":false,"error":"Verificación de captcha fallida."}`, w.Body.String())
}

func TestContactPreflight(t *testing.T) {
	service := new(MockContactService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("OPTIONS", "/api/contact", http.NoBody)

	contactRouter(service).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "{}", w.Body.String())
}
