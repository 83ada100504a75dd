package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupContactRouter(t *testing.T) (*gin.Engine, *testEnv) {
	t.Helper()
	env := newTestEnv(t)

	handler := NewContactHandler(env.contacts)
	router := gin.New()
	router.GET("/api/contacts", handler.ListContacts)
	router.POST("/api/contacts", handler.CreateContact)
	router.PATCH("/api/contacts/:id", handler.UpdateContact)
	router.PATCH("/api/contacts/:id/status", handler.UpdateContactStatus)
	router.DELETE("/api/contacts/:id", handler.DeleteContact)
	router.POST("/api/contacts/:id/test-sms", handler.SendTestSMS)
	return router, env
}

func postJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return perform(router, req)
}

func TestContactHandler_Create(t *testing.T) {
	router, _ := setupContactRouter(t)

	w := postJSON(router, http.MethodPost, "/api/contacts", `{"name":"Sarah","phone":"+15550100","email":"sarah@example.com"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"isActive":true`)

	// Duplicate phone is a conflict
	w = postJSON(router, http.MethodPost, "/api/contacts", `{"name":"Other","phone":"+15550100"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Phone number already exists")

	// Missing phone fails validation
	w = postJSON(router, http.MethodPost, "/api/contacts", `{"name":"NoPhone"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContactHandler_Update(t *testing.T) {
	router, _ := setupContactRouter(t)

	w := postJSON(router, http.MethodPost, "/api/contacts", `{"name":"Old","phone":"+15550100"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(router, http.MethodPatch, "/api/contacts/1", `{"name":"New"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"New"`)
	assert.Contains(t, w.Body.String(), "+15550100")

	w = postJSON(router, http.MethodPatch, "/api/contacts/99", `{"name":"Ghost"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestContactHandler_UpdateStatus(t *testing.T) {
	router, _ := setupContactRouter(t)

	w := postJSON(router, http.MethodPost, "/api/contacts", `{"name":"Toggle","phone":"+15550100"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(router, http.MethodPatch, "/api/contacts/1/status", `{"isActive":false}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"isActive":false`)

	// isActive must be present
	w = postJSON(router, http.MethodPatch, "/api/contacts/1/status", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContactHandler_Delete(t *testing.T) {
	router, _ := setupContactRouter(t)

	w := postJSON(router, http.MethodPost, "/api/contacts", `{"name":"Gone","phone":"+15550100"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = perform(router, httptest.NewRequest(http.MethodDelete, "/api/contacts/1", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = perform(router, httptest.NewRequest(http.MethodDelete, "/api/contacts/1", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestContactHandler_TestSMS(t *testing.T) {
	router, env := setupContactRouter(t)

	w := postJSON(router, http.MethodPost, "/api/contacts", `{"name":"Sarah","phone":"+15550100"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = perform(router, httptest.NewRequest(http.MethodPost, "/api/contacts/1/test-sms", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"+15550100"}, env.sender.sent)

	w = perform(router, httptest.NewRequest(http.MethodPost, "/api/contacts/99/test-sms", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	env.sender.err = errors.New("provider down")
	w = perform(router, httptest.NewRequest(http.MethodPost, "/api/contacts/1/test-sms", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
