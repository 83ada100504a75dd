package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mithuan2002/testisimple/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSubmissionRouter(t *testing.T) (*gin.Engine, *testEnv, string) {
	t.Helper()
	env := newTestEnv(t)
	uploadDir := t.TempDir()

	handler := NewSubmissionHandler(env.submissions, uploadDir)
	router := gin.New()
	router.GET("/api/submissions", handler.ListSubmissions)
	router.POST("/api/submissions", handler.CreateSubmission)
	router.PATCH("/api/submissions/:id/points", handler.UpdatePoints)
	return router, env, uploadDir
}

func TestSubmissionHandler_CreateJSON(t *testing.T) {
	router, _, _ := setupSubmissionRouter(t)

	body := `{"campaignId":1,"name":"Sarah","email":"sarah@example.com","platform":"instagram","screenshotUrl":"https://cdn.example.com/x.png","engagementCount":42}`
	w := postJSON(router, http.MethodPost, "/api/submissions", body)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"points":0`)
	assert.Contains(t, w.Body.String(), `"engagementCount":42`)
	assert.Contains(t, w.Body.String(), "https://cdn.example.com/x.png")
}

func TestSubmissionHandler_CreateJSONValidation(t *testing.T) {
	router, _, _ := setupSubmissionRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing campaign", `{"name":"S","email":"s@example.com","platform":"x"}`},
		{"bad email", `{"campaignId":1,"name":"S","email":"not-an-email","platform":"x"}`},
		{"negative engagement", `{"campaignId":1,"name":"S","email":"s@example.com","platform":"x","engagementCount":-1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(router, http.MethodPost, "/api/submissions", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestSubmissionHandler_CreateMultipart(t *testing.T) {
	router, _, uploadDir := setupSubmissionRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("campaignId", "1"))
	require.NoError(t, mw.WriteField("name", "Sarah"))
	require.NoError(t, mw.WriteField("email", "sarah@example.com"))
	require.NoError(t, mw.WriteField("platform", "instagram"))
	require.NoError(t, mw.WriteField("engagementCount", "10"))
	part, err := mw.CreateFormFile("screenshot", "proof.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake-png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/submissions", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := perform(router, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"screenshotUrl":"/uploads/`)

	// The file landed in the upload dir with a generated name
	entries, err := os.ReadDir(uploadDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ".png", filepath.Ext(entries[0].Name()))

	data, err := os.ReadFile(filepath.Join(uploadDir, entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, "fake-png-bytes", string(data))
}

func TestSubmissionHandler_CreateMultipartWithoutFile(t *testing.T) {
	router, _, uploadDir := setupSubmissionRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("campaignId", "1"))
	require.NoError(t, mw.WriteField("name", "Sarah"))
	require.NoError(t, mw.WriteField("email", "sarah@example.com"))
	require.NoError(t, mw.WriteField("platform", "instagram"))
	require.NoError(t, mw.WriteField("screenshotUrl", "https://cdn.example.com/y.png"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/submissions", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := perform(router, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "https://cdn.example.com/y.png")

	entries, err := os.ReadDir(uploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSubmissionHandler_UpdatePoints(t *testing.T) {
	router, env, _ := setupSubmissionRouter(t)

	require.NoError(t, env.store.CreateSubmission(&models.Submission{
		CampaignID: 1, Name: "Sarah", Email: "s@example.com", Platform: "instagram", SubmittedAt: "now",
	}))

	w := postJSON(router, http.MethodPatch, "/api/submissions/1/points", `{"points":50}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"points":50`)

	// Legacy key still works
	w = postJSON(router, http.MethodPatch, "/api/submissions/1/points", `{"engagementCount":70}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"points":70`)

	w = postJSON(router, http.MethodPatch, "/api/submissions/1/points", `{"points":-5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "non-negative")

	w = postJSON(router, http.MethodPatch, "/api/submissions/1/points", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(router, http.MethodPatch, "/api/submissions/99/points", `{"points":10}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmissionHandler_List(t *testing.T) {
	router, env, _ := setupSubmissionRouter(t)

	for _, name := range []string{"Sarah", "Mike"} {
		require.NoError(t, env.store.CreateSubmission(&models.Submission{
			CampaignID: 1, Name: name, Email: strings.ToLower(name) + "@example.com",
			Platform: "instagram", SubmittedAt: "now",
		}))
	}

	w := perform(router, httptest.NewRequest(http.MethodGet, "/api/submissions", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Sarah")
	assert.Contains(t, w.Body.String(), "Mike")
}
