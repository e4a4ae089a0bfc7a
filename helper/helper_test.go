package helper

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"diskusi-bisnis/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStatusCode(t *testing.T) {
	h := NewHTTPHelper(false, nil)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"validation", models.NewValidationError("bad"), http.StatusBadRequest},
		{"unauthorized", models.NewUnauthorizedError("no"), http.StatusUnauthorized},
		{"forbidden", models.NewForbiddenError("no"), http.StatusForbidden},
		{"not found", models.NewNotFoundError("gone"), http.StatusNotFound},
		{"conflict", models.NewConflictError("dup"), http.StatusConflict},
		{"wrapped", errors.Join(errors.New("ctx"), models.ErrNotFound), http.StatusNotFound},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.GetStatusCode(tt.err))
		})
	}
}

func sendErrorBody(t *testing.T, h *HTTPHelper, err error) (int, map[string]interface{}) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	h.SendError(c, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestSendError_HidesInternalDetailInProduction(t *testing.T) {
	code, body := sendErrorBody(t, NewHTTPHelper(false, nil), errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, internalErrorMessage, body["message"])
	assert.NotContains(t, body, "error")
}

func TestSendError_ExposesInternalDetailOutsideProduction(t *testing.T) {
	_, body := sendErrorBody(t, NewHTTPHelper(true, nil), errors.New("pq: connection refused"))

	assert.Equal(t, "pq: connection refused", body["error"])
}

func TestSendError_UsesAppErrorMessage(t *testing.T) {
	code, body := sendErrorBody(t, NewHTTPHelper(true, nil), models.NewForbiddenError("You can only edit your own questions"))

	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "You can only edit your own questions", body["message"])
	assert.NotContains(t, body, "error")
}

func TestBindJSON_ValidationErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHTTPHelper(false, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"Hi","content":"short","tags":[]}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req models.CreateQuestionRequest
	ok := h.BindJSON(c, &req)

	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body struct {
		Success bool                `json:"success"`
		Errors  map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Contains(t, body.Errors, "title")
	assert.Contains(t, body.Errors, "content")
	assert.Contains(t, body.Errors, "tags")
}

func TestUnderscore(t *testing.T) {
	assert.Equal(t, "display_name", Underscore("DisplayName"))
	assert.Equal(t, "avatar_url", Underscore("AvatarURL"))
	assert.Equal(t, "question_id", Underscore("QuestionID"))
	assert.Equal(t, "title", Underscore("Title"))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "digital-marketing", Slugify("Digital Marketing"))
	assert.Equal(t, "umkm", Slugify("  UMKM  "))
	assert.Equal(t, "f-b-kuliner", Slugify("F&B / Kuliner"))
	assert.Equal(t, "keuangan usaha", NormalizeTagName("  Keuangan   Usaha "))
}
