package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestReadBody_JSON_Success(t *testing.T) {
	type testStruct struct {
		Name string `json:"name"`
	}
	expected := testStruct{Name: "test"}

	bodyJSON, _ := json.Marshal(expected)
	req := httptest.NewRequest("POST", "/", bytes.NewReader(bodyJSON))
	req.Header.Set("Content-Type", "application/json")

	got, err := readBody[testStruct](req)

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestReadBody_NoContentType_DefaultsToJSON(t *testing.T) {
	type testStruct struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"test"}`))

	got, err := readBody[testStruct](req)

	require.NoError(t, err)
	assert.Equal(t, "test", got.Name)
}

func TestReadBody_UnsupportedContentType(t *testing.T) {
	type testStruct struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest("POST", "/", strings.NewReader("name=test"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	_, err := readBody[testStruct](req)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported content type")
}

func TestReadBody_InvalidJSON(t *testing.T) {
	type testStruct struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest("POST", "/", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")

	_, err := readBody[testStruct](req)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse request body")
}

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()

	writeJSON(w, zap.NewNop().Sugar(), map[string]string{"key": "value"}, http.StatusCreated)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"key":"value"}`, w.Body.String())
}

func TestQueryInt(t *testing.T) {
	req := httptest.NewRequest("GET", "/?skip=5&take=abc", nil)

	assert.Equal(t, 5, queryInt(req, "skip", 0))
	assert.Equal(t, 10, queryInt(req, "take", 10))
	assert.Equal(t, 20, queryInt(req, "missing", 20))
}
