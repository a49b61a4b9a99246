package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSONError(t *testing.T) {
	w := httptest.NewRecorder()
	WriteJSONError(w, "Not found", http.StatusNotFound)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Not found", body["error"])
}

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()
	WriteJSON(w, http.StatusOK, map[string]int64{"order_id": 42})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"order_id":42}`, w.Body.String())
}

func TestPointers(t *testing.T) {
	assert.True(t, *BoolPtr(true))
	assert.False(t, *BoolPtr(false))
}

func TestParseInt64(t *testing.T) {
	n, ok := ParseInt64("7")
	assert.True(t, ok)
	assert.Equal(t, int64(7), n)

	_, ok = ParseInt64("")
	assert.False(t, ok)

	_, ok = ParseInt64("seven")
	assert.False(t, ok)
}
