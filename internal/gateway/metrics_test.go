package gateway

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"supplydesk/internal/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInstrument(t *testing.T) {
	f := newFixture()
	f.products.On("GetList", mock.Anything).Return(nil, assert.AnError)

	m := metrics.NewActions()
	h := Instrument(m)(f.handler)

	do(h, http.MethodGet, "/api?action=products", "")
	do(h, http.MethodGet, "/api?action=bogus", "")
	do(h, http.MethodOptions, "/api?action=products", "")

	snap := m.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "products", snap[0].Action)
	assert.Equal(t, uint64(1), snap[0].Requests)
	assert.Equal(t, uint64(1), snap[0].Failures)
	assert.Equal(t, "unknown", snap[1].Action)
	assert.Equal(t, uint64(1), snap[1].Failures)

	w := httptest.NewRecorder()
	MetricsHandler(m).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	var body struct {
		Actions []metrics.ActionSnapshot `json:"actions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Actions, 2)
}

func TestInstrument_UnrecognisedActionsShareOneKey(t *testing.T) {
	m := metrics.NewActions()
	h := Instrument(m)(newFixture().handler)

	for i := 0; i < 1000; i++ {
		do(h, http.MethodGet, fmt.Sprintf("/api?action=junk%d", i), "")
	}
	do(h, http.MethodGet, "/api", "")

	snap := m.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "none", snap[0].Action)
	assert.Equal(t, "unknown", snap[1].Action)
	assert.Equal(t, uint64(1000), snap[1].Requests)
	assert.Equal(t, uint64(1000), snap[1].Failures)
}

func TestMetricLabel(t *testing.T) {
	cases := map[string]string{
		"/api?action=orders":       "orders",
		"/api?action=update_order": "update_order",
		"/api?action=ORDERS":       "unknown",
		"/api":                     "none",
		"/api?action=%3Cscript%3E": "unknown",
	}
	for target, want := range cases {
		assert.Equal(t, want, metricLabel(httptest.NewRequest(http.MethodGet, target, nil)), target)
	}
}
