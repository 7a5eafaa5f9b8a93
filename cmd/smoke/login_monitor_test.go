package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetErrorType(t *testing.T) {
	tests := []struct {
		statusCode int
		want       string
	}{
		{500, "server_error"},
		{503, "server_error"},
		{401, "client_error"},
		{404, "client_error"},
		{0, "timeout_error"},
		{200, "request_error"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, getErrorType(tt.statusCode), "status %d", tt.statusCode)
	}
}

func TestGetStatusEmoji(t *testing.T) {
	require.Equal(t, "✓", getStatusEmoji(200))
	require.Equal(t, "⚠", getStatusEmoji(301))
	require.Equal(t, "✗", getStatusEmoji(401))
	require.Equal(t, "✗", getStatusEmoji(0))
}

func TestPerformLoginCheckSendsRunID(t *testing.T) {
	var runIDs []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		runIDs = append(runIDs, r.Header.Get("X-Probe-Run"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"abc"}`))
	}))
	defer srv.Close()

	performLoginCheck(newProbeClient(), srv.URL+"/api/login")
	performLoginCheck(newProbeClient(), srv.URL+"/api/login")

	require.Len(t, runIDs, 2)
	require.NotEmpty(t, runIDs[0])
	require.NotEmpty(t, runIDs[1])
	require.NotEqual(t, runIDs[0], runIDs[1], "each cycle carries a fresh run id")
}
