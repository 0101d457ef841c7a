package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, serverURL string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--base-url", serverURL}, args...))
	t.Cleanup(func() { sessionID = "" })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSendCommand(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"reply":"We're experiencing high traffic.","sessionId":"sess-9","error":"RATE_LIMIT_ERROR"}`))
	}))
	defer server.Close()

	out, err := runCLI(t, server.URL, "send", "Hello", "there")
	require.NoError(t, err)
	assert.Contains(t, out, "session: sess-9")
	assert.Contains(t, out, "warning: RATE_LIMIT_ERROR")
	assert.Contains(t, out, "high traffic")
}

func TestHistoryCommand_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Conversation not found"}`))
	}))
	defer server.Close()

	_, err := runCLI(t, server.URL, "history", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestFAQCommand(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":"1","category":"returns","question":"Can I return?","answer":"Within 30 days."}]}`))
	}))
	defer server.Close()

	out, err := runCLI(t, server.URL, "faq")
	require.NoError(t, err)
	assert.Contains(t, out, "== RETURNS ==")
	assert.Contains(t, out, "Q: Can I return?\nA: Within 30 days.")
}
