package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, apiKey string, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return New(Config{BaseURL: server.URL + "/", APIKey: apiKey})
}

func TestNew_Defaults(t *testing.T) {
	client := New(Config{})
	require.Equal(t, DefaultBaseURL, client.BaseURL())

	client = New(Config{BaseURL: " https://api.example.com/ "})
	require.Equal(t, "https://api.example.com", client.BaseURL())
}

func TestClient_Headers(t *testing.T) {
	var seen http.Header
	client := newTestClient(t, "secret", func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Clone()
		w.WriteHeader(http.StatusNoContent)
	})
	ctx := context.Background()

	// Privileged request carries the key
	require.NoError(t, client.DeleteProject(ctx, "3"))
	require.Equal(t, "secret", seen.Get(HeaderAPIKey))
	_, err := uuid.Parse(seen.Get(HeaderRequestID))
	require.NoError(t, err)

	// Public request does not
	_, _ = client.ListProjects(ctx)
	require.Empty(t, seen.Get(HeaderAPIKey))
}

func TestClient_NoKeyConfigured(t *testing.T) {
	var seen http.Header
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Clone()
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.DeleteProject(context.Background(), "3"))
	_, present := seen[http.CanonicalHeaderKey(HeaderAPIKey)]
	require.False(t, present)
}

func TestBodyMessage(t *testing.T) {
	msg, ok := bodyMessage([]byte(`{"error":"title required"}`))
	require.True(t, ok)
	require.Equal(t, "title required", msg)

	_, ok = bodyMessage([]byte(`{"message":"nope"}`))
	require.False(t, ok)

	_, ok = bodyMessage([]byte(`<html>bad gateway</html>`))
	require.False(t, ok)
}
