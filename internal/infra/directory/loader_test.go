package directory

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"agentverse/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLoader(agentsSource, feedSource string) *Loader {
	return NewLoader(&config.Config{
		Directory: &config.DirectoryConfig{
			AgentsSource:       agentsSource,
			ExternalFeedSource: feedSource,
		},
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestLoader_Agents_FromLocalFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "agents.json")
	payload := `[{"name":"EchoBot","url":"https://echo.example.com","description":"echoes"}]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	loader := newTestLoader(path, "")

	agents := loader.Agents(context.Background())
	require.Len(t, agents, 1)
	assert.Equal(t, "EchoBot", agents[0].Name)
}

func TestLoader_Agents_FromHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[{"name":"NetBot"}]`))
	}))
	defer server.Close()

	loader := newTestLoader(server.URL, "")

	agents := loader.Agents(context.Background())
	require.Len(t, agents, 1)
	assert.Equal(t, "NetBot", agents[0].Name)
}

func TestLoader_Agents_FailSoftOnMissingSource(t *testing.T) {
	loader := newTestLoader("/nonexistent/agents.json", "")

	agents := loader.Agents(context.Background())
	assert.NotNil(t, agents)
	assert.Empty(t, agents)
}

func TestLoader_Agents_FailSoftOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	loader := newTestLoader(server.URL, "")

	assert.Empty(t, loader.Agents(context.Background()))
}

func TestLoader_Agents_FailSoftOnMalformedPayload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "agents.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))

	loader := newTestLoader(path, "")

	assert.Empty(t, loader.Agents(context.Background()))
}

func TestLoader_ExternalFeed_EmptyWhenUnconfigured(t *testing.T) {
	loader := newTestLoader("", "")

	items := loader.ExternalFeed(context.Background())
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
