// Package directory loads the static agent directory and external feed
// assets. These are decorative read-only resources: every failure reads
// as an empty list, never an error.
package directory

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"agentverse/config"
	"agentverse/internal/domain/entity"

	"github.com/pkg/errors"
)

// maxPayloadBytes caps how much of a directory asset is read.
const maxPayloadBytes = 4 << 20

// Loader reads the static directory assets from local files or HTTP URLs.
type Loader struct {
	agentsSource       string
	externalFeedSource string
	httpClient         *http.Client
	logger             *slog.Logger
}

// NewLoader is the constructor for Loader.
func NewLoader(cfg *config.Config, logger *slog.Logger) *Loader {
	loader := &Loader{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
	if cfg.Directory != nil {
		loader.agentsSource = cfg.Directory.AgentsSource
		loader.externalFeedSource = cfg.Directory.ExternalFeedSource
	}

	return loader
}

// Agents returns the registered external agents. Fail-soft: an
// unreachable source or malformed payload yields an empty list.
func (l *Loader) Agents(ctx context.Context) []entity.DirectoryAgent {
	var agents []entity.DirectoryAgent
	if !l.load(ctx, l.agentsSource, &agents) {
		return []entity.DirectoryAgent{}
	}
	if agents == nil {
		agents = []entity.DirectoryAgent{}
	}

	return agents
}

// ExternalFeed returns the static external feed items. Fail-soft.
func (l *Loader) ExternalFeed(ctx context.Context) []entity.ExternalFeedItem {
	var items []entity.ExternalFeedItem
	if !l.load(ctx, l.externalFeedSource, &items) {
		return []entity.ExternalFeedItem{}
	}
	if items == nil {
		items = []entity.ExternalFeedItem{}
	}

	return items
}

func (l *Loader) load(ctx context.Context, source string, out any) bool {
	if source == "" {
		return false
	}

	payload, err := l.fetch(ctx, source)
	if err != nil {
		l.logger.Warn("failed to fetch directory asset",
			slog.String("source", source),
			slog.Any("error", err),
		)

		return false
	}

	if err := json.Unmarshal(payload, out); err != nil {
		l.logger.Warn("malformed directory asset",
			slog.String("source", source),
			slog.Any("error", err),
		)

		return false
	}

	return true
}

func (l *Loader) fetch(ctx context.Context, source string) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, err
		}

		resp, err := l.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, errors.Errorf("unexpected status %d fetching directory asset", resp.StatusCode)
		}

		return io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	}

	return os.ReadFile(source)
}
