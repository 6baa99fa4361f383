// Package remote serves dashboard models published by another service.
package remote

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	dashboard "github.com/goliatone/go-dealer-dashboard/components/dashboard"
)

const maxDocumentBytes = 4 << 20

// HTTPConfig configures the HTTP model source.
type HTTPConfig struct {
	URL        string
	APIKey     string
	HTTPClient *http.Client
}

// HTTPSource fetches a model document over HTTP on every render.
type HTTPSource struct {
	url    string
	apiKey string
	client *http.Client
}

var _ dashboard.ModelSource = (*HTTPSource)(nil)

// NewHTTPSource builds a source for a remote YAML or JSON model document.
func NewHTTPSource(cfg HTTPConfig) (*HTTPSource, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("remote: url is required")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPSource{
		url:    cfg.URL,
		apiKey: cfg.APIKey,
		client: httpClient,
	}, nil
}

// IsURL reports whether ref names a remote document.
func IsURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// Model implements dashboard.ModelSource.
func (s *HTTPSource) Model(ctx context.Context) (dashboard.DashboardModel, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return dashboard.DashboardModel{}, fmt.Errorf("remote: build request: %w", err)
	}
	req.Header.Set("Accept", "application/yaml, application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return dashboard.DashboardModel{}, fmt.Errorf("remote: http request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(io.LimitReader(resp.Body, 1024))
		return dashboard.DashboardModel{}, fmt.Errorf("remote: remote error %d: %s", resp.StatusCode, strings.TrimSpace(buf.String()))
	}
	doc, err := dashboard.DecodeModel(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		return dashboard.DashboardModel{}, err
	}
	if doc.Model.LastUpdated.IsZero() {
		if modified, err := http.ParseTime(resp.Header.Get("Last-Modified")); err == nil {
			doc.Model.LastUpdated = modified
		}
	}
	return doc.Model, nil
}

// Hook registers a remote source under name in every new registry.
func Hook(name string, cfg HTTPConfig) dashboard.SourceHook {
	return func(reg *dashboard.SourceRegistry) error {
		source, err := NewHTTPSource(cfg)
		if err != nil {
			return err
		}
		return reg.Register(name, source)
	}
}
