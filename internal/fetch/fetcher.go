// Package fetch retrieves live pages from government portals, extracts their
// readable text, and caches the result per URL.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/nyayalegal/nyaya/internal/config"
	"github.com/nyayalegal/nyaya/internal/models"
	"github.com/nyayalegal/nyaya/pkg/utils"
)

// browserHeaders are sent with every request. Several government portals
// return empty or stub pages to clients without a browser-looking UA.
var browserHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	"Accept-Language": "en-US,en;q=0.9",
}

// Fetcher fetches a source page and returns its extracted text. Failures are
// reported as absence, not errors: the fusion pipeline treats an unreachable
// or unusable source the same way and moves on to the next one.
type Fetcher struct {
	client  *http.Client
	cache   Cache
	limiter *hostLimiter
	cfg     config.FetchConfig
	logger  *zap.Logger
}

// NewFetcher builds a fetcher from cfg. The HTTP client follows redirects
// and carries the configured per-fetch timeout.
func NewFetcher(cfg config.FetchConfig, cache Cache, logger *zap.Logger) *Fetcher {
	return &Fetcher{
		client:  &http.Client{Timeout: cfg.Timeout},
		cache:   cache,
		limiter: newHostLimiter(cfg.RequestsPerSecond, cfg.Burst),
		cfg:     cfg,
		logger:  logger,
	}
}

// Fetch returns the labeled page text for src, or ok=false when the page is
// unreachable, non-HTML, or too thin to cite. Successful results are cached
// by URL; failures and thin pages never are, so the next request retries.
//
// The cache holds the raw extracted text. The label is applied per call: the
// same URL can be registered under different labels for different topics, and
// a cache hit must cite the label of the source that asked, not the one that
// warmed the entry.
func (f *Fetcher) Fetch(ctx context.Context, src models.Source) (string, bool) {
	if cached, ok := f.cache.Get(src.URL); ok {
		f.logger.Debug("fetch cache hit", zap.String("url", src.URL))
		return label(src.Label, cached), true
	}

	text, err := f.fetchPage(ctx, src.URL)
	if err != nil {
		f.logger.Warn("fetch failed",
			zap.String("url", src.URL),
			zap.Error(err))
		return "", false
	}
	if len(text) < f.cfg.MinContentLen {
		f.logger.Debug("fetched page too thin",
			zap.String("url", src.URL),
			zap.Int("chars", len(text)))
		return "", false
	}

	text = utils.TruncateRaw(text, f.cfg.MaxCharsPerSource)
	f.cache.Set(src.URL, text)
	return label(src.Label, text), true
}

func label(srcLabel, text string) string {
	return fmt.Sprintf("[Source: %s]\n%s", srcLabel, text)
}

func (f *Fetcher) fetchPage(ctx context.Context, url string) (string, error) {
	if err := f.limiter.wait(ctx, url); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, f.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	for key, value := range browserHeaders {
		req.Header.Set(key, value)
	}

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.cfg.MaxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	text := ExtractText(string(body), f.cfg.MaxParagraphs, f.cfg.MinFragmentLen)
	f.logger.Debug("fetched page",
		zap.String("url", url),
		zap.Int("body_bytes", len(body)),
		zap.Int("extracted_chars", len(text)),
		zap.Duration("elapsed", time.Since(start)))
	return text, nil
}
