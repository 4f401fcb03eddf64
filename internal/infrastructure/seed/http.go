package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/exp/slog"
)

// maxSeedSize - ограничение на размер ответа
const maxSeedSize = 32 << 20

// ErrTooLarge - ответ больше допустимого размера, усеченные данные не отдаются
var ErrTooLarge = errors.New("seed too large")

// HTTP - начальные данные по URL
type HTTP struct {
	client    *http.Client
	url       string
	userAgent string
	maxSize   int64
	log       *slog.Logger
}

func NewHTTP(url string, timeout time.Duration, log *slog.Logger) *HTTP {
	return &HTTP{
		client: &http.Client{
			Timeout: timeout,
		},
		url:       url,
		userAgent: "ReceiveCopy/1.0",
		maxSize:   maxSeedSize,
		log:       log.With("component", "seed_http"),
	}
}

func (h *HTTP) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build seed request: %w", err)
	}
	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("seed unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("seed returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, h.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("read seed body: %w", err)
	}
	if int64(len(data)) > h.maxSize {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, h.maxSize)
	}

	h.log.Debug("seed fetched", "url", h.url, "bytes", len(data), "duration", time.Since(start))
	return data, nil
}

func (h *HTTP) String() string {
	return h.url
}
