// Package vision reads scorecard photos through an external vision service
// that answers with the scorecard as JSON text.
package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/Black-And-White-Club/birdie-buddy/app/shared/attr"
	"github.com/sony/gobreaker"
)

var (
	// ErrNotConfigured is returned when no endpoint is set.
	ErrNotConfigured = errors.New("vision service not configured")
	// ErrUnavailable is returned while the circuit breaker is open.
	ErrUnavailable = errors.New("vision service unavailable")
)

const maxResponseBytes = 1 << 20

// Prompt is sent with every image.
const Prompt = `You are a golf scorecard parser. The image may be rotated.
For each hole played extract the hole number (1-18), par (3, 4 or 5) and every shot with:
- shot number (1, 2, 3, ...)
- start distance to the hole (yards, or feet on the green)
- lie: one of "tee", "fairway", "rough", "recovery", "penalty", "sand", "green",
  marked on the card as T, F, R, X, P, S, G.
Return only a JSON object of the form
{"holes":[{"number":1,"par":4,"shots":[{"number":1,"start_distance":380,"lie":"tee"}]}]}
and include only holes that have shot data.`

type Config struct {
	Endpoint    string
	APIKey      string
	Timeout     time.Duration
	MaxFailures uint32
	OpenTimeout time.Duration
}

type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	logger     *slog.Logger
}

type readRequest struct {
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
	Prompt    string `json:"prompt"`
}

type readResponse struct {
	Text string `json:"text"`
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.MaxFailures == 0 {
		cfg.MaxFailures = 3
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 30 * time.Second
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "vision",
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.MaxFailures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Vision circuit breaker state changed",
				attr.String("breaker", name),
				attr.String("from_state", from.String()),
				attr.String("to_state", to.String()),
			)
		},
	})

	return &Client{
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		breaker:    cb,
		logger:     logger,
	}
}

// ReadScorecard sends the image and returns the service's text answer.
func (c *Client) ReadScorecard(ctx context.Context, image []byte, mediaType string) (string, error) {
	if c.endpoint == "" {
		return "", ErrNotConfigured
	}

	out, err := c.breaker.Execute(func() (interface{}, error) {
		return c.post(ctx, image, mediaType)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return "", err
	}
	return out.(string), nil
}

func (c *Client) post(ctx context.Context, image []byte, mediaType string) (string, error) {
	body, err := json.Marshal(readRequest{
		MediaType: mediaType,
		Data:      base64.StdEncoding.EncodeToString(image),
		Prompt:    Prompt,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode vision request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build vision request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("vision request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read vision response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("vision service returned status %d", resp.StatusCode)
	}

	var out readResponse
	if err := json.Unmarshal(payload, &out); err != nil {
		return "", fmt.Errorf("failed to decode vision response: %w", err)
	}
	c.logger.DebugContext(ctx, "Vision response received", attr.Int("bytes", len(out.Text)))
	return out.Text, nil
}

// MediaTypeFor returns the image media type for a filename, or "" when the
// extension is not an image the vision service accepts.
func MediaTypeFor(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg", ".heic":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return ""
	}
}
