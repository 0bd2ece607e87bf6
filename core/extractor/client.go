package extractor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"results-manager/core/reconcile"
)

// ErrMalformedPayload marks an extractor response that did not survive
// shape validation. Distinct from transport errors so the caller can
// decide whether retrying the model even makes sense.
var ErrMalformedPayload = errors.New("malformed extractor payload")

var (
	isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern    = regexp.MustCompile(`^(\d{1,2}):(\d{1,2})$`)
)

// Client calls a chat completion API to parse result page HTML.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// NewClient creates an extraction client using the supplied configuration.
func NewClient(cfg Config, opts ...Option) *Client {
	timeout := 120 * time.Second
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Extract parses one legacy result page into structured events. The raw
// model output is validated and normalized before being returned; nothing
// downstream needs to defend against partial shapes.
func (c *Client) Extract(ctx context.Context, html string) ([]reconcile.ParsedEvent, error) {
	if strings.TrimSpace(c.cfg.APIKey) == "" {
		return nil, errors.New("extract: api key required")
	}
	if strings.TrimSpace(html) == "" {
		return nil, fmt.Errorf("%w: empty page", ErrMalformedPayload)
	}

	content, err := c.complete(ctx, html)
	if err != nil {
		return nil, err
	}

	var raw rawPayload
	if err := json.Unmarshal([]byte(stripCodeFences(content)), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	return validatePayload(raw)
}

type chatRequest struct {
	Model          string            `json:"model"`
	Messages       []chatMessage     `json:"messages"`
	Temperature    float64           `json:"temperature"`
	ResponseFormat map[string]string `json:"response_format"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *Client) complete(ctx context.Context, html string) (string, error) {
	payload := chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: extractionPrompt},
			{Role: "user", Content: html},
		},
		Temperature:    0,
		ResponseFormat: map[string]string{"type": "json_object"},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("extract: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("extract: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("extract: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("extract: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("extract: http %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("extract: decode response: %w", err)
	}
	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("%w: empty completion", ErrMalformedPayload)
	}
	return parsed.Choices[0].Message.Content, nil
}

// rawPayload mirrors the JSON shape demanded by the prompt. Everything is
// optional at decode time; validatePayload decides what is acceptable.
type rawPayload struct {
	Events []rawEvent `json:"events"`
}

type rawEvent struct {
	Date     string     `json:"date"`
	Name     string     `json:"name"`
	Distance float64    `json:"distance"`
	Riders   []rawRider `json:"riders"`
}

type rawRider struct {
	Name      string  `json:"name"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Time      *string `json:"time"`
	Status    *string `json:"status"`
}

func validatePayload(raw rawPayload) ([]reconcile.ParsedEvent, error) {
	events := make([]reconcile.ParsedEvent, 0, len(raw.Events))

	for i, re := range raw.Events {
		if !isoDatePattern.MatchString(re.Date) {
			return nil, fmt.Errorf("%w: event %d: bad date %q", ErrMalformedPayload, i, re.Date)
		}
		if strings.TrimSpace(re.Name) == "" {
			return nil, fmt.Errorf("%w: event %d: empty name", ErrMalformedPayload, i)
		}
		if re.Distance <= 0 {
			return nil, fmt.Errorf("%w: event %d: bad distance %v", ErrMalformedPayload, i, re.Distance)
		}

		event := reconcile.ParsedEvent{
			Date:       re.Date,
			Name:       strings.TrimSpace(re.Name),
			DistanceKm: re.Distance,
			Riders:     make([]reconcile.ParsedRiderResult, 0, len(re.Riders)),
		}

		for j, rr := range re.Riders {
			rider, err := validateRider(rr)
			if err != nil {
				return nil, fmt.Errorf("%w: event %d rider %d: %v", ErrMalformedPayload, i, j, err)
			}
			event.Riders = append(event.Riders, rider)
		}

		events = append(events, event)
	}

	return events, nil
}

func validateRider(rr rawRider) (reconcile.ParsedRiderResult, error) {
	var empty reconcile.ParsedRiderResult

	fullName := strings.TrimSpace(rr.Name)
	if fullName == "" {
		return empty, errors.New("empty name")
	}

	rider := reconcile.ParsedRiderResult{
		FullName:  fullName,
		FirstName: strings.TrimSpace(rr.FirstName),
		LastName:  strings.TrimSpace(rr.LastName),
	}

	if rr.Time != nil && strings.TrimSpace(*rr.Time) != "" {
		normalized, err := normalizeExtractedTime(*rr.Time)
		if err != nil {
			return empty, err
		}
		rider.Time = normalized
	}

	if rr.Status != nil && strings.TrimSpace(*rr.Status) != "" {
		status := strings.ToLower(strings.TrimSpace(*rr.Status))
		switch status {
		case reconcile.StatusFinished, reconcile.StatusDNF, reconcile.StatusDNS:
			rider.Status = status
		default:
			return empty, fmt.Errorf("unknown status %q", *rr.Status)
		}
	}

	return rider, nil
}

// normalizeExtractedTime brings a model-emitted time to H:MM: leading
// zero dropped from the hour, minutes zero-padded.
func normalizeExtractedTime(t string) (string, error) {
	m := timePattern.FindStringSubmatch(strings.TrimSpace(t))
	if m == nil {
		return "", fmt.Errorf("bad time %q", t)
	}
	hours := strings.TrimLeft(m[1], "0")
	if hours == "" {
		hours = "0"
	}
	minutes := m[2]
	if len(minutes) == 1 {
		minutes = "0" + minutes
	}
	return hours + ":" + minutes, nil
}

// stripCodeFences tolerates models that wrap JSON in a markdown fence
// despite the JSON-only instruction.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
