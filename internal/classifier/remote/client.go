package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"mindscore-backend/internal/affect"
	"mindscore-backend/internal/classifier"
)

const defaultTimeout = 10 * time.Second

// Client talks to an external model-serving endpoint. One endpoint serves all
// kinds; the kind is sent with every request.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// NewClient constructs a client for baseURL. A non-positive timeout uses the
// default.
func NewClient(baseURL, apiKey string, timeout time.Duration) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("CLASSIFIER_URL is required for the remote classifier")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		endpoint: baseURL + "/v1/classify",
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// Set returns one classifier per text kind backed by c.
func (c *Client) Set() classifier.Set {
	return classifier.Set{
		TextEmotion: c.For(affect.KindTextEmotion),
		Stress:      c.For(affect.KindStress),
		Sentiment:   c.For(affect.KindSentiment),
	}
}

// For binds c to a single reading kind.
func (c *Client) For(kind affect.Kind) classifier.Classifier {
	return classifier.Func(func(ctx context.Context, input classifier.Input) (affect.Reading, error) {
		return c.classify(ctx, kind, input)
	})
}

type classifyRequest struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

type labelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type classifyResponse struct {
	Label      string       `json:"label"`
	Confidence *float64     `json:"confidence,omitempty"`
	Scores     []labelScore `json:"scores,omitempty"`
	Error      *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (c *Client) classify(ctx context.Context, kind affect.Kind, input classifier.Input) (affect.Reading, error) {
	if strings.TrimSpace(input.Text) == "" {
		return affect.Reading{}, classifier.ErrEmptyInput
	}
	payload, err := json.Marshal(classifyRequest{Kind: string(kind), Text: input.Text})
	if err != nil {
		return affect.Reading{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return affect.Reading{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return affect.Reading{}, fmt.Errorf("classifier request timeout: %w", err)
		}
		return affect.Reading{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return affect.Reading{}, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return affect.Reading{}, &classifier.StatusError{Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var parsed classifyResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return affect.Reading{}, fmt.Errorf("classifier response parse: %w", err)
	}
	if parsed.Error != nil {
		return affect.Reading{}, fmt.Errorf("classifier error: %s", parsed.Error.Message)
	}
	return toReading(kind, parsed)
}

func toReading(kind affect.Kind, parsed classifyResponse) (affect.Reading, error) {
	if parsed.Confidence != nil {
		return affect.Reading{Kind: kind, Category: parsed.Label, Confidence: *parsed.Confidence}, nil
	}
	if len(parsed.Scores) == 0 {
		return affect.Reading{}, fmt.Errorf("classifier response missing confidence")
	}
	best := parsed.Scores[0]
	for _, s := range parsed.Scores[1:] {
		if s.Score > best.Score {
			best = s
		}
	}
	return affect.Reading{Kind: kind, Category: best.Label, Confidence: best.Score}, nil
}
