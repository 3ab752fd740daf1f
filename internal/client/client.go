package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"

	"github.com/Makepad-fr/smarthire/internal/config"
	"github.com/Makepad-fr/smarthire/internal/logger"
	"github.com/Makepad-fr/smarthire/internal/model"
)

const (
	headerRequestID = "X-Request-ID"
	maxErrorExcerpt = 200
)

// Client talks to the scoring service. It never retries.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	log        logger.Logger
}

type Option func(*Client)

// WithHTTPClient swaps the underlying *http.Client (tests, proxies).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func New(cfg config.APIConfig, log logger.Logger, opts ...Option) *Client {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = config.DefaultUserAgent
	}
	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  ua,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Client) BaseURL() string { return c.baseURL }

// Health calls GET /health.
func (c *Client) Health(ctx context.Context) (model.Health, error) {
	var out model.Health
	err := c.do(ctx, http.MethodGet, "/health", nil, healthSchema, &out)
	return out, err
}

// Jobs calls GET /jobs. Order is the service's.
func (c *Client) Jobs(ctx context.Context) ([]model.Job, error) {
	var out []model.Job
	err := c.do(ctx, http.MethodGet, "/jobs", nil, jobsSchema, &out)
	return out, err
}

// Recommend calls POST /recommend.
func (c *Client) Recommend(ctx context.Context, req model.RecommendRequest) (model.RecommendResponse, error) {
	var out model.RecommendResponse
	err := c.do(ctx, http.MethodPost, "/recommend", req, recommendSchema, &out)
	return out, err
}

// Analyze calls POST /analyze.
func (c *Client) Analyze(ctx context.Context, req model.AnalyzeRequest) (model.AnalysisResponse, error) {
	var out model.AnalysisResponse
	err := c.do(ctx, http.MethodPost, "/analyze", req, analyzeSchema, &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, in any, schema *gojsonschema.Schema, out any) error {
	op := method + " " + path
	reqID := uuid.NewString()
	log := c.log.WithFields(map[string]interface{}{"op": op, "request_id": reqID})

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &RequestError{Kind: KindNetwork, Op: op, RequestID: reqID, Message: "build request", Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(headerRequestID, reqID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	log.Debug("request sent", nil)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Warn("request failed", nil)
		return &RequestError{Kind: KindNetwork, Op: op, RequestID: reqID, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.WithError(err).Warn("read response failed", map[string]interface{}{"status": resp.StatusCode})
		return &RequestError{Kind: KindNetwork, Op: op, RequestID: reqID, Message: "read response", Err: err}
	}
	fields := map[string]interface{}{
		"status":      resp.StatusCode,
		"bytes":       len(raw),
		"duration_ms": time.Since(start).Milliseconds(),
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn("non-success status", fields)
		return &RequestError{
			Kind:      KindHTTP,
			Op:        op,
			Status:    resp.StatusCode,
			RequestID: reqID,
			Message:   excerpt(raw),
		}
	}

	if err := checkShape(schema, raw); err != nil {
		log.WithError(err).Warn("response rejected", fields)
		return &RequestError{Kind: KindParse, Op: op, RequestID: reqID, Err: err}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		log.WithError(err).Warn("response rejected", fields)
		return &RequestError{Kind: KindParse, Op: op, RequestID: reqID, Err: fmt.Errorf("json unmarshal: %w", err)}
	}
	log.Debug("response received", fields)
	return nil
}

func excerpt(b []byte) string {
	s := strings.TrimSpace(string(b))
	if s == "" {
		return "empty body"
	}
	if len(s) > maxErrorExcerpt {
		s = s[:maxErrorExcerpt] + "..."
	}
	return s
}
