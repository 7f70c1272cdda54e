// Package emailjs is a minimal client for the EmailJS REST API.
package emailjs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the public EmailJS API host
const DefaultBaseURL = "https://api.emailjs.com"

const sendPath = "/api/v1.0/email/send"

// maxErrorBody caps how much of an error response is kept for logs
const maxErrorBody = 1024

type Config struct {
	BaseURL    string
	ServiceID  string
	TemplateID string
	PublicKey  string
	PrivateKey string // optional accessToken
	// Timeout bounds a single send. Zero waits until the relay answers.
	Timeout time.Duration
}

// ResponseError is returned when EmailJS answers with a non-2xx status
type ResponseError struct {
	Status int
	Text   string
}

func (e *ResponseError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("emailjs: status %d", e.Status)
	}
	return fmt.Sprintf("emailjs: status %d: %s", e.Status, e.Text)
}

type sendRequest struct {
	ServiceID      string `json:"service_id"`
	TemplateID     string `json:"template_id"`
	UserID         string `json:"user_id"`
	AccessToken    string `json:"accessToken,omitempty"`
	TemplateParams any    `json:"template_params"`
}

// Client sends templated emails through EmailJS
type Client struct {
	cfg  Config
	http *http.Client
}

// Option allows configuring a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func NewClient(cfg Config, opts ...Option) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	c := &Client{
		cfg:  cfg,
		http: newHTTPClient(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// newHTTPClient has transport timeouts but no overall deadline; the
// per-send deadline comes from Config.Timeout or the caller's context.
func newHTTPClient() *http.Client {
	dialer := &net.Dialer{
		Timeout:   5 * time.Second,
		KeepAlive: 30 * time.Second,
	}
	tr := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         dialer.DialContext,
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        20,
		MaxIdleConnsPerHost: 5,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Transport: tr}
}

// IsConfigured checks that every id the API requires is present
func (c *Client) IsConfigured() bool {
	return c.cfg.ServiceID != "" && c.cfg.TemplateID != "" && c.cfg.PublicKey != ""
}

// Send posts params to the configured template. Any 2xx answer is success;
// the body is not inspected.
func (c *Client) Send(ctx context.Context, params any) error {
	if !c.IsConfigured() {
		return fmt.Errorf("emailjs: service, template and public key are required")
	}

	payload, err := json.Marshal(sendRequest{
		ServiceID:      c.cfg.ServiceID,
		TemplateID:     c.cfg.TemplateID,
		UserID:         c.cfg.PublicKey,
		AccessToken:    c.cfg.PrivateKey,
		TemplateParams: params,
	})
	if err != nil {
		return fmt.Errorf("emailjs: encode request: %w", err)
	}

	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+sendPath, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("emailjs: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("emailjs: send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &ResponseError{Status: resp.StatusCode, Text: strings.TrimSpace(string(body))}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
