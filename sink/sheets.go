// Package sink delivers form and account telemetry to the external
// spreadsheet webhook. The endpoint is opaque: its response is never
// inspected, and delivery failures are logged and swallowed.
package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/ashoplabs/sitekit/core"
)

// Config configures the spreadsheet sink.
type Config struct {
	// URL is the webhook endpoint. Required.
	URL string

	// Client defaults to http.DefaultClient. The original caller set
	// no timeout; supply a client with one if you want it.
	Client *http.Client

	// Logger defaults to the logrus standard logger.
	Logger *logrus.Logger
}

// Sheets posts JSON payloads to the spreadsheet webhook.
type Sheets struct {
	url    string
	client *http.Client
	log    *logrus.Logger
}

var _ core.Sink = (*Sheets)(nil)

func New(cfg Config) *Sheets {
	client := cfg.Client
	if client == nil {
		client = http.DefaultClient
	}
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Sheets{url: cfg.URL, client: client, log: log}
}

// Submit posts the payload. Only transport failures are reported; the
// response status and body are deliberately ignored, matching the
// fire-and-forget contract with the endpoint.
func (s *Sheets) Submit(ctx context.Context, p core.Payload) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode %s payload: %w", p.Form(), err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build sink request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("sink request failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	return nil
}

// SubmitAsync fires Submit on its own goroutine, logging any failure.
// Callers get control back immediately; delivery is never awaited.
func (s *Sheets) SubmitAsync(p core.Payload) {
	go func() {
		if err := s.Submit(context.Background(), p); err != nil {
			s.log.WithError(err).WithField("formType", p.Form()).
				Warn("sink delivery failed")
		}
	}()
}
