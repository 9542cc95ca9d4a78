package settlement

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"fairwager/config"
	"fairwager/pkg/apperror"

	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// transferRequest is the JSON body posted to the external transfer API.
type transferRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount int64  `json:"amount"`
}

// HTTPTransfer talks to the external settlement layer over HTTP. It is the
// only component that moves real money; everything upstream treats it as an
// opaque, slow, fallible call.
type HTTPTransfer struct {
	endpoint string
	apiKey   string
	client   HTTPClient
	log      zerolog.Logger
}

// NewHTTPTransfer creates a transfer client against the configured endpoint.
func NewHTTPTransfer(cfg config.SettlementConfig, client HTTPClient, log zerolog.Logger) *HTTPTransfer {
	if client == nil {
		client = &http.Client{Timeout: cfg.RequestTimeout}
	}
	return &HTTPTransfer{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		client:   client,
		log:      log.With().Str("component", "settlement_transfer").Logger(),
	}
}

// Transfer moves amount from one external address to another. Any non-2xx
// response is a failure; the reconciler decides whether to retry.
func (t *HTTPTransfer) Transfer(ctx context.Context, from, to string, amount int64) error {
	body, err := json.Marshal(transferRequest{From: from, To: to, Amount: amount})
	if err != nil {
		return apperror.ErrSettlementFailure(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint+"/transfers", bytes.NewReader(body))
	if err != nil {
		return apperror.ErrSettlementFailure(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if t.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+t.apiKey)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return apperror.ErrSettlementFailure(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		t.log.Warn().
			Int("status", resp.StatusCode).
			Str("to", to).
			Int64("amount", amount).
			Msg("transfer rejected")
		return apperror.ErrSettlementFailure(fmt.Errorf("transfer API returned %d: %s", resp.StatusCode, snippet))
	}

	return nil
}
