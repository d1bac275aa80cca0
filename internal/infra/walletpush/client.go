package walletpush

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"qwikker-loyalty/internal/domain/program"
	"qwikker-loyalty/internal/pkg/config"
	"qwikker-loyalty/internal/pkg/errs"
)

// Client is a thin transport over the WalletPush pass-update API. There is
// no vendor SDK; the surface is one endpoint that sets a single field on a
// rendered pass, optionally raising a lock-screen alert.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

func NewClient(cfg config.WalletPushConfig) *Client {
	return &Client{
		endpoint: cfg.Endpoint,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type updateFieldRequest struct {
	Value string `json:"value"`
	Alert bool   `json:"alert,omitempty"`
}

// UpdatePassField sets one field on the pass identified by serial. Programs
// without wallet credentials are silently skipped; a pass that was never
// rendered cannot be updated.
func (c *Client) UpdatePassField(ctx context.Context, creds *program.WalletPushCredentials, serial, field, value string, isAlert bool) error {
	if creds == nil || serial == "" {
		return nil
	}

	payload, err := json.Marshal(updateFieldRequest{Value: value, Alert: isAlert})
	if err != nil {
		return errs.Wrap(err, "failed to marshal pass field update")
	}

	url := fmt.Sprintf("%s/templates/%s/passes/%s/fields/%s", c.endpoint, creds.TemplateID, serial, field)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(payload))
	if err != nil {
		return errs.Wrap(err, "failed to build pass field update request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", creds.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Wrap(err, "wallet pass update request failed")
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 {
		return errs.New(fmt.Sprintf("wallet pass update returned status %d", resp.StatusCode))
	}
	return nil
}
