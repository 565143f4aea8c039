package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	ngrokAttempts   = 10
	ngrokRetryDelay = 3 * time.Second
)

type ngrokTunnel struct {
	PublicURL string `json:"public_url"`
	Proto     string `json:"proto"`
}

// detectNgrokURL polls the ngrok local API for a public tunnel URL. Telegram
// requires an HTTPS endpoint, so HTTPS tunnels win over anything else. The
// retry loop covers the window where the ngrok container is still starting.
func detectNgrokURL(ctx context.Context, apiBase string) (string, error) {
	url := apiBase + "/api/tunnels"
	client := &http.Client{Timeout: 5 * time.Second}

	var lastErr error
	for attempt := 0; attempt < ngrokAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(ngrokRetryDelay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return "", fmt.Errorf("failed to create ngrok API request: %w", err)
		}

		resp, err := client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		var payload struct {
			Tunnels []ngrokTunnel `json:"tunnels"`
		}
		err = json.NewDecoder(resp.Body).Decode(&payload)
		resp.Body.Close()
		if err != nil {
			return "", fmt.Errorf("failed to decode ngrok API response: %w", err)
		}

		for _, t := range payload.Tunnels {
			if t.Proto == "https" {
				return t.PublicURL, nil
			}
		}
		if len(payload.Tunnels) > 0 {
			return payload.Tunnels[0].PublicURL, nil
		}

		lastErr = fmt.Errorf("no active tunnels")
	}

	return "", fmt.Errorf("ngrok URL not available after %d attempts: %w", ngrokAttempts, lastErr)
}
