package client

import (
	"context"
	"net/http"
)

type signedURLPayload struct {
	SignedURL string `json:"signedUrl"`
}

// FetchOrderVideoURL returns a time-bounded signed playback URL for a
// completed order. The URL is fetched on demand and never cached by the
// client; callers re-fetch when it expires.
func (c *Client) FetchOrderVideoURL(ctx context.Context, orderID string) (string, error) {
	var out signedURLPayload
	if err := c.do(ctx, http.MethodGet, "/orders/"+orderID+"/video-url", nil, nil, &out); err != nil {
		return "", err
	}
	return out.SignedURL, nil
}
