package client

import (
	"context"
	"net/http"

	"starclip/domain/earnings"
)

// FetchEarnings returns the server-computed earnings snapshot.
func (c *Client) FetchEarnings(ctx context.Context) (earnings.Summary, error) {
	var out earnings.Summary
	if err := c.do(ctx, http.MethodGet, "/dashboard/earnings", nil, nil, &out); err != nil {
		return earnings.Summary{}, err
	}
	return out, nil
}
