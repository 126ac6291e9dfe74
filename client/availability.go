package client

import (
	"context"
	"net/http"

	"starclip/domain/availability"
)

// FetchAvailability returns the creator's current weekly schedule.
func (c *Client) FetchAvailability(ctx context.Context) (availability.Week, error) {
	var out availability.Week
	if err := c.do(ctx, http.MethodGet, "/dashboard/availability", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Normalized(), nil
}

// SaveAvailability persists a full week in one call and returns the schedule
// the server now holds.
func (c *Client) SaveAvailability(ctx context.Context, week availability.Week) (availability.Week, error) {
	week = week.Normalized()
	if err := week.Validate(); err != nil {
		return nil, err
	}

	var out availability.Week
	if err := c.do(ctx, http.MethodPatch, "/dashboard/availability", nil, week, &out); err != nil {
		return nil, err
	}
	return out.Normalized(), nil
}
