package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"mentor-booking-service/api"
	"mentor-booking-service/internal/models"
	"mentor-booking-service/pkg/response"
)

// Client talks to the mentor platform API: availability configs, reviews and
// the authoritative booking endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) FetchAvailability(ctx context.Context, mentorID string) (*models.AvailabilityConfig, error) {
	const op = "upstream.Client.FetchAvailability"

	body, err := c.get(ctx, fmt.Sprintf("%s/mentors/%s/availability", c.baseURL, mentorID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cfg, err := models.ParseAvailabilityConfig(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if cfg.MentorID == "" {
		cfg.MentorID = mentorID
	}

	return cfg, nil
}

func (c *Client) FetchReviews(ctx context.Context, mentorID string) ([]models.Review, error) {
	const op = "upstream.Client.FetchReviews"

	body, err := c.get(ctx, fmt.Sprintf("%s/mentors/%s/reviews", c.baseURL, mentorID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var reviews []models.Review
	if err := json.Unmarshal(body, &reviews); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return reviews, nil
}

func (c *Client) SubmitBooking(ctx context.Context, mentorID string, payload *api.BookingPayload) (*api.BookingConfirmation, error) {
	const op = "upstream.Client.SubmitBooking"

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	url := fmt.Sprintf("%s/mentors/%s/bookings", c.baseURL, mentorID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, response.ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
	case resp.StatusCode == http.StatusConflict:
		return nil, fmt.Errorf("%s: %w", op, response.ErrSlotNotAvailable)
	case resp.StatusCode >= 300:
		return nil, fmt.Errorf("%s: status %d: %w", op, resp.StatusCode, response.ErrUpstream)
	}

	var confirmation api.BookingConfirmation
	if err := json.Unmarshal(body, &confirmation); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &confirmation, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", response.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, response.ErrNotFound
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("status %d: %w", resp.StatusCode, response.ErrUpstream)
	}

	return io.ReadAll(resp.Body)
}
