// Package apiclient is the HTTP client the intake wizard submits through.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"physioheal/models"
	"physioheal/utils"
)

const fallbackCreateMessage = "Failed to create booking"

// Client talks to the booking API. BaseURL includes the /api prefix, e.g.
// "http://localhost:8080/api".
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New returns a client with the default HTTP transport.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: http.DefaultClient,
	}
}

// CreateBooking POSTs one booking payload. A non-success status yields a
// SubmissionError carrying the server's message; a transport failure yields a
// NetworkError. The idempotency key, when set, lets the server de-duplicate
// retried submissions.
func (c *Client) CreateBooking(ctx context.Context, input models.BookingInput, idempotencyKey string) (*models.BookingRecord, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/bookings", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if idempotencyKey != "" {
		req.Header.Set(utils.IdempotencyKeyHeader, idempotencyKey)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &SubmissionError{
			StatusCode: resp.StatusCode,
			Message:    extractErrorMessage(resp),
		}
	}

	var record models.BookingRecord
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, err
	}
	return &record, nil
}

// ListBookings fetches every booking, newest first.
func (c *Client) ListBookings(ctx context.Context) ([]models.BookingRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/bookings", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &SubmissionError{
			StatusCode: resp.StatusCode,
			Message:    extractErrorMessage(resp),
		}
	}

	var records []models.BookingRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, err
	}
	return records, nil
}

func extractErrorMessage(resp *http.Response) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		return body.Message
	}
	return fallbackCreateMessage
}
