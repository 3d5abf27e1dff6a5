// Package sheets posts registrations to the spreadsheet-backed webhook.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"festRegistration/internal/models"
)

var ErrRejected = errors.New("submission rejected by endpoint")

type Client struct {
	endpoint string
	http     *http.Client
}

func New(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
	}
}

// Encode returns the form fields the endpoint expects.
func Encode(reg models.Registration) url.Values {
	return url.Values{
		"name":        {reg.Name},
		"email":       {reg.Email},
		"phone":       {reg.Phone},
		"college":     {reg.College},
		"events":      {strings.Join(reg.Events, ", ")},
		"totalAmount": {strconv.Itoa(reg.TotalAmount)},
	}
}

// Submit sends one registration. Redirects are followed; any final status
// outside 2xx is reported as ErrRejected.
func (c *Client) Submit(ctx context.Context, reg models.Registration) error {
	const op = "clients.sheets.Submit"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(Encode(reg).Encode()))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	// drain so the connection can be reused
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s: status %d: %w", op, resp.StatusCode, ErrRejected)
	}

	return nil
}
