package vin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DecodedVehicle carries the fields the portal cares about. Anything
// the decoder does not know stays blank.
type DecodedVehicle struct {
	Year  string `json:"year"`
	Make  string `json:"make"`
	Model string `json:"model"`
}

// Client talks to the NHTSA vPIC DecodeVin endpoint.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

type vpicResponse struct {
	Results []struct {
		Variable string `json:"Variable"`
		Value    string `json:"Value"`
	} `json:"Results"`
}

func (c *Client) Decode(ctx context.Context, vinNumber string) (DecodedVehicle, error) {
	endpoint := fmt.Sprintf(
		"%s/api/vehicles/DecodeVin/%s?format=json",
		c.BaseURL,
		url.PathEscape(vinNumber),
	)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return DecodedVehicle{}, fmt.Errorf("vin decode request: %w", err)
	}

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return DecodedVehicle{}, fmt.Errorf("vin decode: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return DecodedVehicle{}, fmt.Errorf("vin decode error (status %d)", resp.StatusCode)
	}

	var out vpicResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return DecodedVehicle{}, fmt.Errorf("vin decode parse: %w", err)
	}

	var decoded DecodedVehicle
	for _, r := range out.Results {
		switch r.Variable {
		case "Model Year":
			decoded.Year = r.Value
		case "Make":
			decoded.Make = r.Value
		case "Model":
			decoded.Model = r.Value
		}
	}

	return decoded, nil
}
