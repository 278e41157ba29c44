package geography

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pizzeria/backend/internal/domain/geography"
)

// maxResponseSize caps responses from the upstream API (5MB)
const maxResponseSize = 5 * 1024 * 1024

// Client proxies the public Vietnamese administrative-units API
// (provinces, districts, wards). The upstream encodes unit codes as
// numbers; they are normalized to strings here.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given API base URL
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type provincePayload struct {
	Code      json.Number       `json:"code"`
	Name      string            `json:"name"`
	Districts []districtPayload `json:"districts"`
}

type districtPayload struct {
	Code         json.Number   `json:"code"`
	Name         string        `json:"name"`
	ProvinceCode json.Number   `json:"province_code"`
	Wards        []wardPayload `json:"wards"`
}

type wardPayload struct {
	Code         json.Number `json:"code"`
	Name         string      `json:"name"`
	DistrictCode json.Number `json:"district_code"`
}

// Provinces lists all provinces
func (c *Client) Provinces(ctx context.Context) ([]geography.Province, error) {
	body, err := c.get(ctx, "/p/")
	if err != nil {
		return nil, err
	}

	var payload []provincePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: unexpected response: %v", geography.ErrUpstreamUnavailable, err)
	}

	provinces := make([]geography.Province, len(payload))
	for i, p := range payload {
		provinces[i] = geography.Province{Code: p.Code.String(), Name: p.Name}
	}
	return provinces, nil
}

// Districts lists the districts of a province
func (c *Client) Districts(ctx context.Context, provinceCode string) ([]geography.District, error) {
	if err := validateCode(provinceCode); err != nil {
		return nil, err
	}
	body, err := c.get(ctx, "/p/"+url.PathEscape(provinceCode)+"?depth=2")
	if err != nil {
		return nil, err
	}

	var payload provincePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: unexpected response: %v", geography.ErrUpstreamUnavailable, err)
	}

	districts := make([]geography.District, len(payload.Districts))
	for i, d := range payload.Districts {
		districts[i] = geography.District{
			Code:         d.Code.String(),
			Name:         d.Name,
			ProvinceCode: payload.Code.String(),
		}
	}
	return districts, nil
}

// Wards lists the wards of a district
func (c *Client) Wards(ctx context.Context, districtCode string) ([]geography.Ward, error) {
	if err := validateCode(districtCode); err != nil {
		return nil, err
	}
	body, err := c.get(ctx, "/d/"+url.PathEscape(districtCode)+"?depth=2")
	if err != nil {
		return nil, err
	}

	var payload districtPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: unexpected response: %v", geography.ErrUpstreamUnavailable, err)
	}

	wards := make([]geography.Ward, len(payload.Wards))
	for i, w := range payload.Wards {
		wards[i] = geography.Ward{
			Code:         w.Code.String(),
			Name:         w.Name,
			DistrictCode: payload.Code.String(),
		}
	}
	return wards, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("geography: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", geography.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", geography.ErrUpstreamUnavailable, err)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: HTTP %d", geography.ErrUpstreamUnavailable, resp.StatusCode)
	}
	return body, nil
}

func validateCode(code string) error {
	if code == "" {
		return fmt.Errorf("%w: empty unit code", geography.ErrUpstreamUnavailable)
	}
	if _, err := strconv.Atoi(code); err != nil {
		return fmt.Errorf("%w: invalid unit code %q", geography.ErrUpstreamUnavailable, code)
	}
	return nil
}

var _ geography.Directory = (*Client)(nil)
