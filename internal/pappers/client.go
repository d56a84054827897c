// Package pappers provides a client for the Pappers.fr company-registry API.
package pappers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bmarchand/pappers-mcp/internal/common"
	"github.com/bmarchand/pappers-mcp/internal/models"
)

// DefaultBaseURL is the production Pappers API endpoint.
const DefaultBaseURL = "https://api.pappers.fr/v2"

// MaxPerPage is the largest page size the upstream accepts. Larger requests
// are clamped before the call.
const MaxPerPage = 100

// ErrNotFound is returned when the upstream reports no company for the
// requested SIREN.
var ErrNotFound = errors.New("company not found")

// StatusError is returned for upstream HTTP error statuses other than 404.
// It keeps the status code and raw body so callers can branch on the status
// instead of parsing a flattened message.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("pappers api status %d: %s", e.Code, e.Body)
}

// Client is an HTTP client for the Pappers company search and lookup
// endpoints. Every request carries the static api-key header.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *common.Logger
}

// NewClient creates a client from config. The HTTP timeout bounds the single
// upstream attempt per call; there are no retries.
func NewClient(cfg common.PappersConfig, logger *common.Logger) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(base, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.GetTimeout()},
		logger:     logger,
	}
}

// SearchCompanies queries the full-text search endpoint. The upstream page
// size is clamped to MaxPerPage, but the caller's requested values are echoed
// back in the result metadata.
func (c *Client) SearchCompanies(ctx context.Context, query string, page, perPage int) (*models.SearchResult, error) {
	effective := perPage
	if effective > MaxPerPage {
		effective = MaxPerPage
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("par_page", strconv.Itoa(effective))

	body, err := c.get(ctx, "recherche", params)
	if err != nil {
		return nil, err
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	result := &models.SearchResult{
		Total:     resp.Total,
		Page:      page,
		PerPage:   perPage,
		Companies: make([]models.CompanySummary, 0, len(resp.Resultats)),
	}
	for _, r := range resp.Resultats {
		result.Companies = append(result.Companies, r.toSummary())
	}
	return result, nil
}

// GetCompany looks up a company by SIREN. Returns ErrNotFound when the
// upstream answers 404. SIREN format validation is the caller's concern.
func (c *Client) GetCompany(ctx context.Context, siren string) (*models.CompanyDetail, error) {
	params := url.Values{}
	params.Set("siren", siren)

	body, err := c.get(ctx, "entreprise", params)
	if err != nil {
		return nil, err
	}

	var resp companyResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode company response: %w", err)
	}
	return resp.toDetail(), nil
}

// get performs a GET against the named endpoint and returns the response
// body. 404 maps to ErrNotFound, other error statuses to *StatusError.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	reqURL := c.baseURL + "/" + endpoint + "?" + params.Encode()

	c.logger.Debug().
		Str("method", "GET").
		Str("endpoint", endpoint).
		Msg("Pappers API Request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("api-key", c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logger.Error().Err(err).Str("endpoint", endpoint).Dur("duration", duration).Msg("Pappers API Request Failed")
		return nil, fmt.Errorf("pappers request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug().
		Str("status", resp.Status).
		Int("status_code", resp.StatusCode).
		Dur("duration", duration).
		Msg("Pappers API Response")

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode >= 400 {
		return nil, &StatusError{Code: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}
