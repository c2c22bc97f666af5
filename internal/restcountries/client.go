package restcountries

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/worldview/internal/country"
	"github.com/alexisbeaulieu97/worldview/internal/logger"
	apperrors "github.com/alexisbeaulieu97/worldview/pkg/errors"
)

// DefaultBaseURL is the public REST Countries v3.1 endpoint.
const DefaultBaseURL = "https://restcountries.com/v3.1"

// ListFields is the field projection requested by List.
var ListFields = []string{"cca3", "name", "flags", "population", "region", "capital"}

const (
	opList = "list"
	opGet  = "get"

	maxBodyBytes = 16 << 20
)

// Options configures a Client.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *logger.Logger
	Metrics    *Metrics
	UserAgent  string
}

// Client fetches country records from the REST Countries API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	log       *logger.Logger
	metrics   *Metrics
	userAgent string
}

// New validates opts and builds a Client.
func New(opts Options) (*Client, error) {
	raw := opts.BaseURL
	if raw == "" {
		raw = DefaultBaseURL
	}
	base, err := url.Parse(strings.TrimRight(raw, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse api url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("api url %q must use http or https", raw)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = "worldview"
	}

	return &Client{
		baseURL:   base,
		http:      httpClient,
		log:       opts.Logger.WithFields(map[string]any{"component": "restcountries"}),
		metrics:   opts.Metrics,
		userAgent: userAgent,
	}, nil
}

// ListURL returns the collection endpoint with the field projection applied.
func (c *Client) ListURL() string {
	u := c.baseURL.JoinPath("all")
	u.RawQuery = "fields=" + strings.Join(ListFields, ",")
	return u.String()
}

// CountryURL returns the single-record endpoint for code.
func (c *Client) CountryURL(code string) string {
	return c.baseURL.JoinPath("alpha", code).String()
}

// List fetches the full collection. Records failing validation are skipped
// and repeated codes are dropped so every code in the result is unique.
func (c *Client) List(ctx context.Context) ([]country.Country, error) {
	start := time.Now()
	var countries []country.Country
	err := c.fetch(ctx, opList, c.ListURL(), &countries)
	if err != nil {
		c.metrics.observe(opList, outcomeFor(err), time.Since(start))
		return nil, err
	}

	valid := make([]country.Country, 0, len(countries))
	for _, record := range countries {
		if err := record.Validate(); err != nil {
			c.log.WithFields(map[string]any{"code": record.Code}).Error(err, "skipping invalid country record")
			continue
		}
		valid = append(valid, record)
	}

	unique, dropped := country.Dedupe(valid)
	if len(dropped) > 0 {
		c.log.WithFields(map[string]any{"codes": dropped}).Warn("dropped duplicate country codes")
	}

	c.metrics.observe(opList, outcomeSuccess, time.Since(start))
	c.log.WithFields(map[string]any{"count": len(unique), "duration_ms": time.Since(start).Milliseconds()}).Debug("countries loaded")
	return unique, nil
}

// Get fetches one record by its three-letter code. Unknown or malformed codes
// yield an error matching apperrors.ErrNotFound.
func (c *Client) Get(ctx context.Context, code string) (country.Country, error) {
	start := time.Now()
	normalized, err := country.ParseCode(code)
	if err != nil {
		c.metrics.observe(opGet, outcomeNotFound, time.Since(start))
		return country.Country{}, fmt.Errorf("%v: %w", err, apperrors.ErrNotFound)
	}

	var records []country.Country
	err = c.fetch(ctx, opGet, c.CountryURL(normalized), &records)
	if err == nil && len(records) == 0 {
		err = fmt.Errorf("country %s: %w", normalized, apperrors.ErrNotFound)
	}
	if err == nil {
		if verr := records[0].Validate(); verr != nil {
			err = apperrors.NewDecodeError(opGet, verr)
		}
	}
	if err != nil {
		c.metrics.observe(opGet, outcomeFor(err), time.Since(start))
		return country.Country{}, err
	}

	c.metrics.observe(opGet, outcomeSuccess, time.Since(start))
	c.log.WithFields(map[string]any{"code": normalized, "duration_ms": time.Since(start).Milliseconds()}).Debug("country loaded")
	return records[0], nil
}

func (c *Client) fetch(ctx context.Context, op, target string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return apperrors.NewRequestError(op, target, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WithFields(map[string]any{"url": target}).Error(err, "request failed")
		return apperrors.NewRequestError(op, target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		c.log.WithFields(map[string]any{"url": target, "status": resp.StatusCode}).Warn("unexpected response status")
		if op == opGet && resp.StatusCode == http.StatusNotFound {
			return apperrors.ErrNotFound
		}
		return apperrors.NewStatusError(op, target, resp.StatusCode)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		c.log.WithFields(map[string]any{"url": target}).Error(err, "failed to decode response")
		return apperrors.NewDecodeError(op, err)
	}
	return nil
}

func outcomeFor(err error) string {
	var (
		statusErr *apperrors.StatusError
		decodeErr *apperrors.DecodeError
	)
	switch {
	case apperrors.IsNotFound(err):
		return outcomeNotFound
	case errors.As(err, &statusErr):
		return outcomeStatus
	case errors.As(err, &decodeErr):
		return outcomeDecode
	default:
		return outcomeTransport
	}
}
