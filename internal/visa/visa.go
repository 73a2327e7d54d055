// Package visa looks up entry requirements between a passport country and
// a destination country.
package visa

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dharmasatrya/swifttrip/internal/metrics"
	"github.com/dharmasatrya/swifttrip/internal/models"
	"github.com/dharmasatrya/swifttrip/internal/ratelimit"
)

// SourceName keys the visa service in rate limits and metrics.
const SourceName = "visa"

type Status string

const (
	StatusVisaFree     Status = "visa_free"
	StatusEVisa        Status = "evisa"
	StatusVisaRequired Status = "visa_required"
	StatusUnknown      Status = "unknown"
)

const FetchFailedMessage = "Failed to fetch information"

type Result struct {
	Status      Status
	MaxStayDays *int
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *ratelimit.SourceLimiter
	logger     *zap.Logger
}

func NewClient(baseURL string, httpClient *http.Client, limiter *ratelimit.SourceLimiter, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		limiter:    limiter,
		logger:     logger,
	}
}

type lookupResponse struct {
	Category *struct {
		Name string `json:"name"`
	} `json:"category"`
	Dur json.RawMessage `json:"dur"`
}

// Lookup resolves both countries and queries the requirement for a holder
// of passport travelling to destination.
func (c *Client) Lookup(ctx context.Context, passport, destination string) (models.VisaResponse, error) {
	from, err := ResolveCountry(passport)
	if err != nil {
		return models.VisaResponse{}, fmt.Errorf("passport %q: %w", passport, err)
	}
	to, err := ResolveCountry(destination)
	if err != nil {
		return models.VisaResponse{}, fmt.Errorf("destination %q: %w", destination, err)
	}

	resp := models.VisaResponse{
		Passport:        from.String(),
		PassportName:    CountryName(from),
		Destination:     to.String(),
		DestinationName: CountryName(to),
	}

	result, err := c.fetch(ctx, from.String(), to.String())
	if err != nil {
		return resp, err
	}

	resp.Status = string(result.Status)
	resp.MaxStayDays = result.MaxStayDays
	resp.Message = Message(result)
	return resp, nil
}

func (c *Client) fetch(ctx context.Context, from, to string) (Result, error) {
	start := time.Now()
	defer func() {
		metrics.UpstreamDuration.WithLabelValues(SourceName, "lookup").Observe(time.Since(start).Seconds())
	}()

	if err := c.limiter.Wait(ctx, SourceName); err != nil {
		return Result{}, err
	}

	url := fmt.Sprintf("%s/visa/%s/%s", c.baseURL, from, to)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Result{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("visa lookup %s->%s: %w", from, to, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, err
	}
	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("visa lookup %s->%s: unexpected status %d", from, to, resp.StatusCode)
	}

	var payload lookupResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return Result{}, fmt.Errorf("decode visa response: %w", err)
	}

	result := Result{Status: StatusUnknown, MaxStayDays: parseDays(payload.Dur)}
	if payload.Category != nil {
		result.Status = Classify(payload.Category.Name)
	}

	c.logger.Debug("visa lookup",
		zap.String("passport", from),
		zap.String("destination", to),
		zap.String("status", string(result.Status)),
	)
	return result, nil
}

// Classify maps the upstream category name onto a Status.
func Classify(category string) Status {
	switch strings.ToLower(strings.TrimSpace(category)) {
	case "visa free":
		return StatusVisaFree
	case "evisa":
		return StatusEVisa
	case "visa required":
		return StatusVisaRequired
	default:
		return StatusUnknown
	}
}

func Message(r Result) string {
	switch r.Status {
	case StatusVisaFree:
		if r.MaxStayDays != nil {
			return fmt.Sprintf("Visa not required (up to %d days)", *r.MaxStayDays)
		}
		return "Visa not required"
	case StatusEVisa:
		return "eVisa available"
	case StatusVisaRequired:
		return "Visa required"
	default:
		return "Information unavailable"
	}
}

// dur arrives as a number, a numeric string or null.
func parseDays(raw json.RawMessage) *int {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	if s == "" || s == "null" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}
