package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/dharmasatrya/swifttrip/internal/models"
)

const (
	amadeusName = "amadeus"

	tokenPath        = "/v1/security/oauth2/token"
	flightOffersPath = "/v2/shopping/flight-offers"
	citiesPath       = "/v1/reference-data/locations/cities"
	hotelsByCityPath = "/v1/reference-data/locations/hotels/by-city"
	hotelOffersPath  = "/v3/shopping/hotel-offers"

	hotelSearchRadiusKm = 20
	maxHotelIDs         = 10
	tokenExpiryMargin   = 30 * time.Second
)

type AmadeusConfig struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	MaxOffers    int
	HTTPClient   *http.Client
}

type AmadeusClient struct {
	baseURL      string
	clientID     string
	clientSecret string
	maxOffers    int
	httpClient   *http.Client
	logger       *zap.Logger

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func NewAmadeusClient(cfg AmadeusConfig, logger *zap.Logger) *AmadeusClient {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	maxOffers := cfg.MaxOffers
	if maxOffers <= 0 {
		maxOffers = 10
	}
	return &AmadeusClient{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		maxOffers:    maxOffers,
		httpClient:   httpClient,
		logger:       logger,
	}
}

func (c *AmadeusClient) Name() string {
	return amadeusName
}

func (c *AmadeusClient) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry) {
		return c.accessToken, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", statusError(resp.StatusCode, body)
	}

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if result.AccessToken == "" {
		return "", fmt.Errorf("token response carried no access_token")
	}

	c.accessToken = result.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(result.ExpiresIn)*time.Second - tokenExpiryMargin)
	c.logger.Debug("amadeus token refreshed", zap.Time("expires_at", c.tokenExpiry))

	return c.accessToken, nil
}

func (c *AmadeusClient) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	token, err := c.token(ctx)
	if err != nil {
		return fmt.Errorf("authenticate: %w", err)
	}

	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return statusError(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func statusError(code int, body []byte) error {
	var payload struct {
		Errors []models.AmadeusError `json:"errors"`
	}
	_ = json.Unmarshal(body, &payload)
	return &StatusError{StatusCode: code, Errors: payload.Errors}
}

func (c *AmadeusClient) SearchFlights(ctx context.Context, req models.SearchRequest) ([]models.FlightOffer, error) {
	params := url.Values{}
	params.Set("originLocationCode", strings.ToUpper(req.Origin))
	params.Set("destinationLocationCode", strings.ToUpper(req.Destination))
	params.Set("departureDate", req.DepartureDate)
	if req.IsRoundTrip() {
		params.Set("returnDate", *req.ReturnDate)
	}
	params.Set("adults", strconv.Itoa(req.Adults))
	if req.Children > 0 {
		params.Set("children", strconv.Itoa(req.Children))
	}
	params.Set("currencyCode", "USD")
	params.Set("max", strconv.Itoa(c.maxOffers))

	var resp models.FlightResponse
	if err := c.get(ctx, flightOffersPath, params, &resp); err != nil {
		return nil, NewSourceError(c.Name(), "flight offers", err)
	}

	c.logger.Debug("amadeus flight offers received",
		zap.String("origin", req.Origin),
		zap.String("destination", req.Destination),
		zap.Int("count", len(resp.Data)),
	)
	return resp.Data, nil
}

// ResolveCityCode maps a free-text city to its IATA city code. Values that
// already look like a code are returned upper-cased without a lookup.
func (c *AmadeusClient) ResolveCityCode(ctx context.Context, keyword string) (string, error) {
	keyword = strings.TrimSpace(keyword)
	if looksLikeIATACode(keyword) {
		return strings.ToUpper(keyword), nil
	}

	params := url.Values{}
	params.Set("keyword", keyword)
	params.Set("max", "1")

	var resp models.CityResponse
	if err := c.get(ctx, citiesPath, params, &resp); err != nil {
		return "", NewSourceError(c.Name(), "city lookup", err)
	}
	for _, city := range resp.Data {
		if city.IATACode != "" {
			return city.IATACode, nil
		}
	}
	return "", NewSourceError(c.Name(), "city lookup", fmt.Errorf("no city code found for %q", keyword))
}

func looksLikeIATACode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}

func (c *AmadeusClient) SearchHotels(ctx context.Context, req models.SearchRequest) ([]models.HotelOffer, error) {
	cityCode, err := c.ResolveCityCode(ctx, req.HotelCity)
	if err != nil {
		return nil, err
	}

	listParams := url.Values{}
	listParams.Set("cityCode", cityCode)
	listParams.Set("radius", strconv.Itoa(hotelSearchRadiusKm))
	listParams.Set("radiusUnit", "KM")

	var list models.HotelListResponse
	if err := c.get(ctx, hotelsByCityPath, listParams, &list); err != nil {
		return nil, NewSourceError(c.Name(), "hotel list", err)
	}

	ids := make([]string, 0, maxHotelIDs)
	for _, h := range list.Data {
		if h.HotelID == "" {
			continue
		}
		ids = append(ids, h.HotelID)
		if len(ids) == maxHotelIDs {
			break
		}
	}
	if len(ids) == 0 {
		c.logger.Info("no hotels listed for city", zap.String("city_code", cityCode))
		return []models.HotelOffer{}, nil
	}

	checkIn, checkOut := StayDates(req)

	offerParams := url.Values{}
	offerParams.Set("hotelIds", strings.Join(ids, ","))
	offerParams.Set("adults", strconv.Itoa(req.Adults))
	offerParams.Set("checkInDate", checkIn)
	offerParams.Set("checkOutDate", checkOut)
	offerParams.Set("currency", "USD")
	offerParams.Set("bestRateOnly", "true")

	var resp models.HotelResponse
	if err := c.get(ctx, hotelOffersPath, offerParams, &resp); err != nil {
		return nil, NewSourceError(c.Name(), "hotel offers", err)
	}

	c.logger.Debug("amadeus hotel offers received",
		zap.String("city_code", cityCode),
		zap.Int("hotel_ids", len(ids)),
		zap.Int("count", len(resp.Data)),
	)
	return resp.Data, nil
}

// StayDates returns check-in and check-out for a search. One-way trips and
// same-day returns stay a single night.
func StayDates(req models.SearchRequest) (string, string) {
	dep, err := time.Parse(models.DateLayout, req.DepartureDate)
	if err != nil {
		return req.DepartureDate, req.DepartureDate
	}
	if req.IsRoundTrip() {
		if ret, err := time.Parse(models.DateLayout, *req.ReturnDate); err == nil && ret.After(dep) {
			return req.DepartureDate, *req.ReturnDate
		}
	}
	return req.DepartureDate, dep.AddDate(0, 0, 1).Format(models.DateLayout)
}
