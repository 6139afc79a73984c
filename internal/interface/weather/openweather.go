package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"airnova-service/internal/domain/entity"
	"airnova-service/internal/domain/repository"
	"airnova-service/pkg/logger"
	"airnova-service/pkg/pricing"
)

// OpenWeatherProvider fetches current conditions from the OpenWeather API
// and reduces them to a coarse delay-risk label.
type OpenWeatherProvider struct {
	apiKey      string
	baseURL     string
	client      *http.Client
	airportRepo repository.AirportRepository
	logger      logger.Logger
}

// NewOpenWeatherProvider creates a provider with a bounded request timeout.
// The airport repository maps codes to city names for the API query; when a
// code has no airport row the code itself is sent as the query.
func NewOpenWeatherProvider(apiKey, baseURL string, timeout time.Duration, airportRepo repository.AirportRepository, logger logger.Logger) *OpenWeatherProvider {
	return &OpenWeatherProvider{
		apiKey:      apiKey,
		baseURL:     strings.TrimRight(baseURL, "/"),
		client:      &http.Client{Timeout: timeout},
		airportRepo: airportRepo,
		logger:      logger,
	}
}

type openWeatherResponse struct {
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

// FetchCurrent returns the current weather report for an airport.
func (p *OpenWeatherProvider) FetchCurrent(ctx context.Context, airportCode string) (*entity.WeatherReport, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("openweather api key not configured")
	}

	code := strings.ToUpper(airportCode)
	city := p.cityFor(ctx, code)

	endpoint := fmt.Sprintf("%s/weather?q=%s&appid=%s&units=metric",
		p.baseURL, url.QueryEscape(city), url.QueryEscape(p.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create weather request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather API returned status %d", resp.StatusCode)
	}

	var payload openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode weather response: %w", err)
	}
	if len(payload.Weather) == 0 {
		return nil, fmt.Errorf("weather response missing conditions")
	}

	condition := strings.ToLower(payload.Weather[0].Description)
	report := &entity.WeatherReport{
		AirportCode: code,
		City:        city,
		TempC:       payload.Main.Temp,
		Condition:   condition,
		DelayRisk:   ClassifyCondition(condition),
		Timestamp:   time.Now(),
	}
	return report, nil
}

func (p *OpenWeatherProvider) cityFor(ctx context.Context, code string) string {
	if p.airportRepo == nil {
		return code
	}
	airport, err := p.airportRepo.FindByCode(ctx, code)
	if err != nil || airport == nil {
		return code
	}
	return airport.City
}

// ClassifyCondition maps a free-text weather description to a delay risk.
func ClassifyCondition(condition string) string {
	condition = strings.ToLower(condition)
	for _, bad := range []string{"thunderstorm", "heavy", "storm", "snow"} {
		if strings.Contains(condition, bad) {
			return pricing.DelayRiskHigh
		}
	}
	for _, mid := range []string{"rain", "drizzle", "cloud"} {
		if strings.Contains(condition, mid) {
			return pricing.DelayRiskMedium
		}
	}
	return pricing.DelayRiskLow
}
