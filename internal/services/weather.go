package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"training-dashboard/internal/logger"
	"training-dashboard/internal/models"
)

// forecastResponse mirrors the subset of the OpenWeatherMap 5 day / 3 hour
// forecast response the dashboard uses.
type forecastResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
	} `json:"list"`
}

type WeatherOptions struct {
	BaseURL string
	City    string
	APIKey  string
	Timeout time.Duration
	Hours   int
}

// WeatherService fetches the hourly forecast from OpenWeatherMap.
type WeatherService struct {
	opts       WeatherOptions
	httpClient *http.Client
	logger     logger.Logger
	location   *time.Location
}

func NewWeatherService(opts WeatherOptions, log logger.Logger) *WeatherService {
	return &WeatherService{
		opts: opts,
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		logger:   log,
		location: time.Local,
	}
}

// Fetch retrieves the forecast and formats the first Hours slots for display.
func (s *WeatherService) Fetch(ctx context.Context) (*models.WeatherReport, error) {
	if s.opts.APIKey == "" {
		return nil, errors.New("weather api key not configured")
	}

	q := url.Values{}
	q.Set("q", s.opts.City)
	q.Set("appid", s.opts.APIKey)
	q.Set("units", "imperial")
	endpoint := s.opts.BaseURL + "/data/2.5/forecast?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building forecast request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching forecast: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("forecast request failed (status %d): %s", resp.StatusCode, body)
	}

	var forecast forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&forecast); err != nil {
		return nil, fmt.Errorf("decoding forecast: %w", err)
	}

	report, err := s.buildReport(forecast)
	if err != nil {
		return nil, err
	}

	s.logger.Info("WeatherService", "forecast fetched", map[string]interface{}{
		"city":  s.opts.City,
		"slots": len(report.Hourly),
	})
	return report, nil
}

func (s *WeatherService) buildReport(forecast forecastResponse) (*models.WeatherReport, error) {
	if len(forecast.List) == 0 {
		return nil, errors.New("forecast contains no entries")
	}

	n := min(len(forecast.List), s.opts.Hours)
	hourly := make([]models.HourlyForecast, 0, n)
	for _, entry := range forecast.List[:n] {
		if len(entry.Weather) == 0 {
			return nil, fmt.Errorf("forecast entry at %d has no conditions", entry.Dt)
		}
		hourly = append(hourly, models.HourlyForecast{
			Time:        time.Unix(entry.Dt, 0).In(s.location).Format("15:04"),
			Temperature: FormatFahrenheit(entry.Main.Temp),
			Description: entry.Weather[0].Description,
			Icon:        entry.Weather[0].Icon,
		})
	}

	return &models.WeatherReport{
		Temperature: hourly[0].Temperature,
		Conditions:  hourly[0].Description,
		Hourly:      hourly,
		FetchedAt:   time.Now(),
	}, nil
}

func FormatFahrenheit(temp float64) string {
	return fmt.Sprintf("%.1f°F", temp)
}

// IconGlyph maps an OpenWeatherMap icon code to a Nerd Font glyph. Unknown
// codes map to the empty string.
func IconGlyph(code string) string {
	switch code {
	case "01d", "01n":
		return "\uf185"
	case "02d", "02n":
		return "\uf186"
	case "03d", "03n", "04d", "04n":
		return "\uf0c2"
	case "09d", "09n", "10d", "10n":
		return "\uf0e3"
	case "11d", "11n":
		return "\uf0e7"
	case "13d", "13n":
		return "\uf2dc"
	case "50d", "50n":
		return "\uf760"
	default:
		return ""
	}
}
