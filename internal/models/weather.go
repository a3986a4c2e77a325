package models

import "time"

// HourlyForecast is one forecast slot, already formatted for display.
type HourlyForecast struct {
	Time        string
	Temperature string
	Description string
	Icon        string
}

// WeatherReport is the display-ready result of a forecast fetch.
type WeatherReport struct {
	Temperature string
	Conditions  string
	Hourly      []HourlyForecast
	FetchedAt   time.Time
}

type Headline struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}
