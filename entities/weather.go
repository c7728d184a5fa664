package entities

import "time"

type WeatherSample struct {
	Temperature     int       `json:"temperature"`     // °C, 25-39
	Humidity        int       `json:"humidity"`        // %, 50-79
	RainProbability int       `json:"rainProbability"` // %, 0-99
	Condition       string    `json:"condition"`       // Sunny|Partly Cloudy|Cloudy|Light Rain
	Location        string    `json:"location"`
	LastUpdated     time.Time `json:"lastUpdated"`
}
