package entities

import "time"

type Alert struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`     // price|weather|scheme|pest
	Severity  string    `json:"severity"` // info|warning|critical
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	ActionURL string    `json:"actionUrl,omitempty"`
}
