// Package chat runs the two advisory chat panels: expert advice and verified
// knowledge-base answers.
package chat

import (
	"errors"
	"strings"

	"krishisahay/entities"
)

var (
	ErrEmptyMessage = errors.New("message is empty")
	ErrUnknownPanel = errors.New("unknown chat panel")
)

// ParsePanel accepts "expert" or "verified", case-insensitively.
func ParsePanel(s string) (entities.Panel, error) {
	switch p := entities.Panel(strings.ToLower(strings.TrimSpace(s))); p {
	case entities.PanelExpert, entities.PanelVerified:
		return p, nil
	}
	return "", ErrUnknownPanel
}
