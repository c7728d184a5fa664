// Package i18n holds the dashboard's static translation table and the
// lookup rules shared by every localized string in the service.
package i18n

import "strings"

type Language string

const (
	English Language = "en"
	Hindi   Language = "hi"
	Telugu  Language = "te"
	Tamil   Language = "ta"
)

// DefaultLanguage is the fallback for any key missing in the requested language.
const DefaultLanguage = English

type Option struct {
	Code   Language `json:"code"`
	Label  string   `json:"label"`
	Native string   `json:"native"`
}

var options = []Option{
	{Code: English, Label: "EN", Native: "English"},
	{Code: Hindi, Label: "HI", Native: "हिंदी"},
	{Code: Telugu, Label: "TE", Native: "తెలుగు"},
	{Code: Tamil, Label: "TA", Native: "தமிழ்"},
}

// Supported lists the selectable languages in display order.
func Supported() []Option {
	out := make([]Option, len(options))
	copy(out, options)
	return out
}

// ParseLanguage accepts a bare code ("hi"), a region tag ("hi-IN") or a label
// ("HI"). The second result is false for anything unsupported.
func ParseLanguage(s string) (Language, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(s, "-_"); i > 0 {
		s = s[:i]
	}
	for _, o := range options {
		if string(o.Code) == s {
			return o.Code, true
		}
	}
	return "", false
}
