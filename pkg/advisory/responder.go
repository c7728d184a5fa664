// Package advisory answers farmer questions from canned templates chosen by
// an ordered keyword rule table. Nothing here calls a model.
package advisory

import (
	"strings"

	"krishisahay/pkg/i18n"
)

// Topic selects a template. Each responder maps every topic it can produce
// to one entry in its template table.
type Topic string

const (
	TopicMarket     Topic = "market"
	TopicDisease    Topic = "disease"
	TopicPest       Topic = "pest"
	TopicFertilizer Topic = "fertilizer"
	TopicWeather    Topic = "weather"
	TopicRotation   Topic = "rotation"
	TopicGeneral    Topic = "general"
)

// Rule fires when Match accepts the lower-cased input.
type Rule struct {
	Topic Topic
	Match func(lower string) bool
}

// Keywords matches when any word occurs as a substring.
func Keywords(words ...string) func(string) bool {
	return func(lower string) bool {
		for _, w := range words {
			if strings.Contains(lower, w) {
				return true
			}
		}
		return false
	}
}

type Suggestion struct {
	Label    string `json:"label"`
	Question string `json:"question"`
}

// Responder evaluates its rules in order; the first match wins and the
// fallback topic covers everything else.
type Responder struct {
	rules       []Rule
	fallback    Topic
	templates   i18n.Table
	welcome     map[i18n.Language]string
	preamble    string
	source      string
	welcomeSrc  string
	suggestions []Suggestion
}

// Classify returns the topic the text would be answered with.
func (r *Responder) Classify(text string) Topic {
	lower := strings.ToLower(text)
	for _, rule := range r.rules {
		if rule.Match(lower) {
			return rule.Topic
		}
	}
	return r.fallback
}

// Respond returns the template for text in lang, falling back to English
// when the template has no translation.
func (r *Responder) Respond(text string, lang i18n.Language) string {
	return r.preamble + r.templates.Lookup(string(r.Classify(text)), lang)
}

func (r *Responder) Welcome(lang i18n.Language) string {
	if msg, ok := r.welcome[lang]; ok && msg != "" {
		return msg
	}
	return r.welcome[i18n.DefaultLanguage]
}

// Source labels answers, e.g. "FAISS + KCC Database". Empty for the expert.
func (r *Responder) Source() string { return r.source }

func (r *Responder) WelcomeSource() string { return r.welcomeSrc }

func (r *Responder) Suggestions() []Suggestion {
	out := make([]Suggestion, len(r.suggestions))
	copy(out, r.suggestions)
	return out
}

// Topics lists the rule topics in priority order followed by the fallback.
func (r *Responder) Topics() []Topic {
	out := make([]Topic, 0, len(r.rules)+1)
	for _, rule := range r.rules {
		out = append(out, rule.Topic)
	}
	return append(out, r.fallback)
}
