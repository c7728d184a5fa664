package i18n

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// Translator serves lookups over a table that may be extended at startup
// with an override file. Safe for concurrent use.
type Translator struct {
	mu    sync.RWMutex
	table Table
}

// New copies t so later overrides never touch the caller's map.
func New(t Table) *Translator { return &Translator{table: t.clone()} }

// Default returns a translator over the builtin dashboard strings.
func Default() *Translator { return New(builtin) }

func (tr *Translator) Translate(key string, lang Language) string {
	tr.mu.RLock()
	defer tr.mu.RUnlock()
	return tr.table.Lookup(key, lang)
}

// Keys returns every known key, sorted.
func (tr *Translator) Keys() []string {
	tr.mu.RLock()
	defer tr.mu.RUnlock()
	keys := make([]string, 0, len(tr.table))
	for k := range tr.table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Bundle resolves every key for lang, for clients that cache the whole set.
func (tr *Translator) Bundle(lang Language) map[string]string {
	tr.mu.RLock()
	defer tr.mu.RUnlock()
	out := make(map[string]string, len(tr.table))
	for k := range tr.table {
		out[k] = tr.table.Lookup(k, lang)
	}
	return out
}

// LoadOverrides merges a YAML file shaped as
//
//	key:
//	  en: text
//	  hi: text
//
// into the table. Unknown language codes are rejected.
func (tr *Translator) LoadOverrides(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read translations: %w", err)
	}
	var raw map[string]map[string]string
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("parse translations %s: %w", path, err)
	}
	extra := make(Table, len(raw))
	for key, row := range raw {
		m := make(map[Language]string, len(row))
		for code, text := range row {
			lang, ok := ParseLanguage(code)
			if !ok {
				return fmt.Errorf("translations %s: key %q: unsupported language %q", path, key, code)
			}
			m[lang] = text
		}
		extra[key] = m
	}

	tr.mu.Lock()
	tr.table.merge(extra)
	tr.mu.Unlock()
	return nil
}
