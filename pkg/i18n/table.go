package i18n

// Table maps a key to its per-language strings.
type Table map[string]map[Language]string

// Lookup resolves key in lang, then in DefaultLanguage, then returns the key
// itself. Empty strings count as missing.
func (t Table) Lookup(key string, lang Language) string {
	row, ok := t[key]
	if !ok {
		return key
	}
	if v := row[lang]; v != "" {
		return v
	}
	if v := row[DefaultLanguage]; v != "" {
		return v
	}
	return key
}

// Has reports whether key exists at all.
func (t Table) Has(key string) bool {
	_, ok := t[key]
	return ok
}

func (t Table) merge(other Table) {
	for key, row := range other {
		dst, ok := t[key]
		if !ok {
			dst = make(map[Language]string, len(row))
			t[key] = dst
		}
		for lang, v := range row {
			dst[lang] = v
		}
	}
}

func (t Table) clone() Table {
	out := make(Table, len(t))
	out.merge(t)
	return out
}
