package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	tr := Default()

	t.Run("exact pair", func(t *testing.T) {
		assert.Equal(t, "बाजार", tr.Translate("market", Hindi))
		assert.Equal(t, "వాతావరణం", tr.Translate("weather", Telugu))
		assert.Equal(t, "Loading...", tr.Translate("loading", English))
	})

	t.Run("missing language falls back to default", func(t *testing.T) {
		partial := New(Table{"onlyEnglish": {English: "Only English"}})
		assert.Equal(t, "Only English", partial.Translate("onlyEnglish", Tamil))
	})

	t.Run("empty string counts as missing", func(t *testing.T) {
		partial := New(Table{"blank": {English: "Fallback", Hindi: ""}})
		assert.Equal(t, "Fallback", partial.Translate("blank", Hindi))
	})

	t.Run("absent key returns key", func(t *testing.T) {
		assert.Equal(t, "noSuchKey", tr.Translate("noSuchKey", Hindi))
	})

	t.Run("key without default language returns key", func(t *testing.T) {
		partial := New(Table{"hindiOnly": {Hindi: "केवल"}})
		assert.Equal(t, "hindiOnly", partial.Translate("hindiOnly", Tamil))
		assert.Equal(t, "केवल", partial.Translate("hindiOnly", Hindi))
	})
}

func TestBuiltinCoversEveryLanguage(t *testing.T) {
	for key, row := range builtin {
		for _, o := range Supported() {
			assert.NotEmpty(t, row[o.Code], "key %s missing %s", key, o.Code)
		}
	}
}

func TestNewCopiesTable(t *testing.T) {
	src := Table{"k": {English: "v"}}
	tr := New(src)
	src["k"][English] = "changed"
	assert.Equal(t, "v", tr.Translate("k", English))
}

func TestBundle(t *testing.T) {
	tr := New(Table{
		"a": {English: "A", Hindi: "ए"},
		"b": {English: "B"},
	})
	assert.Equal(t, map[string]string{"a": "ए", "b": "B"}, tr.Bundle(Hindi))
	assert.Equal(t, []string{"a", "b"}, tr.Keys())
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "extra.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
market:
  en: Mandi
harvest:
  en: Harvest
  hi-IN: फसल कटाई
`), 0o644))

	tr := Default()
	require.NoError(t, tr.LoadOverrides(path))
	assert.Equal(t, "Mandi", tr.Translate("market", English))
	assert.Equal(t, "बाजार", tr.Translate("market", Hindi), "untouched languages survive")
	assert.Equal(t, "फसल कटाई", tr.Translate("harvest", Hindi))
	assert.Equal(t, "Harvest", tr.Translate("harvest", Telugu))
	assert.Equal(t, "Market", Default().Translate("market", English), "builtin table is not mutated")
}

func TestLoadOverridesRejectsUnknownLanguage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("market:\n  fr: Marché\n"), 0o644))
	err := Default().LoadOverrides(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported language")
}

func TestParseLanguage(t *testing.T) {
	cases := map[string]Language{"hi": Hindi, "TE": Telugu, "ta-IN": Tamil, " en ": English}
	for in, want := range cases {
		got, ok := ParseLanguage(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := ParseLanguage("fr")
	assert.False(t, ok)
	_, ok = ParseLanguage("")
	assert.False(t, ok)
}
