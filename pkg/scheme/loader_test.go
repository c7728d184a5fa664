package scheme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krishisahay/entities"
)

const schemesPage = `<html><body>
<h1>Schemes</h1>
<table>
  <tr><th>ID</th><th>Name</th><th>Description</th><th>Eligibility</th><th>Benefit</th><th>Deadline</th><th>Apply</th><th>Category</th></tr>
  <tr>
    <td>scheme-9</td><td>Soil Health Card</td>
    <td>Soil testing   and
        nutrient advice</td>
    <td>All farmers</td><td>Free soil report</td><td></td>
    <td><a href=" https://soilhealth.dac.gov.in ">Apply</a></td><td>Advisory</td>
  </tr>
  <tr>
    <td>scheme-10</td><td>PM-KUSUM</td><td>Solar pumps</td><td>Individual farmers</td>
    <td>60% subsidy</td><td>2025-12-31</td><td>https://pmkusum.mnre.gov.in</td><td>Energy</td>
  </tr>
  <tr><td>short row</td></tr>
</table>
<table><tr><td>ignored</td></tr></table>
</body></html>`

func TestParseHTML(t *testing.T) {
	got, err := ParseHTML(strings.NewReader(schemesPage))
	require.NoError(t, err)

	want := []entities.Scheme{
		{
			ID: "scheme-9", Name: "Soil Health Card", Description: "Soil testing and nutrient advice",
			Eligibility: "All farmers", Benefit: "Free soil report",
			ApplyURL: "https://soilhealth.dac.gov.in", Category: "Advisory",
		},
		{
			ID: "scheme-10", Name: "PM-KUSUM", Description: "Solar pumps", Eligibility: "Individual farmers",
			Benefit: "60% subsidy", Deadline: "2025-12-31", ApplyURL: "https://pmkusum.mnre.gov.in", Category: "Energy",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ParseHTML mismatch (-want +got):\n%s", diff)
	}
}

func TestParseHTMLWithoutRows(t *testing.T) {
	_, err := ParseHTML(strings.NewReader("<html><body><p>nothing</p></body></html>"))
	require.Error(t, err)
}

func TestLoadFileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schemes.json")
	body := `[{"id":"s1","name":"A","applyUrl":"https://a","category":"Credit","deadline":"2024-06-30"}]`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	got, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "https://a", got[0].ApplyURL)
	assert.Equal(t, "2024-06-30", got[0].Deadline)
}

func TestLoadFileValidation(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"dup.json":     `[{"id":"s1","name":"A"},{"id":"s1","name":"B"}]`,
		"noname.json":  `[{"id":"s1"}]`,
		"baddate.json": `[{"id":"s1","name":"A","deadline":"31/03/2024"}]`,
		"empty.json":   `[]`,
		"schemes.yaml": `- id: s1`,
	}
	for name, body := range cases {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
		_, err := LoadFile(path)
		assert.Error(t, err, name)
	}
}

func TestDefaultCatalog(t *testing.T) {
	_, err := validate(DefaultCatalog)
	require.NoError(t, err)
	assert.Len(t, DefaultCatalog, 3)
}
