package scheme

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"krishisahay/entities"
)

// LoadFile reads a scheme list from a .json array or an .html/.htm page
// holding a scheme table.
func LoadFile(path string) ([]entities.Scheme, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseJSON(f)
	case ".html", ".htm":
		return ParseHTML(f)
	default:
		return nil, fmt.Errorf("unsupported scheme file %s: want .json or .html", path)
	}
}

func ParseJSON(r io.Reader) ([]entities.Scheme, error) {
	var out []entities.Scheme
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode schemes: %w", err)
	}
	return validate(out)
}

// ParseHTML extracts rows from the first table on the page. Columns are
// id, name, description, eligibility, benefit, deadline, apply, category;
// the apply cell may hold a link, in which case its href wins.
func ParseHTML(r io.Reader) ([]entities.Scheme, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse schemes page: %w", err)
	}
	var out []entities.Scheme
	doc.Find("table").First().Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 8 {
			return // header or malformed
		}
		text := func(i int) string { return cleanWhitespace(cells.Eq(i).Text()) }
		apply := text(6)
		if href, ok := cells.Eq(6).Find("a").Attr("href"); ok && strings.TrimSpace(href) != "" {
			apply = strings.TrimSpace(href)
		}
		out = append(out, entities.Scheme{
			ID:          text(0),
			Name:        text(1),
			Description: text(2),
			Eligibility: text(3),
			Benefit:     text(4),
			Deadline:    text(5),
			ApplyURL:    apply,
			Category:    text(7),
		})
	})
	return validate(out)
}

func validate(list []entities.Scheme) ([]entities.Scheme, error) {
	seen := map[string]bool{}
	for i, s := range list {
		if s.ID == "" || s.Name == "" {
			return nil, fmt.Errorf("scheme %d: id and name are required", i)
		}
		if seen[s.ID] {
			return nil, fmt.Errorf("scheme %d: duplicate id %q", i, s.ID)
		}
		seen[s.ID] = true
		if s.Deadline != "" {
			if _, err := time.Parse("2006-01-02", s.Deadline); err != nil {
				return nil, fmt.Errorf("scheme %s: deadline %q is not YYYY-MM-DD", s.ID, s.Deadline)
			}
		}
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("no schemes found")
	}
	return list, nil
}

var wsRX = regexp.MustCompile(`\s+`)

func cleanWhitespace(s string) string { return strings.TrimSpace(wsRX.ReplaceAllString(s, " ")) }
