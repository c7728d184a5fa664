package market

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

var ErrNoCatalog = errors.New("no commodities loaded")

type Commodity struct {
	Name      string `json:"name"`
	BasePrice int    `json:"basePrice"` // ₹/quintal, 3-year average
	Market    string `json:"market"`
}

type Catalog []Commodity

var DefaultCatalog = Catalog{
	{Name: "Wheat", BasePrice: 2400, Market: "Azadpur Mandi"},
	{Name: "Rice", BasePrice: 3200, Market: "Guntur Market"},
	{Name: "Cotton", BasePrice: 6800, Market: "Adilabad APMC"},
	{Name: "Soybean", BasePrice: 4500, Market: "Indore Mandi"},
	{Name: "Groundnut", BasePrice: 5200, Market: "Rajkot Market"},
	{Name: "Maize", BasePrice: 1900, Market: "Nizamabad APMC"},
}

// LoadCatalog reads commodities from a CSV file or, when csvPath is empty,
// from the first sheet of an XLSX workbook. With neither path set the
// default catalog is returned.
func LoadCatalog(csvPath, xlsxPath string) (Catalog, error) {
	switch {
	case csvPath != "":
		f, err := os.Open(csvPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		cr := csv.NewReader(f)
		cr.FieldsPerRecord = -1
		rows, err := cr.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", csvPath, err)
		}
		return parseRows(rows)
	case xlsxPath != "":
		x, err := excelize.OpenFile(xlsxPath)
		if err != nil {
			return nil, err
		}
		defer x.Close()
		return readWorkbook(x)
	default:
		return DefaultCatalog, nil
	}
}

// ReadXLSX parses a catalog workbook from r.
func ReadXLSX(r io.Reader) (Catalog, error) {
	x, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer x.Close()
	return readWorkbook(x)
}

func readWorkbook(x *excelize.File) (Catalog, error) {
	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoCatalog
	}
	rows, err := x.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("sheet %s: %w", sheets[0], err)
	}
	return parseRows(rows)
}

func parseRows(rows [][]string) (Catalog, error) {
	if len(rows) == 0 {
		return nil, ErrNoCatalog
	}
	head := rows[0]

	norm := func(s string) string {
		s = strings.TrimSpace(s)
		s = strings.TrimPrefix(s, "\uFEFF") // BOM
		s = strings.ToLower(s)
		s = strings.ReplaceAll(s, " ", "")
		s = strings.ReplaceAll(s, "-", "")
		s = strings.ReplaceAll(s, "_", "")
		return s
	}
	hmap := map[string]int{}
	for i, h := range head {
		hmap[norm(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[norm(k)]; ok {
				return idx
			}
		}
		return -1
	}

	cName := findAny("Commodity", "name", "crop")
	cPrice := findAny("BasePrice", "base_price", "avg_price", "price")
	cMarket := findAny("Market", "mandi", "apmc")
	if cName == -1 || cPrice == -1 {
		return nil, fmt.Errorf("catalog missing required columns. Found headers: %v. Need at least: Commodity, BasePrice", head)
	}

	var out Catalog
	for _, rec := range rows[1:] {
		get := func(idx int) string {
			if idx < 0 || idx >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[idx])
		}
		name := get(cName)
		price, err := strconv.Atoi(get(cPrice))
		if name == "" || err != nil || price <= 0 {
			continue
		}
		out = append(out, Commodity{Name: name, BasePrice: price, Market: get(cMarket)})
	}
	if len(out) == 0 {
		return nil, ErrNoCatalog
	}
	return out, nil
}
