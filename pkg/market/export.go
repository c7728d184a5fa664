package market

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"krishisahay/entities"
)

const exportSheet = "Market"

var exportHeader = []any{"Commodity", "Market", "Current Price", "3-Year Avg", "Delta %", "Signal", "Last Updated"}

// WriteQuotesXLSX writes quotes as a single-sheet workbook.
func WriteQuotesXLSX(w io.Writer, quotes []entities.MarketQuote) error {
	x := excelize.NewFile()
	defer x.Close()

	if err := x.SetSheetName("Sheet1", exportSheet); err != nil {
		return err
	}
	if err := x.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return err
	}
	for i, q := range quotes {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{q.Commodity, q.Market, q.CurrentPrice, q.AvgPrice, q.DeltaPercent, string(q.Signal), q.LastUpdated.Format("2006-01-02 15:04:05")}
		if err := x.SetSheetRow(exportSheet, cell, &row); err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
	}
	_, err := x.WriteTo(w)
	return err
}
