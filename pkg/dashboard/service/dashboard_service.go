package service

import (
	"context"
	"io"

	"krishisahay/entities"
	"krishisahay/pkg/feed"
)

type DashboardService interface {
	Start(ctx context.Context)
	Stop()

	Weather() feed.State[entities.WeatherSample]
	Market() feed.State[[]entities.MarketQuote]
	Soil() feed.State[entities.SoilSample]
	SystemHealth() feed.State[entities.SystemHealthSnapshot]
	Alerts() feed.State[[]entities.Alert]
	Schemes() feed.State[[]entities.Scheme]
	Marquee() feed.State[[]entities.MarqueeItem]

	// Ready reports, per source, whether the first poll has completed.
	Ready() map[string]bool
	// ExportMarket writes the current quotes as an XLSX workbook.
	ExportMarket(ctx context.Context, w io.Writer) error
}
