package entities

import "time"

type Signal string

const (
	SignalBuy  Signal = "BUY"
	SignalSell Signal = "SELL"
	SignalHold Signal = "HOLD"
)

type MarketQuote struct {
	Commodity    string    `json:"commodity"`
	CurrentPrice int       `json:"currentPrice"` // ₹/quintal
	AvgPrice     int       `json:"avgPrice"`     // 3-year reference
	DeltaPercent float64   `json:"deltaPercent"` // one decimal
	Signal       Signal    `json:"signal"`
	Market       string    `json:"market"`
	LastUpdated  time.Time `json:"lastUpdated"`
}

// MarqueeItem is the ticker projection of a quote.
type MarqueeItem struct {
	Commodity string  `json:"commodity"`
	Price     int     `json:"price"`
	Change    float64 `json:"change"`
	Market    string  `json:"market"`
}
