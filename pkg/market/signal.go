package market

import "krishisahay/entities"

const (
	SellAbove = 15.0  // deltaPercent strictly above -> SELL
	BuyBelow  = -10.0 // deltaPercent strictly below -> BUY
)

// SignalFor classifies a percent delta against the 3-year average.
func SignalFor(deltaPercent float64) entities.Signal {
	switch {
	case deltaPercent > SellAbove:
		return entities.SignalSell
	case deltaPercent < BuyBelow:
		return entities.SignalBuy
	default:
		return entities.SignalHold
	}
}
