// Package dashboard wires the demo generators into the seven polled data
// sources behind the farmer dashboard.
package dashboard

import "time"

const (
	SourceWeather = "weather"
	SourceMarket  = "market"
	SourceSoil    = "soil"
	SourceHealth  = "systemHealth"
	SourceAlerts  = "alerts"
	SourceSchemes = "schemes"
	SourceMarquee = "marquee"
)

// Timing is the artificial delay before each poll and the refresh interval.
// A zero Interval fetches once.
type Timing struct {
	Delay    time.Duration
	Interval time.Duration
}

type Timings struct {
	Weather Timing
	Market  Timing
	Soil    Timing
	Health  Timing
	Alerts  Timing
	Schemes Timing
	Marquee Timing
}

func DefaultTimings() Timings {
	return Timings{
		Weather: Timing{Delay: 800 * time.Millisecond, Interval: 5 * time.Minute},
		Market:  Timing{Delay: time.Second, Interval: 10 * time.Minute},
		Soil:    Timing{Delay: 600 * time.Millisecond},
		Health:  Timing{Delay: 500 * time.Millisecond, Interval: 30 * time.Second},
		Alerts:  Timing{Delay: 700 * time.Millisecond},
		Schemes: Timing{Delay: 900 * time.Millisecond},
		Marquee: Timing{Delay: 500 * time.Millisecond, Interval: 2 * time.Minute},
	}
}
