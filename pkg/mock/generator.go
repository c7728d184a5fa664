// Package mock synthesizes demo records that stand in for live weather,
// mandi, soil-sensor and status feeds. Every field stays inside a fixed
// range; given a fixed seed and clock the output is reproducible.
package mock

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"krishisahay/entities"
	"krishisahay/pkg/market"
	"krishisahay/pkg/scheme"
)

const DefaultLocation = "Hyderabad, Telangana"

// MaxVariation is the largest relative move of a quote from its base price.
const MaxVariation = 0.15

var conditions = []string{"Sunny", "Partly Cloudy", "Cloudy", "Light Rain"}

type Generator struct {
	mu       sync.Mutex
	rnd      *rand.Rand
	now      func() time.Time
	catalog  market.Catalog
	location string
}

// New builds a generator. seed 0 seeds from the clock; a nil now uses
// time.Now; an empty catalog uses market.DefaultCatalog.
func New(catalog market.Catalog, location string, seed uint64, now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if len(catalog) == 0 {
		catalog = market.DefaultCatalog
	}
	if location == "" {
		location = DefaultLocation
	}
	return &Generator{
		rnd:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		now:      now,
		catalog:  catalog,
		location: location,
	}
}

// between returns an integer in [lo, lo+span).
func (g *Generator) between(lo, span int) int { return lo + g.rnd.IntN(span) }

func (g *Generator) Weather() entities.WeatherSample {
	g.mu.Lock()
	defer g.mu.Unlock()
	return entities.WeatherSample{
		Temperature:     g.between(25, 15),
		Humidity:        g.between(50, 30),
		RainProbability: g.rnd.IntN(100),
		Condition:       conditions[g.rnd.IntN(len(conditions))],
		Location:        g.location,
		LastUpdated:     g.now(),
	}
}

func (g *Generator) MarketPrices() []entities.MarketQuote {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.quotes()
}

func (g *Generator) quotes() []entities.MarketQuote {
	now := g.now()
	out := make([]entities.MarketQuote, 0, len(g.catalog))
	for _, c := range g.catalog {
		variation := (g.rnd.Float64() - 0.5) * 2 * MaxVariation
		base := float64(c.BasePrice)
		price := math.Round(base * (1 + variation))
		// rounding must not push a quote outside the band
		price = math.Max(price, math.Ceil(base*(1-MaxVariation)))
		price = math.Min(price, math.Floor(base*(1+MaxVariation)))

		delta := math.Round((price-base)/base*100*10) / 10
		out = append(out, entities.MarketQuote{
			Commodity:    c.Name,
			CurrentPrice: int(price),
			AvgPrice:     c.BasePrice,
			DeltaPercent: delta,
			Signal:       market.SignalFor(delta),
			Market:       c.Market,
			LastUpdated:  now,
		})
	}
	return out
}

func (g *Generator) Soil() entities.SoilSample {
	g.mu.Lock()
	defer g.mu.Unlock()
	return entities.SoilSample{
		Nitrogen:    g.between(30, 50),
		Phosphorus:  g.between(15, 30),
		Potassium:   g.between(100, 60),
		PH:          math.Round((g.rnd.Float64()*2+5.5)*10) / 10,
		Moisture:    g.between(40, 30),
		LastUpdated: g.now(),
	}
}

func (g *Generator) SystemHealth() entities.SystemHealthSnapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	status := entities.APIOnline
	if g.rnd.Float64() <= 0.1 {
		status = entities.APIDegraded
	}
	return entities.SystemHealthSnapshot{
		DatabaseReady:    true,
		VectorStoreReady: true,
		APIStatus:        status,
		LastSync:         g.now(),
		RecordCount:      g.between(10000, 5000),
	}
}

func (g *Generator) Alerts() []entities.Alert {
	now := g.now()
	return []entities.Alert{
		{
			ID:        "alert-1",
			Type:      "price",
			Severity:  "warning",
			Title:     "Cotton Price Surge",
			Message:   "Cotton prices up 18% above 3-year average. Consider selling.",
			Timestamp: now,
		},
		{
			ID:        "alert-2",
			Type:      "weather",
			Severity:  "info",
			Title:     "Rain Expected",
			Message:   "Light rainfall expected in next 48 hours. Plan irrigation accordingly.",
			Timestamp: now,
		},
		{
			ID:        "alert-3",
			Type:      "scheme",
			Severity:  "critical",
			Title:     "PM-KISAN Deadline",
			Message:   "Last date for PM-KISAN registration is approaching.",
			Timestamp: now,
			ActionURL: "https://pmkisan.gov.in",
		},
	}
}

// Schemes returns the static catalog itself, not a copy.
func (g *Generator) Schemes() []entities.Scheme { return scheme.DefaultCatalog }

func (g *Generator) Marquee() []entities.MarqueeItem {
	g.mu.Lock()
	quotes := g.quotes()
	g.mu.Unlock()

	out := make([]entities.MarqueeItem, len(quotes))
	for i, q := range quotes {
		out[i] = entities.MarqueeItem{Commodity: q.Commodity, Price: q.CurrentPrice, Change: q.DeltaPercent, Market: q.Market}
	}
	return out
}

// Catalog exposes the commodities quotes are drawn from.
func (g *Generator) Catalog() market.Catalog { return g.catalog }
