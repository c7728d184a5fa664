package serviceImp

import (
	"context"
	"io"
	"sync"

	"go.uber.org/zap"

	"krishisahay/entities"
	"krishisahay/pkg/dashboard"
	svc "krishisahay/pkg/dashboard/service"
	"krishisahay/pkg/feed"
	"krishisahay/pkg/market"
	"krishisahay/pkg/mock"
	"krishisahay/pkg/scheme/repository"
)

type starter interface {
	Start(ctx context.Context, sched *feed.Scheduler) *feed.Handle
	Name() string
}

type service struct {
	gen   *mock.Generator
	sched *feed.Scheduler
	log   *zap.Logger

	weather *feed.Source[entities.WeatherSample]
	market  *feed.Source[[]entities.MarketQuote]
	soil    *feed.Source[entities.SoilSample]
	health  *feed.Source[entities.SystemHealthSnapshot]
	alerts  *feed.Source[[]entities.Alert]
	schemes *feed.Source[[]entities.Scheme]
	marquee *feed.Source[[]entities.MarqueeItem]

	mu      sync.Mutex
	handles []*feed.Handle
}

// New builds every source. schemes may be nil, in which case the built-in
// catalog is served.
func New(gen *mock.Generator, schemes repository.SchemeRepository, t dashboard.Timings, sched *feed.Scheduler, log *zap.Logger) svc.DashboardService {
	if log == nil {
		log = zap.NewNop()
	}
	opts := func(name string, tm dashboard.Timing, demo bool) feed.Options {
		return feed.Options{Name: name, Delay: tm.Delay, Interval: tm.Interval, IsDemo: demo}
	}

	fetchSchemes := feed.FromGenerator(gen.Schemes)
	if schemes != nil {
		fetchSchemes = func(ctx context.Context) ([]entities.Scheme, error) { return schemes.List(ctx, "") }
	}

	return &service{
		gen:     gen,
		sched:   sched,
		log:     log,
		weather: feed.NewSource(opts(dashboard.SourceWeather, t.Weather, true), feed.FromGenerator(gen.Weather), log),
		market:  feed.NewSource(opts(dashboard.SourceMarket, t.Market, true), feed.FromGenerator(gen.MarketPrices), log),
		soil:    feed.NewSource(opts(dashboard.SourceSoil, t.Soil, true), feed.FromGenerator(gen.Soil), log),
		health:  feed.NewSource(opts(dashboard.SourceHealth, t.Health, false), feed.FromGenerator(gen.SystemHealth), log),
		alerts:  feed.NewSource(opts(dashboard.SourceAlerts, t.Alerts, true), feed.FromGenerator(gen.Alerts), log),
		schemes: feed.NewSource(opts(dashboard.SourceSchemes, t.Schemes, true), fetchSchemes, log),
		marquee: feed.NewSource(opts(dashboard.SourceMarquee, t.Marquee, true), feed.FromGenerator(gen.Marquee), log),
	}
}

func (s *service) all() []starter {
	return []starter{s.weather, s.market, s.soil, s.health, s.alerts, s.schemes, s.marquee}
}

// Start begins polling. A second call while running is a no-op.
func (s *service) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.handles != nil {
		return
	}
	for _, src := range s.all() {
		s.handles = append(s.handles, src.Start(ctx, s.sched))
	}
	s.log.Info("dashboard sources started", zap.Int("count", len(s.handles)))
}

// Stop disposes every handle; states are frozen afterwards.
func (s *service) Stop() {
	s.mu.Lock()
	handles := s.handles
	s.handles = nil
	s.mu.Unlock()

	var wg sync.WaitGroup
	for _, h := range handles {
		wg.Add(1)
		go func(h *feed.Handle) {
			defer wg.Done()
			h.Stop()
		}(h)
	}
	wg.Wait()
}

func (s *service) Weather() feed.State[entities.WeatherSample] { return s.weather.State() }
func (s *service) Market() feed.State[[]entities.MarketQuote]  { return s.market.State() }
func (s *service) Soil() feed.State[entities.SoilSample]       { return s.soil.State() }
func (s *service) SystemHealth() feed.State[entities.SystemHealthSnapshot] {
	return s.health.State()
}
func (s *service) Alerts() feed.State[[]entities.Alert]        { return s.alerts.State() }
func (s *service) Schemes() feed.State[[]entities.Scheme]      { return s.schemes.State() }
func (s *service) Marquee() feed.State[[]entities.MarqueeItem] { return s.marquee.State() }

func (s *service) Ready() map[string]bool {
	return map[string]bool{
		s.weather.Name(): !s.weather.State().Loading,
		s.market.Name():  !s.market.State().Loading,
		s.soil.Name():    !s.soil.State().Loading,
		s.health.Name():  !s.health.State().Loading,
		s.alerts.Name():  !s.alerts.State().Loading,
		s.schemes.Name(): !s.schemes.State().Loading,
		s.marquee.Name(): !s.marquee.State().Loading,
	}
}

// ExportMarket prefers the published quotes so the workbook matches the
// dashboard; before the first poll it generates a fresh set.
func (s *service) ExportMarket(_ context.Context, w io.Writer) error {
	var quotes []entities.MarketQuote
	if st := s.market.State(); st.Data != nil {
		quotes = *st.Data
	} else {
		quotes = s.gen.MarketPrices()
	}
	return market.WriteQuotesXLSX(w, quotes)
}
