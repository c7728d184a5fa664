package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"krishisahay/pkg/dashboard"
	"krishisahay/pkg/i18n"
)

type AppConfig struct {
	Port             string
	DBPath           string
	DefaultLang      i18n.Language
	FarmLocation     string
	RandSeed         uint64
	SchemesPath      string
	CatalogCSV       string
	CatalogXLSX      string
	TranslationsPath string
	TelegramToken    string
	LogLevel         string
	LogDev           bool

	Feeds          dashboard.Timings
	ExpertDelay    time.Duration
	VerifiedDelay  time.Duration
	DiagnosisDelay time.Duration

	// Warnings collects values that were ignored in favour of defaults.
	// The logger does not exist yet while config loads.
	Warnings []string
}

func Load() AppConfig {
	var warn []string
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		warn = append(warn, fmt.Sprintf("no .env file loaded: %v", err))
	}

	get := func(k, def string) string {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
		return def
	}
	dur := func(k string, def time.Duration) time.Duration {
		v := get(k, "")
		if v == "" {
			return def
		}
		if strings.EqualFold(v, "once") {
			return 0
		}
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			warn = append(warn, fmt.Sprintf("%s=%q is not a duration, using %s", k, v, def))
			return def
		}
		return d
	}
	timing := func(prefix string, def dashboard.Timing) dashboard.Timing {
		return dashboard.Timing{
			Delay:    dur(prefix+"_DELAY", def.Delay),
			Interval: dur(prefix+"_INTERVAL", def.Interval),
		}
	}

	lang, ok := i18n.ParseLanguage(get("DEFAULT_LANG", "en"))
	if !ok {
		warn = append(warn, fmt.Sprintf("DEFAULT_LANG=%q unsupported, using en", os.Getenv("DEFAULT_LANG")))
		lang = i18n.DefaultLanguage
	}

	seed, err := strconv.ParseUint(get("RAND_SEED", "0"), 10, 64)
	if err != nil {
		warn = append(warn, fmt.Sprintf("RAND_SEED=%q is not an unsigned integer, seeding from clock", os.Getenv("RAND_SEED")))
		seed = 0
	}

	def := dashboard.DefaultTimings()
	return AppConfig{
		Port:             get("PORT", "8080"),
		DBPath:           get("DB_PATH", "krishisahay.db"),
		DefaultLang:      lang,
		FarmLocation:     get("FARM_LOCATION", "Hyderabad, Telangana"),
		RandSeed:         seed,
		SchemesPath:      get("SCHEMES_PATH", ""),
		CatalogCSV:       get("CATALOG_CSV", ""),
		CatalogXLSX:      get("CATALOG_XLSX", ""),
		TranslationsPath: get("TRANSLATIONS_PATH", ""),
		TelegramToken:    get("TELEGRAM_BOT_TOKEN", ""),
		LogLevel:         get("LOG_LEVEL", "info"),
		LogDev:           get("LOG_DEV", "false") == "true",
		Feeds: dashboard.Timings{
			Weather: timing("WEATHER", def.Weather),
			Market:  timing("MARKET", def.Market),
			Soil:    timing("SOIL", def.Soil),
			Health:  timing("HEALTH", def.Health),
			Alerts:  timing("ALERTS", def.Alerts),
			Schemes: timing("SCHEMES", def.Schemes),
			Marquee: timing("MARQUEE", def.Marquee),
		},
		ExpertDelay:    dur("EXPERT_DELAY", 2*time.Second),
		VerifiedDelay:  dur("VERIFIED_DELAY", 1500*time.Millisecond),
		DiagnosisDelay: dur("DIAGNOSIS_DELAY", 3*time.Second),
		Warnings:       warn,
	}
}

// Redacted is safe to log.
func (c AppConfig) Redacted() AppConfig {
	if c.TelegramToken != "" {
		c.TelegramToken = "***"
	}
	c.Warnings = nil
	return c
}
