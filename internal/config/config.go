package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/foot-manager/internal/platform/logging"
)

// Config stores runtime configuration for the game.
type Config struct {
	AppEnv         string `validate:"oneof=dev stage prod"`
	ServiceName    string `validate:"required"`
	ServiceVersion string
	LogLevel       logging.Level
	Seed           int64
	Renderer       string   `validate:"oneof=plain rich json"`
	Clubs          []string `validate:"min=2,max=20,unique,dive,required,max=32"`
	ManagedClub    int      `validate:"gte=1"`
	Coach          string   `validate:"max=64"`
	SwapReturnLeg  bool
	OddsRuns       int `validate:"gte=0,lte=100000"`
	OddsWorkers    int `validate:"gte=1,lte=256"`
	AutoPlay       bool
	UptraceEnabled bool
	UptraceDSN     string
}

var DefaultClubs = []string{"Paris FC", "Marseille 13", "Lyonnais", "Monaco"}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	seed, err := strconv.ParseInt(strings.TrimSpace(getEnv("FM_SEED", "0")), 10, 64)
	if err != nil {
		return Config{}, fmt.Errorf("parse FM_SEED: %w", err)
	}

	managedClub, err := getEnvAsInt("FM_MANAGED_CLUB", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse FM_MANAGED_CLUB: %w", err)
	}

	swapReturnLeg, err := strconv.ParseBool(getEnv("FM_SWAP_RETURN_LEG", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FM_SWAP_RETURN_LEG: %w", err)
	}

	oddsRuns, err := getEnvAsInt("FM_ODDS_RUNS", 500)
	if err != nil {
		return Config{}, fmt.Errorf("parse FM_ODDS_RUNS: %w", err)
	}

	oddsWorkers, err := getEnvAsInt("FM_ODDS_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse FM_ODDS_WORKERS: %w", err)
	}

	autoPlay, err := strconv.ParseBool(getEnv("FM_AUTOPLAY", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FM_AUTOPLAY: %w", err)
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	clubs := splitCSV(getEnv("FM_CLUBS", ""))
	if len(clubs) == 0 {
		clubs = append([]string(nil), DefaultClubs...)
	}

	cfg := Config{
		AppEnv:         appEnv,
		ServiceName:    getEnv("APP_SERVICE_NAME", "foot-manager"),
		ServiceVersion: getEnv("APP_SERVICE_VERSION", "dev"),
		LogLevel:       parseLogLevel(getEnv("APP_LOG_LEVEL", "warn")),
		Seed:           seed,
		Renderer:       strings.ToLower(strings.TrimSpace(getEnv("FM_RENDERER", "plain"))),
		Clubs:          clubs,
		ManagedClub:    managedClub,
		Coach:          strings.TrimSpace(getEnv("FM_COACH", "")),
		SwapReturnLeg:  swapReturnLeg,
		OddsRuns:       oddsRuns,
		OddsWorkers:    oddsWorkers,
		AutoPlay:       autoPlay,
		UptraceEnabled: uptraceEnabled,
		UptraceDSN:     uptraceDSN,
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, crerr.Wrap(err, "validate config")
	}
	if cfg.ManagedClub > len(cfg.Clubs) {
		return Config{}, fmt.Errorf("FM_MANAGED_CLUB must be between 1 and %d", len(cfg.Clubs))
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "info":
		return logging.LevelInfo
	case "error":
		return logging.LevelError
	default:
		return logging.LevelWarn
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
