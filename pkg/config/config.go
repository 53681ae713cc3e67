package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	CORS     CORSConfig
	Log      LogConfig
	Calendar CalendarConfig
	Exports  ExportsConfig
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// CalendarConfig tunes the calendar core: week-start convention, the pixel
// height of one hour in the time-grid views, and optional seed data.
type CalendarConfig struct {
	WeekStart      time.Weekday
	WeekHourHeight float64
	DayHourHeight  float64
	SeedEventsFile string
	SeedDemoData   bool
}

// ExportsConfig gates the agenda export endpoints.
type ExportsConfig struct {
	Enabled bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Calendar = CalendarConfig{
		WeekStart:      parseWeekday(v.GetString("CALENDAR_WEEK_START"), time.Sunday),
		WeekHourHeight: positiveFloat(v.GetFloat64("CALENDAR_WEEK_HOUR_HEIGHT"), 48),
		DayHourHeight:  positiveFloat(v.GetFloat64("CALENDAR_DAY_HOUR_HEIGHT"), 64),
		SeedEventsFile: v.GetString("SEED_EVENTS_FILE"),
		SeedDemoData:   v.GetBool("SEED_DEMO_DATA"),
	}

	cfg.Exports = ExportsConfig{
		Enabled: v.GetBool("ENABLE_EXPORTS"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("CALENDAR_WEEK_START", "sunday")
	v.SetDefault("CALENDAR_WEEK_HOUR_HEIGHT", 48)
	v.SetDefault("CALENDAR_DAY_HOUR_HEIGHT", 64)
	v.SetDefault("SEED_EVENTS_FILE", "")
	v.SetDefault("SEED_DEMO_DATA", true)

	v.SetDefault("ENABLE_EXPORTS", true)
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func parseWeekday(raw string, fallback time.Weekday) time.Weekday {
	if day, ok := weekdayNames[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return day
	}
	return fallback
}

func positiveFloat(raw float64, fallback float64) float64 {
	if raw <= 0 {
		return fallback
	}
	return raw
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
