package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// WorkingHoursPolicy is the process-wide booking policy. Loaded once and
// immutable for the process lifetime.
type WorkingHoursPolicy struct {
	StartHour          int
	EndHour            int
	SlotInterval       int // minutes between candidate slot starts
	BookingDuration    int // minutes per booking
	Buffer             int // minutes of padding around existing events
	MinNoticeHours     int
	AdvanceBookingDays int
	WeekendDays        map[time.Weekday]bool
}

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	Timezone          string `mapstructure:"TIMEZONE"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB   int    `mapstructure:"REDIS_CACHE_DB"`
	RedisContextDB int    `mapstructure:"REDIS_CONTEXT_DB"`

	// Completion provider configuration.
	LLMProvider  string `mapstructure:"LLM_PROVIDER"`
	OpenAIAPIKey string `mapstructure:"OPENAI_API_KEY"`
	OpenAIModel  string `mapstructure:"OPENAI_MODEL"`
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`

	// Google Calendar configuration.
	GoogleCalendarID   string `mapstructure:"GOOGLE_CALENDAR_ID"`
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRefreshToken string `mapstructure:"GOOGLE_REFRESH_TOKEN"`

	// Working-hours policy.
	WorkStartHour          int    `mapstructure:"WORK_START_HOUR"`
	WorkEndHour            int    `mapstructure:"WORK_END_HOUR"`
	SlotIntervalMinutes    int    `mapstructure:"SLOT_INTERVAL_MINUTES"`
	BookingDurationMinutes int    `mapstructure:"BOOKING_DURATION_MINUTES"`
	BufferMinutes          int    `mapstructure:"BUFFER_MINUTES"`
	MinNoticeHours         int    `mapstructure:"MIN_NOTICE_HOURS"`
	AdvanceBookingDays     int    `mapstructure:"ADVANCE_BOOKING_DAYS"`
	WeekendDays            string `mapstructure:"WEEKEND_DAYS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("TIMEZONE", "America/Los_Angeles")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_CONTEXT_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("LLM_PROVIDER", "openai")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("GOOGLE_CALENDAR_ID", "primary")
	viper.SetDefault("WORK_START_HOUR", 9)
	viper.SetDefault("WORK_END_HOUR", 17)
	viper.SetDefault("SLOT_INTERVAL_MINUTES", 30)
	viper.SetDefault("BOOKING_DURATION_MINUTES", 60)
	viper.SetDefault("BUFFER_MINUTES", 15)
	viper.SetDefault("MIN_NOTICE_HOURS", 24)
	viper.SetDefault("ADVANCE_BOOKING_DAYS", 14)
	viper.SetDefault("WEEKEND_DAYS", "Saturday,Sunday")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// Policy assembles the immutable working-hours policy from the loaded config.
func Policy() WorkingHoursPolicy {
	return WorkingHoursPolicy{
		StartHour:          AppConfig.WorkStartHour,
		EndHour:            AppConfig.WorkEndHour,
		SlotInterval:       AppConfig.SlotIntervalMinutes,
		BookingDuration:    AppConfig.BookingDurationMinutes,
		Buffer:             AppConfig.BufferMinutes,
		MinNoticeHours:     AppConfig.MinNoticeHours,
		AdvanceBookingDays: AppConfig.AdvanceBookingDays,
		WeekendDays:        parseWeekendDays(AppConfig.WeekendDays),
	}
}

// Location resolves the configured timezone, falling back to UTC when the
// zone name is unknown.
func Location() *time.Location {
	loc, err := time.LoadLocation(AppConfig.Timezone)
	if err != nil {
		log.Printf("Unknown timezone %q, falling back to UTC", AppConfig.Timezone)
		return time.UTC
	}
	return loc
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

func parseWeekendDays(s string) map[time.Weekday]bool {
	days := make(map[time.Weekday]bool)
	for _, part := range strings.Split(s, ",") {
		if wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(part))]; ok {
			days[wd] = true
		}
	}
	return days
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
