package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, auth secret, etc.)
// - default: Values common across all environments (business hours, deadlines, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Log       LogConfig
	Auth      AuthConfig
	Booking   BookingConfig
	Mail      MailConfig
	Scheduler SchedulerConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Sao_Paulo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-10800"` // -3*60*60
}

// AuthConfig holds the shared secret for validating tokens issued by the
// external identity provider. The engine never issues tokens itself.
type AuthConfig struct {
	TokenSecret string `envconfig:"AUTH_TOKEN_SECRET" required:"true"`
}

type BookingConfig struct {
	OpenHour                  int           `envconfig:"BOOKING_OPEN_HOUR" default:"8"`
	CloseHour                 int           `envconfig:"BOOKING_CLOSE_HOUR" default:"18"`
	SlotGranularity           time.Duration `envconfig:"BOOKING_SLOT_GRANULARITY" default:"1h"`
	MaxVehicleBookingHours    int           `envconfig:"MAX_VEHICLE_BOOKING_HOURS" default:"8"`
	CancellationDeadlineHours int           `envconfig:"CANCELLATION_DEADLINE_HOURS" default:"2"`
	ResourceSeedPath          string        `envconfig:"RESOURCE_SEED_PATH" default:""`
}

type MailConfig struct {
	SendGridAPIKey string `envconfig:"SENDGRID_API_KEY" default:""`
	FromEmail      string `envconfig:"MAIL_FROM_EMAIL" default:"bookings@example.com"`
	FromName       string `envconfig:"MAIL_FROM_NAME" default:"Resource Booker"`
}

type SchedulerConfig struct {
	Enabled        bool          `envconfig:"SCHEDULER_ENABLED" default:"true"`
	ReminderSpec   string        `envconfig:"SCHEDULER_REMINDER_SPEC" default:"0 */5 * * * *"`
	ReminderWindow time.Duration `envconfig:"SCHEDULER_REMINDER_WINDOW" default:"1h"`
}

func (c BookingConfig) Validate() error {
	if c.OpenHour < 0 || c.CloseHour > 24 || c.OpenHour >= c.CloseHour {
		return fmt.Errorf("invalid business hours: open=%d close=%d", c.OpenHour, c.CloseHour)
	}
	if c.SlotGranularity <= 0 {
		return fmt.Errorf("slot granularity must be positive: %s", c.SlotGranularity)
	}
	window := time.Duration(c.CloseHour-c.OpenHour) * time.Hour
	if window%c.SlotGranularity != 0 {
		return fmt.Errorf("business window %s is not divisible by slot granularity %s", window, c.SlotGranularity)
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Booking.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid booking config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Sao_Paulo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -10800,
		},
		Auth: AuthConfig{
			TokenSecret: "test-secret",
		},
		Booking: BookingConfig{
			OpenHour:                  8,
			CloseHour:                 18,
			SlotGranularity:           time.Hour,
			MaxVehicleBookingHours:    8,
			CancellationDeadlineHours: 2,
		},
	}
}
