package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	DB        DBConfig
	Redis     RedisConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	OTP       OTPConfig
	Booking   BookingConfig
	Dispatch  DispatchConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

const (
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

// StorageConfig selects the backing store for appointments/accounts and for auth sessions.
type StorageConfig struct {
	AppointmentDriver string `envconfig:"APPOINTMENT_STORE" default:"postgres"`
	SessionDriver     string `envconfig:"SESSION_STORE" default:"redis"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Kuala_Lumpur"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type RedisConfig struct {
	Addr      string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password  string `envconfig:"REDIS_PASSWORD"`
	DB        int    `envconfig:"REDIS_DB" default:"0"`
	KeyPrefix string `envconfig:"REDIS_KEY_PREFIX" default:"salon"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Retry-After"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kuala_Lumpur"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"28800"` // 8*60*60
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Issuer   string        `envconfig:"JWT_ISSUER" default:"salon-booking"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN"`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"Lax"`
}

type OTPConfig struct {
	CodeLength         int           `envconfig:"OTP_CODE_LENGTH" default:"6"`
	CodeTTL            time.Duration `envconfig:"OTP_CODE_TTL" default:"5m"`
	ResendCooldown     time.Duration `envconfig:"OTP_RESEND_COOLDOWN" default:"30s"`
	MaxAttempts        int           `envconfig:"OTP_MAX_ATTEMPTS" default:"5"`
	IssueWindow        time.Duration `envconfig:"OTP_ISSUE_WINDOW" default:"1h"`
	MaxIssuesPerWindow int           `envconfig:"OTP_MAX_ISSUES_PER_WINDOW" default:"5"`
	HashCost           int           `envconfig:"OTP_HASH_COST" default:"10"`
}

type BookingConfig struct {
	TimeZone   string   `envconfig:"BOOKING_TIMEZONE" default:"Asia/Kuala_Lumpur"`
	WindowDays int      `envconfig:"BOOKING_WINDOW_DAYS" default:"14"`
	TimeSlots  []string `envconfig:"BOOKING_TIME_SLOTS" default:"10:00 AM,11:00 AM,12:00 PM,01:00 PM,02:00 PM,03:00 PM,04:00 PM,05:00 PM,06:00 PM"`
	// AutoAssign is "pick" (lowest staff id) or "defer" (leave staff unassigned).
	AutoAssign string `envconfig:"BOOKING_AUTO_ASSIGN" default:"pick"`
}

// DispatchConfig: empty credentials fall back to the logging stub sender.
type DispatchConfig struct {
	TwilioAccountSID string        `envconfig:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken  string        `envconfig:"TWILIO_AUTH_TOKEN"`
	TwilioFrom       string        `envconfig:"TWILIO_FROM_NUMBER"`
	TwilioBaseURL    string        `envconfig:"TWILIO_BASE_URL" default:"https://api.twilio.com"`
	SendGridAPIKey   string        `envconfig:"SENDGRID_API_KEY"`
	EmailFrom        string        `envconfig:"EMAIL_FROM" default:"no-reply@salon.example"`
	EmailFromName    string        `envconfig:"EMAIL_FROM_NAME" default:"Salon Booking"`
	Timeout          time.Duration `envconfig:"DISPATCH_TIMEOUT" default:"10s"`
}

type RateLimitConfig struct {
	Enabled bool    `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	RPS     float64 `envconfig:"RATE_LIMIT_RPS" default:"2"`
	Burst   int     `envconfig:"RATE_LIMIT_BURST" default:"10"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c BookingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Storage: StorageConfig{
			AppointmentDriver: DriverMemory,
			SessionDriver:     DriverMemory,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Kuala_Lumpur",
			MaxConns: 10,
		},
		Redis: RedisConfig{
			Addr:      "localhost:6379",
			KeyPrefix: "salon-test",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Kuala_Lumpur",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 28800,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Issuer:   "salon-booking-test",
			Duration: time.Hour,
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		OTP: OTPConfig{
			CodeLength:         6,
			CodeTTL:            5 * time.Minute,
			ResendCooldown:     30 * time.Second,
			MaxAttempts:        5,
			IssueWindow:        time.Hour,
			MaxIssuesPerWindow: 5,
			HashCost:           4, // bcrypt.MinCost keeps unit tests fast
		},
		Booking: BookingConfig{
			TimeZone:   "Asia/Kuala_Lumpur",
			WindowDays: 14,
			TimeSlots: []string{
				"10:00 AM", "11:00 AM", "12:00 PM", "01:00 PM", "02:00 PM",
				"03:00 PM", "04:00 PM", "05:00 PM", "06:00 PM",
			},
			AutoAssign: "pick",
		},
		RateLimit: RateLimitConfig{
			Enabled: false,
		},
	}
}
