package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort string `mapstructure:"HTTP_PORT"`

	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	DBSslMode  string `mapstructure:"DB_SSLMODE"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`

	AdminUsername       string        `mapstructure:"ADMIN_USERNAME"`
	AdminPasswordHash   string        `mapstructure:"ADMIN_PASSWORD_HASH"`
	SessionSecret       string        `mapstructure:"SESSION_SECRET"`
	SessionTTL          time.Duration `mapstructure:"SESSION_TTL"`
	SessionSecureCookie bool          `mapstructure:"SESSION_SECURE_COOKIE"`

	// VehicleHoldPolicy is "booking" (hold the vehicle from placement) or
	// "approval" (hold it only once an admin approves).
	VehicleHoldPolicy string `mapstructure:"VEHICLE_HOLD_POLICY"`
	DriverDailyFee    string `mapstructure:"DRIVER_DAILY_FEE"`
	ReconcileCron     string `mapstructure:"RECONCILE_CRON"`

	BookingRateLimitRPS   float64 `mapstructure:"BOOKING_RATE_LIMIT_RPS"`
	BookingRateLimitBurst int     `mapstructure:"BOOKING_RATE_LIMIT_BURST"`
	MaxUploadBytes        int64   `mapstructure:"MAX_UPLOAD_BYTES"`

	// TrustedProxies is a comma separated list of CIDRs allowed to set
	// X-Forwarded-For.
	TrustedProxies string `mapstructure:"TRUSTED_PROXIES"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`
}

var defaults = map[string]any{
	"HTTP_PORT":                "8080",
	"DB_HOST":                  "localhost",
	"DB_PORT":                  "5432",
	"DB_USER":                  "postgres",
	"DB_PASSWORD":              "",
	"DB_NAME":                  "rental",
	"DB_SSLMODE":               "disable",
	"REDIS_ADDR":               "localhost:6379",
	"REDIS_PASSWORD":           "",
	"REDIS_DB":                 0,
	"CLOUDINARY_CLOUD_NAME":    "",
	"CLOUDINARY_API_KEY":       "",
	"CLOUDINARY_API_SECRET":    "",
	"ADMIN_USERNAME":           "admin",
	"ADMIN_PASSWORD_HASH":      "",
	"SESSION_SECRET":           "",
	"SESSION_TTL":              "12h",
	"SESSION_SECURE_COOKIE":    true,
	"VEHICLE_HOLD_POLICY":      "booking",
	"DRIVER_DAILY_FEE":         "0",
	"RECONCILE_CRON":           "0 */5 * * * *",
	"BOOKING_RATE_LIMIT_RPS":   0.2,
	"BOOKING_RATE_LIMIT_BURST": 5,
	"MAX_UPLOAD_BYTES":         5 << 20,
	"TRUSTED_PROXIES":          "",
	"LOG_LEVEL":                "info",
	"LOG_FORMAT":               "json",
}

// LoadConfig reads envFile when it exists, then the process environment.
// Environment variables win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// ValidateForServe checks the settings only the HTTP server needs.
func (c Config) ValidateForServe() error {
	var errList []error
	if c.SessionSecret == "" {
		errList = append(errList, errors.New("SESSION_SECRET is required"))
	}
	if c.AdminPasswordHash == "" {
		errList = append(errList, errors.New("ADMIN_PASSWORD_HASH is required"))
	}
	if c.CloudinaryCloudName == "" {
		errList = append(errList, errors.New("CLOUDINARY_CLOUD_NAME is required"))
	}
	return errors.Join(errList...)
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// TrustedProxyNets parses TrustedProxies. A bare IP is taken as a single host.
func (c Config) TrustedProxyNets() ([]*net.IPNet, error) {
	var nets []*net.IPNet
	for _, item := range strings.Split(c.TrustedProxies, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if !strings.Contains(item, "/") {
			ip := net.ParseIP(item)
			if ip == nil {
				return nil, fmt.Errorf("TRUSTED_PROXIES: invalid address %q", item)
			}
			bits := 8 * len(ip.To16())
			if ip.To4() != nil {
				ip, bits = ip.To4(), 32
			}
			nets = append(nets, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
			continue
		}
		_, ipNet, err := net.ParseCIDR(item)
		if err != nil {
			return nil, fmt.Errorf("TRUSTED_PROXIES: %w", err)
		}
		nets = append(nets, ipNet)
	}
	return nets, nil
}
