package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/diagnosis/wallet-pass/internal/utils"
)

type Config struct {
	Server ServerConfig
	Wallet WalletConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type WalletConfig struct {
	IssuerID            string
	ServiceAccountEmail string
	PrivateKey          string
	AllowedOrigins      []string
	Template            string
	SubheaderMode       string // access, verbatim or empty for the template default
	ClassSuffix         string
}

// LogValue keeps the private key out of logs.
func (w WalletConfig) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("issuer_id", w.IssuerID),
		slog.String("service_account_email", w.ServiceAccountEmail),
		slog.Bool("private_key_set", w.PrivateKey != ""),
		slog.Any("allowed_origins", w.AllowedOrigins),
		slog.String("template", w.Template),
		slog.String("subheader_mode", w.SubheaderMode),
		slog.String("class_suffix", w.ClassSuffix),
	)
}

// ConfigurationError lists every configuration problem found by Validate.
type ConfigurationError struct {
	Problems []string
}

func (e *ConfigurationError) Error() string {
	return "invalid configuration: " + strings.Join(e.Problems, "; ")
}

// Load reads the environment. The returned config is usable only when err
// is nil.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "3000"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 5*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Wallet: WalletConfig{
			IssuerID:            getEnv("ISSUER_ID", ""),
			ServiceAccountEmail: getEnv("SERVICE_ACCOUNT_EMAIL", ""),
			PrivateKey:          getEnv("PRIVATE_KEY", ""),
			AllowedOrigins:      getList("ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
			Template:            getEnv("PASS_TEMPLATE", "digital-door"),
			SubheaderMode:       getEnv("PASS_SUBHEADER_MODE", ""),
			ClassSuffix:         getEnv("PASS_CLASS_SUFFIX", ""),
		},
	}
	return cfg, cfg.Validate()
}

// placeholders are the sample values shipped in example .env files.
var placeholders = map[string]string{
	"ISSUER_ID":             "YOUR_ISSUER_ID",
	"SERVICE_ACCOUNT_EMAIL": "YOUR_SERVICE_ACCOUNT_EMAIL",
	"PRIVATE_KEY":           "YOUR_PRIVATE_KEY",
}

func (c *Config) Validate() error {
	var problems []string
	required := []struct {
		key, value string
	}{
		{"ISSUER_ID", c.Wallet.IssuerID},
		{"SERVICE_ACCOUNT_EMAIL", c.Wallet.ServiceAccountEmail},
		{"PRIVATE_KEY", c.Wallet.PrivateKey},
	}
	for _, r := range required {
		switch strings.TrimSpace(r.value) {
		case "":
			problems = append(problems, r.key+" is not set")
		case placeholders[r.key]:
			problems = append(problems, r.key+" still holds its placeholder value")
		}
	}

	switch c.Wallet.SubheaderMode {
	case "", "access", "verbatim":
	default:
		problems = append(problems, "PASS_SUBHEADER_MODE must be access or verbatim")
	}
	if c.Server.Port == "" {
		problems = append(problems, "PORT is empty")
	}

	if len(problems) > 0 {
		return &ConfigurationError{Problems: problems}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getList(key string, fallback []string) []string {
	if value, ok := os.LookupEnv(key); ok {
		return utils.SplitList(value)
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
