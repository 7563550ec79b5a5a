// Package config loads intake service settings from the environment and an
// optional .env file. Every key is also reachable as INTAKE_<KEY>.
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/goliatone/go-intake/pkg/form"
	"github.com/goliatone/go-intake/pkg/submit"
)

// Config holds the runtime settings shared by the intake server and CLI.
type Config struct {
	Port string `mapstructure:"PORT"`
	Env  string `mapstructure:"ENV"`

	ClaimsAPIURL string `mapstructure:"CLAIMS_API_URL"`
	AdminToken   string `mapstructure:"ADMIN_TOKEN"`
	UserToken    string `mapstructure:"USER_TOKEN"`

	SubmitTransport string        `mapstructure:"SUBMIT_TRANSPORT"`
	SubmitTimeout   time.Duration `mapstructure:"SUBMIT_TIMEOUT"`
	SimulatedDelay  time.Duration `mapstructure:"SIMULATED_DELAY"`

	MaxUploadBytes int64    `mapstructure:"MAX_UPLOAD_BYTES"`
	AllowedUploads []string `mapstructure:"ALLOWED_UPLOADS"`
	UploadDir      string   `mapstructure:"UPLOAD_DIR"`

	CORSOrigins []string `mapstructure:"CORS_ORIGINS"`

	Theme        string `mapstructure:"THEME"`
	ThemeVariant string `mapstructure:"THEME_VARIANT"`
}

// configKeys lists every key we bind, so env-only values survive Unmarshal.
var configKeys = []string{
	"PORT",
	"ENV",
	"CLAIMS_API_URL",
	"ADMIN_TOKEN",
	"USER_TOKEN",
	"SUBMIT_TRANSPORT",
	"SUBMIT_TIMEOUT",
	"SIMULATED_DELAY",
	"MAX_UPLOAD_BYTES",
	"ALLOWED_UPLOADS",
	"UPLOAD_DIR",
	"CORS_ORIGINS",
	"THEME",
	"THEME_VARIANT",
}

// Default returns the settings used when nothing is configured. They match
// the reference claims backend: port 8000, demo tokens, 10MB PDF/DOC/DOCX
// uploads, a half-second simulated processing delay.
func Default() *Config {
	return &Config{
		Port:            "8000",
		Env:             "development",
		ClaimsAPIURL:    "http://localhost:8000",
		AdminToken:      "admin_token",
		UserToken:       "user_token",
		SubmitTransport: submit.TransportSimulated,
		SubmitTimeout:   10 * time.Second,
		SimulatedDelay:  500 * time.Millisecond,
		MaxUploadBytes:  10 * 1024 * 1024,
		AllowedUploads:  []string{".pdf", ".doc", ".docx"},
		UploadDir:       "uploads/clinical_notes",
		CORSOrigins:     []string{"*"},
	}
}

// Load reads configuration from the environment on top of Default.
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile is Load with an explicit env file path. The file is optional.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("INTAKE")
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("PORT", def.Port)
	v.SetDefault("ENV", def.Env)
	v.SetDefault("CLAIMS_API_URL", def.ClaimsAPIURL)
	v.SetDefault("ADMIN_TOKEN", def.AdminToken)
	v.SetDefault("USER_TOKEN", def.UserToken)
	v.SetDefault("SUBMIT_TRANSPORT", def.SubmitTransport)
	v.SetDefault("SUBMIT_TIMEOUT", def.SubmitTimeout.String())
	v.SetDefault("SIMULATED_DELAY", def.SimulatedDelay.String())
	v.SetDefault("MAX_UPLOAD_BYTES", def.MaxUploadBytes)
	v.SetDefault("ALLOWED_UPLOADS", strings.Join(def.AllowedUploads, ","))
	v.SetDefault("UPLOAD_DIR", def.UploadDir)
	v.SetDefault("CORS_ORIGINS", strings.Join(def.CORSOrigins, ","))
	v.SetDefault("THEME", "")
	v.SetDefault("THEME_VARIANT", "")

	for _, key := range configKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("config: bind %s: %w", key, err)
		}
	}

	// The env file is optional; the environment alone is a full source.
	_ = v.ReadInConfig()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	cfg.AllowedUploads = normalizeExtensions(cfg.AllowedUploads)
	cfg.CORSOrigins = normalizeList(cfg.CORSOrigins)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the server or CLI could not start with.
func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("config: PORT %q is not a number", c.Port)
	}
	switch c.SubmitTransport {
	case submit.TransportSimulated:
	case submit.TransportHTTP:
		if strings.TrimSpace(c.ClaimsAPIURL) == "" {
			return fmt.Errorf("config: CLAIMS_API_URL is required for the %s transport", submit.TransportHTTP)
		}
	default:
		return fmt.Errorf("config: unknown submit transport %q", c.SubmitTransport)
	}
	if c.MaxUploadBytes < 0 {
		return fmt.Errorf("config: MAX_UPLOAD_BYTES must not be negative")
	}
	if c.SubmitTimeout < 0 {
		return fmt.Errorf("config: SUBMIT_TIMEOUT must not be negative")
	}
	return nil
}

// IsDev reports whether the service runs in development mode.
func (c *Config) IsDev() bool {
	return strings.EqualFold(c.Env, "development")
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// Address returns the listen address for the HTTP server.
func (c *Config) Address() string {
	return ":" + c.Port
}

// Constraints materializes the upload settings as form constraints.
func (c *Config) Constraints() form.Constraints {
	return form.Constraints{
		Extensions: append([]string(nil), c.AllowedUploads...),
		MaxBytes:   c.MaxUploadBytes,
	}
}

// normalizeExtensions lowercases entries and restores the leading dot that
// ad-hoc env values tend to drop.
func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}

func normalizeList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		out = append(out, value)
	}
	return out
}
