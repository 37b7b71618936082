package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/knapscen/notifymail/internal/domain"
	"github.com/knapscen/notifymail/internal/domain/notification"
)

// DefaultConfigFile is the path checked for YAML configuration.
const DefaultConfigFile = "notifymail.yaml"

// Load returns a Config using the hierarchy: defaults < YAML < ENV.
// A .env file in the working directory is applied first when present,
// matching how the deployment wrapper prepares the environment.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigFile)
}

// LoadFrom returns a Config loaded from the given YAML path using the
// hierarchy: defaults < YAML < ENV. The YAML file is optional.
func LoadFrom(yamlPath string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Defaults()

	if err := loadYAML(&cfg, yamlPath); err != nil {
		return nil, fmt.Errorf("config yaml: %w", err)
	}

	if err := loadEnv(&cfg); err != nil {
		return nil, err
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadYAML reads the YAML file and unmarshals it over cfg.
// Returns nil if the file does not exist.
func loadYAML(cfg *Config, path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is validated by caller
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	return nil
}

// loadEnv overlays environment variables onto cfg.
// Only non-empty env values override the current config.
func loadEnv(cfg *Config) error {
	setString(&cfg.Template, "EMAIL_TEMPLATE")

	setString(&cfg.Welcome.UserName, "USER_NAME")
	setString(&cfg.Welcome.UserEmail, "USER_EMAIL")
	setString(&cfg.Welcome.CompanyName, "COMPANY_NAME")
	setString(&cfg.Welcome.UserRole, "USER_ROLE")

	setString(&cfg.Marketing.CompanyName, "COMPANY_NAME")
	setString(&cfg.Marketing.TeamEmail, "MARKETING_TEAM_EMAIL")
	setString(&cfg.Marketing.UsersJSON, "USERS_JSON")

	setString(&cfg.SMTP.Host, "SMTP_SERVER")
	setString(&cfg.SMTP.User, "SMTP_USER")
	setString(&cfg.SMTP.Password, "SMTP_PASS")
	setString(&cfg.SMTP.From, "SMTP_FROM")
	setString(&cfg.SMTP.TLSPolicy, "SMTP_TLS")

	setString(&cfg.NATS.URL, "NATS_SERVER")
	setString(&cfg.NATS.Subject, "NATS_SUBJECT")
	setString(&cfg.NATS.User, "NATS_USER")
	setString(&cfg.NATS.Password, "NATS_PASSWORD")

	setString(&cfg.Logging.Level, "LOG_LEVEL")
	setString(&cfg.Logging.Service, "LOG_SERVICE")

	if err := setInt(&cfg.SMTP.Port, "SMTP_PORT"); err != nil {
		return err
	}
	if err := setDuration(&cfg.SMTP.Timeout, "SMTP_TIMEOUT"); err != nil {
		return err
	}
	if err := setDuration(&cfg.NATS.ConnectTimeout, "NATS_CONNECT_TIMEOUT"); err != nil {
		return err
	}
	if err := setDuration(&cfg.NATS.PublishTimeout, "NATS_PUBLISH_TIMEOUT"); err != nil {
		return err
	}

	if cfg.SMTP.From == "" {
		cfg.SMTP.From = cfg.SMTP.User
	}

	return nil
}

// validate checks the selected template kind first, then collects every
// missing required variable before failing, so one run reports them all.
func validate(cfg *Config) error {
	kind, err := notification.ParseTemplateKind(cfg.Template)
	if err != nil {
		return err
	}

	var missing []string
	require := func(val, name string) {
		if strings.TrimSpace(val) == "" {
			missing = append(missing, name)
		}
	}

	require(cfg.SMTP.Host, "SMTP_SERVER")
	require(cfg.NATS.URL, "NATS_SERVER")
	require(cfg.NATS.Subject, "NATS_SUBJECT")
	require(cfg.NATS.User, "NATS_USER")
	require(cfg.NATS.Password, "NATS_PASSWORD")

	switch kind {
	case notification.KindWelcome:
		require(cfg.Welcome.UserName, "USER_NAME")
		require(cfg.Welcome.UserEmail, "USER_EMAIL")
		require(cfg.Welcome.CompanyName, "COMPANY_NAME")
		require(cfg.Welcome.UserRole, "USER_ROLE")
	case notification.KindMarketing:
		require(cfg.Marketing.CompanyName, "COMPANY_NAME")
		require(cfg.Marketing.TeamEmail, "MARKETING_TEAM_EMAIL")
		require(cfg.Marketing.UsersJSON, "USERS_JSON")
	}

	if len(missing) > 0 {
		return &domain.MissingVarsError{Vars: missing}
	}

	if kind == notification.KindMarketing {
		if _, err := parseUsers(cfg.Marketing.UsersJSON); err != nil {
			return err
		}
	}

	if cfg.SMTP.Port <= 0 || cfg.SMTP.Port > 65535 {
		return fmt.Errorf("%w: SMTP_PORT must be between 1 and 65535", domain.ErrConfig)
	}

	return nil
}

// NotificationContext assembles the validated tagged context for the
// selected template. Load must have succeeded on cfg.
func (cfg *Config) NotificationContext() (notification.Context, error) {
	kind, err := notification.ParseTemplateKind(cfg.Template)
	if err != nil {
		return notification.Context{}, err
	}

	switch kind {
	case notification.KindWelcome:
		return notification.Context{
			Kind: kind,
			Welcome: &notification.WelcomeContext{
				UserName:    cfg.Welcome.UserName,
				UserEmail:   cfg.Welcome.UserEmail,
				CompanyName: cfg.Welcome.CompanyName,
				UserRole:    cfg.Welcome.UserRole,
			},
		}, nil
	default:
		users, err := parseUsers(cfg.Marketing.UsersJSON)
		if err != nil {
			return notification.Context{}, err
		}
		return notification.Context{
			Kind: kind,
			Marketing: &notification.MarketingContext{
				CompanyName:        cfg.Marketing.CompanyName,
				MarketingTeamEmail: cfg.Marketing.TeamEmail,
				Users:              users,
			},
		}, nil
	}
}

// parseUsers decodes USERS_JSON into user records and checks that every
// record carries a name, email and role.
func parseUsers(raw string) ([]notification.UserRecord, error) {
	var users []notification.UserRecord
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return nil, fmt.Errorf("%w: invalid USERS_JSON: %v", domain.ErrConfig, err)
	}
	for i, u := range users {
		if u.Name == "" || u.Email == "" || u.Role == "" {
			return nil, fmt.Errorf("%w: USERS_JSON record %d is missing name, email or role", domain.ErrConfig, i)
		}
	}
	return users, nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrConfig, key, err)
	}
	*dst = n
	return nil
}

func setDuration(dst *time.Duration, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrConfig, key, err)
	}
	*dst = d
	return nil
}
