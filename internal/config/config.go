// Package config provides hierarchical configuration loading for notifymail.
// Precedence: defaults < YAML file < environment variables.
package config

import "time"

// Config holds all runtime configuration for one notifymail invocation.
type Config struct {
	Template  string    `yaml:"template"` // "welcome" or "marketing"
	Welcome   Welcome   `yaml:"welcome"`
	Marketing Marketing `yaml:"marketing"`
	SMTP      SMTP      `yaml:"smtp"`
	NATS      NATS      `yaml:"nats"`
	Logging   Logging   `yaml:"logging"`
}

// Welcome holds the field values of the welcome template.
type Welcome struct {
	UserName    string `yaml:"user_name"`
	UserEmail   string `yaml:"user_email"`
	CompanyName string `yaml:"company_name"`
	UserRole    string `yaml:"user_role"`
}

// Marketing holds the field values of the marketing template.
// UsersJSON is the raw JSON array of {name,email,role} records.
type Marketing struct {
	CompanyName string `yaml:"company_name"`
	TeamEmail   string `yaml:"team_email"`
	UsersJSON   string `yaml:"users_json"`
}

// SMTP holds SMTP connection configuration. User and Password may be
// empty; the session then runs without authentication.
type SMTP struct {
	Host      string        `yaml:"host"`
	Port      int           `yaml:"port"`
	User      string        `yaml:"user"`
	Password  string        `yaml:"password"`
	From      string        `yaml:"from"`       // defaults to User when unset
	TLSPolicy string        `yaml:"tls_policy"` // "mandatory", "opportunistic" or "none"
	Timeout   time.Duration `yaml:"timeout"`
}

// NATS holds message bus connection configuration.
type NATS struct {
	URL            string        `yaml:"url"`
	Subject        string        `yaml:"subject"`
	User           string        `yaml:"user"`
	Password       string        `yaml:"password"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
	PublishTimeout time.Duration `yaml:"publish_timeout"`
}

// Logging holds structured logging configuration.
type Logging struct {
	Level   string `yaml:"level"`
	Service string `yaml:"service"`
}

// Defaults returns a Config with sensible default values. Every network
// operation carries an explicit deadline; there is no indefinite blocking.
func Defaults() Config {
	return Config{
		SMTP: SMTP{
			Port:      587,
			TLSPolicy: "opportunistic",
			Timeout:   15 * time.Second,
		},
		NATS: NATS{
			ConnectTimeout: 10 * time.Second,
			PublishTimeout: 5 * time.Second,
		},
		Logging: Logging{
			Level:   "info",
			Service: "notifymail",
		},
	}
}
