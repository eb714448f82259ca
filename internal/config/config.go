package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/hms/hms/internal/platform/report"
)

type Config struct {
	Port            string   `mapstructure:"PORT"`
	Env             string   `mapstructure:"ENV"`
	DBPath          string   `mapstructure:"DB_PATH"`
	CORSOrigins     []string `mapstructure:"CORS_ORIGINS"`
	Departments     []string `mapstructure:"DEPARTMENTS"`
	HospitalName    string   `mapstructure:"HOSPITAL_NAME"`
	HospitalAddress string   `mapstructure:"HOSPITAL_ADDRESS"`
	HospitalPhone   string   `mapstructure:"HOSPITAL_PHONE"`
	HospitalEmail   string   `mapstructure:"HOSPITAL_EMAIL"`
	Currency        string   `mapstructure:"CURRENCY"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_PATH", "hospital.db")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("DEPARTMENTS", "Cardiology,Neurology,Orthopedics,Pediatrics,General Medicine,Surgery,Gynecology,ENT,Dermatology,Psychiatry")
	v.SetDefault("HOSPITAL_NAME", "City Care Hospital")
	v.SetDefault("HOSPITAL_ADDRESS", "123 Hospital Road")
	v.SetDefault("HOSPITAL_PHONE", "+92-300-0000000")
	v.SetDefault("HOSPITAL_EMAIL", "info@citycare.example")
	v.SetDefault("CURRENCY", "$")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("DB_PATH")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("DEPARTMENTS")
	v.BindEnv("HOSPITAL_NAME")
	v.BindEnv("HOSPITAL_ADDRESS")
	v.BindEnv("HOSPITAL_PHONE")
	v.BindEnv("HOSPITAL_EMAIL")
	v.BindEnv("CURRENCY")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// List values arrive as comma-separated strings; re-split from the raw
	// value so entries come out trimmed regardless of how they were set.
	cfg.CORSOrigins = splitList(v.GetString("CORS_ORIGINS"))
	cfg.Departments = splitList(v.GetString("DEPARTMENTS"))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH is required")
	}
	return nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Hospital is the identity block printed on receipts and reports.
func (c *Config) Hospital() report.Hospital {
	return report.Hospital{
		Name:    c.HospitalName,
		Address: c.HospitalAddress,
		Phone:   c.HospitalPhone,
		Email:   c.HospitalEmail,
	}
}
