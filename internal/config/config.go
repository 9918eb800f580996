// Package config loads trainlog settings: defaults, then an optional TOML
// file, then TRAINLOG_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	BackendXLSX   = "xlsx"
	BackendSQLite = "sqlite"

	SourceSheets = "sheets"
	SourceXLSX   = "xlsx"
)

// Config holds all runtime settings.
type Config struct {
	LogDir         string `toml:"log_dir"`
	HistoryBackend string `toml:"history_backend"`
	DBPath         string `toml:"db_path"`

	TemplateSource  string `toml:"template_source"`
	SheetKey        string `toml:"sheet_key"`
	CredentialsPath string `toml:"credentials_path"`
	TemplatePath    string `toml:"template_path"`
	CodesTab        string `toml:"codes_tab"`
	QuotesTab       string `toml:"quotes_tab"`

	RequireCode bool   `toml:"require_code"`
	SummaryDays int    `toml:"summary_days"`
	RecentLimit int    `toml:"recent_limit"`
	LogCalls    bool   `toml:"log_calls"`
	LogFile     string `toml:"log_file"`
}

// DefaultConfig returns a Config with sensible defaults. Templates come from
// Google Sheets and histories are kept as workbooks under client_logs/.
func DefaultConfig() Config {
	return Config{
		LogDir:          "client_logs",
		HistoryBackend:  BackendXLSX,
		DBPath:          filepath.Join("client_logs", "trainlog.db"),
		TemplateSource:  SourceSheets,
		CredentialsPath: "credentials.json",
		CodesTab:        "Client_Codes",
		QuotesTab:       "Quotes",
		RequireCode:     true,
		SummaryDays:     7,
		RecentLimit:     10,
	}
}

// DefaultPath is the config file read when TRAINLOG_CONFIG is unset.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "trainlog", "config.toml")
}

// LoadConfig reads the file at path (or TRAINLOG_CONFIG, or DefaultPath)
// over the defaults, then applies environment overrides. A missing file is
// not an error unless it was named explicitly.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		if v := os.Getenv("TRAINLOG_CONFIG"); v != "" {
			path, explicit = v, true
		} else {
			path = DefaultPath()
		}
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return cfg, fmt.Errorf("reading config %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	str := map[string]*string{
		"TRAINLOG_LOG_DIR":         &cfg.LogDir,
		"TRAINLOG_HISTORY_BACKEND": &cfg.HistoryBackend,
		"TRAINLOG_DB":              &cfg.DBPath,
		"TRAINLOG_TEMPLATE_SOURCE": &cfg.TemplateSource,
		"TRAINLOG_SHEET_KEY":       &cfg.SheetKey,
		"TRAINLOG_CREDENTIALS":     &cfg.CredentialsPath,
		"TRAINLOG_TEMPLATE_PATH":   &cfg.TemplatePath,
		"TRAINLOG_LOG_FILE":        &cfg.LogFile,
	}
	for name, dst := range str {
		if v := os.Getenv(name); v != "" {
			*dst = v
		}
	}

	if v := os.Getenv("TRAINLOG_REQUIRE_CODE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.RequireCode = b
		}
	}
	if v := os.Getenv("TRAINLOG_LOG_CALLS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogCalls = b
		}
	}
	if v := os.Getenv("TRAINLOG_SUMMARY_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SummaryDays = n
		}
	}
	if v := os.Getenv("TRAINLOG_RECENT_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RecentLimit = n
		}
	}
}

// Validate reports settings that cannot be used.
func (c Config) Validate() error {
	var errs []error
	switch strings.ToLower(c.HistoryBackend) {
	case BackendXLSX, BackendSQLite:
	default:
		errs = append(errs, fmt.Errorf("history_backend must be %q or %q, got %q", BackendXLSX, BackendSQLite, c.HistoryBackend))
	}
	switch strings.ToLower(c.TemplateSource) {
	case SourceSheets:
		if c.SheetKey == "" {
			errs = append(errs, errors.New("sheet_key is required when template_source is sheets"))
		}
	case SourceXLSX:
		if c.TemplatePath == "" {
			errs = append(errs, errors.New("template_path is required when template_source is xlsx"))
		}
	default:
		errs = append(errs, fmt.Errorf("template_source must be %q or %q, got %q", SourceSheets, SourceXLSX, c.TemplateSource))
	}
	if c.SummaryDays <= 0 {
		errs = append(errs, errors.New("summary_days must be positive"))
	}
	return errors.Join(errs...)
}
