package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Data  DataConfig  `mapstructure:"data"`
	Audit AuditConfig `mapstructure:"audit"`
	Log   LogConfig   `mapstructure:"log"`
}

// DataConfig locates the flat record stores. File names default to the
// historical store layout so existing data directories keep working.
type DataConfig struct {
	Dir                string `mapstructure:"dir"`
	AccountsFile       string `mapstructure:"accounts_file"`
	ClosedAccountsFile string `mapstructure:"closed_accounts_file"`
	TransactionsFile   string `mapstructure:"transactions_file"`
	LoansFile          string `mapstructure:"loans_file"`
	DebitCardsFile     string `mapstructure:"debit_cards_file"`
	ComplaintsFile     string `mapstructure:"complaints_file"`
	FlaggedFile        string `mapstructure:"flagged_file"`
	AuditReportFile    string `mapstructure:"audit_report_file"`
}

// Path joins a store file name onto the data directory.
func (d DataConfig) Path(file string) string {
	return filepath.Join(d.Dir, file)
}

type AuditConfig struct {
	// SuspiciousThreshold is the default amount above which a transaction
	// is flagged during a suspicious-activity sweep.
	SuspiciousThreshold string `mapstructure:"suspicious_threshold"`
}

// Threshold parses the configured suspicious-activity threshold.
func (a AuditConfig) Threshold() (decimal.Decimal, error) {
	return decimal.NewFromString(a.SuspiciousThreshold)
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: BRANCH.
// Nested keys use underscore: BRANCH_DATA_DIR, BRANCH_LOG_LEVEL, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("data.dir", "./data")
	v.SetDefault("data.accounts_file", "customers.txt")
	v.SetDefault("data.closed_accounts_file", "closed_accounts.txt")
	v.SetDefault("data.transactions_file", "transactions.txt")
	v.SetDefault("data.loans_file", "loan_applications.txt")
	v.SetDefault("data.debit_cards_file", "debit_cards.txt")
	v.SetDefault("data.complaints_file", "complaints.txt")
	v.SetDefault("data.flagged_file", "flagged_transactions.txt")
	v.SetDefault("data.audit_report_file", "audit_report.txt")
	v.SetDefault("audit.suspicious_threshold", "1000.00")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: BRANCH_DATA_DIR -> data.dir
	v.SetEnvPrefix("BRANCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration for values that would fail at runtime.
func (c *Config) Validate() error {
	if c.Data.Dir == "" {
		return fmt.Errorf("data.dir must not be empty")
	}
	threshold, err := c.Audit.Threshold()
	if err != nil {
		return fmt.Errorf("audit.suspicious_threshold %q is not a valid amount: %w", c.Audit.SuspiciousThreshold, err)
	}
	if threshold.IsNegative() {
		return fmt.Errorf("audit.suspicious_threshold must not be negative")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	return nil
}
