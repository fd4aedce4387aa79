package config

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/livp123/blockledger/internal/utils/logger"
	apperrors "github.com/livp123/blockledger/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultConfigTemplate is written by `blockledger init`.
// DefaultConfigTemplate 由 `blockledger init` 写出。
const DefaultConfigTemplate = `# blockledger configuration / blockledger 配置文件

# Logging / 日志
logging:
  # If enabled, logs are also written to path (rotated). Progress is always printed to stdout.
  # 启用后日志同时写入 path（自动轮转），进度信息始终输出到 stdout。
  enabled: false
  level: "info"
  path: "/var/log/blockledger/blockledger.log"
  max_size: 10
  max_backups: 3
  max_age: 30
  compress: true

# Ledger / 账本
ledger:
  # Ledger CSV path, relative to the working directory unless absolute.
  # 账本 CSV 路径，非绝对路径时相对于当前工作目录。
  path: "events.csv"
  # Hold an exclusive lock on <path>.lock while appending and compacting.
  # 追加和压缩期间对 <path>.lock 持有排他锁。
  lock: true

# Source logs / 源日志
source:
  # Field delimiter of the firewall log records.
  # 防火墙日志记录的字段分隔符。
  delimiter: ","
  # Optional extra filter (expr syntax). Fields: Timestamp, SourceIP, DestinationIP, Description, Priority.
  # 可选的额外过滤表达式（expr 语法）。
  filter: ""

# Metrics / 指标
metrics:
  # node_exporter textfile collector output. Empty disables.
  # node_exporter textfile 采集器输出文件，留空则禁用。
  textfile: ""
`

// Config is the top-level configuration.
// Config 是顶层配置。
type Config struct {
	Logging logger.LoggingConfig `yaml:"logging"`
	Ledger  LedgerConfig         `yaml:"ledger"`
	Source  SourceConfig         `yaml:"source"`
	Metrics MetricsConfig        `yaml:"metrics"`
}

// LedgerConfig controls where the ledger lives and how it is guarded.
type LedgerConfig struct {
	Path string `yaml:"path"`
	Lock bool   `yaml:"lock"`
}

// SourceConfig describes how source log records are read.
type SourceConfig struct {
	Delimiter string `yaml:"delimiter"`
	Filter    string `yaml:"filter"`
}

// MetricsConfig controls the run metrics export.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}

// Default returns the configuration used when no file is present.
// Default 返回没有配置文件时使用的默认配置。
func Default() *Config {
	return &Config{
		Logging: logger.LoggingConfig{
			Enabled:    false,
			Level:      "info",
			Path:       "/var/log/blockledger/blockledger.log",
			MaxSize:    10, // 10MB
			MaxBackups: 3,
			MaxAge:     30, // 30 days
			Compress:   true,
		},
		Ledger: LedgerConfig{
			Path: DefaultLedgerPath,
			Lock: true,
		},
		Source: SourceConfig{
			Delimiter: DefaultDelimiter,
		},
	}
}

// Load reads the configuration from a YAML file on top of the defaults.
// A missing file is not an error.
// Load 在默认值之上读取 YAML 配置文件，文件不存在时不报错。
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	safePath := filepath.Clean(path)
	data, err := os.ReadFile(safePath) // #nosec G304 // path is sanitized with filepath.Clean
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, apperrors.NewConfigError("yaml", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
// Validate 检查配置是否存在错误。
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Ledger.Path) == "" {
		return apperrors.NewConfigError("ledger.path", c.Ledger.Path)
	}
	if _, err := c.Source.Comma(); err != nil {
		return err
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return apperrors.NewConfigError("logging.level", c.Logging.Level)
	}
	return nil
}

// Comma returns the delimiter as a rune suitable for encoding/csv.
func (s SourceConfig) Comma() (rune, error) {
	if s.Delimiter == "" {
		return ',', nil
	}
	r, size := utf8.DecodeRuneInString(s.Delimiter)
	if size != len(s.Delimiter) || r == utf8.RuneError || r == '"' || r == '\r' || r == '\n' {
		return 0, apperrors.NewConfigError("source.delimiter", s.Delimiter)
	}
	return r, nil
}
