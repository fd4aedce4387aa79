package logger

// LoggingConfig is the `logging` section of the blockledger configuration.
// Console output to stdout is always on; these settings add a rotated log file.
// LoggingConfig 是 blockledger 配置中的 `logging` 部分。控制台输出始终开启，以下设置用于额外的轮转日志文件。
type LoggingConfig struct {
	Enabled    bool   `yaml:"enabled"`     // also write Path / 同时写入 Path
	Level      string `yaml:"level"`       // debug, info, warn, error
	Path       string `yaml:"path"`        // rotated log file / 轮转日志文件
	MaxSize    int    `yaml:"max_size"`    // MB before rotation / 轮转前大小（MB）
	MaxBackups int    `yaml:"max_backups"` // rotated files kept / 保留的旧文件数
	MaxAge     int    `yaml:"max_age"`     // days rotated files are kept / 旧文件保留天数
	Compress   bool   `yaml:"compress"`    // gzip rotated files / 压缩旧文件
}
