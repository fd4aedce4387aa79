package config

import "time"

const (
	// DefaultConfigPath is the standard location for the blockledger configuration file.
	// DefaultConfigPath 是 blockledger 配置文件的标准位置。
	DefaultConfigPath = "/etc/blockledger/config.yaml"

	// DefaultLedgerPath is the ledger file, relative to the working directory.
	// DefaultLedgerPath 是账本文件路径（相对于当前工作目录）。
	DefaultLedgerPath = "events.csv"

	// SourceFilePrefix is the name prefix of rotated firewall log temp files.
	// SourceFilePrefix 是防火墙轮转临时日志文件的名称前缀。
	SourceFilePrefix = "fwddmp.log.tmp"

	// RetentionDays is the fixed ledger retention window applied by compaction.
	// RetentionDays 是压缩时使用的固定保留天数。
	RetentionDays = 15

	// TimestampLayout is the naive date-time layout used by source logs and the ledger.
	// TimestampLayout 是源日志和账本使用的无时区时间格式。
	TimestampLayout = "2006/01/02 15:04:05"

	// LockSuffix is appended to the ledger path to form the advisory lock file.
	// LockSuffix 追加到账本路径后，构成咨询锁文件。
	LockSuffix = ".lock"

	// DefaultDelimiter separates fields in source log records.
	DefaultDelimiter = ","
)

// Day is one retention/selection day. Windows are measured in whole 24h spans, not calendar days.
// Day 表示一天（按 24 小时计算，而非日历日）。
const Day = 24 * time.Hour

// Source log column positions. The layout is fixed by the log producer.
// 源日志列位置，由日志生产者固定。
const (
	ColPriority      = 1
	ColDescription   = 3
	ColTimestamp     = 4
	ColSourceIP      = 6
	ColBlocked       = 11
	ColDestinationIP = 12
)

// BlockedFlag is the blocked column value marking a blocked source address.
const BlockedFlag = "1"
