package runtime

// ConfigPath stores the path to the configuration file provided via CLI flags.
// ConfigPath 存储通过 CLI 标志提供的配置文件路径。
var ConfigPath string

// LedgerPath overrides ledger.path from the configuration file when set via CLI flags.
// LedgerPath 通过 CLI 标志设置时覆盖配置文件中的 ledger.path。
var LedgerPath string
