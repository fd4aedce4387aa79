package commands

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/livp123/blockledger/internal/config"
	"github.com/livp123/blockledger/internal/runtime"
	"github.com/livp123/blockledger/internal/utils/logger"
	apperrors "github.com/livp123/blockledger/pkg/errors"
	"github.com/spf13/cobra"
)

// globalCfg is loaded by the root PersistentPreRunE before any command runs.
// globalCfg 由根命令的 PersistentPreRunE 在任何命令执行前加载。
var globalCfg *config.Config

var RootCmd = &cobra.Command{
	Use:   "blockledger <path_to_log_files> <days_back>",
	Short: "Collect blocked-source firewall events into a rolling CSV ledger",
	// Short: 将防火墙封禁事件汇总到滚动的 CSV 账本中
	Long: `blockledger scans <path_to_log_files> for fwddmp.log.tmp* files modified within
<days_back> days, appends the blocked-source events they contain to the ledger and
compacts the ledger to the last 15 days, newest first.
blockledger 扫描目录中最近 <days_back> 天内修改过的 fwddmp.log.tmp* 文件，
将其中的封禁事件追加到账本，并将账本压缩为最近 15 天、按时间倒序排列。`,
	Args:              positionalArgs,
	PersistentPreRunE: loadConfig,
	RunE:              runPipeline,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	// Config file path
	// 配置文件路径
	RootCmd.PersistentFlags().StringVarP(&runtime.ConfigPath, "config", "c", "", fmt.Sprintf("Path to configuration file (default: %s)", config.DefaultConfigPath))

	// Ledger path override
	// 账本路径覆盖
	RootCmd.PersistentFlags().StringVar(&runtime.LedgerPath, "ledger", "", "Ledger CSV path (overrides ledger.path)")

	RootCmd.AddCommand(runCmd)
	RootCmd.AddCommand(compactCmd)
	RootCmd.AddCommand(versionCmd)
	RootCmd.AddCommand(initCmd)

	RootCmd.CompletionOptions.DisableDefaultCmd = true
}

// loadConfig loads the configuration, initializes logging and injects the logger into the context.
// loadConfig 加载配置、初始化日志并将 Logger 注入 Context。
func loadConfig(cmd *cobra.Command, args []string) error {
	cfgPath := runtime.ConfigPath
	if cfgPath == "" {
		cfgPath = config.DefaultConfigPath
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		// Keep console logging available for the error report
		// 保留控制台日志以便输出错误
		logger.Init(config.Default().Logging)
		return fmt.Errorf("load config %s: %w", cfgPath, err)
	}
	if runtime.LedgerPath != "" {
		cfg.Ledger.Path = runtime.LedgerPath
	}
	logger.Init(cfg.Logging)
	globalCfg = cfg

	// Inject logger into context
	// 将 Logger 注入 Context
	ctx := logger.WithContext(cmd.Context(), logger.Get(nil))
	cmd.SetContext(ctx)
	return nil
}

// positionalArgs validates <path_to_log_files> <days_back> before any I/O happens.
// positionalArgs 在任何 I/O 之前校验位置参数。
func positionalArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: expected <path_to_log_files> <days_back>, got %d argument(s)", apperrors.ErrUsage, len(args))
	}
	_, err := parseDays(args[1])
	return err
}

// parseDays parses days_back, which must be a non-negative integer.
func parseDays(s string) (int, error) {
	days, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || days < 0 {
		return 0, apperrors.NewDaysError(s)
	}
	return days, nil
}

func Execute() {
	defer logger.Sync()

	cmd, err := RootCmd.ExecuteC()
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if errors.Is(err, apperrors.ErrUsage) || errors.Is(err, apperrors.ErrInvalidDays) {
		fmt.Fprint(os.Stderr, cmd.UsageString())
	}
	os.Exit(1)
}
