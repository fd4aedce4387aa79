package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/livp123/blockledger/internal/config"
	"github.com/livp123/blockledger/internal/runtime"
	"github.com/livp123/blockledger/internal/utils/fileutil"
	"github.com/livp123/blockledger/internal/utils/logger"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	// Short: 初始化配置
	Long: `Write the default configuration file to the config path.
将默认配置文件写入配置路径。`,
	Args: cobra.NoArgs,
	// An unreadable existing config must not prevent rewriting it with --force
	// 已有配置无法解析时也允许使用 --force 覆盖
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.Init(config.Default().Logging)
		cmd.SetContext(logger.WithContext(cmd.Context(), logger.Get(nil)))
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		path := runtime.ConfigPath
		if path == "" {
			path = config.DefaultConfigPath
		}

		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
		if err := fileutil.AtomicWriteFile(path, []byte(config.DefaultConfigTemplate), 0644); err != nil {
			return fmt.Errorf("write config %s: %w", path, err)
		}

		logger.Get(cmd.Context()).Infof("[OK] Configuration written to %s", path)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolP("force", "f", false, "Overwrite an existing configuration file")
}
