package commands

import (
	"github.com/livp123/blockledger/internal/ledger"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <path_to_log_files> <days_back>",
	Short: "Ingest recent log files, append to the ledger and compact it",
	// Short: 读取最近的日志文件，追加到账本并压缩
	Args: positionalArgs,
	RunE: runPipeline,
}

// runPipeline is shared by the root command and `run`.
// runPipeline 由根命令和 `run` 共用。
func runPipeline(cmd *cobra.Command, args []string) error {
	days, err := parseDays(args[1])
	if err != nil {
		return err
	}

	p, err := ledger.NewPipeline(globalCfg, ledger.Env{})
	if err != nil {
		return err
	}
	_, err = p.Run(cmd.Context(), args[0], days)
	return err
}
