package commands

import (
	"github.com/livp123/blockledger/internal/ledger"
	"github.com/spf13/cobra"
)

var compactCmd = &cobra.Command{
	Use:   "compact",
	Short: "Compact the ledger without reading any source logs",
	// Short: 仅压缩账本，不读取源日志
	Long: `Drop ledger records older than 15 days, remove duplicates and sort the rest newest first.
删除超过 15 天的账本记录，去重并按时间倒序排列。`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := ledger.NewPipeline(globalCfg, ledger.Env{})
		if err != nil {
			return err
		}
		_, err = p.Compact(cmd.Context())
		return err
	},
}
