package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "clue_cli",
		Short:         "劳动监察线索汇总统计",
		Long:          `读取 12345 热线与安薪在线导出表，生成线索汇总表、数据情况统计表与数据看板。`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "配置文件路径（YAML），为空时使用默认配置")
	root.AddCommand(newBuildCmd(), newNormalizeCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
