package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iWorld-y/labor_clue/app/labor_clue/pkg/engine"
	"github.com/iWorld-y/labor_clue/app/labor_clue/pkg/region"
)

func newNormalizeCmd() *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "normalize <text>",
		Short: "按区域配置归一一个区域文本",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := parseKind(kind)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			eng, err := engine.NewEngine(cfg.Region)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), eng.Normalize(args[0], k))
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "hotline", "来源格式：hotline 或 warning")
	return cmd
}

func parseKind(s string) (region.Kind, error) {
	switch s {
	case "hotline":
		return region.Hotline, nil
	case "warning":
		return region.Warning, nil
	}
	return region.Hotline, fmt.Errorf("未知的来源格式: %s", s)
}
