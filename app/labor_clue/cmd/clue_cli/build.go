package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/spf13/cobra"

	"github.com/iWorld-y/labor_clue/app/labor_clue/internal/data"
	"github.com/iWorld-y/labor_clue/app/labor_clue/internal/domain"
	"github.com/iWorld-y/labor_clue/app/labor_clue/internal/usecase"
	"github.com/iWorld-y/labor_clue/app/labor_clue/pkg/config"
	"github.com/iWorld-y/labor_clue/app/labor_clue/pkg/engine"
	"github.com/iWorld-y/labor_clue/app/labor_clue/pkg/logger"
)

type buildOptions struct {
	hotline string
	warning string
	date    string
	out     string
}

func newBuildCmd() *cobra.Command {
	var opts buildOptions
	cmd := &cobra.Command{
		Use:   "build",
		Short: "生成汇总统计 Excel 与看板 JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.hotline, "hotline", "", "12345 热线导出表（.xlsx/.xls）")
	cmd.Flags().StringVar(&opts.warning, "warning", "", "安薪在线预警表（.xlsx/.xls）")
	cmd.Flags().StringVar(&opts.date, "date", "", "报告日期 YYYYMMDD，默认当天")
	cmd.Flags().StringVar(&opts.out, "out", "", "输出目录，默认取配置 output_dir")
	_ = cmd.MarkFlagRequired("hotline")
	_ = cmd.MarkFlagRequired("warning")
	return cmd
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("加载配置失败: %w", err)
	}
	if err := logger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		return nil, fmt.Errorf("初始化日志失败: %w", err)
	}
	return cfg, nil
}

func readUpload(path string) (domain.Upload, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.Upload{}, err
	}
	return domain.Upload{Filename: filepath.Base(path), Content: content}, nil
}

func runBuild(cmd *cobra.Command, opts buildOptions) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	eng, err := engine.NewEngine(cfg.Region)
	if err != nil {
		return err
	}
	klog := log.NewFilter(log.NewStdLogger(cmd.ErrOrStderr()), log.FilterLevel(log.LevelWarn))
	uc := usecase.NewReportUseCase(data.NewWorkbookRepo(klog), eng, klog)

	req := &domain.ProcessRequest{ReportDate: opts.date}
	if req.Hotline, err = readUpload(opts.hotline); err != nil {
		return err
	}
	if req.Warning, err = readUpload(opts.warning); err != nil {
		return err
	}

	res, err := uc.Process(cmd.Context(), req)
	if err != nil {
		return err
	}

	outDir := opts.out
	if outDir == "" {
		outDir = cfg.OutputDir
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	workbook := filepath.Join(outDir, res.Filename)
	if err := os.WriteFile(workbook, res.Content, 0o644); err != nil {
		return err
	}

	dashboard, err := json.MarshalIndent(res.Dashboard, "", "  ")
	if err != nil {
		return err
	}
	dashboardPath := filepath.Join(outDir, strings.TrimSuffix(res.Filename, domain.OutputSuffix)+"dashboard.json")
	if err := os.WriteFile(dashboardPath, dashboard, 0o644); err != nil {
		return err
	}

	logger.Log.WithField("run_id", res.RunID).Infof("已生成 %s", workbook)
	fmt.Fprintln(cmd.OutOrStdout(), workbook)
	fmt.Fprintln(cmd.OutOrStdout(), dashboardPath)
	return nil
}
