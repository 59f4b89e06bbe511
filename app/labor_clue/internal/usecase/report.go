package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/iWorld-y/labor_clue/app/labor_clue/internal/domain"
	"github.com/iWorld-y/labor_clue/app/labor_clue/internal/repo"
	"github.com/iWorld-y/labor_clue/app/labor_clue/pkg/engine"
	"github.com/iWorld-y/labor_clue/app/labor_clue/pkg/model"
	"github.com/iWorld-y/labor_clue/app/labor_clue/pkg/report"
)

// 错误原因
const (
	ReasonInvalidFile   = "INVALID_FILE"
	ReasonInvalidDate   = "INVALID_DATE"
	ReasonReadFailed    = "READ_FAILED"
	ReasonProcessFailed = "PROCESS_FAILED"
	ReasonWriteFailed   = "WRITE_FAILED"
)

const dateLayout = "20060102"

// ReportUseCase 汇总统计业务逻辑
type ReportUseCase struct {
	repo   repo.WorkbookRepo
	engine *engine.Engine
	log    *log.Helper
	now    func() time.Time
}

// NewReportUseCase 创建汇总统计业务逻辑实例
func NewReportUseCase(repo repo.WorkbookRepo, eng *engine.Engine, logger log.Logger) *ReportUseCase {
	return &ReportUseCase{
		repo:   repo,
		engine: eng,
		log:    log.NewHelper(logger),
		now:    time.Now,
	}
}

// ValidateFilename 只接受 .xlsx 与 .xls
func ValidateFilename(name string) error {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xls":
		return nil
	}
	return errors.BadRequest(ReasonInvalidFile, fmt.Sprintf("请上传Excel文件(.xlsx或.xls格式)，当前文件: %s", name))
}

// OutputFilename 输出文件名
func OutputFilename(reportDate string) string {
	return reportDate + domain.OutputSuffix
}

// Process 读取两个上传文件，生成汇总表、统计表与看板数据
func (uc *ReportUseCase) Process(ctx context.Context, req *domain.ProcessRequest) (*domain.ProcessResult, error) {
	for _, u := range []domain.Upload{req.Hotline, req.Warning} {
		if err := ValidateFilename(u.Filename); err != nil {
			return nil, err
		}
	}

	date := req.ReportDate
	if date == "" {
		date = uc.now().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, errors.BadRequest(ReasonInvalidDate, fmt.Sprintf("报告日期格式应为YYYYMMDD，当前: %s", date))
	}

	runID := uuid.NewString()
	logger := uc.log.WithContext(ctx)
	logger.Infof("开始处理 run_id=%s 12345=%s 安薪在线=%s", runID, req.Hotline.Filename, req.Warning.Filename)

	var hotline, warning *model.Sheet
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sheet, err := uc.repo.Decode(gctx, req.Hotline)
		if err != nil {
			return errors.InternalServer(ReasonReadFailed, fmt.Sprintf("读取12345文件失败: %v", err)).WithCause(err)
		}
		hotline = sheet
		return nil
	})
	g.Go(func() error {
		sheet, err := uc.repo.Decode(gctx, req.Warning)
		if err != nil {
			return errors.InternalServer(ReasonReadFailed, fmt.Sprintf("读取安薪文件失败: %v", err)).WithCause(err)
		}
		warning = sheet
		return nil
	})
	if err := g.Wait(); err != nil {
		logger.Errorf("run_id=%s 读取失败: %v", runID, err)
		return nil, err
	}

	result, err := uc.engine.Run(hotline, warning, engine.RunOptions{RunID: runID, ReportDate: date})
	if err != nil {
		logger.Errorf("run_id=%s 处理失败: %v", runID, err)
		return nil, errors.InternalServer(ReasonProcessFailed, err.Error()).WithCause(err)
	}

	content, err := uc.repo.Encode(ctx, buildWorkbook(result))
	if err != nil {
		logger.Errorf("run_id=%s 写入失败: %v", runID, err)
		return nil, errors.InternalServer(ReasonWriteFailed, fmt.Sprintf("写入Excel文件失败: %v", err)).WithCause(err)
	}

	logger.Infof("处理完成 run_id=%s 汇总 %d 行，统计 %d 行", runID, len(result.Records), len(result.Report))
	return &domain.ProcessResult{
		RunID:     runID,
		Filename:  OutputFilename(date),
		Content:   content,
		BasicInfo: result.BasicInfo,
		Dashboard: result.Dashboard,
	}, nil
}

func buildWorkbook(result *engine.Result) *domain.Workbook {
	summary := make([][]model.Value, 0, len(result.Records))
	for i := range result.Records {
		summary = append(summary, result.Records[i].Values())
	}
	statistics := make([][]model.Value, 0, len(result.Report))
	for _, row := range result.Report {
		statistics = append(statistics, row.Values())
	}
	return &domain.Workbook{
		Summary: domain.SheetData{
			Name:    domain.SummarySheet,
			Columns: model.Columns(),
			Rows:    summary,
		},
		Statistics: domain.SheetData{
			Name:    domain.StatisticsSheet,
			Columns: report.Columns(),
			Rows:    statistics,
		},
	}
}
