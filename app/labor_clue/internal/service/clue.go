package service

import (
	"context"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/iWorld-y/labor_clue/app/labor_clue/internal/conf"
	"github.com/iWorld-y/labor_clue/app/labor_clue/internal/domain"
	"github.com/iWorld-y/labor_clue/app/labor_clue/internal/usecase"
)

const OperationProcessFiles = "/labor_clue.v1.Clue/ProcessFiles"

// 上传表单字段
const (
	FieldHotline = "file_12345"
	FieldWarning = "file_anxin"
)

// 响应头
const (
	HeaderDashboard = "X-Dashboard-Data"
	HeaderRunID     = "X-Run-Id"

	contentTypeXLSX    = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	defaultMaxUploadMb = 32
)

type ClueService struct {
	uc        *usecase.ReportUseCase
	maxUpload int64
	log       *log.Helper
}

func NewClueService(c *conf.Server, uc *usecase.ReportUseCase, logger log.Logger) *ClueService {
	maxUpload := int64(defaultMaxUploadMb)
	if c != nil && c.Http != nil && c.Http.MaxUploadMb > 0 {
		maxUpload = c.Http.MaxUploadMb
	}
	return &ClueService{
		uc:        uc,
		maxUpload: maxUpload << 20,
		log:       log.NewHelper(logger),
	}
}

// ProcessFiles 接收 12345 与安薪在线两个文件，返回汇总统计 Excel，看板数据放在响应头
func (s *ClueService) ProcessFiles(ctx http.Context) error {
	var in domain.ProcessRequest
	http.SetOperation(ctx, OperationProcessFiles)
	// 上传内容在中间件链内解析，被限流的请求不会读取请求体
	h := ctx.Middleware(func(c context.Context, req interface{}) (interface{}, error) {
		pr := req.(*domain.ProcessRequest)
		if err := s.readForm(ctx, pr); err != nil {
			return nil, err
		}
		return s.uc.Process(c, pr)
	})
	out, err := h(ctx, &in)
	if err != nil {
		return err
	}
	res := out.(*domain.ProcessResult)

	dashboard, err := ASCIIJSON(res.Dashboard)
	if err != nil {
		s.log.WithContext(ctx).Errorf("看板数据序列化失败: %v", err)
		return errors.InternalServer(usecase.ReasonWriteFailed, fmt.Sprintf("看板数据序列化失败: %v", err))
	}

	header := ctx.Response().Header()
	header.Set("Content-Disposition", "attachment; filename="+url.PathEscape(res.Filename))
	header.Set(HeaderDashboard, dashboard)
	header.Set(HeaderRunID, res.RunID)
	header.Set("Access-Control-Expose-Headers", HeaderDashboard+", "+HeaderRunID+", Content-Disposition")
	return ctx.Blob(nethttp.StatusOK, contentTypeXLSX, res.Content)
}

func (s *ClueService) readForm(ctx http.Context, in *domain.ProcessRequest) error {
	r := ctx.Request()
	r.Body = nethttp.MaxBytesReader(ctx.Response(), r.Body, s.maxUpload)
	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		return errors.BadRequest(usecase.ReasonInvalidFile, fmt.Sprintf("无法解析上传内容: %v", err))
	}
	defer r.MultipartForm.RemoveAll()

	var err error
	if in.Hotline, err = readUpload(r, FieldHotline); err != nil {
		return err
	}
	if in.Warning, err = readUpload(r, FieldWarning); err != nil {
		return err
	}
	return nil
}

func readUpload(r *nethttp.Request, field string) (domain.Upload, error) {
	file, fh, err := r.FormFile(field)
	if err != nil {
		return domain.Upload{}, errors.BadRequest(usecase.ReasonInvalidFile, fmt.Sprintf("缺少上传文件: %s", field))
	}
	defer file.Close()

	if err := usecase.ValidateFilename(fh.Filename); err != nil {
		return domain.Upload{}, err
	}
	content, err := io.ReadAll(file)
	if err != nil {
		return domain.Upload{}, errors.BadRequest(usecase.ReasonInvalidFile, fmt.Sprintf("读取上传文件失败: %v", err))
	}
	return domain.Upload{Filename: fh.Filename, Content: content}, nil
}
