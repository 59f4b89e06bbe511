package repo

import (
	"context"

	"github.com/iWorld-y/labor_clue/app/labor_clue/internal/domain"
	"github.com/iWorld-y/labor_clue/app/labor_clue/pkg/model"
)

// WorkbookRepo 表格文件读写接口
type WorkbookRepo interface {
	// Decode 读取上传文件的第一个工作表，首行为表头
	Decode(ctx context.Context, upload domain.Upload) (*model.Sheet, error)
	// Encode 生成输出文件内容
	Encode(ctx context.Context, wb *domain.Workbook) ([]byte, error)
}
