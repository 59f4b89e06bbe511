package server

import (
	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/labor_clue/app/labor_clue/internal/conf"
	"github.com/iWorld-y/labor_clue/app/labor_clue/pkg/engine"
	clueLogger "github.com/iWorld-y/labor_clue/app/labor_clue/pkg/logger"
	"github.com/iWorld-y/labor_clue/app/labor_clue/pkg/region"
)

// NewClueEngine 初始化汇总统计引擎
func NewClueEngine(c *conf.Region, l *conf.Log, logger log.Logger) (*engine.Engine, error) {
	helper := log.NewHelper(logger)

	// 初始化日志
	if l != nil {
		if err := clueLogger.InitLogger(l.Level, l.File); err != nil {
			helper.Errorf("Failed to init engine logger: %v", err)
			_ = clueLogger.InitLogger("info", "") // 降级处理
		}
	}

	tables := regionTables(c)
	eng, err := engine.NewEngine(tables)
	if err != nil {
		helper.Errorf("Failed to init engine: %v", err)
		return nil, err
	}
	helper.Infof("engine ready: %d districts, %d aliases", len(tables.Districts), len(tables.Aliases))
	return eng, nil
}

// regionTables 将 internal/conf.Region 转换为 region.Tables，未配置时使用默认值
func regionTables(c *conf.Region) region.Tables {
	if c == nil || len(c.Districts) == 0 {
		return region.DefaultTables()
	}
	t := region.Tables{Districts: append([]string(nil), c.Districts...)}
	for _, a := range c.Aliases {
		if a != nil {
			t.Aliases = append(t.Aliases, region.Alias{From: a.From, To: a.To})
		}
	}
	for _, o := range c.Owners {
		if o != nil {
			t.Owners = append(t.Owners, region.Owner{District: o.District, Name: o.Name})
		}
	}
	return t
}
