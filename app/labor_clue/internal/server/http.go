package server

import (
	"embed"
	"io/fs"
	nethttp "net/http"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/iWorld-y/labor_clue/app/labor_clue/internal/conf"
	"github.com/iWorld-y/labor_clue/app/labor_clue/internal/service"
)

//go:embed assets/*
var assets embed.FS

func NewHTTPServer(c *conf.Server, s *service.ClueService, logger log.Logger) *http.Server {
	var limit *conf.Limit
	if c != nil {
		limit = c.Limit
	}
	var opts = []http.ServerOption{
		http.Middleware(
			recovery.Recovery(),
			logging.Server(logger),
			RateLimit(newLimiter(limit)),
		),
	}
	if c != nil && c.Http != nil {
		if c.Http.Addr != "" {
			opts = append(opts, http.Address(c.Http.Addr))
		}
		if c.Http.Timeout != "" {
			if d, err := time.ParseDuration(c.Http.Timeout); err == nil {
				opts = append(opts, http.Timeout(d))
			}
		}
	}

	srv := http.NewServer(opts...)
	RegisterClueHTTPServer(srv, s)

	srv.HandleFunc("/", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		content, err := assets.ReadFile("assets/index.html")
		if err != nil {
			nethttp.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(content)
	})

	static, err := fs.Sub(assets, "assets/static")
	if err == nil {
		srv.HandlePrefix("/static/", nethttp.StripPrefix("/static/", nethttp.FileServer(nethttp.FS(static))))
	}

	// 开发工具探测请求，直接返回空响应
	srv.HandleFunc("/@vite/client", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusNoContent)
	})

	return srv
}

// RegisterClueHTTPServer 注册线索汇总接口
func RegisterClueHTTPServer(s *http.Server, srv *service.ClueService) {
	r := s.Route("/")
	r.POST("/process_files/", srv.ProcessFiles)
}
