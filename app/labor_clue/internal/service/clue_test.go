package service

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	nethttp "net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/iWorld-y/labor_clue/app/labor_clue/internal/conf"
	"github.com/iWorld-y/labor_clue/app/labor_clue/internal/data"
	"github.com/iWorld-y/labor_clue/app/labor_clue/internal/domain"
	"github.com/iWorld-y/labor_clue/app/labor_clue/internal/usecase"
	"github.com/iWorld-y/labor_clue/app/labor_clue/pkg/engine"
	"github.com/iWorld-y/labor_clue/app/labor_clue/pkg/region"
)

func xlsxBytes(t *testing.T, columns []string, rows [][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))
	for i := range rows {
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", axis, &rows[i]))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func hotlineFile(t *testing.T) []byte {
	return xlsxBytes(t,
		[]string{"序号", "事件来源", "所属区域", "所涉领域", "所涉项目（企业）", "涉及人数", "涉及金额"},
		[][]interface{}{
			{1, "12345/市长热线", "宜都", "建筑", "江南花园", 5, 10000},
			{2, "12345/市长热线", "宜都", "建筑", "江南花园", 5, 10000},
		})
}

func warningFile(t *testing.T) []byte {
	return xlsxBytes(t,
		[]string{"项目名称", "区域", "预警类型", "预警原因"},
		[][]interface{}{{"滨江苑", "宜昌市-西陵区", "超期", "工资未按时发放"}})
}

type part struct {
	field, filename string
	content         []byte
}

func multipartBody(t *testing.T, parts ...part) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, p := range parts {
		fw, err := w.CreateFormFile(p.field, p.filename)
		require.NoError(t, err)
		_, err = fw.Write(p.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	eng, err := engine.NewEngine(region.DefaultTables())
	require.NoError(t, err)
	uc := usecase.NewReportUseCase(data.NewWorkbookRepo(log.DefaultLogger), eng, log.DefaultLogger)
	svc := NewClueService(&conf.Server{Http: &conf.HTTP{MaxUploadMb: 4}}, uc, log.DefaultLogger)

	srv := http.NewServer()
	srv.Route("/").POST("/process_files/", svc.ProcessFiles)
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, ts *httptest.Server, parts ...part) *nethttp.Response {
	t.Helper()
	body, contentType := multipartBody(t, parts...)
	resp, err := nethttp.Post(ts.URL+"/process_files/", contentType, body)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestProcessFiles(t *testing.T) {
	ts := newTestServer(t)
	resp := post(t, ts,
		part{FieldHotline, "12345.xlsx", hotlineFile(t)},
		part{FieldWarning, "anxin.xlsx", warningFile(t)},
	)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Equal(t, contentTypeXLSX, resp.Header.Get("Content-Type"))
	assert.NotEmpty(t, resp.Header.Get(HeaderRunID))

	disposition := resp.Header.Get("Content-Disposition")
	require.True(t, strings.HasPrefix(disposition, "attachment; filename="))
	filename, err := url.PathUnescape(strings.TrimPrefix(disposition, "attachment; filename="))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(filename, domain.OutputSuffix))
	assert.Len(t, strings.TrimSuffix(filename, domain.OutputSuffix), 8)

	raw := resp.Header.Get(HeaderDashboard)
	for _, r := range raw {
		require.Less(t, r, rune(128))
	}
	var dashboard map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &dashboard))
	assert.Equal(t, float64(1), dashboard["warning_case_total"])
	assert.Equal(t, float64(2), dashboard["jianshe_project_count"])
	assert.Contains(t, dashboard["basic_info"], "建设领域")

	content, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{domain.SummarySheet, domain.StatisticsSheet}, f.GetSheetList())
	summary, err := f.GetRows(domain.SummarySheet)
	require.NoError(t, err)
	assert.Len(t, summary, 4)

	stats, err := f.GetRows(domain.StatisticsSheet)
	require.NoError(t, err)
	require.Len(t, stats, 29)
	assert.Equal(t, "宜都市", stats[1][1])
	assert.Contains(t, stats[1][7], "5人10000元")
}

func TestProcessFiles_InvalidExtension(t *testing.T) {
	ts := newTestServer(t)
	resp := post(t, ts,
		part{FieldHotline, "12345.csv", []byte("a,b")},
		part{FieldWarning, "anxin.xlsx", warningFile(t)},
	)
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), usecase.ReasonInvalidFile)
}

func TestProcessFiles_MissingFile(t *testing.T) {
	ts := newTestServer(t)
	resp := post(t, ts, part{FieldHotline, "12345.xlsx", hotlineFile(t)})
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
}

func TestProcessFiles_CorruptWorkbook(t *testing.T) {
	ts := newTestServer(t)
	resp := post(t, ts,
		part{FieldHotline, "12345.xlsx", []byte("not a workbook")},
		part{FieldWarning, "anxin.xlsx", warningFile(t)},
	)
	assert.Equal(t, nethttp.StatusInternalServerError, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), usecase.ReasonReadFailed)
}

func TestASCIIJSON(t *testing.T) {
	s, err := ASCIIJSON(map[string]string{"a": "宜昌", "b": "😀"})
	require.NoError(t, err)
	assert.Equal(t, `{"a":"\u5b9c\u660c","b":"\ud83d\ude00"}`, s)

	var back map[string]string
	require.NoError(t, json.Unmarshal([]byte(s), &back))
	assert.Equal(t, "宜昌", back["a"])
	assert.Equal(t, "😀", back["b"])
}

func TestASCIIJSON_KeepsHTMLCharacters(t *testing.T) {
	s, err := ASCIIJSON(map[string]string{"project_name": "A&B<1>"})
	require.NoError(t, err)
	assert.Equal(t, `{"project_name":"A&B<1>"}`, s)
}
