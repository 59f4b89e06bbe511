package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeXLSX(t *testing.T, path string, rows [][]interface{}) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i := range rows {
		axis, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", axis, &rows[i]))
	}
	require.NoError(t, f.SaveAs(path))
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestBuild(t *testing.T) {
	dir := t.TempDir()
	hotline := filepath.Join(dir, "12345.xlsx")
	warning := filepath.Join(dir, "anxin.xlsx")
	writeXLSX(t, hotline, [][]interface{}{
		{"序号", "事件来源", "所属区域", "所涉领域", "所涉项目（企业）", "涉及人数", "涉及金额"},
		{1, "12345/市长热线", "宜都", "建筑", "江南花园", 5, 10000},
	})
	writeXLSX(t, warning, [][]interface{}{
		{"项目名称", "区域", "预警类型"},
		{"滨江苑", "宜昌市-西陵区", "超期"},
	})
	outDir := filepath.Join(dir, "out")

	out, err := execute(t, "build", "--hotline", hotline, "--warning", warning, "--date", "20250307", "--out", outDir)
	require.NoError(t, err)

	workbook := filepath.Join(outDir, "20250307劳动监察线索汇总和统计.xlsx")
	dashboard := filepath.Join(outDir, "20250307dashboard.json")
	assert.True(t, strings.Contains(out, workbook))
	assert.FileExists(t, workbook)

	raw, err := os.ReadFile(dashboard)
	require.NoError(t, err)
	var d map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &d))
	assert.Equal(t, "2025年03月07日", d["datetime"])
	assert.Equal(t, float64(1), d["warning_case_total"])
}

func TestBuild_Errors(t *testing.T) {
	_, err := execute(t, "build", "--hotline", "a.xlsx")
	assert.Error(t, err)

	dir := t.TempDir()
	_, err = execute(t, "build", "--hotline", filepath.Join(dir, "missing.xlsx"), "--warning", filepath.Join(dir, "missing.xls"))
	assert.Error(t, err)
}

func TestNormalize(t *testing.T) {
	out, err := execute(t, "normalize", "宜昌市-西陵区", "--kind", "warning")
	require.NoError(t, err)
	assert.Equal(t, "西陵区\n", out)

	out, err = execute(t, "normalize", "湖北省宜都市红花套镇")
	require.NoError(t, err)
	assert.Equal(t, "宜都市\n", out)

	_, err = execute(t, "normalize", "西陵", "--kind", "other")
	assert.Error(t, err)
}
