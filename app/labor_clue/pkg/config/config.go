package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iWorld-y/labor_clue/app/labor_clue/pkg/region"
)

// Config 命令行工具配置
type Config struct {
	Log       LogConfig     `yaml:"log"`
	OutputDir string        `yaml:"output_dir"`
	Region    region.Tables `yaml:"region"`
}

// LogConfig 日志相关配置
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default 未提供配置文件时的默认值
func Default() *Config {
	return &Config{
		Log:       LogConfig{Level: "info"},
		OutputDir: ".",
		Region:    region.DefaultTables(),
	}
}

// LoadConfig 从指定路径加载配置，path 为空时只使用默认值。
// 随后应用环境变量覆盖并校验区域配置。
func LoadConfig(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		merge(cfg, &fileCfg)
	}

	envOverride(&cfg.Log.Level, "LABOR_CLUE_LOG_LEVEL")
	envOverride(&cfg.Log.File, "LABOR_CLUE_LOG_FILE")
	envOverride(&cfg.OutputDir, "LABOR_CLUE_OUTPUT_DIR")

	if err := cfg.Region.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func merge(dst, src *Config) {
	if src.Log.Level != "" {
		dst.Log.Level = src.Log.Level
	}
	if src.Log.File != "" {
		dst.Log.File = src.Log.File
	}
	if src.OutputDir != "" {
		dst.OutputDir = src.OutputDir
	}
	// 区域配置整体替换，不逐项合并
	if !src.Region.IsZero() {
		dst.Region = src.Region
	}
}

func envOverride(field *string, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = val
	}
}
