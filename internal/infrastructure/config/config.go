// Package config は実行時設定の読み込み機能を提供します
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// 設定を上書きする環境変数
const (
	EnvConfig    = "CODEDIGEST_CONFIG"
	EnvLogLevel  = "CODEDIGEST_LOG_LEVEL"
	EnvLogFormat = "CODEDIGEST_LOG_FORMAT"
)

// DefaultOutputFile は出力先が指定されなかった場合のファイル名です
const DefaultOutputFile = "all_files.md"

// Config は設定ファイルのスキーマです
type Config struct {
	// Output は出力先ファイルのパスです
	Output string `yaml:"output"`
	// LogLevel は出力するログの最小レベルです
	LogLevel string `yaml:"log_level"`
	// LogFormat はログの出力形式です（text または json）
	LogFormat string `yaml:"log_format"`
	// Tree はファイル内容の前にフォルダ構成を出力するかどうかです
	Tree bool `yaml:"tree"`
	// NoColor はコンソール出力の色付けを無効にします
	NoColor bool `yaml:"no_color"`
	// Source は読み込んだ設定ファイルのパスです
	Source string `yaml:"-"`
}

// Default は既定の設定を返します
func Default() Config {
	return Config{
		Output:    DefaultOutputFile,
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// Load は設定ファイルを読み込み、環境変数で上書きした設定を返します。
// path が空の場合は CODEDIGEST_CONFIG を参照し、それも空なら既定値のみを使います。
// 値の検証は行いません。フラグで上書きしたあとに Validate を呼び出してください
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = strings.TrimSpace(os.Getenv(EnvConfig))
	}

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("設定ファイルの読み込みに失敗しました: %w", err)
		}
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return cfg, fmt.Errorf("設定ファイルの解析に失敗しました: %s: %w", path, err)
		}
		cfg.Source = path
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if env := strings.TrimSpace(os.Getenv(EnvLogLevel)); env != "" {
		cfg.LogLevel = env
	}
	if env := strings.TrimSpace(os.Getenv(EnvLogFormat)); env != "" {
		cfg.LogFormat = env
	}
}

// Validate は設定値が解釈可能かどうかを確認します
func (c Config) Validate() error {
	if strings.TrimSpace(c.Output) == "" {
		return errors.New("出力先ファイルが空です")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("不明なログレベルです: %q", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("不明なログ形式です: %q", c.LogFormat)
	}
	return nil
}
