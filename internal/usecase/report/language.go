package report

import (
	"path/filepath"
	"strings"
)

// DefaultLanguage は拡張子から言語を判定できない場合のラベルです
const DefaultLanguage = "text"

// extToLanguage はファイル拡張子とコードブロックの言語ラベルの対応表です
var extToLanguage = map[string]string{
	".rs":   "rust",
	".js":   "javascript",
	".jsx":  "javascript",
	".ts":   "typescript",
	".tsx":  "typescript",
	".py":   "python",
	".java": "java",
	".cpp":  "cpp",
	".cc":   "cpp",
	".cxx":  "cpp",
	".hpp":  "cpp",
	".c":    "c",
	".h":    "c",
	".go":   "go",
	".rb":   "ruby",
	".php":  "php",
	".sh":   "bash",
	".sql":  "sql",
	".md":   "markdown",
	".html": "html",
	".css":  "css",
	".json": "json",
	".toml": "toml",
	".yaml": "yaml",
	".yml":  "yaml",
}

// LanguageFor はファイルパスの拡張子からコードブロックの言語ラベルを返します
func LanguageFor(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if lang, ok := extToLanguage[ext]; ok {
		return lang
	}
	return DefaultLanguage
}
