// Package report はレポート生成機能を提供します
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"CodeDigest/internal/domain/model"
	"CodeDigest/internal/infrastructure/logging"
)

const (
	fileHeaderPrefix = "# File path: "
	structureHeader  = "# Directory structure"
	fence            = "```"
)

// Option は Generator の挙動を変更します
type Option func(*Generator)

// WithStructure はファイル内容の前にフォルダ・ファイル構成を出力します
func WithStructure(enabled bool) Option {
	return func(g *Generator) {
		g.structure = enabled
	}
}

// SkipNotifier はバイナリとして読み飛ばしたファイルを利用者に知らせます
type SkipNotifier interface {
	Skipped(path string)
}

// WithSkipNotifier はスキップの通知先を設定します。
// 設定した場合、通知はログレベルに関係なく1ファイルにつき1回だけ行われ、ロガーには出力しません
func WithSkipNotifier(n SkipNotifier) Option {
	return func(g *Generator) {
		g.notifier = n
	}
}

// Generator はレポート生成機能を提供します
type Generator struct {
	logger    logging.Logger
	notifier  SkipNotifier
	structure bool
}

// NewGenerator は新しい Generator インスタンスを作成します
func NewGenerator(logger logging.Logger, opts ...Option) *Generator {
	g := &Generator{logger: logger}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// CreateOutputFile は出力ファイルを作成します。既存のファイルは切り詰められます
func (g *Generator) CreateOutputFile(outputPath string) (*os.File, error) {
	outputFile, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("出力ファイルの作成に失敗しました: %w", err)
	}
	return outputFile, nil
}

// Generate は出力ファイルを作成し、エントリの内容を順に書き出します。
// 途中でエラーが発生した場合、書きかけのファイルはそのまま残ります
func (g *Generator) Generate(outputPath, rootDir string, entries []model.FileSystemEntry) (model.Summary, error) {
	outputFile, err := g.CreateOutputFile(outputPath)
	if err != nil {
		return model.Summary{}, err
	}
	defer outputFile.Close()

	writer := bufio.NewWriter(outputFile)

	if g.structure {
		if err := g.WriteFileSystemStructure(writer, entries); err != nil {
			return model.Summary{}, err
		}
	}

	summary, err := g.WriteFileContents(writer, rootDir, entries)
	if err != nil {
		return summary, err
	}

	if err := writer.Flush(); err != nil {
		return summary, fmt.Errorf("出力ファイルへの書き込みに失敗しました: %w", err)
	}
	if err := outputFile.Close(); err != nil {
		return summary, fmt.Errorf("出力ファイルのクローズに失敗しました: %w", err)
	}

	summary.OutputPath = outputPath
	return summary, nil
}

// WriteFileSystemStructure はエントリの深さに応じたインデントを付与し,
// フォルダ（[DIR]）とファイル（[FILE]）を一覧で出力します。
func (g *Generator) WriteFileSystemStructure(writer io.Writer, entries []model.FileSystemEntry) error {
	var b strings.Builder
	b.WriteString(structureHeader + "\n")
	b.WriteString(fence + DefaultLanguage + "\n")

	seen := make(map[string]struct{})
	for _, entry := range entries {
		parts := strings.Split(entry.RelPath, string(os.PathSeparator))
		for depth := 1; depth < len(parts); depth++ {
			dir := filepath.Join(parts[:depth]...)
			if _, ok := seen[dir]; ok {
				continue
			}
			seen[dir] = struct{}{}
			fmt.Fprintf(&b, "%s[DIR]  %s\n", strings.Repeat("  ", depth-1), dir)
		}
		fmt.Fprintf(&b, "%s[FILE] %s\n", strings.Repeat("  ", entry.Depth), entry.RelPath)
	}

	b.WriteString(fence + "\n\n")

	if _, err := io.WriteString(writer, b.String()); err != nil {
		return fmt.Errorf("フォルダ構成の書き込みに失敗しました: %w", err)
	}
	return nil
}

// WriteFileContents はファイルの内容をセクションとして順に出力します。
// ファイルの読み込みに失敗した場合は処理を中断してエラーを返します
func (g *Generator) WriteFileContents(writer io.Writer, rootDir string, entries []model.FileSystemEntry) (model.Summary, error) {
	summary := model.Summary{Included: len(entries)}

	for _, entry := range entries {
		content, err := os.ReadFile(entry.Path)
		if err != nil {
			return summary, fmt.Errorf("ファイル '%s' の読み込みに失敗しました: %w", entry.Path, err)
		}

		if IsLikelyBinary(content) {
			g.skipped(entry.Path)
			summary.SkippedBinary++
			continue
		}

		section := model.Section{
			RelPath:  displayPath(rootDir, entry.Path),
			Language: LanguageFor(entry.Path),
			Content:  DecodeText(content),
		}
		if err := writeSection(writer, section); err != nil {
			return summary, fmt.Errorf("出力ファイルへの書き込みに失敗しました: %w", err)
		}

		summary.Rendered++
		summary.Bytes += int64(len(content))
	}

	g.logger.Log("INFO", fmt.Sprintf("%d 件のファイルを書き出しました（バイナリ %d 件をスキップ）", summary.Rendered, summary.SkippedBinary), nil)
	return summary, nil
}

func (g *Generator) skipped(path string) {
	if g.notifier != nil {
		g.notifier.Skipped(path)
		return
	}
	g.logger.Log("WARN", fmt.Sprintf("バイナリファイルのためスキップ: %s", path), nil)
}

// writeSection は1ファイル分の見出しとコードブロックを出力します
func writeSection(writer io.Writer, section model.Section) error {
	if _, err := fmt.Fprintf(writer, "%s%s\n%s%s\n", fileHeaderPrefix, section.RelPath, fence, section.Language); err != nil {
		return err
	}
	if _, err := io.WriteString(writer, section.Content); err != nil {
		return err
	}
	_, err := io.WriteString(writer, "\n"+fence+"\n\n")
	return err
}

// displayPath はルートディレクトリからの相対パスを返します。
// 相対パスを求められない場合は元のパスをそのまま返します
func displayPath(rootDir, path string) string {
	rel, err := filepath.Rel(rootDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}
