package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"CodeDigest/internal/domain/model"
)

// Console は利用者向けのメッセージを出力します
type Console struct {
	out     io.Writer
	success *color.Color
	detail  *color.Color
}

// NewConsole は新しい Console インスタンスを作成します。
// 出力先が端末でない場合、または noColor が true の場合は色付けしません
func NewConsole(out io.Writer, noColor bool) *Console {
	c := &Console{
		out:     out,
		success: color.New(color.FgGreen, color.Bold),
		detail:  color.New(color.Faint),
	}
	if noColor || !IsTerminal(out) {
		c.success.DisableColor()
		c.detail.DisableColor()
	} else {
		c.success.EnableColor()
		c.detail.EnableColor()
	}
	return c
}

// Completed は出力先を示す完了メッセージを表示します
func (c *Console) Completed(summary model.Summary) {
	c.success.Fprintf(c.out, "すべてのファイルを書き出しました: %s\n", summary.OutputPath)
	if summary.SkippedBinary > 0 {
		c.detail.Fprintf(c.out, "  %d 件のファイル（バイナリ %d 件をスキップ）\n", summary.Rendered, summary.SkippedBinary)
	}
}

// Skipped はバイナリファイルを読み飛ばしたことを1行で表示します
func (c *Console) Skipped(path string) {
	fmt.Fprintf(c.out, "バイナリファイルのためスキップ: %s\n", path)
}

// Errorf はエラーメッセージを表示します
func (c *Console) Errorf(format string, args ...any) {
	fmt.Fprintf(c.out, "Error: "+format+"\n", args...)
}

// IsTerminal は出力先が端末かどうかを判定します
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
