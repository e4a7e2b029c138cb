package filesystem

import (
	"os"
	"path/filepath"
	"strings"
)

// ignoredDirNames は走査対象から除外するディレクトリ名です（完全一致）
var ignoredDirNames = map[string]struct{}{
	"node_modules": {},
	"target":       {},
	"dist":         {},
	"build":        {},
}

// ignoredFileNames は走査対象から除外するファイル名です（完全一致）
var ignoredFileNames = map[string]struct{}{
	"package-lock.json": {},
	"pnpm-lock.yaml":    {},
	"yarn.lock":         {},
	"Cargo.lock":        {},
}

// Classifier はパスを除外すべきかどうかを判定します
type Classifier struct {
	root       string
	outputPath string
}

// NewClassifier は新しい Classifier インスタンスを作成します。
// outputPath は ResolveOutputPath で解決済みのパスを渡します
func NewClassifier(root, outputPath string) *Classifier {
	return &Classifier{root: root, outputPath: outputPath}
}

// IsOutput はパスが出力ドキュメント自身を指しているかどうかを判定します。
// パスの正規化に失敗した場合は一致しないものとして扱います
func (c *Classifier) IsOutput(path string) bool {
	if c.outputPath == "" {
		return false
	}
	canon, err := canonicalize(path)
	if err != nil {
		return false
	}
	return canon == c.outputPath
}

// IsHidden はルートからの相対パスのいずれかの要素が "." で始まるかどうかを判定します
func (c *Classifier) IsHidden(path string) bool {
	for _, name := range c.components(path) {
		if strings.HasPrefix(name, ".") {
			return true
		}
	}
	return false
}

// IsIgnoredDir はルートからの相対パスに除外ディレクトリ名が含まれるかどうかを判定します
func (c *Classifier) IsIgnoredDir(path string) bool {
	for _, name := range c.components(path) {
		if _, ok := ignoredDirNames[name]; ok {
			return true
		}
	}
	return false
}

// IsIgnoredFile はファイル名が除外ファイル名と一致するかどうかを判定します
func (c *Classifier) IsIgnoredFile(path string) bool {
	_, ok := ignoredFileNames[filepath.Base(path)]
	return ok
}

// ShouldExclude はパスを出力対象から除外すべきかどうかを判定します
func (c *Classifier) ShouldExclude(path string) bool {
	return c.IsOutput(path) ||
		c.IsHidden(path) ||
		c.IsIgnoredDir(path) ||
		c.IsIgnoredFile(path)
}

// PruneDir はディレクトリ配下をまとめて走査対象外にできるかどうかを判定します
func (c *Classifier) PruneDir(path string) bool {
	return c.IsHidden(path) || c.IsIgnoredDir(path)
}

// components はルートからの相対パスを要素に分割します。
// ルート自身、およびルート配下にないパスは要素を持ちません
func (c *Classifier) components(path string) []string {
	rel, err := filepath.Rel(c.root, path)
	if err != nil || rel == "." {
		return nil
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil
	}
	return strings.Split(rel, string(filepath.Separator))
}

// ResolveOutputPath は出力先パスを絶対パスに解決します。
// ファイルがまだ存在しない場合は親ディレクトリを解決してファイル名を付け直します
func ResolveOutputPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if canon, err := filepath.EvalSymlinks(abs); err == nil {
		return canon, nil
	}
	if dir, err := filepath.EvalSymlinks(filepath.Dir(abs)); err == nil {
		return filepath.Join(dir, filepath.Base(abs)), nil
	}
	return abs, nil
}

// canonicalize は既存のパスを絶対パスかつシンボリックリンク解決済みの形に変換します
func canonicalize(path string) (string, error) {
	if _, err := os.Lstat(path); err != nil {
		return "", err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
