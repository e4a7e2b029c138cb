// Package filesystem はファイルシステム操作を提供します
package filesystem

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"CodeDigest/internal/domain/model"
	"CodeDigest/internal/infrastructure/logging"
)

// ErrNotDirectory は指定されたパスがディレクトリではないことを表します
var ErrNotDirectory = errors.New("指定されたパスはディレクトリではありません")

// DirectoryValidator はディレクトリの検証機能を提供するインターフェースです
type DirectoryValidator interface {
	ValidateDirectoryPath(path string) error
}

// FileSystemScanner はファイルシステムのスキャン機能を提供するインターフェースです
type FileSystemScanner interface {
	DirectoryValidator
	Scan(rootDir, outputPath string) []model.FileSystemEntry
}

// Scanner はファイルシステムをスキャンするための構造体です
type Scanner struct {
	logger logging.Logger
}

var _ FileSystemScanner = (*Scanner)(nil)

// NewScanner は新しい Scanner インスタンスを作成します
func NewScanner(logger logging.Logger) *Scanner {
	return &Scanner{logger: logger}
}

// ValidateDirectoryPath はパスが有効なディレクトリであることを確認します
func (s *Scanner) ValidateDirectoryPath(path string) error {
	if path == "" {
		return fmt.Errorf("ディレクトリパスが指定されていません")
	}

	fileInfo, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("ディレクトリが存在しません: %w", err)
	}

	if !fileInfo.IsDir() {
		return fmt.Errorf("%s: %w", path, ErrNotDirectory)
	}

	return nil
}

// Scan はルートディレクトリ配下を走査し、出力対象のファイルをパス順に収集します。
// 走査中のエラーはエントリ単位で読み飛ばし、走査全体を失敗させません
func (s *Scanner) Scan(rootDir, outputPath string) []model.FileSystemEntry {
	classifier := NewClassifier(rootDir, outputPath)

	var entries []model.FileSystemEntry
	visited := make(map[string]struct{})
	stack := []string{rootDir}

	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !s.markVisited(visited, dir) {
			continue
		}

		children, err := os.ReadDir(dir)
		if err != nil {
			s.logger.Log("DEBUG", fmt.Sprintf("ディレクトリ '%s' の読み込みに失敗", dir), err)
			continue
		}

		for _, child := range children {
			path := filepath.Join(dir, child.Name())

			isDir, isFile := s.classify(path, child)
			switch {
			case isDir:
				if classifier.PruneDir(path) {
					continue
				}
				stack = append(stack, path)
			case isFile:
				if classifier.ShouldExclude(path) {
					continue
				}
				entries = append(entries, newEntry(rootDir, path))
			}
		}
	}

	slices.SortFunc(entries, func(a, b model.FileSystemEntry) int {
		return strings.Compare(a.Path, b.Path)
	})

	s.logger.Log("INFO", fmt.Sprintf("走査が完了しました: %d 件のファイル", len(entries)), nil)
	return entries
}

// classify はエントリがたどるべきディレクトリか、収集すべき通常ファイルかを判定します。
// シンボリックリンクはリンク先が通常ファイルの場合のみファイルとして扱い、
// ディレクトリへのリンクはたどりません
func (s *Scanner) classify(path string, d os.DirEntry) (isDir, isFile bool) {
	mode := d.Type()
	switch {
	case mode.IsDir():
		return true, false
	case mode.IsRegular():
		return false, true
	case mode&os.ModeSymlink != 0:
		info, err := os.Stat(path)
		if err != nil {
			s.logger.Log("DEBUG", fmt.Sprintf("リンク先を解決できません: %s", path), err)
			return false, false
		}
		return false, info.Mode().IsRegular()
	default:
		return false, false
	}
}

// markVisited はディレクトリを実体パスで記録し、初回の訪問であれば true を返します
func (s *Scanner) markVisited(visited map[string]struct{}, dir string) bool {
	key, err := filepath.EvalSymlinks(dir)
	if err != nil {
		key = dir
	}
	if _, ok := visited[key]; ok {
		return false
	}
	visited[key] = struct{}{}
	return true
}

func newEntry(rootDir, path string) model.FileSystemEntry {
	relPath, err := filepath.Rel(rootDir, path)
	if err != nil {
		relPath = path
	}
	return model.FileSystemEntry{
		Path:    path,
		RelPath: relPath,
		Depth:   strings.Count(relPath, string(os.PathSeparator)),
	}
}
