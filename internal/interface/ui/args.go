// Package ui はユーザーインターフェース機能を提供します
package ui

import (
	"errors"
	"fmt"

	"CodeDigest/internal/infrastructure/filesystem"
)

// ErrUsage はコマンドの使い方が誤っていることを表します
var ErrUsage = errors.New("使い方が正しくありません")

// DirectoryPaths は調査対象ディレクトリと出力先ファイルのパスを保持します
type DirectoryPaths struct {
	Source string // 調査対象フォルダ
	Output string // 出力先ファイル
}

// ArgumentResolver はコマンドライン引数から対象パスを決定します
type ArgumentResolver struct {
	// validator はディレクトリパスの検証を行うインターフェースです
	validator filesystem.DirectoryValidator
}

// NewArgumentResolver は新しい ArgumentResolver インスタンスを作成します
func NewArgumentResolver(validator filesystem.DirectoryValidator) *ArgumentResolver {
	return &ArgumentResolver{validator: validator}
}

// Resolve は引数 "<ディレクトリ> [出力ファイル]" を解釈します。
// 出力ファイルが省略された場合は defaultOutput を使います
func (r *ArgumentResolver) Resolve(args []string, defaultOutput string) (*DirectoryPaths, error) {
	if len(args) < 1 || len(args) > 2 {
		return nil, fmt.Errorf("%w: 引数は <ディレクトリパス> [出力ファイルパス] です", ErrUsage)
	}

	paths := &DirectoryPaths{Source: args[0], Output: defaultOutput}
	if len(args) == 2 && args[1] != "" {
		paths.Output = args[1]
	}

	if err := r.validator.ValidateDirectoryPath(paths.Source); err != nil {
		return nil, fmt.Errorf("%w: 無効なディレクトリが指定されました: %w", ErrUsage, err)
	}

	return paths, nil
}
