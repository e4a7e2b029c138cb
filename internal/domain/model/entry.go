// package model はドメインモデルを定義します
package model

// FileSystemEntry は出力対象として選ばれたファイルを表します
type FileSystemEntry struct {
	// Path はルートディレクトリを起点に発見したときのパスを表します
	Path string
	// RelPath はルートディレクトリからの相対パスを表します
	RelPath string
	// Depth はルートディレクトリからの深さを表します
	Depth int
}

// Section は出力ドキュメント内の1ファイル分のセクションを表します
type Section struct {
	// RelPath は見出しに表示する相対パスです
	RelPath string
	// Language はコードブロックに付与する言語ラベルです
	Language string
	// Content はデコード済みのファイル内容です
	Content string
}

// Summary はレポート生成の結果を表します
type Summary struct {
	// OutputPath は書き出したドキュメントのパスです
	OutputPath string
	// Included は走査で選ばれたファイル数です
	Included int
	// Rendered は実際にセクションとして書き出したファイル数です
	Rendered int
	// SkippedBinary はバイナリと判定してスキップしたファイル数です
	SkippedBinary int
	// Bytes は書き出したファイル内容の合計バイト数です
	Bytes int64
}

// Skipped はセクションとして書き出されなかったファイル数を返します
func (s Summary) Skipped() int {
	return s.Included - s.Rendered
}
