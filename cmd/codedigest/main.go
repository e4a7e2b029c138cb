// Package main はアプリケーションのエントリーポイントを提供します
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"CodeDigest/internal/infrastructure/config"
	"CodeDigest/internal/infrastructure/filesystem"
	"CodeDigest/internal/infrastructure/logging"
	"CodeDigest/internal/interface/ui"
	"CodeDigest/internal/usecase/report"
)

// ビルド時に -ldflags "-X main.version=..." で設定されます
var version = "dev"

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute はコマンドを実行し、プロセスの終了コードを返します
func execute(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		ui.NewConsole(stderr, true).Errorf("%v", err)
		if errors.Is(err, ui.ErrUsage) {
			fmt.Fprint(stderr, cmd.UsageString())
		}
		return 1
	}
	return 0
}

// rootOptions はコマンドラインフラグの値を保持します
type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string
	tree       bool
	noColor    bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "codedigest <ディレクトリパス> [出力ファイルパス]",
		Short: "ディレクトリ配下のファイルを1つのMarkdownにまとめます",
		Long: `codedigest はディレクトリを再帰的に走査し、テキストファイルの内容を
パスごとの見出しとコードブロックを付けて1つのMarkdownドキュメントに書き出します。

隠しファイル・隠しディレクトリ、node_modules / target / dist / build 配下、
ロックファイル、NULLバイトを含むバイナリファイルは出力されません。
出力ファイルを省略した場合はカレントディレクトリの all_files.md に書き出します。`,
		Version: version,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.RangeArgs(1, 2)(cmd, args); err != nil {
				return fmt.Errorf("%w: %w", ui.ErrUsage, err)
			}
			return nil
		},
		// エラーと使い方の表示は execute でまとめて行う
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDigest(cmd, args, opts, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ui.ErrUsage, err)
	})

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "設定ファイル（YAML）のパス")
	flags.StringVar(&opts.logLevel, "log-level", "", "ログレベル: debug|info|warn|error（既定: warn、バイナリのスキップ通知は常に表示）")
	flags.StringVar(&opts.logFormat, "log-format", "", "ログ形式: text|json（既定: text）")
	flags.BoolVar(&opts.tree, "tree", false, "ファイル内容の前にフォルダ・ファイル構成を出力する")
	flags.BoolVar(&opts.noColor, "no-color", false, "完了メッセージを色付けしない")

	return cmd
}

// loadConfig は設定ファイルと環境変数を読み込み、指定されたフラグで上書きします
func loadConfig(cmd *cobra.Command, opts *rootOptions) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = opts.logFormat
	}
	if flags.Changed("tree") {
		cfg.Tree = opts.tree
	}
	if flags.Changed("no-color") {
		cfg.NoColor = opts.noColor
	}

	return cfg, cfg.Validate()
}

func runDigest(cmd *cobra.Command, args []string, opts *rootOptions, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	// ロガーの初期化
	logger, err := logging.New(stderr, logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return fmt.Errorf("ロガーの初期化に失敗しました: %w", err)
	}

	scanner := filesystem.NewScanner(logger)

	paths, err := ui.NewArgumentResolver(scanner).Resolve(args, cfg.Output)
	if err != nil {
		return err
	}
	logger.Log("INFO", fmt.Sprintf("調査対象: %s, 出力先: %s", paths.Source, paths.Output), nil)

	// 自分自身を読み込まないよう、走査の前に出力先を絶対パスに解決しておく
	outputAbs, err := filesystem.ResolveOutputPath(paths.Output)
	if err != nil {
		return fmt.Errorf("出力先パスの解決に失敗しました: %w", err)
	}

	entries := scanner.Scan(paths.Source, outputAbs)

	// スキップの通知はログレベルで抑止されないよう、ロガーとは別に stderr へ出す
	generator := report.NewGenerator(logger,
		report.WithStructure(cfg.Tree),
		report.WithSkipNotifier(ui.NewConsole(stderr, cfg.NoColor)),
	)
	summary, err := generator.Generate(paths.Output, paths.Source, entries)
	if err != nil {
		logger.Log("ERROR", "レポートの生成に失敗", err)
		return err
	}

	ui.NewConsole(stdout, cfg.NoColor).Completed(summary)
	return nil
}
