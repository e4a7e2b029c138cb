// Package logging はロギング機能を提供します
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ログ出力形式
const (
	FormatText = "text"
	FormatJSON = "json"
)

// LogEntry はJSON形式で出力されるログエントリの構造を表します
type LogEntry struct {
	// Timestamp はログが記録された時刻をRFC3339形式で表します
	Timestamp string `json:"timestamp"`
	// Level はログレベル（info, warning, error等）を表します
	Level string `json:"level"`
	// Message はログメッセージの内容を表します
	Message string `json:"message"`
	// Error はエラーが発生した場合のエラーメッセージを表します
	Error string `json:"error,omitempty"`
	// RunID は1回の実行を識別するIDです
	RunID string `json:"run_id"`
}

// Logger は構造化ログを出力するためのインターフェースです
type Logger interface {
	Log(level, message string, err error)
}

// Options はロガーの構成を表します
type Options struct {
	// Level は出力する最小のログレベルです（debug, info, warn, error）
	Level string
	// Format は出力形式です（text または json）
	Format string
	// RunID はすべてのログに付与する実行IDです。空の場合は生成されます
	RunID string
}

// LogrusLogger は logrus を使用して構造化ログを出力するロガーです
type LogrusLogger struct {
	entry *logrus.Entry
}

// New は指定された構成で新しい LogrusLogger インスタンスを作成します
func New(writer io.Writer, opts Options) (*LogrusLogger, error) {
	if writer == nil {
		writer = os.Stderr
	}

	level := logrus.WarnLevel
	if opts.Level != "" {
		parsed, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	l := logrus.New()
	l.SetOutput(writer)
	l.SetLevel(level)
	l.SetFormatter(newFormatter(opts.Format))

	runID := opts.RunID
	if runID == "" {
		runID = uuid.NewString()
	}
	return &LogrusLogger{entry: logrus.NewEntry(l).WithField("run_id", runID)}, nil
}

// NewJSONLogger は全レベルをJSONフォーマットで出力するロガーを作成します
func NewJSONLogger(writer io.Writer) *LogrusLogger {
	l, _ := New(writer, Options{Level: "debug", Format: FormatJSON})
	return l
}

func newFormatter(format string) logrus.Formatter {
	if strings.EqualFold(format, FormatJSON) {
		return &logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "timestamp",
				logrus.FieldKeyMsg:  "message",
			},
		}
	}
	return &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		DisableColors:   true,
	}
}

// Log はメッセージを指定されたレベルでログ出力します
func (l *LogrusLogger) Log(level, message string, err error) {
	entry := l.entry
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Log(toLevel(level), message)
}

// toLevel は "INFO" や "WARN" のようなレベル名を logrus のレベルに変換します。
// 解釈できない場合は info として扱います
func toLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}
