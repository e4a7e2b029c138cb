package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileSystemEntry(t *testing.T) {
	tests := []struct {
		name      string
		entry     FileSystemEntry
		wantPath  string
		wantDepth int
	}{
		{
			name: "ルート直下のファイル",
			entry: FileSystemEntry{
				Path:    "/test/file.txt",
				RelPath: "file.txt",
				Depth:   0,
			},
			wantPath:  "/test/file.txt",
			wantDepth: 0,
		},
		{
			name: "ネストしたファイル",
			entry: FileSystemEntry{
				Path:    "/test/src/lib/mod.rs",
				RelPath: "src/lib/mod.rs",
				Depth:   2,
			},
			wantPath:  "/test/src/lib/mod.rs",
			wantDepth: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantPath, tt.entry.Path)
			assert.Equal(t, tt.wantDepth, tt.entry.Depth)
		})
	}
}

func TestSummary_Skipped(t *testing.T) {
	s := Summary{Included: 5, Rendered: 3, SkippedBinary: 2}
	assert.Equal(t, 2, s.Skipped())

	assert.Zero(t, Summary{}.Skipped())
}
