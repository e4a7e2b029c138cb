package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockValidator struct {
	validateError error
	validated     []string
}

func (m *mockValidator) ValidateDirectoryPath(path string) error {
	m.validated = append(m.validated, path)
	return m.validateError
}

func TestArgumentResolver_Resolve(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		validateError error
		want          *DirectoryPaths
		wantErr       bool
	}{
		{
			name: "ディレクトリのみ",
			args: []string{"src"},
			want: &DirectoryPaths{Source: "src", Output: "all_files.md"},
		},
		{
			name: "出力先を指定",
			args: []string{"src", "out/digest.md"},
			want: &DirectoryPaths{Source: "src", Output: "out/digest.md"},
		},
		{
			name: "空の出力先は既定値",
			args: []string{"src", ""},
			want: &DirectoryPaths{Source: "src", Output: "all_files.md"},
		},
		{
			name:    "引数なし",
			args:    nil,
			wantErr: true,
		},
		{
			name:    "引数が多すぎる",
			args:    []string{"a", "b", "c"},
			wantErr: true,
		},
		{
			name:          "バリデーションエラー",
			args:          []string{"missing"},
			validateError: errors.New("無効なディレクトリ"),
			wantErr:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := NewArgumentResolver(&mockValidator{validateError: tt.validateError})

			got, err := resolver.Resolve(tt.args, "all_files.md")
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUsage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestArgumentResolver_ValidatesSource(t *testing.T) {
	validator := &mockValidator{}
	_, err := NewArgumentResolver(validator).Resolve([]string{"root", "out.md"}, "all_files.md")
	require.NoError(t, err)
	assert.Equal(t, []string{"root"}, validator.validated)
}

func TestArgumentResolver_WrapsValidatorError(t *testing.T) {
	cause := errors.New("ディレクトリが存在しません")
	_, err := NewArgumentResolver(&mockValidator{validateError: cause}).Resolve([]string{"x"}, "all_files.md")
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrUsage)
}
