package report

import (
	"bytes"

	"golang.org/x/text/encoding/unicode"
)

// IsLikelyBinary はバイト列にNULL(0x00)が含まれる場合にバイナリとみなします
func IsLikelyBinary(content []byte) bool {
	return bytes.IndexByte(content, 0x00) >= 0
}

// DecodeText はバイト列をUTF-8として解釈し、不正なバイト列を U+FFFD に置き換えます。
// 置き換えは不正なシーケンスの最大部分ごとに1文字で、正しいシーケンスはそのまま残ります
func DecodeText(content []byte) string {
	decoded, err := unicode.UTF8.NewDecoder().Bytes(content)
	if err != nil {
		return string(bytes.ToValidUTF8(content, []byte("�")))
	}
	return string(decoded)
}
