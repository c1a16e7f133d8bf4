package export

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/shamaton/msgpack/v2"
)

// Format は出力ファイルの形式です
type Format string

const (
	// FormatJSON はインデント付きのJSON（デフォルト）
	FormatJSON Format = "json"
	// FormatMsgpack はMessagePack
	FormatMsgpack Format = "msgpack"
)

// ParseFormat は出力形式の指定を解析します。空文字列はJSONです
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatMsgpack, "mpk":
		return FormatMsgpack, nil
	}
	return "", fmt.Errorf("%w: %q (json, msgpack のいずれかを指定してください)", ErrUnknownFormat, s)
}

// Ext はファイルの拡張子（ドットなし）を返します
func (f Format) Ext() string {
	return string(f)
}

// ContentType はアップロード時のContent-Typeを返します
func (f Format) ContentType() string {
	if f == FormatMsgpack {
		return "application/msgpack"
	}
	return "application/json; charset=utf-8"
}

// Encode は値を出力形式に変換します
// JSONは4スペースでインデントし、HTML用のエスケープや非ASCII文字のエスケープは行いません
func Encode(v any, f Format) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch f {
	case FormatJSON:
		data, err = sonic.ConfigDefault.MarshalIndent(v, "", "    ")
	case FormatMsgpack:
		data, err = msgpack.Marshal(v)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return data, nil
}
