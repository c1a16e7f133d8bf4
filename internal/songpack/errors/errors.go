// Package errors はデコード処理で共通に使うエラー型を提供します
package errors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrMalformedField はプリミティブ読み込み時にバイト列の長さが一致しない場合のエラー
	ErrMalformedField = errors.New("フィールドのバイト長が不正です")

	// ErrTruncatedRecord はフィールドがレコード境界を越える場合のエラー
	ErrTruncatedRecord = errors.New("レコードが途中で切れています")

	// ErrUnknownScale は難易度スケールの設定値が不明な場合のエラー
	ErrUnknownScale = errors.New("不明な難易度スケールです")

	// ErrNonExactBlockRange はブロック範囲がブロックサイズの倍数でない場合の警告
	ErrNonExactBlockRange = errors.New("ブロック範囲がブロックサイズの倍数ではありません")
)

// FieldError はフィールド単位のデコードエラー
type FieldError struct {
	Kind  error  // ErrMalformedField または ErrTruncatedRecord
	Field string // フィールド名（プリミティブ読み込みでは空）
	Want  int    // 期待したバイト数
	Got   int    // 実際に利用できたバイト数
}

// Error はエラーメッセージを返します
func (e *FieldError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%v: '%s' (期待 %d バイト, 実際 %d バイト)", e.Kind, e.Field, e.Want, e.Got)
	}
	return fmt.Sprintf("%v (期待 %d バイト, 実際 %d バイト)", e.Kind, e.Want, e.Got)
}

// Unwrap は元のエラーを返します
func (e *FieldError) Unwrap() error {
	return e.Kind
}

// NewFieldError は新しいFieldErrorを作成します
func NewFieldError(kind error, field string, want, got int) *FieldError {
	return &FieldError{
		Kind:  kind,
		Field: field,
		Want:  want,
		Got:   got,
	}
}

// RecordError はバッチ読み込み中のレコード単位のエラー
type RecordError struct {
	Index  int   // 失敗したレコードの番号（0始まり）
	Offset int   // 失敗したレコードのファイル内オフセット
	Err    error // 元のエラー
}

// Error はエラーメッセージを返します
func (e *RecordError) Error() string {
	return fmt.Sprintf("レコード %d (0x%X) の読み込みに失敗しました: %v", e.Index, e.Offset, e.Err)
}

// Unwrap は元のエラーを返します
func (e *RecordError) Unwrap() error {
	return e.Err
}

// Decoded は失敗する前に読み込めたレコード数を返します
func (e *RecordError) Decoded() int {
	return e.Index
}
