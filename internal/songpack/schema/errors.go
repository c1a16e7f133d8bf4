package schema

import "errors"

var (
	// ErrInvalidField はフィールド定義の形式が不正な場合のエラー
	ErrInvalidField = errors.New("フィールド定義の形式が不正です")

	// ErrInvalidSchema はスキーマの値が不正な場合のエラー
	ErrInvalidSchema = errors.New("スキーマが不正です")

	// ErrNoSchema は入力ファイルに対応するスキーマがない場合のエラー
	ErrNoSchema = errors.New("入力ファイルに対応するスキーマがありません")

	// ErrParseDocument はスキーマ文書の解析に失敗した場合のエラー
	ErrParseDocument = errors.New("スキーマ文書の解析に失敗しました")

	// ErrReadDocument はスキーマ文書の読み込みに失敗した場合のエラー
	ErrReadDocument = errors.New("スキーマ文書の読み込みに失敗しました")

	// ErrFetchDocument はリモートのスキーマ文書の取得に失敗した場合のエラー
	ErrFetchDocument = errors.New("スキーマ文書の取得に失敗しました")

	// ErrUnknownFieldType は未知のフィールド型が指定された場合の警告
	ErrUnknownFieldType = errors.New("未知のフィールド型です。生のバイト列として読み込みます")
)
