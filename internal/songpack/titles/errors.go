package titles

import "errors"

var (
	// ErrUnknownParser はタイトルパーサー名が不明な場合のエラー
	ErrUnknownParser = errors.New("不明なタイトルパーサーです")

	// ErrUnknownEncoding はタイトルの文字コード指定が不明な場合のエラー
	ErrUnknownEncoding = errors.New("不明なタイトル文字コードです")
)
