package export

import "errors"

var (
	// ErrUnknownFormat は出力形式が不明な場合のエラー
	ErrUnknownFormat = errors.New("不明な出力形式です")

	// ErrEncode はレコードの変換に失敗した場合のエラー
	ErrEncode = errors.New("出力データの変換に失敗しました")

	// ErrCreateDirectory は出力先ディレクトリの作成に失敗した場合のエラー
	ErrCreateDirectory = errors.New("出力先ディレクトリの作成に失敗しました")

	// ErrWriteFile はファイルの書き込みに失敗した場合のエラー
	ErrWriteFile = errors.New("ファイルの書き込みに失敗しました")

	// ErrInvalidTarget はアップロード先の指定が不正な場合のエラー
	ErrInvalidTarget = errors.New("アップロード先の指定が不正です (s3://bucket/prefix の形式で指定してください)")

	// ErrUpload はアップロードに失敗した場合のエラー
	ErrUpload = errors.New("アップロードに失敗しました")
)
