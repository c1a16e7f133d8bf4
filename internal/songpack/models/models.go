// Package models はsongpackコマンドで使用するデータモデルを定義します
package models

import "fmt"

// Levels は1つのプレイモードにおける5段階の難易度を表します
type Levels struct {
	Beginner  int `json:"beginner" msgpack:"beginner"`
	Light     int `json:"light" msgpack:"light"`
	Standard  int `json:"standard" msgpack:"standard"`
	Heavy     int `json:"heavy" msgpack:"heavy"`
	Challenge int `json:"challenge" msgpack:"challenge"`
}

// Chart はシングル・ダブル両モードの難易度を表します
type Chart struct {
	Single Levels `json:"single" msgpack:"single"`
	Double Levels `json:"double" msgpack:"double"`
}

// RadarStats はグルーヴレーダーの5項目を表します
type RadarStats struct {
	Voltage int `json:"voltage" msgpack:"voltage"`
	Stream  int `json:"stream" msgpack:"stream"`
	Air     int `json:"air" msgpack:"air"`
	Chaos   int `json:"chaos" msgpack:"chaos"`
	Freeze  int `json:"freeze" msgpack:"freeze"`
}

// RadarMode は1つのプレイモードにおける難易度ごとのレーダー値です
// Beginner はスキーマ設定で有効にした場合のみ出力されます
type RadarMode struct {
	Light     RadarStats  `json:"light" msgpack:"light"`
	Standard  RadarStats  `json:"standard" msgpack:"standard"`
	Heavy     RadarStats  `json:"heavy" msgpack:"heavy"`
	Challenge RadarStats  `json:"challenge" msgpack:"challenge"`
	Beginner  *RadarStats `json:"beginner,omitempty" msgpack:"beginner,omitempty"`
}

// Radar はシングル・ダブル両モードのグルーヴレーダーです
type Radar struct {
	Single RadarMode `json:"single" msgpack:"single"`
	Double RadarMode `json:"double" msgpack:"double"`
}

// Assets は曲IDから導出されるアセットのパスです
type Assets struct {
	Title         string `json:"title" msgpack:"title"`
	Background    string `json:"background" msgpack:"background"`
	BannerPreview string `json:"banner_preview" msgpack:"banner_preview"`
	Banner        string `json:"banner" msgpack:"banner"`
	Chart         string `json:"chart" msgpack:"chart"`
	Song          string `json:"song" msgpack:"song"`
	Preview       string `json:"preview" msgpack:"preview"`
}

// Song は1曲分の正規化された出力レコードです
type Song struct {
	MusicID          string `json:"music_id" msgpack:"music_id"`
	Title            string `json:"title" msgpack:"title"`
	Title2           string `json:"title2" msgpack:"title2"`
	Artist           string `json:"artist" msgpack:"artist"`
	BPMs             [2]int `json:"bpms" msgpack:"bpms"`
	MemoryCardLinkID int    `json:"memory_card_link_id" msgpack:"memory_card_link_id"`
	Difficulties     Chart  `json:"difficulties" msgpack:"difficulties"`
	GrooveRadar      Radar  `json:"groove_radar" msgpack:"groove_radar"`
	Origin           string `json:"_origin" msgpack:"_origin"`
	Data             Assets `json:"data" msgpack:"data"`
	Album            string `json:"album" msgpack:"album"`
	GameCategory     string `json:"game_category" msgpack:"game_category"`
}

// BPMLabel は一覧表示用のBPM文字列を返します
// 2つのBPMが異なる場合は "bpm2-bpm1" の形式になります
func (s Song) BPMLabel() string {
	if s.BPMs[0] == s.BPMs[1] {
		return fmt.Sprintf("%d", s.BPMs[0])
	}
	return fmt.Sprintf("%d-%d", s.BPMs[1], s.BPMs[0])
}

// SourceData は読み込んだ入力ファイルです
type SourceData struct {
	// Name はスキーマの検索に使うファイル名（ディレクトリを含まない）
	Name string
	Data []byte
}
