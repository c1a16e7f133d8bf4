// Package difficulty は難易度とグルーヴレーダーのデコードを行います
//
// 難易度は2種類のスケールで格納されています:
//   - 1_10: DDR X より前の作品。4バイトのブロックにニブル単位で詰め込まれた10段階
//   - 1_20: DDR X 以降の作品。難易度ごとに1バイトの20段階
//
// スケールは自動判定せず、スキーマの difficulty_scale で指定します。
package difficulty

import (
	"fmt"

	songerrors "github.com/shiroemons/go-songpack/internal/songpack/errors"
	"github.com/shiroemons/go-songpack/internal/songpack/models"
)

// Scale は難易度スケールです
type Scale string

const (
	// Scale10 はニブル詰めの10段階スケール
	Scale10 Scale = "1_10"
	// Scale20 は1バイト1難易度の20段階スケール
	Scale20 Scale = "1_20"
)

// 旧スケールで使用するフィールド名
const (
	SingleLegacyField = "single_difficulties"
	DoubleLegacyField = "double_difficulties"
)

// Modes はプレイモード名の一覧です
var Modes = []string{"single", "double"}

// LevelNames は難易度名の一覧です
var LevelNames = []string{"beginner", "light", "standard", "heavy", "challenge"}

// Lookup はデコード済みブロックからフィールド値を参照するインターフェースです
type Lookup interface {
	Int(name string) (int, bool)
	Bytes(name string) ([]byte, bool)
}

// ParseScale はスケールの設定値を解析します
// 空文字列は1_10として扱います
func ParseScale(s string) (Scale, error) {
	switch Scale(s) {
	case "":
		return Scale10, nil
	case Scale10, Scale20:
		return Scale(s), nil
	}
	return "", fmt.Errorf("%w: %q (1_10 または 1_20 を指定してください)", songerrors.ErrUnknownScale, s)
}

// UnpackLegacy は旧スケールの4バイトブロックを展開します
//
//	byte0: 上位=standard, 下位=light
//	byte1: 上位=challenge, 下位=heavy
//	byte2: 下位=beginner (上位は未使用。ダブルのbeginnerかは不明)
//	byte3: 未使用
func UnpackLegacy(raw []byte) (models.Levels, error) {
	if len(raw) != 4 {
		return models.Levels{}, songerrors.NewFieldError(songerrors.ErrMalformedField, "", 4, len(raw))
	}
	b0, b1, b2 := raw[0], raw[1], raw[2]
	return models.Levels{
		Beginner:  int(b2 & 0x0F),
		Light:     int(b0 & 0x0F),
		Standard:  int(b0 >> 4),
		Heavy:     int(b1 & 0x0F),
		Challenge: int(b1 >> 4),
	}, nil
}

// PackLegacy は難易度を旧スケールの4バイトブロックに詰めます
// 各値は下位4ビットのみ使用されます
func PackLegacy(l models.Levels) [4]byte {
	return [4]byte{
		byte(l.Standard&0x0F)<<4 | byte(l.Light&0x0F),
		byte(l.Challenge&0x0F)<<4 | byte(l.Heavy&0x0F),
		byte(l.Beginner & 0x0F),
		0,
	}
}

// Build はスケールに応じて難易度レコードを組み立てます
func Build(fields Lookup, scale Scale) (models.Chart, error) {
	switch scale {
	case Scale10:
		single, err := legacyLevels(fields, SingleLegacyField)
		if err != nil {
			return models.Chart{}, err
		}
		double, err := legacyLevels(fields, DoubleLegacyField)
		if err != nil {
			return models.Chart{}, err
		}
		return models.Chart{Single: single, Double: double}, nil
	case Scale20:
		return models.Chart{
			Single: modernLevels(fields, "single"),
			Double: modernLevels(fields, "double"),
		}, nil
	}
	return models.Chart{}, fmt.Errorf("%w: %q", songerrors.ErrUnknownScale, scale)
}

// legacyLevels はニブル詰めのフィールドを展開します。フィールドがなければ全て0です
func legacyLevels(fields Lookup, name string) (models.Levels, error) {
	raw, ok := fields.Bytes(name)
	if !ok {
		return models.Levels{}, nil
	}
	levels, err := UnpackLegacy(raw)
	if err != nil {
		return models.Levels{}, fmt.Errorf("%s: %w", name, err)
	}
	return levels, nil
}

func modernLevels(fields Lookup, mode string) models.Levels {
	grab := func(level string) int {
		v, _ := fields.Int(mode + "_" + level)
		return v
	}
	return models.Levels{
		Beginner:  grab("beginner"),
		Light:     grab("light"),
		Standard:  grab("standard"),
		Heavy:     grab("heavy"),
		Challenge: grab("challenge"),
	}
}
