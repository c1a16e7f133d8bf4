// Package assemble はデコード済みのレコードとタイトル表から出力レコードを組み立てます
package assemble

import (
	"fmt"

	"github.com/shiroemons/go-songpack/internal/songpack/block"
	"github.com/shiroemons/go-songpack/internal/songpack/difficulty"
	"github.com/shiroemons/go-songpack/internal/songpack/models"
	"github.com/shiroemons/go-songpack/internal/songpack/schema"
	"github.com/shiroemons/go-songpack/internal/songpack/titles"
)

const (
	// ArtistPlaceholder はアーティスト名の仮の値です（バイナリには含まれません）
	ArtistPlaceholder = "Artist goes here"
	// GameCategory は出力レコードのカテゴリーです
	GameCategory = "DDR CS"
)

// AssetsFor は曲IDからアセットのパスを作成します
func AssetsFor(id string) models.Assets {
	return models.Assets{
		Title:         id + "_nm.png",
		Background:    id + "_bk.png",
		BannerPreview: id + "_ta.png",
		Banner:        id + "_th.png",
		Chart:         id + ".csq",
		Song:          "song.mp3",
		Preview:       "preview.mp3",
	}
}

// Assemble は1レコード分の出力レコードを作成します
// origin は入力ファイル名です。難易度の表記や難易度フィールドが不正な場合は失敗します
func Assemble(b *block.Block, s *schema.Schema, origin string, t titles.Table) (models.Song, error) {
	id := b.MusicID()

	scale, err := s.Scale()
	if err != nil {
		return models.Song{}, err
	}
	chart, err := difficulty.Build(b, scale)
	if err != nil {
		return models.Song{}, fmt.Errorf("'%s': %w", id, err)
	}

	title, title2 := t.Pair(id)
	bpm1, _ := b.Int(schema.BPM1Field)
	bpm2, _ := b.Int(schema.BPM2Field)
	link, _ := b.Int(schema.MemoryCardLinkField)

	return models.Song{
		MusicID:          id,
		Title:            title,
		Title2:           title2,
		Artist:           ArtistPlaceholder,
		BPMs:             [2]int{bpm1, bpm2},
		MemoryCardLinkID: link,
		Difficulties:     chart,
		GrooveRadar:      difficulty.BuildRadar(b, s.IncludeRadarSingleBeginner),
		Origin:           origin,
		Data:             AssetsFor(id),
		Album:            s.Album(),
		GameCategory:     GameCategory,
	}, nil
}

// All は全レコードを順に組み立てます
func All(blocks []*block.Block, s *schema.Schema, origin string, t titles.Table) ([]models.Song, error) {
	songs := make([]models.Song, 0, len(blocks))
	for _, b := range blocks {
		song, err := Assemble(b, s, origin, t)
		if err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}
	return songs, nil
}
