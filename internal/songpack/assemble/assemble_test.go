package assemble

import (
	"errors"
	"reflect"
	"testing"

	"github.com/shiroemons/go-songpack/internal/songpack/block"
	"github.com/shiroemons/go-songpack/internal/songpack/difficulty"
	songerrors "github.com/shiroemons/go-songpack/internal/songpack/errors"
	"github.com/shiroemons/go-songpack/internal/songpack/models"
	"github.com/shiroemons/go-songpack/internal/songpack/schema"
	"github.com/shiroemons/go-songpack/internal/songpack/titles"
)

func legacyBlock(id string) *block.Block {
	b := block.New()
	b.Set("music_id", id)
	b.Set("bpm1", 150)
	b.Set("bpm2", 150)
	b.Set("memcard_link_id", 7)
	single := difficulty.PackLegacy(models.Levels{Beginner: 1, Light: 3, Standard: 5, Heavy: 7, Challenge: 9})
	b.Set("single_difficulties", single[:])
	b.Set("voltage_single_heavy", 80)
	b.Set("freeze_double_challenge", 120)
	b.Set("air_single_beginner", 10)
	return b
}

func TestAssemble(t *testing.T) {
	s := &schema.Schema{Game: "DDR MAX"}
	table := titles.Table{"abcd": {"Butterfly", "BUTTERFLY"}}

	song, err := Assemble(legacyBlock("ABCD "), s, "SLPM_650.77", table)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	if song.MusicID != "abcd" {
		t.Errorf("Expected abcd, got %s", song.MusicID)
	}
	if song.Title != "Butterfly" || song.Title2 != "BUTTERFLY" {
		t.Errorf("Unexpected titles: %s / %s", song.Title, song.Title2)
	}
	if song.Artist != ArtistPlaceholder {
		t.Errorf("Expected %s, got %s", ArtistPlaceholder, song.Artist)
	}
	if song.BPMs != [2]int{150, 150} || song.MemoryCardLinkID != 7 {
		t.Errorf("Unexpected numbers: %v / %d", song.BPMs, song.MemoryCardLinkID)
	}
	wantSingle := models.Levels{Beginner: 1, Light: 3, Standard: 5, Heavy: 7, Challenge: 9}
	if song.Difficulties.Single != wantSingle {
		t.Errorf("Expected %+v, got %+v", wantSingle, song.Difficulties.Single)
	}
	if song.Difficulties.Double != (models.Levels{}) {
		t.Errorf("Expected zero double levels, got %+v", song.Difficulties.Double)
	}
	if song.GrooveRadar.Single.Heavy.Voltage != 80 || song.GrooveRadar.Double.Challenge.Freeze != 120 {
		t.Errorf("Unexpected radar: %+v", song.GrooveRadar)
	}
	if song.GrooveRadar.Single.Beginner != nil {
		t.Error("Expected no single beginner radar")
	}
	if song.Origin != "SLPM_650.77" || song.Album != "DDR MAX" || song.GameCategory != GameCategory {
		t.Errorf("Unexpected metadata: %s / %s / %s", song.Origin, song.Album, song.GameCategory)
	}
	if song.Data != AssetsFor("abcd") {
		t.Errorf("Unexpected assets: %+v", song.Data)
	}
}

func TestAssemble_Defaults(t *testing.T) {
	b := block.New()
	b.Set("music_id", "wxyz")

	s := &schema.Schema{DifficultyScale: "1_20", IncludeRadarSingleBeginner: true}
	song, err := Assemble(b, s, "GAME.DAT", nil)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	if song.Title != titles.Placeholder || song.Title2 != titles.Placeholder {
		t.Errorf("Expected placeholder titles, got %s / %s", song.Title, song.Title2)
	}
	if song.Album != schema.DefaultAlbum {
		t.Errorf("Expected %s, got %s", schema.DefaultAlbum, song.Album)
	}
	if song.BPMs != [2]int{0, 0} {
		t.Errorf("Expected zero BPMs, got %v", song.BPMs)
	}
	if song.GrooveRadar.Single.Beginner == nil {
		t.Error("Expected single beginner radar")
	}
}

func TestAssemble_ModernScale(t *testing.T) {
	b := block.New()
	b.Set("music_id", "abcd")
	b.Set("single_challenge", 18)
	b.Set("double_beginner", 3)

	song, err := Assemble(b, &schema.Schema{DifficultyScale: "1_20"}, "x", titles.Table{})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	if song.Difficulties.Single.Challenge != 18 || song.Difficulties.Double.Beginner != 3 {
		t.Errorf("Unexpected difficulties: %+v", song.Difficulties)
	}
}

func TestAssemble_Errors(t *testing.T) {
	b := block.New()
	b.Set("music_id", "abcd")

	if _, err := Assemble(b, &schema.Schema{DifficultyScale: "1_99"}, "x", nil); !errors.Is(err, songerrors.ErrUnknownScale) {
		t.Errorf("Expected ErrUnknownScale, got %v", err)
	}

	b.Set("single_difficulties", []byte{0x11})
	if _, err := Assemble(b, &schema.Schema{}, "x", nil); !errors.Is(err, songerrors.ErrMalformedField) {
		t.Errorf("Expected ErrMalformedField, got %v", err)
	}
}

func TestAll(t *testing.T) {
	blocks := []*block.Block{legacyBlock("zzzz"), legacyBlock("aaaa"), legacyBlock("mmmm")}
	songs, err := All(blocks, &schema.Schema{}, "x", nil)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}

	var ids []string
	for _, s := range songs {
		ids = append(ids, s.MusicID)
	}
	if !reflect.DeepEqual(ids, []string{"zzzz", "aaaa", "mmmm"}) {
		t.Errorf("Expected file order, got %v", ids)
	}
}

func TestAssetsFor(t *testing.T) {
	want := models.Assets{
		Title:         "abcd_nm.png",
		Background:    "abcd_bk.png",
		BannerPreview: "abcd_ta.png",
		Banner:        "abcd_th.png",
		Chart:         "abcd.csq",
		Song:          "song.mp3",
		Preview:       "preview.mp3",
	}
	if got := AssetsFor("abcd"); got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}
