// Package binread は固定長バイト列からスカラー値を読み込みます
package binread

import (
	"bytes"
	"encoding/binary"
	"strings"

	"github.com/vazrupe/endibuf"

	songerrors "github.com/shiroemons/go-songpack/internal/songpack/errors"
)

// ReadU8 は1バイトの符号なし整数を読み込みます
func ReadU8(chunk []byte) (uint8, error) {
	if len(chunk) != 1 {
		return 0, malformed(1, len(chunk))
	}
	return chunk[0], nil
}

// ReadU16LE は2バイトのリトルエンディアン符号なし整数を読み込みます
func ReadU16LE(chunk []byte) (uint16, error) {
	if len(chunk) != 2 {
		return 0, malformed(2, len(chunk))
	}
	r := newReader(chunk, binary.LittleEndian)
	return r.ReadUint16()
}

// ReadU32BE は4バイトのビッグエンディアン符号なし整数を読み込みます
func ReadU32BE(chunk []byte) (uint32, error) {
	if len(chunk) != 4 {
		return 0, malformed(4, len(chunk))
	}
	r := newReader(chunk, binary.BigEndian)
	return r.ReadUint32()
}

// ReadString は固定長の文字列を読み込みます
// ASCII以外のバイトは捨て、前後のNULを取り除きます
func ReadString(chunk []byte) string {
	var b strings.Builder
	b.Grow(len(chunk))
	for _, c := range chunk {
		if c < 0x80 {
			b.WriteByte(c)
		}
	}
	return strings.Trim(b.String(), "\x00")
}

func newReader(chunk []byte, order binary.ByteOrder) *endibuf.Reader {
	r := endibuf.NewReader(bytes.NewReader(chunk))
	r.Endian = order
	return r
}

func malformed(want, got int) error {
	return songerrors.NewFieldError(songerrors.ErrMalformedField, "", want, got)
}
