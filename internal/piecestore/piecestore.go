// Package piecestore serialises a lazyjson.Piece to a compact on-disk
// form and back, generalising the teacher's Serializer/CompressMode
// (minio/simdjson-go's parsed_serialize.go) from "serialise a tape" to
// "serialise a piece-table's fragment list". The same four-tier
// compression ladder is kept: CompressNone stores fragments verbatim,
// CompressFast and CompressDefault both back them with
// klauspost/compress/s2 (fastest vs. better-compression encode level),
// and CompressBest with klauspost/compress/zstd, so a splice produced
// by EditAt can be persisted without first flattening it back into one
// contiguous buffer.
package piecestore

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"

	"github.com/shardwell/lazyjson"
)

// CompressMode selects the compressor applied to the serialised
// fragment payload.
type CompressMode uint8

const (
	// CompressNone stores the fragment payload uncompressed.
	CompressNone CompressMode = iota
	// CompressFast applies s2 at its fastest setting.
	CompressFast
	// CompressDefault applies s2 at its better-compression setting: the
	// same format CompressFast writes, decoded the same way, trading
	// encode speed for a denser payload.
	CompressDefault
	// CompressBest applies zstd (slower, denser compression still).
	CompressBest
)

const magic = "LZJP1"

// Serialize writes p to w: a small header (magic, compression mode and
// compressed payload size) followed by the payload, which holds the
// fragment count and the length-prefixed fragment bytes, compressed as
// a single block per mode.
func Serialize(w io.Writer, p *lazyjson.Piece, mode CompressMode) error {
	frags := p.Fragments()

	var payload []byte
	var lenBuf [8]byte
	binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(frags)))
	payload = append(payload, lenBuf[:]...)
	for _, f := range frags {
		binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(f)))
		payload = append(payload, lenBuf[:]...)
		payload = append(payload, f...)
	}

	compressed, err := compress(payload, mode)
	if err != nil {
		return fmt.Errorf("piecestore: compressing fragments: %w", err)
	}

	if _, err := w.Write([]byte(magic)); err != nil {
		return err
	}
	if _, err := w.Write([]byte{byte(mode)}); err != nil {
		return err
	}
	var sizeBuf [8]byte
	binary.LittleEndian.PutUint64(sizeBuf[:], uint64(len(compressed)))
	if _, err := w.Write(sizeBuf[:]); err != nil {
		return err
	}
	_, err = w.Write(compressed)
	return err
}

// Deserialize reads a Piece previously written by Serialize.
func Deserialize(r io.Reader) (*lazyjson.Piece, error) {
	hdr := make([]byte, len(magic)+1+8)
	if _, err := io.ReadFull(r, hdr); err != nil {
		return nil, fmt.Errorf("piecestore: reading header: %w", err)
	}
	if string(hdr[:len(magic)]) != magic {
		return nil, fmt.Errorf("piecestore: bad magic")
	}
	mode := CompressMode(hdr[len(magic)])
	size := binary.LittleEndian.Uint64(hdr[len(magic)+1:])

	compressed := make([]byte, size)
	if _, err := io.ReadFull(r, compressed); err != nil {
		return nil, fmt.Errorf("piecestore: reading payload: %w", err)
	}

	payload, err := decompress(compressed, mode)
	if err != nil {
		return nil, fmt.Errorf("piecestore: decompressing fragments: %w", err)
	}

	if len(payload) < 8 {
		return nil, fmt.Errorf("piecestore: truncated fragment count")
	}
	count := binary.LittleEndian.Uint64(payload[:8])
	payload = payload[8:]

	frags := make([][]byte, 0, count)
	for i := uint64(0); i < count; i++ {
		if len(payload) < 8 {
			return nil, fmt.Errorf("piecestore: truncated fragment length")
		}
		n := binary.LittleEndian.Uint64(payload[:8])
		payload = payload[8:]
		if uint64(len(payload)) < n {
			return nil, fmt.Errorf("piecestore: truncated fragment body")
		}
		frags = append(frags, payload[:n])
		payload = payload[n:]
	}
	return lazyjson.NewPiece(frags...), nil
}

func compress(payload []byte, mode CompressMode) ([]byte, error) {
	switch mode {
	case CompressNone:
		return payload, nil
	case CompressFast:
		return s2.Encode(nil, payload), nil
	case CompressDefault:
		return s2.EncodeBetter(nil, payload), nil
	case CompressBest:
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, err
		}
		defer enc.Close()
		return enc.EncodeAll(payload, nil), nil
	default:
		return nil, fmt.Errorf("unknown compress mode %d", mode)
	}
}

func decompress(payload []byte, mode CompressMode) ([]byte, error) {
	switch mode {
	case CompressNone:
		return payload, nil
	case CompressFast, CompressDefault:
		// CompressDefault differs from CompressFast only in the s2
		// encode level used; both produce the same s2 stream format,
		// so a single decode path serves both.
		return s2.Decode(nil, payload)
	case CompressBest:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return dec.DecodeAll(payload, nil)
	default:
		return nil, fmt.Errorf("unknown compress mode %d", mode)
	}
}
