// SPDX-License-Identifier: MIT
// Package: store
//
// codec.go - binary encoding of diagram sets, zstd-compressed.
//
// Layout before compression (little-endian):
//
//	[version u8][degrees uvarint]
//	  per degree: [pairs uvarint] then pairs × [birth f64][death f64]
//
// +Inf deaths are stored as their IEEE-754 bits and round-trip exactly.

package store

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/alessimichele/PersHomEmbProj/diagram"
)

const codecVersion = 1

// zstd encoder/decoder pools; both are safe to reuse via EncodeAll/DecodeAll.
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

// encodeSet serializes and compresses s.
func encodeSet(s diagram.Set) []byte {
	var buf bytes.Buffer
	var scratch [binary.MaxVarintLen64]byte
	var f64 [8]byte

	buf.WriteByte(codecVersion)
	buf.Write(scratch[:binary.PutUvarint(scratch[:], uint64(len(s)))])
	for _, d := range s {
		buf.Write(scratch[:binary.PutUvarint(scratch[:], uint64(len(d)))])
		for _, p := range d {
			binary.LittleEndian.PutUint64(f64[:], math.Float64bits(p.Birth))
			buf.Write(f64[:])
			binary.LittleEndian.PutUint64(f64[:], math.Float64bits(p.Death))
			buf.Write(f64[:])
		}
	}

	enc := getZstdEncoder()
	defer zstdEncoderPool.Put(enc)

	return enc.EncodeAll(buf.Bytes(), nil)
}

// decodeSet reverses encodeSet. Any framing problem yields ErrCorrupt.
func decodeSet(blob []byte) (diagram.Set, error) {
	dec := getZstdDecoder()
	defer zstdDecoderPool.Put(dec)

	raw, err := dec.DecodeAll(blob, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	r := bytes.NewReader(raw)
	version, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if version != codecVersion {
		return nil, fmt.Errorf("%w: version %d", ErrCorrupt, version)
	}
	degrees, err := binary.ReadUvarint(r)
	if err != nil {
		return nil, fmt.Errorf("%w: degrees: %w", ErrCorrupt, err)
	}
	if degrees > uint64(r.Len()) {
		return nil, fmt.Errorf("%w: %d degrees in %d bytes", ErrCorrupt, degrees, r.Len())
	}

	set := make(diagram.Set, degrees)
	var f64 [16]byte
	for k := range set {
		count, err := binary.ReadUvarint(r)
		if err != nil {
			return nil, fmt.Errorf("%w: degree %d: %w", ErrCorrupt, k, err)
		}
		if count > uint64(r.Len()/len(f64)) {
			return nil, fmt.Errorf("%w: degree %d claims %d pairs", ErrCorrupt, k, count)
		}
		d := make(diagram.Diagram, count)
		for i := range d {
			if _, err := io.ReadFull(r, f64[:]); err != nil {
				return nil, fmt.Errorf("%w: degree %d pair %d: %w", ErrCorrupt, k, i, err)
			}
			d[i] = diagram.Pair{
				Birth: math.Float64frombits(binary.LittleEndian.Uint64(f64[:8])),
				Death: math.Float64frombits(binary.LittleEndian.Uint64(f64[8:])),
			}
		}
		set[k] = d
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrCorrupt, r.Len())
	}

	return set, nil
}
