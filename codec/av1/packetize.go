/*
DESCRIPTION
  packetize.go provides Lex and SplitPackets, a packetizer that splits a
  continuous AV1 OBU bytestream into per-temporal-unit packets suitable for
  handing to av1dec.AssembleSample, one temporal unit at a time.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package av1 provides functionality for handling an AV1 elementary stream,
// including packetizing a continuous OBU bytestream into per-temporal-unit
// packets, and decoding of sequence headers and samples by the av1dec
// subpackage.
package av1

import (
	"bufio"
	"io"

	"github.com/pkg/errors"

	"github.com/ausocean/av1mux/codec/av1/av1dec"
)

// ErrNoSizeField is returned by Lex when it encounters an OBU with
// obu_has_size_field unset. The low-overhead bitstream format Lex expects
// requires every OBU to carry its own size, so such a stream cannot be
// packetized.
var ErrNoSizeField = errors.New("av1: obu without size field in bytestream")

const maxOBUSizeBytes = 8

// Lex walks a continuous low-overhead-format AV1 OBU bytestream read from
// src, calling dst once per temporal unit with a packet containing that
// temporal unit's OBUs, byte-identical to their on-wire representation in
// src. A temporal unit begins at a TEMPORAL_DELIMITER OBU and runs up to,
// but not including, the next one; any OBUs read before the first temporal
// delimiter are discarded. If dst returns an error, the walk stops and that
// error is returned.
//
// Each packet passed to dst is owned by dst for as long as it likes: Lex
// never reuses or mutates a packet's backing array after handing it off.
func Lex(dst func([]byte) error, src io.Reader) error {
	r := bufio.NewReaderSize(src, 4<<10)

	const bufSize = 8 << 10
	buf := make([]byte, 0, bufSize)
	started := false

	flush := func() error {
		if len(buf) == 0 {
			return nil
		}
		err := dst(buf)
		buf = make([]byte, 0, bufSize)
		return err
	}

	for {
		raw, obuType, err := readOneOBU(r)
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		if obuType == av1dec.OBUTemporalDelimiter {
			if err := flush(); err != nil {
				return err
			}
			started = true
		}
		if started {
			buf = append(buf, raw...)
		}
	}
	return flush()
}

// SplitPackets reads all of r and returns the complete slice of
// per-temporal-unit packets, in stream order. It is a convenience wrapper
// around Lex for callers that have the whole input available up front and
// would rather work with a slice than a callback.
func SplitPackets(r io.Reader) ([][]byte, error) {
	var packets [][]byte
	err := Lex(func(p []byte) error {
		packets = append(packets, p)
		return nil
	}, r)
	if err != nil {
		return nil, err
	}
	return packets, nil
}

// readOneOBU reads a single on-wire OBU (header, optional extension byte,
// size field, and payload) from r, returning its raw bytes and obu_type.
func readOneOBU(r *bufio.Reader) ([]byte, av1dec.OBUType, error) {
	hdr, err := r.ReadByte()
	if err == io.EOF {
		return nil, 0, io.EOF
	}
	if err != nil {
		return nil, 0, err
	}

	obuType := av1dec.OBUType((hdr >> 3) & 0x0f)
	hasExtension := (hdr>>2)&1 == 1
	hasSize := (hdr>>1)&1 == 1

	raw := []byte{hdr}
	if hasExtension {
		b, err := r.ReadByte()
		if err != nil {
			return nil, 0, io.ErrUnexpectedEOF
		}
		raw = append(raw, b)
	}

	if !hasSize {
		return nil, 0, ErrNoSizeField
	}

	var size uint64
	for i := 0; i < maxOBUSizeBytes; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return nil, 0, io.ErrUnexpectedEOF
		}
		raw = append(raw, b)
		size |= uint64(b&0x7f) << uint(7*i)
		if b&0x80 == 0 {
			break
		}
	}

	payload := make([]byte, size)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, 0, io.ErrUnexpectedEOF
	}
	raw = append(raw, payload...)

	return raw, obuType, nil
}
