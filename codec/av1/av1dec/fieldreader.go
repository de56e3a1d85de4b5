/*
DESCRIPTION
  fieldreader.go provides a sticky-error wrapper around a bits.BitReader,
  following the same pattern as codec/h264/h264dec/parse.go's fieldReader:
  once a read fails, subsequent reads become no-ops returning the zero
  value, so a long sequence of field reads can be written without an if err
  != nil after every line, and checked once at the end with err().

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package av1dec

import (
	"github.com/pkg/errors"

	"github.com/ausocean/av1mux/codec/av1/av1dec/bits"
)

// fieldReader reads bool and uint64 fields from a bits.BitReader, latching
// the first error encountered.
type fieldReader struct {
	e  error
	br *bits.BitReader
}

// newFieldReader returns a new fieldReader over br.
func newFieldReader(br *bits.BitReader) *fieldReader {
	return &fieldReader{br: br}
}

// bits reads n bits and returns them as a uint64. If a previous read failed,
// the read is skipped and 0 is returned.
func (r *fieldReader) bits(n int, name string) uint64 {
	if r.e != nil {
		return 0
	}
	var v uint64
	v, r.e = r.br.ReadBits(n)
	if r.e != nil {
		r.e = errors.Wrapf(r.e, "could not read %s", name)
	}
	return v
}

// flag reads a single bit and returns it as a bool.
func (r *fieldReader) flag(name string) bool {
	return r.bits(1, name) == 1
}

// skip reads and discards n bits.
func (r *fieldReader) skip(n int, name string) {
	r.bits(n, name)
}

// uvlc reads a UVLC-coded value, per the algorithm in uvlc.go.
func (r *fieldReader) uvlc(name string) uint64 {
	if r.e != nil {
		return 0
	}
	var v uint64
	v, r.e = readUVLC(r.br)
	if r.e != nil {
		r.e = errors.Wrapf(r.e, "could not read uvlc %s", name)
	}
	return v
}

// err returns the first error encountered by this fieldReader, if any.
func (r *fieldReader) err() error {
	return r.e
}
