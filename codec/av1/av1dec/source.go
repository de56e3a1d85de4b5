/*
DESCRIPTION
  source.go provides the ByteSource capability consumed by the OBU framing
  walker and LEB128 decoder, and a zero-copy in-memory implementation of it.

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

import "io"

// ByteSource is a capability for peeking a byte at an absolute offset from
// some underlying file or memory source, without advancing any read
// position. It deliberately exposes nothing else, so that it can be
// implemented over a memory-mapped file, a buffered reader with its own
// cache, or (as below) a plain byte slice, without entangling this package
// with I/O concerns.
type ByteSource interface {
	// PeekByte returns the byte at the given absolute offset.
	PeekByte(offset int) (byte, error)
}

// SliceSource adapts an in-memory byte slice to ByteSource. This is the
// common case for a muxer that has already buffered an entire elementary
// stream (or a length-delimited region of one) before handing it to
// ParseSeqHeader.
type SliceSource []byte

// PeekByte returns the byte at offset, or io.ErrUnexpectedEOF if offset is
// out of range.
func (s SliceSource) PeekByte(offset int) (byte, error) {
	if offset < 0 || offset >= len(s) {
		return 0, io.ErrUnexpectedEOF
	}
	return s[offset], nil
}
