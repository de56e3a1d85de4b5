/*
DESCRIPTION
  bitreader.go provides a bit reader implementation for reading MSB-first
  unsigned values from an imported byte buffer.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package bits provides a bit reader for decoding AV1 OBU payloads, which
// are read MSB-first with no byte-stuffing or emulation prevention, unlike
// the NAL-based bit readers used for other codecs in this tree.
package bits

import "io"

// BitReader reads bits MSB-first from a buffer imported with Import. A
// BitReader is a value type: its zero value is not ready to read from until
// Import has been called, and it is intended to be owned for the duration
// of a single parse rather than shared or retained beyond it.
type BitReader struct {
	buf []byte
	pos int // bit position from the start of buf.
}

// NewBitReader returns a new, empty BitReader. Call Import before reading.
func NewBitReader() *BitReader {
	return &BitReader{}
}

// Import resets the reader to read from buf starting at bit 0.
func (br *BitReader) Import(buf []byte) error {
	br.buf = buf
	br.pos = 0
	return nil
}

// ReadBits reads n bits (0 <= n <= 64) and returns them in the
// least-significant part of a uint64, MSB-first.
func (br *BitReader) ReadBits(n int) (uint64, error) {
	var v uint64
	for i := 0; i < n; i++ {
		byteIdx := br.pos >> 3
		if byteIdx >= len(br.buf) {
			return 0, io.ErrUnexpectedEOF
		}
		bitIdx := 7 - uint(br.pos&7)
		bit := (br.buf[byteIdx] >> bitIdx) & 1
		v = (v << 1) | uint64(bit)
		br.pos++
	}
	return v, nil
}

// BitsRead returns the number of bits consumed from the imported buffer so far.
func (br *BitReader) BitsRead() int {
	return br.pos
}
