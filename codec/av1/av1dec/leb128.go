/*
DESCRIPTION
  leb128.go decodes AV1 unsigned LEB128 values, as specified in section
  4.10.5 of the AV1 bitstream specification, either from a peekable
  ByteSource at an absolute offset, or from a raw byte slice.

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

import "github.com/pkg/errors"

// maxLEB128Bytes is the number of bytes read before giving up looking for a
// terminating byte, regardless of what the high bit says. AV1 caps leb128()
// at this many bytes, so a decoded value carries at most 56 significant bits.
const maxLEB128Bytes = 8

// leb128FromSource decodes a LEB128 value from src starting at the absolute
// offset off, returning the decoded value and the number of bytes consumed.
func leb128FromSource(src ByteSource, off int) (value uint64, consumed int, err error) {
	for i := 0; i < maxLEB128Bytes; i++ {
		b, err := src.PeekByte(off + i)
		if err != nil {
			return 0, 0, errors.Wrap(err, "could not peek leb128 byte")
		}
		value |= uint64(b&0x7f) << uint(7*i)
		consumed++
		if b&0x80 == 0 {
			break
		}
	}
	return value, consumed, nil
}

// leb128FromBuf decodes a LEB128 value from the start of buf, returning the
// decoded value and the number of bytes consumed.
func leb128FromBuf(buf []byte) (value uint64, consumed int, err error) {
	for i := 0; i < maxLEB128Bytes; i++ {
		if i >= len(buf) {
			return 0, 0, errors.New("leb128: buffer too short")
		}
		b := buf[i]
		value |= uint64(b&0x7f) << uint(7*i)
		consumed++
		if b&0x80 == 0 {
			break
		}
	}
	return value, consumed, nil
}
