/*
DESCRIPTION
  obu.go decodes an OBU header byte and provides the framing walker used by
  the sequence-header extractor to iterate OBUs over a ByteSource, as
  specified in section 5.3 of the AV1 bitstream specification.

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

// obuHeader describes the decoded fields of an OBU header byte, per section
// 5.3.2 of the AV1 bitstream specification.
type obuHeader struct {
	obuType      OBUType
	hasExtension bool
	hasSize      bool
	headerLen    int // 1, or 2 if hasExtension.
}

// decodeOBUHeader decodes the header byte at offset off in src.
// obu_forbidden_bit (bit 7) and obu_reserved_1bit (bit 0) are not checked,
// matching this core's scope.
func decodeOBUHeader(src ByteSource, off int) (obuHeader, error) {
	b, err := src.PeekByte(off)
	if err != nil {
		return obuHeader{}, errors.Wrap(err, "could not peek obu header byte")
	}
	h := obuHeader{
		obuType:      OBUType((b >> 3) & 0x0f),
		hasExtension: (b>>2)&1 == 1,
		hasSize:      (b>>1)&1 == 1,
		headerLen:    1,
	}
	if h.hasExtension {
		h.headerLen = 2
	}
	return h, nil
}

// walkSeqHeaderOBUs walks the OBUs in src over [offset, offset+length),
// invoking visit for each sequence-header OBU found. visit receives the
// OBU's payload offset (the first byte after the header and size field) and
// its payload size, plus the combined length of its header (including any
// extension byte) and size field. If visit returns an error, the walk stops and that
// error is returned.
func walkSeqHeaderOBUs(src ByteSource, offset, length int, visit func(payloadOff, payloadSize, headerLen int) error) error {
	pos := 0
	for pos < length {
		h, err := decodeOBUHeader(src, offset+pos)
		if err != nil {
			return err
		}
		pos += h.headerLen

		if !h.hasSize {
			// No size field: this core has no way to know the payload
			// bounds, so there is nothing further it can do for this OBU.
			continue
		}

		size, consumed, err := leb128FromSource(src, offset+pos)
		if err != nil {
			return err
		}
		if size > 0xffffffff {
			return ErrSizeOverflow
		}
		pos += consumed

		switch h.obuType {
		case OBUSequenceHeader:
			if err := visit(offset+pos, int(size), h.headerLen+consumed); err != nil {
				return err
			}
		case OBUMetadata:
			// Known gap: metadata OBUs should be appended to ConfigOBUs
			// per muxer policy, but that is not implemented here. Skip
			// the payload like any other uninteresting OBU.
		}

		pos += int(size)
	}
	return nil
}
