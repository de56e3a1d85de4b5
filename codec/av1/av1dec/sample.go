/*
DESCRIPTION
  sample.go provides AssembleSample, which filters an OBU packet down to the
  OBU kinds that belong in a stored sample and classifies the sample as a
  sync sample based on the uncompressed frame header.

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

import "github.com/ausocean/av1mux/codec/av1/av1dec/bits"

// keepOBU reports whether an OBU of the given type belongs in an assembled
// sample. TEMPORAL_DELIMITER, REDUNDANT_FRAME_HEADER and PADDING (and any
// reserved type) are dropped.
func keepOBU(t OBUType) bool {
	switch t {
	case OBUSequenceHeader, OBUFrameHeader, OBUTileGroup, OBUMetadata, OBUFrame:
		return true
	default:
		return false
	}
}

// AssembleSample walks the OBUs in packet (a single access unit's worth of
// concatenated OBUs) and returns a filtered copy containing only the kept
// OBU kinds, byte-identical to their on-wire representation in packet, in
// input order. isSync reports whether the sample is a sync sample: a
// SEQUENCE_HEADER OBU was seen before a FRAME_HEADER OBU whose uncompressed
// header has show_existing_frame==0 and frame_type==KEY_FRAME.
//
// FRAME OBUs are not inspected for sync, even though they begin with the
// same uncompressed frame header as FRAME_HEADER; this preserves a known
// limitation of the source this core is based on, which may misclassify
// samples whose key frame is delivered as a FRAME OBU.
func AssembleSample(packet []byte) (sample []byte, isSync bool, err error) {
	out := make([]byte, 0, len(packet))
	seenSeqHeader := false
	pos := 0

	for pos < len(packet) {
		headerStart := pos
		b := packet[pos]
		obuType := OBUType((b >> 3) & 0x0f)
		hasExtension := (b>>2)&1 == 1
		hasSize := (b>>1)&1 == 1
		pos++
		if hasExtension {
			pos++
		}

		if !hasSize {
			if keepOBU(obuType) {
				out = append(out, packet[headerStart:pos]...)
			}
			continue
		}

		size, consumed, err := leb128FromBuf(packet[pos:])
		if err != nil {
			return nil, false, err
		}
		pos += consumed

		if !keepOBU(obuType) {
			pos += int(size)
			continue
		}

		payloadStart := pos
		payloadEnd := pos + int(size)
		if payloadEnd > len(packet) {
			payloadEnd = len(packet)
		}

		switch obuType {
		case OBUSequenceHeader:
			seenSeqHeader = true
		case OBUFrameHeader:
			if seenSeqHeader {
				isSync = parseUncompressedFrameType(packet[payloadStart:payloadEnd])
			}
		}

		out = append(out, packet[headerStart:payloadEnd]...)
		pos = payloadEnd
	}

	return out, isSync, nil
}

// parseUncompressedFrameType decodes the leading bits of an uncompressed
// frame header (show_existing_frame, and if clear, frame_type) and reports
// whether the frame is a KEY_FRAME. Any failure to even set up the bit
// reader is treated conservatively as "not a sync sample".
func parseUncompressedFrameType(payload []byte) bool {
	br := bits.NewBitReader()
	if err := br.Import(payload); err != nil {
		return false
	}

	showExistingFrame, err := br.ReadBits(1)
	if err != nil {
		return false
	}
	if showExistingFrame != 0 {
		return false
	}

	const keyFrame = 0
	frameType, err := br.ReadBits(2)
	if err != nil {
		return false
	}
	return frameType == keyFrame
}
