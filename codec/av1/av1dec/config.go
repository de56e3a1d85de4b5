/*
DESCRIPTION
  config.go defines the AV1 codec configuration record populated by
  ParseSeqHeader, plus the OBU type tag enum shared by the framing walker,
  the seq-header extractor and the sample assembler.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package av1dec provides a decoder for the AV1 sequence header OBU and an
// OBU framing walker, producing the fields an AV1 codec configuration
// record (as stored in an ISOBMFF av1C box) needs, and classifying samples
// as sync samples for a muxer.
package av1dec

// OBUType is the obu_type field of an OBU header, as defined in section
// 6.2.2 of the AV1 bitstream specification.
type OBUType uint8

// OBU types relevant to this core. Values not named here (reserved types)
// fall through to the framing walker's default arm.
const (
	OBUSequenceHeader       OBUType = 1
	OBUTemporalDelimiter    OBUType = 2
	OBUFrameHeader          OBUType = 3
	OBUTileGroup            OBUType = 4
	OBUMetadata             OBUType = 5
	OBUFrame                OBUType = 6
	OBURedundantFrameHeader OBUType = 7
	OBUPadding              OBUType = 15
)

// ChromaSamplePosition is the chroma_sample_position field of color_config,
// modelled as a distinct type rather than a magic integer so that the
// "not applicable" case (monochrome streams, where the field is never
// read) is a named value instead of an overloaded zero.
type ChromaSamplePosition uint8

const (
	// ChromaSamplePositionUnknown is the value color_config assigns when
	// the stream is monochrome, so chroma_sample_position is never read.
	ChromaSamplePositionUnknown ChromaSamplePosition = iota
	ChromaSamplePositionVertical
	ChromaSamplePositionColocated
	chromaSamplePositionReserved
)

// Config is the AV1 codec configuration record: the set of fields an AV1
// decoder configuration box (av1C) needs, as derived from a stream's
// sequence header OBU(s).
type Config struct {
	// SeqProfile is the seq_profile field of the sequence header.
	SeqProfile uint8

	// SeqLevelIdx0 is the seq_level_idx of the first operating point.
	SeqLevelIdx0 uint8

	// SeqTier0 is the seq_tier of the first operating point, only read
	// when SeqLevelIdx0 > 7; otherwise zero.
	SeqTier0 uint8

	// HighBitdepth, TwelveBit and Monochrome are read from color_config.
	HighBitdepth uint8
	TwelveBit    uint8
	Monochrome   uint8

	// ChromaSubsamplingX and ChromaSubsamplingY are read or derived in
	// color_config depending on SeqProfile, Monochrome and bit depth.
	ChromaSubsamplingX uint8
	ChromaSubsamplingY uint8

	// ChromaSamplePosition is only meaningfully read when both
	// ChromaSubsamplingX and ChromaSubsamplingY are 1.
	ChromaSamplePosition ChromaSamplePosition

	// InitialPresentationDelayPresent is the
	// initial_presentation_delay_present flag of the sequence header.
	InitialPresentationDelayPresent uint8

	// InitialPresentationDelayMinusOne is read once per sequence header
	// rather than once per operating point, preserving a known deviation
	// from the AV1 specification's literal syntax (see the source
	// implementation this core is based on). Bit-for-bit compatibility
	// with that source is preserved rather than "fixing" this.
	InitialPresentationDelayMinusOne uint8

	// ConfigOBUs holds the complete on-wire bytes (header, optional
	// extension byte, LEB128 size, and payload) of every sequence-header
	// OBU encountered, concatenated in encounter order, byte-identical to
	// the input stream.
	ConfigOBUs []byte
}
