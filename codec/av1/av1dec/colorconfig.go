/*
DESCRIPTION
  colorconfig.go decodes the color_config() syntax subblock of an AV1
  sequence header, as specified in section 5.5.2 of the AV1 bitstream
  specification, into a Config.

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

// readColorConfig reads color_config() from r into cfg. cfg.SeqProfile must
// already be set by the caller. The trailing separate_uv_delta_q bit is
// never consumed, since this core has no use for it.
func readColorConfig(r *fieldReader, cfg *Config) {
	cfg.HighBitdepth = uint8(r.bits(1, "high_bitdepth"))

	var bitDepth int
	switch {
	case cfg.SeqProfile == 2 && cfg.HighBitdepth == 1:
		cfg.TwelveBit = uint8(r.bits(1, "twelve_bit"))
		if cfg.TwelveBit == 1 {
			bitDepth = 12
		} else {
			bitDepth = 10
		}
	case cfg.HighBitdepth == 1:
		bitDepth = 10
	default:
		bitDepth = 8
	}

	if cfg.SeqProfile == 1 {
		cfg.Monochrome = 0
	} else {
		cfg.Monochrome = uint8(r.bits(1, "mono_chrome"))
	}

	colorDescriptionPresent := r.flag("color_description_present_flag")
	var colorPrimaries, transferCharacteristics, matrixCoefficients uint64
	if colorDescriptionPresent {
		colorPrimaries = r.bits(8, "color_primaries")
		transferCharacteristics = r.bits(8, "transfer_characteristics")
		matrixCoefficients = r.bits(8, "matrix_coefficients")
	} else {
		// Unspecified, per the AV1 specification's CP_UNSPECIFIED,
		// TC_UNSPECIFIED and MC_UNSPECIFIED defaults.
		colorPrimaries, transferCharacteristics, matrixCoefficients = 2, 2, 2
	}

	if cfg.Monochrome == 1 {
		r.skip(1, "color_range")
		cfg.ChromaSubsamplingX = 1
		cfg.ChromaSubsamplingY = 1
		cfg.ChromaSamplePosition = ChromaSamplePositionUnknown
		return
	}

	const (
		cpBT709    = 1
		tcSRGB     = 13
		mcIdentity = 0
	)
	if colorPrimaries == cpBT709 && transferCharacteristics == tcSRGB && matrixCoefficients == mcIdentity {
		// Identity-sRGB shortcut: color_range is implied to be 1 and is
		// not coded.
		cfg.ChromaSubsamplingX = 0
		cfg.ChromaSubsamplingY = 0
	} else {
		r.skip(1, "color_range")
		switch {
		case cfg.SeqProfile == 0:
			cfg.ChromaSubsamplingX = 1
			cfg.ChromaSubsamplingY = 1
		case cfg.SeqProfile == 1:
			cfg.ChromaSubsamplingX = 0
			cfg.ChromaSubsamplingY = 0
		case bitDepth == 12:
			cfg.ChromaSubsamplingX = uint8(r.bits(1, "chroma_subsampling_x"))
			if cfg.ChromaSubsamplingX == 1 {
				cfg.ChromaSubsamplingY = uint8(r.bits(1, "chroma_subsampling_y"))
			} else {
				cfg.ChromaSubsamplingY = 0
			}
		default:
			cfg.ChromaSubsamplingX = 1
			cfg.ChromaSubsamplingY = 0
		}
	}

	if cfg.ChromaSubsamplingX == 1 && cfg.ChromaSubsamplingY == 1 {
		cfg.ChromaSamplePosition = ChromaSamplePosition(r.bits(2, "chroma_sample_position"))
	}
}
