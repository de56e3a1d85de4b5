/*
DESCRIPTION
  seqheader.go decodes the sequence_header_obu() syntax of an AV1 sequence
  header OBU, as specified in section 5.5 of the AV1 bitstream
  specification, populating a Config. Tile data, film-grain parameters, and
  timing info beyond what gates other fields are skipped rather than
  decoded, per this core's scope.

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

// decodeSeqHeader reads sequence_header_obu() from payload (the OBU's
// payload bytes, header already stripped) into a fresh Config, and returns
// it. It returns ErrStillPicture if the stream is a still-picture or
// reduced-still-picture stream, which this core does not support.
func decodeSeqHeader(payload []byte) (*Config, error) {
	br := bits.NewBitReader()
	if err := br.Import(payload); err != nil {
		return nil, errors.Wrap(err, "could not import sequence header payload")
	}

	cfg := &Config{}
	r := newFieldReader(br)

	cfg.SeqProfile = uint8(r.bits(3, "seq_profile"))

	stillPicture := r.flag("still_picture")
	reducedStillPictureHeader := r.flag("reduced_still_picture_header")
	if err := r.err(); err != nil {
		return nil, err
	}
	if stillPicture || reducedStillPictureHeader {
		return nil, ErrStillPicture
	}

	decoderModelInfoPresent := false
	bufferDelayLengthMinus1 := 0

	if r.flag("timing_info_present_flag") {
		r.skip(32, "num_units_in_display_tick")
		r.skip(32, "time_scale")
		if r.flag("equal_picture_interval") {
			r.uvlc("num_ticks_per_picture_minus_1")
		}
		decoderModelInfoPresent = r.flag("decoder_model_info_present_flag")
		if decoderModelInfoPresent {
			bufferDelayLengthMinus1 = int(r.bits(5, "buffer_delay_length_minus_1"))
			r.skip(32, "num_units_in_decoding_tick")
			r.skip(5, "buffer_removal_time_length_minus_1")
			r.skip(5, "frame_presentation_time_length_minus_1")
		}
	}

	cfg.InitialPresentationDelayPresent = uint8(r.bits(1, "initial_presentation_delay_present"))

	operatingPointsCntMinus1 := int(r.bits(5, "operating_points_cnt_minus_1"))
	for i := 0; i <= operatingPointsCntMinus1; i++ {
		r.skip(12, "operating_point_idc")
		seqLevelIdx := uint8(r.bits(5, "seq_level_idx"))
		if i == 0 {
			cfg.SeqLevelIdx0 = seqLevelIdx
		}
		if seqLevelIdx > 7 {
			seqTier := uint8(r.bits(1, "seq_tier"))
			if i == 0 {
				cfg.SeqTier0 = seqTier
			}
		}
		if decoderModelInfoPresent {
			if r.flag("decoder_model_present_for_this_op") {
				r.skip(bufferDelayLengthMinus1+1, "decoder_buffer_delay")
				r.skip(bufferDelayLengthMinus1+1, "encoder_buffer_delay")
				r.skip(1, "low_delay_mode_flag")
			}
		}
	}

	// NB: per this core's known deviation from the AV1 specification (see
	// Config.InitialPresentationDelayMinusOne), this is read once for the
	// whole sequence header rather than once per operating point.
	if cfg.InitialPresentationDelayPresent == 1 {
		if r.flag("initial_display_delay_present_for_this_op") {
			cfg.InitialPresentationDelayMinusOne = uint8(r.bits(4, "initial_presentation_delay_minus_one"))
		}
	}

	frameWidthBitsMinus1 := int(r.bits(4, "frame_width_bits_minus_1"))
	frameHeightBitsMinus1 := int(r.bits(4, "frame_height_bits_minus_1"))
	r.skip(frameWidthBitsMinus1+1, "max_frame_width_minus_1")
	r.skip(frameHeightBitsMinus1+1, "max_frame_height_minus_1")

	if r.flag("frame_id_numbers_present_flag") {
		r.skip(4, "delta_frame_id_length_minus_2")
		r.skip(3, "additional_frame_id_length_minus_1")
	}

	r.skip(1, "use_128x128_superblock")
	r.skip(1, "enable_filter_intra")
	r.skip(1, "enable_intra_edge_filter")

	r.skip(1, "enable_interintra_compound")
	r.skip(1, "enable_masked_compound")
	r.skip(1, "enable_warped_motion")
	r.skip(1, "enable_dual_filter")

	enableOrderHint := r.flag("enable_order_hint")
	if enableOrderHint {
		r.skip(1, "enable_jnt_comp")
		r.skip(1, "enable_ref_frame_mvs")
	}

	seqForceScreenContentTools := 0
	if r.flag("seq_choose_screen_content_tools") {
		seqForceScreenContentTools = 2 // SELECT_SCREEN_CONTENT_TOOLS
	} else {
		seqForceScreenContentTools = int(r.bits(1, "seq_force_screen_content_tools"))
	}
	if seqForceScreenContentTools > 0 {
		if r.flag("seq_choose_integer_mv") {
			r.skip(1, "seq_force_integer_mv")
		}
	}

	if enableOrderHint {
		r.skip(3, "order_hint_bits_minus_1")
	}

	r.skip(1, "enable_superres")
	r.skip(1, "enable_cdef")
	r.skip(1, "enable_restoration")

	readColorConfig(r, cfg)

	// film_grain_params_present is not read: this core stops here.

	if err := r.err(); err != nil {
		return nil, err
	}
	return cfg, nil
}
