package av1dec

import (
	"testing"

	"github.com/ausocean/av1mux/codec/av1/av1dec/bits"
)

func TestReadColorConfigMonochrome(t *testing.T) {
	in := "1" + // high_bitdepth = 1 (profile 0, so BitDepth = 10, unused here)
		"1" + // mono_chrome = 1
		"0" + // color_description_present_flag = 0
		"1" + // color_range
		"0000" // padding

	buf, err := binToSlice(in)
	if err != nil {
		t.Fatalf("could not build fixture: %v", err)
	}
	br := bits.NewBitReader()
	if err := br.Import(buf); err != nil {
		t.Fatalf("unexpected error from Import: %v", err)
	}

	cfg := &Config{SeqProfile: 0}
	r := newFieldReader(br)
	readColorConfig(r, cfg)
	if err := r.err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Monochrome != 1 {
		t.Errorf("got Monochrome = %d, want 1", cfg.Monochrome)
	}
	if cfg.ChromaSubsamplingX != 1 || cfg.ChromaSubsamplingY != 1 {
		t.Errorf("got subsampling (%d,%d), want (1,1)", cfg.ChromaSubsamplingX, cfg.ChromaSubsamplingY)
	}
	if cfg.ChromaSamplePosition != ChromaSamplePositionUnknown {
		t.Errorf("got ChromaSamplePosition = %v, want Unknown", cfg.ChromaSamplePosition)
	}
}

func TestReadColorConfigIdentitySRGB(t *testing.T) {
	in := "0" + // high_bitdepth = 0
		"0" + // mono_chrome = 0
		"1" + // color_description_present_flag = 1
		"00000001" + // color_primaries = 1 (BT.709)
		"00001101" + // transfer_characteristics = 13 (sRGB)
		"00000000" + // matrix_coefficients = 0 (identity)
		"00" // padding, no color_range bit consumed

	buf, err := binToSlice(in)
	if err != nil {
		t.Fatalf("could not build fixture: %v", err)
	}
	br := bits.NewBitReader()
	if err := br.Import(buf); err != nil {
		t.Fatalf("unexpected error from Import: %v", err)
	}

	cfg := &Config{SeqProfile: 0}
	r := newFieldReader(br)
	readColorConfig(r, cfg)
	if err := r.err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ChromaSubsamplingX != 0 || cfg.ChromaSubsamplingY != 0 {
		t.Errorf("got subsampling (%d,%d), want (0,0)", cfg.ChromaSubsamplingX, cfg.ChromaSubsamplingY)
	}
}

func TestReadColorConfigProfile0FourTwoZero(t *testing.T) {
	in := "0" + // high_bitdepth = 0
		"0" + // mono_chrome = 0
		"0" + // color_description_present_flag = 0
		"1" + // color_range
		"10" + // chroma_sample_position
		"000" // padding

	buf, err := binToSlice(in)
	if err != nil {
		t.Fatalf("could not build fixture: %v", err)
	}
	br := bits.NewBitReader()
	if err := br.Import(buf); err != nil {
		t.Fatalf("unexpected error from Import: %v", err)
	}

	cfg := &Config{SeqProfile: 0}
	r := newFieldReader(br)
	readColorConfig(r, cfg)
	if err := r.err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ChromaSubsamplingX != 1 || cfg.ChromaSubsamplingY != 1 {
		t.Errorf("got subsampling (%d,%d), want (1,1)", cfg.ChromaSubsamplingX, cfg.ChromaSubsamplingY)
	}
	if cfg.ChromaSamplePosition != ChromaSamplePositionColocated {
		t.Errorf("got ChromaSamplePosition = %v, want %v", cfg.ChromaSamplePosition, ChromaSamplePositionColocated)
	}
}
