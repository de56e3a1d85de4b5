package av1

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ausocean/av1mux/codec/av1/av1dec"
)

func obu(t av1dec.OBUType, payload []byte) []byte {
	header := byte(t)<<3 | 1<<1 // has_size, no extension
	out := []byte{header}
	size := byte(len(payload)) // fits in one LEB128 byte for these fixtures
	out = append(out, size)
	out = append(out, payload...)
	return out
}

func TestSplitPacketsTwoTemporalUnits(t *testing.T) {
	td := obu(av1dec.OBUTemporalDelimiter, nil)
	seq := obu(av1dec.OBUSequenceHeader, []byte{0xaa})
	fh1 := obu(av1dec.OBUFrameHeader, []byte{0x00})
	fh2 := obu(av1dec.OBUFrameHeader, []byte{0x01})

	var in []byte
	in = append(in, td...)
	in = append(in, seq...)
	in = append(in, fh1...)
	in = append(in, td...)
	in = append(in, fh2...)

	packets, err := SplitPackets(bytes.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(packets) != 2 {
		t.Fatalf("got %d packets, want 2", len(packets))
	}

	want0 := append(append([]byte{}, td...), append(seq, fh1...)...)
	if !bytes.Equal(packets[0], want0) {
		t.Errorf("got first packet = %x, want %x", packets[0], want0)
	}

	want1 := append(append([]byte{}, td...), fh2...)
	if !bytes.Equal(packets[1], want1) {
		t.Errorf("got second packet = %x, want %x", packets[1], want1)
	}
}

func TestSplitPacketsDiscardsLeadingJunk(t *testing.T) {
	junk := obu(av1dec.OBUPadding, []byte{0x00})
	td := obu(av1dec.OBUTemporalDelimiter, nil)
	seq := obu(av1dec.OBUSequenceHeader, []byte{0xaa})

	var in []byte
	in = append(in, junk...)
	in = append(in, td...)
	in = append(in, seq...)

	packets, err := SplitPackets(bytes.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(packets) != 1 {
		t.Fatalf("got %d packets, want 1", len(packets))
	}
	want := append(append([]byte{}, td...), seq...)
	if !bytes.Equal(packets[0], want) {
		t.Errorf("got packet = %x, want %x (junk before first temporal delimiter dropped)", packets[0], want)
	}
}

func TestSplitPacketsNoSizeFieldErrors(t *testing.T) {
	b := byte(av1dec.OBUTemporalDelimiter) << 3 // no size field
	in := []byte{b}

	_, err := SplitPackets(bytes.NewReader(in))
	if err != ErrNoSizeField {
		t.Fatalf("got err = %v, want ErrNoSizeField", err)
	}
}

func TestLexStopsWhenDstErrors(t *testing.T) {
	td := obu(av1dec.OBUTemporalDelimiter, nil)
	seq := obu(av1dec.OBUSequenceHeader, []byte{0xaa})

	var in []byte
	in = append(in, td...)
	in = append(in, seq...)
	in = append(in, td...)
	in = append(in, seq...)

	stop := errors.New("stop")
	var calls int
	err := Lex(func([]byte) error {
		calls++
		return stop
	}, bytes.NewReader(in))
	if err != stop {
		t.Fatalf("got err = %v, want stop", err)
	}
	if calls != 1 {
		t.Fatalf("got %d calls to dst, want 1", calls)
	}
}
