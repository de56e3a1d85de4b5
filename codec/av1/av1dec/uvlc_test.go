package av1dec

import (
	"testing"

	"github.com/ausocean/av1mux/codec/av1/av1dec/bits"
)

func TestReadUVLC(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{"1", 0},
		{"010", 1},
		{"011", 2},
		{"00100", 3},
	}

	for i, test := range tests {
		buf, err := binToSlice(test.in)
		if err != nil {
			t.Fatalf("test %d: could not build fixture: %v", i, err)
		}
		br := bits.NewBitReader()
		if err := br.Import(buf); err != nil {
			t.Fatalf("test %d: unexpected error from Import: %v", i, err)
		}
		got, err := readUVLC(br)
		if err != nil {
			t.Fatalf("test %d: unexpected error: %v", i, err)
		}
		if got != test.want {
			t.Errorf("test %d: got %d, want %d", i, got, test.want)
		}
	}
}

func TestReadUVLCMalformed(t *testing.T) {
	buf := make([]byte, 5) // 40 zero bits, well past the 32 leading-zero cap.
	br := bits.NewBitReader()
	if err := br.Import(buf); err != nil {
		t.Fatalf("unexpected error from Import: %v", err)
	}
	if _, err := readUVLC(br); err != ErrMalformedUVLC {
		t.Errorf("got err = %v, want %v", err, ErrMalformedUVLC)
	}
}
