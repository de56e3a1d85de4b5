package bits

import "testing"

func TestReadBits(t *testing.T) {
	tests := []struct {
		buf  []byte
		n    []int
		want []uint64
	}{
		{
			// 1000 1111, 1110 0011
			buf:  []byte{0x8f, 0xe3},
			n:    []int{4, 2, 4, 6},
			want: []uint64{0x8, 0x3, 0xf, 0x23},
		},
		{
			buf:  []byte{0x00},
			n:    []int{1, 1, 1, 1, 1, 1, 1, 1},
			want: []uint64{0, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			buf:  []byte{0xff},
			n:    []int{8},
			want: []uint64{0xff},
		},
	}

	for i, test := range tests {
		br := NewBitReader()
		if err := br.Import(test.buf); err != nil {
			t.Fatalf("test %d: unexpected error from Import: %v", i, err)
		}
		for j, n := range test.n {
			got, err := br.ReadBits(n)
			if err != nil {
				t.Fatalf("test %d read %d: unexpected error: %v", i, j, err)
			}
			if got != test.want[j] {
				t.Errorf("test %d read %d: got %#x, want %#x", i, j, got, test.want[j])
			}
		}
	}
}

func TestReadBitsEOF(t *testing.T) {
	br := NewBitReader()
	if err := br.Import([]byte{0xff}); err != nil {
		t.Fatalf("unexpected error from Import: %v", err)
	}
	if _, err := br.ReadBits(9); err == nil {
		t.Error("expected error reading beyond end of buffer, got nil")
	}
}

func TestBitsRead(t *testing.T) {
	br := NewBitReader()
	if err := br.Import([]byte{0xff, 0xff}); err != nil {
		t.Fatalf("unexpected error from Import: %v", err)
	}
	if _, err := br.ReadBits(5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := br.BitsRead(), 5; got != want {
		t.Errorf("got BitsRead() = %d, want %d", got, want)
	}
}
