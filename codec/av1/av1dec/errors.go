package av1dec

import "errors"

// Sentinel errors returned by this package's decoders, mirroring the
// package-level sentinel style used by codec/h264/h264dec/parse.go
// (errReadTeBadX, errInvalidCodeNum, etc). Where the original av1_obu.c
// source used an assert to abort on these conditions, this package instead
// returns one of these errors so that a hardened caller can reject the
// stream rather than crash, per the AV1 core's design notes.
var (
	// ErrStillPicture is returned by ParseSeqHeader when the sequence
	// header's still_picture or reduced_still_picture_header flag is set.
	// Such streams are not supported by this core.
	ErrStillPicture = errors.New("av1dec: still picture streams are not supported")

	// ErrSizeOverflow is returned when an OBU's LEB128-coded size exceeds
	// what fits in 32 bits.
	ErrSizeOverflow = errors.New("av1dec: obu size exceeds 32 bits")

	// ErrMalformedUVLC is returned when a UVLC-coded value has 32 or more
	// leading zero bits, which the AV1 specification leaves as an
	// undefined value.
	ErrMalformedUVLC = errors.New("av1dec: malformed uvlc value")
)
