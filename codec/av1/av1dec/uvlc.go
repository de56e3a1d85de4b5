/*
DESCRIPTION
  uvlc.go decodes the AV1 "uvlc" variable-length-coded unsigned integer, as
  specified in section 4.10.3 of the AV1 bitstream specification: a run of L
  leading zero bits, a 1 bit, then L further bits encoding the value minus
  (2^L - 1).

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

// maxUVLCLeadingZeros caps the leading-zero search. The AV1 specification
// leaves a run of exactly this many leading zero bits as an undefined value
// (2^32 - 1); this core treats that case as a malformed stream.
const maxUVLCLeadingZeros = 32

// readUVLC reads one AV1 uvlc-coded value from br.
func readUVLC(br *bits.BitReader) (uint64, error) {
	var leadingZeros int
	for leadingZeros < maxUVLCLeadingZeros {
		b, err := br.ReadBits(1)
		if err != nil {
			return 0, err
		}
		if b != 0 {
			break
		}
		leadingZeros++
	}
	if leadingZeros == maxUVLCLeadingZeros {
		return 0, ErrMalformedUVLC
	}

	rem, err := br.ReadBits(leadingZeros)
	if err != nil {
		return 0, err
	}

	return rem + (uint64(1)<<uint(leadingZeros) - 1), nil
}
