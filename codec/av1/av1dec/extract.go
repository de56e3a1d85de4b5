/*
DESCRIPTION
  extract.go provides ParseSeqHeader, the top-level entry point that walks
  OBUs over a ByteSource, decodes any sequence-header OBUs found, and
  accumulates their on-wire bytes into a Config's ConfigOBUs blob.

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

import "github.com/pkg/errors"

// ParseSeqHeader walks the OBUs in src over [offset, offset+length),
// locates every sequence-header OBU, decodes it into a Config, and
// appends its complete on-wire bytes (header, optional extension byte,
// LEB128 size, and payload) to the Config's ConfigOBUs in encounter order.
//
// If more than one sequence-header OBU is present, later decoded fields
// overwrite earlier ones (a muxer only cares about the most recent
// sequence's parameters), while ConfigOBUs accumulates all of them.
//
// ParseSeqHeader returns ErrStillPicture if any sequence header rejects the
// stream as a still picture. It returns nil, nil if the range contains no
// sequence-header OBU at all.
func ParseSeqHeader(src ByteSource, length, offset int) (*Config, error) {
	var cfg *Config

	err := walkSeqHeaderOBUs(src, offset, length, func(payloadOff, payloadSize, headerLen int) error {
		onWireLen := headerLen + payloadSize
		onWireStart := payloadOff - headerLen
		onWire := make([]byte, onWireLen)
		for i := 0; i < onWireLen; i++ {
			b, err := src.PeekByte(onWireStart + i)
			if err != nil {
				return errors.Wrap(err, "could not copy sequence header obu bytes")
			}
			onWire[i] = b
		}

		payload := onWire[headerLen:]
		decoded, err := decodeSeqHeader(payload)
		if err != nil {
			return err
		}
		decoded.ConfigOBUs = append(cfg.configOBUs(), onWire...)
		cfg = decoded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// configOBUs returns cfg.ConfigOBUs, or nil if cfg itself is nil, so the
// accumulation above works whether or not a prior sequence header has been
// seen yet.
func (cfg *Config) configOBUs() []byte {
	if cfg == nil {
		return nil
	}
	return cfg.ConfigOBUs
}
