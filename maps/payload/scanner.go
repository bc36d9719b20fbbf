package payload

import (
	"github.com/gavajc/MapsProto/maps/mapserr"
	"github.com/gavajc/MapsProto/maps/wire"
)

func validScanMode(m byte) bool {
	switch m {
	case 'A', 'B', 'C', 'D', 'E', 'H', 'I':
		return true
	}
	return false
}

// Scanner is the SC-request payload: a mode selector and a send-time
// budget in milliseconds.
type Scanner struct {
	Mode     byte
	SendTime uint16
}

// DecodeSC decodes an SC-request payload of the ordinary (non-special)
// shape: fixed length 4.
func DecodeSC(p []byte) (*Scanner, error) {
	if len(p) != 4 {
		return nil, mapserr.New(mapserr.MalformedPayload, "SC payload must be 4 bytes")
	}
	if !validScanMode(p[0]) {
		return nil, mapserr.At(mapserr.MalformedPayload, "SC mode invalid", 0)
	}
	if !wire.IsDigit(p[1]) || !wire.IsDigit(p[2]) || !wire.IsDigit(p[3]) {
		return nil, mapserr.At(mapserr.MalformedPayload, "SC send_time not digits", 1)
	}
	return &Scanner{Mode: p[0], SendTime: wire.ParseDigit3(p, 1)}, nil
}

// EncodeSC is the inverse of DecodeSC; send_time clamps to 999.
func EncodeSC(s *Scanner) ([]byte, error) {
	if s == nil || !validScanMode(s.Mode) {
		return nil, mapserr.New(mapserr.InvalidArgument, "SC mode invalid")
	}
	t := s.SendTime
	if t > 999 {
		t = 999
	}
	b := wire.NewBuilder(4)
	b.Byte(s.Mode).Digit3(t)
	return b.Built(), nil
}

// ScannerSpecial is the SCS payload, covering both sub-families: modes
// A/B/C (sensor presence map, embedded in an SC request envelope) and
// modes D/E/H/I (a raw 12-byte reception map carried in a bare special
// frame, with no further structure).
type ScannerSpecial struct {
	Mode       byte
	Presence   uint8    // A/B/C only: 0 or 1
	Sensors    [6]byte  // A/B/C only: ASCII-hex sensor map
	SweepsNum  uint8    // A/B/C only: 0..=9
	Reception  [12]byte // D/E/H/I only: raw ASCII-hex reception map
}

// DecodeScannerSpecialABC decodes the 8-byte A/B/C-mode payload that
// arrives embedded in an SC request envelope. mode must be supplied by
// the caller, since the embedded form doesn't carry it on the wire.
func DecodeScannerSpecialABC(mode byte, p []byte) (*ScannerSpecial, error) {
	if len(p) != 8 {
		return nil, mapserr.New(mapserr.MalformedPayload, "SCS A/B/C payload must be 8 bytes")
	}
	if p[0]-'0' > 1 || !wire.IsDigit(p[0]) {
		return nil, mapserr.At(mapserr.MalformedPayload, "SCS presence out of range", 0)
	}
	var sensors [6]byte
	for i := 0; i < 6; i++ {
		if !wire.IsHexDigit(p[1+i]) {
			return nil, mapserr.At(mapserr.MalformedPayload, "SCS sensor byte not hex", 1+i)
		}
		sensors[i] = p[1+i]
	}
	if !wire.IsDigit(p[7]) {
		return nil, mapserr.At(mapserr.MalformedPayload, "SCS sweeps_num not digit", 7)
	}
	return &ScannerSpecial{
		Mode:      mode,
		Presence:  p[0] - '0',
		Sensors:   sensors,
		SweepsNum: p[7] - '0',
	}, nil
}

// EncodeScannerSpecialABC is the inverse of DecodeScannerSpecialABC.
func EncodeScannerSpecialABC(s *ScannerSpecial) ([]byte, error) {
	if s == nil || s.Mode != 'A' && s.Mode != 'B' && s.Mode != 'C' {
		return nil, mapserr.New(mapserr.InvalidArgument, "SCS mode must be A, B, or C")
	}
	if s.Presence > 1 {
		return nil, mapserr.New(mapserr.InvalidArgument, "SCS presence must be 0 or 1")
	}
	for i, c := range s.Sensors {
		if !wire.IsHexDigit(c) {
			return nil, mapserr.At(mapserr.InvalidArgument, "SCS sensor byte not hex", i)
		}
	}
	if s.SweepsNum > 9 {
		return nil, mapserr.New(mapserr.InvalidArgument, "SCS sweeps_num must be 0..9")
	}
	b := wire.NewBuilder(8)
	b.Digit(s.Presence).Bytes(s.Sensors[:]).Digit(s.SweepsNum)
	return b.Built(), nil
}

// DecodeScannerSpecialDEHI decodes the raw 12-byte D/E/H/I reception map.
// mode is inferred by the caller from the frame terminator (D/E for a
// bare CR, H/I for CR+LF) before this is called.
func DecodeScannerSpecialDEHI(mode byte, p []byte) (*ScannerSpecial, error) {
	if len(p) != 12 {
		return nil, mapserr.New(mapserr.MalformedPayload, "SCS D/E/H/I payload must be 12 bytes")
	}
	var reception [12]byte
	for i, c := range p {
		if !wire.IsHexDigit(c) {
			return nil, mapserr.At(mapserr.MalformedPayload, "SCS reception byte not hex", i)
		}
		reception[i] = c
	}
	return &ScannerSpecial{Mode: mode, Reception: reception}, nil
}

// EncodeScannerSpecialDEHI is the inverse of DecodeScannerSpecialDEHI.
func EncodeScannerSpecialDEHI(s *ScannerSpecial) ([]byte, error) {
	if s == nil {
		return nil, mapserr.New(mapserr.InvalidArgument, "SCS payload required")
	}
	switch s.Mode {
	case 'D', 'E', 'H', 'I':
	default:
		return nil, mapserr.New(mapserr.InvalidArgument, "SCS mode must be D, E, H, or I")
	}
	for i, c := range s.Reception {
		if !wire.IsHexDigit(c) {
			return nil, mapserr.At(mapserr.InvalidArgument, "SCS reception byte not hex", i)
		}
	}
	b := wire.NewBuilder(12)
	b.Bytes(s.Reception[:])
	return b.Built(), nil
}
