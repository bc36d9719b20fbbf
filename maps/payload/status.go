// Package payload implements the per-command wire grammars MAPS carries
// inside a framed envelope: decoding validated payload bytes into typed
// Go values, and encoding typed Go values back into payload bytes. Every
// function here works in payload-relative coordinates - byte 0 is the
// first byte after the command mnemonic - which cancels out the
// request/response offset bookkeeping the original C decoders needed,
// since the envelope layer (maps/frame.go) has already sliced the
// payload out by the time it reaches these functions.
package payload

import (
	"github.com/gavajc/MapsProto/maps/mapserr"
	"github.com/gavajc/MapsProto/maps/wire"
)

// BarrierStatus is the DE-response / EM-request barrier state payload.
// CF-150 and CF-24P carry the short form (no TowDetection/RcvrDirection);
// CF-220 carries the long form with both.
type BarrierStatus struct {
	WorkMode      uint8
	AxisISpeed    uint8
	AxisHeight    uint8
	TowDetection  byte // '0' (absent), 'R', 'M', 'N', 'E', 'T'
	HwFailure     uint8
	SeCleaning    uint8
	FirmwareVer   uint8
	RcvrDirection byte // 0 (absent, EM short form), 'P', 'N' - EM request; not validated on DE (see DESIGN.md)
	BarrierModel  byte // DE-response only
}

func validTow(b byte) bool {
	switch b {
	case '0', 'R', 'M', 'N', 'E', 'T':
		return true
	}
	return false
}

// DecodeEM decodes an EM-request payload: length 9 (CF-150/CF-24P short
// form) or 10 (CF-220 long form with tow detection and receiver
// direction).
func DecodeEM(p []byte) (*BarrierStatus, error) {
	if len(p) != 9 && len(p) != 10 {
		return nil, mapserr.New(mapserr.MalformedPayload, "EM payload must be 9 or 10 bytes")
	}
	if !wire.IsDigit(p[0]) || p[0]-'0' > 3 {
		return nil, mapserr.At(mapserr.MalformedPayload, "EM work_mode out of range", 0)
	}
	if !wire.IsHexDigit(p[1]) {
		return nil, mapserr.At(mapserr.MalformedPayload, "EM axis_ispeed not hex", 1)
	}
	if !wire.IsDigit(p[2]) || p[2]-'0' > 2 {
		return nil, mapserr.At(mapserr.MalformedPayload, "EM axis_height out of range", 2)
	}
	s := &BarrierStatus{
		WorkMode:   p[0] - '0',
		AxisISpeed: wire.HexNibbleValue(p[1]),
		AxisHeight: p[2] - '0',
	}
	if len(p) == 9 {
		if p[3] != '1' && p[3] != '2' && p[3] != '3' {
			return nil, mapserr.At(mapserr.MalformedPayload, "EM hw_failure out of range", 3)
		}
		if p[4] != '1' && p[4] != '2' {
			return nil, mapserr.At(mapserr.MalformedPayload, "EM se_cleaning out of range", 4)
		}
		if !wire.IsDigit(p[5]) || !wire.IsDigit(p[6]) {
			return nil, mapserr.At(mapserr.MalformedPayload, "EM firmware_ver not digits", 5)
		}
		s.HwFailure = p[3] - '0'
		s.SeCleaning = p[4] - '0'
		s.FirmwareVer = wire.ParseDigit2(p, 5)
		return s, nil
	}

	if !validTow(p[3]) {
		return nil, mapserr.At(mapserr.MalformedPayload, "EM tow_detection invalid", 3)
	}
	if p[4] != '1' && p[4] != '2' && p[4] != '3' {
		return nil, mapserr.At(mapserr.MalformedPayload, "EM hw_failure out of range", 4)
	}
	if p[5] != '1' && p[5] != '2' {
		return nil, mapserr.At(mapserr.MalformedPayload, "EM se_cleaning out of range", 5)
	}
	if !wire.IsDigit(p[6]) || !wire.IsDigit(p[7]) {
		return nil, mapserr.At(mapserr.MalformedPayload, "EM firmware_ver not digits", 6)
	}
	if p[8] != 'P' && p[8] != 'N' {
		return nil, mapserr.At(mapserr.MalformedPayload, "EM rcvr_direction invalid", 8)
	}
	s.TowDetection = p[3]
	s.HwFailure = p[4] - '0'
	s.SeCleaning = p[5] - '0'
	s.FirmwareVer = wire.ParseDigit2(p, 6)
	s.RcvrDirection = p[8]
	return s, nil
}

// EncodeEM is the inverse of DecodeEM. Supplying s.RcvrDirection as 0
// selects the short (CF-150/CF-24P) form, which does not carry
// s.TowDetection; 'P' or 'N' selects the long (CF-220) form.
func EncodeEM(s *BarrierStatus) ([]byte, error) {
	if s == nil {
		return nil, mapserr.New(mapserr.InvalidArgument, "EM payload required")
	}
	if s.WorkMode > 3 {
		return nil, mapserr.New(mapserr.InvalidArgument, "EM work_mode out of range")
	}
	if s.AxisISpeed > 15 {
		return nil, mapserr.New(mapserr.InvalidArgument, "EM axis_ispeed out of range")
	}
	if s.AxisHeight > 2 {
		return nil, mapserr.New(mapserr.InvalidArgument, "EM axis_height out of range")
	}
	td := s.TowDetection
	if td == 0 {
		td = '0'
	}
	if !validTow(td) {
		return nil, mapserr.New(mapserr.InvalidArgument, "EM tow_detection invalid")
	}
	if s.HwFailure == 0 || s.HwFailure > 3 {
		return nil, mapserr.New(mapserr.InvalidArgument, "EM hw_failure out of range")
	}
	if s.SeCleaning == 0 || s.SeCleaning > 2 {
		return nil, mapserr.New(mapserr.InvalidArgument, "EM se_cleaning out of range")
	}
	if s.FirmwareVer > 99 {
		return nil, mapserr.New(mapserr.InvalidArgument, "EM firmware_ver out of range")
	}
	if s.RcvrDirection != 0 && s.RcvrDirection != 'P' && s.RcvrDirection != 'N' {
		return nil, mapserr.New(mapserr.InvalidArgument, "EM rcvr_direction invalid")
	}

	b := wire.NewBuilder(10)
	b.Digit(s.WorkMode).HexNibble(s.AxisISpeed).Digit(s.AxisHeight)
	if s.RcvrDirection == 0 {
		b.Digit(s.HwFailure).Digit(s.SeCleaning).Digit2(s.FirmwareVer).Byte('0').Byte('0')
	} else {
		b.Byte(td).Digit(s.HwFailure).Digit(s.SeCleaning).Digit2(s.FirmwareVer).Byte(s.RcvrDirection).Byte('0')
	}
	return b.Built(), nil
}

// DecodeDE decodes a DE-response payload: fixed length 10.
func DecodeDE(p []byte) (*BarrierStatus, error) {
	if len(p) != 10 {
		return nil, mapserr.New(mapserr.MalformedPayload, "DE payload must be 10 bytes")
	}
	if !wire.IsDigit(p[0]) || p[0]-'0' > 3 {
		return nil, mapserr.At(mapserr.MalformedPayload, "DE work_mode out of range", 0)
	}
	if !wire.IsHexDigit(p[1]) {
		return nil, mapserr.At(mapserr.MalformedPayload, "DE axis_ispeed not hex", 1)
	}
	if !wire.IsDigit(p[2]) || p[2]-'0' > 2 {
		return nil, mapserr.At(mapserr.MalformedPayload, "DE axis_height out of range", 2)
	}
	if !validTow(p[3]) {
		return nil, mapserr.At(mapserr.MalformedPayload, "DE tow_detection invalid", 3)
	}
	if p[4] != '1' && p[4] != '2' && p[4] != '3' {
		return nil, mapserr.At(mapserr.MalformedPayload, "DE hw_failure out of range", 4)
	}
	if p[5] != '1' && p[5] != '2' {
		return nil, mapserr.At(mapserr.MalformedPayload, "DE se_cleaning out of range", 5)
	}
	if !wire.IsDigit(p[6]) || !wire.IsDigit(p[7]) {
		return nil, mapserr.At(mapserr.MalformedPayload, "DE firmware_ver not digits", 6)
	}
	return &BarrierStatus{
		WorkMode:      p[0] - '0',
		AxisISpeed:    wire.HexNibbleValue(p[1]),
		AxisHeight:    p[2] - '0',
		TowDetection:  p[3],
		HwFailure:     p[4] - '0',
		SeCleaning:    p[5] - '0',
		FirmwareVer:   wire.ParseDigit2(p, 6),
		RcvrDirection: p[8], // carried through unvalidated, matching the source (see DESIGN.md)
		BarrierModel:  p[9],
	}, nil
}

// EncodeDE is the inverse of DecodeDE.
func EncodeDE(s *BarrierStatus) ([]byte, error) {
	if s == nil {
		return nil, mapserr.New(mapserr.InvalidArgument, "DE payload required")
	}
	if s.WorkMode > 3 {
		return nil, mapserr.New(mapserr.InvalidArgument, "DE work_mode out of range")
	}
	if s.AxisISpeed > 15 {
		return nil, mapserr.New(mapserr.InvalidArgument, "DE axis_ispeed out of range")
	}
	if s.AxisHeight > 2 {
		return nil, mapserr.New(mapserr.InvalidArgument, "DE axis_height out of range")
	}
	td := s.TowDetection
	if td == 0 {
		td = '0'
	}
	if !validTow(td) {
		return nil, mapserr.New(mapserr.InvalidArgument, "DE tow_detection invalid")
	}
	if s.HwFailure == 0 || s.HwFailure > 3 {
		return nil, mapserr.New(mapserr.InvalidArgument, "DE hw_failure out of range")
	}
	if s.SeCleaning == 0 || s.SeCleaning > 2 {
		return nil, mapserr.New(mapserr.InvalidArgument, "DE se_cleaning out of range")
	}
	if s.FirmwareVer > 99 {
		return nil, mapserr.New(mapserr.InvalidArgument, "DE firmware_ver out of range")
	}

	rd := s.RcvrDirection
	if rd == 0 {
		rd = '0'
	}
	bm := s.BarrierModel
	b := wire.NewBuilder(10)
	b.Digit(s.WorkMode).HexNibble(s.AxisISpeed).Digit(s.AxisHeight).Byte(td).
		Digit(s.HwFailure).Digit(s.SeCleaning).Digit2(s.FirmwareVer).Byte(rd).Byte(bm)
	return b.Built(), nil
}

// WorkMode is the SM-request payload: a subset of BarrierStatus, with the
// trailing fields present only at longer wire lengths.
type WorkMode struct {
	WorkMode      uint8
	AxisISpeed    uint8
	AxisHeight    uint8
	TowDetection  byte // 0 when the 3-byte form was used
	RcvrDirection byte // 0 unless the 5-byte form was used
}

// DecodeSM decodes an SM-request payload: length 3, 4, or 5 (spec.md §9
// treats length as canonical over the descriptor comment's {10,11,12}
// full-frame-length claim - 3/4/5 here is that same set minus the 7-byte
// envelope overhead).
func DecodeSM(p []byte) (*WorkMode, error) {
	if len(p) < 3 || len(p) > 5 {
		return nil, mapserr.New(mapserr.MalformedPayload, "SM payload must be 3, 4, or 5 bytes")
	}
	if !wire.IsDigit(p[0]) || p[0]-'0' > 3 {
		return nil, mapserr.At(mapserr.MalformedPayload, "SM work_mode out of range", 0)
	}
	if !wire.IsHexDigit(p[1]) {
		return nil, mapserr.At(mapserr.MalformedPayload, "SM axis_ispeed not hex", 1)
	}
	if p[2] != '0' && p[2] != '1' && p[2] != '2' {
		return nil, mapserr.At(mapserr.MalformedPayload, "SM axis_height out of range", 2)
	}
	w := &WorkMode{
		WorkMode:   p[0] - '0',
		AxisISpeed: wire.HexNibbleValue(p[1]),
		AxisHeight: p[2] - '0',
	}
	if len(p) >= 4 {
		if !validTow(p[3]) {
			return nil, mapserr.At(mapserr.MalformedPayload, "SM tow_detection invalid", 3)
		}
		w.TowDetection = p[3]
	}
	if len(p) == 5 {
		if p[4] != 'P' && p[4] != 'N' {
			return nil, mapserr.At(mapserr.MalformedPayload, "SM rcvr_direction invalid", 4)
		}
		w.RcvrDirection = p[4]
	}
	return w, nil
}

// EncodeSM is the inverse of DecodeSM. elements selects the wire length:
// 3, 4, or 5, matching MapsProtoCreateSMRequest's "elements" parameter.
func EncodeSM(elements int, w *WorkMode) ([]byte, error) {
	if w == nil || elements < 3 || elements > 5 {
		return nil, mapserr.New(mapserr.InvalidArgument, "SM payload requires elements in 3..5")
	}
	if w.WorkMode > 3 {
		return nil, mapserr.New(mapserr.InvalidArgument, "SM work_mode out of range")
	}
	if w.AxisISpeed > 15 {
		return nil, mapserr.New(mapserr.InvalidArgument, "SM axis_ispeed out of range")
	}
	if w.AxisHeight > 2 {
		return nil, mapserr.New(mapserr.InvalidArgument, "SM axis_height out of range")
	}
	td := w.TowDetection
	if td == 0 {
		td = '0'
	}
	if td != '0' && !validTow(td) {
		return nil, mapserr.New(mapserr.InvalidArgument, "SM tow_detection invalid")
	}
	if elements == 5 && w.RcvrDirection != 'P' && w.RcvrDirection != 'N' {
		return nil, mapserr.New(mapserr.InvalidArgument, "SM rcvr_direction required for 5-element form")
	}

	b := wire.NewBuilder(elements)
	b.Digit(w.WorkMode).HexNibble(w.AxisISpeed).Digit(w.AxisHeight)
	if elements >= 4 {
		b.Byte(td)
	}
	if elements == 5 {
		b.Byte(w.RcvrDirection)
	}
	return b.Built(), nil
}

// Heights is the EA-response payload: four 0..=99 height values.
type Heights struct {
	IMaxHeight uint8
	UMaxHeight uint8
	UMinHeight uint8
	LMaxHeight uint8
}

// DecodeEA decodes an EA-response payload: fixed length 8.
func DecodeEA(p []byte) (*Heights, error) {
	if len(p) != 8 {
		return nil, mapserr.New(mapserr.MalformedPayload, "EA payload must be 8 bytes")
	}
	for i := 0; i < 8; i++ {
		if !wire.IsDigit(p[i]) {
			return nil, mapserr.At(mapserr.MalformedPayload, "EA field not digits", i)
		}
	}
	return &Heights{
		IMaxHeight: wire.ParseDigit2(p, 0),
		UMaxHeight: wire.ParseDigit2(p, 2),
		UMinHeight: wire.ParseDigit2(p, 4),
		LMaxHeight: wire.ParseDigit2(p, 6),
	}, nil
}

// EncodeEA is the inverse of DecodeEA.
func EncodeEA(h *Heights) ([]byte, error) {
	if h == nil {
		return nil, mapserr.New(mapserr.InvalidArgument, "EA payload required")
	}
	b := wire.NewBuilder(8)
	b.Digit2(h.IMaxHeight).Digit2(h.UMaxHeight).Digit2(h.UMinHeight).Digit2(h.LMaxHeight)
	return b.Built(), nil
}

// HeightRelay is the RH request/response payload. Both directions share
// the same payload-relative layout.
type HeightRelay struct {
	WMode uint8 // 0 or 1
	RecvN uint8 // 1..=24
}

// DecodeRH decodes an RH payload: fixed length 3, identical on request and
// response.
func DecodeRH(p []byte) (*HeightRelay, error) {
	if len(p) != 3 {
		return nil, mapserr.New(mapserr.MalformedPayload, "RH payload must be 3 bytes")
	}
	if p[0] != '0' && p[0] != '1' {
		return nil, mapserr.At(mapserr.MalformedPayload, "RH wmode out of range", 0)
	}
	n := wire.ParseDigit2(p, 1)
	if n < 1 || n > 24 {
		return nil, mapserr.At(mapserr.MalformedPayload, "RH recvn out of range", 1)
	}
	return &HeightRelay{WMode: p[0] - '0', RecvN: n}, nil
}

// EncodeRH is the inverse of DecodeRH.
func EncodeRH(h *HeightRelay) ([]byte, error) {
	if h == nil || h.WMode > 1 || h.RecvN < 1 || h.RecvN > 24 {
		return nil, mapserr.New(mapserr.InvalidArgument, "RH payload requires wmode 0..1 and recvn 1..24")
	}
	b := wire.NewBuilder(3)
	b.Digit(h.WMode).Digit2(h.RecvN)
	return b.Built(), nil
}

// AxisSpeed is the EJ-request payload.
type AxisSpeed struct {
	PAxes  uint8
	NAxes  uint8
	ISpeed uint8
}

// DecodeEJ decodes an EJ-request payload: fixed length 6.
func DecodeEJ(p []byte) (*AxisSpeed, error) {
	if len(p) != 6 {
		return nil, mapserr.New(mapserr.MalformedPayload, "EJ payload must be 6 bytes")
	}
	for i := 0; i < 6; i++ {
		if !wire.IsDigit(p[i]) {
			return nil, mapserr.At(mapserr.MalformedPayload, "EJ field not digits", i)
		}
	}
	return &AxisSpeed{
		PAxes:  wire.ParseDigit2(p, 0),
		NAxes:  wire.ParseDigit2(p, 2),
		ISpeed: wire.ParseDigit2(p, 4),
	}, nil
}

// EncodeEJ is the inverse of DecodeEJ; out-of-range counts clamp to 99,
// matching MapsProtoCreateEJRequest.
func EncodeEJ(a *AxisSpeed) ([]byte, error) {
	if a == nil {
		return nil, mapserr.New(mapserr.InvalidArgument, "EJ payload required")
	}
	clamp := func(v uint8) uint8 {
		if v > 99 {
			return 99
		}
		return v
	}
	b := wire.NewBuilder(6)
	b.Digit2(clamp(a.PAxes)).Digit2(clamp(a.NAxes)).Digit2(clamp(a.ISpeed))
	return b.Built(), nil
}

// AxisFirstHeight is the AP-request payload. The short form carries only
// VHeight; the long form (Smbyte == 2) carries the axis/vmax/hmin/lmax
// quartet plus VAxis.
type AxisFirstHeight struct {
	Smbyte     uint8
	VHeight    uint8 // short form only
	VAxis      byte  // long form only: 0, 'N', or 'P'
	AxisHeight uint8 // long form only, 0..=15
	VMaxHeight uint8
	HMinHeight uint8
	LMaxHeight uint8
}

// DecodeAP decodes an AP-request payload: length 2 (short form) or 10
// (long form).
func DecodeAP(p []byte) (*AxisFirstHeight, error) {
	switch len(p) {
	case 2:
		if !wire.IsDigit(p[0]) || !wire.IsDigit(p[1]) {
			return nil, mapserr.New(mapserr.MalformedPayload, "AP vheight not digits")
		}
		// The source computes (tens*10) - ones here, a subtraction bug not
		// among spec.md's documented open questions; reproduced correctly
		// as addition (see DESIGN.md).
		return &AxisFirstHeight{Smbyte: 0, VHeight: wire.ParseDigit2(p, 0)}, nil
	case 10:
		if p[0] != '0' && p[0] != 'N' && p[0] != 'P' {
			return nil, mapserr.At(mapserr.MalformedPayload, "AP vaxis invalid", 0)
		}
		for i := 2; i < 10; i++ {
			if !wire.IsDigit(p[i]) {
				return nil, mapserr.At(mapserr.MalformedPayload, "AP field not digits", i)
			}
		}
		axisHeight := wire.ParseDigit2(p, 2)
		if axisHeight > 15 {
			return nil, mapserr.At(mapserr.MalformedPayload, "AP axis_height out of range", 2)
		}
		return &AxisFirstHeight{
			Smbyte:     2,
			VAxis:      p[0],
			AxisHeight: axisHeight,
			VMaxHeight: wire.ParseDigit2(p, 4),
			HMinHeight: wire.ParseDigit2(p, 6),
			LMaxHeight: wire.ParseDigit2(p, 8),
		}, nil
	default:
		return nil, mapserr.New(mapserr.MalformedPayload, "AP payload must be 2 or 10 bytes")
	}
}

// EncodeAP is the inverse of DecodeAP; a.Smbyte selects the form.
func EncodeAP(a *AxisFirstHeight) ([]byte, error) {
	if a == nil {
		return nil, mapserr.New(mapserr.InvalidArgument, "AP payload required")
	}
	clamp := func(v uint8) uint8 {
		if v > 99 {
			return 99
		}
		return v
	}
	if a.Smbyte < 2 {
		b := wire.NewBuilder(2)
		b.Digit2(clamp(a.VHeight))
		return b.Built(), nil
	}
	if a.VAxis != 0 && a.VAxis != 'N' && a.VAxis != 'P' {
		return nil, mapserr.New(mapserr.InvalidArgument, "AP vaxis invalid")
	}
	ah := a.AxisHeight
	if ah > 15 {
		ah = 15
	}
	vaxis := a.VAxis
	if vaxis == 0 {
		vaxis = '0'
	}
	b := wire.NewBuilder(10)
	b.Byte(vaxis).Byte('0').Digit2(ah).Digit2(clamp(a.VMaxHeight)).Digit2(clamp(a.HMinHeight)).Digit2(clamp(a.LMaxHeight))
	return b.Built(), nil
}
