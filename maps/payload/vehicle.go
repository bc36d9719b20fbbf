package payload

import (
	"github.com/gavajc/MapsProto/maps/mapserr"
	"github.com/gavajc/MapsProto/maps/wire"
)

func validVehicleClass(b byte) bool {
	return b == 'M' || b == 'X' || (b >= 'A' && b <= 'F')
}

// EndVehicle is the FA-spontaneous (reported as FAS)/FR payload: an
// end-of-vehicle summary whose shape is selected by Smb (1, 2, or 3).
// Smb==3 carries only axle counts; Smb==1 adds a vehicle class byte;
// Smb==2 is the CF-220 long form with three more axle-count pairs (at
// 10cm, 16cm, 22cm) plus the class byte.
type EndVehicle struct {
	Smb    uint8
	PAxes  uint8
	NAxes  uint8
	VClass byte // absent (0) when Smb == 3

	PAxes10, NAxes10 uint8 // Smb == 2 only
	PAxes16, NAxes16 uint8
	PAxes22, NAxes22 uint8
}

// DecodeEndVehicle decodes an FA-spontaneous/FR payload: length 4 (Smb 3,
// no class byte), 5 (Smb 1), or 17 (Smb 2, CF-220 long form).
func DecodeEndVehicle(p []byte) (*EndVehicle, error) {
	switch len(p) {
	case 4, 5, 17:
	default:
		return nil, mapserr.New(mapserr.MalformedPayload, "EndVehicle payload must be 4, 5, or 17 bytes")
	}
	for i := 0; i < 4; i++ {
		if !wire.IsDigit(p[i]) {
			return nil, mapserr.At(mapserr.MalformedPayload, "EndVehicle axle count not digit", i)
		}
	}
	v := &EndVehicle{
		PAxes: wire.ParseDigit2(p, 0),
		NAxes: wire.ParseDigit2(p, 2),
	}
	switch len(p) {
	case 4:
		v.Smb = 3
	case 5:
		if !validVehicleClass(p[4]) {
			return nil, mapserr.At(mapserr.MalformedPayload, "EndVehicle vehicle class invalid", 4)
		}
		v.Smb = 1
		v.VClass = p[4]
	case 17:
		for i := 4; i < 16; i++ {
			if !wire.IsDigit(p[i]) {
				return nil, mapserr.At(mapserr.MalformedPayload, "EndVehicle axle count not digit", i)
			}
		}
		if !validVehicleClass(p[16]) {
			return nil, mapserr.At(mapserr.MalformedPayload, "EndVehicle vehicle class invalid", 16)
		}
		v.Smb = 2
		v.PAxes10, v.NAxes10 = wire.ParseDigit2(p, 4), wire.ParseDigit2(p, 6)
		v.PAxes16, v.NAxes16 = wire.ParseDigit2(p, 8), wire.ParseDigit2(p, 10)
		v.PAxes22, v.NAxes22 = wire.ParseDigit2(p, 12), wire.ParseDigit2(p, 14)
		v.VClass = p[16]
	}
	return v, nil
}

// EncodeEndVehicle is the inverse of DecodeEndVehicle; out-of-range axle
// counts clamp to 99, matching MapsProtoCreateEndVehicleRequest.
func EncodeEndVehicle(v *EndVehicle) ([]byte, error) {
	if v == nil || v.Smb < 1 || v.Smb > 3 {
		return nil, mapserr.New(mapserr.InvalidArgument, "EndVehicle smb must be 1, 2, or 3")
	}
	if v.Smb != 3 && !validVehicleClass(v.VClass) {
		return nil, mapserr.New(mapserr.InvalidArgument, "EndVehicle vehicle class invalid")
	}
	clamp := func(x uint8) uint8 {
		if x > 99 {
			return 99
		}
		return x
	}
	b := wire.NewBuilder(17)
	b.Digit2(clamp(v.PAxes)).Digit2(clamp(v.NAxes))
	switch v.Smb {
	case 1:
		b.Byte(v.VClass)
	case 2:
		b.Digit2(clamp(v.PAxes10)).Digit2(clamp(v.NAxes10))
		b.Digit2(clamp(v.PAxes16)).Digit2(clamp(v.NAxes16))
		b.Digit2(clamp(v.PAxes22)).Digit2(clamp(v.NAxes22))
		b.Byte(v.VClass)
	}
	return b.Built(), nil
}

// Failure is the FX/PX payload.
type Failure struct {
	Type    byte // 'R' or 'E'
	NGroup  uint8
	NSensor uint8
}

// DecodeFailure decodes an FX/PX payload: fixed length 3.
func DecodeFailure(p []byte) (*Failure, error) {
	if len(p) != 3 {
		return nil, mapserr.New(mapserr.MalformedPayload, "failure payload must be 3 bytes")
	}
	if p[0] != 'R' && p[0] != 'E' {
		return nil, mapserr.At(mapserr.MalformedPayload, "failure type invalid", 0)
	}
	if !wire.IsDigit(p[1]) || p[1]-'0' > 8 {
		return nil, mapserr.At(mapserr.MalformedPayload, "failure ngroup out of range", 1)
	}
	if !wire.IsDigit(p[2]) || p[2]-'0' > 8 {
		return nil, mapserr.At(mapserr.MalformedPayload, "failure nsensor out of range", 2)
	}
	return &Failure{Type: p[0], NGroup: p[1] - '0', NSensor: p[2] - '0'}, nil
}

// EncodeFailure is the inverse of DecodeFailure.
func EncodeFailure(f *Failure) ([]byte, error) {
	if f == nil || (f.Type != 'R' && f.Type != 'E') || f.NGroup > 8 || f.NSensor > 8 {
		return nil, mapserr.New(mapserr.InvalidArgument, "failure payload requires type R/E and counts 0..8")
	}
	b := wire.NewBuilder(3)
	b.Byte(f.Type).Digit(f.NGroup).Digit(f.NSensor)
	return b.Built(), nil
}

// AnomalyLimits is the CA-request payload: two sensor counts.
type AnomalyLimits struct {
	CASensors uint8
	DASensors uint8
}

// DecodeCA decodes a CA-request payload: fixed length 4.
func DecodeCA(p []byte) (*AnomalyLimits, error) {
	if len(p) != 4 {
		return nil, mapserr.New(mapserr.MalformedPayload, "CA payload must be 4 bytes")
	}
	for i := 0; i < 4; i++ {
		if !wire.IsDigit(p[i]) {
			return nil, mapserr.At(mapserr.MalformedPayload, "CA field not digit", i)
		}
	}
	return &AnomalyLimits{CASensors: wire.ParseDigit2(p, 0), DASensors: wire.ParseDigit2(p, 2)}, nil
}

// EncodeCA is the inverse of DecodeCA.
func EncodeCA(a *AnomalyLimits) ([]byte, error) {
	if a == nil {
		return nil, mapserr.New(mapserr.InvalidArgument, "CA payload required")
	}
	b := wire.NewBuilder(4)
	b.Digit2(a.CASensors).Digit2(a.DASensors)
	return b.Built(), nil
}
