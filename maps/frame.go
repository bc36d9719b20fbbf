package maps

import (
	"github.com/gavajc/MapsProto/maps/mapserr"
	"github.com/gavajc/MapsProto/maps/payload"
	"github.com/gavajc/MapsProto/maps/wire"
)

func decodePASPayload(raw []byte) (any, error) {
	v, err := payload.DecodePAS(raw)
	return v, err
}

func decodeSCSpecialDEHIPayload(mode byte, p []byte) (any, error) {
	v, err := payload.DecodeScannerSpecialDEHI(mode, p)
	return v, err
}

func decodeSCSpecialABCPayload(mode byte, p []byte) (any, error) {
	v, err := payload.DecodeScannerSpecialABC(mode, p)
	return v, err
}

// ParsedFrame is the result of a successful Parse call: the envelope fields
// plus the decoded payload, typed per-command (see catalog.go's descriptor
// table). Payload is nil for no-data commands; the empty forms of IA, RM
// and RE carry a nil pointer of their payload type instead. The special
// PAS/SCS frames carry their decoded maps (*payload.BarrierAdjust,
// *payload.ScannerSpecial) like any other command.
type ParsedFrame struct {
	Seq       uint8
	Direction Direction
	Cmd       CommandTag
	Payload   any
	Raw       []byte
}

const (
	minFrameLen  = 7 // SOH + seq + 2-letter cmd + 2 hex LRC + CR, the shortest legal frame
	pasFrameLen  = 89
	scsDFrameLen = 13
	scsHFrameLen = 14
)

// buildFrame assembles a standard MAPS envelope: SOH, sequence digit,
// direction tag (RS/NE/none), command mnemonic, payload, LRC (two
// uppercase hex digits), CR. Mirrors MapsProtoCreateFrame's pos-cursor
// assembly, generalized over direction and payload shape.
func buildFrame(seq uint8, dir Direction, cmd CommandTag, body []byte, emptyPayloadOK bool) ([]byte, error) {
	if seq > 9 {
		return nil, mapserr.New(mapserr.InvalidArgument, "sequence number must be 0..9")
	}
	if len(cmd) != 2 {
		return nil, mapserr.New(mapserr.InvalidArgument, "command mnemonic must be two letters")
	}
	if len(body) == 0 && !emptyPayloadOK {
		return nil, mapserr.New(mapserr.InvalidArgument, "empty payload not allowed for this command/direction")
	}

	b := wire.NewBuilder(minFrameLen + len(dir.wireTag()) + len(body))
	b.Byte(wire.SOH).Digit(seq)
	if tag := dir.wireTag(); tag != "" {
		b.Bytes([]byte(tag))
	}
	b.Bytes([]byte(cmd))
	b.Bytes(body)

	checked := b.Built()[1:] // LRC runs over frame[1:size-3]: seq..tag..cmd..payload
	lrc := wire.LRCHex(checked)
	b.Bytes(lrc[:]).Byte(wire.CR)
	return b.Built(), nil
}

// Parse decodes a raw MAPS frame, dispatching on its envelope shape and
// then on its command mnemonic. Implements the same precedence as
// MapsProtoParseFrame: special envelope-less frames (PAS, SCS) are
// recognized by their fixed total length before the standard SOH/seq/LRC/CR
// envelope is even considered.
func Parse(frame []byte) (*ParsedFrame, error) {
	if frame == nil || len(frame) < minFrameLen {
		return nil, mapserr.New(mapserr.BadFrame, "frame too short")
	}

	if len(frame) == pasFrameLen && frame[pasFrameLen-1] == wire.CR {
		return parsePAS(frame)
	}
	if len(frame) == scsDFrameLen && frame[scsDFrameLen-1] == wire.CR {
		return parseSCSpecial(frame)
	}
	if len(frame) == scsHFrameLen && frame[scsHFrameLen-2] == wire.CR && frame[scsHFrameLen-1] == wire.LF {
		return parseSCSpecial(frame)
	}

	return parseStandard(frame)
}

func parsePAS(frame []byte) (*ParsedFrame, error) {
	adj, err := decodePASPayload(frame[:pasFrameLen-1])
	if err != nil {
		return nil, err
	}
	return &ParsedFrame{Direction: Request, Cmd: "PAS", Payload: adj, Raw: frame}, nil
}

func parseSCSpecial(frame []byte) (*ParsedFrame, error) {
	mode := byte('D')
	if len(frame) == scsHFrameLen {
		mode = 'H'
	}
	special, err := decodeSCSpecialDEHIPayload(mode, frame[:12])
	if err != nil {
		return nil, err
	}
	return &ParsedFrame{Direction: Request, Cmd: "SCS", Payload: special, Raw: frame}, nil
}

func parseStandard(frame []byte) (*ParsedFrame, error) {
	size := len(frame)
	numByte := frame[1]
	if !wire.IsDigit(numByte) || numByte-'0' > 9 {
		return nil, mapserr.At(mapserr.BadFrame, "sequence digit out of range", 1)
	}
	seq := numByte - '0'

	gotLRC := frame[size-3 : size-1]
	wantLRC := wire.LRCHex(frame[1 : size-3])
	if gotLRC[0] != wantLRC[0] || gotLRC[1] != wantLRC[1] {
		return nil, mapserr.New(mapserr.ChecksumError, "LRC mismatch")
	}
	if frame[0] != wire.SOH {
		return nil, mapserr.At(mapserr.BadFrame, "missing SOH", 0)
	}
	if frame[size-1] != wire.CR {
		return nil, mapserr.At(mapserr.BadFrame, "missing trailing CR", size-1)
	}
	numByte = frame[1]
	if !wire.IsDigit(numByte) || numByte-'0' > 9 {
		return nil, mapserr.At(mapserr.BadFrame, "sequence digit out of range", 1)
	}
	seq = numByte - '0'

	switch string(frame[2:4]) {
	case "NE":
		if size != 9 {
			return nil, mapserr.New(mapserr.BadFrame, "unknown-command reply must be 9 bytes")
		}
		return &ParsedFrame{Seq: seq, Direction: Unknown, Cmd: CommandTag(frame[4:6]), Raw: frame}, nil

	case "RS":
		if size < 9 {
			return nil, mapserr.New(mapserr.BadFrame, "response frame must be at least 9 bytes")
		}
		cmd := CommandTag(frame[4:6])
		d, ok := lookup(cmd)
		if !ok || d.decodeResponse == nil {
			return nil, mapserr.New(mapserr.UnknownCommand, "no response decoder registered for "+string(cmd))
		}
		decoded, err := d.decodeResponse(frame[6 : size-3])
		if err != nil {
			return nil, err
		}
		return &ParsedFrame{Seq: seq, Direction: Response, Cmd: cmd, Payload: decoded, Raw: frame}, nil

	default:
		cmd := CommandTag(frame[2:4])
		body := frame[4 : size-3]
		if cmd == "SC" && len(body) == 8 {
			special, err := decodeSCSpecialABCPayload('A', body)
			if err != nil {
				return nil, err
			}
			return &ParsedFrame{Seq: seq, Direction: Request, Cmd: "SCS", Payload: special, Raw: frame}, nil
		}
		if cmd == "FA" && size > 7 {
			cmd = "FAS"
		}
		d, ok := lookup(cmd)
		if !ok || d.decodeRequest == nil {
			return nil, mapserr.New(mapserr.UnknownCommand, "no request decoder registered for "+string(cmd))
		}
		decoded, err := d.decodeRequest(body)
		if err != nil {
			return nil, err
		}
		return &ParsedFrame{Seq: seq, Direction: Request, Cmd: cmd, Payload: decoded, Raw: frame}, nil
	}
}
