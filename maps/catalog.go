// Package maps builds and parses MAPS frames: the SOH/CR-delimited ASCII
// serial protocol spoken by CF-24P, CF-150, and CF-220/M vehicle-detection
// barriers. Build* functions assemble a wire frame for a given command;
// Parse decodes one back into a typed payload, dispatching through the
// command catalog in this file.
package maps

import "github.com/gavajc/MapsProto/maps/payload"

// BarrierMask is the 3-bit family-support bitmask carried by each
// descriptor entry (spec.md §4.2). It is informational only - the codec
// never enforces it; callers that care about cross-family compatibility
// consult it themselves.
type BarrierMask uint8

const (
	CF24P BarrierMask = 1 << iota
	CF150
	CF220
)

// supportFlags is the 3-bit "supports" mask from spec.md §4.2: which of
// {unknown-ok, empty-request-ok, empty-response-ok} are legal for this
// command. Only the empty-request/empty-response bits are enforced by the
// framer; unknown-ok is documentation, reproduced here for catalog parity
// with spec.md §6's R/S/U notation.
type supportFlags uint8

const (
	EmptyResponseOK supportFlags = 1 << iota
	EmptyRequestOK
	SupportsUnknown
)

// decodeFunc adapts a per-command typed decoder to a common shape the
// descriptor table can hold. Built with wrapDecode below.
type decodeFunc func(payload []byte) (any, error)

func wrapDecode[T any](f func([]byte) (T, error)) decodeFunc {
	return func(p []byte) (any, error) {
		v, err := f(p)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

// descriptor is one row of the command catalog: spec.md §4.2's static,
// read-only registry keyed by two-letter mnemonic.
type descriptor struct {
	cmd            CommandTag
	barriers       BarrierMask
	supports       supportFlags
	decodeRequest  decodeFunc
	decodeResponse decodeFunc
}

func (d *descriptor) emptyRequestOK() bool  { return d.supports&EmptyRequestOK != 0 }
func (d *descriptor) emptyResponseOK() bool { return d.supports&EmptyResponseOK != 0 }

func noData(p []byte) (any, error) {
	_, err := payload.DecodeNoData(p)
	return nil, err
}

// catalog is populated once at package init, the same pattern as the
// teacher's package-level infoObjSize map (asdu/identifier.go) - a
// read-only table safe for unsynchronized concurrent reads because it is
// never written again after init.
var catalog map[CommandTag]*descriptor

func init() {
	rows := []*descriptor{
		{cmd: "BR", barriers: CF220 | CF150 | CF24P, supports: SupportsUnknown | EmptyResponseOK,
			decodeRequest:  func(p []byte) (any, error) { v, err := payload.DecodeSingle(p, true); return v, err },
			decodeResponse: noData},
		{cmd: "CA", barriers: CF220, supports: SupportsUnknown | EmptyResponseOK,
			decodeRequest: wrapDecode(payload.DecodeCA), decodeResponse: noData},
		{cmd: "DE", barriers: CF220 | CF150 | CF24P, supports: EmptyRequestOK,
			decodeRequest: noData, decodeResponse: wrapDecode(payload.DecodeDE)},
		{cmd: "EA", barriers: CF220 | CF24P, supports: SupportsUnknown | EmptyRequestOK,
			decodeRequest: noData, decodeResponse: wrapDecode(payload.DecodeEA)},
		{cmd: "ER", barriers: CF220 | CF24P, supports: 0,
			decodeRequest:  func(p []byte) (any, error) { v, err := payload.DecodeDual(p, 1, 24); return v, err },
			decodeResponse: func(p []byte) (any, error) { v, err := payload.DecodeSingle(p, false); return v, err }},
		{cmd: "FA", barriers: CF220 | CF150 | CF24P, supports: EmptyRequestOK | EmptyResponseOK,
			decodeRequest: noData, decodeResponse: noData},
		{cmd: "MV", barriers: CF220 | CF150 | CF24P, supports: EmptyRequestOK | EmptyResponseOK,
			decodeRequest: noData, decodeResponse: noData},
		{cmd: "PA", barriers: CF220 | CF150 | CF24P, supports: EmptyRequestOK | EmptyResponseOK,
			decodeRequest: noData, decodeResponse: noData},
		{cmd: "AC", barriers: CF220 | CF150 | CF24P, supports: EmptyRequestOK | EmptyResponseOK,
			decodeRequest: noData, decodeResponse: noData},
		{cmd: "PR", barriers: CF220, supports: EmptyResponseOK,
			decodeRequest:  func(p []byte) (any, error) { v, err := payload.DecodeDual(p, 0, 99); return v, err },
			decodeResponse: noData},
		{cmd: "RF", barriers: CF220 | CF150 | CF24P, supports: EmptyRequestOK | EmptyResponseOK,
			decodeRequest: noData, decodeResponse: noData},
		{cmd: "SC", barriers: CF220 | CF24P, supports: SupportsUnknown | EmptyResponseOK,
			decodeRequest: wrapDecode(payload.DecodeSC), decodeResponse: noData},
		{cmd: "SM", barriers: CF220 | CF150 | CF24P, supports: EmptyResponseOK,
			decodeRequest: wrapDecode(payload.DecodeSM), decodeResponse: noData},
		{cmd: "SR", barriers: CF220, supports: EmptyResponseOK,
			decodeRequest:  func(p []byte) (any, error) { v, err := payload.DecodeDual(p, 3, 10); return v, err },
			decodeResponse: func(p []byte) (any, error) { v, err := payload.DecodeDual(p, 3, 10); return v, err }},
		{cmd: "TT", barriers: CF220 | CF150 | CF24P, supports: SupportsUnknown | EmptyRequestOK,
			decodeRequest: noData, decodeResponse: wrapDecode(payload.DecodeTT)},
		{cmd: "RH", barriers: CF24P, supports: 0,
			decodeRequest: wrapDecode(payload.DecodeRH), decodeResponse: wrapDecode(payload.DecodeRH)},
		{cmd: "CB", barriers: CF150, supports: EmptyRequestOK,
			decodeRequest: noData, decodeResponse: func(p []byte) (any, error) { v, err := payload.DecodeSingle(p, false); return v, err }},

		// FAS is the only synthetic dispatch-only tag that goes through the
		// ordinary descriptor lookup: Parse rewrites a payload-carrying "FA"
		// request to "FAS" before looking it up here (spec.md §4.7). PAS and
		// SCS are recognized and decoded directly by their fixed frame
		// lengths (parsePAS/parseSCSpecial in frame.go) without ever
		// consulting this table, since they have no two-letter mnemonic on
		// the wire to key a row by.
		{cmd: "FAS", barriers: CF220 | CF150, supports: EmptyResponseOK,
			decodeRequest: wrapDecode(payload.DecodeEndVehicle), decodeResponse: noData},

		{cmd: "AJ", barriers: CF220 | CF150 | CF24P, supports: EmptyResponseOK,
			decodeRequest: wrapDecode(payload.DecodeAJ), decodeResponse: noData},
		{cmd: "AP", barriers: CF220 | CF150 | CF24P, supports: EmptyResponseOK,
			decodeRequest: wrapDecode(payload.DecodeAP), decodeResponse: noData},
		{cmd: "EJ", barriers: CF220, supports: EmptyResponseOK,
			decodeRequest: wrapDecode(payload.DecodeEJ), decodeResponse: noData},
		{cmd: "EM", barriers: CF220 | CF150 | CF24P, supports: EmptyResponseOK,
			decodeRequest: wrapDecode(payload.DecodeEM), decodeResponse: noData},
		{cmd: "FP", barriers: CF24P, supports: EmptyRequestOK | EmptyResponseOK,
			decodeRequest: noData, decodeResponse: noData},
		{cmd: "FR", barriers: CF220 | CF150, supports: EmptyResponseOK,
			decodeRequest: wrapDecode(payload.DecodeEndVehicle), decodeResponse: noData},
		{cmd: "FX", barriers: CF220 | CF150 | CF24P, supports: EmptyResponseOK,
			decodeRequest: wrapDecode(payload.DecodeFailure), decodeResponse: noData},
		{cmd: "IP", barriers: CF24P, supports: EmptyRequestOK | EmptyResponseOK,
			decodeRequest: noData, decodeResponse: noData},
		{cmd: "IA", barriers: CF220 | CF150, supports: EmptyRequestOK | EmptyResponseOK,
			decodeRequest: wrapDecode(payload.DecodeIARM), decodeResponse: noData},
		{cmd: "IR", barriers: CF220 | CF150, supports: EmptyRequestOK | EmptyResponseOK,
			decodeRequest: noData, decodeResponse: noData},
		{cmd: "PX", barriers: CF220 | CF150 | CF24P, supports: EmptyResponseOK,
			decodeRequest: wrapDecode(payload.DecodeFailure), decodeResponse: noData},
		{cmd: "RE", barriers: CF220 | CF150 | CF24P, supports: EmptyRequestOK | EmptyResponseOK,
			decodeRequest: wrapDecode(payload.DecodeRE), decodeResponse: noData},
		{cmd: "RM", barriers: CF220 | CF150, supports: EmptyRequestOK | EmptyResponseOK,
			decodeRequest: wrapDecode(payload.DecodeIARM), decodeResponse: noData},
	}

	catalog = make(map[CommandTag]*descriptor, len(rows))
	for _, d := range rows {
		catalog[d.cmd] = d
	}
}

func lookup(cmd CommandTag) (*descriptor, bool) {
	d, ok := catalog[cmd]
	return d, ok
}
