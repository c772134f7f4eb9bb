package broadlink

import "fmt"

type model struct {
	name string
	rm4  bool
}

// IR-capable models. RM4-class devices frame IR payloads with a length prefix.
var models = map[uint16]model{
	0x2737: {"RM mini", false},
	0x278f: {"RM mini", false},
	0x27c2: {"RM mini 3", false},
	0x27c7: {"RM mini 3", false},
	0x27cc: {"RM mini 3", false},
	0x27cd: {"RM mini 3", false},
	0x27d0: {"RM mini 3", false},
	0x27d1: {"RM mini 3", false},
	0x27d3: {"RM mini 3", false},
	0x27dc: {"RM mini 3", false},
	0x27de: {"RM mini 3", false},
	0x272a: {"RM pro", false},
	0x2787: {"RM pro", false},
	0x278b: {"RM plus", false},
	0x2797: {"RM pro+", false},
	0x279d: {"RM pro+", false},
	0x27a1: {"RM plus", false},
	0x27a6: {"RM plus", false},
	0x27a9: {"RM pro+", false},
	0x27c3: {"RM pro+", false},
	0x51da: {"RM4 mini", true},
	0x5209: {"RM4 TV mate", true},
	0x520c: {"RM4 mini", true},
	0x520d: {"RM4C mini", true},
	0x5211: {"RM4C mate", true},
	0x5212: {"RM4 TV mate", true},
	0x5213: {"RM4 pro", true},
	0x5216: {"RM4 mini", true},
	0x5218: {"RM4C pro", true},
	0x6026: {"RM4 pro", true},
	0x6070: {"RM4C mini", true},
	0x610e: {"RM4 mini", true},
	0x610f: {"RM4C mini", true},
	0x6184: {"RM4C pro", true},
	0x61a2: {"RM4 pro", true},
	0x62bc: {"RM4 mini", true},
	0x62be: {"RM4C mini", true},
	0x6364: {"RM4S", true},
	0x648d: {"RM4 mini", true},
	0x649b: {"RM4 pro", true},
	0x6539: {"RM4C mini", true},
	0x653a: {"RM4 mini", true},
	0x653c: {"RM4 pro", true},
}

// ModelName returns a display name for a device type.
func ModelName(devType uint16) string {
	if m, ok := models[devType]; ok {
		return m.name
	}
	return fmt.Sprintf("unknown (0x%04x)", devType)
}

// SupportsIR reports whether devType is a known IR transceiver.
func SupportsIR(devType uint16) bool {
	_, ok := models[devType]
	return ok
}

func isRM4(devType uint16) bool {
	return models[devType].rm4
}
