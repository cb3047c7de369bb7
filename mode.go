package jsoncompare

import (
	"strings"

	"github.com/pkg/errors"
)

// Mode sets how strict a comparison is along two independent axes:
//   extensible: actual objects may carry keys the expected objects lack
//   strict order: array element order is significant
// only the four preset modes exist, a Mode is a plain value and is never
// modified in place
type Mode struct {
	extensible  bool
	strictOrder bool
}

var (
	// Strict is not extensible and has strict array ordering
	Strict = Mode{extensible: false, strictOrder: true}
	// Lenient is extensible and ignores array ordering
	Lenient = Mode{extensible: true, strictOrder: false}
	// NonExtensible is not extensible and ignores array ordering
	NonExtensible = Mode{extensible: false, strictOrder: false}
	// StrictOrder is extensible and has strict array ordering
	StrictOrder = Mode{extensible: true, strictOrder: true}
)

// Extensible reports whether actual objects may hold extra keys
func (m Mode) Extensible() bool { return m.extensible }

// HasStrictOrder reports whether array order matters
func (m Mode) HasStrictOrder() bool { return m.strictOrder }

// WithExtensible returns the preset with the requested extensibility and the
// same ordering rule as m
func (m Mode) WithExtensible(extensible bool) Mode {
	if extensible {
		if m.strictOrder {
			return StrictOrder
		}
		return Lenient
	}
	if m.strictOrder {
		return Strict
	}
	return NonExtensible
}

// WithStrictOrdering returns the preset with the requested ordering rule and
// the same extensibility as m
func (m Mode) WithStrictOrdering(strictOrder bool) Mode {
	if strictOrder {
		if m.extensible {
			return StrictOrder
		}
		return Strict
	}
	if m.extensible {
		return Lenient
	}
	return NonExtensible
}

func (m Mode) String() string {
	switch m {
	case Strict:
		return "STRICT"
	case Lenient:
		return "LENIENT"
	case NonExtensible:
		return "NON_EXTENSIBLE"
	default:
		return "STRICT_ORDER"
	}
}

// ParseMode reads a mode name. Names are case insensitive and may use
// dashes in place of underscores
func ParseMode(name string) (Mode, error) {
	switch strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(name)), "-", "_") {
	case "STRICT":
		return Strict, nil
	case "LENIENT":
		return Lenient, nil
	case "NON_EXTENSIBLE", "NONEXTENSIBLE":
		return NonExtensible, nil
	case "STRICT_ORDER", "STRICTORDER":
		return StrictOrder, nil
	}
	return Mode{}, errors.Errorf("unknown compare mode %q", name)
}

// UnmarshalText lets a Mode be read from config files
func (m *Mode) UnmarshalText(text []byte) error {
	mode, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// MarshalText writes a Mode's preset name
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
