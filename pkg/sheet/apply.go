package sheet

import (
	"fmt"

	"github.com/dkoosis/stylo/pkg/theme"
)

// Mode selects how sheet entries are registered.
type Mode int

const (
	// ModeSet replaces any existing producer.
	ModeSet Mode = iota
	// ModeExtend layers the entry over an existing producer.
	ModeExtend
)

func (m Mode) String() string {
	switch m {
	case ModeSet:
		return "set"
	case ModeExtend:
		return "extend"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Producer returns a producer that always yields st.
func Producer(st *theme.Style) theme.Producer {
	return func(theme.Resolver, theme.Modifiers) (*theme.Style, error) {
		return st, nil
	}
}

// Apply registers every entry of s on th in sheet order.
func Apply(th *theme.Theme, s *Sheet, mode Mode) {
	for _, name := range s.names {
		p := Producer(s.styles[name])
		if mode == ModeExtend {
			th.ExtendSource(name, p)
			continue
		}
		th.SetSource(name, p)
	}
}

// LoadInto loads sheets in order and layers them onto th: each later sheet
// extends the entries of the earlier ones key by key.
func LoadInto(th *theme.Theme, paths ...string) error {
	for _, path := range paths {
		s, err := Load(path)
		if err != nil {
			return err
		}
		Apply(th, s, ModeExtend)
	}
	return nil
}
