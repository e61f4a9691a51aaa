package tree

import "fmt"

// Type is the kind of a [Node]. Kind is a property of the tag, not of
// the stored value: traversal admission is decided here and nowhere else.
type Type int

const (
	LeafType Type = iota
	MapType
	SeqType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		LeafType: "Leaf",
		MapType:  "Map",
		SeqType:  "Seq",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Leaf": LeafType,
		"Map":  MapType,
		"Seq":  SeqType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

// Traversable reports whether nodes of this kind have addressable
// children. It is the single admission test used by the navigator and
// by classification to tell containers from leaves.
func (t Type) Traversable() bool {
	switch t {
	case MapType, SeqType:
		return true
	default:
		return false
	}
}
