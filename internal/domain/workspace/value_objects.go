package workspace

import (
	"errors"
	"strings"
)

var ErrInvalidProperty = errors.New(`property must be formatted as "key:value"`)

type Property struct {
	Key   string
	Value string
}

// ParseProperty splits "key:value" at the first colon.
func ParseProperty(s string) (Property, error) {
	key, value, ok := strings.Cut(s, ":")
	if !ok {
		return Property{}, ErrInvalidProperty
	}
	return Property{Key: key, Value: value}, nil
}

func (p Property) String() string {
	return p.Key + ":" + p.Value
}

// Properties keeps insertion order.
type Properties []Property

func (ps Properties) Clone() Properties {
	if ps == nil {
		return nil
	}
	out := make(Properties, len(ps))
	copy(out, ps)
	return out
}

func (ps Properties) Contains(p Property) bool {
	for _, own := range ps {
		if own == p {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every required pair appears verbatim in ps.
func (ps Properties) ContainsAll(required Properties) bool {
	for _, r := range required {
		if !ps.Contains(r) {
			return false
		}
	}
	return true
}
