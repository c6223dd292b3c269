package cellkit

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/hupe1980/cellkit/cell"
	"github.com/hupe1980/cellkit/codec"
	"github.com/hupe1980/cellkit/comparator"
)

// FilterSpec is a declarative description of a Filter, suitable for configuration
// files. A spec is either a field filter (Field, Op, Comparator and a pattern) or a
// list (List and Filters).
//
// For a long comparator the pattern is given as Long. Every other comparator takes
// Pattern verbatim, or PatternBase64 for patterns that are not valid UTF-8 (binary
// row keys, bit masks); text codecs cannot carry those bytes in Pattern.
//
//	{"list": "all", "filters": [
//	  {"field": "row", "op": "greater_or_equal", "comparator": "binary", "pattern": "row1"},
//	  {"field": "family", "op": "equal", "comparator": "substring", "pattern": "cf"}
//	]}
type FilterSpec struct {
	Field         string       `json:"field,omitempty" yaml:"field,omitempty"`
	Op            string       `json:"op,omitempty" yaml:"op,omitempty"`
	Comparator    string       `json:"comparator,omitempty" yaml:"comparator,omitempty"`
	Pattern       string       `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	PatternBase64 Base64       `json:"pattern_base64,omitempty" yaml:"pattern_base64,omitempty"`
	Long          *int64       `json:"long,omitempty" yaml:"long,omitempty"`
	List          string       `json:"list,omitempty" yaml:"list,omitempty"`
	Filters       []FilterSpec `json:"filters,omitempty" yaml:"filters,omitempty"`
}

// Base64 is a byte string encoded as standard base64 text by every codec.
type Base64 []byte

// MarshalText implements encoding.TextMarshaler.
func (b Base64) MarshalText() ([]byte, error) {
	out := make([]byte, base64.StdEncoding.EncodedLen(len(b)))
	base64.StdEncoding.Encode(out, b)
	return out, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Base64) UnmarshalText(text []byte) error {
	out := make([]byte, base64.StdEncoding.DecodedLen(len(text)))
	n, err := base64.StdEncoding.Decode(out, text)
	if err != nil {
		return fmt.Errorf("cellkit: pattern_base64: %w", err)
	}
	*b = out[:n]
	return nil
}

// Build turns the spec into a Filter.
func (s FilterSpec) Build() (Filter, error) {
	if s.List != "" || len(s.Filters) > 0 {
		return s.buildList()
	}

	f, err := cell.ParseField(s.Field)
	if err != nil {
		return nil, err
	}
	op, err := ParseCompareOp(s.Op)
	if err != nil {
		return nil, err
	}
	kind, err := comparator.ParseKind(s.Comparator)
	if err != nil {
		return nil, err
	}

	var cmp comparator.Comparator
	if kind == comparator.KindLong {
		if s.Long == nil {
			return nil, errors.New("cellkit: long comparator needs a long pattern")
		}
		cmp = comparator.NewLong(*s.Long)
	} else {
		pattern, err := s.pattern()
		if err != nil {
			return nil, err
		}
		cmp, err = comparator.New(kind, pattern)
		if err != nil {
			return nil, err
		}
	}
	return NewFieldFilter(f, op, cmp)
}

func (s FilterSpec) pattern() ([]byte, error) {
	if s.PatternBase64 != nil {
		if s.Pattern != "" {
			return nil, errors.New("cellkit: pattern and pattern_base64 are exclusive")
		}
		return s.PatternBase64, nil
	}
	return []byte(s.Pattern), nil
}

func (s FilterSpec) buildList() (Filter, error) {
	var op ListOp
	switch s.List {
	case "", "all":
		op = MustPassAll
	case "one":
		op = MustPassOne
	default:
		return nil, fmt.Errorf("cellkit: unknown filter list %q", s.List)
	}

	filters := make([]Filter, 0, len(s.Filters))
	for i, child := range s.Filters {
		f, err := child.Build()
		if err != nil {
			return nil, fmt.Errorf("cellkit: filter %d: %w", i, err)
		}
		filters = append(filters, f)
	}
	return NewFilterList(op, filters...), nil
}

// ParseFilterSpec decodes a FilterSpec with c (codec.Default if nil) and builds it.
func ParseFilterSpec(data []byte, c codec.Codec) (Filter, error) {
	if c == nil {
		c = codec.Default
	}
	var s FilterSpec
	if err := c.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("cellkit: decode filter spec (%s): %w", c.Name(), err)
	}
	return s.Build()
}
