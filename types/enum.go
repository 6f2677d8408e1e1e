package types

import (
	"sort"
	"strconv"
	"strings"

	"github.com/wippyai/rawvalue/errors"
)

// Member is a named enum value. For flags types each member names one or
// more bits.
type Member struct {
	Name  string `yaml:"name"`
	Value uint64 `yaml:"value"`
}

// EnumType is the compiled member table of an enum or flags type. It is
// immutable after NewEnumType and safe for concurrent use.
type EnumType struct {
	byValue   map[uint64]int // value -> first declaring member index
	Name      string
	Members   []Member
	desc      []int // member indexes by descending value, zero excluded
	zeroIndex int   // -1 when no member has value 0
	Flags     bool
}

// NewEnumType validates the member list and precomputes lookup tables.
func NewEnumType(name string, flags bool, members ...Member) (*EnumType, error) {
	if len(members) == 0 {
		return nil, errors.InvalidEnum(errors.PhaseConfig, name, "no members declared")
	}

	e := &EnumType{
		Name:      name,
		Flags:     flags,
		Members:   append([]Member(nil), members...),
		byValue:   make(map[uint64]int, len(members)),
		zeroIndex: -1,
	}

	seen := make(map[string]struct{}, len(members))
	for i, m := range e.Members {
		if m.Name == "" {
			return nil, errors.InvalidEnum(errors.PhaseConfig, name, "member "+strconv.Itoa(i)+" has no name")
		}
		if _, dup := seen[m.Name]; dup {
			return nil, errors.InvalidEnum(errors.PhaseConfig, name, "duplicate member "+strconv.Quote(m.Name))
		}
		seen[m.Name] = struct{}{}

		if _, ok := e.byValue[m.Value]; !ok {
			e.byValue[m.Value] = i
		}
		if m.Value == 0 {
			if e.zeroIndex < 0 {
				e.zeroIndex = i
			}
			continue
		}
		e.desc = append(e.desc, i)
	}

	sort.SliceStable(e.desc, func(a, b int) bool {
		return e.Members[e.desc[a]].Value > e.Members[e.desc[b]].Value
	})

	return e, nil
}

// MustEnumType is NewEnumType for package-level declarations.
func MustEnumType(name string, flags bool, members ...Member) *EnumType {
	e, err := NewEnumType(name, flags, members...)
	if err != nil {
		panic(err)
	}
	return e
}

// Member returns the member declared with the given name.
func (e *EnumType) Member(name string) (Member, bool) {
	for _, m := range e.Members {
		if m.Name == name {
			return m, true
		}
	}
	return Member{}, false
}

// Format renders bits as member names. Values without a member-name form
// fall back to the underlying integer, printed signed when signed is set.
func (e *EnumType) Format(bits uint64, signed bool) string {
	if s, ok := e.Names(bits); ok {
		return s
	}
	if signed {
		return strconv.FormatInt(int64(bits), 10)
	}
	return strconv.FormatUint(bits, 10)
}

// Names returns the member-name form of bits, if one exists.
func (e *EnumType) Names(bits uint64) (string, bool) {
	if !e.Flags || bits == 0 {
		if i, ok := e.byValue[bits]; ok {
			return e.Members[i].Name, true
		}
		return "", false
	}

	// Largest members first so composite members win over their parts.
	remaining := bits
	picked := make([]bool, len(e.Members))
	for _, i := range e.desc {
		v := e.Members[i].Value
		if remaining&v == v {
			remaining &^= v
			picked[i] = true
			if remaining == 0 {
				break
			}
		}
	}
	if remaining != 0 {
		return "", false
	}

	var b strings.Builder
	for i, ok := range picked {
		if !ok {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.Members[i].Name)
	}
	return b.String(), true
}
