package types

import (
	"fmt"
	"sync"

	"go.bytecodealliance.org/wit"
	"go.uber.org/zap"

	"github.com/wippyai/rawvalue/errors"
)

// WITCompiler converts WIT model types into descriptors. Enum and flags
// tables are built once per *wit.TypeDef and cached.
type WITCompiler struct {
	cache sync.Map // *wit.TypeDef -> *Descriptor
}

func NewWITCompiler() *WITCompiler {
	return &WITCompiler{}
}

// FromWIT converts t with a shared compiler.
func FromWIT(t wit.Type) (*Descriptor, error) {
	return defaultWITCompiler.Compile(t)
}

var defaultWITCompiler = NewWITCompiler()

func (c *WITCompiler) Compile(t wit.Type) (*Descriptor, error) {
	switch t := t.(type) {
	case wit.Bool:
		return boolDesc, nil
	case wit.U8:
		return u8Desc, nil
	case wit.S8:
		return s8Desc, nil
	case wit.U16:
		return u16Desc, nil
	case wit.S16:
		return s16Desc, nil
	case wit.U32:
		return u32Desc, nil
	case wit.S32:
		return s32Desc, nil
	case wit.U64:
		return u64Desc, nil
	case wit.S64:
		return s64Desc, nil
	case wit.F32:
		return f32Desc, nil
	case wit.F64:
		return f64Desc, nil
	case wit.Char:
		return charDesc, nil
	case wit.String:
		return stringDesc, nil
	case *wit.TypeDef:
		if cached, ok := c.cache.Load(t); ok {
			return cached.(*Descriptor), nil
		}
		d, err := c.compileTypeDef(t)
		if err != nil {
			return nil, err
		}
		c.cache.Store(t, d)
		Logger().Debug("compiled WIT type", zap.String("descriptor", d.String()))
		return d, nil
	default:
		return nil, errors.Unsupported(errors.PhaseParse, fmt.Sprintf("WIT type %T has no raw value form", t))
	}
}

func (c *WITCompiler) compileTypeDef(t *wit.TypeDef) (*Descriptor, error) {
	name := ""
	if t.Name != nil {
		name = *t.Name
	}

	switch kind := t.Kind.(type) {
	case *wit.Option:
		elem, err := c.Compile(kind.Type)
		if err != nil {
			return nil, err
		}
		return Nullable(elem), nil

	case *wit.Enum:
		members := make([]Member, len(kind.Cases))
		for i, ec := range kind.Cases {
			members[i] = Member{Name: ec.Name, Value: uint64(i)}
		}
		e, err := NewEnumType(name, false, members...)
		if err != nil {
			return nil, err
		}
		return Enum(e), nil

	case *wit.Flags:
		if len(kind.Flags) > 64 {
			return nil, errors.InvalidEnum(errors.PhaseParse, name,
				fmt.Sprintf("flags type exceeds maximum 64 flags, got %d", len(kind.Flags)))
		}
		members := make([]Member, len(kind.Flags))
		for i, fl := range kind.Flags {
			members[i] = Member{Name: fl.Name, Value: 1 << uint(i)}
		}
		e, err := NewEnumType(name, true, members...)
		if err != nil {
			return nil, err
		}
		return Enum(e), nil

	case wit.Type:
		// type alias
		return c.Compile(kind)

	default:
		return nil, errors.Unsupported(errors.PhaseParse, fmt.Sprintf("WIT %T has no raw value form", t.Kind))
	}
}
