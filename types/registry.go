package types

import (
	"reflect"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/rawvalue/errors"
)

// Registry maps Go named integer types and type names to enum tables.
// Safe for concurrent use.
type Registry struct {
	byType sync.Map // reflect.Type -> *EnumType
	byName sync.Map // string -> *EnumType
}

func NewRegistry() *Registry {
	return &Registry{}
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry used by RegisterEnum.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register binds e to goType (which may be nil for name-only enums).
func (r *Registry) Register(goType reflect.Type, e *EnumType) error {
	if e == nil {
		return errors.InvalidInput(errors.PhaseConfig, "nil enum type")
	}
	if goType != nil {
		switch goType.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		default:
			return errors.New(errors.PhaseConfig, errors.KindTypeMismatch).
				GoType(goType.String()).
				DeclaredType(e.Name).
				Detail("enum types must have an integer underlying type").
				Build()
		}
		r.byType.Store(goType, e)
	}
	if e.Name != "" {
		r.byName.Store(e.Name, e)
	}
	goName := "<none>"
	if goType != nil {
		goName = goType.String()
	}
	Logger().Debug("enum registered",
		zap.String("enum", e.Name),
		zap.String("goType", goName),
		zap.Bool("flags", e.Flags),
		zap.Int("members", len(e.Members)))
	return nil
}

// Lookup returns the enum bound to goType.
func (r *Registry) Lookup(goType reflect.Type) (*EnumType, bool) {
	if v, ok := r.byType.Load(goType); ok {
		return v.(*EnumType), true
	}
	return nil, false
}

// LookupName returns the enum registered under name.
func (r *Registry) LookupName(name string) (*EnumType, bool) {
	if v, ok := r.byName.Load(name); ok {
		return v.(*EnumType), true
	}
	return nil, false
}

// Names lists registered enum names in sorted order.
func (r *Registry) Names() []string {
	var names []string
	r.byName.Range(func(k, _ any) bool {
		names = append(names, k.(string))
		return true
	})
	sort.Strings(names)
	return names
}

// Integer is the set of Go types that can back an enum.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// RegisterEnum builds the member table for T once and registers it in the
// default registry.
func RegisterEnum[T Integer](name string, flags bool, members ...Member) (*EnumType, error) {
	e, err := NewEnumType(name, flags, members...)
	if err != nil {
		return nil, err
	}
	if err := defaultRegistry.Register(reflect.TypeFor[T](), e); err != nil {
		return nil, err
	}
	return e, nil
}

// M builds a Member from a typed enum constant.
func M[T Integer](name string, v T) Member {
	return Member{Name: name, Value: uint64(v)}
}
