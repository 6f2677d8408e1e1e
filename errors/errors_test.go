package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:        PhaseClassify,
				Kind:         KindTypeMismatch,
				Path:         []string{"Products(1)", "Price", "$value"},
				GoType:       "string",
				DeclaredType: "f64",
				Detail:       "cannot convert",
			},
			contains: []string{"[classify]", "type_mismatch", "Products(1)/Price/$value", "string", "f64", "cannot convert"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseFormat,
				Kind:  KindUnsupported,
			},
			contains: []string{"[format]", "unsupported"},
		},
		{
			name: "declared type only",
			err: &Error{
				Phase:        PhaseClassify,
				Kind:         KindNullValue,
				DeclaredType: "option<s32>",
				Detail:       "null",
			},
			contains: []string{"declared type option<s32> - null"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseWrite,
				Kind:   KindWriteFailed,
				Detail: "sink closed",
				Cause:  errors.New("broken pipe"),
			},
			contains: []string{"[write]", "write_failed", "sink closed", "caused by", "broken pipe"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := WriteFailed(cause)

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseClassify,
		Kind:  KindTypeMismatch,
		Path:  []string{"foo"},
	}

	if !err.Is(&Error{Phase: PhaseClassify, Kind: KindTypeMismatch}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseFormat, Kind: KindTypeMismatch}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseClassify, Kind: KindOverflow}) {
		t.Error("Is should not match different kind")
	}
	if !err.Is(&Error{Kind: KindTypeMismatch}) {
		t.Error("Is should match any phase when target phase is empty")
	}

	target := &Error{Phase: PhaseClassify, Kind: KindTypeMismatch}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseClassify, KindTypeMismatch).
		Path("Orders", "$count").
		GoType("string").
		DeclaredType("u32").
		Value(42).
		Cause(cause).
		Detail("expected %s, got %s", "integer", "string").
		Build()

	if err.Phase != PhaseClassify {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseClassify)
	}
	if err.Kind != KindTypeMismatch {
		t.Errorf("Kind = %v, want %v", err.Kind, KindTypeMismatch)
	}
	if len(err.Path) != 2 || err.Path[0] != "Orders" || err.Path[1] != "$count" {
		t.Errorf("Path = %v, want [Orders $count]", err.Path)
	}
	if err.GoType != "string" {
		t.Errorf("GoType = %v, want 'string'", err.GoType)
	}
	if err.DeclaredType != "u32" {
		t.Errorf("DeclaredType = %v, want 'u32'", err.DeclaredType)
	}
	if err.Value != 42 {
		t.Errorf("Value = %v, want 42", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected integer, got string" {
		t.Errorf("Detail = %v, want 'expected integer, got string'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("TypeMismatch", func(t *testing.T) {
		err := TypeMismatch(PhaseClassify, "int", "string")
		if err.Kind != KindTypeMismatch {
			t.Errorf("Kind = %v, want %v", err.Kind, KindTypeMismatch)
		}
		if err.GoType != "int" || err.DeclaredType != "string" {
			t.Errorf("GoType=%v DeclaredType=%v", err.GoType, err.DeclaredType)
		}
	})

	t.Run("Unsupported", func(t *testing.T) {
		err := Unsupported(PhaseFormat, "record values")
		if err.Kind != KindUnsupported {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnsupported)
		}
	})

	t.Run("NullValue", func(t *testing.T) {
		err := NullValue(PhaseClassify, "option<s32>")
		if err.Kind != KindNullValue {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNullValue)
		}
		if err.DeclaredType != "option<s32>" {
			t.Errorf("DeclaredType = %v", err.DeclaredType)
		}
	})

	t.Run("Overflow", func(t *testing.T) {
		err := Overflow(PhaseClassify, 300, "u8")
		if err.Kind != KindOverflow {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOverflow)
		}
		if err.Value != 300 {
			t.Errorf("Value = %v, want 300", err.Value)
		}
		if !strings.Contains(err.Detail, "300") {
			t.Errorf("Detail = %v, should contain value", err.Detail)
		}
	})

	t.Run("InvalidInput", func(t *testing.T) {
		err := InvalidInput(PhaseCount, "negative count")
		if err.Kind != KindInvalidInput {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidInput)
		}
	})

	t.Run("InvalidEnum", func(t *testing.T) {
		err := InvalidEnum(PhaseConfig, "Color", "duplicate member")
		if err.Kind != KindInvalidEnum {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidEnum)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		err := NotFound(PhaseParse, "type", "Shape")
		if err.Kind != KindNotFound {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNotFound)
		}
		if !strings.Contains(err.Detail, `"Shape"`) {
			t.Errorf("Detail = %v", err.Detail)
		}
	})

	t.Run("ParseFailed", func(t *testing.T) {
		cause := errors.New("bad digit")
		err := ParseFailed("s32 value", cause)
		if err.Phase != PhaseParse || err.Kind != KindInvalidInput {
			t.Errorf("Phase=%v Kind=%v", err.Phase, err.Kind)
		}
		if !errors.Is(err, cause) {
			t.Error("errors.Is should reach cause")
		}
	})
}
