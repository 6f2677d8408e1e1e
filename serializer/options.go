package serializer

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/wippyai/rawvalue/errors"
	"github.com/wippyai/rawvalue/types"
)

// NullPolicy decides what a null value outside a $count request produces.
type NullPolicy uint8

const (
	// NullReject fails with a null_value error and writes nothing.
	NullReject NullPolicy = iota
	// NullEmpty writes an empty payload.
	NullEmpty
)

func (p NullPolicy) String() string {
	switch p {
	case NullReject:
		return "reject"
	case NullEmpty:
		return "empty"
	}
	return "unknown"
}

// ParseNullPolicy accepts "reject" or "empty", case-insensitively.
// An empty string selects NullReject.
func ParseNullPolicy(s string) (NullPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reject":
		return NullReject, nil
	case "empty":
		return NullEmpty, nil
	}
	return NullReject, errors.New(errors.PhaseConfig, errors.KindInvalidInput).
		Detail("unknown null policy %q (want reject or empty)", s).
		Build()
}

// Options configures serializer behavior.
type Options struct {
	// Location is the observer location datetime values are converted to.
	// nil means time.Local.
	Location *time.Location
	// Logger overrides the package logger.
	Logger *zap.Logger
	// Registry resolves enum types for WriteValue. nil means
	// types.DefaultRegistry().
	Registry   *types.Registry
	NullPolicy NullPolicy
}

// DefaultOptions returns default serializer configuration.
func DefaultOptions() Options {
	return Options{
		Location:   time.Local,
		NullPolicy: NullReject,
	}
}
