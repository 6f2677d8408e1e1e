package serializer

import (
	stderrors "errors"

	"go.uber.org/zap"

	"github.com/wippyai/rawvalue"
	"github.com/wippyai/rawvalue/errors"
	"github.com/wippyai/rawvalue/odatapath"
	"github.com/wippyai/rawvalue/types"
	"github.com/wippyai/rawvalue/value"
)

// Serializer writes single scalar values as raw value payloads.
// Immutable after construction; safe for concurrent use.
type Serializer struct {
	log     *zap.Logger
	options Options
}

// New creates a Serializer with the given options.
func New(opts Options) *Serializer {
	if opts.Registry == nil {
		opts.Registry = types.DefaultRegistry()
	}
	log := opts.Logger
	if log == nil {
		log = Logger()
	}
	return &Serializer{
		log:     log.Named("rawvalue"),
		options: opts,
	}
}

// NewWithDefaults creates a Serializer with default options.
func NewWithDefaults() *Serializer {
	return New(DefaultOptions())
}

// Options returns the configuration.
func (s *Serializer) Options() Options {
	return s.options
}

// WriteObject renders v and hands the text to sink in a single WriteRaw call.
//
// When ctx reports a $count path, v is written as a bare non-negative
// integer and declared is ignored (it may be nil). Otherwise v is classified
// against declared, which is required. A null value is handled per
// Options.NullPolicy. On any error nothing is written.
func (s *Serializer) WriteObject(v any, declared *types.Descriptor, sink rawvalue.Sink, ctx odatapath.Context) error {
	return s.write(sink, ctx, func(dst []byte) ([]byte, error) {
		return s.AppendObject(dst, v, declared, ctx)
	})
}

// WriteValue is WriteObject with the declared type inferred from the Go type
// of v (see value.TypeOf). A nil v has no type to infer and is handled as a
// null value per Options.NullPolicy.
func (s *Serializer) WriteValue(v any, sink rawvalue.Sink, ctx odatapath.Context) error {
	if odatapath.IsCountRequest(ctx) {
		return s.WriteObject(v, nil, sink, ctx)
	}
	if v == nil {
		return s.write(sink, ctx, func(dst []byte) ([]byte, error) {
			return s.appendNull(dst, nil, ctx)
		})
	}
	declared, err := value.TypeOfValue(v, s.options.Registry)
	if err != nil {
		return withPath(err, ctx)
	}
	return s.WriteObject(v, declared, sink, ctx)
}

// write renders into a pooled buffer and hands the result to sink once.
func (s *Serializer) write(sink rawvalue.Sink, ctx odatapath.Context, render func([]byte) ([]byte, error)) error {
	if sink == nil {
		return errors.InvalidInput(errors.PhaseWrite, "sink is required")
	}

	buf := getBuf()
	defer putBuf(buf)

	out, err := render((*buf)[:0])
	if err != nil {
		return err
	}
	*buf = out

	if err := sink.WriteRaw(string(out)); err != nil {
		s.log.Warn("sink write failed",
			zap.Int("bytes", len(out)),
			zap.Error(err))
		return withPath(errors.WriteFailed(err), ctx)
	}
	return nil
}

// AppendObject appends the payload WriteObject would write to dst. On error
// dst is returned unchanged.
func (s *Serializer) AppendObject(dst []byte, v any, declared *types.Descriptor, ctx odatapath.Context) ([]byte, error) {
	if odatapath.IsCountRequest(ctx) {
		s.log.Debug("count request, declared type ignored",
			zap.Stringer("path", ctx.Path()),
			zap.Stringer("declared", declared))
		out, err := value.AppendCount(dst, v)
		if err != nil {
			return dst, withPath(err, ctx)
		}
		return out, nil
	}

	if declared == nil {
		return dst, withPath(errors.InvalidInput(errors.PhaseClassify, "declared type is required"), ctx)
	}

	cv, err := value.Classify(v, declared, value.ClassifyOptions{Location: s.options.Location})
	if err != nil {
		return dst, withPath(err, ctx)
	}
	if cv.IsNull() {
		return s.appendNull(dst, declared, ctx)
	}

	s.log.Debug("classified value",
		zap.Stringer("declared", declared),
		zap.Stringer("kind", cv.Kind))

	out, err := value.AppendFormat(dst, cv)
	if err != nil {
		return dst, withPath(err, ctx)
	}
	return out, nil
}

func (s *Serializer) appendNull(dst []byte, declared *types.Descriptor, ctx odatapath.Context) ([]byte, error) {
	switch s.options.NullPolicy {
	case NullEmpty:
		s.log.Debug("null value written as empty payload", zap.Stringer("declared", declared))
		return dst, nil
	default:
		name := ""
		if declared != nil {
			name = declared.String()
		}
		return dst, withPath(errors.NullValue(errors.PhaseClassify, name), ctx)
	}
}

// withPath attaches the request path to structured errors that lack one.
func withPath(err error, ctx odatapath.Context) error {
	path := odatapath.PathOf(ctx)
	if len(path) == 0 {
		return err
	}
	var e *errors.Error
	if stderrors.As(err, &e) && len(e.Path) == 0 {
		e.Path = path.Segments()
	}
	return err
}
