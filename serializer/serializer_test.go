package serializer

import (
	"database/sql"
	stderrors "errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wippyai/rawvalue"
	"github.com/wippyai/rawvalue/errors"
	"github.com/wippyai/rawvalue/odatapath"
	"github.com/wippyai/rawvalue/sink"
	"github.com/wippyai/rawvalue/types"
)

type color uint8

const (
	red color = 1 << iota
	green
	blue
)

func testSerializer(t *testing.T, policy NullPolicy) *Serializer {
	t.Helper()
	reg := types.NewRegistry()
	colors := types.MustEnumType("Color", true,
		types.M("Red", red), types.M("Green", green), types.M("Blue", blue))
	require.NoError(t, reg.Register(reflect.TypeFor[color](), colors))

	return New(Options{
		Location:   time.UTC,
		Registry:   reg,
		NullPolicy: policy,
	})
}

var countCtx = odatapath.NewContext(odatapath.Path{
	odatapath.EntitySet("Products"),
	odatapath.Count(),
})

var valueCtx = odatapath.NewContext(odatapath.Path{
	odatapath.EntitySet("Products"),
	odatapath.Key("1"),
	odatapath.Property("Price"),
	odatapath.Value(),
})

func write(t *testing.T, s *Serializer, v any, declared *types.Descriptor, ctx odatapath.Context) string {
	t.Helper()
	buf := sink.NewBuffer()
	require.NoError(t, s.WriteObject(v, declared, buf, ctx))
	require.True(t, buf.Written())
	return buf.String()
}

func TestWriteObject_Scenarios(t *testing.T) {
	s := testSerializer(t, NullReject)
	five := 5
	colors, ok := s.Options().Registry.LookupName("Color")
	require.True(t, ok)

	tests := []struct {
		name     string
		value    any
		declared *types.Descriptor
		ctx      odatapath.Context
		want     string
	}{
		{"integer", 5, types.S32(), nil, "5"},
		{"integral float", 5.0, types.F64(), nil, "5"},
		{"boolean", false, types.Bool(), nil, "false"},
		{"nullable integer", &five, types.Nullable(types.S32()), nil, "5"},
		{"flags", red | blue, types.Enum(colors), nil, "Red, Blue"},
		{"count ignores declared type", 5, types.String(), countCtx, "5"},
		{"count without declared type", int64(5), nil, countCtx, "5"},
		{"value path is not count", 5, types.S32(), valueCtx, "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, write(t, s, tt.value, tt.declared, tt.ctx))
		})
	}
}

func TestWriteObject_CountOverridesDeclaredKind(t *testing.T) {
	s := testSerializer(t, NullReject)

	for _, declared := range []*types.Descriptor{
		types.Bool(), types.F64(), types.String(), types.DateTime(), types.Guid(), nil,
	} {
		assert.Equal(t, "42", write(t, s, uint64(42), declared, countCtx), "%s", declared)
	}
}

func TestWriteObject_CountErrors(t *testing.T) {
	s := testSerializer(t, NullEmpty)

	buf := sink.NewBuffer()
	err := s.WriteObject(-1, types.S32(), buf, countCtx)
	assert.True(t, stderrors.Is(err, &errors.Error{Phase: errors.PhaseCount, Kind: errors.KindInvalidInput}), "%v", err)
	assert.False(t, buf.Written())

	// the null policy does not apply to counts
	err = s.WriteObject(nil, nil, buf, countCtx)
	assert.True(t, stderrors.Is(err, &errors.Error{Phase: errors.PhaseCount, Kind: errors.KindNullValue}), "%v", err)
	assert.False(t, buf.Written())

	var e *errors.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, []string{"Products", "$count"}, e.Path)
}

func TestWriteObject_NullReject(t *testing.T) {
	s := testSerializer(t, NullReject)
	var absent *int

	for _, v := range []any{nil, absent, sql.NullInt64{}} {
		buf := sink.NewBuffer()
		err := s.WriteObject(v, types.Nullable(types.S64()), buf, valueCtx)
		require.Error(t, err)
		assert.True(t, stderrors.Is(err, &errors.Error{Kind: errors.KindNullValue}), "%v", err)
		assert.False(t, buf.Written(), "%T", v)

		var e *errors.Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, "option<s64>", e.DeclaredType)
		assert.Equal(t, []string{"Products(1)", "Price", "$value"}, e.Path)
	}
}

func TestWriteObject_NullEmpty(t *testing.T) {
	s := testSerializer(t, NullEmpty)
	var absent *int

	for _, v := range []any{nil, absent, sql.NullInt64{}} {
		buf := sink.NewBuffer()
		require.NoError(t, s.WriteObject(v, types.Nullable(types.S64()), buf, nil))
		assert.True(t, buf.Written(), "%T", v)
		assert.Equal(t, "", buf.String())
	}

	// non-null values are unaffected
	assert.Equal(t, "7", write(t, s, 7, types.Nullable(types.S64()), nil))
}

func TestWriteObject_NullWithoutDeclaredType(t *testing.T) {
	for _, policy := range []NullPolicy{NullReject, NullEmpty} {
		t.Run(policy.String(), func(t *testing.T) {
			buf := sink.NewBuffer()
			err := testSerializer(t, policy).WriteObject(nil, nil, buf, valueCtx)
			assert.True(t, stderrors.Is(err, &errors.Error{Kind: errors.KindInvalidInput}), "%v", err)
			assert.False(t, buf.Written())
		})
	}
}

func TestWriteObject_NothingWrittenOnError(t *testing.T) {
	s := testSerializer(t, NullReject)

	tests := []struct {
		name     string
		value    any
		declared *types.Descriptor
		kind     errors.Kind
	}{
		{"type mismatch", "five", types.S32(), errors.KindTypeMismatch},
		{"structured value", struct{ A int }{1}, types.String(), errors.KindTypeMismatch},
		{"overflow", 300, types.U8(), errors.KindOverflow},
		{"missing declared type", 5, nil, errors.KindInvalidInput},
		{"unsupported declared kind", 5, &types.Descriptor{Kind: types.Kind(200)}, errors.KindUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			sk := rawvalue.SinkFunc(func(string) error {
				calls++
				return nil
			})
			err := s.WriteObject(tt.value, tt.declared, sk, nil)
			assert.True(t, stderrors.Is(err, &errors.Error{Kind: tt.kind}), "%v", err)
			assert.Zero(t, calls)
		})
	}
}

func TestWriteObject_SingleWrite(t *testing.T) {
	s := testSerializer(t, NullReject)

	var payloads []string
	sk := rawvalue.SinkFunc(func(p string) error {
		payloads = append(payloads, p)
		return nil
	})

	require.NoError(t, s.WriteObject("Red, Blue", types.String(), sk, nil))
	require.NoError(t, s.WriteObject(time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC), types.DateTimeOffset(), sk, nil))

	want := []string{"Red, Blue", "2024-03-01T12:30:00Z"}
	if diff := cmp.Diff(want, payloads); diff != "" {
		t.Errorf("payloads mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteObject_SinkFailure(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	s := New(Options{Logger: zap.New(core)})

	boom := stderrors.New("connection reset")
	err := s.WriteObject(5, types.S32(), rawvalue.SinkFunc(func(string) error { return boom }), valueCtx)

	require.Error(t, err)
	assert.True(t, stderrors.Is(err, &errors.Error{Phase: errors.PhaseWrite, Kind: errors.KindWriteFailed}))
	assert.ErrorIs(t, err, boom)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "sink write failed", logs.All()[0].Message)
}

func TestWriteObject_SinkUsedTwice(t *testing.T) {
	s := testSerializer(t, NullReject)
	buf := sink.NewBuffer()

	require.NoError(t, s.WriteObject(1, types.S32(), buf, nil))
	err := s.WriteObject(2, types.S32(), buf, nil)
	assert.True(t, stderrors.Is(err, &errors.Error{Kind: errors.KindWriteFailed}))
	assert.Equal(t, "1", buf.String())
}

func TestWriteObject_NilSink(t *testing.T) {
	err := NewWithDefaults().WriteObject(1, types.S32(), nil, nil)
	assert.True(t, stderrors.Is(err, &errors.Error{Phase: errors.PhaseWrite, Kind: errors.KindInvalidInput}))
}

func TestWriteObject_DateTimeUsesLocation(t *testing.T) {
	pacific := time.FixedZone("PST", -8*3600)
	s := New(Options{Location: pacific})

	at := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	got := write(t, s, at, types.DateTime(), nil)
	assert.Equal(t, "2024-03-01T04:30:00-08:00", got)

	parsed, err := time.Parse(time.RFC3339Nano, got)
	require.NoError(t, err)
	assert.True(t, at.Equal(parsed))

	// offsets are kept for datetimeoffset
	assert.Equal(t, "2024-03-01T12:30:00Z", write(t, s, at, types.DateTimeOffset(), nil))
}

func TestWriteObject_Idempotent(t *testing.T) {
	s := testSerializer(t, NullReject)
	inputs := []struct {
		value    any
		declared *types.Descriptor
		ctx      odatapath.Context
	}{
		{0.1, types.F64(), nil},
		{red | green, types.Enum(types.MustEnumType("Color", true, types.M("Red", red), types.M("Green", green))), nil},
		{12, types.Bool(), countCtx},
	}

	for _, in := range inputs {
		first := write(t, s, in.value, in.declared, in.ctx)
		second := write(t, s, in.value, in.declared, in.ctx)
		assert.Equal(t, first, second)
	}
}

func TestWriteObject_Concurrent(t *testing.T) {
	s := testSerializer(t, NullReject)

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			buf := sink.NewBuffer()
			if err := s.WriteObject(i, types.S64(), buf, nil); err == nil {
				results[i] = buf.String()
			}
		}()
	}
	wg.Wait()

	for i, got := range results {
		assert.Equal(t, write(t, s, i, types.S64(), nil), got)
	}
}

func TestWriteValue(t *testing.T) {
	s := testSerializer(t, NullReject)
	five := int16(5)

	tests := []struct {
		name  string
		value any
		ctx   odatapath.Context
		want  string
	}{
		{"int", 5, nil, "5"},
		{"pointer", &five, nil, "5"},
		{"registered flags", red | blue, nil, "Red, Blue"},
		{"string", "plain", nil, "plain"},
		{"count", uint8(9), countCtx, "9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := sink.NewBuffer()
			require.NoError(t, s.WriteValue(tt.value, buf, tt.ctx))
			assert.Equal(t, tt.want, buf.String())
		})
	}

	err := s.WriteValue([]int{1}, sink.NewBuffer(), valueCtx)
	assert.True(t, stderrors.Is(err, &errors.Error{Kind: errors.KindUnsupported}), "%v", err)

	err = s.WriteValue(nil, sink.NewBuffer(), nil)
	assert.True(t, stderrors.Is(err, &errors.Error{Kind: errors.KindNullValue}), "%v", err)

	buf := sink.NewBuffer()
	require.NoError(t, testSerializer(t, NullEmpty).WriteValue(nil, buf, nil))
	assert.True(t, buf.Written())
}

func TestAppendObject(t *testing.T) {
	s := testSerializer(t, NullReject)

	dst, err := s.AppendObject([]byte("v="), true, types.Bool(), nil)
	require.NoError(t, err)
	assert.Equal(t, "v=true", string(dst))

	dst, err = s.AppendObject(dst, "x", types.Bool(), nil)
	assert.Error(t, err)
	assert.Equal(t, "v=true", string(dst))
}

func TestParseNullPolicy(t *testing.T) {
	for in, want := range map[string]NullPolicy{
		"":        NullReject,
		"reject":  NullReject,
		"EMPTY":   NullEmpty,
		" empty ": NullEmpty,
	} {
		got, err := ParseNullPolicy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseNullPolicy("zero")
	assert.True(t, stderrors.Is(err, &errors.Error{Phase: errors.PhaseConfig, Kind: errors.KindInvalidInput}))

	assert.Equal(t, "reject", NullReject.String())
	assert.Equal(t, "empty", NullEmpty.String())
	assert.Equal(t, "unknown", NullPolicy(9).String())
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, NullReject, opts.NullPolicy)
	assert.Equal(t, time.Local, opts.Location)

	s := NewWithDefaults()
	assert.Same(t, types.DefaultRegistry(), s.Options().Registry)
}
