package sink

import (
	"bytes"
	stderrors "errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/rawvalue/errors"
)

func TestBuffer(t *testing.T) {
	b := NewBuffer()
	assert.False(t, b.Written())
	assert.Equal(t, "", b.String())

	require.NoError(t, b.WriteRaw("Red, Blue"))
	assert.True(t, b.Written())
	assert.Equal(t, "Red, Blue", b.String())

	err := b.WriteRaw("again")
	assert.True(t, stderrors.Is(err, &errors.Error{Phase: errors.PhaseWrite, Kind: errors.KindInvalidInput}))
	assert.Equal(t, "Red, Blue", b.String())
}

func TestBuffer_EmptyPayload(t *testing.T) {
	b := NewBuffer()
	require.NoError(t, b.WriteRaw(""))
	assert.True(t, b.Written())
	assert.Equal(t, "", b.String())
}

func TestWriter(t *testing.T) {
	var out bytes.Buffer
	s := Writer(&out)

	require.NoError(t, s.WriteRaw("42"))
	assert.Equal(t, "42", out.String())

	assert.Error(t, s.WriteRaw("43"))
	assert.Equal(t, "42", out.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, stderrors.New("disk full") }

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) { return len(p) / 2, nil }

func TestWriter_Errors(t *testing.T) {
	assert.EqualError(t, Writer(failWriter{}).WriteRaw("x"), "disk full")
	assert.ErrorIs(t, Writer(shortWriter{}).WriteRaw("xyz"), io.ErrShortWrite)
}

func TestHTTP(t *testing.T) {
	rec := httptest.NewRecorder()
	s := HTTP(rec)

	require.NoError(t, s.WriteRaw("2024-03-01T12:30:00+05:30"))

	res := rec.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, ContentType, res.Header.Get("Content-Type"))
	assert.Equal(t, "4.0", res.Header.Get("OData-Version"))
	assert.Equal(t, "2024-03-01T12:30:00+05:30", rec.Body.String())

	assert.Error(t, s.WriteRaw("more"))
}
