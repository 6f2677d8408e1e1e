// Package sink provides rawvalue.Sink implementations for writers, tests and
// HTTP responses. Every sink accepts exactly one payload.
package sink

import (
	"io"
	"net/http"
	"sync/atomic"

	"github.com/wippyai/rawvalue"
	"github.com/wippyai/rawvalue/errors"
)

// ContentType is the media type of a raw value response body.
const ContentType = "text/plain; charset=utf-8"

// ODataVersion is sent with every HTTP raw value response.
const ODataVersion = "4.0"

type once struct {
	used atomic.Bool
}

func (o *once) claim() error {
	if !o.used.CompareAndSwap(false, true) {
		return errors.New(errors.PhaseWrite, errors.KindInvalidInput).
			Detail("sink already received a payload").
			Build()
	}
	return nil
}

// WriterSink writes the payload to an io.Writer.
type WriterSink struct {
	w io.Writer
	once
}

var _ rawvalue.Sink = (*WriterSink)(nil)

// Writer returns a sink writing to w.
func Writer(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) WriteRaw(payload string) error {
	if err := s.claim(); err != nil {
		return err
	}
	n, err := io.WriteString(s.w, payload)
	if err != nil {
		return err
	}
	if n != len(payload) {
		return io.ErrShortWrite
	}
	return nil
}

// Buffer records the payload in memory.
type Buffer struct {
	payload string
	once
}

var _ rawvalue.Sink = (*Buffer)(nil)

func NewBuffer() *Buffer {
	return &Buffer{}
}

func (b *Buffer) WriteRaw(payload string) error {
	if err := b.claim(); err != nil {
		return err
	}
	b.payload = payload
	return nil
}

// Written reports whether a payload was accepted.
func (b *Buffer) Written() bool {
	return b.used.Load()
}

// String returns the payload, or "" before the write.
func (b *Buffer) String() string {
	return b.payload
}

// HTTPSink writes the payload as a raw value response body.
type HTTPSink struct {
	w http.ResponseWriter
	once
}

var _ rawvalue.Sink = (*HTTPSink)(nil)

// HTTP returns a sink that sets the raw value response headers on w and
// writes the payload as the body.
func HTTP(w http.ResponseWriter) *HTTPSink {
	return &HTTPSink{w: w}
}

func (s *HTTPSink) WriteRaw(payload string) error {
	if err := s.claim(); err != nil {
		return err
	}
	h := s.w.Header()
	h.Set("Content-Type", ContentType)
	h.Set("OData-Version", ODataVersion)
	_, err := io.WriteString(s.w, payload)
	return err
}
