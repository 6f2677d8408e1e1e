package rawvalue

// Sink accepts the single text payload of a raw value response. It is
// supplied per call by the message writer and never shared between calls.
type Sink interface {
	WriteRaw(payload string) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(payload string) error

// WriteRaw calls f(payload).
func (f SinkFunc) WriteRaw(payload string) error {
	return f(payload)
}
