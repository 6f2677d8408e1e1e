// Package serializer is the raw value entry point. A Serializer combines
// $count detection, classification and formatting and delivers the text to
// a caller-supplied sink in exactly one write.
//
// # Usage
//
//	s := serializer.New(serializer.Options{
//		Location:   time.UTC,
//		NullPolicy: serializer.NullEmpty,
//	})
//
//	err := s.WriteObject(price, types.Nullable(types.F64()), sink.HTTP(w), ctx)
//
// # Count Requests
//
// When the request path ends in $count the value is written as a bare
// decimal integer. The declared type is not consulted and may be nil.
//
// # Errors
//
// All failures are *errors.Error values carrying the request path. They are
// terminal: the sink sees no write. A sink error is reported as
// errors.KindWriteFailed with the sink's error as cause.
package serializer
