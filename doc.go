// Package rawvalue serializes single scalar values into the bare text of a
// raw value response: the body returned for a request such as
// Products(1)/Price/$value or Products/$count.
//
// # Architecture Overview
//
//	rawvalue/            Root package with the Sink interface
//	├── serializer/      WriteObject orchestrator, options, logging
//	├── value/           Classification and invariant text formatting
//	├── types/           Declared type descriptors, enum registry, WIT mapping
//	├── odatapath/       Resolved request path and $count detection
//	├── sink/            io.Writer, buffer and HTTP sinks
//	├── errors/          Structured error types
//	└── cmd/rawvalue/    Command line front end
//
// # Quick Start
//
//	s := serializer.NewWithDefaults()
//	buf := sink.NewBuffer()
//
//	err := s.WriteObject(19.5, types.F64(), buf, nil)
//	// buf.String() == "19.5"
//
//	ctx := odatapath.NewContext(odatapath.Path{
//		odatapath.EntitySet("Products"),
//		odatapath.Count(),
//	})
//	err = s.WriteObject(int64(42), types.String(), sink.NewBuffer(), ctx)
//	// "42": the declared type is ignored for $count
//
// # Text Forms
//
// Output is locale-invariant and never quoted. Booleans are lowercase,
// floats use the shortest round-trip digits, flags enums join member names
// with ", ", and timestamps carry their UTC offset so they parse back to
// the same instant. See package value for the full table.
//
// # Null
//
// A null value has no raw text form. serializer.NullReject (the default)
// fails with a null_value error; serializer.NullEmpty writes an empty
// payload instead.
package rawvalue
