// Package errs defines the sentinel errors returned by the gelcodec
// packages. Callers use errors.Is to distinguish error kinds. Where a call
// site has the offending group, property name, or byte position at hand,
// it wraps the sentinel with fmt.Errorf("...: %w", ...) to attach it;
// elsewhere the sentinel is returned as-is.
package errs

import "errors"

var (
	// ErrUnknownGroup is returned when the Schema has no definition for the
	// requested group.
	ErrUnknownGroup = errors.New("unknown group")

	// ErrSerialiseFailure is returned when a property serialiser fails to
	// produce bytes for a value.
	ErrSerialiseFailure = errors.New("serialise failure")

	// ErrDeserialiseFailure is returned when a property serialiser fails to
	// reconstruct a value from bytes.
	ErrDeserialiseFailure = errors.New("deserialise failure")

	// ErrMalformedEscape is returned by unescape on a truncated or unknown
	// escape sequence.
	ErrMalformedEscape = errors.New("malformed escape sequence")

	// ErrBadDelimCount is returned when an edge row key does not contain
	// exactly three delimiters.
	ErrBadDelimCount = errors.New("row key does not contain exactly three delimiters")

	// ErrBadDirectionFlag is returned when a row key's terminal flag is not
	// one of the recognised edge direction flags.
	ErrBadDirectionFlag = errors.New("unrecognised edge direction flag")

	// ErrBadGroupEncoding is returned when a cell's column family is not
	// valid UTF-8.
	ErrBadGroupEncoding = errors.New("column family is not valid utf-8")

	// ErrBadLengthPrefix is returned when a length-prefixed property record
	// cannot be decoded.
	ErrBadLengthPrefix = errors.New("bad length prefix")

	// ErrCompressionFailure is returned when the configured compressor
	// fails to compress a payload.
	ErrCompressionFailure = errors.New("compression failure")

	// ErrDecompressionFailure is returned when the configured compressor
	// fails to decompress a payload.
	ErrDecompressionFailure = errors.New("decompression failure")
)
