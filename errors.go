package huffpack

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when there is nothing to compress, i.e. the
	// FrequencyTable has no symbols.
	ErrEmptyInput = errors.New("huffpack: empty input")

	// ErrFrequencyOverflow is returned when a symbol count does not fit in
	// 32 bits.
	ErrFrequencyOverflow = errors.New("huffpack: symbol frequency overflows 32 bits")

	// ErrMalformedStream matches every *MalformedStreamError via errors.Is.
	ErrMalformedStream = errors.New("huffpack: malformed stream")
)

// UnknownSymbolError is returned by Encode when an input byte has no code in
// the CodeBook.  This means the CodeBook was not derived from the input.
type UnknownSymbolError struct {
	Symbol Symbol
	Offset int
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("huffpack: no code for symbol %d at offset %d", e.Symbol, e.Offset)
}

// MalformedStreamError describes an artifact or bit stream that cannot be
// decoded.  Err, if non-nil, is the underlying cause (typically
// io.ErrUnexpectedEOF).
type MalformedStreamError struct {
	Reason string
	Err    error
}

func malformed(err error, format string, args ...interface{}) *MalformedStreamError {
	return &MalformedStreamError{Reason: fmt.Sprintf(format, args...), Err: err}
}

func (e *MalformedStreamError) Error() string {
	if e.Err != nil {
		return "huffpack: malformed stream: " + e.Reason + ": " + e.Err.Error()
	}
	return "huffpack: malformed stream: " + e.Reason
}

func (e *MalformedStreamError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrMalformedStream.
func (e *MalformedStreamError) Is(target error) bool {
	return target == ErrMalformedStream
}

var (
	_ error = (*UnknownSymbolError)(nil)
	_ error = (*MalformedStreamError)(nil)
)
