package parquetcore

import (
	"errors"
	"fmt"
)

// Kind identifies the class of error a failure belongs to, so callers can
// branch with errors.Is without parsing message text.
type Kind uint8

const (
	_ Kind = iota
	// MalformedFile means the file-level footer (magic bytes or FileMetaData)
	// could not be parsed.
	MalformedFile
	// MalformedPage means a page header could not be parsed.
	MalformedPage
	// UnsupportedPage means a page header was parsed but names a page type
	// this reader does not implement.
	UnsupportedPage
	// UnsupportedEncoding means a page names a value or level encoding this
	// reader does not implement.
	UnsupportedEncoding
	// UnsupportedCodec means a column chunk names a compression codec this
	// reader does not implement.
	UnsupportedCodec
	// CorruptPage means a page decoded without a parse error, but its output
	// contradicts the header's own metadata (wrong length, value count, etc).
	CorruptPage
	// TypeMismatch means a row accessor was called for a physical type other
	// than the column's own.
	TypeMismatch
	// FieldNotFound means a row accessor referenced a column name or struct
	// field that doesn't exist in the schema.
	FieldNotFound
	// IndexOutOfRange means an index or position was outside what is
	// available: a list/row/column index in a row accessor, a released page
	// slot, or a read past the last page, row, or file.
	IndexOutOfRange
	// RangeError means an argument was outside of its accepted domain (a
	// byte-source read past the end of the source, an unknown locator type,
	// etc).
	RangeError
	// Closed means an operation was attempted on a reader or cursor after it
	// was closed.
	Closed
)

func (k Kind) String() string {
	switch k {
	case MalformedFile:
		return "malformed file"
	case MalformedPage:
		return "malformed page"
	case UnsupportedPage:
		return "unsupported page"
	case UnsupportedEncoding:
		return "unsupported encoding"
	case UnsupportedCodec:
		return "unsupported codec"
	case CorruptPage:
		return "corrupt page"
	case TypeMismatch:
		return "type mismatch"
	case FieldNotFound:
		return "field not found"
	case IndexOutOfRange:
		return "index out of range"
	case RangeError:
		return "range error"
	case Closed:
		return "closed"
	default:
		return "unknown error"
	}
}

// kindError pairs a Kind with a formatted message so errors.Is(err, SomeKind)
// works without string matching.
type kindError struct {
	kind Kind
	msg  string
	err  error
}

func (e *kindError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %s", e.kind, e.msg, e.err)
	}
	return fmt.Sprintf("%s: %s", e.kind, e.msg)
}

func (e *kindError) Unwrap() error { return e.err }

func (e *kindError) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.kind
}

// Error builds an error of the given kind, wrapping cause if non-nil, the way
// the teacher's encoding.Error(e, err) composes a fixed prefix with an
// underlying cause.
func Error(kind Kind, msg string, cause error) error {
	return &kindError{kind: kind, msg: msg, err: cause}
}

// Errorf is Error with a formatted message.
func Errorf(kind Kind, cause error, format string, args ...any) error {
	return &kindError{kind: kind, msg: fmt.Sprintf(format, args...), err: cause}
}

// Is reports whether err was built with Error/Errorf using kind, unwrapping
// as needed. Kind itself implements error-style matching so errors.Is(err,
// parquetcore.TypeMismatch) also works directly.
func Is(err error, kind Kind) bool {
	return errors.Is(err, kind)
}

func (k Kind) Error() string { return k.String() }
