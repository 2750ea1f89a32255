package download

import (
	"errors"
	"fmt"
)

// ErrNotImage indicates a response whose Content-Type does not declare an
// image.
var ErrNotImage = errors.New("not an image")

// TransportError indicates a failed request: bad url, connection failure,
// timeout, or non-2xx status.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: url=%s err=%v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Kind classifies the outcome of processing one url.
type Kind int

const (
	KindSaved Kind = iota
	KindTransport
	KindNotImage
	KindDuplicate
	KindWrite
	KindUnexpected
)

func (k Kind) String() string {
	switch k {
	case KindSaved:
		return "saved"
	case KindTransport:
		return "transport_error"
	case KindNotImage:
		return "not_image"
	case KindDuplicate:
		return "duplicate"
	case KindWrite:
		return "write_error"
	case KindUnexpected:
		return "unexpected_error"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Result is the outcome of processing a single url. Filename, Path and Size
// are only set for KindSaved. Err is nil for KindSaved and KindDuplicate.
type Result struct {
	Kind     Kind
	URL      string
	Filename string // Relative to the store's destination directory
	Path     string
	Size     int
	Err      error
}

// ClassifyError maps an error returned by Fetch to a result kind.
func ClassifyError(err error) Kind {
	var te *TransportError
	switch {
	case err == nil:
		return KindSaved
	case errors.As(err, &te):
		return KindTransport
	case errors.Is(err, ErrNotImage):
		return KindNotImage
	default:
		return KindUnexpected
	}
}
