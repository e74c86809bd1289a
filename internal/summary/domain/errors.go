package domain

import "errors"

// ErrNoRecipients is returned when a distribution request carries no usable
// address after normalization.
var ErrNoRecipients = errors.New("at least one recipient is required")

// ErrEmptySummary is returned when a distribution request carries no summary
// text to send.
var ErrEmptySummary = errors.New("summary text is required")

// ProviderError wraps a summarization provider failure. The provider's
// message passes through verbatim.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string { return "provider: " + e.Err.Error() }
func (e *ProviderError) Unwrap() error { return e.Err }

// TransportError wraps a mail delivery failure. Fatal to the distribution:
// nothing is persisted after it.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return "transport: " + e.Err.Error() }
func (e *TransportError) Unwrap() error { return e.Err }

// PersistenceError wraps a history store failure. On write it is logged and
// swallowed; on read it surfaces to the caller.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string { return "persistence: " + e.Err.Error() }
func (e *PersistenceError) Unwrap() error { return e.Err }
