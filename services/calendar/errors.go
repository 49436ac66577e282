package calendar

import "errors"

var (
	// ErrProviderAuth means no usable provider credentials exist. Logged at
	// startup only; the gateway runs on synthetic data instead.
	ErrProviderAuth = errors.New("calendar provider authentication failed")

	// ErrProviderRead is a failed event query. Absorbed by the gateway,
	// which degrades to synthetic events.
	ErrProviderRead = errors.New("calendar provider read failed")

	// ErrWriteFailed is a failed event creation. Always surfaced to the
	// caller as a failed booking.
	ErrWriteFailed = errors.New("calendar event creation failed")
)
