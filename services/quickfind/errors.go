package quickfind

import "errors"

var (
	// ErrProviderNotFound is returned when the responding or chosen provider
	// does not exist in the catalog.
	ErrProviderNotFound = errors.New("provider not found")
	// ErrServiceNotFound is returned when a confirm names a service the
	// provider does not list.
	ErrServiceNotFound = errors.New("service not found")
	// ErrInvalidToken is returned when a request token does not follow the
	// qf_<timestamp>_<clientID> scheme.
	ErrInvalidToken = errors.New("invalid request token")
	// ErrInvalidAction is returned when a respond action is neither accept
	// nor reject.
	ErrInvalidAction = errors.New("invalid response action")
)
