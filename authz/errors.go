package authz

import "errors"

var (
	// ErrUnauthenticated means no usable credential was presented.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden means the credential is valid but lacks rights or ownership.
	ErrForbidden = errors.New("forbidden")
)
