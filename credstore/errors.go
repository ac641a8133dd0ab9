package credstore

import (
	"github.com/ovdenko/credsession/autherrors"
)

var (
	ErrMissingIdentifier = autherrors.New(
		"MISSING_IDENTIFIER",
		autherrors.CategoryValidation,
		400,
		"identifier is required",
	)

	ErrMissingPassword = autherrors.New(
		"MISSING_PASSWORD",
		autherrors.CategoryValidation,
		400,
		"password is required",
	)

	ErrPasswordMismatch = autherrors.New(
		"PASSWORD_MISMATCH",
		autherrors.CategoryValidation,
		400,
		"password confirmation does not match",
	)

	ErrIdentifierTaken = autherrors.New(
		"IDENTIFIER_TAKEN",
		autherrors.CategoryConflict,
		409,
		"identifier already registered",
	)

	// ErrInvalidCredentials is the single verification failure. Unknown
	// identifier and wrong password both collapse into it so callers
	// cannot enumerate registered identifiers.
	ErrInvalidCredentials = autherrors.New(
		"INVALID_CREDENTIALS",
		autherrors.CategoryUnauthorized,
		401,
		"invalid identifier or password",
	)

	ErrStoreFailure = autherrors.New(
		"STORE_FAILURE",
		autherrors.CategoryInternal,
		500,
		"identity store operation failed",
	)
)
