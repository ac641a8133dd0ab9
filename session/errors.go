package session

import "github.com/ovdenko/credsession/autherrors"

// ErrNotAuthenticated is the authorization gate failure: the caller is
// not logged in. It is deliberately a different kind from the
// credential store's INVALID_CREDENTIALS; downstream callers usually
// answer it with a redirect-equivalent, not an error page.
var ErrNotAuthenticated = autherrors.New(
	"NOT_AUTHENTICATED",
	autherrors.CategoryAuth,
	401,
	"must be logged in",
)
