package transport

import (
	"fmt"
	"net/http"

	"github.com/gallerykit/portal/internal"
	"github.com/gallerykit/portal/session"
	"github.com/gallerykit/portal/user/account"
	"github.com/gin-gonic/gin"
)

// ErrAlreadyAuthenticated builds the redirect error for flow entry points
// that authenticated users may not revisit
func ErrAlreadyAuthenticated(src error, path string, acct account.Account) error {
	return internal.WrapErrorf(src, internal.ErrorCodeForbidden, "%v", internal.ErrAlreadyAuthenticated)
}

// IsAuthenticated checks context for a live authenticated session
func IsAuthenticated(ctx *gin.Context) *session.Session {
	v, ok := ctx.Get("sess")
	if !ok || v == nil {
		return nil
	}
	sess, ok := v.(*session.Session)
	if !ok || sess == nil {
		return nil
	}
	if !sess.Authenticated() {
		return nil
	}
	return sess
}

// RequestURL retrieves entry path of request
func RequestURL(req *http.Request) string {
	path := req.URL.Path
	query := req.URL.Query().Encode()
	url := path
	if len(query) > 0 {
		url = fmt.Sprintf("%s?%s", path, query)
	}
	return url
}
