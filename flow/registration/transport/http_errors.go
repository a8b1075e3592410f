package transport

import (
	"github.com/gallerykit/portal/internal"
	"github.com/gallerykit/portal/session"
	"github.com/gallerykit/portal/transport"
	"github.com/gallerykit/portal/user/account"
	"github.com/gin-gonic/gin"
)

func errAlreadyAuthenticated(c *gin.Context, sess *session.Session) error {
	acct := account.Account{}
	if sess.Account != nil {
		acct = *sess.Account
	}
	return transport.ErrAlreadyAuthenticated(nil, c.Request.URL.Path, acct)
}

func errInvalidPayload(src error) error {
	return internal.WrapErrorf(src, internal.ErrorCodeInvalidArgument, "Invalid registration details provided")
}
