package transport

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gallerykit/portal/email"
	"github.com/gallerykit/portal/flow/linking"
	"github.com/gallerykit/portal/internal"
	"github.com/gallerykit/portal/internal/config"
	"github.com/gallerykit/portal/notice"
	sessionHttp "github.com/gallerykit/portal/session/transport"
	"github.com/gallerykit/portal/transport"
	"github.com/gallerykit/portal/user/account"
	"github.com/gallerykit/portal/user/credential"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Http struct {
	cfg config.Configuration
	log *logrus.Logger

	sh sessionHttp.Http
	s  linking.Service
	cs credential.Service
	ns *notice.Store
	ec email.Client
}

func NewLinkingHttp(cfg config.Configuration, log *logrus.Logger, sh sessionHttp.Http, s linking.Service, cs credential.Service, ns *notice.Store, ec email.Client, r *gin.Engine) {
	h := &Http{
		cfg: cfg,
		log: log,

		sh: sh,
		s:  s,
		cs: cs,
		ns: ns,
		ec: ec,
	}

	group := r.Group(fmt.Sprintf("/%s", cfg.Linking.URL))
	{
		group.GET("", h.status())
		group.POST("", h.link())
		group.POST("/change", h.change())
	}
}

// status reports the account's external credentials and whether a
// pending assertion is waiting to be confirmed
func (h *Http) status() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := transport.IsAuthenticated(c)
		if sess == nil {
			c.Error(internal.NewErrorf(internal.ErrorCodeUnauthorized, "%v", internal.ErrUnauthorized))
			return
		}
		externals, err := h.cs.Externals(c.Request.Context(), *sess.AccountID)
		if err != nil {
			c.Error(err)
			return
		}
		_, pending := c.Cookie(linking.AssertionCookie)
		c.JSON(http.StatusOK, transport.HttpResponse{
			Success: true,
			Payload: gin.H{
				"externals": externals,
				"pending":   pending == nil,
			},
		})
	}
}

func (h *Http) link() gin.HandlerFunc {
	return func(c *gin.Context) {
		h.confirm(c, h.s.Link, h.ec.SendCredentialAdded)
	}
}

func (h *Http) change() gin.HandlerFunc {
	return func(c *gin.Context) {
		h.confirm(c, h.s.Change, h.ec.SendCredentialChanged)
	}
}

// confirm drives one linking operation end to end: redeem the pending
// assertion for the signed-in account, refresh the session with the new
// credential and notify the account email.
func (h *Http) confirm(c *gin.Context, op func(ctx context.Context, acct account.Account, token string) (*linking.Result, error), notify func(to string, acct account.Account, provider string) error) {
	ctx := c.Request.Context()
	sess := transport.IsAuthenticated(c)
	if sess == nil {
		c.Error(internal.NewErrorf(internal.ErrorCodeUnauthorized, "%v", internal.ErrUnauthorized))
		return
	}
	token := c.PostForm("assertion_token")
	if token == "" {
		if fromCookie, err := c.Cookie(linking.AssertionCookie); err == nil {
			token = fromCookie
		}
	}

	result, err := op(ctx, *sess.Account, token)
	if err != nil {
		switch internal.CodeOf(err) {
		case internal.ErrorCodeExpired:
			// Back to sign-in with a generic notice, never a raw error
			h.redirectWithNotice(c, fmt.Sprintf("/%s", h.cfg.Login.URL), linking.ErrExpired.Error())
		case internal.ErrorCodeConflict:
			var ie *internal.Error
			message := "Failed to link external account"
			if errors.As(err, &ie) {
				message = ie.Message()
			}
			h.redirectWithNotice(c, fmt.Sprintf("/%s", h.cfg.Linking.URL), message)
		default:
			c.Error(err)
		}
		return
	}
	c.SetCookie(linking.AssertionCookie, "", -1, "/", h.cfg.Session.Cookie.Domain, true, true)

	sess.AuthenticateWith(*result.Account, h.cfg.Session.Lifetime, result.Used)
	upserted, err := h.sh.UpsertAndSetCookie(ctx, c.Request, c.Writer, *sess)
	if err != nil {
		c.Error(err)
		return
	}

	provider := strings.TrimPrefix(result.Used, credential.ExternalPrefix)
	if err := notify(result.Account.Email, *result.Account, provider); err != nil {
		h.log.WithError(err).WithField("account", result.Account.ID).Warn("Failed to send credential notification")
	}

	c.JSON(http.StatusOK, transport.HttpResponse{
		Success: true,
		Payload: upserted,
	})
}

func (h *Http) redirectWithNotice(c *gin.Context, to string, message string) {
	token, err := h.ns.Put(c.Request.Context(), message)
	if err != nil {
		c.Error(err)
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("%s?notice=%s", to, token))
}
