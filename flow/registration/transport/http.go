package transport

import (
	"fmt"
	"net/http"

	"github.com/gallerykit/portal/flow/linking"
	"github.com/gallerykit/portal/flow/registration"
	"github.com/gallerykit/portal/internal/config"
	sessionHttp "github.com/gallerykit/portal/session/transport"
	"github.com/gallerykit/portal/transport"
	"github.com/gallerykit/portal/user/credential"
	"github.com/gin-gonic/gin"
)

type Http struct {
	cfg config.Configuration

	sh sessionHttp.Http
	s  registration.Service
}

func NewRegistrationHttp(cfg config.Configuration, sh sessionHttp.Http, s registration.Service, r *gin.Engine) {
	h := &Http{
		cfg: cfg,

		sh: sh,
		s:  s,
	}

	group := r.Group(fmt.Sprintf("/%s", cfg.Registration.URL))
	{
		group.GET("", h.initFlow())
		group.GET("/:flow_id", h.getFlow())
		group.POST("/:flow_id", h.submitFlow())
	}
}

func (h *Http) initFlow() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess := transport.IsAuthenticated(c); sess != nil {
			c.Error(errAlreadyAuthenticated(c, sess))
			return
		}
		newFlow, err := h.s.New(c.Request.Context(), transport.RequestURL(c.Request))
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusCreated, transport.HttpResponse{
			Success: true,
			Payload: newFlow,
		})
	}
}

func (h *Http) getFlow() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess := transport.IsAuthenticated(c); sess != nil {
			c.Error(errAlreadyAuthenticated(c, sess))
			return
		}
		found, err := h.s.Find(c.Request.Context(), c.Param("flow_id"))
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, transport.HttpResponse{
			Success: true,
			Payload: found,
		})
	}
}

func (h *Http) submitFlow() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if sess := transport.IsAuthenticated(c); sess != nil {
			c.Error(errAlreadyAuthenticated(c, sess))
			return
		}
		flow, err := h.s.Find(ctx, c.Param("flow_id"))
		if err != nil {
			c.Error(err)
			return
		}
		var payload registration.Payload
		if err := c.ShouldBind(&payload); err != nil {
			c.Error(errInvalidPayload(err))
			return
		}
		// Registration started from a provider callback carries the
		// pending assertion in a cookie
		if payload.AssertionToken == "" {
			if token, err := c.Cookie(linking.AssertionCookie); err == nil {
				payload.AssertionToken = token
			}
		}
		created, err := h.s.Submit(ctx, *flow, payload)
		if err != nil {
			c.Error(err)
			return
		}

		used := string(credential.Password)
		if payload.AssertionToken != "" {
			used = string(credential.External)
			c.SetCookie(linking.AssertionCookie, "", -1, "/", h.cfg.Session.Cookie.Domain, true, true)
		}
		// Exactly one session per registration: the unauthenticated flow
		// session gets promoted, never replaced
		sess, err := h.sh.SessionOrNewAndSetCookie(ctx, c.Request, c.Writer, false)
		if err != nil {
			c.Error(err)
			return
		}
		sess.AuthenticateWith(*created, h.cfg.Session.Lifetime, used)
		upserted, err := h.sh.UpsertAndSetCookie(ctx, c.Request, c.Writer, *sess)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusCreated, transport.HttpResponse{
			Success: true,
			Payload: upserted,
		})
	}
}
