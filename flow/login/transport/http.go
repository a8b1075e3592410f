package transport

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gallerykit/portal/flow/linking"
	"github.com/gallerykit/portal/flow/login"
	"github.com/gallerykit/portal/internal"
	"github.com/gallerykit/portal/internal/config"
	"github.com/gallerykit/portal/pkg/nanoid"
	"github.com/gallerykit/portal/provider"
	sessionHttp "github.com/gallerykit/portal/session/transport"
	"github.com/gallerykit/portal/transport"
	"github.com/gallerykit/portal/user/credential"
	"github.com/gin-gonic/gin"
)

// stateCookie pins the OAuth state nonce across the provider round trip
const stateCookie = "gallery_state"

type Http struct {
	cfg config.Configuration

	sh  sessionHttp.Http
	s   login.Service
	ls  linking.Service
	cs  credential.Service
	reg *provider.Registry
}

func NewLoginHttp(cfg config.Configuration, sh sessionHttp.Http, s login.Service, ls linking.Service, cs credential.Service, reg *provider.Registry, r *gin.Engine) {
	h := &Http{
		cfg: cfg,

		sh:  sh,
		s:   s,
		ls:  ls,
		cs:  cs,
		reg: reg,
	}

	group := r.Group(fmt.Sprintf("/%s", cfg.Login.URL))
	{
		group.GET("", h.initFlow())
		group.GET("/external/:provider", h.externalChallenge())
		group.GET("/external/:provider/callback", h.externalCallback())
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
		var payload login.Payload
		if err := c.ShouldBind(&payload); err != nil {
			c.Error(errInvalidPayload(err))
			return
		}
		// A pending assertion may also arrive via the linking cookie
		if payload.AssertionToken == "" {
			if token, err := c.Cookie(linking.AssertionCookie); err == nil {
				payload.AssertionToken = token
			}
		}
		decision, err := h.s.Submit(ctx, *flow, payload, login.SubmitOptions{
			Linking: payload.Identifier != "" && payload.AssertionToken != "",
			Policy:  provider.Policy(h.cfg.Providers.EnforcedPolicy),
		})
		if err != nil {
			c.Error(err)
			return
		}
		h.finish(c, decision)
	}
}

// externalChallenge kicks off the provider handshake. Also the target of
// an enforced policy challenge redirect.
func (h *Http) externalChallenge() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := h.reg.Get(c.Param("provider"))
		if err != nil {
			c.Error(err)
			return
		}
		state, err := nanoid.New()
		if err != nil {
			c.Error(internal.WrapErrorf(err, internal.ErrorCodeInternal, "%v", internal.ErrFailedNanoID))
			return
		}
		c.SetCookie(stateCookie, state, 300, "/", h.cfg.Session.Cookie.Domain, true, true)
		c.Redirect(http.StatusFound, p.Challenge(state))
	}
}

func (h *Http) externalCallback() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		p, err := h.reg.Get(c.Param("provider"))
		if err != nil {
			c.Error(err)
			return
		}
		stored, err := c.Cookie(stateCookie)
		if err != nil || stored == "" || stored != c.Query("state") {
			c.Error(internal.NewErrorf(internal.ErrorCodeForbidden, "Invalid state provided"))
			return
		}
		c.SetCookie(stateCookie, "", -1, "/", h.cfg.Session.Cookie.Domain, true, true)

		identity, err := p.Exchange(ctx, c.Query("code"))
		if err != nil {
			c.Error(err)
			return
		}
		assertion, err := h.ls.Stash(ctx, *identity)
		if err != nil {
			c.Error(err)
			return
		}
		maxAge := int(h.cfg.Linking.Lifetime.Seconds())

		// Signed-in users are linking, not signing in
		if sess := transport.IsAuthenticated(c); sess != nil {
			c.SetCookie(linking.AssertionCookie, assertion.Token, maxAge, "/", h.cfg.Session.Cookie.Domain, true, true)
			c.Redirect(http.StatusSeeOther, fmt.Sprintf("/%s", h.cfg.Linking.URL))
			return
		}

		// Nothing linked to this identity yet: carry the assertion into
		// registration instead of burning it on a doomed submit
		if found, err := h.cs.FindExternal(ctx, identity.Provider, identity.Subject); err != nil || found == nil {
			c.SetCookie(linking.AssertionCookie, assertion.Token, maxAge, "/", h.cfg.Session.Cookie.Domain, true, true)
			c.Redirect(http.StatusSeeOther, fmt.Sprintf("/%s", h.cfg.Registration.URL))
			return
		}

		decision, err := h.s.Submit(ctx, login.Login{}, login.Payload{
			AssertionToken: assertion.Token,
		}, login.SubmitOptions{
			Policy: provider.Policy(h.cfg.Providers.EnforcedPolicy),
		})
		if err != nil {
			c.Error(err)
			return
		}
		h.finish(c, decision)
	}
}

// finish maps a decision to its effect: a policy challenge redirects to
// the enforced provider, everything else establishes the session.
func (h *Http) finish(c *gin.Context, decision *login.Decision) {
	if decision.Kind == login.Challenge {
		c.Redirect(http.StatusSeeOther, fmt.Sprintf("/%s/external/%s", h.cfg.Login.URL, strings.ToLower(decision.Provider)))
		return
	}
	ctx := c.Request.Context()
	sess, err := h.sh.SessionOrNewAndSetCookie(ctx, c.Request, c.Writer, false)
	if err != nil {
		c.Error(err)
		return
	}
	sess.AuthenticateWith(*decision.Account, h.cfg.Session.Lifetime, decision.Used)
	upserted, err := h.sh.UpsertAndSetCookie(ctx, c.Request, c.Writer, *sess)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, transport.HttpResponse{
		Success: true,
		Payload: upserted,
	})
}
