package transport

import (
	"context"
	"net/http"

	"github.com/gallerykit/portal/internal"
	"github.com/gallerykit/portal/internal/config"
	"github.com/gallerykit/portal/internal/validate"
	"github.com/gallerykit/portal/session"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

type Http struct {
	cfg config.Configuration

	st sessions.Store
	se session.Service
}

func NewSessionHttp(cfg config.Configuration, st sessions.Store, se session.Service) Http {
	return Http{
		cfg: cfg,

		st: st,
		se: se,
	}
}

// New creates a new Unauthenticated session and stores it in Repository
func (h Http) New(ctx context.Context) (*session.Session, error) {
	newSession, err := session.NewUnauthenticated()
	if err != nil {
		return nil, err
	}
	created, err := h.se.New(ctx, *newSession)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Upsert will update a session if it exists and if not then it will create a new one
func (h Http) Upsert(ctx context.Context, upsertSession session.Session) (*session.Session, error) {
	if _, err := h.se.FindByID(ctx, upsertSession.ID); err != nil {
		return h.se.New(ctx, upsertSession)
	}
	return h.se.Update(ctx, upsertSession)
}

// SetCookie sets provided session into cookie
func (h Http) SetCookie(req *http.Request, w http.ResponseWriter, s session.Session) error {
	cookie, err := h.st.Get(req, h.cfg.Session.Cookie.Name)
	if err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to retrieve session from cookie store")
	}
	if err := validate.Check(s); err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeInternal, "%v", session.ErrInvalidSession)
	}
	cookie.Values["session"] = s.Token
	if err := cookie.Save(req, w); err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to set session token into cookie")
	}
	return nil
}

// UpsertAndSetCookie will call Upsert method then SetCookie method
func (h Http) UpsertAndSetCookie(ctx context.Context, req *http.Request, w http.ResponseWriter, upsertSession session.Session) (*session.Session, error) {
	upserted, err := h.Upsert(ctx, upsertSession)
	if err != nil {
		return nil, err
	}
	if err := h.SetCookie(req, w, *upserted); err != nil {
		return nil, err
	}
	return upserted, nil
}

// Session retrieves session token from Request then fetches from service.
//
// If mustBeAuthenticated is true then will return error if session is not authenticated
func (h Http) Session(ctx context.Context, req *http.Request, mustBeAuthenticated bool) (*session.Session, error) {
	token := h.getToken(req)
	if token == "" {
		return nil, internal.NewErrorf(internal.ErrorCodeUnauthorized, "%v", session.ErrSessionNotFound)
	}
	found, err := h.se.FindByToken(ctx, token)
	if err != nil || found == nil || (mustBeAuthenticated && !found.Authenticated()) {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnauthorized, "%v", session.ErrSessionNotFound)
	}
	if found.AccountID != nil && found.Account != nil {
		found.Account.Credentials = nil
	}
	return found, nil
}

// SessionOrNewAndSetCookie retrieves the current session or creates a new
// unauthenticated one and sets its cookie. mustBeAuthenticated is ignored
// when a new session had to be created.
func (h Http) SessionOrNewAndSetCookie(ctx context.Context, req *http.Request, w http.ResponseWriter, mustBeAuthenticated bool) (*session.Session, error) {
	found, _ := h.Session(ctx, req, false)
	if found == nil {
		newSession, err := h.New(ctx)
		if err != nil {
			return nil, err
		}
		if err := h.SetCookie(req, w, *newSession); err != nil {
			return nil, err
		}
		return newSession, nil
	}
	if mustBeAuthenticated && !found.Authenticated() {
		return nil, internal.NewErrorf(internal.ErrorCodeUnauthorized, "%v", session.ErrSessionNotFound)
	}
	return found, nil
}

// Destroy removes the current session and clears its cookie
func (h Http) Destroy(ctx context.Context, req *http.Request, w http.ResponseWriter) error {
	found, err := h.Session(ctx, req, false)
	if err != nil {
		return err
	}
	if err := h.se.Destroy(ctx, found.ID); err != nil {
		return err
	}
	cookie, err := h.st.Get(req, h.cfg.Session.Cookie.Name)
	if err != nil {
		return nil
	}
	cookie.Options.MaxAge = -1
	return cookie.Save(req, w)
}

// Middleware loads the current session, if any, into the gin context
// under "sess"
func (h Http) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess, err := h.Session(c.Request.Context(), c.Request, false); err == nil {
			c.Set("sess", sess)
		}
		c.Next()
	}
}

func (h Http) getToken(req *http.Request) string {
	// First check Headers
	if token := req.Header.Get("X-Session-Token"); token != "" {
		return token
	}
	// Then check for cookie
	cookie, err := h.st.Get(req, h.cfg.Session.Cookie.Name)
	if err != nil {
		return ""
	}
	token, ok := cookie.Values["session"].(string)
	if !ok {
		return ""
	}
	return token
}
