package transport

import (
	"net/http"

	"github.com/gallerykit/portal/internal"
	"github.com/gallerykit/portal/org"
	"github.com/gallerykit/portal/session"
	"github.com/gallerykit/portal/transport"
	"github.com/gallerykit/portal/user/account"
	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

type Http struct {
	s  org.Service
	as account.Service
}

func NewOrgHttp(s org.Service, as account.Service, r *gin.Engine) {
	h := &Http{
		s:  s,
		as: as,
	}

	group := r.Group("/orgs/:org")
	{
		group.GET("/members", h.members())
		group.POST("/members", h.requestMembership())
		group.DELETE("/members/:account_id", h.cancelMembership())
		group.GET("/confirm", h.confirmMembership())

		group.GET("/certificates", h.listCertificates())
		group.POST("/certificates", h.addCertificate())
		group.PATCH("/certificates/:id", h.setCertificateActivation())
		group.DELETE("/certificates/:id", h.deleteCertificate())
	}
}

// resolve loads the organization account named in the path and requires
// an authenticated session
func (h *Http) resolve(c *gin.Context) (*session.Session, *account.Account, bool) {
	sess := transport.IsAuthenticated(c)
	if sess == nil {
		c.Error(internal.NewErrorf(internal.ErrorCodeUnauthorized, "%v", internal.ErrUnauthorized))
		return nil, nil, false
	}
	found, err := h.as.Find(c.Request.Context(), c.Param("org"))
	if err != nil {
		c.Error(err)
		return nil, nil, false
	}
	if !found.IsOrganization() {
		c.Error(internal.NewErrorf(internal.ErrorCodeNotFound, "%v", org.ErrNotOrganization))
		return nil, nil, false
	}
	return sess, found, true
}

func (h *Http) members() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, orgAcct, ok := h.resolve(c)
		if !ok {
			return
		}
		found, err := h.s.Members(c.Request.Context(), orgAcct.ID)
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

func (h *Http) requestMembership() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, orgAcct, ok := h.resolve(c)
		if !ok {
			return
		}
		created, err := h.s.RequestMembership(c.Request.Context(), orgAcct.ID, *sess.AccountID)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusCreated, transport.HttpResponse{
			Success: true,
			Payload: created,
		})
	}
}

func (h *Http) cancelMembership() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, orgAcct, ok := h.resolve(c)
		if !ok {
			return
		}
		accountID, err := uuid.FromString(c.Param("account_id"))
		if err != nil {
			c.Error(internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "Invalid account id provided"))
			return
		}
		if err := h.s.CancelMembership(c.Request.Context(), *sess.AccountID, orgAcct.ID, accountID); err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, transport.HttpResponse{
			Success: true,
		})
	}
}

func (h *Http) confirmMembership() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, _, ok := h.resolve(c)
		if !ok {
			return
		}
		confirmed, err := h.s.ConfirmMembership(c.Request.Context(), *sess.AccountID, c.Query("token"))
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, transport.HttpResponse{
			Success: true,
			Payload: confirmed,
		})
	}
}

func (h *Http) listCertificates() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, orgAcct, ok := h.resolve(c)
		if !ok {
			return
		}
		found, err := h.s.Certificates(c.Request.Context(), *sess.AccountID, orgAcct.ID)
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

type certificatePayload struct {
	Thumbprint string `json:"thumbprint" form:"thumbprint" validate:"required"`
}

type activationPayload struct {
	Active bool `json:"active" form:"active"`
}

func (h *Http) addCertificate() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, orgAcct, ok := h.resolve(c)
		if !ok {
			return
		}
		var payload certificatePayload
		if err := c.ShouldBind(&payload); err != nil {
			c.Error(internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "Invalid certificate provided"))
			return
		}
		created, err := h.s.AddCertificate(c.Request.Context(), *sess.AccountID, orgAcct.ID, payload.Thumbprint)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusCreated, transport.HttpResponse{
			Success: true,
			Payload: created,
		})
	}
}

func (h *Http) setCertificateActivation() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, _, ok := h.resolve(c)
		if !ok {
			return
		}
		certificateID, err := uuid.FromString(c.Param("id"))
		if err != nil {
			c.Error(internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "Invalid certificate id provided"))
			return
		}
		var payload activationPayload
		if err := c.ShouldBind(&payload); err != nil {
			c.Error(internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "Invalid activation provided"))
			return
		}
		updated, err := h.s.SetCertificateActivation(c.Request.Context(), *sess.AccountID, certificateID, payload.Active)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, transport.HttpResponse{
			Success: true,
			Payload: updated,
		})
	}
}

func (h *Http) deleteCertificate() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, _, ok := h.resolve(c)
		if !ok {
			return
		}
		certificateID, err := uuid.FromString(c.Param("id"))
		if err != nil {
			c.Error(internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "Invalid certificate id provided"))
			return
		}
		if err := h.s.DeleteCertificate(c.Request.Context(), *sess.AccountID, certificateID); err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, transport.HttpResponse{
			Success: true,
		})
	}
}
