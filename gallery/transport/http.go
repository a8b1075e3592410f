package transport

import (
	"net/http"
	"strconv"

	"github.com/gallerykit/portal/gallery"
	"github.com/gallerykit/portal/internal"
	"github.com/gallerykit/portal/transport"
	"github.com/gallerykit/portal/user/account"
	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

const defaultPageSize = 20
const maxPageSize = 100

type Http struct {
	s gallery.Service
}

func NewGalleryHttp(s gallery.Service, r *gin.Engine) {
	h := &Http{s: s}
	group := r.Group("/packages")
	{
		group.GET("", h.list)
		group.GET("/owned", h.owned)
		group.GET("/:id", h.get)
	}
}

// viewer resolves the optional authenticated account. The catalog is
// public, an anonymous viewer just sees less.
func viewer(c *gin.Context) *account.Account {
	sess := transport.IsAuthenticated(c)
	if sess == nil {
		return nil
	}
	return sess.Account
}

func (h *Http) list(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	if err != nil || limit <= 0 || limit > maxPageSize {
		limit = defaultPageSize
	}
	if offset < 0 {
		offset = 0
	}

	views, err := h.s.List(c.Request.Context(), viewer(c), offset, limit)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, transport.HttpResponse{
		Success: true,
		Payload: views,
	})
}

func (h *Http) owned(c *gin.Context) {
	sess := transport.IsAuthenticated(c)
	if sess == nil {
		c.Error(internal.NewErrorf(internal.ErrorCodeUnauthorized, "%v", internal.ErrUnauthorized))
		return
	}

	views, err := h.s.Owned(c.Request.Context(), sess.Account)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, transport.HttpResponse{
		Success: true,
		Payload: views,
	})
}

func (h *Http) get(c *gin.Context) {
	id, err := uuid.FromString(c.Param("id"))
	if err != nil {
		c.Error(internal.NewErrorf(internal.ErrorCodeInvalidArgument, "Invalid package id provided"))
		return
	}

	view, err := h.s.Find(c.Request.Context(), viewer(c), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, transport.HttpResponse{
		Success: true,
		Payload: view,
	})
}
