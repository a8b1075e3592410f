package transport

import (
	"net/http"

	"github.com/gallerykit/portal/notice"
	"github.com/gallerykit/portal/transport"
	"github.com/gin-gonic/gin"
)

type Http struct {
	ns *notice.Store
}

// NewNoticeHttp exposes the one-shot notice channel. A notice token is
// handed out on redirect and can be redeemed exactly once.
func NewNoticeHttp(ns *notice.Store, r *gin.Engine) {
	h := &Http{ns: ns}

	r.GET("/notices/:token", h.take())
}

func (h *Http) take() gin.HandlerFunc {
	return func(c *gin.Context) {
		message, err := h.ns.Take(c.Request.Context(), c.Param("token"))
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, transport.HttpResponse{
			Success: true,
			Payload: gin.H{"message": message},
		})
	}
}
