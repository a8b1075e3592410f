package transport

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gallerykit/portal/internal"
	"github.com/gallerykit/portal/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/unrolled/secure"
	"go.uber.org/ratelimit"
)

// RateLimiterMiddleware limits the number of operations per second
func RateLimiterMiddleware(rps int) gin.HandlerFunc {
	limit := ratelimit.New(rps)
	return func(c *gin.Context) {
		limit.Take()
	}
}

func SecurityMiddleware(cfg config.Configuration) gin.HandlerFunc {
	secureMiddleware := secure.New(cfg.Server.Security)
	return func(c *gin.Context) {
		if err := secureMiddleware.Process(c.Writer, c.Request); err != nil {
			c.Abort()
			return
		}

		// Set some extra settings CORS
		c.Writer.Header().Set("Access-Control-Allow-Origin", cfg.Server.AccessControl.AllowOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", fmt.Sprintf("%v", cfg.Server.AccessControl.AllowCredentials))
		c.Writer.Header().Set("Access-Control-Allow-Headers", strings.Join(cfg.Server.AccessControl.AllowHeaders, ", "))
		c.Writer.Header().Set("Access-Control-Allow-Methods", strings.Join(cfg.Server.AccessControl.AllowMethods, ", "))
		// For redirection avoid Header rewrite
		if status := c.Writer.Status(); status > 300 && status < 399 {
			c.Abort()
		}
	}
}

// ErrorMiddleware is a post middleware that handles errors for every
// request
func ErrorMiddleware(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Execute whatever endpoint is hit
		c.Next()

		// If no errors occurred then return early
		if len(c.Errors) == 0 {
			return
		}
		// Traverse errors and respond with the last renderable one
		var actual *internal.Error
		for _, err := range c.Errors {
			var ie *internal.Error
			if errors.As(err.Err, &ie) {
				actual = ie
			} else {
				log.WithError(err.Err).Error("Captured unhandled error")
			}
		}
		if actual != nil {
			code := statusOf(actual.Code())
			if code == http.StatusInternalServerError {
				log.WithError(actual).Error("Captured internal error")
				c.JSON(code, HttpResponse{
					Success: false,
					Error: &HttpClientError{
						StatusCode:  code,
						Summary:     string(internal.ErrorCodeInternal),
						Description: "Oops! Something went wrong. Please try again later.",
					},
				})
				return
			}
			c.JSON(code, HttpResponse{
				Success: false,
				Error: &HttpClientError{
					StatusCode:  code,
					Summary:     string(actual.Code()),
					Description: actual.Message(),
				},
			})
			return
		}

		// If nothing was renderable then respond with a 500
		c.JSON(http.StatusInternalServerError, HttpResponse{
			Success: false,
			Error: &HttpClientError{
				StatusCode:  http.StatusInternalServerError,
				Summary:     string(internal.ErrorCodeInternal),
				Description: "Oops! Something went wrong. Please try again later.",
			},
		})
	}
}
