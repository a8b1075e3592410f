package config

import (
	"fmt"
	"time"

	"github.com/unrolled/secure"
)

type AccessControl struct {
	AllowCredentials bool
	AllowOrigin      string
	AllowHeaders     []string
	AllowMethods     []string
	ExposeHeaders    []string
	MaxAge           time.Duration
}

type Server struct {
	// Base configurations
	//

	// Port of the server.
	//
	// Default: 80
	Port int
	// Host of the server.
	//
	// Default: :
	Host string
	// Scheme
	//
	// Default: http
	Scheme string `validate:"oneof='http' 'https'"`
	// URL is the public url which users will use to access the API
	//
	// Example: gallery.example.com
	URL string `validate:"required"`

	// Route configurations
	//

	// Prefix for the endpoints.
	//
	// Example: v1
	// Default: ""
	Prefix string

	// Middleware configurations
	//

	// RPS is rate per second. If 0, RateLimiterMiddleware will be disabled.
	//
	// Default: 100
	RPS int
	// Security are the options that control the security middleware.
	Security secure.Options
	// AccessControl are the CORS options for the security middleware.
	AccessControl AccessControl

	// Misc configurations
	//

	// ExtraSlash appends a slash at the end of the URL if set to true
	//
	// Default: false
	ExtraSlash bool
}

func setupServer(conf *Configuration) error {
	s := conf.Server

	// Security
	se := s.Security
	se.IsDevelopment = true

	s.URL = fmt.Sprintf("%s://%s", s.Scheme, s.URL)
	// Defaults for production
	if conf.Environment == Production {
		if s.RPS == 0 {
			s.RPS = 100
		}
		if s.Scheme != "https" {
			s.Scheme = "https"
		}
		if s.AccessControl.MaxAge == 0 {
			s.AccessControl.MaxAge = 86400
		}
		// Security header defaults
		se.FrameDeny = true
		se.SSLRedirect = true
		se.IsDevelopment = false
		se.STSSeconds = 315360000
		se.BrowserXssFilter = true
		se.ContentTypeNosniff = true
		se.ReferrerPolicy = "same-origin"
	}

	s.Security = se
	conf.Server = s
	return nil
}
