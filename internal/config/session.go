package config

import (
	"net/http"
	"time"
)

type Cookie struct {
	// Name of the session cookie.
	//
	// Default: gallery_sid
	Name string `validate:"required"`
	// Path scopes the cookie.
	Path string
	// Domain scopes the cookie.
	Domain string
	// Persist keeps the cookie across browser restarts.
	Persist  bool
	HttpOnly bool
	SameSite http.SameSite
}

type Session struct {
	// Lifetime of an authenticated session.
	//
	// Default: 336h
	Lifetime time.Duration `validate:"required"`
	Cookie   Cookie
}

type Redis struct {
	// Addr of the redis instance backing the notice channel and the
	// pending assertion store.
	//
	// Default: localhost:6379
	Addr     string `validate:"required"`
	Password string
	DB       int
}
