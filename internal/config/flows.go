package config

import "time"

type Login struct {
	// URL for flow
	//
	// Default: login
	URL string
	// Lifetime of flow
	//
	// Default: 10m
	Lifetime time.Duration
}

type Registration struct {
	// URL for flow
	//
	// Default: registration
	URL string
	// Lifetime of flow
	//
	// Default: 10m
	Lifetime time.Duration
}

type Linking struct {
	// URL for flow
	//
	// Default: link
	URL string
	// Lifetime of a pending external identity assertion. Once it lapses
	// the user is sent back to the sign-in entry point with a generic
	// notice.
	//
	// Default: 5m
	Lifetime time.Duration
}
