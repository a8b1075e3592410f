package config

import "time"

type Argon struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

type Lockout struct {
	// MaxAttempts is the number of consecutive failed password checks
	// before the account locks.
	//
	// Default: 5
	MaxAttempts int `validate:"min=1"`
	// Duration of the lock.
	//
	// Default: 10m
	Duration time.Duration `validate:"required"`
}

type Credential struct {
	MinimumScore int `validate:"min=0,max=4"`
	Argon        Argon
	Lockout      Lockout
}
