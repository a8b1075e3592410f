package config

import (
	"net/http"
	"time"

	"github.com/gallerykit/portal/internal/validate"
	"github.com/spf13/viper"
)

// Environment of the API. Note that certain features will be disabled in Production.
type Environment string

var (
	Development Environment = "Development"
	Production  Environment = "Production"
)

// Configuration is just that.
type Configuration struct {
	// Name of the API.
	Name string `validate:"required"`
	// Environment of the API.
	//
	// Default: Development
	Environment Environment `validate:"required,oneof='Development' 'Production'"`

	// Flows
	//
	//

	Login        Login
	Linking      Linking
	Registration Registration

	// Essentials
	//

	Server     Server
	Session    Session
	Database   Database
	Redis      Redis
	Credential Credential
	Providers  Providers

	// 3rd party
	//

	SendGrid SendGrid
}

// New retrieves the configuration file provided, overrides any default
// values and validates the result. The configuration is handed to
// constructors explicitly. There is no package level singleton so that
// services, the decision engine in particular, stay pure and testable.
func New(filename string, filetype string, filepath string) (*Configuration, error) {
	conf := Configuration{
		Environment: Development,

		// Flows
		//
		//

		Login: Login{
			URL:      "login",
			Lifetime: time.Minute * 10,
		},
		Linking: Linking{
			URL:      "link",
			Lifetime: time.Minute * 5,
		},
		Registration: Registration{
			URL:      "registration",
			Lifetime: time.Minute * 10,
		},

		// Essentials
		//
		//

		Session: Session{
			Lifetime: time.Hour * 336,
			Cookie: Cookie{
				Path:     "",
				Domain:   "",
				Persist:  true,
				HttpOnly: true,
				Name:     "gallery_sid",
				SameSite: http.SameSiteLaxMode,
			},
		},
		Credential: Credential{
			MinimumScore: 0,
			Argon: Argon{
				Memory:      64 * 1024,
				Iterations:  2,
				Parallelism: 2,
				SaltLength:  16,
				KeyLength:   32,
			},
			Lockout: Lockout{
				MaxAttempts: 5,
				Duration:    time.Minute * 10,
			},
		},
		Server: Server{
			Port:   80,
			Host:   ":",
			RPS:    100,
			Scheme: "http",
			AccessControl: AccessControl{
				AllowOrigin:      "*",
				MaxAge:           86400,
				AllowCredentials: true,
				AllowMethods:     []string{"GET", "PUT", "POST", "DELETE", "OPTIONS"},
				AllowHeaders:     []string{"Content-Type", "Content-Length", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With", "X-Session-Token"},
			},
		},
		Redis: Redis{
			Addr: "localhost:6379",
		},
	}

	viper.SetConfigName(filename)
	viper.SetConfigType(filetype)
	viper.AddConfigPath(filepath)
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}
	if err := viper.Unmarshal(&conf); err != nil {
		return nil, err
	}
	if err := validate.Check(conf); err != nil {
		return nil, err
	}

	if err := setupServer(&conf); err != nil {
		return nil, err
	}
	return &conf, nil
}
