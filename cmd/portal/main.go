package main

import (
	"context"
	"log"

	"github.com/gallerykit/portal/email"
	linkingRedis "github.com/gallerykit/portal/flow/linking/repository/redis"
	linkingService "github.com/gallerykit/portal/flow/linking/service"
	linkingTransport "github.com/gallerykit/portal/flow/linking/transport"
	loginGorm "github.com/gallerykit/portal/flow/login/repository/gorm"
	loginService "github.com/gallerykit/portal/flow/login/service"
	loginTransport "github.com/gallerykit/portal/flow/login/transport"
	registrationGorm "github.com/gallerykit/portal/flow/registration/repository/gorm"
	registrationService "github.com/gallerykit/portal/flow/registration/service"
	registrationTransport "github.com/gallerykit/portal/flow/registration/transport"
	galleryGorm "github.com/gallerykit/portal/gallery/repository/gorm"
	galleryService "github.com/gallerykit/portal/gallery/service"
	galleryTransport "github.com/gallerykit/portal/gallery/transport"
	"github.com/gallerykit/portal/internal/config"
	"github.com/gallerykit/portal/notice"
	noticeTransport "github.com/gallerykit/portal/notice/transport"
	orgGorm "github.com/gallerykit/portal/org/repository/gorm"
	orgService "github.com/gallerykit/portal/org/service"
	orgTransport "github.com/gallerykit/portal/org/transport"
	"github.com/gallerykit/portal/persistence"
	"github.com/gallerykit/portal/provider"
	sessionGorm "github.com/gallerykit/portal/session/repository/gorm"
	sessionService "github.com/gallerykit/portal/session/service"
	sessionTransport "github.com/gallerykit/portal/session/transport"
	"github.com/gallerykit/portal/transport"
	accountGorm "github.com/gallerykit/portal/user/account/repository/gorm"
	accountService "github.com/gallerykit/portal/user/account/service"
	credentialGorm "github.com/gallerykit/portal/user/credential/repository/gorm"
	credentialService "github.com/gallerykit/portal/user/credential/service"
	"github.com/gorilla/sessions"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
}

func main() {
	cfgPtr, err := config.New("portal", "yaml", "/etc/portal/")
	if err != nil {
		log.Panic(err)
		return
	}
	cfg := *cfgPtr

	logger := logrus.New()
	if cfg.Environment == config.Production {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	db, err := persistence.NewGorm(cfg.Database)
	if err != nil {
		log.Panic(err)
		return
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Setup provider registry. Every configured external provider is
	// discovered up front so a bad issuer fails the boot, not the first
	// sign-in.
	registry, err := provider.NewRegistry(context.Background(), cfg.Providers)
	if err != nil {
		log.Panic(err)
		return
	}

	// Setup Email client
	emailClient := email.New(cfg.Name, cfg.SendGrid)

	// Setup repositories
	sessionRepository := sessionGorm.NewGormSessionRepository(db)
	accountRepository := accountGorm.NewGormAccountRepository(db)
	credentialRepository := credentialGorm.NewGormCredentialRepository(db)
	loginRepository := loginGorm.NewGormLoginRepository(db)
	registrationRepository := registrationGorm.NewGormRegistrationRepository(db)
	assertionRepository := linkingRedis.NewRedisAssertionRepository(redisClient)
	orgRepository := orgGorm.NewGormOrgRepository(db)
	packageRepository := galleryGorm.NewGormPackageRepository(db)

	// Setup services
	sessionSvc := sessionService.NewSessionService(sessionRepository)
	accounts := accountService.NewAccountService(cfg.Credential.Lockout, accountRepository)
	credentials := credentialService.NewCredentialService(cfg.Credential, credentialRepository)
	linking := linkingService.NewLinkingService(cfg.Linking, assertionRepository, credentials)
	// Flow services
	// These will essentially stitch all other services together
	logins := loginService.NewLoginService(cfg.Login, loginRepository, accounts, credentials, linking, registry)
	registrations := registrationService.NewRegistrationService(cfg.Registration, logger, registrationRepository, accounts, credentials, linking, emailClient)
	orgs := orgService.NewOrgService(logger, orgRepository, accounts, emailClient)
	packages := galleryService.NewGalleryService(packageRepository, orgs)

	// One-shot notices ride the same redis instance as the pending
	// assertions
	notices := notice.NewStore(redisClient, cfg.Linking.Lifetime)

	// Create session manager
	store := sessions.NewCookieStore([]byte(cfg.Session.Cookie.Name))
	sessionHttp := sessionTransport.NewSessionHttp(cfg, store, sessionSvc)

	// Setup HTTP Server
	router := transport.NewHttp(cfg)

	// Attach Middlewares
	//
	// Order of execution:
	// 1. Rate Limiter
	// 2. Security Middleware (Adds essential security headers to request)
	// 3. Error Middleware handles any errors that were generated from
	//    route execution
	// 4. Session Middleware resolves the cookie to a session for
	//    downstream handlers
	if cfg.Server.RPS > 0 {
		router.Use(transport.RateLimiterMiddleware(cfg.Server.RPS))
	}
	router.Use(transport.SecurityMiddleware(cfg), transport.ErrorMiddleware(logger), sessionHttp.Middleware())

	// Attach routes
	loginTransport.NewLoginHttp(cfg, sessionHttp, logins, linking, credentials, registry, router)
	registrationTransport.NewRegistrationHttp(cfg, sessionHttp, registrations, router)
	linkingTransport.NewLinkingHttp(cfg, logger, sessionHttp, linking, credentials, notices, emailClient, router)
	noticeTransport.NewNoticeHttp(notices, router)
	orgTransport.NewOrgHttp(orgs, accounts, router)
	galleryTransport.NewGalleryHttp(packages, router)

	// Start HTTP server
	if err := transport.RunHttp(cfg, logger, router); err != nil {
		log.Panic(err)
	}
}
