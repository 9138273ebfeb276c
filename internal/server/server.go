// Package server assembles the Fiber application: template engine,
// middleware stack, TLS listener, and the route table in routes.go.
package server

import (
	"crypto/sha256"
	"crypto/tls"
	"crypto/x509"
	"encoding/base64"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/encryptcookie"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/session"
	"github.com/gofiber/fiber/v3/middleware/static"
	"github.com/gofiber/template/html/v2"

	"seoscope/internal/config"
	"seoscope/internal/handlers"
)

// Server wraps the Fiber app and configuration.
type Server struct {
	App *fiber.App
	Cfg *config.Config
}

// New creates the app with the template engine, error handler, and the
// full middleware stack wired in.
func New(cfg *config.Config) *Server {
	engine := html.New("./views", ".html")
	engine.Reload(cfg.IsDev())

	app := fiber.New(fiber.Config{
		Views:        engine,
		ViewsLayout:  "layouts/main",
		ErrorHandler: errorHandler(cfg),
	})

	s := &Server{App: app, Cfg: cfg}
	s.useMiddleware()
	return s
}

// errorHandler renders the error page for browser routes and the JSON
// error envelope for /api/v1 routes, so API clients never get HTML back.
func errorHandler(cfg *config.Config) fiber.ErrorHandler {
	return func(c fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal Server Error"
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		}

		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(code).JSON(fiber.Map{
				"status": "error",
				"error":  message,
			})
		}

		return c.Status(code).Render("error", handlers.MergeBranding(fiber.Map{
			"Title":   "Error",
			"Message": message,
		}, cfg))
	}
}

func (s *Server) useMiddleware() {
	app, cfg := s.App, s.Cfg

	app.Use(recover.New())
	app.Use(logger.New())

	// CORS: the dashboard itself is same-origin; extra origins are for API
	// clients pointed at this instance.
	origins := []string{cfg.BaseURL}
	if cfg.CORSOrigins != "" {
		origins = strings.Split(cfg.CORSOrigins, ",")
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", "HX-Request", "HX-Current-URL", "HX-Target"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	app.Use(encryptcookie.New(encryptcookie.Config{
		Key: deriveEncryptionKey(cfg.SessionSecret),
	}))

	sessionMiddleware, _ := session.NewWithStore(session.Config{
		CookieSecure:   cfg.TLSEnabled || !cfg.IsDev(),
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
	app.Use(sessionMiddleware)

	// Analyses fetch and parse a remote page per request, so the budget is
	// tighter than a typical page-view limit. Prometheus scrapes bypass it.
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: 1 * time.Minute,
		Next: func(c fiber.Ctx) bool {
			return c.Path() == "/metrics"
		},
		KeyGenerator: func(c fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"status": "error",
				"error":  "rate limit exceeded, try again shortly",
			})
		},
	}))

	app.Get("/static/*", static.New("./static"))
}

// Start listens on the configured address, with TLS or mTLS when enabled.
func (s *Server) Start() error {
	if !s.Cfg.TLSEnabled {
		return s.App.Listen(s.Cfg.ServerAddr)
	}

	tlsConfig := buildTLSConfig(s.Cfg)
	mode := "TLS"
	if s.Cfg.TLSCAFile != "" {
		mode = "mTLS"
	}
	log.Printf("Starting server with %s on %s", mode, s.Cfg.ServerAddr)

	return s.App.Listen(s.Cfg.ServerAddr, fiber.ListenConfig{
		CertFile:      s.Cfg.TLSCertFile,
		CertKeyFile:   s.Cfg.TLSKeyFile,
		TLSConfigFunc: func(tc *tls.Config) {
			tc.MinVersion = tlsConfig.MinVersion
			tc.ClientCAs = tlsConfig.ClientCAs
			tc.ClientAuth = tlsConfig.ClientAuth
		},
	})
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	return s.App.Shutdown()
}

// deriveEncryptionKey turns the session secret into the 32-byte key the
// cookie encryption middleware expects, whatever length the secret is.
func deriveEncryptionKey(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// buildTLSConfig builds the listener TLS config; a CA file switches on
// client-certificate verification.
func buildTLSConfig(cfg *config.Config) *tls.Config {
	tlsConfig := &tls.Config{MinVersion: tls.VersionTLS12}

	if cfg.TLSCAFile != "" {
		caCert, err := os.ReadFile(cfg.TLSCAFile)
		if err != nil {
			log.Fatalf("Failed to read CA file: %v", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(caCert) {
			log.Fatal("Failed to parse CA certificate")
		}
		tlsConfig.ClientCAs = pool
		tlsConfig.ClientAuth = tls.RequireAndVerifyClientCert
	}

	return tlsConfig
}
