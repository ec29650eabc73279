// Package server hosts the GraphQL API over HTTP.
package server

import (
	"context"
	"strings"
	"time"

	"inkwell/auth"
	"inkwell/config"
	"inkwell/database"
	"inkwell/graph"
	"inkwell/middleware"
	"inkwell/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	graphql "github.com/graph-gophers/graphql-go"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config *config.Config
	db     *gorm.DB
	schema *graphql.Schema
	tokens *auth.TokenService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	return NewServerWithDB(cfg, db)
}

// NewServerWithDB creates a server on an already-open database connection.
func NewServerWithDB(cfg *config.Config, db *gorm.DB) (*Server, error) {
	tokens := auth.NewTokenService(cfg.JWTSecret)

	resolver := graph.NewResolver(
		repository.NewUserRepository(db),
		repository.NewProfileRepository(db),
		repository.NewPostRepository(db),
		tokens,
	)

	schema, err := graph.NewSchema(resolver)
	if err != nil {
		return nil, err
	}

	return &Server{
		config: cfg,
		db:     db,
		schema: schema,
		tokens: tokens,
	}, nil
}

// App builds the Fiber application with middleware and routes configured.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "Inkwell GraphQL API",
	})

	app.Use(requestid.New())
	app.Use(middleware.StructuredLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: s.config.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(s.WithIdentity())

	app.Get("/", s.HealthCheck)
	app.Post("/graphql", s.GraphQL)

	return app
}

// WithIdentity decodes an optional bearer token and attaches the identity to
// the request context. A missing or invalid token leaves the request
// anonymous; the resolvers own the unauthenticated outcome, so this never
// rejects a request.
func (s *Server) WithIdentity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Next()
		}

		userInfo, err := s.tokens.Parse(parts[1])
		if err != nil {
			return c.Next()
		}

		c.Locals("userID", userInfo.UserID)
		c.SetUserContext(auth.WithUserInfo(c.UserContext(), userInfo))
		return c.Next()
	}
}

// graphqlRequest is the standard GraphQL-over-HTTP request body.
type graphqlRequest struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

// GraphQL handles POST /graphql
func (s *Server) GraphQL(c *fiber.Ctx) error {
	var req graphqlRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp := s.schema.Exec(c.UserContext(), req.Query, req.OperationName, req.Variables)
	return c.JSON(resp)
}

// HealthCheck handles GET /
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	status := fiber.StatusOK
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"message": "Inkwell",
		"version": "1.0.0",
		"checks": fiber.Map{
			"database": dbStatus,
		},
		"time": time.Now(),
	})
}

// Shutdown releases server resources.
func (s *Server) Shutdown(ctx context.Context) error {
	if sqlDB, err := s.db.DB(); err == nil {
		return sqlDB.Close()
	}
	return nil
}
