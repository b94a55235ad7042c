// Package server contains HTTP handlers and route wiring for the blog.
package server

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"blogicum/internal/cache"
	"blogicum/internal/config"
	"blogicum/internal/database"
	"blogicum/internal/middleware"
	"blogicum/internal/repository"
	"blogicum/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	tokenIssuer   = "blogicum-api"
	tokenAudience = "blogicum-client"
	tokenLifetime = 24 * time.Hour
)

// Server holds all dependencies and provides handlers
type Server struct {
	config *config.Config
	db     *gorm.DB
	redis  *redis.Client

	userRepo     repository.UserRepository
	postRepo     repository.PostRepository
	commentRepo  repository.CommentRepository
	categoryRepo repository.CategoryRepository
	locationRepo repository.LocationRepository

	postService    *service.PostService
	commentService *service.CommentService
	userService    *service.UserService
	feedService    *service.FeedService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, cache.GetClient()), nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Used by tests and bootstrap code that establish DB/Redis themselves.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	locationRepo := repository.NewLocationRepository(db)

	server := &Server{
		config:       cfg,
		db:           db,
		redis:        redisClient,
		userRepo:     userRepo,
		postRepo:     postRepo,
		commentRepo:  commentRepo,
		categoryRepo: categoryRepo,
		locationRepo: locationRepo,
	}
	server.postService = service.NewPostService(postRepo, commentRepo)
	server.commentService = service.NewCommentService(commentRepo, postRepo)
	server.userService = service.NewUserService(userRepo)
	server.feedService = service.NewFeedService(postRepo, categoryRepo, userRepo, cfg.PageSize)

	return server
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.TracingMiddleware())
	app.Use(middleware.ContextMiddleware())
	app.Use(helmet.New())
	app.Use(middleware.StructuredLogger())

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))
}

// SetupRoutes configures all routes for the application.
// The category slug catch-all is registered last so it cannot shadow the
// fixed /posts, /profile, /auth and /health prefixes.
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	auth := app.Group("/auth")
	auth.Get("/login", s.LoginPage)
	auth.Post("/login", s.Login)
	auth.Post("/signup", s.Signup)
	auth.Post("/logout", s.Logout)

	app.Get("/", s.Index)

	posts := app.Group("/posts")
	posts.Get("/create", s.AuthRequired(), s.CreatePostPage)
	posts.Post("/create", s.AuthRequired(), s.CreatePost)
	// Fixed segments before the bare /:postId route
	posts.Get("/:postId/edit", s.AuthOptional(), s.EditPostPage)
	posts.Post("/:postId/edit", s.AuthOptional(), s.EditPost)
	posts.Post("/:postId/comment", s.AuthRequired(), s.AddComment)
	posts.Get("/:postId/edit_comment/:commentId", s.AuthRequired(), s.EditCommentPage)
	posts.Post("/:postId/edit_comment/:commentId", s.AuthRequired(), s.EditComment)
	posts.Get("/:postId/delete", s.AuthRequired(), s.DeletePostPage)
	posts.Post("/:postId/delete", s.AuthRequired(), s.DeletePost)
	posts.Get("/:postId/delete_comment/:commentId", s.AuthRequired(), s.DeleteCommentPage)
	posts.Post("/:postId/delete_comment/:commentId", s.AuthRequired(), s.DeleteComment)
	posts.Get("/:postId", s.AuthOptional(), s.PostDetail)

	profile := app.Group("/profile")
	profile.Get("/:id/edit", s.AuthRequired(), s.EditProfilePage)
	profile.Post("/:id/edit", s.AuthRequired(), s.EditProfile)
	profile.Get("/:userName", s.AuthOptional(), s.Profile)

	app.Get("/:categorySlug", s.CategoryPosts)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	// The cache is optional; the app serves without it.
	redisStatus := "disabled"
	if s.redis != nil {
		redisStatus = "healthy"
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// AuthRequired returns middleware that redirects unauthenticated requests to
// the login page.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, username, ok := s.authenticate(c)
		if !ok {
			return redirectToLogin(c)
		}
		s.setActor(c, userID, username)
		return c.Next()
	}
}

// AuthOptional returns middleware that records the actor when a valid token
// is presented but lets anonymous requests through.
func (s *Server) AuthOptional() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if userID, username, ok := s.authenticate(c); ok {
			s.setActor(c, userID, username)
		}
		return c.Next()
	}
}

func (s *Server) setActor(c *fiber.Ctx, userID uint, username string) {
	c.Locals("userID", userID)
	c.Locals("username", username)
	ctx := context.WithValue(c.UserContext(), middleware.UserIDKey, userID)
	c.SetUserContext(ctx)
}

// authenticate extracts and validates the bearer token. Returns the actor's
// id and username, or ok=false for anonymous or invalid credentials.
func (s *Server) authenticate(c *fiber.Ctx) (uint, string, bool) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return 0, "", false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return 0, "", false
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", false
	}
	if issuer, issuerOk := claims["iss"].(string); !issuerOk || issuer != tokenIssuer {
		return 0, "", false
	}
	if audience, audienceOk := claims["aud"].(string); !audienceOk || audience != tokenAudience {
		return 0, "", false
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, "", false
	}
	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return 0, "", false
	}

	// Revoked tokens carry a blacklisted jti.
	if jti, exists := claims["jti"].(string); exists && jti != "" && s.redis != nil {
		blacklisted, err := s.redis.Exists(c.Context(), "blacklist:"+jti).Result()
		if err == nil && blacklisted > 0 {
			return 0, "", false
		}
	}

	username, _ := claims["username"].(string)
	return uint(userID), username, true
}

// Shutdown releases server resources after the HTTP listener has stopped.
func (s *Server) Shutdown(ctx context.Context) error {
	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
