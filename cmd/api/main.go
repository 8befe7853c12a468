package main

import (
	"context"
	"os"
	"strconv"

	"cloudcache/internal/domain/sqlite"
	"cloudcache/internal/domain/sqlite/repository"
	handler2 "cloudcache/internal/http/handler"
	authmw "cloudcache/internal/http/middleware"
	"cloudcache/internal/service"
	"cloudcache/internal/utils/uid"
	"cloudcache/internal/validators"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

const envVarsPrefix = "/cloudcache/prod/"

func main() {
	validate := validator.New()
	registerValidators(validate)

	// Loads env vars depending on environment
	if os.Getenv("GO_ENV") == "production" {
		loadProdEnv() // AWS SSM Parameter Store
	} else {
		// Loads from .env
		err := godotenv.Load()
		if err != nil {
			panic(err)
		}
	}

	uid.Init(machineID())

	// Init SQLite
	db, err := sqlite.Init(envOr("CLOUDCACHE_DB", "database.db"))
	if err != nil {
		panic(err)
	}

	// Gettings repos
	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	notebookRepo := repository.NewNotebookRepository(db)
	noteRepo := repository.NewNoteRepository(db)

	// Getting services
	userService := service.NewUserService(userRepo, validate)
	accessService := service.NewAccessService(tokenRepo, userRepo)
	notebookService := service.NewNotebookService(notebookRepo, validate)
	noteService := service.NewNoteService(noteRepo, notebookRepo, validate)

	// Gettings handlers
	userRoutes := handler2.NewUserDefault(userService)
	accessRoutes := handler2.NewAccessDefault(accessService)
	notebookRoutes := handler2.NewNotebookDefault(notebookService)
	noteRoutes := handler2.NewNoteDefault(noteService)

	e := echo.New()
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("1M"))

	// Users and token exchange (public)
	e.POST("/users", userRoutes.CreateUser)
	e.GET("/users/:username", userRoutes.GetUser)
	e.GET("/access", accessRoutes.GetAccess)

	// Notebooks and notes (token required)
	auth := authmw.NewAuthMiddleware(&authmw.AuthMiddlewareConfig{
		TokenRepo: tokenRepo,
		UserRepo:  userRepo,
	})
	notebooks := e.Group("/notebooks", auth)
	notebooks.GET("", notebookRoutes.GetNotebooks)
	notebooks.POST("", notebookRoutes.CreateNotebook)
	notebooks.GET("/:notebook/notes", noteRoutes.GetNotes)
	notebooks.POST("/:notebook/notes", noteRoutes.CreateNote)

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)

	if err := e.Start(envOr("CLOUDCACHE_ADDR", ":7070")); err != nil {
		panic(err)
	}
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation("nospaces", validators.NoWhiteSpaces)
}

func machineID() int64 {
	raw := os.Getenv("CLOUDCACHE_NODE_ID")
	if raw == "" {
		return 1
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Fatalf("invalid CLOUDCACHE_NODE_ID %q: %v", raw, err)
	}
	return id
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func loadProdEnv() {
	ctx := context.Background()
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion("us-east-2"))
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	client := ssm.NewFromConfig(cfg)
	out, err := client.GetParametersByPath(ctx, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})
	if err != nil {
		log.Fatalf("unable to load prod environment, %v", err)
	}

	prefixLength := len(envVarsPrefix)
	// Export vars
	for _, param := range out.Parameters {
		key := (*param.Name)[prefixLength:]
		value := *param.Value
		enverr := os.Setenv(key, value)
		if enverr != nil {
			log.Fatalf("unable to set environment variable, %v", enverr)
		}
	}
	log.Debugf("loaded %d prod environment variables", len(out.Parameters))
}

func healthCheckRoute(c echo.Context) error {
	return c.String(200, "OK")
}
