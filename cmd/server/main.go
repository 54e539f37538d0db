package main // Entry point package

import (
	"context" // bounds the schema bootstrap
	"log"     // Logging library
	"time"    // timeout durations

	"github.com/joho/godotenv"    // loads .env files into the environment
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/online-voting/internal/config"     // Internal config loader
	"github.com/iliyamo/online-voting/internal/database"   // MySQL connection and schema
	"github.com/iliyamo/online-voting/internal/handler"    // HTTP handlers
	"github.com/iliyamo/online-voting/internal/middleware" // rate limiting and caching
	"github.com/iliyamo/online-voting/internal/queue"      // vote audit consumer
	"github.com/iliyamo/online-voting/internal/repository" // data access layer
	"github.com/iliyamo/online-voting/internal/router"     // Internal router setup
	"github.com/iliyamo/online-voting/internal/tally"      // results computation
)

func main() {
	// Load .env if present; real deployments set variables directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.Load() // Load environment config

	// Open the relational store and make sure the schema (including the
	// unique vote constraint) exists before serving traffic.
	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database open failed: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		log.Fatalf("schema bootstrap failed: %v", err)
	}
	cancel()

	// Repositories and the tally engine.
	users := repository.NewUserRepo(db)
	candidates := repository.NewCandidateRepo(db)
	votes := repository.NewVoteRepo(db)
	engine := tally.NewEngine(votes, users, candidates)

	// Handlers.
	healthHandler := handler.NewHealthHandler(db)
	authHandler := handler.NewAuthHandler(cfg, users)
	candidateHandler := handler.NewCandidateHandler(candidates)
	voteHandler := handler.NewVoteHandler(candidates, votes)
	adminHandler := handler.NewAdminHandler(candidates)
	statsHandler := handler.NewStatsHandler(engine)
	resultsHandler := handler.NewResultsHandler(engine)

	// Redis-backed middleware; both become pass-throughs when Redis is
	// unreachable so the API still works without it.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable: rate limiting and response caching disabled")
	}
	rate := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	// Background consumer appending vote.cast events to the audit log.
	go func() {
		if err := queue.StartVoteConsumer(); err != nil {
			log.Printf("vote consumer stopped: %v", err)
		}
	}()

	e := echo.New() // Create Echo instance
	router.RegisterRoutes(e, healthHandler)
	router.RegisterPublic(e, resultsHandler, cache)
	router.RegisterAuth(e, authHandler, rate)
	router.RegisterVoter(e, authHandler, candidateHandler, voteHandler, cfg.JWTSecret, rate)
	router.RegisterAdmin(e, authHandler, adminHandler, statsHandler, cfg.JWTSecret)

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
