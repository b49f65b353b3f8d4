package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/devfolio/backend/internal/handler"
	"github.com/devfolio/backend/internal/logging"
	"github.com/devfolio/backend/internal/mailer"
	"github.com/devfolio/backend/internal/repository"
	"github.com/devfolio/backend/internal/service"
	"github.com/devfolio/backend/pkg/github"
	"github.com/devfolio/backend/pkg/leetcode"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	logging.Setup()

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	clientOrigin := os.Getenv("CLIENT_ORIGIN")
	if clientOrigin == "" {
		clientOrigin = "*"
	}
	origins := strings.Split(clientOrigin, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	// Persistence is optional: with no DATABASE_URL the server still runs,
	// the contact flow just stops storing messages and the project routes
	// report store errors.
	var pool *pgxpool.Pool
	if dbURL := os.Getenv("DATABASE_URL"); dbURL == "" {
		slog.Warn("DATABASE_URL is not set; persistence disabled")
	} else {
		p, err := repository.NewPool(context.Background(), dbURL)
		if err != nil {
			logging.Fatal("failed to connect to database", "error", err)
		}
		pool = p
		defer pool.Close()
	}

	contactRepo := repository.NewPgContactRepository(pool)
	projectRepo := repository.NewPgProjectRepository(pool)

	smtpPort := 587
	if p := os.Getenv("SMTP_PORT"); p != "" {
		if n, err := strconv.Atoi(p); err == nil {
			smtpPort = n
		}
	}
	m := mailer.New(mailer.Config{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     smtpPort,
		Username: os.Getenv("SMTP_USER"),
		Password: os.Getenv("SMTP_PASS"),
		From:     os.Getenv("SMTP_FROM"),
		To:       os.Getenv("CONTACT_TO"),
	})

	contactService := service.NewContactService(contactRepo, m)
	projectService := service.NewProjectService(projectRepo)

	var db handler.Pinger
	if pool != nil {
		db = pool
	}
	h := handler.New(db, origins)
	contactHandler := handler.NewContactHandler(contactService)
	projectHandler := handler.NewProjectHandler(projectService)
	statsHandler := handler.NewStatsHandler(
		github.NewClient(os.Getenv("GITHUB_TOKEN")),
		leetcode.NewClient(),
		os.Getenv("GITHUB_USERNAME"),
	)

	// Two rate-limit policies: lenient for the whole API, strict for the
	// contact form (both apply to contact submissions).
	apiLimiter := handler.NewRateLimiter(15*time.Minute, 300)
	contactLimiter := handler.NewRateLimiter(time.Hour, 20)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("GET /api/projects", projectHandler.List)
	mux.HandleFunc("POST /api/projects", projectHandler.Create)
	mux.Handle("POST /api/contact", contactLimiter.Middleware(http.HandlerFunc(contactHandler.Submit)))
	mux.HandleFunc("GET /api/github", statsHandler.GitHub)
	mux.HandleFunc("GET /api/leetcode", statsHandler.LeetCode)

	chain := handler.RequestLogger(
		handler.SecurityHeaders(
			h.CORS(
				apiLimiter.Middleware(mux))))

	server := &http.Server{
		Addr:        ":" + port,
		Handler:     chain,
		ReadTimeout: 10 * time.Second,
		// Must outlast the 15s upstream proxy timeout.
		WriteTimeout: 20 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
