package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/agent"
	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/auth"
	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/chat"
	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/config"
	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/files"
	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/middleware"
	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/providers"
	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/research"
	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/store"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	// ── PostgreSQL ────────────────────────────────────────────
	pgPool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("postgres connect: %v", err)
	}
	defer pgPool.Close()
	users := store.NewUserStore(pgPool)
	if err := users.Migrate(ctx); err != nil {
		log.Fatalf("postgres migrate: %v", err)
	}

	// ── MongoDB ──────────────────────────────────────────────
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("mongo connect: %v", err)
	}
	defer mongoClient.Disconnect(ctx)
	mongoDB := mongoClient.Database(cfg.MongoDB)

	chatStore := store.NewChatStore(mongoDB)
	if err := chatStore.EnsureIndexes(ctx); err != nil {
		log.Fatalf("mongo indexes: %v", err)
	}
	reportStore := store.NewReportStore(mongoDB)

	// ── Redis ────────────────────────────────────────────────
	rdb, err := store.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		log.Fatalf("redis connect: %v", err)
	}
	defer rdb.Close()
	sessions := auth.NewSessionStore(rdb)

	// ── MinIO ────────────────────────────────────────────────
	minioStore, err := store.NewMinioStore(
		ctx, cfg.MinioEndpoint, cfg.MinioAccessKey,
		cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL,
	)
	if err != nil {
		log.Fatalf("minio connect: %v", err)
	}

	// ── Providers and agent ──────────────────────────────────
	providerSet := providers.NewSet()
	llm := agent.NewOpenAIAgent(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.AgentTimeout)
	parser := agent.NewOutputParser(llm)

	// ── Services ─────────────────────────────────────────────
	researchSvc := research.NewService(providerSet, reportStore, llm, parser, cfg.ResearchConcurrency)
	chatSvc := chat.NewService(chatStore, llm, providerSet.ToolRegistry())

	// ── Handlers ─────────────────────────────────────────────
	authHandler := auth.NewHandler(users, sessions)
	researchHandler := research.NewHandler(researchSvc)
	chatHandler := chat.NewHandler(chatSvc)
	filesHandler := files.NewHandler(minioStore)

	// ── Router ───────────────────────────────────────────────
	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Auth routes (public)
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)
		r.With(middleware.RequireAuth(sessions)).Get("/me", authHandler.Me)
	})

	// Application routes (protected)
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(sessions))
		researchHandler.Routes(r)
		chatHandler.Routes(r)
		filesHandler.Routes(r)
		providerSet.Routes(r)
	})

	// ── Server ───────────────────────────────────────────────
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Minute,
		WriteTimeout: 5 * time.Minute,
	}

	go func() {
		log.Printf("Backend listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	shutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	srv.Shutdown(shutCtx)
}
