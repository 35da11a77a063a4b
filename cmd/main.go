package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	_ "github.com/lib/pq"

	"github.com/Vovarama1992/techstore-chat-bridge/internal/ai"
	"github.com/Vovarama1992/techstore-chat-bridge/internal/config"
	"github.com/Vovarama1992/techstore-chat-bridge/internal/ratelimit"
	"github.com/Vovarama1992/techstore-chat-bridge/internal/store"
	"github.com/Vovarama1992/techstore-chat-bridge/internal/support"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// --- Knowledge store ---
	var st store.Store
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db open error: %v", err)
		}
		defer db.Close()

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := db.PingContext(pingCtx); err != nil {
			log.Fatalf("db ping error: %v", err)
		}

		st = store.NewRepo(db)
		log.Println("[store] using postgres")
	} else {
		st = store.NewSeededStore()
		log.Println("[store] using compiled-in catalogue")
	}

	// --- AI ---
	var aiClient ai.AI
	if cfg.OpenAIKey != "" {
		aiClient = ai.NewOpenAIClient(ai.Config{
			APIKey:      cfg.OpenAIKey,
			Model:       cfg.OpenAIModel,
			BaseURL:     cfg.OpenAIBaseURL,
			MaxTokens:   cfg.OpenAIMaxTokens,
			Temperature: cfg.OpenAITemperature,
		})
	} else {
		log.Println("warning: OPENAI_API_KEY not set, /api/chat will answer with a configuration error")
	}

	// --- Router ---
	limiter := ratelimit.New(cfg.RateLimitMax, cfg.RateLimitWindow)
	go limiter.Run(ctx)

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	r.Use(limiter.Middleware)

	// --- Support module wiring ---
	supportService := support.NewService(st, aiClient)
	supportHandler := support.NewHandler(supportService)

	support.RegisterRoutes(r, supportHandler)

	// --- health ---
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	log.Printf("listening on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
