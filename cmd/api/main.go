package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"socialgram/cmd/app"
	"socialgram/internal/config"
	handlers "socialgram/internal/handler"
	"socialgram/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, repo, services, blacklist := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, cfg)

	// background publication of scheduled posts
	schedulerCtx, stopScheduler := context.WithCancel(context.Background())
	defer stopScheduler()
	go services.Scheduler.Run(schedulerCtx)

	mux := http.NewServeMux()

	// setting up routes
	mux.HandleFunc("/", handlers.HomeHandler)
	mux.HandleFunc("/health", handlers.HealthHandler)

	mux.HandleFunc("/api/auth/register", handler.Register)
	mux.HandleFunc("/api/auth/login", handler.Login)
	mux.HandleFunc("/api/auth/refresh-token", handler.RefreshToken)
	mux.HandleFunc("/api/auth/logout", handler.Logout)

	mux.HandleFunc("/api/me", handler.Me)
	mux.HandleFunc("/api/me/avatar", handler.UploadAvatar)
	mux.HandleFunc("/api/me/following", handler.ListFollowing)
	mux.HandleFunc("/api/me/followers", handler.ListFollowers)
	mux.HandleFunc("/api/users/", handler.UserRouter)

	mux.HandleFunc("/api/posts", handler.Posts)
	mux.HandleFunc("/api/posts/", handler.PostRouter)
	mux.HandleFunc("/api/comments/", handler.CommentRouter)

	handlerChain := middleware.Chain(
		mux,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
		middleware.AuthMiddleware(cfg, blacklist),
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
