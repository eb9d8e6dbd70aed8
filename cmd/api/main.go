package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"talenthub/cmd/app"
	"talenthub/internal/config"
	handlers "talenthub/internal/handler"
	"talenthub/internal/logger"
	"talenthub/internal/middleware"
)

func main() {
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY is not set")
	}

	zl, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer zl.Close()

	application, err := app.New(cfg, zl)
	if err != nil {
		zl.Fatalw("starting application", "error", err)
	}
	defer application.DB.CloseDB()

	handler := handlers.NewHandlers(
		application.Feed,
		application.Board,
		application.Moderation,
		application.Services,
		application.Repo,
		cfg,
		zl,
	)

	router := mux.NewRouter()
	router.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/register", handler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh-token", handler.RefreshToken).Methods(http.MethodPost)

	api.HandleFunc("/me", handler.GetCurrentUser).Methods(http.MethodGet)

	api.HandleFunc("/talents", handler.GetFeed).Methods(http.MethodGet)
	api.HandleFunc("/talents", handler.UploadTalent).Methods(http.MethodPost)
	api.HandleFunc("/talents/{id}", handler.DeleteTalent).Methods(http.MethodDelete)
	api.HandleFunc("/talents/{id}/like", handler.ToggleLike).Methods(http.MethodPost)
	api.HandleFunc("/talents/{id}/comments", handler.GetComments).Methods(http.MethodGet)
	api.HandleFunc("/talents/{id}/comments", handler.PostComment).Methods(http.MethodPost)

	api.HandleFunc("/requests", handler.ListRequests).Methods(http.MethodGet)
	api.HandleFunc("/requests", handler.CreateRequest).Methods(http.MethodPost)

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminOnly)
	admin.HandleFunc("/requests/{id}/status", handler.UpdateRequestStatus).Methods(http.MethodPatch)
	admin.HandleFunc("/users", handler.ListUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}/role", handler.UpdateUserRole).Methods(http.MethodPatch)

	handlerChain := middleware.Chain(
		router,
		middleware.Auth(cfg),
		middleware.CORS,
		middleware.Logging(zl),
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	zl.Infow("server listening", "addr", addr)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		zl.Fatalw("server stopped", "error", err)
	}
}
