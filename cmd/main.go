package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"book-review-service/configs"
	"book-review-service/internal/daemon"
	"book-review-service/internal/handlers"
	"book-review-service/internal/middleware"
	"book-review-service/internal/service"
	"book-review-service/internal/session"
	"book-review-service/internal/store"
	"book-review-service/internal/utils"
)

func main() {
	cfg := configs.LoadConfig()
	if cfg.JWTSecret == "" {
		// sessions are process-local, so an ephemeral secret only means
		// tokens die with the process
		cfg.JWTSecret = uuid.NewString()
		log.Println("JWT_SECRET not set, using ephemeral secret")
	}
	utils.InitJwtSecret(cfg.JWTSecret)

	users := store.NewUserStore()
	catalog := store.NewBookCatalog()

	books := store.DefaultBooks()
	if cfg.BooksFile != "" {
		loaded, err := store.LoadBooksFile(cfg.BooksFile)
		if err != nil {
			log.Fatalf("Failed to load books file: %v", err)
		}
		books = loaded
	}
	for _, book := range books {
		catalog.Add(book)
	}
	log.Println("Seeded catalog with", len(books), "books")

	trail := store.NewAuditTrail()
	auditLogger := utils.Logger{Trail: trail}

	sessions := session.NewManager(cfg.SessionTTL)
	reviewService := service.NewReviewService(sessions, users, catalog, auditLogger)

	r := mux.NewRouter()
	r.Use(middleware.JSONMiddleware)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "OK")
	})

	authHandler := handlers.NewAuthHandler(users, sessions, auditLogger)
	r.HandleFunc("/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/login", authHandler.Login).Methods("POST")

	bookHandler := handlers.NewBookHandler(catalog)
	r.HandleFunc("/", bookHandler.GetBooks).Methods("GET")
	r.HandleFunc("/isbn/{isbn}", bookHandler.GetBook).Methods("GET")
	r.HandleFunc("/author/{author}", bookHandler.GetBooksByAuthor).Methods("GET")
	r.HandleFunc("/title/{title}", bookHandler.GetBooksByTitle).Methods("GET")
	r.HandleFunc("/review/{isbn}", bookHandler.GetReviews).Methods("GET")

	sessionMiddleware := &middleware.SessionMiddleware{Sessions: sessions}
	authRouter := r.PathPrefix("/auth").Subrouter()
	authRouter.Use(sessionMiddleware.RequireSession)

	reviewHandler := handlers.NewReviewHandler(reviewService)
	authRouter.HandleFunc("/review/{isbn}", reviewHandler.AddReview).Methods("PUT")
	authRouter.HandleFunc("/review/{isbn}", reviewHandler.DeleteReview).Methods("DELETE")
	authRouter.HandleFunc("/logout", authHandler.Logout).Methods("POST")

	logExporter := daemon.LogExporter{Trail: trail}
	logExporter.InitLogExporter()

	sessionSweeper := daemon.SessionSweeper{Sessions: sessions}
	sessionSweeper.InitSessionSweeper()

	var server = http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Println("Server starting on port", cfg.Port)
		log.Fatal(server.ListenAndServe())
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	log.Println("Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Graceful shutdown failed: %v", err)
	}
	log.Println("Server shut down.")
}
