package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"book-review-service/internal/handlers"
	"book-review-service/internal/middleware"
	"book-review-service/internal/models"
	"book-review-service/internal/service"
	"book-review-service/internal/session"
	"book-review-service/internal/store"
	"book-review-service/internal/utils"
)

type testEnv struct {
	Users    *store.UserStore
	Catalog  *store.BookCatalog
	Sessions *session.Manager
	Router   *mux.Router
}

// newTestEnv wires the handlers the same way main does, against fresh
// in-memory stores.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	utils.InitJwtSecret("test-secret")

	users := store.NewUserStore()
	catalog := store.NewBookCatalog()
	catalog.Add(models.Book{ISBN: "978-1", Title: "Things Fall Apart", Author: "Chinua Achebe"})
	catalog.Add(models.Book{ISBN: "978-2", Title: "Fairy Tales", Author: "Hans Christian Andersen"})

	trail := store.NewAuditTrail()
	auditLogger := utils.Logger{Trail: trail}
	sessions := session.NewManager(time.Hour)
	reviewService := service.NewReviewService(sessions, users, catalog, auditLogger)

	router := mux.NewRouter()
	router.Use(middleware.JSONMiddleware)

	authHandler := handlers.NewAuthHandler(users, sessions, auditLogger)
	router.HandleFunc("/register", authHandler.Register).Methods("POST")
	router.HandleFunc("/login", authHandler.Login).Methods("POST")

	bookHandler := handlers.NewBookHandler(catalog)
	router.HandleFunc("/", bookHandler.GetBooks).Methods("GET")
	router.HandleFunc("/isbn/{isbn}", bookHandler.GetBook).Methods("GET")
	router.HandleFunc("/author/{author}", bookHandler.GetBooksByAuthor).Methods("GET")
	router.HandleFunc("/title/{title}", bookHandler.GetBooksByTitle).Methods("GET")
	router.HandleFunc("/review/{isbn}", bookHandler.GetReviews).Methods("GET")

	sessionMiddleware := &middleware.SessionMiddleware{Sessions: sessions}
	authRouter := router.PathPrefix("/auth").Subrouter()
	authRouter.Use(sessionMiddleware.RequireSession)

	reviewHandler := handlers.NewReviewHandler(reviewService)
	authRouter.HandleFunc("/review/{isbn}", reviewHandler.AddReview).Methods("PUT")
	authRouter.HandleFunc("/review/{isbn}", reviewHandler.DeleteReview).Methods("DELETE")
	authRouter.HandleFunc("/logout", authHandler.Logout).Methods("POST")

	return &testEnv{
		Users:    users,
		Catalog:  catalog,
		Sessions: sessions,
		Router:   router,
	}
}

// do performs a request against the router; token, when non-empty, is
// sent as the session cookie.
func (e *testEnv) do(t *testing.T, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		reqBytes, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(reqBytes)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	}

	w := httptest.NewRecorder()
	e.Router.ServeHTTP(w, req)
	return w
}

func newBearerRequest(method, target, token string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func serve(env *testEnv, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	env.Router.ServeHTTP(w, req)
	return w
}

// loginAs registers the user and returns a live session token.
func (e *testEnv) loginAs(t *testing.T, username, password string) string {
	t.Helper()

	if err := e.Users.Register(username, password); err != nil {
		t.Fatalf("Register(%s) = %v", username, err)
	}

	w := e.do(t, http.MethodPost, "/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login returned %d: %s", w.Code, w.Body.String())
	}

	var resp handlers.LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("login response has no token")
	}
	return resp.Token
}
