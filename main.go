package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	auth "Tunelab/internal/auth"
	batch "Tunelab/internal/calc/premium/batch"
	sheet "Tunelab/internal/calc/premium/sheet"
	report "Tunelab/internal/calc/report"
	tuning "Tunelab/internal/calc/tuning"
	config "Tunelab/internal/config"
	prefs "Tunelab/internal/prefs"
	repo "Tunelab/internal/repo"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, cfg config.Config, store repo.Repository) {
	authEnv := &auth.Authenv{JWTkey: cfg.TokenKey, Secure: cfg.TLS()}
	prefsH := &prefs.PrefsHandler{Repo: store}

	limiter := auth.NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	tuningH := &tuning.Handler{}
	batchH := &batch.Handler{}
	sheetH := &sheet.Handler{}
	reportH := &report.Handler{}

	api.HandleFunc("/tune/calc", tuningH.Calc).Methods("POST")
	api.HandleFunc("/tune/swap-options", tuningH.SwapOptions).Methods("GET")
	api.HandleFunc("/tune/batch", batchH.Tune).Methods("POST")
	api.HandleFunc("/tune/import", sheetH.Import).Methods("POST")
	api.HandleFunc("/tune/export", sheetH.Export).Methods("POST")
	api.HandleFunc("/tune/report/pdf", reportH.Generate).Methods("POST")

	prefsApi := api.PathPrefix("/prefs").Subrouter()
	prefsApi.Use(authEnv.ClientMiddleware)

	prefsApi.HandleFunc("/theme", prefsH.GetTheme).Methods("GET")
	prefsApi.HandleFunc("/theme", prefsH.UpdateTheme).Methods("PUT")

	mainFileServer := http.FileServer(http.Dir(cfg.StaticDir))
	mux.PathPrefix("/").
		Handler(authEnv.ClientMiddleware(mainFileServer))
}

// openStore picks the theme preference backend. The returned closer is
// never nil.
func openStore(ctx context.Context, cfg config.Config) (repo.Repository, io.Closer, error) {
	switch cfg.PrefsBackend {
	case config.BackendPostgres:
		db, err := repo.OpenDB(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return repo.NewPostgresPrefsDB(db), db, nil
	case config.BackendRedis:
		store := repo.NewRedisPrefs(cfg.RedisAddr)
		if err := store.Ping(ctx); err != nil {
			store.Close()
			return nil, nil, err
		}
		return store, store, nil
	default:
		return repo.NewMemoryPrefs(), io.NopCloser(nil), nil
	}
}

// shutdown stops the server and then closes the store, also when the
// server did not drain in time.
func shutdown(ctx context.Context, server *http.Server, store io.Closer) error {
	err := server.Shutdown(ctx)
	if cerr := store.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("close preference store: %w", cerr)
	}
	return err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()

	connectCtx, connectCancel := context.WithTimeout(ctx, 10*time.Second)
	store, closer, err := openStore(connectCtx, cfg)
	connectCancel()
	if err != nil {
		log.Fatalf("Preference store (%s) is not available: %v", cfg.PrefsBackend, err)
	}

	mux := mux.NewRouter()
	log.Printf("Starting server on %s (prefs: %s)", cfg.Addr, cfg.PrefsBackend)
	HandleList(mux, cfg, store)
	handler := CORS(mux)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		var err error
		if cfg.TLS() {
			err = server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Server error: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	fmt.Println("Shutdown signal received!")
	fmt.Println("Closing active connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := shutdown(shutdownCtx, server, closer); err != nil {
		log.Printf("Server shutdown error: %v", err)
	} else {
		log.Println("Server stopped")
	}

	wg.Wait()
}
