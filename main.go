package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/catalog"
	intconfig "github.com/hiraniavnish-droid/TTE-Final-sub000/internal/config"
	router "github.com/hiraniavnish-droid/TTE-Final-sub000/internal/http"
	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/http/handlers"
	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/repositories"
	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	src := catalogSource(env)
	defer intconfig.CloseDB()

	store := catalog.NewStore(nil)
	loadCtx, loadCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := store.Refresh(loadCtx, src); err != nil {
		log.Printf("[CATALOG] initial load failed, starting empty: %v", err)
	}
	loadCancel()

	tokens := services.ShareTokens{Secret: []byte(env.ShareSecret), TTL: env.ShareTTL}
	hd := handlers.New(store, tokens, env.BrowseSeatRate)
	r := router.NewRouter(env, hd)

	watchCtx, stopWatch := context.WithCancel(context.Background())
	defer stopWatch()
	go hd.Sessions.Follow(watchCtx, store.Subscribe())
	go store.Watch(watchCtx, src, env.CatalogRefresh)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server listening on http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	stopWatch()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly.")
}

// catalogSource prefers the MySQL inventory and falls back to the JSON file.
func catalogSource(env intconfig.Env) catalog.Source {
	if env.DBDSN != "" {
		db, err := intconfig.ConnectDB(env.DBDSN)
		if err == nil {
			return repositories.CatalogRepository{DB: db}
		}
		log.Printf("[CONFIG] database unavailable, using %s: %v", env.CatalogFile, err)
	}
	return catalog.FileSource{Path: env.CatalogFile}
}
