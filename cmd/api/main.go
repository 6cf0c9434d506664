package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "ats-checker/docs" // Swagger docs
	"ats-checker/internal/analysis"
	"ats-checker/internal/api"
	"ats-checker/internal/config"
	"ats-checker/internal/cv"
	"ats-checker/internal/patterns"
)

//go:generate swag init --dir ../.. --generalInfo cmd/api/main.go --output ../../docs

// @title ATS Résumé Checker API
// @version 1.0
// @description Analyzes résumés for applicant tracking system compatibility

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api

func main() {
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	lib, err := loadPatterns(cfg.PatternsFile)
	if err != nil {
		log.Fatal("pattern library:", err)
	}

	apiSrv := api.NewAPI(cv.NewCVParser(), analysis.NewAnalyzer(lib), api.Options{
		MaxUploadBytes: cfg.MaxUploadBytes(),
		DecodeTimeout:  cfg.DecodeTimeout,
	})
	router := api.NewRouter(apiSrv, api.RouterConfig{
		SwaggerURL:     cfg.SwaggerURL,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second, // file upload
		WriteTimeout: cfg.DecodeTimeout + 30*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Println("server shutdown:", err)
		}
		close(idleConnsClosed)
	}()

	log.Printf("API server listening on :%s\n", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}

	<-idleConnsClosed
}

func loadPatterns(path string) (*patterns.Library, error) {
	if path == "" {
		log.Println("Using embedded pattern library")
		return patterns.Load()
	}
	log.Printf("Loading pattern library from %s", path)
	return patterns.LoadFile(path)
}
