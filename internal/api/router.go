package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

type RouterConfig struct {
	SwaggerURL     string
	AllowedOrigins []string
}

func NewRouter(a *API, cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	// Swagger documentation
	swaggerURL := cfg.SwaggerURL
	if swaggerURL == "" {
		swaggerURL = "http://localhost:8080/swagger/doc.json"
	}
	mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL(swaggerURL),
	))

	// Health check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	mux.HandleFunc("/api/analyze", a.AnalyzeHandler)

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return Chain(mux, RequestID, AccessLog, Recover, CORS(origins))
}
