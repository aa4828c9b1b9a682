package handler

import (
	"hotelier/config"
	"hotelier/di"
	"hotelier/shared/logger"
	"net/http"
	"sync"
)

var (
	once    sync.Once
	service http.Handler
)

// Handler is the serverless entry point. The service graph is built once per instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		service = di.InitializeService()
	})

	service.ServeHTTP(w, r)
}
