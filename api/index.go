package handler

import (
	"hotelier/config"
	"hotelier/di"
	"hotelier/shared/logger"
	"net/http"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg)

	app := di.InitializeService()
	app.HTTP.ServeHTTP(w, r)
}
