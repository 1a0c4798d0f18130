package di

import (
	"hotelier/infras/otel"
	"hotelier/internal/events"
	"hotelier/transport/http"
)

// App is everything main needs to run and stop the service.
type App struct {
	HTTP     *http.HTTP
	Listener *events.Listener
	Otel     otel.Otel
}
