package handlers

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/paypay-hub/paypay-admin-bot/configs"
	"github.com/paypay-hub/paypay-admin-bot/handlers/middleware"
)

// NewRouter builds the liveness router. A deeper selection probe is
// exposed on a fixed path, every other path answers the plain alive
// payload.
func NewRouter(check func() (interface{}, error)) http.Handler {
	r := mux.NewRouter()

	r.Handle("/health/liveness", Liveness(check)).Methods(http.MethodGet)
	r.PathPrefix("/").HandlerFunc(HandleHealthReady)

	return r
}

// NewServer wires the router behind the logging middleware and binds
// it to the configured liveness address.
func NewServer(cfg *configs.Config, h http.Handler) *http.Server {
	h = middleware.LoggingHandler(h)
	h = UseRecovery(h)

	return &http.Server{
		Handler: h,
		Addr:    fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
	}
}
