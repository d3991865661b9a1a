package handlers

import (
	"net/http"

	gorilla "github.com/gorilla/handlers"
	log "github.com/sirupsen/logrus"
)

func UseRecovery(h http.Handler) http.Handler {
	return gorilla.RecoveryHandler(gorilla.RecoveryLogger(log.New()))(h)
}
