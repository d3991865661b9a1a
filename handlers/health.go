// Package handlers provides the liveness HTTP surface. It carries no
// bot state; hosting platforms probe it to keep the process alive.
package handlers

import (
	"encoding/json"
	"net/http"
)

const aliveBody = "Bot is alive!"

// HandleHealthReady answers any probe with a fixed success payload.
func HandleHealthReady(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(aliveBody))
}

// Liveness reports the result of an optional deeper check as JSON.
func Liveness(check func() (interface{}, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status, err := check()
		if err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(status)
	})
}
