package handlers

import (
	"sync"

	intconfig "busbook/internal/config"
	"busbook/internal/upstream"
)

var (
	depsMu sync.RWMutex
	env    intconfig.Env
	api    *upstream.Client
)

// Configure wires the handler package to its environment and upstream client.
// Called once from the router before any route is mounted.
func Configure(e intconfig.Env, client *upstream.Client) {
	depsMu.Lock()
	defer depsMu.Unlock()
	env = e
	api = client
}

func apiClient() *upstream.Client {
	depsMu.RLock()
	defer depsMu.RUnlock()
	return api
}

func envConfig() intconfig.Env {
	depsMu.RLock()
	defer depsMu.RUnlock()
	return env
}
