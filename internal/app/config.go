package app

import (
	"log/slog"
	"net/http"
	"time"
)

// DefaultTimeout bounds a planner call when Config.Timeout is zero.
const DefaultTimeout = 60 * time.Second

// Config holds runtime wiring options for building the app.
type Config struct {
	Home       string        // data directory, e.g. $HOME/.elevhtn
	PlannerURL string        // planner base URL, e.g. http://127.0.0.1:8090
	HTTP       *http.Client  // optional; defaults to http.DefaultClient
	Timeout    time.Duration // planner deadline; zero means DefaultTimeout
	Logger     *slog.Logger  // optional; defaults to slog.Default()
}
