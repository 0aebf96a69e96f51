package mobile

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/Jkey189/Hex/internal/config"
	httpserver "github.com/Jkey189/Hex/internal/server/http"
)

// StartServer starts the local HTTP server.
// webDir: physical path to the extracted web assets
// port: port to listen on, e.g. "2888"
func StartServer(webDir string, port string) {
	cfg := config.FromEnv()
	cfg.WebDir = webDir
	cfg.Addr = "127.0.0.1:" + port

	logger := cfg.Logger(false)
	srv := httpserver.NewServer(cfg, logger)

	// Run in background so it doesn't block the Android UI thread
	go func() {
		if err := http.ListenAndServe(cfg.Addr, srv); err != nil {
			log.Error().Err(err).Msg("server error")
		}
	}()
}
