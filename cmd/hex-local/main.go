package main

import (
	"flag"
	"net/http"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Jkey189/Hex/internal/config"
	httpserver "github.com/Jkey189/Hex/internal/server/http"
)

func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default: // linux / bsd
		cmd = exec.Command("xdg-open", url)
	}

	_ = cmd.Start() // 不阻塞，不关心错误（某些服务器环境可能无图形界面）
}

func main() {
	cfg := config.Load()

	addr := flag.String("addr", cfg.Addr, "listen address")
	webDir := flag.String("web", cfg.WebDir, "directory with index.html / js / svg")
	noBrowser := flag.Bool("no-browser", false, "do not open the default browser")
	flag.Parse()
	cfg.Addr, cfg.WebDir = *addr, *webDir

	logger := cfg.Logger(false)
	srv := httpserver.NewServer(cfg, logger)

	logger.Info().
		Str("addr", cfg.Addr).
		Str("web", cfg.WebDir).
		Int("default_depth", cfg.DefaultDepth).
		Int("max_depth", cfg.MaxDepth).
		Msg("listening")

	// 延迟 100ms 打开默认浏览器，否则可能服务器未启动完成
	if !*noBrowser {
		go func() {
			time.Sleep(100 * time.Millisecond)
			host := cfg.Addr
			if strings.HasPrefix(host, ":") {
				host = "127.0.0.1" + host
			}
			openBrowser("http://" + host)
		}()
	}

	if err := http.ListenAndServe(cfg.Addr, srv); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
