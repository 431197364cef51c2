// Package main - Entry point for the pharmacy delivery charge server
package main

import (
	"flag"
	"net/http"

	"go.uber.org/zap"

	"pharmacy-cost/api"
	"pharmacy-cost/internal/config"
	"pharmacy-cost/internal/logging"
)

const version = "1.0.0"

func main() {
	addr := flag.String("addr", "", "listen address (overrides config)")
	cfgPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg := config.Get()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			logging.Fatal("failed to load config", zap.Error(err))
		}
		config.Set(loaded)
		cfg = loaded
	}

	if err := logging.Initialize(cfg.Logging); err != nil {
		logging.Fatal("failed to initialize logging", zap.Error(err))
	}
	defer logging.Sync()

	listen := cfg.Server.Addr
	if *addr != "" {
		listen = *addr
	}

	server := &http.Server{
		Addr:         listen,
		Handler:      api.NewServer(version),
		ReadTimeout:  cfg.Server.ReadTimeout(),
		WriteTimeout: cfg.Server.WriteTimeout(),
	}

	logging.Info("pharmacy-cost server listening",
		zap.String("addr", listen),
		zap.String("version", version))

	if err := server.ListenAndServe(); err != nil {
		logging.Fatal("server exited", zap.Error(err))
	}
}
