package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/raywall/glue-catalog-toolkit/tools/emulator/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Injetável para testes
var serverStarter = func(ctx context.Context, s *config.ServerConfig) error {
	return s.Start(ctx)
}

func main() {
	path := flag.String("config", "cmd/emulator/config.json", "arquivo JSON com as rotas emuladas")
	flag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *path); err != nil {
		log.Fatal().Err(err).Msg("emulador encerrado com erro")
	}
}

// run sobe um servidor por porta configurada e espera todos terminarem.
func run(ctx context.Context, configPath string) error {
	var cfg config.Config
	if err := cfg.LoadFromFile(configPath); err != nil {
		return err
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for _, server := range []config.ServerConfig(cfg) {
		wg.Add(1)
		go func(s config.ServerConfig) {
			defer wg.Done()
			if err := serverStarter(ctx, &s); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}(server)
	}
	wg.Wait()
	return firstErr
}
