package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().run(ctx, os.Args[1:]); err != nil {
		log.Error().Err(err).Msg("ledring failed")
		stop()
		os.Exit(1)
	}
}
