package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gonewx/cardace/pkg/cli"
	"github.com/gonewx/cardace/pkg/embedded"
	"github.com/gonewx/cardace/pkg/logging"
)

func main() {
	embedded.Init(dataFS)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		log := logging.New(false, os.Stderr)
		stop()
		log.Fatal().Err(err).Msg("cardace failed")
	}
}
