package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hitec/nhplus/internal/app"
	"github.com/hitec/nhplus/internal/cli"
	"github.com/hitec/nhplus/internal/config"
)

func main() {

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.LoadConfig()
	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	initSignalHandler(ctx, cancel, a)

	cli.New(a, os.Stdin, os.Stdout).Run(ctx)

	if err := a.Close(); err != nil {
		log.Printf("%v", err)
	}
}

// initSignalHandler cancels running work on SIGINT, SIGTERM or SIGQUIT. A
// pending stdin read cannot be interrupted, so the process exits once the
// application is closed.
func initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc, a *app.App) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
		a.Log.Info(ctx, "interrupted, shutting down")
		_ = a.Close()
		os.Exit(130)
	}()
}
