package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/flowgrid/internal/cli"
	"github.com/katalvlaran/flowgrid/puzzle"
	"github.com/katalvlaran/flowgrid/router"
	"github.com/katalvlaran/flowgrid/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			stop()
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// run parses args and either serves the websocket API or solves one puzzle,
// printing the board to outW. Logs go to errW.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}
	log := cfg.NewLogger(errW)

	if cfg.Serve != "" {
		return serve(ctx, cfg.Serve, log)
	}

	pz, err := loadPuzzle(cfg)
	if err != nil {
		return &cli.ExitError{Code: cli.ExitUsage, Message: err.Error()}
	}
	if cfg.MethodSet {
		pz.Method = cfg.Method
	}

	rt, err := pz.Router(router.WithLogger(log))
	if err != nil {
		return &cli.ExitError{Code: cli.ExitUsage, Message: err.Error()}
	}
	res, runErr := rt.Run(ctx)

	writeReport(outW, pz, rt, res, runErr)

	var uerr *router.UnsolvableError
	if errors.As(runErr, &uerr) {
		return &cli.ExitError{Code: cli.ExitAborted, Message: uerr.Error()}
	}

	return runErr
}

func loadPuzzle(cfg *cli.Config) (*puzzle.Puzzle, error) {
	if cfg.PuzzlePath != "" {
		return puzzle.Load(cfg.PuzzlePath)
	}

	return puzzle.Generate(cfg.Width, cfg.Height, cfg.Pairs, rand.New(rand.NewSource(cfg.Seed)))
}

// serve runs the HTTP API on addr until ctx is done.
func serve(ctx context.Context, addr string, log logrus.FieldLogger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           server.New(log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.WithField("addr", addr).Info("listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.Info("server stopped")

	return nil
}
