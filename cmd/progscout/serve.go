package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	pshttp "github.com/progscout/progscout/http"
)

// Run executes the serve command. It blocks until interrupted.
func (c *ServeCmd) Run(deps *Dependencies) error {
	srv := pshttp.NewServer()
	srv.Addr = c.Addr
	srv.ProgramService = deps.Programs
	srv.SnapshotService = deps.Snapshots

	if err := srv.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to listen on %s: %v\n", c.Addr, err)
		return err
	}
	defer srv.Close()

	fmt.Fprintf(deps.Stdout, "Listening on %s\n", srv.URL())

	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	fmt.Fprintln(deps.Stdout, "Shutting down")
	return nil
}
