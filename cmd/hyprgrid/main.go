package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"

	"github.com/hyprgrid/hyprgrid/internal/cli"
	"github.com/hyprgrid/hyprgrid/pkg/buildinfo"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	c := cli.New(os.Stdout, os.Stderr, cli.LogInfo)

	if err := fang.Execute(ctx, c.RootCommand(), fang.WithVersion(buildinfo.String())); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, cli.StyleError.Render("The Grid remains offline. End of line."))
		os.Exit(1)
	}
}
