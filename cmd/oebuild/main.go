package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/tss-calculator/go-lib/pkg/infrastructure/logger"

	"github.com/oe-tools/oebuild/pkg/oebuild/infrastructure/dependency"

	"github.com/urfave/cli/v2"
)

func main() {
	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()
	ctx = listenOSKillSignalsContext(ctx)
	mainLogger := logger.NewTextLogger()

	container := dependency.NewDependencyContainer(mainLogger)
	ctx = dependency.ContainerToContext(ctx, container)

	app := &cli.App{
		Name:  "oebuild",
		Usage: "manage an OE build directory",
		Commands: cli.Commands{
			&cli.Command{
				Name:  "setup",
				Usage: "clone manifest repositories and generate bblayers.conf",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "repos-json",
						Aliases:  []string{"r"},
						Usage:    "a JSON file describing the state of the repos",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "source-dir",
						Aliases: []string{"s"},
						Value:   "./sources",
						Usage:   "checkout git repos into this directory",
					},
					&cli.StringFlag{
						Name:  "conf-dir",
						Value: "./conf",
						Usage: "directory where bblayers.conf is written",
					},
				},
				Action: func(c *cli.Context) error {
					return setup(c.Context, c.String("repos-json"), c.String("source-dir"), c.String("conf-dir"))
				},
			},
			&cli.Command{
				Name:  "manifest",
				Usage: "describe the current state of the checkouts as a JSON manifest",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "source-dir",
						Aliases: []string{"s"},
						Value:   "./sources",
						Usage:   "workspace directory holding the checkouts",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "write the manifest to this file instead of stdout",
					},
				},
				Action: func(c *cli.Context) error {
					return writeManifest(c.Context, c.String("source-dir"), c.String("output"))
				},
			},
			&cli.Command{
				Name:  "status",
				Usage: "print a human readable description of every checkout",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "source-dir",
						Aliases: []string{"s"},
						Value:   "./sources",
						Usage:   "workspace directory holding the checkouts",
					},
				},
				Action: func(c *cli.Context) error {
					return status(c.Context, c.String("source-dir"))
				},
			},
		},
	}
	err := app.RunContext(ctx, os.Args)
	if err != nil {
		mainLogger.FatalError(err, "failed execute command "+strings.Join(os.Args, " "))
	}
}

func listenOSKillSignalsContext(ctx context.Context) context.Context {
	var cancelFunc context.CancelFunc
	ctx, cancelFunc = context.WithCancel(ctx)
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT)
		select {
		case <-ch:
			cancelFunc()
		case <-ctx.Done():
			return
		}
	}()
	return ctx
}
