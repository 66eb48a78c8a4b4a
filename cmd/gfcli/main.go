// gfcli is a small command line client for gluster volumes, speaking
// the client protocol directly without a FUSE mount.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/desertwitch/gfapi"
	"github.com/desertwitch/gfapi/internal/envconf"
	"github.com/lmittmann/tint"
	"github.com/urfave/cli/v3"
)

//nolint:gochecknoglobals
var Version = "dev"

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}),
	))
}

func main() {
	setupLogging(false)

	app := new(cli.Command)

	app.Name = "gfcli"
	app.Usage = "a command line client for gluster volumes"
	app.HideHelpCommand = true
	app.EnableShellCompletion = true

	app.Flags = []cli.Flag{
		&cli.StringFlag{Name: "host", Aliases: []string{"H"}, Usage: "volfile server host (or glusterd socket path for unix)"},
		&cli.StringFlag{Name: "volume", Aliases: []string{"V"}, Usage: "name of the gluster volume"},
		&cli.IntFlag{Name: "port", Usage: "volfile server port"},
		&cli.StringFlag{Name: "protocol", Usage: "volfile server transport: tcp, rdma or unix"},
		&cli.StringFlag{Name: "log-file", Usage: "gluster client log file"},
		&cli.StringFlag{Name: "log-level", Usage: "gluster client log level"},
		&cli.StringFlag{Name: "env-file", Usage: "read GFAPI_* settings from this dotenv file"},
		&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "enable debug/verbose mode"},
	}

	app.Commands = []*cli.Command{
		// VOLUME
		statCommand(),
		dfCommand(),
		idCommand(),
		// LISTING
		lsCommand(),
		treeCommand(),
		// TRANSFER
		catCommand(),
		putCommand(),
		getCommand(),
		// NAMESPACE
		rmCommand(),
		mkdirCommand(),
		mvCommand(),
		lnCommand(),
		// XATTRS
		xattrCommand(),
		// VERSION
		versionCommand(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		slog.Error("Command failed", "err", err)
		os.Exit(1)
	}
}

// volumeAction is a command action running against a mounted volume.
type volumeAction func(ctx context.Context, c *cli.Command, v *gfapi.Volume) error

// withVolume wraps a [volumeAction] into a command action that mounts
// the volume first and unmounts it again when the action returns.
func withVolume(fn volumeAction) func(context.Context, *cli.Command) error {
	return func(ctx context.Context, c *cli.Command) error {
		if c.Bool("verbose") {
			setupLogging(true)
		}

		v, err := openVolume(c)
		if err != nil {
			return err
		}
		defer func() {
			if err := v.Unmount(); err != nil {
				slog.Warn("Failed to unmount volume", "err", err)
			}
		}()

		return fn(ctx, c, v)
	}
}

// openVolume resolves the volume settings and mounts the volume. The
// precedence is command line flags over process environment over the
// optional dotenv file.
func openVolume(c *cli.Command) (*gfapi.Volume, error) {
	p := envconf.NewProvider()

	var files []string
	if f := c.String("env-file"); f != "" {
		files = append(files, f)
	}

	cfg, err := p.Resolve(files...)
	if err != nil {
		return nil, err
	}

	if c.IsSet("host") {
		cfg.Host = c.String("host")
	}
	if c.IsSet("volume") {
		cfg.Volname = c.String("volume")
	}
	if c.IsSet("port") {
		cfg.Port = int(c.Int("port"))
	}
	if c.IsSet("protocol") {
		cfg.Protocol = c.String("protocol")
	}
	if c.IsSet("log-file") {
		cfg.LogFile = c.String("log-file")
	}
	if c.IsSet("log-level") {
		level, err := envconf.ParseLogLevel(c.String("log-level"))
		if err != nil {
			return nil, err
		}
		cfg.LogLevel = level
	}

	v, err := gfapi.NewWithConfig(cfg)
	if err != nil {
		return nil, err
	}

	if err := v.Mount(); err != nil {
		return nil, err
	}

	slog.Debug("Mounted volume", "volume", cfg.Volname, "host", cfg.Host)

	return v, nil
}

// needArgs checks the positional argument count of a command.
func needArgs(c *cli.Command, names ...string) error {
	if c.Args().Len() != len(names) {
		return fmt.Errorf("usage: %s %s", c.Name, strings.Join(names, " "))
	}

	return nil
}
