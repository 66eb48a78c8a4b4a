package main

import (
	"context"

	"github.com/desertwitch/gfapi"
	"github.com/urfave/cli/v3"
)

func rmCommand() *cli.Command {
	return &cli.Command{
		Name:      "rm",
		Usage:     "remove a file or directory",
		ArgsUsage: "PATH",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "recursive", Aliases: []string{"r"}, Usage: "remove directories and their contents recursively"},
		},
		Action: withVolume(func(_ context.Context, c *cli.Command, v *gfapi.Volume) error {
			if err := needArgs(c, "PATH"); err != nil {
				return err
			}
			target := c.Args().First()

			if c.Bool("recursive") {
				return v.Rmtree(target, nil)
			}

			return v.Remove(target)
		}),
	}
}

func mkdirCommand() *cli.Command {
	return &cli.Command{
		Name:      "mkdir",
		Usage:     "create a directory",
		ArgsUsage: "PATH",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "parents", Aliases: []string{"p"}, Usage: "create parent directories as needed"},
		},
		Action: withVolume(func(_ context.Context, c *cli.Command, v *gfapi.Volume) error {
			if err := needArgs(c, "PATH"); err != nil {
				return err
			}
			target := c.Args().First()

			if c.Bool("parents") {
				return v.Makedirs(target, 0o755)
			}

			return v.Mkdir(target, 0o755)
		}),
	}
}

func mvCommand() *cli.Command {
	return &cli.Command{
		Name:      "mv",
		Usage:     "rename a file or directory",
		ArgsUsage: "OLD NEW",
		Action: withVolume(func(_ context.Context, c *cli.Command, v *gfapi.Volume) error {
			if err := needArgs(c, "OLD", "NEW"); err != nil {
				return err
			}

			return v.Rename(c.Args().Get(0), c.Args().Get(1))
		}),
	}
}

func lnCommand() *cli.Command {
	return &cli.Command{
		Name:      "ln",
		Usage:     "create a hard or symbolic link",
		ArgsUsage: "TARGET LINK",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "symbolic", Aliases: []string{"s"}, Usage: "create a symbolic link instead of a hard link"},
		},
		Action: withVolume(func(_ context.Context, c *cli.Command, v *gfapi.Volume) error {
			if err := needArgs(c, "TARGET", "LINK"); err != nil {
				return err
			}
			target, link := c.Args().Get(0), c.Args().Get(1)

			if c.Bool("symbolic") {
				return v.Symlink(target, link)
			}

			return v.Link(target, link)
		}),
	}
}
