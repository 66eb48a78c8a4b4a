package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/desertwitch/gfapi"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"
)

func lsCommand() *cli.Command {
	return &cli.Command{
		Name:      "ls",
		Usage:     "list a directory",
		ArgsUsage: "PATH",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "long", Aliases: []string{"l"}, Usage: "long listing with metadata"},
		},
		Action: withVolume(func(_ context.Context, c *cli.Command, v *gfapi.Volume) error {
			if err := needArgs(c, "PATH"); err != nil {
				return err
			}
			dir := c.Args().First()

			if !c.Bool("long") {
				names, err := v.Listdir(dir)
				if err != nil {
					return err
				}
				sort.Strings(names)

				for _, name := range names {
					fmt.Println(name)
				}

				return nil
			}

			entries, err := v.ListdirWithStat(dir)
			if err != nil {
				return err
			}
			sort.Slice(entries, func(i, j int) bool {
				return entries[i].Name() < entries[j].Name()
			})

			for _, e := range entries {
				info, err := e.Info()
				if err != nil {
					return err
				}

				name := e.Name()
				if e.IsSymlink() {
					if target, err := v.Readlink(e.Path()); err == nil {
						name += " -> " + target
					}
				}

				fmt.Printf("%s %10s %s %s\n",
					info.Mode(), humanize.Bytes(uint64(info.Size())),
					info.ModTime().Format(time.RFC3339), name)
			}

			return nil
		}),
	}
}

func treeCommand() *cli.Command {
	return &cli.Command{
		Name:      "tree",
		Usage:     "walk a directory tree and print its layout",
		ArgsUsage: "PATH",
		Action: withVolume(func(_ context.Context, c *cli.Command, v *gfapi.Volume) error {
			if err := needArgs(c, "PATH"); err != nil {
				return err
			}
			root := c.Args().First()

			var dirs, files int

			walkErr := v.Walk(root, func(p string, d fs.DirEntry, err error) error {
				if err != nil {
					if p == root {
						return err
					}
					slog.Warn("Failure for path during walking of directory tree (was skipped)",
						"path", p, "err", err)

					return nil
				}

				if p == root {
					fmt.Println(root)
					if d.IsDir() {
						dirs++
					} else {
						files++
					}

					return nil
				}

				if d.IsDir() {
					dirs++
				} else {
					files++
				}

				name := d.Name()
				if d.Type()&fs.ModeSymlink != 0 {
					if target, err := v.Readlink(p); err == nil {
						name += " -> " + target
					}
				}

				rel := strings.TrimPrefix(p, strings.TrimSuffix(root, "/"))
				depth := strings.Count(rel, "/")
				fmt.Printf("%s%s\n", strings.Repeat("    ", depth), name)

				return nil
			})
			if walkErr != nil {
				return walkErr
			}

			fmt.Printf("\n%d directories, %d files\n", dirs, files)

			return nil
		}),
	}
}
