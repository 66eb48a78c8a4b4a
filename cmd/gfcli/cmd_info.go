package main

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/desertwitch/gfapi"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"
)

func statCommand() *cli.Command {
	return &cli.Command{
		Name:      "stat",
		Usage:     "show the status of a file",
		ArgsUsage: "PATH",
		Action: withVolume(func(_ context.Context, c *cli.Command, v *gfapi.Volume) error {
			if err := needArgs(c, "PATH"); err != nil {
				return err
			}
			target := c.Args().First()

			st, err := v.Lstat(target)
			if err != nil {
				return err
			}

			fmt.Printf("  File: %s\n", target)
			if st.IsSymlink() {
				if linkTarget, err := v.Readlink(target); err == nil {
					fmt.Printf("  Link: -> %s\n", linkTarget)
				}
			}
			fmt.Printf("  Size: %s (%d bytes)\n", humanize.Bytes(uint64(st.Size)), st.Size)
			fmt.Printf("  Mode: %s (%#o)\n", st.FileMode(), st.Perm())
			fmt.Printf(" Inode: %d  Links: %d  Owner: %d:%d\n", st.Ino, st.Nlink, st.Uid, st.Gid)
			fmt.Printf("Access: %s\n", st.Atime().Format(time.RFC3339))
			fmt.Printf("Modify: %s\n", st.Mtime().Format(time.RFC3339))
			fmt.Printf("Change: %s\n", st.Ctime().Format(time.RFC3339))

			return nil
		}),
	}
}

func dfCommand() *cli.Command {
	return &cli.Command{
		Name:      "df",
		Usage:     "show the free space of the volume",
		ArgsUsage: "[PATH]",
		Action: withVolume(func(_ context.Context, c *cli.Command, v *gfapi.Volume) error {
			target := "/"
			if c.Args().Len() > 0 {
				target = c.Args().First()
			}

			st, err := v.Statvfs(target)
			if err != nil {
				return err
			}

			frsize := uint64(st.Frsize)
			total := uint64(st.Blocks) * frsize
			free := uint64(st.Bfree) * frsize
			avail := uint64(st.Bavail) * frsize

			fmt.Printf("Size:        %s\n", humanize.Bytes(total))
			fmt.Printf("Used:        %s\n", humanize.Bytes(total-free))
			fmt.Printf("Available:   %s\n", humanize.Bytes(avail))
			fmt.Printf("Inodes:      %d\n", st.Files)
			fmt.Printf("Inodes free: %d\n", st.Ffree)

			return nil
		}),
	}
}

func idCommand() *cli.Command {
	return &cli.Command{
		Name:  "id",
		Usage: "print the UUID of the volume",
		Action: withVolume(func(_ context.Context, _ *cli.Command, v *gfapi.Volume) error {
			id, err := v.ID()
			if err != nil {
				return err
			}

			fmt.Println(id)

			return nil
		}),
	}
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "print the version information",
		Action: func(_ context.Context, _ *cli.Command) error {
			fmt.Printf("gfcli %s (%s)\n", Version, runtime.Version())

			return nil
		},
	}
}
