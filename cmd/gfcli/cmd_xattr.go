package main

import (
	"context"
	"fmt"

	"github.com/desertwitch/gfapi"
	"github.com/urfave/cli/v3"
)

func xattrCommand() *cli.Command {
	return &cli.Command{
		Name:  "xattr",
		Usage: "work with extended attributes",
		Commands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "print the value of an extended attribute",
				ArgsUsage: "PATH NAME",
				Action:    withVolume(runXattrGet),
			},
			{
				Name:      "set",
				Usage:     "set an extended attribute",
				ArgsUsage: "PATH NAME VALUE",
				Action:    withVolume(runXattrSet),
			},
			{
				Name:      "list",
				Usage:     "list the extended attributes of a file",
				ArgsUsage: "PATH",
				Action:    withVolume(runXattrList),
			},
			{
				Name:      "rm",
				Usage:     "remove an extended attribute",
				ArgsUsage: "PATH NAME",
				Action:    withVolume(runXattrRemove),
			},
		},
	}
}

func runXattrGet(_ context.Context, c *cli.Command, v *gfapi.Volume) error {
	if err := needArgs(c, "PATH", "NAME"); err != nil {
		return err
	}

	data, err := v.Getxattr(c.Args().Get(0), c.Args().Get(1))
	if err != nil {
		return err
	}

	fmt.Println(string(data))

	return nil
}

func runXattrSet(_ context.Context, c *cli.Command, v *gfapi.Volume) error {
	if err := needArgs(c, "PATH", "NAME", "VALUE"); err != nil {
		return err
	}

	return v.Setxattr(c.Args().Get(0), c.Args().Get(1), []byte(c.Args().Get(2)), 0)
}

func runXattrList(_ context.Context, c *cli.Command, v *gfapi.Volume) error {
	if err := needArgs(c, "PATH"); err != nil {
		return err
	}

	attrs, err := v.Listxattr(c.Args().First())
	if err != nil {
		return err
	}

	for _, attr := range attrs {
		fmt.Println(attr)
	}

	return nil
}

func runXattrRemove(_ context.Context, c *cli.Command, v *gfapi.Volume) error {
	if err := needArgs(c, "PATH", "NAME"); err != nil {
		return err
	}

	return v.Removexattr(c.Args().Get(0), c.Args().Get(1))
}
