package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/desertwitch/gfapi"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"
	"github.com/zeebo/blake3"
)

func catCommand() *cli.Command {
	return &cli.Command{
		Name:      "cat",
		Usage:     "write the contents of a file to stdout",
		ArgsUsage: "PATH",
		Action: withVolume(func(_ context.Context, c *cli.Command, v *gfapi.Volume) error {
			if err := needArgs(c, "PATH"); err != nil {
				return err
			}

			f, err := v.Open(c.Args().First())
			if err != nil {
				return err
			}
			defer f.Close()

			_, err = gfapi.Copyfileobj(os.Stdout, f)

			return err
		}),
	}
}

func putCommand() *cli.Command {
	return &cli.Command{
		Name:      "put",
		Usage:     "upload a local file to the volume",
		ArgsUsage: "LOCAL REMOTE",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verify", Usage: "verify the upload with a blake3 checksum"},
		},
		Action: withVolume(func(_ context.Context, c *cli.Command, v *gfapi.Volume) error {
			if err := needArgs(c, "LOCAL", "REMOTE"); err != nil {
				return err
			}
			local, remote := c.Args().Get(0), c.Args().Get(1)

			src, err := os.Open(local)
			if err != nil {
				return err
			}
			defer src.Close()

			written, srcSum, err := uploadFile(v, src, remote)
			if err != nil {
				return err
			}

			if c.Bool("verify") {
				dstSum, err := volumeChecksum(v, remote)
				if err != nil {
					return err
				}
				if err := compareChecksums(srcSum, dstSum); err != nil {
					return err
				}
			}

			slog.Info("Uploaded file", "path", remote, "size", humanize.Bytes(uint64(written)))

			return nil
		}),
	}
}

func getCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "download a file from the volume",
		ArgsUsage: "REMOTE LOCAL",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verify", Usage: "verify the download with a blake3 checksum"},
		},
		Action: withVolume(func(_ context.Context, c *cli.Command, v *gfapi.Volume) error {
			if err := needArgs(c, "REMOTE", "LOCAL"); err != nil {
				return err
			}
			remote, local := c.Args().Get(0), c.Args().Get(1)

			src, err := v.Open(remote)
			if err != nil {
				return err
			}
			defer src.Close()

			dst, err := os.Create(local)
			if err != nil {
				return err
			}

			hasher := blake3.New()

			written, err := gfapi.Copyfileobj(dst, io.TeeReader(src, hasher))
			if err != nil {
				dst.Close() //nolint:errcheck

				return err
			}
			if err := dst.Close(); err != nil {
				return err
			}

			if c.Bool("verify") {
				dstSum, err := localChecksum(local)
				if err != nil {
					return err
				}
				if err := compareChecksums(hasher.Sum(nil), dstSum); err != nil {
					return err
				}
			}

			slog.Info("Downloaded file", "path", local, "size", humanize.Bytes(uint64(written)))

			return nil
		}),
	}
}

// uploadFile streams src into a newly created file on the volume,
// returning the byte count and the blake3 checksum of the stream.
func uploadFile(v *gfapi.Volume, src io.Reader, remote string) (int64, []byte, error) {
	dst, err := v.Create(remote)
	if err != nil {
		return 0, nil, err
	}

	hasher := blake3.New()

	written, err := gfapi.Copyfileobj(dst, io.TeeReader(src, hasher))
	if err != nil {
		dst.Close() //nolint:errcheck

		return written, nil, err
	}

	if err := dst.Sync(); err != nil {
		dst.Close() //nolint:errcheck

		return written, nil, err
	}

	if err := dst.Close(); err != nil {
		return written, nil, err
	}

	return written, hasher.Sum(nil), nil
}

// volumeChecksum reads back a file on the volume and returns its blake3
// checksum.
func volumeChecksum(v *gfapi.Volume, path string) ([]byte, error) {
	f, err := v.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	hasher := blake3.New()
	if _, err := gfapi.Copyfileobj(hasher, f); err != nil {
		return nil, err
	}

	return hasher.Sum(nil), nil
}

// localChecksum returns the blake3 checksum of a local file.
func localChecksum(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	hasher := blake3.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return nil, err
	}

	return hasher.Sum(nil), nil
}

func compareChecksums(srcSum, dstSum []byte) error {
	if !bytes.Equal(srcSum, dstSum) {
		return fmt.Errorf("checksum mismatch: %s (src) != %s (dst)",
			hex.EncodeToString(srcSum), hex.EncodeToString(dstSum))
	}

	return nil
}
