package commands

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"squash/internal/container"
	"squash/internal/digest"
	"squash/internal/safeio"
)

// decompress <input> <output>: decode a squash container. The file
// header names the algorithm and its parameters, so no flags are needed.
func decompressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decompress <input> <output>",
		Short: "Decompress a squash file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			r := &container.Reader{Codecs: appCtx.Codecs, Log: appCtx.Log}
			out, hdr, err := r.Decompress(f)
			if err != nil {
				return err
			}
			if err := safeio.WriteFile(args[1], out, 0o644); err != nil {
				return err
			}

			fmt.Printf("Input:       %s\n", args[0])
			fmt.Printf("Output:      %s (%s)\n", args[1], humanize.Bytes(uint64(len(out))))
			fmt.Printf("Algorithm:   %s\n", hdr.Method)
			fmt.Printf("Fingerprint: %s\n", digest.Fingerprint(out))
			return nil
		},
	}
}
