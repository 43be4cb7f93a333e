package commands

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"squash/internal/container"
)

// inspect <input>: print a container's header and block structure
// without decoding it.
func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <input>",
		Short: "Show header and block details of a squash file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			hdr, stats, err := container.Stat(f)
			if err != nil {
				return err
			}

			fmt.Printf("Version:     %d\n", hdr.Version)
			fmt.Printf("Algorithm:   %s\n", hdr.Method)
			switch hdr.Method {
			case container.PhasedIn:
				fmt.Printf("Symbols:     %d\n", hdr.Param)
			case container.LZ4, container.ZSTD:
				fmt.Printf("Level:       %d\n", hdr.Param)
			}
			fmt.Printf("Raw size:    %s (%d bytes)\n", humanize.Bytes(hdr.RawSize), hdr.RawSize)
			fmt.Printf("Blocks:      %d\n", stats.Blocks)
			fmt.Printf("Compressed:  %s (%d bytes)\n", humanize.Bytes(uint64(stats.Compressed)), stats.Compressed)
			if stats.Compressed > 0 {
				fmt.Printf("Ratio:       %.2fx\n", float64(hdr.RawSize)/float64(stats.Compressed))
			}
			fmt.Printf("Digest:      %s\n", hex.EncodeToString(hdr.Digest[:]))
			return nil
		},
	}
}
