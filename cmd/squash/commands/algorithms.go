package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var algorithmBlurbs = map[string]string{
	"huffman":  "canonical Huffman coding",
	"lz4":      "LZ4 block compression (pierrec/lz4)",
	"phasedin": "phased-in (truncated binary) codes",
	"raw":      "no compression, container framing only",
	"rle":      "PackBits run-length encoding",
	"zstd":     "Zstandard (klauspost/compress)",
}

// algorithms: list the registered codecs.
func algorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List available compression algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range appCtx.Codecs.Names() {
				fmt.Printf("%-10s %s\n", name, algorithmBlurbs[name])
			}
			return nil
		},
	}
}
