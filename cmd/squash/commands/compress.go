package commands

import (
	"bytes"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"squash/internal/container"
	"squash/internal/digest"
	"squash/internal/safeio"
)

var (
	algorithm string
	symbols   int
	level     int
)

// compress <input> <output>: encode <input> with the chosen algorithm.
func compressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compress <input> <output>",
		Short: "Compress a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			method, ok := container.MethodForName(algorithm)
			if !ok {
				return fmt.Errorf("unknown algorithm %q (see: squash algorithms)", algorithm)
			}
			var param uint32
			switch method {
			case container.PhasedIn:
				param = uint32(symbols)
			case container.LZ4, container.ZSTD:
				param = uint32(level)
			}

			hdr := container.Header{Method: method, Param: param}
			c, err := appCtx.Codecs.New(algorithm, hdr.Params())
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			w := &container.Writer{Codec: c, Method: method, Param: param, Log: appCtx.Log}
			if err := w.Compress(&buf, src); err != nil {
				return err
			}
			if err := safeio.WriteFile(args[1], buf.Bytes(), 0o644); err != nil {
				return err
			}

			fmt.Printf("Input:       %s (%s)\n", args[0], humanize.Bytes(uint64(len(src))))
			fmt.Printf("Output:      %s (%s)\n", args[1], humanize.Bytes(uint64(buf.Len())))
			fmt.Printf("Ratio:       %.2fx\n", ratio(len(src), buf.Len()))
			fmt.Printf("Algorithm:   %s\n", method)
			fmt.Printf("Fingerprint: %s\n", digest.Fingerprint(src))
			return nil
		},
	}
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "zstd", "compression algorithm")
	cmd.Flags().IntVar(&symbols, "symbols", 256, "alphabet size for phasedin, 2-256")
	cmd.Flags().IntVar(&level, "level", 0, "compression level for lz4 and zstd, 0 = default")
	return cmd
}

func ratio(raw, compressed int) float64 {
	if compressed == 0 {
		return 0
	}
	return float64(raw) / float64(compressed)
}
