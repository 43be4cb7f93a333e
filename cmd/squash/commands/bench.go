package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"squash/internal/codec"
)

// bench <input>: encode the input with every registered algorithm and
// compare sizes and speeds. Codecs run concurrently; each works on the
// shared input and its own output buffer.
func benchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bench <input>",
		Short: "Compare all algorithms on one input",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			names := appCtx.Codecs.Names()
			type result struct {
				size    int
				elapsed time.Duration
			}
			results := make([]result, len(names))

			var g errgroup.Group
			for i, name := range names {
				i, name := i, name
				g.Go(func() error {
					c, err := appCtx.Codecs.New(name, codec.Params{})
					if err != nil {
						return err
					}
					start := time.Now()
					out, err := c.Encode(nil, src)
					if err != nil {
						return fmt.Errorf("%s: %w", name, err)
					}
					results[i] = result{size: len(out), elapsed: time.Since(start)}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			fmt.Printf("Input: %s (%s)\n\n", args[0], humanize.Bytes(uint64(len(src))))
			fmt.Printf("%-10s %12s %8s %14s\n", "algorithm", "size", "ratio", "throughput")
			for i, name := range names {
				r := results[i]
				perSec := float64(len(src)) / r.elapsed.Seconds()
				fmt.Printf("%-10s %12s %7.2fx %12s/s\n",
					name,
					humanize.Bytes(uint64(r.size)),
					ratio(len(src), r.size),
					humanize.Bytes(uint64(perSec)),
				)
			}
			return nil
		},
	}
}
