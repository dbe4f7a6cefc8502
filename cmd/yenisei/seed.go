package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"yenisei/internal/store"
)

func newSeedCmd() *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write content into the configured store",
		Long: `Write the content from CONTENT_DIR (or the embedded dataset) into the
configured store. A store that already holds data is left alone unless
--replace is given, in which case every record is replaced.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.StoreEngine == store.EngineMemory {
				return fmt.Errorf("memory engine keeps nothing between runs; set STORE_ENGINE to sqlite or postgres")
			}
			ds, err := contentLoader(cfg)()
			if err != nil {
				return err
			}
			return withSource(cfg, func(src store.Source) error {
				stored, err := src.Sync(cmd.Context(), ds, replace)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s store now holds:\n", src.Engine())
				printCounts(out, stored.Counts())
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "Replace existing records")

	return cmd
}

func printCounts(w io.Writer, counts map[string]int) {
	kinds := make([]string, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		fmt.Fprintf(w, "  %-12s %d\n", k, counts[k])
	}
}
