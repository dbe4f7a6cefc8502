package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"yenisei/internal/content"
)

func newContentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Work with content files",
	}
	cmd.AddCommand(newContentCheckCmd())
	return cmd
}

func newContentCheckCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Parse and validate content without touching the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("dir") {
				dir = cfg.ContentDir
			}
			ds, err := content.Load(dir)
			if err != nil {
				return err
			}
			source := dir
			if source == "" {
				source = "embedded dataset"
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s is valid:\n", source)
			printCounts(out, ds.Counts())
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Content directory (default CONTENT_DIR, empty for the embedded dataset)")

	return cmd
}
