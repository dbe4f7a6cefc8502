package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newMediaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "media",
		Short: "Manage catalog images in object storage",
	}
	cmd.AddCommand(newMediaUploadCmd())
	return cmd
}

func newMediaUploadCmd() *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   "upload FILE...",
		Short: "Upload images and print the object keys to reference from content",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			media, err := openStorage(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if media == nil {
				return errors.New("object storage is not configured (set S3_ENDPOINT or S3_ACCESS_KEY and S3_SECRET_KEY)")
			}

			out := cmd.OutOrStdout()
			for _, path := range args {
				key, err := media.UploadFile(cmd.Context(), path, prefix)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\t%s\n", key, media.FileURL(key))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&prefix, "prefix", "p", "gallery", "Key prefix inside the bucket")

	return cmd
}
