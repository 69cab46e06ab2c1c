package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func blobCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blob",
		Short: "Store blobs through the configured store backend",
	}
	cmd.AddCommand(blobPutCmd())
	return cmd
}

// blob put <file>: print the file's digest, then hand it to the store.
func blobPutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "put <file>",
		Short: "Digest a file and put it in the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			digest := appCtx.Identity.Digest(data)
			fmt.Fprintln(cmd.OutOrStdout(), digest)

			log := appCtx.Log.With(
				zap.String("store", appCtx.Config.StorePath),
				zap.Stringer("digest", digest),
			)
			s, err := appCtx.Store.Open(cmd.Context(), appCtx.Config.StorePath)
			if err != nil {
				log.Warn("store unavailable", zap.Error(err))
				return err
			}
			defer s.Close()

			if _, err := s.PutBlob(cmd.Context(), data); err != nil {
				return fmt.Errorf("put blob %s: %w", digest, err)
			}
			log.Info("stored blob", zap.Int("size", len(data)))
			return nil
		},
	}
}
