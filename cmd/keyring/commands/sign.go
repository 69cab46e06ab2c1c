package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"keyring/internal/crypto"
)

func signCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "sign <secret-hex|-> [message]",
		Short: "Sign a message or file",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readSecretArg(args[0])
			if err != nil {
				return err
			}
			secret, err := crypto.DecodeHex(raw)
			if err != nil {
				return fmt.Errorf("secret key: %w", err)
			}
			msg, err := readMessage(file, args[1:])
			if err != nil {
				return err
			}

			sig, err := appCtx.Identity.Sign(msg, secret)
			if err != nil {
				return err
			}
			appCtx.Log.Debug("signed message", zap.Int("message_len", len(msg)))
			fmt.Fprintln(cmd.OutOrStdout(), sig)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "sign the contents of this file (- for stdin)")
	return cmd
}
