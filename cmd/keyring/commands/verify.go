package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"keyring/internal/crypto"
)

var errInvalidSignature = errors.New("signature is not valid")

func verifyCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "verify <public-hex> <signature-hex> [message]",
		Short: "Check a signature",
		Long: "Check that signature was made over the message by the secret key paired\n" +
			"with public. Prints valid or invalid; exits non-zero when invalid.",
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := readMessage(file, args[2:])
			if err != nil {
				return err
			}
			// Undecodable hex is just another invalid input: DecodeHex
			// returns nil on error, which Verify rejects by length.
			pub, _ := crypto.DecodeHex(args[0])
			sig, _ := crypto.DecodeHex(args[1])

			if !appCtx.Identity.Verify(msg, sig, pub) {
				fmt.Fprintln(cmd.OutOrStdout(), "invalid")
				return errInvalidSignature
			}
			appCtx.Log.Debug("signature verified", zap.Int("message_len", len(msg)))
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "verify the contents of this file (- for stdin)")
	return cmd
}
