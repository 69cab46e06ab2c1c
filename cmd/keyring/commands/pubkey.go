package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"keyring/internal/crypto"
)

func pubkeyCmd() *cobra.Command {
	var (
		asSSH   bool
		comment string
	)
	cmd := &cobra.Command{
		Use:   "pubkey <secret-hex|->",
		Short: "Derive the public key and node id of a secret key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readSecretArg(args[0])
			if err != nil {
				return err
			}
			secret, err := crypto.ParseSigningKeyHex(raw)
			if err != nil {
				return err
			}
			kp := crypto.KeyPairFromSecret(secret)
			out := cmd.OutOrStdout()

			if asSSH {
				line, err := crypto.AuthorizedKey(kp.Public, comment)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, line)
				return nil
			}
			fmt.Fprintf(out, "public:      %s\n", kp.Public)
			fmt.Fprintf(out, "node_id:     %s\n", kp.NodeID)
			sshFP, err := crypto.SSHFingerprint(kp.Public)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "fingerprint: %s\n", crypto.Fingerprint(kp.Public))
			fmt.Fprintf(out, "ssh:         %s\n", sshFP)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asSSH, "ssh", false, "print an OpenSSH authorized_keys line instead")
	cmd.Flags().StringVar(&comment, "comment", "", "comment appended to the --ssh line")
	return cmd
}
