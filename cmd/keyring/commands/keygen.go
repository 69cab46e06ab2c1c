package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func keygenCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate Ed25519 identities",
		Long: "Generate Ed25519 identities from the system CSPRNG and print the secret key,\n" +
			"public key and node id of each. The secret is printed once and never logged.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be at least 1, got %d", count)
			}
			out := cmd.OutOrStdout()
			for i := 0; i < count; i++ {
				kp := appCtx.Identity.GenerateKeyPair()
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "secret:  %s\n", kp.Secret.Hex())
				fmt.Fprintf(out, "public:  %s\n", kp.Public)
				fmt.Fprintf(out, "node_id: %s\n", kp.NodeID)
				appCtx.Log.Debug("generated keypair", zap.Stringer("node_id", kp.NodeID))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of identities to generate")
	return cmd
}
