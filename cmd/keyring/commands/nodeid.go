package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"keyring/internal/crypto"
	"keyring/internal/domain"
)

func nodeIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nodeid <public-hex|node-id>",
		Short: "Print the node id of a public key, or decode a base58 node id",
		Long: "Given a hex public key, derive its node id. Given a base58 node id,\n" +
			"check it and print it again with its hex form.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveNodeID(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", id, id.Hex())
			return nil
		},
	}
}

// resolveNodeID treats a 64 character argument as a hex public key and
// anything else as the base58 text form of a node id.
func resolveNodeID(arg string) (domain.NodeID, error) {
	if len(arg) == 2*domain.VerifyingKeySize {
		pub, err := crypto.ParseVerifyingKeyHex(arg)
		if err != nil {
			return domain.NodeID{}, err
		}
		return crypto.NodeIDFromPublic(pub), nil
	}
	return domain.ParseNodeID(arg)
}
