package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"keyring/internal/crypto"
	"keyring/internal/domain"
)

func digestCmd() *cobra.Command {
	var str string
	cmd := &cobra.Command{
		Use:   "digest [file...]",
		Short: "BLAKE3-256 of files, stdin, or a string",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if cmd.Flags().Changed("string") {
				fmt.Fprintln(out, appCtx.Identity.Digest([]byte(str)))
				return nil
			}
			if len(args) == 0 {
				args = []string{"-"}
			}
			for _, name := range args {
				d, err := digestFile(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s  %s\n", d, name)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&str, "string", "s", "", "digest this string instead of files")
	return cmd
}

func digestFile(name string) (domain.Digest, error) {
	if name == "-" {
		return crypto.DigestReader(stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return domain.Digest{}, err
	}
	defer f.Close()
	d, err := crypto.DigestReader(f)
	if err != nil {
		return domain.Digest{}, fmt.Errorf("digest %s: %w", name, err)
	}
	return d, nil
}
