package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"keyring/internal/app"
)

var (
	logLevel  string
	logFormat string
	storePath string
	appCtx    *app.Wire

	// stdin is shared by every reader of a single invocation so a secret
	// line and a message can both come from standard input.
	stdin *bufio.Reader
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "keyring",
		Short:        "Ed25519 identities, signatures and BLAKE3 digests",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if flags.Changed("log-format") {
				cfg.LogFormat = logFormat
			}
			if flags.Changed("store") {
				cfg.StorePath = storePath
			}
			stdin = bufio.NewReader(cmd.InOrStdin())
			appCtx, err = app.NewWire(cfg)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appCtx != nil {
				appCtx.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error); env KEYRING_LOG_LEVEL")
	root.PersistentFlags().StringVar(&logFormat, "log-format", app.LogFormatConsole, "log format (console, json); env KEYRING_LOG_FORMAT")
	root.PersistentFlags().StringVar(&storePath, "store", "keyring.db", "store path; env KEYRING_STORE_PATH")

	root.AddCommand(
		keygenCmd(),
		pubkeyCmd(),
		signCmd(),
		verifyCmd(),
		digestCmd(),
		nodeIDCmd(),
		blobCmd(),
	)
	return root
}

// readSecretArg returns arg, or the first line of stdin when arg is "-".
// Only that line is consumed; the rest of stdin stays available to
// readMessage. Reading from stdin keeps the secret out of the process table.
func readSecretArg(arg string) (string, error) {
	if arg != "-" {
		return arg, nil
	}
	line, err := stdin.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read secret from stdin: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", errors.New("no secret on stdin")
	}
	return line, nil
}

// readMessage returns the message bytes: the contents of path when set,
// otherwise args[0], otherwise stdin.
func readMessage(path string, args []string) ([]byte, error) {
	switch {
	case path == "-":
		return io.ReadAll(stdin)
	case path != "":
		return os.ReadFile(path)
	case len(args) > 0:
		return []byte(args[0]), nil
	default:
		return nil, errors.New("message required: pass it as an argument or use --file")
	}
}
