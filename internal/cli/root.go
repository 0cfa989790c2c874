package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"blockmodes/internal/log"

	"github.com/spf13/cobra"
)

// Version is set by main.go
var Version = "dev"

// rootCmd is the base command when called without subcommands
var rootCmd = &cobra.Command{
	Use:   "blockmodes",
	Short: "Block cipher modes of operation",
	Long: `blockmodes encrypts and decrypts data with a 128-bit block cipher in
ECB, CBC or CTR mode:
  - AES-128 (default) or Serpent-128 as the block transform
  - PKCS#7-style padding on every mode
  - Random IV (CBC) or nonce (CTR) prepended to the ciphertext
  - Optional Argon2id passphrase keys and Reed-Solomon armor

None of the modes authenticate. A wrong key or a damaged file still
decrypts, to garbage.`,
	Version:           Version,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	PersistentPostRun: closeLogging,
}

// Logging flags
var (
	verbose  bool
	logFile  string
	logLevel string

	logCloser io.Closer
)

// Execute runs the CLI application.
// Interrupts cancel the command context; commands check it before writing output.
func Execute(version string) error {
	Version = version
	rootCmd.Version = version

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		NewReporter(rootCmd.ErrOrStderr(), false).PrintError("%v", err)
		return err
	}
	return nil
}

func init() {
	// Disable default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log debug output to stderr")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Append log output to this file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level for --log-file: debug, info, warn or error")
}

func setupLogging(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	if verbose {
		level = log.LevelDebug
	}

	switch {
	case logFile != "":
		closer, err := log.EnableFileLogging(logFile, level)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		logCloser = closer
	case verbose:
		log.SetLogger(log.NewSimpleLogger(cmd.ErrOrStderr(), level))
	default:
		log.SetLogger(nil)
	}
	return nil
}

func closeLogging(cmd *cobra.Command, args []string) {
	if logCloser != nil {
		_ = logCloser.Close()
		logCloser = nil
		log.SetLogger(nil)
	}
}
