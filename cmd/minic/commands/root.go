package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "minic",
	Short: "minic is a front end for a minimal imperative language",
	Long: `minic runs a two-stage compiler front end (lexical analysis followed
by recursive-descent syntax analysis) over statement-per-line source files,
and ships a standalone HMM sequence modeler as a companion tool.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Optional env file; absence is not an error.
		if err := godotenv.Load(envFile); err == nil {
			slog.Debug("loaded env file", "path", envFile)
		}
		level := slog.LevelInfo
		if os.Getenv("MINIC_DEBUG") != "" {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "Path to an optional env file")
}

// AddCommand allows adding subcommands from other files.
func AddCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}

// extraKeywords returns additional reserved words configured through the
// MINIC_KEYWORDS env var (comma-separated).
func extraKeywords() []string {
	raw := os.Getenv("MINIC_KEYWORDS")
	if raw == "" {
		return nil
	}
	var out []string
	for _, kw := range strings.Split(raw, ",") {
		if kw = strings.TrimSpace(kw); kw != "" {
			out = append(out, kw)
		}
	}
	return out
}
