package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"peacey/internal/config"
	"peacey/internal/logging"
)

var (
	verbose bool
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "peacey",
	Short: "peacey - the EternalpEASE funeral-service assistant",
	Long: `peacey answers funeral-service questions from a fixed rule table.

Commands:
  - ask:      answer a single question
  - chat:     interactive conversation in the terminal
  - packages: list the package catalog
  - report:   daily usage report from the interaction log`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load(".env")
		c, err := config.Parse()
		if err != nil {
			return err
		}
		level := c.LogLevel
		if verbose {
			level = "debug"
		}
		if err := logging.Setup(level, c.LogFormat, os.Stderr); err != nil {
			return err
		}
		cfg = c
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(packagesCmd)
	rootCmd.AddCommand(reportCmd)
}
