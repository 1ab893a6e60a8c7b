package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"peacey/internal/assistant"
)

var askShowIntent bool

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Answer a single question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := assistant.Build(cfg)
		if err != nil {
			return err
		}
		reply := a.Responder.Resolve(strings.Join(args, " "))
		out := cmd.OutOrStdout()
		if askShowIntent {
			fmt.Fprintf(out, "[%s]\n", reply.Intent)
		}
		fmt.Fprintln(out, reply.Text)
		return nil
	},
}

func init() {
	askCmd.Flags().BoolVar(&askShowIntent, "intent", false, "print the intent that answered")
}
