package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"peacey/internal/assistant"
	"peacey/internal/conversation"
)

var (
	assistantLabel = color.New(color.FgCyan, color.Bold)
	typingLabel    = color.New(color.Faint)
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the assistant in the terminal (type 'exit' to leave)",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := assistant.Build(cfg)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		replies := make(chan conversation.Message, 1)
		conv := conversation.New(a.Responder, conversation.Greeting(a.Name),
			conversation.WithDelay(cfg.TypingDelay),
			conversation.WithOnReply(func(_, reply conversation.Message) { replies <- reply }),
		)
		defer conv.Close()

		printAssistant(out, a.Name, conv.Messages()[0].Content)
		for {
			prompt := promptui.Prompt{Label: "You"}
			line, err := prompt.Run()
			if err != nil {
				if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
					return nil
				}
				return err
			}
			switch strings.ToLower(strings.TrimSpace(line)) {
			case "exit", "quit", "bye":
				return nil
			}

			if _, err := conv.Submit(line); err != nil {
				if errors.Is(err, conversation.ErrEmptyInput) {
					continue
				}
				return err
			}
			typingLabel.Fprintf(out, "%s is typing…\n", a.Name)
			select {
			case reply := <-replies:
				printAssistant(out, a.Name, reply.Content)
			case <-cmd.Context().Done():
				return nil
			}
		}
	},
}

func printAssistant(out io.Writer, name, text string) {
	assistantLabel.Fprintf(out, "%s: ", name)
	fmt.Fprintln(out, text)
}
