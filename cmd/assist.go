package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/networth/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "ask questions about your net worth" }
func (*assistCmd) Usage() string {
	return `assist [question]

  Starts an interactive session with the AI assistant. The optional question
  is asked first. The Gemini model is read from $NW_GEMINI_MODEL.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := strings.Join(f.Args(), " ")

	client, cfg, err := newClient()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	gemini, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	analyst := agent.NewAnalyst(cfg.Model, client)
	advisor := agent.NewAdvisor(cfg.Model)
	a := agent.New(stdout, stdin, cfg.Model, analyst, advisor)
	a.Render = renderMarkdown

	if err := a.Run(ctx, gemini, initialPrompt); err != nil {
		fmt.Fprintln(stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
