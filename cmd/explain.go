package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"github.com/finbook/statements"
	"github.com/finbook/statements/renderer"
)

type explainCmd struct {
	reportFlags
	report string
	model  string
}

func (*explainCmd) Name() string     { return "explain" }
func (*explainCmd) Synopsis() string { return "ask Gemini to explain a statement" }
func (*explainCmd) Usage() string {
	return `explain [-report pl|bs|statement] [report flags] <question...>

  Computes the selected statement and asks Gemini the question about
  it. Requires Gemini credentials in the environment, see the genai
  client documentation.
`
}

func (c *explainCmd) SetFlags(f *flag.FlagSet) {
	c.reportFlags.SetFlags(f)
	f.StringVar(&c.report, "report", "pl", "statement to explain: pl, bs or statement")
	f.StringVar(&c.model, "model", "gemini-2.5-flash", "Gemini model name")
}

func (c *explainCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	question := strings.Join(f.Args(), " ")
	if question == "" {
		question = "Summarize this financial statement and point out anything unusual."
	}

	var build func(*statements.Ledger, *statements.Company, statements.Filters) (*statements.Statement, error)
	switch c.report {
	case "pl":
		build = statements.NewProfitAndLoss
	case "bs":
		build = statements.NewBalanceSheet
	case "statement":
		build = statements.NewStatement
	default:
		fmt.Fprintf(os.Stderr, "unknown report %q, expected pl, bs or statement\n", c.report)
		return subcommands.ExitUsageError
	}

	company, err := DecodeCompanyFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading company settings: %v\n", err)
		return subcommands.ExitFailure
	}
	ledger, err := DecodeLedgerFile(company)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	filters, err := c.Filters(company)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	statement, err := build(ledger, company, filters)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing statement: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
You are an accountant. You are given a financial statement in markdown
and a question about it. Answer concisely, in markdown, using only the
figures in the statement.`}}},
	}
	chat, err := client.Chats.Create(ctx, c.model, config, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error starting chat:", err)
		return subcommands.ExitFailure
	}

	prompt := renderer.StatementMarkdown(statement) + "\n\n" + question
	resp, err := chat.Send(ctx, &genai.Part{Text: prompt})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error asking Gemini:", err)
		return subcommands.ExitFailure
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		fmt.Fprintln(os.Stderr, "Empty response from Gemini")
		return subcommands.ExitFailure
	}

	if c.raw {
		fmt.Println(resp.Candidates[0].Content.Parts[0].Text)
	} else {
		printMarkdown(resp.Candidates[0].Content.Parts[0].Text)
	}
	return subcommands.ExitSuccess
}
