package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mathplanner",
	Short: "AI math tutor for middle school students",
	Long: "mathplanner builds study plans, practice questions, concept explanations and " +
		"reinforcement resources with a chat-completion model. With no subcommand it opens the form UI.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("env-file", "", "Env file to load (default .env when present)")
	pf.String("provider", "", "Completion provider: openai, openrouter, anthropic, gemini or mock (overrides MATHPLANNER_LLM_PROVIDER)")
	pf.String("model", "", "Model identifier (overrides MATHPLANNER_MODEL)")
	pf.Duration("timeout", 0, "Deadline for each completion call (0 waits indefinitely)")
	pf.String("log-level", "", "Log level: debug, info, warn or error (overrides MATHPLANNER_LOG_LEVEL)")
	pf.String("log-format", "", "Log format: text or json (overrides MATHPLANNER_LOG_FORMAT)")
	pf.String("log-file", "", "Append logs to this file (the form UI discards logs otherwise)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(versionCmd)
}
