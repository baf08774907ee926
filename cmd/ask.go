package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/yuin/goldmark"

	"github.com/abhisek/mathplanner/internal/tutor"
)

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Run one tutor request and print the result",
}

var askPlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a 7-day study plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		grade, _ := cmd.Flags().GetInt("grade")
		topics, _ := cmd.Flags().GetString("topics")
		hours, _ := cmd.Flags().GetInt("hours")
		if grade < 1 || hours < 1 {
			return fmt.Errorf("--grade and --hours must be at least 1")
		}
		return ask(cmd, "study plan", func(t tutor.Tutor) tutor.Result {
			return t.BuildStudyPlan(cmd.Context(), tutor.StudyPlanRequest{
				GradeLevel:     tutor.NumberOf(grade),
				WeakTopics:     topics,
				AvailableHours: tutor.NumberOf(hours),
			})
		})
	},
}

var askQuestionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Generate five practice problems",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		mistakes, _ := cmd.Flags().GetString("mistakes")
		return ask(cmd, "questions", func(t tutor.Tutor) tutor.Result {
			return t.BuildQuestions(cmd.Context(), tutor.QuestionRequest{
				Topic:            topic,
				Difficulty:       tutor.Difficulty(difficulty),
				PreviousMistakes: mistakes,
			})
		})
	},
}

var askExplainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Explain a concept and address common mistakes",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		mistakes, _ := cmd.Flags().GetString("mistakes")
		return ask(cmd, "explanation", func(t tutor.Tutor) tutor.Result {
			return t.BuildExplanation(cmd.Context(), tutor.ConceptRequest{
				Topic:           topic,
				StudentMistakes: mistakes,
			})
		})
	},
}

var askResourcesCmd = &cobra.Command{
	Use:   "resources",
	Short: "Suggest resources for a topic that keeps causing trouble",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		count, _ := cmd.Flags().GetInt("count")
		if count < 0 {
			return fmt.Errorf("--count must not be negative")
		}
		return ask(cmd, "resources", func(t tutor.Tutor) tutor.Result {
			return t.BuildResources(cmd.Context(), tutor.ResourceRequest{
				Topic:        topic,
				MistakeCount: tutor.NumberOf(count),
			})
		})
	},
}

// ask runs one use case and prints its text in the requested format.
func ask(cmd *cobra.Command, what string, run func(tutor.Tutor) tutor.Result) error {
	format, _ := cmd.Flags().GetString("format")
	if format != "text" && format != "html" {
		return fmt.Errorf("unknown format %q (want text or html)", format)
	}

	d, err := buildDeps(cmd, os.Stderr)
	if err != nil {
		return err
	}
	defer d.Close()

	res := run(d.tutor)
	if res.Failed() {
		return fmt.Errorf("failed to generate %s: %w", what, res.Cause)
	}
	return writeResult(cmd.OutOrStdout(), res.Text, format)
}

// writeResult prints text as is, or rendered from Markdown to HTML.
func writeResult(w io.Writer, text, format string) error {
	if format != "html" {
		_, err := fmt.Fprintln(w, text)
		return err
	}
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(text), &buf); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func init() {
	askCmd.PersistentFlags().String("format", "text", "Output format: text or html")

	askPlanCmd.Flags().Int("grade", 0, "Grade level (at least 1)")
	askPlanCmd.Flags().String("topics", "", "Weak topics, comma-separated")
	askPlanCmd.Flags().Int("hours", 1, "Available study hours per day")
	_ = askPlanCmd.MarkFlagRequired("grade")
	_ = askPlanCmd.MarkFlagRequired("topics")

	askQuestionsCmd.Flags().String("topic", "", "Math topic")
	askQuestionsCmd.Flags().String("difficulty", string(tutor.DifficultyEasy), "Difficulty: easy, medium or hard")
	askQuestionsCmd.Flags().String("mistakes", "", "Previous mistakes, comma-separated")
	_ = askQuestionsCmd.MarkFlagRequired("topic")
	_ = askQuestionsCmd.MarkFlagRequired("mistakes")

	askExplainCmd.Flags().String("topic", "", "Concept to explain")
	askExplainCmd.Flags().String("mistakes", "", "Common mistakes, comma-separated")
	_ = askExplainCmd.MarkFlagRequired("topic")
	_ = askExplainCmd.MarkFlagRequired("mistakes")

	askResourcesCmd.Flags().String("topic", "", "Math topic")
	askResourcesCmd.Flags().Int("count", 0, "How many times the topic caused trouble")
	_ = askResourcesCmd.MarkFlagRequired("topic")

	askCmd.AddCommand(askPlanCmd, askQuestionsCmd, askExplainCmd, askResourcesCmd)
}
