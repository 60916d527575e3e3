package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/aigua/internal/gateway"
	"github.com/abhisek/aigua/internal/logging"
	"github.com/abhisek/aigua/internal/quiz"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Quiz tools",
}

var quizPreviewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the questions the gateway would serve (no session)",
	Long: `Generate one quiz and print it with the correct answers marked.

Failed or malformed responses fall back to the built-in question set,
exactly as in the app.`,
	RunE: runQuizPreview,
}

func init() {
	quizPreviewCmd.Flags().String("difficulty", "easy", "Difficulty: easy or hard")
	quizPreviewCmd.Flags().Bool("strict", false, "Fail instead of falling back when generation fails")
	quizCmd.AddCommand(quizPreviewCmd)
}

func runQuizPreview(cmd *cobra.Command, args []string) error {
	dval, _ := cmd.Flags().GetString("difficulty")
	strict, _ := cmd.Flags().GetBool("strict")

	d, err := quiz.ParseDifficulty(dval)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	st, err := openStore(cmd, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	gw, err := buildGateway(cmd.Context(), cmd, st.EventRepo(), logger)
	if err != nil {
		return err
	}

	var questions []quiz.Question
	if strict {
		questions, err = gw.TryGenerateQuiz(cmd.Context(), d)
		if err != nil {
			return fmt.Errorf("generate quiz: %w", err)
		}
	} else {
		questions = gw.GenerateQuiz(cmd.Context(), d)
	}

	printQuiz(d, questions)
	if !strict && sameQuestions(questions, gateway.FallbackQuestions(d)) {
		fmt.Println("(built-in fallback questions)")
	}
	return nil
}

func printQuiz(d quiz.Difficulty, questions []quiz.Question) {
	fmt.Printf("Dificultat: %s (%d preguntes)\n\n", d.DisplayName(), len(questions))
	labels := []string{"A", "B", "C", "D"}
	for i, q := range questions {
		fmt.Printf("%d. %s\n", i+1, q.Question)
		for j, opt := range q.Options {
			mark := " "
			if q.IsCorrect(j) {
				mark = "✓"
			}
			label := "?"
			if j < len(labels) {
				label = labels[j]
			}
			fmt.Printf("   %s %s) %s\n", mark, label, opt)
		}
		fmt.Println()
	}
}

func sameQuestions(a, b []quiz.Question) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Question != b[i].Question {
			return false
		}
	}
	return true
}
