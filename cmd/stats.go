package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/aigua/internal/progress"
	"github.com/abhisek/aigua/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show badges earned and quiz results",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cmd, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		repo := st.EventRepo()

		badges, err := repo.QueryBadgeEvents(ctx, store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("query badges: %w", err)
		}
		quizzes, err := repo.QueryQuizEvents(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query quizzes: %w", err)
		}
		stages, err := repo.QueryStageEvents(ctx, store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("query stages: %w", err)
		}

		fmt.Println("Badges")
		fmt.Println(strings.Repeat("─", 60))
		counts := make(map[string]int)
		for _, b := range badges {
			counts[b.Badge]++
		}
		for _, b := range progress.AllBadges() {
			fmt.Printf("%s  %-28s  %d sessions\n", b.Icon(), b.DisplayName(), counts[string(b)])
		}
		fmt.Printf("\nStages completed: %d\n\n", len(stages))

		if len(quizzes) == 0 {
			fmt.Println("No quizzes finished yet.")
			return nil
		}

		fmt.Println("Quiz results")
		fmt.Println(strings.Repeat("─", 60))
		fmt.Printf("%-19s  %-8s  %7s  %5s\n", "Timestamp", "Level", "Score", "%")
		for _, q := range quizzes {
			fmt.Printf("%-19s  %-8s  %3d / %-2d  %4d%%\n",
				q.Timestamp.Local().Format("2006-01-02 15:04:05"),
				q.Difficulty, q.Score, q.Total, q.Percentage)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 20, "Number of quiz results to show")
}
