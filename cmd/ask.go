package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/aigua/internal/logging"
	"github.com/abhisek/aigua/internal/session"
)

var askCmd = &cobra.Command{
	Use:   "ask <question...>",
	Short: "Ask the water-cycle assistant a single question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := strings.TrimSpace(strings.Join(args, " "))
		if question == "" {
			return fmt.Errorf("%s", session.EmptyQuestionMessage)
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

		fmt.Println(gw.AskQuestion(cmd.Context(), question))
		return nil
	},
}
