package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/futureproof/careerguide/internal/core/domain"
	"github.com/futureproof/careerguide/internal/core/service"
	"github.com/futureproof/careerguide/pkg/logger"
)

var (
	chatField string
	chatGoal  string
	chatLevel string
	chatStyle string
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the career advisor",
	Long:  "Start an interactive advisory chat on the terminal. Type /quit to leave.",
	RunE:  runChat,
}

func init() {
	chatCmd.Flags().StringVar(&chatField, "field", "", "Current field for the advisor profile")
	chatCmd.Flags().StringVar(&chatGoal, "goal", "", "Career goal for the advisor profile")
	chatCmd.Flags().StringVar(&chatLevel, "level", "", "Experience level for the advisor profile")
	chatCmd.Flags().StringVar(&chatStyle, "style", "", "Learning style for the advisor profile")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	log := logger.Component("chat")

	chat, err := newChatService(ctx, cfg.Completion, log)
	if err != nil {
		return err
	}

	var profile *domain.UserProfile
	if chatField != "" || chatGoal != "" || chatLevel != "" || chatStyle != "" {
		profile = &domain.UserProfile{
			CurrentField:    chatField,
			CareerGoal:      chatGoal,
			ExperienceLevel: chatLevel,
			LearningStyle:   chatStyle,
		}
	}
	session := service.NewChatSession(chat, profile)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "advisor> %s\n\nTry asking:\n", session.Messages()[0].Text)
	for _, q := range domain.SuggestedQuestions[:3] {
		fmt.Fprintf(out, "  - %s\n", q)
	}

	in := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "\nyou> ")
		if !in.Scan() {
			fmt.Fprintln(out)
			return in.Err()
		}
		text := strings.TrimSpace(in.Text())
		if text == "" {
			continue
		}
		if text == "/quit" || text == "/exit" {
			return nil
		}

		reply, err := session.Send(ctx, text)
		if err != nil {
			log.Warn().Err(err).Msg("chat request failed")
		}
		fmt.Fprintf(out, "advisor> %s\n", reply.Text)
	}
}
