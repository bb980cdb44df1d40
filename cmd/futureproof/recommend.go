package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/futureproof/careerguide/internal/core/domain"
	"github.com/futureproof/careerguide/internal/core/service"
	"github.com/futureproof/careerguide/internal/infrastructure/catalog"
	"github.com/futureproof/careerguide/pkg/logger"
)

var (
	recName      string
	recField     string
	recGoal      string
	recSkills    []string
	recInterests []string
	recStyle     string
	recLevel     string
	recJSON      bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend career roles for an assessment",
	Long:  "Resolve role recommendations from the assessment given as flags and print them.",
	RunE:  runRecommend,
}

func init() {
	recommendCmd.Flags().StringVar(&recName, "name", "", "Your name")
	recommendCmd.Flags().StringVar(&recField, "field", "", "Current field (required)")
	recommendCmd.Flags().StringVar(&recGoal, "goal", "", "Career goal")
	recommendCmd.Flags().StringSliceVar(&recSkills, "skills", nil, "Comma-separated skills (at least one)")
	recommendCmd.Flags().StringSliceVar(&recInterests, "interests", nil, "Comma-separated interests")
	recommendCmd.Flags().StringVar(&recStyle, "style", "", "Learning style: hands-on, visual, reading, mentoring")
	recommendCmd.Flags().StringVar(&recLevel, "level", "", "Experience level: beginner, intermediate, advanced")
	recommendCmd.Flags().BoolVar(&recJSON, "json", false, "Print the result as JSON")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	cat, err := catalog.Load()
	if err != nil {
		return err
	}

	svc := service.NewRecommendationService(cat, 0, logger.Component("recommend"))
	res := svc.Recommend(cmd.Context(), domain.AssessmentInput{
		Name:            recName,
		CurrentField:    recField,
		CareerGoal:      recGoal,
		SelectedSkills:  recSkills,
		Interests:       recInterests,
		LearningStyle:   recStyle,
		ExperienceLevel: recLevel,
	})

	out := cmd.OutOrStdout()
	if recJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	if res.Outcome == domain.OutcomeFailed {
		return fmt.Errorf("%s", res.Reason)
	}
	if res.Outcome == domain.OutcomeDegraded {
		fmt.Fprintf(out, "Note: %s\n\n", res.Reason)
	}
	for i, r := range res.Recommendations {
		fmt.Fprintf(out, "%d. %s [%s]\n   %s\n   Why: %s\n", i+1, r.Title, r.Badge, r.Description, r.WhyGoodFit)
		fmt.Fprintf(out, "   Next steps:\n     - %s\n\n", strings.Join(r.NextSteps, "\n     - "))
	}
	return nil
}
