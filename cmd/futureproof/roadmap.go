package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/futureproof/careerguide/internal/core/domain"
	"github.com/futureproof/careerguide/internal/infrastructure/catalog"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap [role]",
	Short: "Print the learning roadmap for a role",
	Long:  "Print the staged learning roadmap for a role, with milestone ids. Without a role, list the available roadmaps.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRoadmap,
}

func init() {
	rootCmd.AddCommand(roadmapCmd)
}

func runRoadmap(cmd *cobra.Command, args []string) error {
	cat, err := catalog.Load()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		for _, key := range cat.RoadmapKeys() {
			fmt.Fprintln(out, key)
		}
		return nil
	}

	rm, ok := cat.Roadmap(domain.NormalizeRoleKey(args[0]))
	if !ok {
		return fmt.Errorf("%w: %s (available: %s)", domain.ErrRoadmapNotFound, args[0], strings.Join(cat.RoadmapKeys(), ", "))
	}

	fmt.Fprintf(out, "%s Learning Roadmap (%d milestones)\n", rm.Title, rm.TotalMilestones())
	for i, st := range rm.Stages {
		fmt.Fprintf(out, "\n%s (%s)\n  %s\n", st.Title, st.Duration, st.Description)
		for _, item := range st.Items {
			fmt.Fprintf(out, "  • %s\n", item)
		}
		for _, res := range st.Resources {
			fmt.Fprintf(out, "  [%s] %s (%s)\n", res.Type, res.Title, res.Time)
		}
		for j, m := range st.Milestones {
			fmt.Fprintf(out, "  %-5s %s\n", domain.MilestoneID(i, j), m)
		}
	}
	return nil
}
