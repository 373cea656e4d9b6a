package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"elevhtn/internal/domain"
	"elevhtn/internal/render"
)

// solve <name>: send the stored problem to the planner and keep the plan.
func solveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve <name>",
		Short: "Send a stored problem to an external planner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if plannerURL == "" {
				return fmt.Errorf("no planner configured. use --planner")
			}
			wire.Logger.Debug("solving", "problem", args[0], "planner", plannerURL, "timeout", wire.Timeout)
			ctx, cancel := context.WithTimeout(cmd.Context(), wire.Timeout)
			defer cancel()

			plan, err := wire.Solver.SolveProblem(ctx, domain.ProblemName(args[0]))
			if err != nil {
				return fmt.Errorf("solving %q: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.Plan(plan))
			return nil
		},
	}
}

func planCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan <name>",
		Short: "Print the last plan stored for a problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, ok, err := wire.Solver.LatestPlan(domain.ProblemName(args[0]))
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("plan for %s: %w", args[0], domain.ErrNotFound)
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.Plan(plan))
			return nil
		},
	}
}
