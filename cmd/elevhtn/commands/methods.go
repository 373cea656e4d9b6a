package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"elevhtn/internal/domain"
	"elevhtn/internal/elevator"
	"elevhtn/internal/htn"
	"elevhtn/internal/render"
)

// methods <name> <person> <floor>: list the ways transport_person(person,
// floor) can be decomposed in the problem's initial state.
func methodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "methods <name> <person> <floor>",
		Short: "Show the methods applicable to a transport goal",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			person, floor := args[1], args[2]
			ds, err := wire.Problems.Decompositions(domain.ProblemName(args[0]), person, floor)
			if err != nil {
				return err
			}
			goal := htn.GroundTask{Name: elevator.TaskTransportPerson, Args: []string{person, floor}}
			fmt.Fprintln(cmd.OutOrStdout(), render.Decompositions(goal.String(), ds))
			return nil
		},
	}
}
