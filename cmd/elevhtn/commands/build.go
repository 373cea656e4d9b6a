package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"elevhtn/internal/domain"
	"elevhtn/internal/render"
	"elevhtn/internal/scenario"
)

// build [name]: build a problem from flags or a scenario file and store it.
func buildCmd() *cobra.Command {
	var (
		floors       int
		people       int
		personFloors []int
		destinations []int
		scenarioPath string
	)
	cmd := &cobra.Command{
		Use:   "build [name]",
		Short: "Build an elevator problem and store it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := domain.BuildRequest{
				Floors:       floors,
				People:       people,
				PersonFloors: personFloors,
			}
			if cmd.Flags().Changed("destinations") {
				req.Destinations = destinations
			}
			if scenarioPath != "" {
				f, err := scenario.Load(scenarioPath)
				if err != nil {
					return err
				}
				req = f.Request()
				wire.Logger.Debug("scenario loaded", "path", scenarioPath, "floors", req.Floors, "people", req.People)
			}
			if len(args) == 1 {
				req.Name = domain.ProblemName(args[0])
			}

			p, fp, err := wire.Problems.BuildProblem(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.Problem(p, fp))
			return nil
		},
	}
	cmd.Flags().IntVar(&floors, "floors", 0, "number of floors (NUM_FLOOR)")
	cmd.Flags().IntVar(&people, "people", 0, "number of people (NUM_PEOPLE)")
	cmd.Flags().IntSliceVar(&personFloors, "person-floors", nil, "starting floor of each person (FLOOR_LIST)")
	cmd.Flags().IntSliceVar(&destinations, "destinations", nil, "target floor of each person (default: lobby)")
	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "YAML scenario file; replaces the count flags")
	cmd.MarkFlagsMutuallyExclusive("scenario", "floors")
	cmd.MarkFlagsMutuallyExclusive("scenario", "people")
	cmd.MarkFlagsMutuallyExclusive("scenario", "person-floors")
	cmd.MarkFlagsMutuallyExclusive("scenario", "destinations")
	return cmd
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := wire.Problems.ListProblems()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.List(names))
			return nil
		},
	}
}
