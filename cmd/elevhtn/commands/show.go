package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"elevhtn/internal/crypto"
	"elevhtn/internal/domain"
	"elevhtn/internal/render"
)

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print a summary of a stored problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := wire.Problems.LoadProblem(domain.ProblemName(args[0]))
			if err != nil {
				return err
			}
			fp, err := crypto.Fingerprint(p)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.Problem(p, fp))
			return nil
		},
	}
}

// export <name>: write the stored problem for consumption by a planner.
func exportCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export <name>",
		Short: "Write a stored problem as JSON or YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := wire.Problems.LoadProblem(domain.ProblemName(args[0]))
			if err != nil {
				return err
			}
			var out []byte
			switch format {
			case "json":
				out, err = json.MarshalIndent(p, "", "  ")
				out = append(out, '\n')
			case "yaml":
				out, err = yaml.Marshal(p)
			default:
				return fmt.Errorf("unknown format %q (want json or yaml)", format)
			}
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	return cmd
}

func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint <name>",
		Short: "Print the content fingerprint of a stored problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fp, err := wire.Problems.FingerprintProblem(domain.ProblemName(args[0]))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", fp)
			return nil
		},
	}
}
