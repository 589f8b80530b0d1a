package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"component-store/internal/compiler"
	"component-store/internal/gen"
)

func newCheckCmd(root *rootOptions) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check [schema]",
		Short: "Validate a schema and report name collisions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := root.open()
			if err != nil {
				return err
			}
			defer s.close()

			path, err := s.schemaPath(args)
			if err != nil {
				return err
			}

			res, err := compiler.CompileFile(path, s.cfg.PlanOptions())
			if err != nil {
				return err
			}

			res.Diagnostics.Merge(gen.NewGenerator(s.cfg.GeneratorConfig()).Check(res.Plan))

			out := cmd.OutOrStdout()
			for _, d := range res.Diagnostics.All() {
				fmt.Fprintf(out, "%s: %s: %s\n", path, d.Severity, d)
			}

			fmt.Fprintf(out, "%s: %d components, %d warnings\n",
				path, len(res.Plan.Components), len(res.Diagnostics.Warnings))

			if res.Diagnostics.HasErrors() {
				return fmt.Errorf("%s: %d errors", path, len(res.Diagnostics.Errors))
			}

			if strict && res.Diagnostics.HasWarnings() {
				return fmt.Errorf("%s: %d warnings", path, len(res.Diagnostics.Warnings))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail when any warning is reported")

	return cmd
}
