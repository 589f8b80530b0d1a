package main

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"component-store/internal/compiler"
)

func newParseCmd(root *rootOptions) *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "parse [schema]",
		Short: "Print the parsed components as YAML",
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

			if dump {
				res, err := compiler.CompileFile(path, s.cfg.PlanOptions())
				if err != nil {
					return err
				}

				spew.Fdump(cmd.OutOrStdout(), res.Plan)

				return nil
			}

			specs, err := compiler.ParseFile(path)
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)

			if err := enc.Encode(map[string]any{"components": specs}); err != nil {
				return err
			}

			return enc.Close()
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "dump the whole synthesis plan instead")

	return cmd
}
