package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"component-store/internal/compiler"
	"component-store/internal/gen"
)

type genOptions struct {
	out        string
	pkg        string
	aggregate  string
	concurrent bool
	dryRun     bool
}

func newGenCmd(root *rootOptions) *cobra.Command {
	opts := &genOptions{}

	cmd := &cobra.Command{
		Use:   "gen [schema]",
		Short: "Generate the store source file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := root.open()
			if err != nil {
				return err
			}
			defer s.close()

			return runGen(cmd, s, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output directory (overrides config)")
	cmd.Flags().StringVarP(&opts.pkg, "package", "p", "", "generated package name (overrides config)")
	cmd.Flags().StringVar(&opts.aggregate, "aggregate", "", "aggregate store type name (overrides config)")
	cmd.Flags().BoolVar(&opts.concurrent, "concurrent", false, "embed the mutex-guarded index")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "print the generated source instead of writing it")

	return cmd
}

func runGen(cmd *cobra.Command, s *session, opts *genOptions, args []string) error {
	if opts.out != "" {
		s.cfg.Output = opts.out
	}

	if opts.pkg != "" {
		s.cfg.Package = opts.pkg
	}

	if opts.aggregate != "" {
		s.cfg.Aggregate = opts.aggregate
	}

	if opts.concurrent {
		s.cfg.Concurrent = true
	}

	path, err := s.schemaPath(args)
	if err != nil {
		return err
	}

	s.cfg.Schema = path
	log := s.log.With("schema", path)

	res, err := compiler.CompileFile(path, s.cfg.PlanOptions())
	if err != nil {
		log.Error("schema rejected", "error", err)
		return err
	}

	genCfg := s.cfg.GeneratorConfig()
	genCfg.Source = filepath.Base(path)
	g := gen.NewGenerator(genCfg)

	res.Diagnostics.Merge(g.Check(res.Plan))

	for _, w := range res.Diagnostics.Warnings {
		log.Warn(w.Message, "code", w.Code, "component", w.Component, "pos", w.Pos.String())
	}

	if err := res.Diagnostics.Error(); err != nil {
		log.Error("schema rejected", "error", err)
		return fmt.Errorf("%s: %w", path, err)
	}

	log.Debug("plan synthesized",
		"components", len(res.Plan.Components),
		"aggregate", res.Plan.Aggregate.Name)

	files, err := g.Generate(res.Plan)
	if err != nil {
		return err
	}

	if opts.dryRun {
		for _, f := range files {
			fmt.Fprintf(cmd.OutOrStdout(), "// === %s ===\n%s", f.Filename, f.Content)
		}

		return nil
	}

	if err := gen.WriteFiles(files, s.cfg.Output); err != nil {
		return err
	}

	for _, f := range files {
		log.Info("generated", "file", filepath.Join(s.cfg.Output, f.Filename))
	}

	return nil
}
