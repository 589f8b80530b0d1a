package main

import (
	"fmt"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"component-store/internal/config"
	"component-store/internal/logger"
)

// rootOptions are the flags shared by every command.
type rootOptions struct {
	configPath string
	verbose    bool
	cpuProfile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "component-store",
		Short: "Generate component index stores from a schema",
		Long: `Compile a component schema into a Go storage module.

A schema starts with a "components:" header followed by one declaration per
component:

  components:
    Color
    Position/Positions <- Range

Each component gets a string-keyed index type; an aggregate store holds one
index per component. Settings are read from component-store.yaml when present.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "project file (default "+config.DefaultFile+" if present)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&opts.cpuProfile, "cpuprofile", "", "write a CPU profile to this directory")

	cmd.AddCommand(newGenCmd(opts), newCheckCmd(opts), newParseCmd(opts), newConfigCmd(opts))

	return cmd
}

// session is the state a command runs with.
type session struct {
	cfg *config.Config
	log *logger.Logger
	// stop ends profiling, if enabled.
	stop func()
}

// open loads the project file, builds the logger and starts profiling.
func (o *rootOptions) open() (*session, error) {
	cfg, err := config.LoadOptional(o.configPath)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.LogMode, o.verbose)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	s := &session{cfg: cfg, log: log, stop: func() {}}

	if o.cpuProfile != "" {
		p := profile.Start(profile.CPUProfile, profile.ProfilePath(o.cpuProfile), profile.NoShutdownHook, profile.Quiet)
		s.stop = p.Stop

		log.Debug("cpu profiling enabled", "dir", o.cpuProfile)
	}

	return s, nil
}

func (s *session) close() {
	s.stop()
	s.log.Sync()
}

// schemaPath picks the positional argument over the project file.
func (s *session) schemaPath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	if s.cfg.Schema != "" {
		return s.cfg.Schema, nil
	}

	return "", fmt.Errorf("no schema given: pass a path or set schema in %s", config.DefaultFile)
}
