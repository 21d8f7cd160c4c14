package main

import (
	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/spf13/cobra"

	"github.com/gitrdm/resolve/internal/config"
)

const appName = "resolve"

// globalFlags holds flags shared by every subcommand (§6B's ambient
// flags: --config, --profile, -v/--verbose), separate from the
// per-invocation prove/provecorpus flags in prove.go/provecorpus.go.
type globalFlags struct {
	configPath string
	profile    string
	verbose    bool
}

func rootCmd() *cobra.Command {
	var gf globalFlags

	cmd := &cobra.Command{
		Use:   appName,
		Short: "A saturation-based resolution theorem prover for first-order logic with equality",
		Long: `resolve reads TPTP cnf(...)/fof(...) problems and attempts to refute them
by saturating their clause set under binary resolution and factoring,
reporting an SZS status (Unsatisfiable, Satisfiable, Theorem,
CounterSatisfiable, or GaveUp).`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&gf.configPath, "config", "", "solver-profile YAML file (see internal/config)")
	cmd.PersistentFlags().StringVar(&gf.profile, "profile", "", "profile name within --config (defaults to the file's default profile)")
	cmd.PersistentFlags().BoolVarP(&gf.verbose, "verbose", "v", false, "enable V(1) given-clause iteration logging")

	cmd.AddCommand(newProveCmd(&gf))
	cmd.AddCommand(newProveCorpusCmd(&gf))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newLogger builds the process-wide logr.Logger, backed by stdr (a plain
// stdlib-log sink) per the ambient-stack logging concern — the same
// facade/sink split operator-lifecycle-manager uses, minus the zapr
// production backend this CLI doesn't need.
func newLogger(verbose bool) logr.Logger {
	l := stdr.New(nil)
	if verbose {
		stdr.SetVerbosity(1)
	}
	return l
}

// loadProfile resolves --config/--profile into a config.Profile, falling
// back to config.DefaultProfile() when no --config is given.
func loadProfile(gf *globalFlags) (config.Profile, error) {
	if gf.configPath == "" {
		return config.DefaultProfile(), nil
	}
	f, err := config.LoadFile(gf.configPath)
	if err != nil {
		return config.Profile{}, err
	}
	return f.Select(gf.profile)
}
