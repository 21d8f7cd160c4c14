package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/gitrdm/resolve/internal/obs"
	"github.com/gitrdm/resolve/internal/tptp"
	"github.com/gitrdm/resolve/pkg/resolve"
)

// proveFlags holds the §6B flags specific to `resolve prove`.
type proveFlags struct {
	eqAxioms   bool
	clausify   bool
	forwardSub bool
	backwardSub bool
	heuristic  string
	negSelect  string
	sos        bool
	maxClauses int
	timeout    time.Duration

	watch       bool
	metricsAddr string
	runID       string
}

func newProveCmd(gf *globalFlags) *cobra.Command {
	var pf proveFlags

	cmd := &cobra.Command{
		Use:   "prove <file>",
		Short: "Attempt to refute a single TPTP cnf/fof problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProve(cmd, args[0], gf, &pf)
		},
	}

	cmd.Flags().BoolVarP(&pf.eqAxioms, "eq-axioms", "t", false, "synthesize equality congruence axioms")
	// The parser already distinguishes cnf(...) from fof(...) syntactically,
	// so clausification runs automatically for fof input; -i is accepted
	// for CLI compatibility with the flag table and otherwise has no effect.
	cmd.Flags().BoolVarP(&pf.clausify, "clausify", "i", false, "input is fof; clausify before saturating (automatic)")
	cmd.Flags().BoolVarP(&pf.forwardSub, "forward-subsumption", "f", false, "enable forward subsumption")
	cmd.Flags().BoolVarP(&pf.backwardSub, "backward-subsumption", "b", false, "enable backward subsumption")
	cmd.Flags().StringVarP(&pf.heuristic, "heuristic", "H", "", "clause-selection heuristic (FIFO, SymbolCount, PickGivenN)")
	cmd.Flags().StringVarP(&pf.negSelect, "neg-select", "n", "", "literal selection policy (none, first, smallest, largest)")
	cmd.Flags().BoolVarP(&pf.sos, "sos", "S", false, "enable set-of-support restriction")
	cmd.Flags().IntVar(&pf.maxClauses, "max-clauses", 0, "soft budget: maximum clauses kept, input clauses included (0 = unlimited)")
	cmd.Flags().DurationVar(&pf.timeout, "timeout", 0, "soft budget: wall-clock limit (0 = unlimited)")

	cmd.Flags().BoolVar(&pf.watch, "watch", false, "re-run whenever the input file changes")
	cmd.Flags().StringVar(&pf.metricsAddr, "metrics-addr", "", "serve Prometheus /metrics on this address for the run's duration")
	cmd.Flags().StringVar(&pf.runID, "run-id", "", "correlation id for this run (defaults to a fresh UUID)")

	return cmd
}

// buildEngineConfig merges a loaded profile with any prove flags the user
// explicitly set, flags taking precedence (§6B: "overridable by the flags
// above").
func buildEngineConfig(cmd *cobra.Command, gf *globalFlags, pf *proveFlags) (resolve.Config, error) {
	profile, err := loadProfile(gf)
	if err != nil {
		return resolve.Config{}, err
	}

	cfg := resolve.DefaultConfig()
	if profile.Heuristic != "" {
		if h, ok := resolve.NamedHeuristic(profile.Heuristic); ok {
			cfg.Heuristic = h
		}
	}
	if profile.Selection != "" {
		if s, ok := resolve.NamedSelector(profile.Selection); ok {
			cfg.Selector = s
		}
	}
	cfg.EqualityAxioms = profile.EqualityAxioms
	cfg.ForwardSubsumption = profile.ForwardSubsumption
	cfg.BackwardSubsumption = profile.BackwardSubsumption
	cfg.SOS = profile.SOS
	cfg.MaxClauses = profile.MaxClauses
	cfg.Timeout = profile.Timeout

	if cmd.Flags().Changed("heuristic") {
		h, ok := resolve.NamedHeuristic(pf.heuristic)
		if !ok {
			return cfg, fmt.Errorf("unknown heuristic %q", pf.heuristic)
		}
		cfg.Heuristic = h
	}
	if cmd.Flags().Changed("neg-select") {
		s, ok := resolve.NamedSelector(pf.negSelect)
		if !ok {
			return cfg, fmt.Errorf("unknown literal selection policy %q", pf.negSelect)
		}
		cfg.Selector = s
	}
	if cmd.Flags().Changed("eq-axioms") {
		cfg.EqualityAxioms = pf.eqAxioms
	}
	if cmd.Flags().Changed("forward-subsumption") {
		cfg.ForwardSubsumption = pf.forwardSub
	}
	if cmd.Flags().Changed("backward-subsumption") {
		cfg.BackwardSubsumption = pf.backwardSub
	}
	if cmd.Flags().Changed("sos") {
		cfg.SOS = pf.sos
	}
	if cmd.Flags().Changed("max-clauses") {
		cfg.MaxClauses = pf.maxClauses
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = pf.timeout
	}
	return cfg, nil
}

func runProve(cmd *cobra.Command, path string, gf *globalFlags, pf *proveFlags) error {
	if !pf.watch {
		return proveOnce(cmd, path, gf, pf)
	}
	return proveWatch(cmd, path, gf, pf)
}

func proveOnce(cmd *cobra.Command, path string, gf *globalFlags, pf *proveFlags) error {
	cfg, err := buildEngineConfig(cmd, gf, pf)
	if err != nil {
		return err
	}

	runID := pf.runID
	if runID == "" {
		runID = uuid.NewString()
	}

	log := newLogger(gf.verbose || pf.watch)
	reg := prometheus.NewRegistry()
	metrics := obs.NewMetricsObserver(reg, runID)
	observer := obs.NewMultiObserver(obs.NewLogObserver(log), metrics)

	var metricsSrv *http.Server
	if pf.metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		metricsSrv = &http.Server{Addr: pf.metricsAddr, Handler: mux}
		go func() {
			_ = metricsSrv.ListenAndServe()
		}()
		defer metricsSrv.Close()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read problem file: %w", err)
	}

	parser := tptp.NewParser(string(data))
	prob, err := parser.Parse()
	if err != nil {
		line, col, _ := tptp.ErrorLocation(err)
		return resolve.NewParseError(line, col, err.Error())
	}

	engine := resolve.NewEngine(cfg, runID)
	engine.SetObserver(observer)

	gen := resolve.VarGen{}
	clauses, kind := tptp.ConvertProblem(prob, &gen)

	ctx := context.Background()
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	result := engine.Saturate(ctx, clauses)
	status := resolve.SZSStatus(kind, result.Status)

	fmt.Printf("%% SZS status %s for %s\n", status, path)
	fmt.Printf("%% clauses generated: %d, kept: %d, discarded: %d, iterations: %d\n",
		result.ClausesGenerated, result.ClausesKept, result.ClausesDiscarded, result.Iterations)

	if result.Status == resolve.Refutation {
		fmt.Println("%% SZS output start CNFRefutation")
		for _, c := range engine.Proof(result) {
			fmt.Printf("%d: %s %s\n", c.ID(), c.String(), c.Inference())
		}
		fmt.Println("%% SZS output end CNFRefutation")
	}

	return nil
}

func proveWatch(cmd *cobra.Command, path string, gf *globalFlags, pf *proveFlags) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	if err := proveOnce(cmd, path, gf, pf); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := proveOnce(cmd, path, gf, pf); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		}
	}
}
