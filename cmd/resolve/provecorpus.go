package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gitrdm/resolve/internal/tptp"
	"github.com/gitrdm/resolve/pkg/resolve"
)

type corpusFlags struct {
	jobs int
}

func newProveCorpusCmd(gf *globalFlags) *cobra.Command {
	var cf corpusFlags

	cmd := &cobra.Command{
		Use:   "provecorpus <dir>",
		Short: "Run prove over every TPTP problem in a directory tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProveCorpus(cmd, args[0], gf, &cf)
		},
	}

	cmd.Flags().IntVar(&cf.jobs, "jobs", runtime.GOMAXPROCS(0), "maximum concurrent proof attempts")

	return cmd
}

type corpusOutcome struct {
	path     string
	status   string
	expected string
	mismatch bool
	err      error
}

func runProveCorpus(cmd *cobra.Command, root string, gf *globalFlags, cf *corpusFlags) error {
	cfg, err := buildEngineConfig(cmd, gf, &proveFlags{})
	if err != nil {
		return err
	}

	var paths []string
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, ".p") || strings.HasSuffix(path, ".tptp") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk %s: %w", root, err)
	}
	sort.Strings(paths)

	var (
		mu      sync.Mutex
		results []corpusOutcome
	)

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(cf.jobs)

	for _, p := range paths {
		p := p
		g.Go(func() error {
			outcome := proveCorpusFile(ctx, cfg, p)
			mu.Lock()
			results = append(results, outcome)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].path < results[j].path })

	pass, fail, errored := 0, 0, 0
	for _, r := range results {
		switch {
		case r.err != nil:
			errored++
			fmt.Printf("ERROR %s: %v\n", r.path, r.err)
		case r.expected == "":
			fmt.Printf("%-20s %s\n", r.status, r.path)
		case r.mismatch:
			fail++
			fmt.Printf("FAIL  %-20s %s (expected %s)\n", r.status, r.path, r.expected)
		default:
			pass++
			fmt.Printf("PASS  %-20s %s\n", r.status, r.path)
		}
	}

	fmt.Printf("\n%d pass, %d fail, %d error, %d total\n", pass, fail, errored, len(results))
	if fail > 0 || errored > 0 {
		return fmt.Errorf("provecorpus: %d failures, %d errors", fail, errored)
	}
	return nil
}

func proveCorpusFile(ctx context.Context, cfg resolve.Config, path string) corpusOutcome {
	data, err := os.ReadFile(path)
	if err != nil {
		return corpusOutcome{path: path, err: err}
	}

	parser := tptp.NewParser(string(data))
	prob, err := parser.Parse()
	if err != nil {
		return corpusOutcome{path: path, err: err}
	}

	engine := resolve.NewEngine(cfg, "")
	gen := resolve.VarGen{}
	clauses, kind := tptp.ConvertProblem(prob, &gen)

	result := engine.Saturate(ctx, clauses)
	status := resolve.SZSStatus(kind, result.Status)

	expected := readExpected(path)
	return corpusOutcome{
		path:     path,
		status:   status,
		expected: expected,
		mismatch: expected != "" && expected != status,
	}
}

// readExpected looks for a sibling "<problem>.expected" file holding one
// line with the SZS status a conformant prover must report, returning ""
// when no such file exists (provecorpus then just reports what it found,
// with no pass/fail verdict).
func readExpected(path string) string {
	data, err := os.ReadFile(path + ".expected")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
