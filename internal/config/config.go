// Package config loads solver profiles: named sets of engine settings
// (heuristic, selection policy, subsumption, budget) a user can check
// into a repo and select on the CLI with --config, instead of repeating
// the same flag combination every run (§6B of SPEC_FULL.md).
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Profile is one named solver configuration, as it appears under
// "profiles:" in a config file.
type Profile struct {
	// Heuristic is a §9 ClauseHeuristic name: "FIFO", "SymbolCount", or
	// "PickGivenN" for some N.
	Heuristic string `yaml:"heuristic"`
	// Selection is a §9 LiteralSelector name: "none", "first", "smallest",
	// or "largest".
	Selection string `yaml:"selection"`
	// EqualityAxioms enables congruence-axiom generation (§4.3).
	EqualityAxioms bool `yaml:"equality_axioms"`
	// ForwardSubsumption and BackwardSubsumption enable the §4.4 redundancy
	// checks; both default to false (PyRes's own default).
	ForwardSubsumption  bool `yaml:"forward_subsumption"`
	BackwardSubsumption bool `yaml:"backward_subsumption"`
	// SOS enables set-of-support restriction (§4.6).
	SOS bool `yaml:"sos"`
	// MaxClauses and Timeout are the soft budget (§5); zero means unlimited.
	MaxClauses int           `yaml:"max_clauses"`
	Timeout    time.Duration `yaml:"timeout"`
}

// File is the top-level shape of a solver-profile YAML document: a
// default profile name plus a map of named profiles.
type File struct {
	Default  string             `yaml:"default"`
	Profiles map[string]Profile `yaml:"profiles"`
}

// DefaultProfile matches resolve.DefaultConfig(): FIFO, no selection, no
// subsumption, no SOS, no budget.
func DefaultProfile() Profile {
	return Profile{
		Heuristic: "FIFO",
		Selection: "none",
	}
}

// LoadFile reads and parses a solver-profile YAML document from path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	if f.Profiles == nil {
		f.Profiles = map[string]Profile{}
	}
	return &f, nil
}

// Select returns the named profile, or the file's default profile when
// name is empty, or the built-in DefaultProfile when f is nil or names
// no default.
func (f *File) Select(name string) (Profile, error) {
	if f == nil {
		return DefaultProfile(), nil
	}
	if name == "" {
		name = f.Default
	}
	if name == "" {
		return DefaultProfile(), nil
	}
	p, ok := f.Profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("config: no profile named %q", name)
	}
	return p, nil
}
