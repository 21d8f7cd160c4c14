package integration

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gitrdm/resolve/internal/tptp"
	"github.com/gitrdm/resolve/pkg/resolve"
)

func prove(src string) (*resolve.Result, resolve.ProblemKind) {
	p := tptp.NewParser(src)
	prob, err := p.Parse()
	Expect(err).NotTo(HaveOccurred())

	var gen resolve.VarGen
	clauses, kind := tptp.ConvertProblem(prob, &gen)

	cfg := resolve.DefaultConfig()
	cfg.ForwardSubsumption = true
	cfg.BackwardSubsumption = true
	engine := resolve.NewEngine(cfg, "")
	result := engine.Saturate(context.Background(), clauses)
	return result, kind
}

func proveWith(src string, configure func(*resolve.Config)) (*resolve.Result, resolve.ProblemKind) {
	p := tptp.NewParser(src)
	prob, err := p.Parse()
	Expect(err).NotTo(HaveOccurred())

	var gen resolve.VarGen
	clauses, kind := tptp.ConvertProblem(prob, &gen)

	cfg := resolve.DefaultConfig()
	configure(&cfg)
	engine := resolve.NewEngine(cfg, "")
	result := engine.Saturate(context.Background(), clauses)
	return result, kind
}

var _ = Describe("SZS status reporting", func() {
	It("reports Unsatisfiable for an unsatisfiable cnf problem", func() {
		result, kind := prove(`
			cnf(c1, axiom, man(socrates)).
			cnf(c2, axiom, ~man(X) | mortal(X)).
			cnf(c3, negated_conjecture, ~mortal(socrates)).
		`)
		Expect(result.Status).To(Equal(resolve.Refutation))
		Expect(resolve.SZSStatus(kind, result.Status)).To(Equal("Unsatisfiable"))
	})

	It("reports Satisfiable for a satisfiable cnf problem", func() {
		result, kind := prove(`cnf(c1, axiom, p(a)).`)
		Expect(result.Status).To(Equal(resolve.Saturated))
		Expect(resolve.SZSStatus(kind, result.Status)).To(Equal("Satisfiable"))
	})

	It("reports Theorem for a provable fof conjecture", func() {
		result, kind := prove(`
			fof(ax1, axiom, ![X]: (man(X) => mortal(X))).
			fof(ax2, axiom, man(socrates)).
			fof(conj, conjecture, mortal(socrates)).
		`)
		Expect(result.Status).To(Equal(resolve.Refutation))
		Expect(resolve.SZSStatus(kind, result.Status)).To(Equal("Theorem"))
	})

	It("reports CounterSatisfiable for an unprovable fof conjecture", func() {
		result, kind := prove(`
			fof(ax1, axiom, p(a)).
			fof(conj, conjecture, q(a)).
		`)
		Expect(result.Status).To(Equal(resolve.Saturated))
		Expect(resolve.SZSStatus(kind, result.Status)).To(Equal("CounterSatisfiable"))
	})

	It("reports GaveUp once the clause budget is exhausted, regardless of problem kind", func() {
		p := tptp.NewParser(`
			cnf(c1, axiom, p(X) | q(X)).
			cnf(c2, axiom, ~p(X) | r(X)).
			cnf(c3, axiom, ~q(X) | r(X)).
			cnf(c4, negated_conjecture, ~r(a)).
		`)
		prob, err := p.Parse()
		Expect(err).NotTo(HaveOccurred())

		var gen resolve.VarGen
		clauses, kind := tptp.ConvertProblem(prob, &gen)

		cfg := resolve.DefaultConfig()
		cfg.MaxClauses = 1
		engine := resolve.NewEngine(cfg, "")
		result := engine.Saturate(context.Background(), clauses)

		Expect(result.Status).To(Equal(resolve.GaveUp))
		Expect(resolve.SZSStatus(kind, result.Status)).To(Equal("GaveUp"))
	})

	It("refutes a reflexivity violation only when equality axioms are synthesized", func() {
		result, kind := proveWith(`cnf(nc, negated_conjecture, a != a).`, func(cfg *resolve.Config) {
			cfg.EqualityAxioms = true
		})
		Expect(result.Status).To(Equal(resolve.Refutation))
		Expect(resolve.SZSStatus(kind, result.Status)).To(Equal("Unsatisfiable"))
	})

	It("refutes a symmetry-only conjecture under set-of-support", func() {
		result, kind := proveWith(`
			cnf(c1, axiom, a = b).
			cnf(c2, negated_conjecture, b != a).
		`, func(cfg *resolve.Config) {
			cfg.EqualityAxioms = true
			cfg.SOS = true
		})
		Expect(result.Status).To(Equal(resolve.Refutation))
		Expect(resolve.SZSStatus(kind, result.Status)).To(Equal("Unsatisfiable"))
	})

	It("extracts a well-formed refutation proof ending in the empty clause", func() {
		result, _ := prove(`
			cnf(c1, axiom, man(socrates)).
			cnf(c2, axiom, ~man(X) | mortal(X)).
			cnf(c3, negated_conjecture, ~mortal(socrates)).
		`)
		Expect(result.Status).To(Equal(resolve.Refutation))
		Expect(result.Empty.IsEmpty()).To(BeTrue())
	})
})
