package tptp

import "fmt"

// Parser wraps a Lexer with recursive-descent parse methods for the
// cnf(...)/fof(...) grammar (§4.7). Grounded on clauses.py's
// parseAtom/parseLiteral and formulas.py's formula grammar, restructured
// as explicit-error recursive descent instead of exception-raising.
type Parser struct {
	lx *Lexer
}

// NewParser builds a Parser over src.
func NewParser(src string) *Parser {
	return &Parser{lx: NewLexer(src)}
}

func (p *Parser) errorf(format string, args ...any) error {
	tok := p.lx.Look()
	return fmt.Errorf("%w", parseErr(tok.Line, tok.Column, fmt.Sprintf(format, args...)))
}

// parseErr exists so this package does not import pkg/resolve just to
// build a *resolve.ProverError; the CLI boundary (cmd/resolve) wraps
// these with resolve.NewParseError when it surfaces them to a user.
type tptpError struct {
	Line, Column int
	Msg          string
}

func (e *tptpError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Line, e.Column, e.Msg)
}

func parseErr(line, col int, msg string) error {
	return &tptpError{Line: line, Column: col, Msg: msg}
}

// ErrorLocation extracts the line/column a Parse error occurred at, for
// callers (cmd/resolve) that want to build a located *resolve.ProverError
// instead of just reporting err.Error(). ok is false for any error not
// produced by this package's parser.
func ErrorLocation(err error) (line, col int, ok bool) {
	te, ok := err.(*tptpError)
	if !ok {
		return 0, 0, false
	}
	return te.Line, te.Column, true
}

// Parse consumes the entire source and returns the Problem it describes.
func (p *Parser) Parse() (*Problem, error) {
	prob := &Problem{}
	for {
		tok := p.lx.Look()
		if tok.Kind == EOF {
			return prob, nil
		}
		switch tok.Literal {
		case "cnf":
			c, err := p.parseCNF()
			if err != nil {
				return nil, err
			}
			prob.CNFClauses = append(prob.CNFClauses, c)
		case "fof":
			f, err := p.parseFOF()
			if err != nil {
				return nil, err
			}
			prob.FOFFormulas = append(prob.FOFFormulas, f)
		case "include":
			return nil, parseErr(tok.Line, tok.Column, "include(...) directives are not supported")
		default:
			return nil, parseErr(tok.Line, tok.Column, fmt.Sprintf("expected cnf/fof, got %q", tok.Literal))
		}
	}
}

func (p *Parser) expect(k TokenKind) (Token, error) {
	tok := p.lx.Next()
	if tok.Kind != k {
		return tok, parseErr(tok.Line, tok.Column, fmt.Sprintf("expected %s, got %q", k, tok.Literal))
	}
	return tok, nil
}

// parseCNF parses `cnf(name, role, (lit | lit | ...)).`
func (p *Parser) parseCNF() (*CNFClause, error) {
	if _, err := p.expectLiteral("cnf"); err != nil {
		return nil, err
	}
	if _, err := p.expect(OpenPar); err != nil {
		return nil, err
	}
	name := p.lx.Next().Literal
	if _, err := p.expect(Comma); err != nil {
		return nil, err
	}
	role := Role(p.lx.Next().Literal)
	if _, err := p.expect(Comma); err != nil {
		return nil, err
	}

	parenthesized := p.lx.TestTok(OpenPar)
	if parenthesized {
		p.lx.Next()
	}
	lits, err := p.parseLiteralDisjunction()
	if err != nil {
		return nil, err
	}
	if parenthesized {
		if _, err := p.expect(ClosePar); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(ClosePar); err != nil {
		return nil, err
	}
	if _, err := p.expect(Dot); err != nil {
		return nil, err
	}
	return &CNFClause{Name: name, Role: role, Literals: lits}, nil
}

func (p *Parser) expectLiteral(lit string) (Token, error) {
	tok := p.lx.Next()
	if tok.Literal != lit {
		return tok, parseErr(tok.Line, tok.Column, fmt.Sprintf("expected %q, got %q", lit, tok.Literal))
	}
	return tok, nil
}

func (p *Parser) parseLiteralDisjunction() ([]*Literal, error) {
	var lits []*Literal
	l, err := p.parseLiteral()
	if err != nil {
		return nil, err
	}
	lits = append(lits, l)
	for p.lx.TestTok(Or) {
		p.lx.Next()
		l, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		lits = append(lits, l)
	}
	return lits, nil
}

func (p *Parser) parseLiteral() (*Literal, error) {
	neg := false
	if p.lx.TestTok(Negation) {
		p.lx.Next()
		neg = true
	}
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if atom.Pred == "!=" {
		return &Literal{Negative: !neg, Atom: &Atom{Pred: "=", Args: atom.Args}}, nil
	}
	return &Literal{Negative: neg, Atom: atom}, nil
}

// parseAtom parses a conventional atom p(t1,...,tn), a propositional
// constant, or an (in)equation t1 = t2 / t1 != t2 — clauses.py's
// parseAtom, transliterated.
func (p *Parser) parseAtom() (*Atom, error) {
	if p.lx.TestTok(OpenPar) {
		p.lx.Next()
		inner, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(ClosePar); err != nil {
			return nil, err
		}
		return inner, nil
	}

	t, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if p.lx.TestTok(EqualSign) || p.lx.TestTok(NotEqual) {
		eq := p.lx.TestTok(EqualSign)
		p.lx.Next()
		rhs, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		pred := "="
		if !eq {
			pred = "!="
		}
		return &Atom{Pred: pred, Args: []*Term{t, rhs}}, nil
	}
	if t.IsVar {
		return nil, parseErr(0, 0, "a bare variable is not a valid atom")
	}
	return &Atom{Pred: t.Functor, Args: t.Args}, nil
}

// parseTerm parses a variable, constant, or f(t1,...,tn) compound term —
// terms.py's parseTerm.
func (p *Parser) parseTerm() (*Term, error) {
	tok := p.lx.Next()
	switch tok.Kind {
	case IdentUpper:
		return mkVar(tok.Literal), nil
	case IdentLower, Integer:
		name := tok.Literal
		if !p.lx.TestTok(OpenPar) {
			return mkCompound(name), nil
		}
		p.lx.Next()
		args, err := p.parseTermList()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(ClosePar); err != nil {
			return nil, err
		}
		return mkCompound(name, args...), nil
	default:
		return nil, parseErr(tok.Line, tok.Column, fmt.Sprintf("expected a term, got %q", tok.Literal))
	}
}

func (p *Parser) parseTermList() ([]*Term, error) {
	var out []*Term
	t, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	out = append(out, t)
	for p.lx.TestTok(Comma) {
		p.lx.Next()
		t, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// parseFOF parses `fof(name, role, <formula>).`
func (p *Parser) parseFOF() (*FOFFormula, error) {
	if _, err := p.expectLiteral("fof"); err != nil {
		return nil, err
	}
	if _, err := p.expect(OpenPar); err != nil {
		return nil, err
	}
	name := p.lx.Next().Literal
	if _, err := p.expect(Comma); err != nil {
		return nil, err
	}
	role := Role(p.lx.Next().Literal)
	if _, err := p.expect(Comma); err != nil {
		return nil, err
	}
	f, err := p.parseEquivFormula()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(ClosePar); err != nil {
		return nil, err
	}
	if _, err := p.expect(Dot); err != nil {
		return nil, err
	}
	return &FOFFormula{Name: name, Role: role, Formula: f}, nil
}

// The formula grammar is parsed by precedence climbing, loosest to
// tightest: <=>, =>, |, &, ~ and quantifiers, atoms.
func (p *Parser) parseEquivFormula() (*Formula, error) {
	left, err := p.parseImpliesFormula()
	if err != nil {
		return nil, err
	}
	if p.lx.TestTok(Equiv) {
		p.lx.Next()
		right, err := p.parseEquivFormula()
		if err != nil {
			return nil, err
		}
		return &Formula{Kind: ConnEquiv, Left: left, Right: right}, nil
	}
	return left, nil
}

func (p *Parser) parseImpliesFormula() (*Formula, error) {
	left, err := p.parseOrFormula()
	if err != nil {
		return nil, err
	}
	if p.lx.TestTok(Implies) {
		p.lx.Next()
		right, err := p.parseImpliesFormula()
		if err != nil {
			return nil, err
		}
		return &Formula{Kind: ConnImplies, Left: left, Right: right}, nil
	}
	return left, nil
}

func (p *Parser) parseOrFormula() (*Formula, error) {
	left, err := p.parseAndFormula()
	if err != nil {
		return nil, err
	}
	for p.lx.TestTok(Or) {
		p.lx.Next()
		right, err := p.parseAndFormula()
		if err != nil {
			return nil, err
		}
		left = &Formula{Kind: ConnOr, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAndFormula() (*Formula, error) {
	left, err := p.parseUnaryFormula()
	if err != nil {
		return nil, err
	}
	for p.lx.TestTok(And) {
		p.lx.Next()
		right, err := p.parseUnaryFormula()
		if err != nil {
			return nil, err
		}
		left = &Formula{Kind: ConnAnd, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseUnaryFormula() (*Formula, error) {
	switch {
	case p.lx.TestTok(Negation):
		p.lx.Next()
		sub, err := p.parseUnaryFormula()
		if err != nil {
			return nil, err
		}
		return &Formula{Kind: ConnNot, Sub: sub}, nil
	case p.lx.TestTok(Bang), p.lx.TestTok(Question):
		return p.parseQuantified()
	case p.lx.TestTok(OpenPar):
		p.lx.Next()
		f, err := p.parseEquivFormula()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(ClosePar); err != nil {
			return nil, err
		}
		return f, nil
	default:
		atom, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		if atom.Pred == "!=" {
			return &Formula{Kind: ConnNot, Sub: &Formula{Kind: ConnAtomic, Atom: &Atom{Pred: "=", Args: atom.Args}}}, nil
		}
		return &Formula{Kind: ConnAtomic, Atom: atom}, nil
	}
}

func (p *Parser) parseQuantified() (*Formula, error) {
	universal := p.lx.TestTok(Bang)
	p.lx.Next() // ! or ?
	if _, err := p.expect(OpenBracket); err != nil {
		return nil, err
	}
	var vars []string
	for {
		tok, err := p.expect(IdentUpper)
		if err != nil {
			return nil, err
		}
		vars = append(vars, tok.Literal)
		if !p.lx.TestTok(Comma) {
			break
		}
		p.lx.Next()
	}
	if _, err := p.expect(CloseBracket); err != nil {
		return nil, err
	}
	if _, err := p.expect(Colon); err != nil {
		return nil, err
	}
	sub, err := p.parseUnaryFormula()
	if err != nil {
		return nil, err
	}
	kind := ConnExists
	if universal {
		kind = ConnForall
	}
	return &Formula{Kind: kind, Sub: sub, BoundVars: vars}, nil
}
