package symbolic

import (
	"fmt"
	"math/big"
	"strings"
	"unicode"
)

// Parse converts tutoring notation into an expression tree. The notation
// covers numbers (integers, decimals, fractions), single-letter variables,
// the operators + - * / ^, parentheses, the functions sin, cos, tan, exp,
// ln, log, sqrt, and implicit multiplication (2x, 3sin(x), (x+1)(x-1)).
func Parse(input string) (Expr, error) {
	toks, err := lex(input)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.done() {
		return nil, fmt.Errorf("unexpected %q at position %d", p.peek().text, p.peek().pos)
	}
	return e.Simplify(), nil
}

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokVar
	tokFunc
	tokOp
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

// functions the lexer recognises; log is normalised to the natural logarithm
// and sqrt becomes a half power, so downstream code only sees a small set.
var knownFuncs = map[string]bool{
	"sin": true, "cos": true, "tan": true,
	"exp": true, "ln": true, "log": true, "sqrt": true,
}

func lex(input string) ([]token, error) {
	var toks []token
	runes := []rune(input)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case unicode.IsDigit(r) || r == '.':
			start := i
			for i < len(runes) && (unicode.IsDigit(runes[i]) || runes[i] == '.') {
				i++
			}
			toks = append(toks, token{tokNumber, string(runes[start:i]), start})
		case unicode.IsLetter(r):
			start := i
			for i < len(runes) && unicode.IsLetter(runes[i]) {
				i++
			}
			run := string(runes[start:i])
			lower := strings.ToLower(run)
			next := rune(0)
			if i < len(runes) {
				next = runes[i]
			}
			switch {
			case knownFuncs[lower] && next == '(':
				toks = append(toks, token{tokFunc, lower, start})
			case lower == "pi":
				toks = append(toks, token{tokNumber, "pi", start})
			default:
				for j, c := range run {
					toks = append(toks, token{tokVar, string(c), start + j})
				}
			}
		case strings.ContainsRune("+-*/^", r):
			toks = append(toks, token{tokOp, string(r), i})
			i++
		case r == '(':
			toks = append(toks, token{tokLParen, "(", i})
			i++
		case r == ')':
			toks = append(toks, token{tokRParen, ")", i})
			i++
		default:
			return nil, fmt.Errorf("unexpected character %q at position %d", string(r), i)
		}
	}
	if len(toks) == 0 {
		return nil, fmt.Errorf("empty expression")
	}
	return toks, nil
}

type parser struct {
	toks []token
	i    int
}

func (p *parser) done() bool { return p.i >= len(p.toks) }

func (p *parser) peek() token {
	if p.done() {
		return token{tokOp, "", len(p.toks)}
	}
	return p.toks[p.i]
}

func (p *parser) next() token {
	t := p.peek()
	p.i++
	return t
}

func (p *parser) accept(kind tokenKind, text string) bool {
	if !p.done() && p.toks[p.i].kind == kind && p.toks[p.i].text == text {
		p.i++
		return true
	}
	return false
}

// expr := term (('+' | '-') term)*
func (p *parser) parseExpr() (Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	terms := []Expr{left}
	for {
		switch {
		case p.accept(tokOp, "+"):
			t, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			terms = append(terms, t)
		case p.accept(tokOp, "-"):
			t, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			terms = append(terms, Neg(t))
		default:
			if len(terms) == 1 {
				return terms[0], nil
			}
			return &Sum{terms: terms}, nil
		}
	}
}

// term := unary (('*' | '/') unary | implicit-multiplication)*
func (p *parser) parseTerm() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	factors := []Expr{left}
	for {
		switch {
		case p.accept(tokOp, "*"):
			f, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			factors = append(factors, f)
		case p.accept(tokOp, "/"):
			f, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			factors = append(factors, Pow(f, Int(-1)))
		case !p.done() && (p.peek().kind == tokNumber || p.peek().kind == tokVar ||
			p.peek().kind == tokFunc || p.peek().kind == tokLParen):
			// Implicit multiplication: 2x, 3sin(x), (x+1)(x-1).
			f, err := p.parsePower()
			if err != nil {
				return nil, err
			}
			factors = append(factors, f)
		default:
			if len(factors) == 1 {
				return factors[0], nil
			}
			return &Product{factors: factors}, nil
		}
	}
}

// unary := '-' unary | power
func (p *parser) parseUnary() (Expr, error) {
	if p.accept(tokOp, "-") {
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Neg(inner), nil
	}
	return p.parsePower()
}

// power := atom ('^' unary)?   (right associative)
func (p *parser) parsePower() (Expr, error) {
	base, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if p.accept(tokOp, "^") {
		exp, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		// e^u is the exponential function, not a power of the variable e.
		if v, ok := base.(*Var); ok && v.name == "e" {
			return ExpE(exp), nil
		}
		return &Power{base: base, exp: exp}, nil
	}
	return base, nil
}

// atom := number | var | func '(' expr ')' | '(' expr ')'
func (p *parser) parseAtom() (Expr, error) {
	if p.done() {
		return nil, fmt.Errorf("unexpected end of expression")
	}
	t := p.next()
	switch t.kind {
	case tokNumber:
		if t.text == "pi" {
			return V("pi"), nil
		}
		r, ok := new(big.Rat).SetString(t.text)
		if !ok {
			return nil, fmt.Errorf("invalid number %q at position %d", t.text, t.pos)
		}
		return &Num{val: r}, nil
	case tokVar:
		return V(t.text), nil
	case tokFunc:
		if !p.accept(tokLParen, "(") {
			return nil, fmt.Errorf("expected ( after %s at position %d", t.text, t.pos)
		}
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if !p.accept(tokRParen, ")") {
			return nil, fmt.Errorf("missing ) for %s at position %d", t.text, t.pos)
		}
		switch t.text {
		case "sqrt":
			return Pow(arg, Rat(1, 2)), nil
		case "log":
			return &Call{fn: "ln", arg: arg}, nil
		}
		return &Call{fn: t.text, arg: arg}, nil
	case tokLParen:
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if !p.accept(tokRParen, ")") {
			return nil, fmt.Errorf("missing closing parenthesis at position %d", t.pos)
		}
		return inner, nil
	}
	return nil, fmt.Errorf("unexpected %q at position %d", t.text, t.pos)
}
