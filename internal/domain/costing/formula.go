// Package costing contém os serviços de domínio puros do motor de custos:
// avaliador restrito de fórmulas de frete, composição de totais e verificação
// de variação de custo unitário.
package costing

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// FormulaVars são as variáveis disponíveis numa fórmula de frete.
// Os destinos cadastram fórmulas referenciando peso/weight e valor/value.
type FormulaVars struct {
	Weight decimal.Decimal // peso total estimado da remessa (kg)
	Value  decimal.Decimal // valor total estimado da remessa
}

// EvaluateFormula avalia uma expressão aritmética restrita: literais numéricos,
// operadores + - * /, parênteses e as variáveis peso/weight/valor/value.
// Substitui o eval dinâmico do sistema legado; entrada malformada retorna erro,
// nunca executa código.
func EvaluateFormula(formula string, vars FormulaVars) (decimal.Decimal, error) {
	tokens, err := tokenize(formula)
	if err != nil {
		return decimal.Zero, err
	}
	if len(tokens) == 0 {
		return decimal.Zero, fmt.Errorf("fórmula vazia")
	}
	p := &parser{tokens: tokens, vars: vars}
	result, err := p.parseExpr()
	if err != nil {
		return decimal.Zero, err
	}
	if p.pos != len(p.tokens) {
		return decimal.Zero, fmt.Errorf("token inesperado %q na posição %d", p.tokens[p.pos].text, p.pos)
	}
	return result, nil
}

// ── Tokenizer ─────────────────────────────────────────────────────────────────

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokIdent
	tokOp // + - * /
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
}

func tokenize(input string) ([]token, error) {
	var tokens []token
	runes := []rune(input)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '(':
			tokens = append(tokens, token{tokLParen, "("})
			i++
		case r == ')':
			tokens = append(tokens, token{tokRParen, ")"})
			i++
		case r == '+' || r == '-' || r == '*' || r == '/':
			tokens = append(tokens, token{tokOp, string(r)})
			i++
		case unicode.IsDigit(r) || r == '.':
			start := i
			dots := 0
			for i < len(runes) && (unicode.IsDigit(runes[i]) || runes[i] == '.') {
				if runes[i] == '.' {
					dots++
				}
				i++
			}
			text := string(runes[start:i])
			if dots > 1 || text == "." {
				return nil, fmt.Errorf("número malformado %q", text)
			}
			tokens = append(tokens, token{tokNumber, text})
		case unicode.IsLetter(r):
			start := i
			for i < len(runes) && unicode.IsLetter(runes[i]) {
				i++
			}
			tokens = append(tokens, token{tokIdent, string(runes[start:i])})
		default:
			return nil, fmt.Errorf("caractere inválido %q na fórmula", string(r))
		}
	}
	return tokens, nil
}

// ── Parser (descida recursiva) ────────────────────────────────────────────────
//
// expr  := term (('+'|'-') term)*
// term  := unary (('*'|'/') unary)*
// unary := '-' unary | primary
// primary := NUMBER | IDENT | '(' expr ')'

type parser struct {
	tokens []token
	pos    int
	vars   FormulaVars
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.tokens) {
		return token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) parseExpr() (decimal.Decimal, error) {
	left, err := p.parseTerm()
	if err != nil {
		return decimal.Zero, err
	}
	for {
		tok, ok := p.peek()
		if !ok || tok.kind != tokOp || (tok.text != "+" && tok.text != "-") {
			return left, nil
		}
		p.pos++
		right, err := p.parseTerm()
		if err != nil {
			return decimal.Zero, err
		}
		if tok.text == "+" {
			left = left.Add(right)
		} else {
			left = left.Sub(right)
		}
	}
}

func (p *parser) parseTerm() (decimal.Decimal, error) {
	left, err := p.parseUnary()
	if err != nil {
		return decimal.Zero, err
	}
	for {
		tok, ok := p.peek()
		if !ok || tok.kind != tokOp || (tok.text != "*" && tok.text != "/") {
			return left, nil
		}
		p.pos++
		right, err := p.parseUnary()
		if err != nil {
			return decimal.Zero, err
		}
		if tok.text == "*" {
			left = left.Mul(right)
		} else {
			if right.IsZero() {
				return decimal.Zero, fmt.Errorf("divisão por zero na fórmula")
			}
			left = left.Div(right)
		}
	}
}

func (p *parser) parseUnary() (decimal.Decimal, error) {
	tok, ok := p.peek()
	if ok && tok.kind == tokOp && tok.text == "-" {
		p.pos++
		v, err := p.parseUnary()
		if err != nil {
			return decimal.Zero, err
		}
		return v.Neg(), nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (decimal.Decimal, error) {
	tok, ok := p.peek()
	if !ok {
		return decimal.Zero, fmt.Errorf("fim inesperado da fórmula")
	}
	switch tok.kind {
	case tokNumber:
		p.pos++
		d, err := decimal.NewFromString(tok.text)
		if err != nil {
			return decimal.Zero, fmt.Errorf("número inválido %q", tok.text)
		}
		return d, nil
	case tokIdent:
		p.pos++
		return p.resolveVar(tok.text)
	case tokLParen:
		p.pos++
		v, err := p.parseExpr()
		if err != nil {
			return decimal.Zero, err
		}
		closing, ok := p.peek()
		if !ok || closing.kind != tokRParen {
			return decimal.Zero, fmt.Errorf("parêntese não fechado")
		}
		p.pos++
		return v, nil
	default:
		return decimal.Zero, fmt.Errorf("token inesperado %q", tok.text)
	}
}

// resolveVar aceita os nomes em português e inglês usados nas fórmulas legadas.
func (p *parser) resolveVar(name string) (decimal.Decimal, error) {
	switch strings.ToLower(name) {
	case "peso", "weight":
		return p.vars.Weight, nil
	case "valor", "value":
		return p.vars.Value, nil
	default:
		return decimal.Zero, fmt.Errorf("variável desconhecida %q (permitidas: peso, valor)", name)
	}
}
