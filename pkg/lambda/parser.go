package lambda

import (
	"fmt"
	"unicode"
)

type TokenType int

const (
	TokenEOF TokenType = iota
	TokenIllegal
	TokenIdent
	TokenLambda
	TokenDot
	TokenEqual
	TokenSemicolon
	TokenLParen
	TokenRParen
	TokenLet
	TokenIn
)

func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "end of input"
	case TokenIllegal:
		return "illegal character"
	case TokenIdent:
		return "identifier"
	case TokenLambda:
		return "'λ'"
	case TokenDot:
		return "'.'"
	case TokenEqual:
		return "'='"
	case TokenSemicolon:
		return "';'"
	case TokenLParen:
		return "'('"
	case TokenRParen:
		return "')'"
	case TokenLet:
		return "'let'"
	case TokenIn:
		return "'in'"
	default:
		return "unknown token"
	}
}

type Token struct {
	Type    TokenType
	Literal string
	Pos     int
}

// SyntaxError reports malformed input. Pos is a rune offset.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %d: %s", e.Pos, e.Msg)
}

// Parser reads the textual form produced by Term.String:
//
//	Term   ::= 'let' Ident '=' Term ';' { Ident '=' Term ';' } 'in' Term
//	         | Unit { Unit }
//	Unit   ::= Ident | '(' Term ')' | Binder
//	Binder ::= ('λ' | '\') Ident '.' Unit
//
// Juxtaposition is left-associative. The body of a binder is a single unit,
// so λx.(x y) abstracts over an application while (λx.x y) applies λx.x to
// y, exactly as String renders them.
type Parser struct {
	input   []rune
	pos     int
	current Token
}

func NewParser(input string) *Parser {
	p := &Parser{input: []rune(input)}
	p.next()
	return p
}

func (p *Parser) next() {
	p.skipWhitespace()
	if p.pos >= len(p.input) {
		p.current = Token{Type: TokenEOF, Pos: p.pos}
		return
	}

	start := p.pos
	ch := p.input[p.pos]
	switch {
	case isIdentRune(ch):
		for p.pos < len(p.input) && isIdentRune(p.input[p.pos]) {
			p.pos++
		}
		lit := string(p.input[start:p.pos])
		switch lit {
		case "let":
			p.current = Token{Type: TokenLet, Literal: lit, Pos: start}
		case "in":
			p.current = Token{Type: TokenIn, Literal: lit, Pos: start}
		default:
			p.current = Token{Type: TokenIdent, Literal: lit, Pos: start}
		}
		return
	case ch == 'λ' || ch == '\\':
		p.current = Token{Type: TokenLambda, Literal: string(ch), Pos: start}
	case ch == '.':
		p.current = Token{Type: TokenDot, Literal: ".", Pos: start}
	case ch == '=':
		p.current = Token{Type: TokenEqual, Literal: "=", Pos: start}
	case ch == ';':
		p.current = Token{Type: TokenSemicolon, Literal: ";", Pos: start}
	case ch == '(':
		p.current = Token{Type: TokenLParen, Literal: "(", Pos: start}
	case ch == ')':
		p.current = Token{Type: TokenRParen, Literal: ")", Pos: start}
	default:
		p.current = Token{Type: TokenIllegal, Literal: string(ch), Pos: start}
	}
	p.pos++
}

func (p *Parser) skipWhitespace() {
	for p.pos < len(p.input) && unicode.IsSpace(p.input[p.pos]) {
		p.pos++
	}
}

func isIdentRune(ch rune) bool {
	return ch == '_' || ch == '\'' || (ch != 'λ' && (unicode.IsLetter(ch) || unicode.IsDigit(ch)))
}

func (p *Parser) errorf(format string, args ...any) error {
	return &SyntaxError{Pos: p.current.Pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *Parser) unexpected() error {
	if p.current.Type == TokenIllegal {
		return p.errorf("unexpected character %q", p.current.Literal)
	}
	return p.errorf("unexpected %v", p.current.Type)
}

func (p *Parser) expect(tt TokenType) (Token, error) {
	tok := p.current
	if tok.Type != tt {
		return tok, p.errorf("expected %v, found %v", tt, p.describe())
	}
	p.next()
	return tok, nil
}

func (p *Parser) describe() string {
	if p.current.Type == TokenIllegal {
		return fmt.Sprintf("%q", p.current.Literal)
	}
	if p.current.Type == TokenIdent {
		return fmt.Sprintf("identifier %q", p.current.Literal)
	}
	return p.current.Type.String()
}

// Parse reads one term and requires the input to end after it.
func (p *Parser) Parse() (Term, error) {
	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if p.current.Type != TokenEOF {
		return nil, p.unexpected()
	}
	return term, nil
}

func (p *Parser) parseTerm() (Term, error) {
	if p.current.Type == TokenLet {
		return p.parseLet()
	}

	left, err := p.parseUnit()
	if err != nil {
		return nil, err
	}
	for startsUnit(p.current.Type) {
		right, err := p.parseUnit()
		if err != nil {
			return nil, err
		}
		left = App{Left: left, Right: right}
	}
	return left, nil
}

func startsUnit(tt TokenType) bool {
	return tt == TokenIdent || tt == TokenLParen || tt == TokenLambda
}

func (p *Parser) parseUnit() (Term, error) {
	switch p.current.Type {
	case TokenIdent:
		name := p.current.Literal
		p.next()
		return Var{Name: name}, nil
	case TokenLParen:
		p.next()
		term, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen); err != nil {
			return nil, err
		}
		return term, nil
	case TokenLambda:
		p.next()
		arg, err := p.expect(TokenIdent)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenDot); err != nil {
			return nil, err
		}
		body, err := p.parseUnit()
		if err != nil {
			return nil, err
		}
		return Abs{Name: arg.Literal, Body: body}, nil
	default:
		return nil, p.unexpected()
	}
}

func (p *Parser) parseLet() (Term, error) {
	p.next() // consume 'let'

	type binding struct {
		name string
		val  Term
	}
	var bindings []binding

	for {
		name, err := p.expect(TokenIdent)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenEqual); err != nil {
			return nil, err
		}
		val, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, binding{name.Literal, val})

		if _, err := p.expect(TokenSemicolon); err != nil {
			return nil, err
		}
		if p.current.Type == TokenIn {
			p.next()
			break
		}
	}

	body, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	// let x=M; y=N; in B -> (λx.((λy.B) N)) M
	term := body
	for i := len(bindings) - 1; i >= 0; i-- {
		b := bindings[i]
		term = App{
			Left:  Abs{Name: b.name, Body: term},
			Right: b.val,
		}
	}
	return term, nil
}

// Parse parses a lambda term from a string.
func Parse(input string) (Term, error) {
	p := NewParser(input)
	return p.Parse()
}
