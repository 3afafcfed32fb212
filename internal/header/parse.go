// Package header reads and writes Wwise_IDs.h, the C++ include file the Wwise
// SoundBank build generates next to the banks.
package header

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/morrilet/GMTK-2022/internal/catalog"
	"github.com/morrilet/GMTK-2022/wwise"
)

var ErrSyntax = errors.New("header syntax error")

// SyntaxError locates a problem in the header. Err is set when the problem
// is a table invariant violation reported by the catalog.
type SyntaxError struct {
	Line int
	Msg  string
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func (e *SyntaxError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrSyntax, e.Err}
	}
	return []error{ErrSyntax}
}

type token struct {
	text string
	line int
}

type parser struct {
	toks []token
	pos  int
	last int // line of the final token, used for EOF errors
}

// Parse reads a Wwise_IDs.h header into a table.
func Parse(r io.Reader) (*catalog.Table, error) {
	toks, err := scan(r)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	if len(toks) > 0 {
		p.last = toks[len(toks)-1].line
	}
	return p.file()
}

// scan splits the header into tokens, dropping comments and preprocessor lines.
func scan(r io.Reader) ([]token, error) {
	var toks []token
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if line == 1 {
			text = strings.TrimPrefix(text, "\ufeff")
		}
		if i := strings.Index(text, "//"); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		for len(text) > 0 {
			c, size := utf8.DecodeRuneInString(text)
			switch {
			case unicode.IsSpace(c):
				text = text[size:]
			case strings.ContainsRune("{}=;", c):
				toks = append(toks, token{text: text[:1], line: line})
				text = text[1:]
			case c == '_' || unicode.IsLetter(c) || unicode.IsDigit(c):
				end := strings.IndexFunc(text, func(r rune) bool {
					return r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r)
				})
				if end < 0 {
					end = len(text)
				}
				toks = append(toks, token{text: text[:end], line: line})
				text = text[end:]
			default:
				return nil, &SyntaxError{Line: line, Msg: fmt.Sprintf("unexpected character %q", c)}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("error reading header: %w", err)
	}
	return toks, nil
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) next() (token, error) {
	tok, ok := p.peek()
	if !ok {
		return token{}, &SyntaxError{Line: p.last, Msg: "unexpected end of file"}
	}
	p.pos++
	return tok, nil
}

func (p *parser) expect(want string) (token, error) {
	tok, err := p.next()
	if err != nil {
		return tok, err
	}
	if tok.text != want {
		return tok, &SyntaxError{Line: tok.line, Msg: fmt.Sprintf("expected %q, found %q", want, tok.text)}
	}
	return tok, nil
}

func (p *parser) ident() (token, error) {
	tok, err := p.next()
	if err != nil {
		return tok, err
	}
	if !isIdent(tok.text) {
		return tok, &SyntaxError{Line: tok.line, Msg: fmt.Sprintf("expected identifier, found %q", tok.text)}
	}
	return tok, nil
}

// file := "namespace" "AK" "{" { category } "}"
func (p *parser) file() (*catalog.Table, error) {
	if _, ok := p.peek(); !ok {
		return nil, &SyntaxError{Line: 1, Msg: "missing namespace AK"}
	}
	if _, err := p.expect("namespace"); err != nil {
		return nil, err
	}
	if _, err := p.expect("AK"); err != nil {
		return nil, err
	}
	if _, err := p.expect("{"); err != nil {
		return nil, err
	}

	t := catalog.New()
	seen := make(map[wwise.Category]bool)
	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		if tok.text == "}" {
			break
		}
		if tok.text != "namespace" {
			return nil, &SyntaxError{Line: tok.line, Msg: fmt.Sprintf("expected namespace or \"}\", found %q", tok.text)}
		}
		if err := p.category(t, seen); err != nil {
			return nil, err
		}
	}
	if tok, ok := p.peek(); ok {
		return nil, &SyntaxError{Line: tok.line, Msg: fmt.Sprintf("unexpected %q after namespace AK", tok.text)}
	}
	return t, nil
}

// category := NAME "{" { constant } "}"
func (p *parser) category(t *catalog.Table, seen map[wwise.Category]bool) error {
	name, err := p.ident()
	if err != nil {
		return err
	}
	c, ok := categoryOf(name.text)
	if !ok {
		return &SyntaxError{Line: name.line, Msg: fmt.Sprintf("unknown namespace %s", name.text)}
	}
	if seen[c] {
		return &SyntaxError{Line: name.line, Msg: fmt.Sprintf("namespace %s declared twice", name.text)}
	}
	seen[c] = true

	if _, err := p.expect("{"); err != nil {
		return err
	}
	for {
		tok, err := p.next()
		if err != nil {
			return err
		}
		if tok.text == "}" {
			return nil
		}
		if tok.text != "static" {
			return &SyntaxError{Line: tok.line, Msg: fmt.Sprintf("expected static or \"}\", found %q", tok.text)}
		}
		if err := p.constant(t, c); err != nil {
			return err
		}
	}
}

// constant := "static" "const" "AkUniqueID" NAME "=" NUMBER ";"
func (p *parser) constant(t *catalog.Table, c wwise.Category) error {
	if _, err := p.expect("const"); err != nil {
		return err
	}
	if _, err := p.expect("AkUniqueID"); err != nil {
		return err
	}
	name, err := p.ident()
	if err != nil {
		return err
	}
	if _, err := p.expect("="); err != nil {
		return err
	}
	num, err := p.next()
	if err != nil {
		return err
	}
	id, err := parseID(num.text)
	if err != nil {
		return &SyntaxError{Line: num.line, Msg: fmt.Sprintf("bad value for %s: %v", name.text, err)}
	}
	if _, err := p.expect(";"); err != nil {
		return err
	}
	if err := t.Add(c, name.text, id); err != nil {
		return &SyntaxError{Line: name.line, Msg: err.Error(), Err: err}
	}
	return nil
}

func parseID(s string) (wwise.UniqueID, error) {
	s = strings.TrimRight(s, "uU")
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return wwise.UniqueID(v), nil
}

func categoryOf(ns string) (wwise.Category, bool) {
	for _, c := range wwise.Categories() {
		if c.String() == ns {
			return c, true
		}
	}
	return 0, false
}

func isIdent(s string) bool {
	if s == "" || unicode.IsDigit(rune(s[0])) {
		return false
	}
	for _, r := range s {
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
