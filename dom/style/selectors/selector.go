package selectors

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Selector is a single compiled selector (not a selector list).
type Selector struct {
	text        string       // selector as written in the stylesheet
	sel         cascadia.Sel // selector without dynamic pseudo-classes
	states      ElementState // dynamic pseudo-classes required on the subject
	specificity Specificity  // specificity including dynamic pseudo-classes
	flags       ElementSelectorFlags
	hashes      AncestorHashes // hashes for the default (no-quirks) mode
	compounds   []compound
}

// Compile compiles a single selector. Selectors containing pseudo-elements
// or dynamic pseudo-classes anywhere else than on the subject are not
// supported and will result in an error wrapping ErrUnsupportedSelector.
func Compile(text string) (*Selector, error) {
	text = strings.TrimSpace(text)
	compounds, err := scan(text)
	if err != nil {
		return nil, err
	}
	s := &Selector{text: text, compounds: compounds}
	dyn := 0
	for i, c := range compounds {
		if c.states != 0 && i != len(compounds)-1 {
			return nil, fmt.Errorf("%w: dynamic pseudo-class not on subject: %q", ErrUnsupportedSelector, text)
		}
		for _, pc := range c.pseudoClasses {
			s.flags |= flagsForPseudoClass(pc)
		}
		if c.combinator == '+' || c.combinator == '~' {
			s.flags |= HasSlowSelectorLaterSiblings
		}
		dyn += c.dynamicCount
	}
	s.states = compounds[len(compounds)-1].states
	stripped := assemble(compounds)
	if s.sel, err = cascadia.Parse(stripped); err != nil {
		return nil, fmt.Errorf("cannot compile selector %q: %w", text, err)
	}
	if s.sel.PseudoElement() != "" {
		return nil, fmt.Errorf("%w: pseudo-element in %q", ErrUnsupportedSelector, text)
	}
	sp := s.sel.Specificity()
	s.specificity = NewSpecificity(int(sp[0]), int(sp[1])+dyn, int(sp[2]))
	s.hashes = computeAncestorHashes(compounds, NoQuirks)
	tracer().Debugf("compiled selector %q as %q, specificity %s", text, stripped, s.specificity)
	return s, nil
}

// String returns the selector as written.
func (s *Selector) String() string {
	return s.text
}

// Specificity returns the specificity of the selector.
func (s *Selector) Specificity() Specificity {
	return s.specificity
}

// Flags returns the element selector flags matching this selector will
// report.
func (s *Selector) Flags() ElementSelectorFlags {
	return s.flags
}

// States returns the dynamic element states required on the subject.
func (s *Selector) States() ElementState {
	return s.states
}

// AncestorHashes computes the ancestor hashes of the selector for a given
// quirks mode.
func (s *Selector) AncestorHashes(quirks QuirksMode) AncestorHashes {
	if quirks == NoQuirks || quirks == LimitedQuirks {
		return s.hashes
	}
	return computeAncestorHashes(s.compounds, quirks)
}

// SplitSelectorList splits a comma separated selector list into single
// selectors.
func SplitSelectorList(list string) []string {
	var sels []string
	var b strings.Builder
	lexer := css.NewLexer(parse.NewInputString(list))
	depth := 0
	for {
		tt, data := lexer.Next()
		switch tt {
		case css.ErrorToken:
			if s := strings.TrimSpace(b.String()); s != "" {
				sels = append(sels, s)
			}
			return sels
		case css.FunctionToken, css.LeftParenthesisToken, css.LeftBracketToken:
			depth++
		case css.RightParenthesisToken, css.RightBracketToken:
			depth--
		case css.CommaToken:
			if depth == 0 {
				if s := strings.TrimSpace(b.String()); s != "" {
					sels = append(sels, s)
				}
				b.Reset()
				continue
			}
		}
		b.Write(data)
	}
}

// --- Scanning --------------------------------------------------------------

// compound is a compound selector, i.e. a sequence of simple selectors
// without combinators.
type compound struct {
	combinator    byte     // combinator to the left: 0 (first), ' ', '>', '+' or '~'
	parts         []string // raw text of simple selectors, without dynamic pseudo-classes
	tag           string   // element name, if any
	ids           []string
	classes       []string
	pseudoClasses []string     // names of non-dynamic pseudo-classes
	states        ElementState // dynamic pseudo-classes
	dynamicCount  int
}

func (c *compound) empty() bool {
	return len(c.parts) == 0 && c.states == 0
}

// scan splits a selector into compound selectors, using the CSS lexer.
func scan(text string) ([]compound, error) {
	lexer := css.NewLexer(parse.NewInputString(text))
	var compounds []compound
	cur := compound{}
	var pendingComb byte
	next := func() (css.TokenType, string) {
		tt, data := lexer.Next()
		return tt, string(data)
	}
	closeCompound := func() {
		if !cur.empty() {
			compounds = append(compounds, cur)
			cur = compound{}
		}
	}
	startSimple := func() error {
		if pendingComb != 0 {
			if len(compounds) == 0 && cur.empty() {
				if pendingComb != ' ' {
					return fmt.Errorf("selector %q starts with a combinator", text)
				}
			} else {
				closeCompound()
				cur.combinator = pendingComb
			}
			pendingComb = 0
		}
		return nil
	}
	// raw consumes tokens up to the closing parenthesis or bracket
	raw := func(open string) (string, error) {
		var b strings.Builder
		b.WriteString(open)
		depth := 1
		for depth > 0 {
			tt, data := next()
			switch tt {
			case css.ErrorToken:
				return "", fmt.Errorf("unbalanced parentheses in selector %q", text)
			case css.FunctionToken, css.LeftParenthesisToken, css.LeftBracketToken:
				depth++
			case css.RightParenthesisToken, css.RightBracketToken:
				depth--
			}
			b.WriteString(data)
		}
		return b.String(), nil
	}
	for {
		tt, data := next()
		switch tt {
		case css.ErrorToken:
			if pendingComb != 0 && pendingComb != ' ' {
				return nil, fmt.Errorf("selector %q ends with a combinator", text)
			}
			closeCompound()
			if len(compounds) == 0 {
				return nil, fmt.Errorf("empty selector")
			}
			return compounds, nil
		case css.WhitespaceToken, css.CommentToken:
			if !cur.empty() && pendingComb == 0 {
				pendingComb = ' '
			}
		case css.DelimToken:
			switch data {
			case ">", "+", "~":
				if cur.empty() && len(compounds) == 0 {
					return nil, fmt.Errorf("selector %q starts with a combinator", text)
				}
				pendingComb = data[0]
			case "*":
				if err := startSimple(); err != nil {
					return nil, err
				}
				cur.parts = append(cur.parts, "*")
			case ".":
				if err := startSimple(); err != nil {
					return nil, err
				}
				tt2, name := next()
				if tt2 != css.IdentToken {
					return nil, fmt.Errorf("expected class name in selector %q", text)
				}
				cur.classes = append(cur.classes, name)
				cur.parts = append(cur.parts, "."+name)
			default:
				return nil, fmt.Errorf("unexpected %q in selector %q", data, text)
			}
		case css.IdentToken:
			if err := startSimple(); err != nil {
				return nil, err
			}
			cur.tag = strings.ToLower(data)
			cur.parts = append(cur.parts, data)
		case css.HashToken:
			if err := startSimple(); err != nil {
				return nil, err
			}
			cur.ids = append(cur.ids, strings.TrimPrefix(data, "#"))
			cur.parts = append(cur.parts, data)
		case css.LeftBracketToken:
			if err := startSimple(); err != nil {
				return nil, err
			}
			attr, err := raw(data)
			if err != nil {
				return nil, err
			}
			cur.parts = append(cur.parts, attr)
		case css.ColonToken:
			if err := startSimple(); err != nil {
				return nil, err
			}
			tt2, name := next()
			switch tt2 {
			case css.ColonToken: // pseudo-element
				_, pe := next()
				cur.parts = append(cur.parts, "::"+pe)
			case css.IdentToken:
				lname := strings.ToLower(name)
				if st, ok := stateNames[lname]; ok {
					cur.states |= st
					cur.dynamicCount++
					continue
				}
				cur.pseudoClasses = append(cur.pseudoClasses, lname)
				cur.parts = append(cur.parts, ":"+name)
			case css.FunctionToken:
				args, err := raw(name)
				if err != nil {
					return nil, err
				}
				cur.pseudoClasses = append(cur.pseudoClasses, strings.ToLower(strings.TrimSuffix(name, "(")))
				cur.parts = append(cur.parts, ":"+args)
			default:
				return nil, fmt.Errorf("expected pseudo-class in selector %q", text)
			}
		default:
			return nil, fmt.Errorf("unexpected %q in selector %q", data, text)
		}
	}
}

// assemble re-creates selector text from compounds, leaving out dynamic
// pseudo-classes.
func assemble(compounds []compound) string {
	var b strings.Builder
	for _, c := range compounds {
		switch c.combinator {
		case 0:
		case ' ':
			b.WriteString(" ")
		default:
			b.WriteString(" ")
			b.WriteByte(c.combinator)
			b.WriteString(" ")
		}
		if len(c.parts) == 0 {
			b.WriteString("*")
			continue
		}
		for _, p := range c.parts {
			b.WriteString(p)
		}
	}
	return b.String()
}
