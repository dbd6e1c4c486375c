package cssom

import (
	"fmt"
	"strings"

	"github.com/npillmayer/styling/dom/style"
	"github.com/npillmayer/styling/dom/style/css"
)

// Declaration is a property declaration for a longhand.
// Shorthands are expanded into their longhands when blocks are built.
type Declaration struct {
	Longhand  style.Longhand
	Value     css.Value // specified value, may be a CSS-wide keyword
	Important bool
}

func (d Declaration) String() string {
	if d.Important {
		return fmt.Sprintf("%s: %s !important", d.Longhand, d.Value)
	}
	return fmt.Sprintf("%s: %s", d.Longhand, d.Value)
}

// DeclarationBlock is a list of declarations, in source order. A block
// contains only valid declarations; invalid ones are dropped when the
// block is built.
type DeclarationBlock struct {
	decls []Declaration
}

// NewDeclarationBlock creates an empty declaration block.
func NewDeclarationBlock() *DeclarationBlock {
	return &DeclarationBlock{}
}

// Append parses and appends a declaration. Shorthands are expanded. If the
// declaration is invalid, it is dropped and an error is returned.
func (b *DeclarationBlock) Append(name string, value style.Property, important bool) error {
	decls, err := css.ParseDeclaration(name, value)
	if err != nil {
		tracer().Debugf("dropping declaration %s: %s: %v", name, value, err)
		return err
	}
	for _, d := range decls {
		b.decls = append(b.decls, Declaration{
			Longhand:  d.Longhand,
			Value:     d.Value,
			Important: important,
		})
	}
	return nil
}

// AppendText is like Append, but recognizes a trailing "!important" in the
// value text.
func (b *DeclarationBlock) AppendText(name string, value string) error {
	important := false
	value = strings.TrimSpace(value)
	if i := strings.LastIndex(value, "!"); i >= 0 {
		if strings.EqualFold(strings.TrimSpace(value[i+1:]), "important") {
			important = true
			value = strings.TrimSpace(value[:i])
		}
	}
	return b.Append(name, style.Property(value), important)
}

// Len returns the number of (longhand) declarations.
func (b *DeclarationBlock) Len() int {
	if b == nil {
		return 0
	}
	return len(b.decls)
}

// Empty is true for blocks without declarations.
func (b *DeclarationBlock) Empty() bool {
	return b.Len() == 0
}

// Declarations returns the declarations in source order. Clients must not
// modify the slice.
func (b *DeclarationBlock) Declarations() []Declaration {
	if b == nil {
		return nil
	}
	return b.decls
}

// Get returns the last declaration for a longhand, if any.
func (b *DeclarationBlock) Get(l style.Longhand) (Declaration, bool) {
	if b == nil {
		return Declaration{}, false
	}
	for i := len(b.decls) - 1; i >= 0; i-- {
		if b.decls[i].Longhand == l {
			return b.decls[i], true
		}
	}
	return Declaration{}, false
}

func (b *DeclarationBlock) String() string {
	if b.Empty() {
		return "{ }"
	}
	parts := make([]string, len(b.decls))
	for i, d := range b.decls {
		parts[i] = d.String()
	}
	return "{ " + strings.Join(parts, "; ") + " }"
}
