package cascade

import (
	"fmt"

	"github.com/npillmayer/styling/dom/style"
	"github.com/npillmayer/styling/dom/style/css"
	"github.com/npillmayer/styling/dom/style/cssom"
	"github.com/npillmayer/styling/dom/style/selectors"
)

// Level is the cascade level of a declaration, i.e. origin and importance.
// Higher levels win.
type Level uint8

// Cascade levels, lowest first
const (
	UANormal Level = iota
	AuthorNormal
	UAImportant
	AuthorImportant
)

var levelNames = [...]string{"ua-normal", "author-normal", "ua-important", "author-important"}

func (lvl Level) String() string {
	if int(lvl) < len(levelNames) {
		return levelNames[lvl]
	}
	return fmt.Sprintf("level(%d)", lvl)
}

// LevelOf returns the cascade level for declarations of a given origin and
// importance.
func LevelOf(origin cssom.Origin, important bool) Level {
	switch {
	case origin == cssom.Author && important:
		return AuthorImportant
	case important:
		return UAImportant
	case origin == cssom.Author:
		return AuthorNormal
	}
	return UANormal
}

// entry is the current winning declaration for a longhand.
type entry struct {
	level       Level
	specificity selectors.Specificity
	sourceOrder uint32
	declIndex   int
	value       css.Value
}

// outranks is true if e strictly outranks other.
func (e *entry) outranks(other *entry) bool {
	if e.level != other.level {
		return e.level > other.level
	}
	if e.specificity != other.specificity {
		return e.specificity > other.specificity
	}
	if e.sourceOrder != other.sourceOrder {
		return e.sourceOrder > other.sourceOrder
	}
	return e.declIndex > other.declIndex
}

// PropertyCascade holds the winning declaration for every longhand of
// one element.
type PropertyCascade struct {
	entries [style.NumLonghands]*entry
}

// NewPropertyCascade creates an empty property cascade.
func NewPropertyCascade() *PropertyCascade {
	return &PropertyCascade{}
}

// Add enters all the declarations of a block.
func (pc *PropertyCascade) Add(adb cssom.ApplicableDeclarationBlock) {
	for i, d := range adb.Block.Declarations() {
		if !d.Longhand.Valid() {
			continue
		}
		e := &entry{
			level:       LevelOf(adb.Origin, d.Important),
			specificity: adb.Specificity,
			sourceOrder: adb.SourceOrder,
			declIndex:   i,
			value:       d.Value,
		}
		if cur := pc.entries[d.Longhand]; cur == nil || e.outranks(cur) {
			pc.entries[d.Longhand] = e
		}
	}
}

// Winner returns the winning specified value for a longhand, if any.
func (pc *PropertyCascade) Winner(l style.Longhand) (css.Value, bool) {
	if !l.Valid() || pc.entries[l] == nil {
		return nil, false
	}
	return pc.entries[l].value, true
}

// Level returns the cascade level of the winning declaration for l.
func (pc *PropertyCascade) Level(l style.Longhand) (Level, bool) {
	if !l.Valid() || pc.entries[l] == nil {
		return 0, false
	}
	return pc.entries[l].level, true
}
