/*
Package selectors compiles and matches CSS selectors against HTML elements.

Selector matching itself is done by cascadia. This package wraps compiled
selectors with the information needed for matching many selectors against
every element of a document efficiently:

■ Ancestor hashes: hashes of the ids, classes and element names a selector
requires on ancestors of the subject element. Together with a bloom filter
of the ancestors of the element under test, most selectors with ancestor
requirements can be rejected without walking up the tree.

■ Dynamic pseudo-classes (:hover, :focus, :active) on the subject element,
which are checked against the element state kept by the document.

■ Selector flags, which tell an incremental restyle which elements have to
be re-matched when siblings or children change.

Matching is a pure function: flags are returned to the caller, which is
responsible for recording them with the document.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package selectors

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'styling.selectors'.
func tracer() tracing.Trace {
	return tracing.Select("styling.selectors")
}

// ErrUnsupportedSelector is returned when compiling selectors which are valid
// CSS, but cannot be matched against elements by this package, e.g.
// selectors with pseudo-elements.
var ErrUnsupportedSelector = errors.New("unsupported selector")
