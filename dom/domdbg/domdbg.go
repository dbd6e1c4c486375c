/*
Package domdbg implements helpers to debug a styled DOM tree.

ToGraphViz draws the DOM as a GraphViz digraph. Elements are labeled with
their tag, id and classes; groups of computed properties hang off each
element. Optionally the declaration blocks collected for an element during
matching are drawn as well, in cascade order, which helps when a property
does not end up with the expected value.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/styling/dom"
	"github.com/npillmayer/styling/dom/style"
	"golang.org/x/net/html"
)

// Options control what ToGraphViz will draw.
type Options struct {
	Groups       []string // property groups to draw; nil selects the default groups
	MatchedRules bool     // draw the applicable declaration blocks of elements
}

var defaultGroups = []string{
	style.PGMargins,
	style.PGPadding,
	style.PGBorder,
	style.PGDisplay,
}

type graphParams struct {
	Fontname   string
	Options    Options
	nodeTmpl   *template.Template
	edgeTmpl   *template.Template
	groupTmpl  *template.Template
	rulesTmpl  *template.Template
	attachTmpl *template.Template
}

// propertyGroup is a group of computed properties of an element.
type propertyGroup struct {
	ID         string
	Name       string
	Properties []style.KeyValue
}

// matchedRules lists the declaration blocks which apply to an element.
type matchedRules struct {
	ID     string
	Blocks []string
}

// ToGraphViz outputs a diagram for a styled DOM tree in GraphViz (DOT)
// format. Clients have to provide the root node of the DOM, a Writer, and
// an optional list of property groups. The diagram will include all
// computed properties belonging to one of the groups.
//
// If the client does not provide a list of groups, the following
// default will be used:
//
//     - Margins
//     - Padding
//     - Border
//     - Display
//
func ToGraphViz(doc *dom.W3CNode, w io.Writer, groups []string) {
	ToGraphVizWithOptions(doc, w, Options{Groups: groups})
}

// ToGraphVizWithOptions is like ToGraphViz, with more control over the
// contents of the diagram.
func ToGraphVizWithOptions(doc *dom.W3CNode, w io.Writer, opts Options) {
	if opts.Groups == nil {
		opts.Groups = defaultGroups
	}
	gp := &graphParams{Fontname: "Helvetica", Options: opts}
	gp.nodeTmpl = template.Must(template.New("domnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(domNodeTmpl))
	gp.edgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gp.groupTmpl = template.Must(template.New("group").Parse(propertyGroupTmpl))
	gp.rulesTmpl = template.Must(template.New("rules").Parse(matchedRulesTmpl))
	gp.attachTmpl = template.Must(template.New("attach").Parse(attachEdgeTmpl))
	head := template.Must(template.New("dom").Parse(graphHeadTmpl))
	if err := head.Execute(w, gp); err != nil {
		panic(err)
	}
	names := make(map[*html.Node]string, 256)
	gp.nodes(doc, w, names)
	w.Write([]byte("}\n"))
}

// Dotty is a helper for testing. Given a DOM node and a testing.T, it will
// create a Graphiviz image of the DOM tree under `doc` and write it to
// a file in the current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
//
func Dotty(doc *dom.W3CNode, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "dom.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing DOM digraph to %s\n", tmpfile.Name())
	ToGraphVizWithOptions(doc, tmpfile, Options{MatchedRules: true})
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing DOM tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	N     *dom.W3CNode
	Name  string
	Label string
}

func (gp *graphParams) name(n *dom.W3CNode, names map[*html.Node]string) string {
	name := names[n.HTMLNode()]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(names)+1)
		names[n.HTMLNode()] = name
	}
	return name
}

func (gp *graphParams) nodes(n *dom.W3CNode, w io.Writer, names map[*html.Node]string) {
	name := gp.name(n, names)
	if err := gp.nodeTmpl.Execute(w, &node{N: n, Name: name, Label: n.String()}); err != nil {
		panic(err)
	}
	if n.NodeType() == html.ElementNode {
		gp.styles(n, name, w)
	}
	children := n.ChildNodes()
	for i := 0; i < children.Length(); i++ {
		ch := children.Item(i).(*dom.W3CNode)
		gp.nodes(ch, w, names)
		edge := struct{ From, To string }{name, names[ch.HTMLNode()]}
		if err := gp.edgeTmpl.Execute(w, edge); err != nil {
			panic(err)
		}
	}
}

// styles draws property groups as a chain hanging off the element, followed
// by the matched rules, if requested.
func (gp *graphParams) styles(n *dom.W3CNode, name string, w io.Writer) {
	prev := name
	attach := func(id string) {
		if err := gp.attachTmpl.Execute(w, struct{ From, To string }{prev, id}); err != nil {
			panic(err)
		}
		prev = id
	}
	cs := n.ComputedStyles()
	for i, g := range gp.Options.Groups {
		props := cs.Group(g)
		if len(props) == 0 {
			continue
		}
		pg := propertyGroup{ID: fmt.Sprintf("%s_pg%d", name, i), Name: g, Properties: props}
		if err := gp.groupTmpl.Execute(w, pg); err != nil {
			panic(err)
		}
		attach(pg.ID)
	}
	if !gp.Options.MatchedRules {
		return
	}
	adbs := n.StyNode().ApplicableDeclarations()
	if len(adbs) == 0 {
		return
	}
	mr := matchedRules{ID: name + "_rules"}
	for _, adb := range adbs {
		mr.Blocks = append(mr.Blocks, adb.String())
	}
	if err := gp.rulesTmpl.Execute(w, mr); err != nil {
		panic(err)
	}
	attach(mr.ID)
}

func shortText(n *dom.W3CNode) string {
	h := n.HTMLNode()
	s := "\"\\\""
	if len(h.Data) > 10 {
		s += h.Data[:10] + "...\\\"\""
	} else {
		s += h.Data + "\\\"\""
	}
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "\u2423", -1)
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if eq .N.NodeName "#text" }}
{{ .Name }}	[ label={{ shortstring .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .Label }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const propertyGroupTmpl = `{{ .ID }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Name }}</font></td></tr>
      {{ range .Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ html .Value }}</td></tr>
      {{ end }}
    </table>> ] ;
`

const matchedRulesTmpl = `{{ .ID }} [ style="filled" penwidth=1 fillcolor="lightyellow" shape="Mrecord" fontsize=11
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0">
      <tr><td bgcolor="goldenrod4" align="center"><font color="white">matched rules</font></td></tr>
      {{ range .Blocks }}
      <tr><td align="left">{{ html . }}</td></tr>
      {{ end }}
    </table>> ] ;
`

const domEdgeTmpl = `{{ .From }} -> {{ .To }} [weight=1] ;
`

const attachEdgeTmpl = `{{ .From }} -> {{ .To }} [dir=none weight=1 style="dashed"] ;
`
