package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/boxtree/internal/dom"
	"github.com/jask/boxtree/internal/solver"
	"github.com/jask/boxtree/internal/text"
)

const sample = `
[root]
style = { paddingX = 1 }

[[root.children]]
kind = "box"
name = "header"
style = { height = 1 }

[[root.children]]
kind = "text"
name = "body"
text = "12345678901234567890"

[[root.children]]
kind = "text"
name = "label"
style = { textWrap = "truncate" }

  [[root.children.children]]
  kind = "#text"
  text = "hello "

  [[root.children.children]]
  kind = "virtual-text"

    [[root.children.children.children]]
    kind = "#text"
    text = "world"
`

func newManager() *dom.Manager {
	return dom.NewManager(solver.NewTree(), text.NewMeasurer(32, ""))
}

func byName(t *testing.T, named []Named, name string) *dom.Element {
	t.Helper()
	for _, n := range named {
		if n.Name == name {
			return n.Element
		}
	}
	t.Fatalf("no element named %q", name)
	return nil
}

func TestBuildAndSolve(t *testing.T) {
	doc, err := Parse([]byte(sample))
	require.NoError(t, err)

	m := newManager()
	root, named, err := Build(m, doc)
	require.NoError(t, err)
	require.Equal(t, dom.KindRoot, root.Kind())
	require.Len(t, root.Children(), 3)

	names := make([]string, 0, len(named))
	for _, n := range named {
		names = append(names, n.Name)
	}
	require.Equal(t, []string{"header", "body", "label"}, names)

	label := byName(t, named, "label")
	require.Equal(t, "hello world", dom.Squash(label))

	m.ComputeLayout(root, solver.Definite(12), solver.MaxContent)

	require.Equal(t, solver.Size[float64]{Width: 10, Height: 1}, m.MeasureElement(byName(t, named, "header")))
	require.Equal(t, solver.Size[float64]{Width: 10, Height: 2}, m.MeasureElement(byName(t, named, "body")))
	require.Equal(t, solver.Size[float64]{Width: 10, Height: 1}, m.MeasureElement(label))
	require.Equal(t, 10.0, dom.ContentWidth(root.Handle().Layout()))
}

func TestParseDefaultsRootKind(t *testing.T) {
	doc, err := Parse([]byte("[root]\n"))
	require.NoError(t, err)
	require.Equal(t, "root", doc.Root.Kind)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{name: "malformed", doc: "[root\n", want: "parse document"},
		{name: "root kind", doc: "[root]\nkind = \"box\"\n", want: "root: kind must be"},
		{name: "unknown kind", doc: "[root]\n[[root.children]]\nkind = \"span\"\n", want: `root.children[0]: unknown kind "span"`},
		{name: "nested root", doc: "[root]\n[[root.children]]\nkind = \"root\"\n", want: "root may only appear at the top"},
		{
			name: "leaf children",
			doc:  "[root]\n[[root.children]]\nkind = \"#text\"\n[[root.children.children]]\nkind = \"box\"\n",
			want: "text leaves cannot have children",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.ErrorContains(t, err, tt.want)
		})
	}
}

func TestBuildCoercesTextValues(t *testing.T) {
	doc, err := Parse([]byte("[root]\n[[root.children]]\nkind = \"text\"\nname = \"n\"\ntext = 42\n"))
	require.NoError(t, err)

	_, named, err := Build(newManager(), doc)
	require.NoError(t, err)
	require.Equal(t, "42", dom.Squash(named[0].Element))
}

const gridDoc = `
[root.style]
display = "grid"
gridTemplateColumns = [4, "1fr", { min = "min-content", max = "2fr" }]
gridTemplateAreas = [{ name = "header", rowStart = 1, rowEnd = 2, columnStart = 1, columnEnd = 3 }]

[[root.children]]
kind = "box"
name = "cell"
style = { gridRow = "1 / span 2", gridColumn = { start = 2 } }
`

func TestBuildGridStyles(t *testing.T) {
	doc, err := Parse([]byte(gridDoc))
	require.NoError(t, err)

	m := newManager()
	root, named, err := Build(m, doc)
	require.NoError(t, err)

	rs := m.Tree().Style(root.Handle().ID())
	require.Equal(t, solver.DisplayGrid, rs.Display)
	require.Equal(t, []solver.GridTrack{
		solver.FixedTrack(4),
		{
			Min: solver.TrackBreadth{Kind: solver.TrackAuto},
			Max: solver.TrackBreadth{Kind: solver.TrackFraction, Value: 1},
		},
		{
			Min: solver.TrackBreadth{Kind: solver.TrackMinContent},
			Max: solver.TrackBreadth{Kind: solver.TrackFraction, Value: 2},
		},
	}, rs.GridTemplateColumns)
	require.Equal(t, []solver.GridArea{
		{Name: "header", RowStart: 1, RowEnd: 2, ColumnStart: 1, ColumnEnd: 3},
	}, rs.GridTemplateAreas)

	cs := m.Tree().Style(byName(t, named, "cell").Handle().ID())
	require.Equal(t, solver.GridLine{
		Start: solver.GridPlacement{Kind: solver.PlacementLine, Value: 1},
		End:   solver.GridPlacement{Kind: solver.PlacementSpan, Value: 2},
	}, cs.GridRow)
	require.Equal(t, solver.GridPlacement{Kind: solver.PlacementLine, Value: 2}, cs.GridColumn.Start)
	require.Equal(t, solver.PlacementAuto, cs.GridColumn.End.Kind)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.toml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	require.Len(t, doc.Root.Children, 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorContains(t, err, "read document")
}
