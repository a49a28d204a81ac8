package style

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/boxtree/internal/solver"
)

func merged(s Style) solver.Style {
	ns := solver.DefaultStyle()
	Merge(&ns, s)
	return ns
}

func TestMarginPrecedence(t *testing.T) {
	ns := merged(Style{KeyMargin: 2, KeyMarginLeft: 5})

	require.Equal(t, solver.Length(5), ns.Margin.Left)
	require.Equal(t, solver.Length(2), ns.Margin.Right)
	require.Equal(t, solver.Length(2), ns.Margin.Top)
	require.Equal(t, solver.Length(2), ns.Margin.Bottom)
}

func TestPaddingAxisThenSide(t *testing.T) {
	ns := merged(Style{KeyPaddingTop: 4, KeyPaddingY: 1, KeyPaddingX: 3, KeyPadding: 9})

	require.Equal(t, solver.Length(3), ns.Padding.Left)
	require.Equal(t, solver.Length(3), ns.Padding.Right)
	require.Equal(t, solver.Length(4), ns.Padding.Top)
	require.Equal(t, solver.Length(1), ns.Padding.Bottom)
}

func TestSpacingKeepsUnsetSides(t *testing.T) {
	ns := solver.DefaultStyle()
	Merge(&ns, Style{KeyMargin: 3})
	Merge(&ns, Style{KeyMarginTop: 7})

	require.Equal(t, solver.Length(7), ns.Margin.Top)
	require.Equal(t, solver.Length(3), ns.Margin.Left)
	require.Equal(t, solver.Length(3), ns.Margin.Bottom)
}

func TestSpacingNilValuesResolveToZero(t *testing.T) {
	ns := solver.DefaultStyle()
	Merge(&ns, Style{KeyPadding: 3})
	Merge(&ns, Style{KeyPaddingX: nil, KeyPaddingTop: nil})

	require.Equal(t, solver.Length(0), ns.Padding.Left)
	require.Equal(t, solver.Length(0), ns.Padding.Top)
	require.Equal(t, solver.Length(3), ns.Padding.Bottom)
}

func TestFlexDefaultsAndFallbacks(t *testing.T) {
	ns := solver.DefaultStyle()
	ns.FlexGrow = 4
	ns.FlexShrink = 0
	Merge(&ns, Style{
		KeyFlexGrow:      nil,
		KeyFlexShrink:    "lots",
		KeyFlexDirection: "diagonal",
		KeyFlexWrap:      "sometimes",
		KeyFlexBasis:     "big",
	})

	require.Equal(t, 0.0, ns.FlexGrow)
	require.Equal(t, 1.0, ns.FlexShrink)
	require.Equal(t, solver.FlexDirectionRow, ns.FlexDirection)
	require.Equal(t, solver.FlexWrapNoWrap, ns.FlexWrap)
	require.Equal(t, solver.Auto(), ns.FlexBasis)
}

func TestFlexValues(t *testing.T) {
	ns := merged(Style{
		KeyFlexGrow:       int64(2),
		KeyFlexShrink:     0.5,
		KeyFlexDirection:  "column-reverse",
		KeyFlexWrap:       "wrap-reverse",
		KeyFlexBasis:      "40%",
		KeyAlignItems:     "center",
		KeyAlignSelf:      "auto",
		KeyJustifyContent: "space-evenly",
	})

	require.Equal(t, 2.0, ns.FlexGrow)
	require.Equal(t, 0.5, ns.FlexShrink)
	require.Equal(t, solver.FlexDirectionColumnReverse, ns.FlexDirection)
	require.Equal(t, solver.FlexWrapWrapReverse, ns.FlexWrap)
	require.Equal(t, solver.Percent(40), ns.FlexBasis)
	require.Equal(t, solver.AlignItemsCenter, ns.AlignItems)
	require.Equal(t, solver.AlignSelfAuto, ns.AlignSelf)
	require.Equal(t, solver.JustifyContentSpaceEvenly, ns.JustifyContent)
}

func TestAlignmentUnrecognizedIsUnset(t *testing.T) {
	ns := solver.DefaultStyle()
	ns.AlignItems = solver.AlignItemsCenter
	ns.JustifyContent = solver.JustifyContentCenter
	Merge(&ns, Style{KeyAlignItems: "sideways", KeyJustifyContent: 3})

	require.Equal(t, solver.AlignItemsUnset, ns.AlignItems)
	require.Equal(t, solver.JustifyContentUnset, ns.JustifyContent)
}

func TestAlignContentDefaultsToFlexStart(t *testing.T) {
	ns := merged(Style{})
	require.Equal(t, solver.AlignContentFlexStart, ns.AlignContent)

	ns = merged(Style{KeyAlignContent: "nonsense"})
	require.Equal(t, solver.AlignContentFlexStart, ns.AlignContent)

	ns = merged(Style{KeyAlignContent: "space-between"})
	require.Equal(t, solver.AlignContentSpaceBetween, ns.AlignContent)
}

func TestDimensionsMergePerAxis(t *testing.T) {
	ns := solver.DefaultStyle()
	Merge(&ns, Style{KeyWidth: 30, KeyHeight: "50%"})
	Merge(&ns, Style{KeyWidth: "wide"})

	require.Equal(t, solver.Auto(), ns.Size.Width)
	require.Equal(t, solver.Percent(50), ns.Size.Height)

	Merge(&ns, Style{KeyMinHeight: 2})
	require.Equal(t, solver.Auto(), ns.MinSize.Width)
	require.Equal(t, solver.Length(2), ns.MinSize.Height)
}

func TestDisplayFallback(t *testing.T) {
	require.Equal(t, solver.DisplayGrid, merged(Style{KeyDisplay: "grid"}).Display)
	require.Equal(t, solver.DisplayNone, merged(Style{KeyDisplay: "none"}).Display)
	require.Equal(t, solver.DisplayFlex, merged(Style{KeyDisplay: "inline"}).Display)
}

func TestBorderSides(t *testing.T) {
	ns := merged(Style{KeyBorderStyle: "round", KeyBorderTop: false, KeyBorderLeft: true})

	require.Equal(t, solver.Length(0), ns.Border.Top)
	require.Equal(t, solver.Length(1), ns.Border.Left)
	require.Equal(t, solver.Length(1), ns.Border.Right)
	require.Equal(t, solver.Length(1), ns.Border.Bottom)

	ns = solver.DefaultStyle()
	Merge(&ns, Style{KeyBorderStyle: "single"})
	Merge(&ns, Style{KeyBorderStyle: nil})
	require.Equal(t, solver.Length(0), ns.Border.Left)

	ns = solver.DefaultStyle()
	Merge(&ns, Style{KeyBorderStyle: "single"})
	Merge(&ns, Style{KeyBorderTop: false})
	require.Equal(t, solver.Length(1), ns.Border.Top, "side flags alone do not touch borders")
}

func TestGapMerge(t *testing.T) {
	ns := solver.DefaultStyle()
	Merge(&ns, Style{KeyGap: 2, KeyRowGap: 1})
	require.Equal(t, solver.Length(2), ns.Gap.Width)
	require.Equal(t, solver.Length(1), ns.Gap.Height)

	Merge(&ns, Style{KeyColumnGap: 4})
	require.Equal(t, solver.Length(4), ns.Gap.Width)
	require.Equal(t, solver.Length(1), ns.Gap.Height)
}

func TestOverflowAxes(t *testing.T) {
	ns := merged(Style{KeyOverflow: "hidden", KeyOverflowY: "visible"})
	require.Equal(t, solver.OverflowHidden, ns.Overflow.X)
	require.Equal(t, solver.OverflowVisible, ns.Overflow.Y)

	ns = merged(Style{KeyOverflowX: "scroll"})
	require.Equal(t, solver.OverflowVisible, ns.Overflow.X)
}

func TestGridStyles(t *testing.T) {
	custom := solver.GridTrack{
		Min: solver.TrackBreadth{Kind: solver.TrackAuto},
		Max: solver.TrackBreadth{Kind: solver.TrackFraction, Value: 1},
	}
	row := solver.GridLine{
		Start: solver.GridPlacement{Kind: solver.PlacementLine, Value: 1},
		End:   solver.GridPlacement{Kind: solver.PlacementSpan, Value: 2},
	}
	areas := []solver.GridArea{{Name: "header", RowStart: 1, RowEnd: 2, ColumnStart: 1, ColumnEnd: 3}}

	ns := merged(Style{
		KeyGridTemplateColumns: []any{1, int64(3), custom, "junk"},
		KeyGridTemplateRows:    []int{2},
		KeyGridAutoColumns:     []float64{1.5},
		KeyGridAutoFlow:        "column-dense",
		KeyGridRow:             row,
		KeyGridTemplateAreas:   areas,
		KeyJustifyItems:        "start",
		KeyJustifySelf:         "stretch",
	})

	require.Equal(t, []solver.GridTrack{solver.FixedTrack(1), solver.FixedTrack(3), custom}, ns.GridTemplateColumns)
	require.Equal(t, []solver.GridTrack{solver.FixedTrack(2)}, ns.GridTemplateRows)
	require.Equal(t, []solver.GridTrack{solver.FixedTrack(1.5)}, ns.GridAutoColumns)
	require.Equal(t, solver.GridAutoFlowColumnDense, ns.GridAutoFlow)
	require.Equal(t, row, ns.GridRow)
	require.Equal(t, areas, ns.GridTemplateAreas)
	require.Equal(t, solver.AlignItemsUnset, ns.JustifyItems)
	require.Equal(t, solver.AlignSelfStretch, ns.JustifySelf)

	ns = merged(Style{KeyGridAutoFlow: "spiral"})
	require.Equal(t, solver.GridAutoFlowRow, ns.GridAutoFlow)
}

func TestGridStylesFromDocumentValues(t *testing.T) {
	auto := solver.TrackBreadth{Kind: solver.TrackAuto}

	ns := merged(Style{
		KeyGridTemplateColumns: []any{
			int64(4),
			"1fr",
			"25%",
			"min-content",
			map[string]any{"min": "max-content", "max": "2fr"},
			map[string]any{"max": int64(6)},
			map[string]any{"min": "wide"},
		},
		KeyGridAutoRows: []string{"auto", "3"},
		KeyGridRow:      "1 / span 2",
		KeyGridColumn:   map[string]any{"start": int64(2)},
		KeyGridTemplateAreas: []any{
			map[string]any{"name": "header", "rowStart": int64(1), "rowEnd": int64(2), "columnStart": int64(1), "columnEnd": int64(3)},
			map[string]any{"rowStart": int64(1)},
			"sidebar",
		},
	})

	require.Equal(t, []solver.GridTrack{
		solver.FixedTrack(4),
		{Min: auto, Max: solver.TrackBreadth{Kind: solver.TrackFraction, Value: 1}},
		{
			Min: solver.TrackBreadth{Kind: solver.TrackPercent, Value: 25},
			Max: solver.TrackBreadth{Kind: solver.TrackPercent, Value: 25},
		},
		{Min: solver.TrackBreadth{Kind: solver.TrackMinContent}, Max: solver.TrackBreadth{Kind: solver.TrackMinContent}},
		{Min: solver.TrackBreadth{Kind: solver.TrackMaxContent}, Max: solver.TrackBreadth{Kind: solver.TrackFraction, Value: 2}},
		{Min: auto, Max: solver.TrackBreadth{Kind: solver.TrackLength, Value: 6}},
	}, ns.GridTemplateColumns)
	require.Equal(t, []solver.GridTrack{{Min: auto, Max: auto}, solver.FixedTrack(3)}, ns.GridAutoRows)

	require.Equal(t, solver.GridLine{
		Start: solver.GridPlacement{Kind: solver.PlacementLine, Value: 1},
		End:   solver.GridPlacement{Kind: solver.PlacementSpan, Value: 2},
	}, ns.GridRow)
	require.Equal(t, solver.GridLine{
		Start: solver.GridPlacement{Kind: solver.PlacementLine, Value: 2},
		End:   solver.GridPlacement{Kind: solver.PlacementAuto},
	}, ns.GridColumn)
	require.Equal(t, []solver.GridArea{
		{Name: "header", RowStart: 1, RowEnd: 2, ColumnStart: 1, ColumnEnd: 3},
	}, ns.GridTemplateAreas)
}

func TestGridLineRejectsMalformedPlacement(t *testing.T) {
	base := merged(nil)
	ns := merged(Style{KeyGridRow: "one / two", KeyGridColumn: map[string]any{"end": "span x"}})
	require.Equal(t, base.GridRow, ns.GridRow)
	require.Equal(t, base.GridColumn, ns.GridColumn)
}

func TestApplyWritesBackToStore(t *testing.T) {
	tree := solver.NewTree()
	id := tree.NewNode(solver.DefaultStyle())

	Apply(tree, id, Style{KeyPosition: "absolute", KeyWidth: 12, "color": "red"})

	ns := tree.Style(id)
	require.Equal(t, solver.PositionAbsolute, ns.Position)
	require.Equal(t, solver.Length(12), ns.Size.Width)
	require.True(t, tree.Dirty(id))
}

func TestTextWrap(t *testing.T) {
	require.Equal(t, "", Style{}.TextWrap())
	require.Equal(t, WrapTruncateMiddle, Style{KeyTextWrap: "truncate-middle"}.TextWrap())
}
