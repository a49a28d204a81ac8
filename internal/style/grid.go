package style

import (
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/jask/boxtree/internal/solver"
)

// tracks expands a track list. Each item is a number (a fixed track of that
// size), a breadth string used for both bounds ("auto", "min-content",
// "max-content", "30%"; "2fr" gets an auto minimum), a table with "min" and
// "max" breadths, or a GridTrack. Items that parse as none of these are
// dropped. ok is false when v is nil or not a list.
func tracks(v any) ([]solver.GridTrack, bool) {
	switch list := v.(type) {
	case nil:
		return nil, false
	case []solver.GridTrack:
		out := make([]solver.GridTrack, len(list))
		copy(out, list)
		return out, true
	case []int:
		out := make([]solver.GridTrack, 0, len(list))
		for _, n := range list {
			out = append(out, solver.FixedTrack(float64(n)))
		}
		return out, true
	case []float64:
		out := make([]solver.GridTrack, 0, len(list))
		for _, n := range list {
			out = append(out, solver.FixedTrack(n))
		}
		return out, true
	case []string:
		out := make([]solver.GridTrack, 0, len(list))
		for _, item := range list {
			if tr, ok := track(item); ok {
				out = append(out, tr)
			}
		}
		return out, true
	case []any:
		out := make([]solver.GridTrack, 0, len(list))
		for _, item := range list {
			if tr, ok := track(item); ok {
				out = append(out, tr)
			}
		}
		return out, true
	default:
		return nil, false
	}
}

func track(v any) (solver.GridTrack, bool) {
	if tr, ok := v.(solver.GridTrack); ok {
		return tr, true
	}
	if n, ok := number(v); ok {
		return solver.FixedTrack(n), true
	}
	if s, ok := v.(string); ok {
		b, ok := breadth(s)
		if !ok {
			return solver.GridTrack{}, false
		}
		if b.Kind == solver.TrackFraction {
			return solver.GridTrack{Min: solver.TrackBreadth{Kind: solver.TrackAuto}, Max: b}, true
		}
		return solver.GridTrack{Min: b, Max: b}, true
	}

	m, err := cast.ToStringMapE(v)
	if err != nil {
		return solver.GridTrack{}, false
	}
	tr := solver.GridTrack{
		Min: solver.TrackBreadth{Kind: solver.TrackAuto},
		Max: solver.TrackBreadth{Kind: solver.TrackAuto},
	}
	for key, dst := range map[string]*solver.TrackBreadth{"min": &tr.Min, "max": &tr.Max} {
		raw, ok := m[key]
		if !ok {
			continue
		}
		b, ok := breadth(raw)
		if !ok {
			return solver.GridTrack{}, false
		}
		*dst = b
	}
	return tr, true
}

func breadth(v any) (solver.TrackBreadth, bool) {
	if n, ok := number(v); ok {
		return solver.TrackBreadth{Kind: solver.TrackLength, Value: n}, true
	}
	s, ok := v.(string)
	if !ok {
		return solver.TrackBreadth{}, false
	}
	s = strings.TrimSpace(s)
	switch s {
	case "auto":
		return solver.TrackBreadth{Kind: solver.TrackAuto}, true
	case "min-content":
		return solver.TrackBreadth{Kind: solver.TrackMinContent}, true
	case "max-content":
		return solver.TrackBreadth{Kind: solver.TrackMaxContent}, true
	}

	kind := solver.TrackLength
	switch {
	case strings.HasSuffix(s, "fr"):
		kind, s = solver.TrackFraction, strings.TrimSuffix(s, "fr")
	case strings.HasSuffix(s, "%"):
		kind, s = solver.TrackPercent, strings.TrimSuffix(s, "%")
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || n < 0 {
		return solver.TrackBreadth{}, false
	}
	return solver.TrackBreadth{Kind: kind, Value: n}, true
}

// gridLine decodes a row or column placement: a GridLine, a line number, a
// "start / end" string whose sides are "auto", "span N" or a line number, or
// a table with "start" and "end" in the same forms. Missing sides are auto.
func gridLine(v any) (solver.GridLine, bool) {
	switch l := v.(type) {
	case nil:
		return solver.GridLine{}, false
	case solver.GridLine:
		return l, true
	case string:
		start, end, _ := strings.Cut(l, "/")
		sp, ok := placement(start)
		if !ok {
			return solver.GridLine{}, false
		}
		ep, ok := placement(end)
		if !ok {
			return solver.GridLine{}, false
		}
		return solver.GridLine{Start: sp, End: ep}, true
	}
	if _, ok := number(v); ok {
		p, ok := placement(v)
		return solver.GridLine{Start: p}, ok
	}

	m, err := cast.ToStringMapE(v)
	if err != nil {
		return solver.GridLine{}, false
	}
	sp, ok := placement(m["start"])
	if !ok {
		return solver.GridLine{}, false
	}
	ep, ok := placement(m["end"])
	if !ok {
		return solver.GridLine{}, false
	}
	return solver.GridLine{Start: sp, End: ep}, true
}

func placement(v any) (solver.GridPlacement, bool) {
	if v == nil {
		return solver.GridPlacement{Kind: solver.PlacementAuto}, true
	}
	if n, ok := number(v); ok {
		return solver.GridPlacement{Kind: solver.PlacementLine, Value: int(n)}, true
	}
	s, ok := v.(string)
	if !ok {
		return solver.GridPlacement{}, false
	}
	s = strings.TrimSpace(s)
	if s == "" || s == "auto" {
		return solver.GridPlacement{Kind: solver.PlacementAuto}, true
	}
	kind := solver.PlacementLine
	if rest, ok := strings.CutPrefix(s, "span"); ok {
		kind, s = solver.PlacementSpan, strings.TrimSpace(rest)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return solver.GridPlacement{}, false
	}
	return solver.GridPlacement{Kind: kind, Value: n}, true
}

// areas decodes named template areas, given as GridArea values or as tables
// with "name", "rowStart", "rowEnd", "columnStart" and "columnEnd". Unnamed
// or malformed entries are dropped.
func areas(v any) ([]solver.GridArea, bool) {
	var items []any
	switch list := v.(type) {
	case []solver.GridArea:
		if list == nil {
			return nil, false
		}
		return append([]solver.GridArea(nil), list...), true
	case []map[string]any:
		for _, m := range list {
			items = append(items, m)
		}
	case []any:
		items = list
	default:
		return nil, false
	}

	out := make([]solver.GridArea, 0, len(items))
	for _, item := range items {
		if a, ok := item.(solver.GridArea); ok {
			out = append(out, a)
			continue
		}
		m, err := cast.ToStringMapE(item)
		if err != nil {
			continue
		}
		a := solver.GridArea{Name: cast.ToString(m["name"])}
		if a.Name == "" {
			continue
		}
		a.RowStart = cast.ToInt(m["rowStart"])
		a.RowEnd = cast.ToInt(m["rowEnd"])
		a.ColumnStart = cast.ToInt(m["columnStart"])
		a.ColumnEnd = cast.ToInt(m["columnEnd"])
		out = append(out, a)
	}
	return out, true
}

func gridAutoFlow(v string) solver.GridAutoFlow {
	switch v {
	case "column":
		return solver.GridAutoFlowColumn
	case "row-dense":
		return solver.GridAutoFlowRowDense
	case "column-dense":
		return solver.GridAutoFlowColumnDense
	default:
		return solver.GridAutoFlowRow
	}
}

func justifyItems(v string) solver.AlignItems {
	switch v {
	case "flex-start":
		return solver.AlignItemsFlexStart
	case "flex-end":
		return solver.AlignItemsFlexEnd
	case "center":
		return solver.AlignItemsCenter
	case "stretch":
		return solver.AlignItemsStretch
	case "end":
		return solver.AlignItemsEnd
	default:
		return solver.AlignItemsUnset
	}
}

func justifySelf(v string) solver.AlignSelf {
	switch v {
	case "flex-start":
		return solver.AlignSelfFlexStart
	case "flex-end":
		return solver.AlignSelfFlexEnd
	case "center":
		return solver.AlignSelfCenter
	case "stretch":
		return solver.AlignSelfStretch
	case "end":
		return solver.AlignSelfEnd
	case "auto":
		return solver.AlignSelfAuto
	default:
		return solver.AlignSelfUnset
	}
}

func applyGrid(ns *solver.Style, s Style) {
	if t, ok := tracks(s[KeyGridTemplateColumns]); ok {
		ns.GridTemplateColumns = t
	}
	if t, ok := tracks(s[KeyGridTemplateRows]); ok {
		ns.GridTemplateRows = t
	}
	if t, ok := tracks(s[KeyGridAutoColumns]); ok {
		ns.GridAutoColumns = t
	}
	if t, ok := tracks(s[KeyGridAutoRows]); ok {
		ns.GridAutoRows = t
	}

	if s.Has(KeyGridAutoFlow) {
		ns.GridAutoFlow = gridAutoFlow(str(s[KeyGridAutoFlow]))
	}

	if line, ok := gridLine(s[KeyGridRow]); ok {
		ns.GridRow = line
	}
	if line, ok := gridLine(s[KeyGridColumn]); ok {
		ns.GridColumn = line
	}
	if a, ok := areas(s[KeyGridTemplateAreas]); ok {
		ns.GridTemplateAreas = a
	}

	if s.Has(KeyJustifyItems) {
		ns.JustifyItems = justifyItems(str(s[KeyJustifyItems]))
	}
	if s.Has(KeyJustifySelf) {
		ns.JustifySelf = justifySelf(str(s[KeyJustifySelf]))
	}
}
