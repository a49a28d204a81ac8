package style

import (
	"strconv"
	"strings"

	"github.com/jask/boxtree/internal/solver"
)

// Store is where Apply reads and writes solver-native styles.
type Store interface {
	Style(id solver.NodeID) solver.Style
	SetStyle(id solver.NodeID, style solver.Style)
}

// Apply merges s into the solver style of id. Only the property groups
// present in s are touched; everything else keeps its previous value.
// Re-solving is left to the caller.
func Apply(store Store, id solver.NodeID, s Style) {
	ns := store.Style(id)
	Merge(&ns, s)
	store.SetStyle(id, ns)
}

// Merge applies s onto ns in place, category by category.
func Merge(ns *solver.Style, s Style) {
	applyPosition(ns, s)
	applyMargin(ns, s)
	applyPadding(ns, s)
	applyFlex(ns, s)
	applyDimensions(ns, s)
	applyDisplay(ns, s)
	applyBorder(ns, s)
	applyGap(ns, s)
	applyOverflow(ns, s)
	applyGrid(ns, s)

	if ns.AlignContent == solver.AlignContentUnset {
		ns.AlignContent = solver.AlignContentFlexStart
	}
}

func applyPosition(ns *solver.Style, s Style) {
	if !s.Has(KeyPosition) {
		return
	}
	ns.Position = solver.PositionRelative
	if str(s[KeyPosition]) == "absolute" {
		ns.Position = solver.PositionAbsolute
	}
}

// sides collects optional per-side values before they are merged.
type sides struct {
	left, right, top, bottom *float64
}

func (sd *sides) all(v float64) {
	sd.left, sd.right, sd.top, sd.bottom = &v, &v, &v, &v
}

func (sd *sides) horizontal(v float64) { sd.left, sd.right = &v, &v }
func (sd *sides) vertical(v float64) { sd.top, sd.bottom = &v, &v }

func (sd sides) set() bool {
	return sd.left != nil || sd.right != nil || sd.top != nil || sd.bottom != nil
}

func (sd sides) mergeInto(r *solver.Rect[solver.Dimension]) {
	if sd.left != nil {
		r.Left = solver.Length(*sd.left)
	}
	if sd.right != nil {
		r.Right = solver.Length(*sd.right)
	}
	if sd.top != nil {
		r.Top = solver.Length(*sd.top)
	}
	if sd.bottom != nil {
		r.Bottom = solver.Length(*sd.bottom)
	}
}

type spacingKeys struct {
	all, x, y, top, bottom, left, right string
}

var (
	marginKeys  = spacingKeys{KeyMargin, KeyMarginX, KeyMarginY, KeyMarginTop, KeyMarginBottom, KeyMarginLeft, KeyMarginRight}
	paddingKeys = spacingKeys{KeyPadding, KeyPaddingX, KeyPaddingY, KeyPaddingTop, KeyPaddingBottom, KeyPaddingLeft, KeyPaddingRight}
)

// resolveSpacing applies generic, then axis, then per-side keys so the most
// specific key wins whatever order the caller built the map in.
func resolveSpacing(s Style, k spacingKeys) sides {
	var sd sides
	if s.Has(k.all) {
		sd.all(numberOr(s[k.all], 0))
	}
	if s.Has(k.x) {
		sd.horizontal(numberOr(s[k.x], 0))
	}
	if s.Has(k.y) {
		sd.vertical(numberOr(s[k.y], 0))
	}
	side := func(key string, dst **float64) {
		if s.Has(key) {
			v := numberOr(s[key], 0)
			*dst = &v
		}
	}
	side(k.left, &sd.left)
	side(k.right, &sd.right)
	side(k.top, &sd.top)
	side(k.bottom, &sd.bottom)
	return sd
}

func applyMargin(ns *solver.Style, s Style) {
	if sd := resolveSpacing(s, marginKeys); sd.set() {
		sd.mergeInto(&ns.Margin)
	}
}

func applyPadding(ns *solver.Style, s Style) {
	if sd := resolveSpacing(s, paddingKeys); sd.set() {
		sd.mergeInto(&ns.Padding)
	}
}

func applyFlex(ns *solver.Style, s Style) {
	if s.Has(KeyFlexGrow) {
		ns.FlexGrow = numberOr(s[KeyFlexGrow], 0)
	}
	if s.Has(KeyFlexShrink) {
		ns.FlexShrink = numberOr(s[KeyFlexShrink], 1)
	}

	if s.Has(KeyFlexWrap) {
		switch str(s[KeyFlexWrap]) {
		case "wrap":
			ns.FlexWrap = solver.FlexWrapWrap
		case "wrap-reverse":
			ns.FlexWrap = solver.FlexWrapWrapReverse
		default:
			ns.FlexWrap = solver.FlexWrapNoWrap
		}
	}

	if s.Has(KeyFlexDirection) {
		switch str(s[KeyFlexDirection]) {
		case "row-reverse":
			ns.FlexDirection = solver.FlexDirectionRowReverse
		case "column":
			ns.FlexDirection = solver.FlexDirectionColumn
		case "column-reverse":
			ns.FlexDirection = solver.FlexDirectionColumnReverse
		default:
			ns.FlexDirection = solver.FlexDirectionRow
		}
	}

	if s.Has(KeyFlexBasis) {
		ns.FlexBasis = dimension(s[KeyFlexBasis])
	}

	if s.Has(KeyAlignItems) {
		ns.AlignItems = alignItems(str(s[KeyAlignItems]))
	}
	if s.Has(KeyAlignSelf) {
		ns.AlignSelf = alignSelf(str(s[KeyAlignSelf]))
	}
	if s.Has(KeyJustifyContent) {
		ns.JustifyContent = justifyContent(str(s[KeyJustifyContent]))
	}
	if s.Has(KeyAlignContent) {
		ns.AlignContent = alignContent(str(s[KeyAlignContent]))
	}
}

func alignItems(v string) solver.AlignItems {
	switch v {
	case "stretch":
		return solver.AlignItemsStretch
	case "flex-start":
		return solver.AlignItemsFlexStart
	case "center":
		return solver.AlignItemsCenter
	case "flex-end":
		return solver.AlignItemsFlexEnd
	case "start":
		return solver.AlignItemsStart
	case "end":
		return solver.AlignItemsEnd
	default:
		return solver.AlignItemsUnset
	}
}

func alignSelf(v string) solver.AlignSelf {
	switch v {
	case "flex-start":
		return solver.AlignSelfFlexStart
	case "center":
		return solver.AlignSelfCenter
	case "flex-end":
		return solver.AlignSelfFlexEnd
	case "auto":
		return solver.AlignSelfAuto
	case "start":
		return solver.AlignSelfStart
	case "end":
		return solver.AlignSelfEnd
	default:
		return solver.AlignSelfUnset
	}
}

func justifyContent(v string) solver.JustifyContent {
	switch v {
	case "flex-start":
		return solver.JustifyContentFlexStart
	case "center":
		return solver.JustifyContentCenter
	case "flex-end":
		return solver.JustifyContentFlexEnd
	case "space-between":
		return solver.JustifyContentSpaceBetween
	case "space-around":
		return solver.JustifyContentSpaceAround
	case "space-evenly":
		return solver.JustifyContentSpaceEvenly
	case "start":
		return solver.JustifyContentStart
	case "end":
		return solver.JustifyContentEnd
	default:
		return solver.JustifyContentUnset
	}
}

func alignContent(v string) solver.AlignContent {
	switch v {
	case "flex-start":
		return solver.AlignContentFlexStart
	case "flex-end":
		return solver.AlignContentFlexEnd
	case "space-between":
		return solver.AlignContentSpaceBetween
	case "space-around":
		return solver.AlignContentSpaceAround
	case "stretch":
		return solver.AlignContentStretch
	case "center":
		return solver.AlignContentCenter
	case "space-evenly":
		return solver.AlignContentSpaceEvenly
	case "start":
		return solver.AlignContentStart
	case "end":
		return solver.AlignContentEnd
	default:
		return solver.AlignContentUnset
	}
}

// dimension accepts a cell count or a percentage string; anything else is auto.
func dimension(v any) solver.Dimension {
	if n, ok := number(v); ok {
		return solver.Length(n)
	}
	if s, ok := v.(string); ok && strings.HasSuffix(s, "%") {
		if p, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, "%")), 64); err == nil {
			return solver.Percent(p)
		}
	}
	return solver.Auto()
}

func applyDimensions(ns *solver.Style, s Style) {
	mergeSize(&ns.Size, s, KeyWidth, KeyHeight)
	mergeSize(&ns.MinSize, s, KeyMinWidth, KeyMinHeight)
}

func mergeSize(dst *solver.Size[solver.Dimension], s Style, wKey, hKey string) {
	hasW, hasH := s.Has(wKey), s.Has(hKey)
	if !hasW && !hasH {
		return
	}
	if hasW {
		dst.Width = dimension(s[wKey])
	}
	if hasH {
		dst.Height = dimension(s[hKey])
	}
}

func applyDisplay(ns *solver.Style, s Style) {
	if !s.Has(KeyDisplay) {
		return
	}
	switch str(s[KeyDisplay]) {
	case "grid":
		ns.Display = solver.DisplayGrid
	case "none":
		ns.Display = solver.DisplayNone
	default:
		ns.Display = solver.DisplayFlex
	}
}

func applyBorder(ns *solver.Style, s Style) {
	if !s.Has(KeyBorderStyle) {
		return
	}
	width := 0.0
	if truthy(s[KeyBorderStyle]) {
		width = 1
	}
	edge := func(key string) solver.Dimension {
		if b, ok := s[key].(bool); ok && !b {
			return solver.Length(0)
		}
		return solver.Length(width)
	}
	ns.Border = solver.Rect[solver.Dimension]{
		Left:   edge(KeyBorderLeft),
		Right:  edge(KeyBorderRight),
		Top:    edge(KeyBorderTop),
		Bottom: edge(KeyBorderBottom),
	}
}

func truthy(v any) bool {
	switch b := v.(type) {
	case nil:
		return false
	case bool:
		return b
	case string:
		return b != ""
	default:
		if n, ok := number(v); ok {
			return n != 0
		}
		return true
	}
}

func applyGap(ns *solver.Style, s Style) {
	var width, height *float64
	if s.Has(KeyGap) {
		v := numberOr(s[KeyGap], 0)
		width, height = &v, &v
	}
	if s.Has(KeyColumnGap) {
		v := numberOr(s[KeyColumnGap], 0)
		width = &v
	}
	if s.Has(KeyRowGap) {
		v := numberOr(s[KeyRowGap], 0)
		height = &v
	}
	if width != nil {
		ns.Gap.Width = solver.Length(*width)
	}
	if height != nil {
		ns.Gap.Height = solver.Length(*height)
	}
}

func overflow(v any) solver.Overflow {
	if str(v) == "hidden" {
		return solver.OverflowHidden
	}
	return solver.OverflowVisible
}

func applyOverflow(ns *solver.Style, s Style) {
	if s.Has(KeyOverflow) {
		o := overflow(s[KeyOverflow])
		ns.Overflow.X, ns.Overflow.Y = o, o
	}
	if s.Has(KeyOverflowX) {
		ns.Overflow.X = overflow(s[KeyOverflowX])
	}
	if s.Has(KeyOverflowY) {
		ns.Overflow.Y = overflow(s[KeyOverflowY])
	}
}
