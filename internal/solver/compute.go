package solver

import (
	"github.com/kjk/flex"
)

// Compute solves the subtree rooted at root for the offered space and stores
// the resulting geometry on every node of the subtree.
//
// The subtree is mirrored onto a fresh flexbox tree for every pass, so no
// backend state outlives a call. The flexbox backend has no grid or gap
// support: grid containers are laid out as flex containers, gaps are ignored
// and overflow is hidden when either axis is hidden.
func (t *Tree) Compute(root NodeID, width, height AvailableSpace) {
	if _, ok := t.nodes[root]; !ok {
		return
	}
	cfg := flex.NewConfig()
	mirror := make(map[NodeID]*flex.Node)
	froot := t.mirror(root, cfg, mirror)

	flex.CalculateLayout(froot, spaceToFlex(width), spaceToFlex(height), flex.DirectionLTR)

	for id, fn := range mirror {
		n := t.nodes[id]
		n.layout = layoutFromFlex(fn)
		n.dirty = false
	}
}

func (t *Tree) mirror(id NodeID, cfg *flex.Config, out map[NodeID]*flex.Node) *flex.Node {
	n := t.nodes[id]
	fn := flex.NewNodeWithConfig(cfg)
	applyFlexStyle(&fn.Style, n.style)
	out[id] = fn

	if len(n.children) == 0 {
		if n.measure != nil {
			fn.SetMeasureFunc(measureAdapter(n.measure))
		}
		return fn
	}
	for _, childID := range n.children {
		if _, ok := t.nodes[childID]; !ok {
			continue
		}
		fn.InsertChild(t.mirror(childID, cfg, out), len(fn.Children))
	}
	return fn
}

func measureAdapter(fn MeasureFunc) flex.MeasureFunc {
	return func(_ *flex.Node, width float32, widthMode flex.MeasureMode, _ float32, _ flex.MeasureMode) flex.Size {
		space := MaxContent
		if widthMode != flex.MeasureModeUndefined {
			space = Definite(float64(width))
		}
		size := fn(space)
		return flex.Size{Width: float32(size.Width), Height: float32(size.Height)}
	}
}

func spaceToFlex(a AvailableSpace) float32 {
	if a.IsDefinite() {
		return float32(a.Value())
	}
	return flex.Undefined
}

func layoutFromFlex(fn *flex.Node) Layout {
	l := fn.Layout
	return Layout{
		Left:   float64(l.Position[flex.EdgeLeft]),
		Top:    float64(l.Position[flex.EdgeTop]),
		Width:  float64(l.Dimensions[flex.DimensionWidth]),
		Height: float64(l.Dimensions[flex.DimensionHeight]),
		Padding: Rect[float64]{
			Left:   float64(l.Padding[flex.EdgeStart]),
			Right:  float64(l.Padding[flex.EdgeEnd]),
			Top:    float64(l.Padding[flex.EdgeTop]),
			Bottom: float64(l.Padding[flex.EdgeBottom]),
		},
		Border: Rect[float64]{
			Left:   float64(l.Border[flex.EdgeStart]),
			Right:  float64(l.Border[flex.EdgeEnd]),
			Top:    float64(l.Border[flex.EdgeTop]),
			Bottom: float64(l.Border[flex.EdgeBottom]),
		},
	}
}

func applyFlexStyle(fs *flex.Style, s Style) {
	fs.Display = flex.DisplayFlex
	if s.Display == DisplayNone {
		fs.Display = flex.DisplayNone
	}
	fs.PositionType = flex.PositionTypeRelative
	if s.Position == PositionAbsolute {
		fs.PositionType = flex.PositionTypeAbsolute
	}

	switch s.FlexDirection {
	case FlexDirectionColumn:
		fs.FlexDirection = flex.FlexDirectionColumn
	case FlexDirectionRowReverse:
		fs.FlexDirection = flex.FlexDirectionRowReverse
	case FlexDirectionColumnReverse:
		fs.FlexDirection = flex.FlexDirectionColumnReverse
	default:
		fs.FlexDirection = flex.FlexDirectionRow
	}
	switch s.FlexWrap {
	case FlexWrapWrap:
		fs.FlexWrap = flex.WrapWrap
	case FlexWrapWrapReverse:
		fs.FlexWrap = flex.WrapWrapReverse
	default:
		fs.FlexWrap = flex.WrapNoWrap
	}

	fs.FlexGrow = float32(s.FlexGrow)
	fs.FlexShrink = float32(s.FlexShrink)
	fs.FlexBasis = flexValue(s.FlexBasis)

	fs.AlignItems = flexAlignItems(s.AlignItems, flex.AlignStretch)
	fs.AlignSelf = flexAlignSelf(s.AlignSelf)
	fs.JustifyContent = flexJustify(s.JustifyContent)
	fs.AlignContent = flexAlignContent(s.AlignContent)

	fs.Overflow = flex.OverflowVisible
	if s.Overflow.X == OverflowHidden || s.Overflow.Y == OverflowHidden {
		fs.Overflow = flex.OverflowHidden
	}

	setEdges(&fs.Margin, s.Margin)
	setEdges(&fs.Padding, s.Padding)
	setEdges(&fs.Border, s.Border)

	fs.Dimensions[flex.DimensionWidth] = flexValue(s.Size.Width)
	fs.Dimensions[flex.DimensionHeight] = flexValue(s.Size.Height)
	fs.MinDimensions[flex.DimensionWidth] = minValue(s.MinSize.Width)
	fs.MinDimensions[flex.DimensionHeight] = minValue(s.MinSize.Height)
}

func setEdges(edges *[flex.EdgeCount]flex.Value, r Rect[Dimension]) {
	edges[flex.EdgeLeft] = flexValue(r.Left)
	edges[flex.EdgeRight] = flexValue(r.Right)
	edges[flex.EdgeTop] = flexValue(r.Top)
	edges[flex.EdgeBottom] = flexValue(r.Bottom)
}

func flexValue(d Dimension) flex.Value {
	switch d.Unit {
	case UnitPercent:
		return flex.Value{Value: float32(d.Value), Unit: flex.UnitPercent}
	case UnitAuto:
		return flex.Value{Value: flex.Undefined, Unit: flex.UnitAuto}
	default:
		return flex.Value{Value: float32(d.Value), Unit: flex.UnitPoint}
	}
}

// Yoga treats an auto minimum as "no minimum".
func minValue(d Dimension) flex.Value {
	if d.IsAuto() {
		return flex.Value{Value: flex.Undefined, Unit: flex.UnitUndefined}
	}
	return flexValue(d)
}

func flexAlignItems(a AlignItems, unset flex.Align) flex.Align {
	switch a {
	case AlignItemsStart, AlignItemsFlexStart:
		return flex.AlignFlexStart
	case AlignItemsEnd, AlignItemsFlexEnd:
		return flex.AlignFlexEnd
	case AlignItemsCenter:
		return flex.AlignCenter
	case AlignItemsBaseline:
		return flex.AlignBaseline
	case AlignItemsStretch:
		return flex.AlignStretch
	default:
		return unset
	}
}

func flexAlignSelf(a AlignSelf) flex.Align {
	switch a {
	case AlignSelfStart, AlignSelfFlexStart:
		return flex.AlignFlexStart
	case AlignSelfEnd, AlignSelfFlexEnd:
		return flex.AlignFlexEnd
	case AlignSelfCenter:
		return flex.AlignCenter
	case AlignSelfBaseline:
		return flex.AlignBaseline
	case AlignSelfStretch:
		return flex.AlignStretch
	default:
		return flex.AlignAuto
	}
}

func flexJustify(j JustifyContent) flex.Justify {
	switch j {
	case JustifyContentEnd, JustifyContentFlexEnd:
		return flex.JustifyFlexEnd
	case JustifyContentCenter:
		return flex.JustifyCenter
	case JustifyContentSpaceBetween:
		return flex.JustifySpaceBetween
	case JustifyContentSpaceAround, JustifyContentSpaceEvenly:
		return flex.JustifySpaceAround
	default:
		return flex.JustifyFlexStart
	}
}

func flexAlignContent(a AlignContent) flex.Align {
	switch a {
	case AlignContentEnd, AlignContentFlexEnd:
		return flex.AlignFlexEnd
	case AlignContentCenter:
		return flex.AlignCenter
	case AlignContentStretch:
		return flex.AlignStretch
	case AlignContentSpaceBetween:
		return flex.AlignSpaceBetween
	case AlignContentSpaceAround, AlignContentSpaceEvenly:
		return flex.AlignSpaceAround
	default:
		return flex.AlignFlexStart
	}
}
