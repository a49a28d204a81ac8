package solver

// NodeID identifies a node inside a Tree.
type NodeID uint64

type Display uint8

const (
	DisplayFlex Display = iota
	DisplayGrid
	DisplayNone
)

type Position uint8

const (
	PositionRelative Position = iota
	PositionAbsolute
)

type FlexDirection uint8

const (
	FlexDirectionRow FlexDirection = iota
	FlexDirectionColumn
	FlexDirectionRowReverse
	FlexDirectionColumnReverse
)

type FlexWrap uint8

const (
	FlexWrapNoWrap FlexWrap = iota
	FlexWrapWrap
	FlexWrapWrapReverse
)

// AlignItems is also used for justify-items. The zero value means unset.
type AlignItems uint8

const (
	AlignItemsUnset AlignItems = iota
	AlignItemsStart
	AlignItemsEnd
	AlignItemsFlexStart
	AlignItemsFlexEnd
	AlignItemsCenter
	AlignItemsBaseline
	AlignItemsStretch
)

// AlignSelf is also used for justify-self. The zero value means unset.
type AlignSelf uint8

const (
	AlignSelfUnset AlignSelf = iota
	AlignSelfAuto
	AlignSelfStart
	AlignSelfEnd
	AlignSelfFlexStart
	AlignSelfFlexEnd
	AlignSelfCenter
	AlignSelfBaseline
	AlignSelfStretch
)

// JustifyContent zero value means unset.
type JustifyContent uint8

const (
	JustifyContentUnset JustifyContent = iota
	JustifyContentStart
	JustifyContentEnd
	JustifyContentFlexStart
	JustifyContentFlexEnd
	JustifyContentCenter
	JustifyContentStretch
	JustifyContentSpaceBetween
	JustifyContentSpaceAround
	JustifyContentSpaceEvenly
)

// AlignContent zero value means unset.
type AlignContent uint8

const (
	AlignContentUnset AlignContent = iota
	AlignContentStart
	AlignContentEnd
	AlignContentFlexStart
	AlignContentFlexEnd
	AlignContentCenter
	AlignContentStretch
	AlignContentSpaceBetween
	AlignContentSpaceAround
	AlignContentSpaceEvenly
)

type Overflow uint8

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll
)

type GridAutoFlow uint8

const (
	GridAutoFlowRow GridAutoFlow = iota
	GridAutoFlowColumn
	GridAutoFlowRowDense
	GridAutoFlowColumnDense
)

type Unit uint8

const (
	UnitLength Unit = iota
	UnitPercent
	UnitAuto
)

// Dimension is a length in cells, a percentage of the parent, or auto.
type Dimension struct {
	Unit  Unit
	Value float64
}

func Length(v float64) Dimension  { return Dimension{Unit: UnitLength, Value: v} }
func Percent(v float64) Dimension { return Dimension{Unit: UnitPercent, Value: v} }
func Auto() Dimension             { return Dimension{Unit: UnitAuto} }

func (d Dimension) IsAuto() bool { return d.Unit == UnitAuto }

type Rect[T any] struct {
	Left, Right, Top, Bottom T
}

type Size[T any] struct {
	Width, Height T
}

type Point[T any] struct {
	X, Y T
}

type TrackKind uint8

const (
	TrackLength TrackKind = iota
	TrackPercent
	TrackAuto
	TrackMinContent
	TrackMaxContent
	TrackFraction
)

// TrackBreadth is one bound of a grid track sizing function.
type TrackBreadth struct {
	Kind  TrackKind
	Value float64
}

// GridTrack is a minmax() track sizing function.
type GridTrack struct {
	Min TrackBreadth
	Max TrackBreadth
}

// FixedTrack returns a track that is exactly n cells wide.
func FixedTrack(n float64) GridTrack {
	b := TrackBreadth{Kind: TrackLength, Value: n}
	return GridTrack{Min: b, Max: b}
}

type PlacementKind uint8

const (
	PlacementAuto PlacementKind = iota
	PlacementLine
	PlacementSpan
)

type GridPlacement struct {
	Kind  PlacementKind
	Value int
}

// GridLine is the start/end placement of an item on one grid axis.
type GridLine struct {
	Start GridPlacement
	End   GridPlacement
}

type GridArea struct {
	Name        string
	RowStart    int
	RowEnd      int
	ColumnStart int
	ColumnEnd   int
}

// Style is the solver-native style of a node. It is a plain value: callers
// read it, change the fields they care about and write it back.
type Style struct {
	Display       Display
	Position      Position
	FlexDirection FlexDirection
	FlexWrap      FlexWrap
	FlexGrow      float64
	FlexShrink    float64
	FlexBasis     Dimension

	AlignItems     AlignItems
	AlignSelf      AlignSelf
	JustifyContent JustifyContent
	AlignContent   AlignContent
	JustifyItems   AlignItems
	JustifySelf    AlignSelf

	Margin  Rect[Dimension]
	Padding Rect[Dimension]
	Border  Rect[Dimension]
	Gap     Size[Dimension]

	Size    Size[Dimension]
	MinSize Size[Dimension]

	Overflow Point[Overflow]

	GridTemplateColumns []GridTrack
	GridTemplateRows    []GridTrack
	GridAutoColumns     []GridTrack
	GridAutoRows        []GridTrack
	GridAutoFlow        GridAutoFlow
	GridRow             GridLine
	GridColumn          GridLine
	GridTemplateAreas   []GridArea
}

// DefaultStyle returns the style a node starts with when nothing else is known.
func DefaultStyle() Style {
	zero := Rect[Dimension]{Left: Length(0), Right: Length(0), Top: Length(0), Bottom: Length(0)}
	return Style{
		Display:       DisplayFlex,
		Position:      PositionRelative,
		FlexDirection: FlexDirectionRow,
		FlexWrap:      FlexWrapNoWrap,
		FlexShrink:    1,
		FlexBasis:     Auto(),
		Margin:        zero,
		Padding:       zero,
		Border:        zero,
		Gap:           Size[Dimension]{Width: Length(0), Height: Length(0)},
		Size:          Size[Dimension]{Width: Auto(), Height: Auto()},
		MinSize:       Size[Dimension]{Width: Auto(), Height: Auto()},
	}
}

// Layout is the geometry of a node after a solve pass. The zero value is what
// an unsolved node reports.
type Layout struct {
	Left    float64
	Top     float64
	Width   float64
	Height  float64
	Padding Rect[float64]
	Border  Rect[float64]
}

type spaceKind uint8

const (
	spaceDefinite spaceKind = iota
	spaceMinContent
	spaceMaxContent
)

// AvailableSpace is the width (or height) offered to a node while solving.
type AvailableSpace struct {
	kind  spaceKind
	value float64
}

var (
	MinContent = AvailableSpace{kind: spaceMinContent}
	MaxContent = AvailableSpace{kind: spaceMaxContent}
)

// Definite returns an exact amount of space in cells.
func Definite(v float64) AvailableSpace {
	return AvailableSpace{kind: spaceDefinite, value: v}
}

func (a AvailableSpace) IsDefinite() bool   { return a.kind == spaceDefinite }
func (a AvailableSpace) IsMinContent() bool { return a.kind == spaceMinContent }
func (a AvailableSpace) IsMaxContent() bool { return a.kind == spaceMaxContent }

// Value is the definite amount; it is zero for the symbolic modes.
func (a AvailableSpace) Value() float64 { return a.value }

// MeasureFunc reports the intrinsic size of a leaf for the offered width.
type MeasureFunc func(width AvailableSpace) Size[float64]
