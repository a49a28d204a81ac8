// Package style holds the declarative style record of a node and translates it
// into the solver-native style.
package style

import (
	"strings"
)

// Style is a declarative style record keyed by property name. A key that is
// present with a nil value is "set but empty", which some properties resolve
// differently from an absent key.
type Style map[string]any

// Property names understood by Apply.
const (
	KeyTextWrap = "textWrap"
	KeyPosition = "position"

	KeyMargin       = "margin"
	KeyMarginX      = "marginX"
	KeyMarginY      = "marginY"
	KeyMarginTop    = "marginTop"
	KeyMarginBottom = "marginBottom"
	KeyMarginLeft   = "marginLeft"
	KeyMarginRight  = "marginRight"

	KeyPadding       = "padding"
	KeyPaddingX      = "paddingX"
	KeyPaddingY      = "paddingY"
	KeyPaddingTop    = "paddingTop"
	KeyPaddingBottom = "paddingBottom"
	KeyPaddingLeft   = "paddingLeft"
	KeyPaddingRight  = "paddingRight"

	KeyFlexGrow       = "flexGrow"
	KeyFlexShrink     = "flexShrink"
	KeyFlexDirection  = "flexDirection"
	KeyFlexBasis      = "flexBasis"
	KeyFlexWrap       = "flexWrap"
	KeyAlignItems     = "alignItems"
	KeyAlignSelf      = "alignSelf"
	KeyJustifyContent = "justifyContent"
	KeyAlignContent   = "alignContent"

	KeyWidth     = "width"
	KeyHeight    = "height"
	KeyMinWidth  = "minWidth"
	KeyMinHeight = "minHeight"

	KeyDisplay = "display"

	KeyBorderStyle  = "borderStyle"
	KeyBorderTop    = "borderTop"
	KeyBorderBottom = "borderBottom"
	KeyBorderLeft   = "borderLeft"
	KeyBorderRight  = "borderRight"

	KeyGap       = "gap"
	KeyColumnGap = "columnGap"
	KeyRowGap    = "rowGap"

	KeyOverflow  = "overflow"
	KeyOverflowX = "overflowX"
	KeyOverflowY = "overflowY"

	KeyGridTemplateColumns = "gridTemplateColumns"
	KeyGridTemplateRows    = "gridTemplateRows"
	KeyGridAutoColumns     = "gridAutoColumns"
	KeyGridAutoRows        = "gridAutoRows"
	KeyGridAutoFlow        = "gridAutoFlow"
	KeyGridRow             = "gridRow"
	KeyGridColumn          = "gridColumn"
	KeyGridTemplateAreas   = "gridTemplateAreas"
	KeyJustifyItems        = "justifyItems"
	KeyJustifySelf         = "justifySelf"
)

// Wrap policies accepted under KeyTextWrap.
const (
	WrapReflow         = "wrap"
	WrapTruncate       = "truncate"
	WrapTruncateStart  = "truncate-start"
	WrapTruncateMiddle = "truncate-middle"
	WrapTruncateEnd    = "truncate-end"
	WrapEnd            = "end"
	WrapMiddle         = "middle"
)

// Has reports whether key is present, even with a nil value.
func (s Style) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// TextWrap returns the configured wrap policy, or "" when unset.
func (s Style) TextWrap() string {
	v, _ := s[KeyTextWrap].(string)
	return strings.TrimSpace(v)
}

// Clone returns a shallow copy of s.
func (s Style) Clone() Style {
	if s == nil {
		return nil
	}
	out := make(Style, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// number reports v as a float64 when it holds any Go numeric kind.
func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// numberOr returns v as a number, or def when v is nil or not numeric.
func numberOr(v any, def float64) float64 {
	if n, ok := number(v); ok {
		return n
	}
	return def
}

func str(v any) string {
	s, _ := v.(string)
	return s
}
