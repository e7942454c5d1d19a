package platform

import "github.com/BurntSushi/xgb/xproto"

// stackMode maps a ZOrder to the X11 ConfigureWindow stack mode.
func (z ZOrder) stackMode() uint32 {
	if z == ZOrderBottom {
		return uint32(xproto.StackModeBelow)
	}
	return uint32(xproto.StackModeAbove)
}

// configureRequest encodes a placement as a ConfigureWindow value mask and
// value list. Coordinates are sent as-is; the server rejects what it cannot
// use.
func configureRequest(p Placement) (uint16, []uint32) {
	var (
		mask   uint16
		values []uint32
	)
	if !p.Flags.Has(FlagNoMove) {
		mask |= xproto.ConfigWindowX | xproto.ConfigWindowY
		values = append(values, uint32(int32(p.Bounds.X)), uint32(int32(p.Bounds.Y)))
	}
	if !p.Flags.Has(FlagNoSize) {
		mask |= xproto.ConfigWindowWidth | xproto.ConfigWindowHeight
		values = append(values, uint32(int32(p.Bounds.Width)), uint32(int32(p.Bounds.Height)))
	}
	if !p.Flags.Has(FlagNoZOrder) {
		mask |= xproto.ConfigWindowStackMode
		values = append(values, p.ZOrder.stackMode())
	}
	return mask, values
}

// moveResizeHint reports whether a placement should also be announced to the
// window manager with _NET_MOVERESIZE_WINDOW. Only full geometry is sent;
// the EWMH request drops zero sizes.
func moveResizeHint(p Placement) (Rect, bool) {
	if p.Flags.Has(FlagNoMove) || p.Flags.Has(FlagNoSize) {
		return Rect{}, false
	}
	if p.Bounds.Width <= 0 || p.Bounds.Height <= 0 {
		return Rect{}, false
	}
	return p.Bounds, true
}
