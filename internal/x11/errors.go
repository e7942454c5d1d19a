package x11

import (
	"errors"

	"github.com/BurntSushi/xgb/xproto"
)

// ErrorCode returns the core X11 error number for an error returned by a
// checked request, or 0 when err is not an X11 protocol error. Wrapped
// errors are unwrapped.
func ErrorCode(err error) int {
	for ; err != nil; err = errors.Unwrap(err) {
		if code := errorNumber(err); code != 0 {
			return code
		}
	}
	return 0
}

func errorNumber(err error) int {
	switch err.(type) {
	case xproto.RequestError:
		return xproto.BadRequest
	case xproto.ValueError:
		return xproto.BadValue
	case xproto.WindowError:
		return xproto.BadWindow
	case xproto.PixmapError:
		return xproto.BadPixmap
	case xproto.AtomError:
		return xproto.BadAtom
	case xproto.CursorError:
		return xproto.BadCursor
	case xproto.FontError:
		return xproto.BadFont
	case xproto.MatchError:
		return xproto.BadMatch
	case xproto.DrawableError:
		return xproto.BadDrawable
	case xproto.AccessError:
		return xproto.BadAccess
	case xproto.AllocError:
		return xproto.BadAlloc
	case xproto.ColormapError:
		return xproto.BadColormap
	case xproto.GContextError:
		return xproto.BadGContext
	case xproto.IDChoiceError:
		return xproto.BadIDChoice
	case xproto.NameError:
		return xproto.BadName
	case xproto.LengthError:
		return xproto.BadLength
	case xproto.ImplementationError:
		return xproto.BadImplementation
	default:
		return 0
	}
}
