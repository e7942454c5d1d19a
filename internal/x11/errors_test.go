package x11

import (
	"errors"
	"fmt"
	"testing"

	"github.com/BurntSushi/xgb/xproto"
)

func TestErrorCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"request", xproto.RequestError{}, 1},
		{"value", xproto.ValueError{}, 2},
		{"window", xproto.WindowError{}, 3},
		{"pixmap", xproto.PixmapError{}, 4},
		{"atom", xproto.AtomError{}, 5},
		{"cursor", xproto.CursorError{}, 6},
		{"font", xproto.FontError{}, 7},
		{"match", xproto.MatchError{}, 8},
		{"drawable", xproto.DrawableError{}, 9},
		{"access", xproto.AccessError{}, 10},
		{"alloc", xproto.AllocError{}, 11},
		{"colormap", xproto.ColormapError{}, 12},
		{"gcontext", xproto.GContextError{}, 13},
		{"id choice", xproto.IDChoiceError{}, 14},
		{"name", xproto.NameError{}, 15},
		{"length", xproto.LengthError{}, 16},
		{"implementation", xproto.ImplementationError{}, 17},
		{"wrapped", fmt.Errorf("configure: %w", xproto.WindowError{}), 3},
		{"plain", errors.New("connection reset"), 0},
		{"nil", nil, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ErrorCode(tc.err); got != tc.want {
				t.Fatalf("ErrorCode(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}
