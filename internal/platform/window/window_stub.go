//go:build !ebiten

package window

import (
	"errors"

	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

// ErrUnsupported is returned when the binary was built without the
// "ebiten" tag.
var ErrUnsupported = errors.New("window: built without ebiten support, rebuild with -tags ebiten")

// Run always fails in builds without a window driver.
func Run(*frogger.Game, *storage.Store, Options) error {
	return ErrUnsupported
}
