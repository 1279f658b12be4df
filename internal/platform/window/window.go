//go:build ebiten

package window

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

var moveKeys = map[core.Action][]ebiten.Key{
	core.ActionUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	core.ActionDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
	core.ActionLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight: {ebiten.KeyArrowRight, ebiten.KeyD},
}

// driver adapts a frogger game to the ebiten.Game interface.
type driver struct {
	game    *frogger.Game
	store   *storage.Store
	runtime core.RuntimeConfig
	player  string
	logger  *log.Logger
	saved   bool
}

// Run opens a window and plays until the player closes it.
func Run(game *frogger.Game, store *storage.Store, opts Options) error {
	opts = opts.withDefaults()

	d := &driver{
		game:  game,
		store: store,
		runtime: core.RuntimeConfig{
			TickRate: opts.TickRate,
			Seed:     opts.Seed,
		},
		player: opts.Player,
		logger: log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "frogger-window",
		}),
	}
	d.reset()

	size := game.Session().Size()
	ebiten.SetWindowSize(int(size.X)*opts.Scale, int(size.Y)*opts.Scale)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(opts.TickRate)

	d.logger.Info("window opened", "tps", opts.TickRate, "scale", opts.Scale)
	return ebiten.RunGame(d)
}

func (d *driver) reset() {
	cfg := d.runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	d.game.Reset(cfg)
	d.saved = false
}

// Update runs one tick. Ebiten calls it TickRate times per second.
func (d *driver) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		d.save()
		return ebiten.Termination
	}

	if d.game.State().GameOver {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			d.reset()
		}
		return nil
	}

	frame := heldFrame(func(a core.Action) bool {
		for _, k := range moveKeys[a] {
			if ebiten.IsKeyPressed(k) {
				return true
			}
		}
		return false
	})
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		frame.Set(core.ActionPause)
	}

	if st := d.game.Step(frame).State; st.GameOver {
		d.logger.Info("run finished", "score", st.Score, "homes", st.Progress, "won", st.Won)
		d.save()
	}
	return nil
}

func (d *driver) save() {
	st := d.game.State()
	if d.saved || d.store == nil || st.Score <= 0 {
		return
	}
	if _, err := d.store.SaveResult(storage.ResultFromState(d.game.ID(), d.player, st)); err != nil {
		d.logger.Warn("could not save run", "error", err)
	}
	d.saved = true
}

// Draw paints the scenery, the actors in spawn order, the home slots and
// the HUD.
func (d *driver) Draw(screen *ebiten.Image) {
	s := d.game.Session()
	size := s.Size()

	screen.Fill(colorRoad)
	for _, b := range frogger.Scenery(size.Y) {
		vector.FillRect(screen, 0, float32(b.Top), float32(size.X), float32(b.Bottom-b.Top), terrainColors[b.Terrain], false)
	}

	for _, a := range s.Actors() {
		c, ok := actorColor(a)
		if !ok {
			continue
		}
		pos, sz := a.Pos(), a.Size()
		vector.FillRect(screen, float32(pos.X), float32(pos.Y), float32(sz.X), float32(sz.Y), c, false)
	}

	wins := s.Hero().Wins()
	for i := 0; i < frogger.WinSlots; i++ {
		slot := frogger.WinSlot(i)
		c := colorSlot
		if wins[i] {
			c = spriteColors[frogger.SpriteFrogHome]
		}
		vector.FillRect(screen, float32(slot.X), float32(slot.Y), float32(slot.W), float32(slot.H), c, false)
	}

	st := d.game.State()
	ebitenutil.DebugPrintAt(screen, hudText(st), 4, 4)
	if msg := banner(st); msg != "" {
		y := int(size.Y)/2 - 12
		vector.FillRect(screen, 0, float32(y), float32(size.X), 24, colorShade, false)
		ebitenutil.DebugPrintAt(screen, msg, (int(size.X)-len(msg)*6)/2, y+4)
	}
}

// Layout keeps the logical screen at arena resolution; Ebiten scales it
// to the window.
func (d *driver) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := d.game.Session().Size()
	return int(size.X), int(size.Y)
}
