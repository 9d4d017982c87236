// Command pong-desktop plays the game in a native window.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/mo-shahab/go-pong-mvc/canvas"
	"github.com/mo-shahab/go-pong-mvc/config"
	"github.com/mo-shahab/go-pong-mvc/game"
	"github.com/mo-shahab/go-pong-mvc/scheduler"
	"github.com/mo-shahab/go-pong-mvc/view"
)

// arrow keys and the key codes the view expects for them
var keyCodes = map[ebiten.Key]int{
	ebiten.KeyArrowUp:   view.KeyCodeUp,
	ebiten.KeyArrowDown: view.KeyCodeDown,
}

// Game implements ebiten.Game. The game runs on a manual scheduler that is
// advanced from Update, so all model mutation happens on ebiten's update
// goroutine.
type Game struct {
	cfg    config.Config
	canvas *canvas.Canvas
	sched  *scheduler.Manual
	pong   *game.Pong
}

func newGame(cfg config.Config) *Game {
	g := &Game{
		cfg:    cfg,
		canvas: canvas.New(cfg.Width, cfg.Height),
		sched:  &scheduler.Manual{},
	}
	g.pong = game.New(g.canvas, cfg.Width, cfg.Height, g.sched, game.Options{
		BallHSpeed: cfg.BallHSpeed,
		BallVSpeed: cfg.BallVSpeed,
	})
	g.pong.Start()
	return g
}

func (g *Game) Update() error {
	for key, code := range keyCodes {
		if inpututil.IsKeyJustPressed(key) {
			g.pong.KeyDown(code)
		}
		if inpututil.IsKeyJustReleased(key) {
			g.pong.KeyUp(code)
		}
	}
	g.sched.Advance(g.cfg.TicksPerFrame)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	canvas.Replay(g.canvas.Frame(), &surface{img: screen})
	g.canvas.MarkClean()
}

func (g *Game) Layout(w, h int) (int, int) { return g.cfg.Width, g.cfg.Height }

func main() {
	configPath := flag.String("config", "pong.toml", "path to the configuration file")
	scale := flag.Int("scale", 2, "window scale")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	ebiten.SetWindowSize(cfg.Width*(*scale), cfg.Height*(*scale))
	ebiten.SetWindowTitle("Pong")

	log.Println("Desktop main() starting...")
	if err := ebiten.RunGame(newGame(cfg)); err != nil {
		log.Fatal(err)
	}
}
