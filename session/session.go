// Package session runs one game per websocket client. Each session owns its
// models, its scheduler loop and its canvas; nothing is shared between
// sessions.
package session

import (
	"context"
	"log"
	"sync/atomic"

	"github.com/mo-shahab/go-pong-mvc/canvas"
	"github.com/mo-shahab/go-pong-mvc/client"
	"github.com/mo-shahab/go-pong-mvc/config"
	"github.com/mo-shahab/go-pong-mvc/game"
	pb "github.com/mo-shahab/go-pong-mvc/proto"
	"github.com/mo-shahab/go-pong-mvc/scheduler"
)

// Session is a running game and the client it draws for.
type Session struct {
	ID     string
	Client *client.Client
	Game   *game.Pong
	Canvas *canvas.Canvas
	Loop   *scheduler.Loop

	ctx     context.Context
	cancel  context.CancelFunc
	done    chan struct{}
	started atomic.Bool
}

func newSession(id string, c *client.Client, cfg config.Config) *Session {
	ctx, cancel := context.WithCancel(context.Background())

	s := &Session{
		ID:     id,
		Client: c,
		Canvas: canvas.New(cfg.Width, cfg.Height),
		Loop:   scheduler.NewLoop(cfg.TickInterval.Duration),
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	s.Game = game.New(s.Canvas, cfg.Width, cfg.Height, s.Loop, game.Options{
		BallHSpeed: cfg.BallHSpeed,
		BallVSpeed: cfg.BallVSpeed,
	})
	s.Loop.OnTick = s.flush

	return s
}

// Start runs the loop and starts the game.
func (s *Session) Start() {
	if !s.started.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer close(s.done)
		s.Loop.Run(s.ctx)
	}()
	s.post(func() {
		s.Game.Start()
		s.flush()
	})
}

// KeyDown passes a key press to the game.
func (s *Session) KeyDown(code int) {
	s.post(func() { s.Game.KeyDown(code) })
}

// KeyUp passes a key release to the game.
func (s *Session) KeyUp(code int) {
	s.post(func() { s.Game.KeyUp(code) })
}

// Snapshot returns the game state. It is read on the loop goroutine; if the
// session has stopped the final state is returned. It must only be called
// after Start.
func (s *Session) Snapshot() game.GameStateSnapshot {
	result := make(chan game.GameStateSnapshot, 1)
	if s.post(func() { result <- s.Game.Snapshot() }) {
		select {
		case snap := <-result:
			return snap
		case <-s.done:
		}
	}
	<-s.done
	return s.Game.Snapshot()
}

// stop ends the loop and releases the game. It blocks until the loop has
// returned.
func (s *Session) stop() {
	s.cancel()
	if s.started.Load() {
		<-s.done
	}
	s.Game.Close()
}

func (s *Session) post(fn func()) bool {
	return s.Loop.Post(s.ctx, fn)
}

// flush sends the latest frame to the client if anything was redrawn since
// the last flush.
func (s *Session) flush() {
	if !s.Canvas.Dirty() {
		return
	}
	s.Canvas.MarkClean()

	msg, err := pb.Marshal(&pb.Message{
		Type:  pb.MsgTypeFrame,
		Frame: s.Canvas.Frame(),
	})
	if err != nil {
		log.Printf("Failed to encode frame for session %s: %v", s.ID, err)
		return
	}
	s.Client.Send(msg)
}
