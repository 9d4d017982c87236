package game

import "fmt"

// GameStateSnapshot represents a point-in-time snapshot of game state
type GameStateSnapshot struct {
	BallX, BallY   int
	BallHSpeed     int
	BallVSpeed     int
	LeftPaddlePos  int
	RightPaddlePos int
	Running        bool
}

func (s GameStateSnapshot) String() string {
	return fmt.Sprintf("ball (%d,%d) speed (%d,%d) paddles %d/%d running %v",
		s.BallX, s.BallY, s.BallHSpeed, s.BallVSpeed,
		s.LeftPaddlePos, s.RightPaddlePos, s.Running)
}

// Options changes the starting conditions of a game. The zero value uses the
// model defaults.
type Options struct {
	BallHSpeed int
	BallVSpeed int
}
