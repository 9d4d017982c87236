package model

// Locator gives controllers and views access to the models of one game.
type Locator struct {
	Stage     Stage
	Player1   *Player
	Player2   *Player
	Ball      *Ball
	PlayState *PlayState
}

// NewLocator creates a fresh set of models for a stage of the given size.
// Models are never shared between locators.
func NewLocator(width, height int) *Locator {
	return &Locator{
		Stage:     Stage{Width: width, Height: height},
		Player1:   NewPlayer(),
		Player2:   NewPlayer(),
		Ball:      NewBall(),
		PlayState: NewPlayState(),
	}
}
