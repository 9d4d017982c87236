package controller

import "github.com/mo-shahab/go-pong-mvc/model"

// StartUp places the ball and paddles and then starts play. It is run once.
type StartUp struct {
	models *model.Locator
}

// NewStartUp is the preferred method of initialisation for StartUp.
func NewStartUp(models *model.Locator) *StartUp {
	return &StartUp{models: models}
}

// Execute implements the Controller interface.
func (c *StartUp) Execute() {
	stage := c.models.Stage

	x, y := center(stage)
	c.models.Ball.SetX(x)
	c.models.Ball.SetY(y)

	c.models.Player1.SetX(0)
	c.models.Player1.SetY(paddleTop(stage))

	c.models.Player2.SetX(stage.Width - model.PaddleWidth)
	c.models.Player2.SetY(paddleTop(stage))

	// the view reacts to this by starting the ball loop
	c.models.PlayState.SetState(true)
}
