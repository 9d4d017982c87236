package controller

import (
	"math"

	"github.com/mo-shahab/go-pong-mvc/model"
)

// Ball moves the ball one step, bounces it off the walls and paddles and
// moves the computer controlled paddle.
type Ball struct {
	models *model.Locator
}

// NewBall is the preferred method of initialisation for Ball.
func NewBall(models *model.Locator) *Ball {
	return &Ball{models: models}
}

// Execute implements the Controller interface.
func (c *Ball) Execute() {
	stage := c.models.Stage
	ball := c.models.Ball

	ball.SetX(ball.X() + ball.HSpeed())
	ball.SetY(ball.Y() + ball.VSpeed())

	// top and bottom walls. the ball is not moved back inside the stage
	if ball.Y() <= 0 || ball.Y() >= stage.Height-model.BallSize {
		ball.InvertVSpeed()
	}

	if ball.X() > stage.Width-model.BallSize {
		c.returnOrReset(c.models.Player2)
	} else if ball.X() <= model.PaddleWidth {
		c.returnOrReset(c.models.Player1)
	}

	c.track()
}

// returnOrReset bounces the ball if the paddle covers it. Otherwise the point
// is lost and the ball goes back to the center.
func (c *Ball) returnOrReset(paddle *model.Player) {
	ball := c.models.Ball
	if ball.Y() >= paddle.Y() && ball.Y() <= paddle.Y()+model.CollisionSpan {
		ball.InvertHSpeed()
		return
	}
	x, y := center(c.models.Stage)
	ball.SetX(x)
	ball.SetY(y)
}

// track moves the second paddle to the ball's relative height, scaled to the
// paddle's range of travel.
func (c *Ball) track() {
	stage := c.models.Stage
	span := stage.Height - model.BallSize
	if span <= 0 {
		return
	}
	rel := float64(c.models.Ball.Y()) / float64(span)
	c.models.Player2.SetY(int(math.Floor(rel * float64(stage.Height-model.PaddleHeight))))
}
