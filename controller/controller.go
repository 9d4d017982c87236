// Package controller contains the operations that change the models. Each
// controller reads and writes models through a model.Locator and is run
// either once (StartUp) or once per tick (Ball, KeyUp, KeyDown).
package controller

import "github.com/mo-shahab/go-pong-mvc/model"

// Controller is a single operation on the models.
type Controller interface {
	Execute()
}

// half rounds down, including for negative n where n/2 would round toward zero.
func half(n int) int {
	return n >> 1
}

// center returns the position that places the ball in the middle of the stage.
func center(stage model.Stage) (int, int) {
	return half(stage.Width - model.BallSize), half(stage.Height - model.BallSize)
}

// paddleTop returns the y position that centers a paddle vertically.
func paddleTop(stage model.Stage) int {
	return half(stage.Height - model.PaddleHeight)
}
