package controller

import "github.com/mo-shahab/go-pong-mvc/model"

// KeyUp moves the first paddle up by one unit, stopping at the top edge.
type KeyUp struct {
	models *model.Locator
}

// NewKeyUp is the preferred method of initialisation for KeyUp.
func NewKeyUp(models *model.Locator) *KeyUp {
	return &KeyUp{models: models}
}

// Execute implements the Controller interface.
func (c *KeyUp) Execute() {
	p := c.models.Player1
	if p.Y() > 0 {
		p.SetY(p.Y() - 1)
	}
}

// KeyDown moves the first paddle down by one unit, stopping at the bottom
// edge.
type KeyDown struct {
	models *model.Locator
}

// NewKeyDown is the preferred method of initialisation for KeyDown.
func NewKeyDown(models *model.Locator) *KeyDown {
	return &KeyDown{models: models}
}

// Execute implements the Controller interface.
func (c *KeyDown) Execute() {
	p := c.models.Player1
	if p.Y() < c.models.Stage.Height-model.PaddleHeight {
		p.SetY(p.Y() + 1)
	}
}
