package controller_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/mo-shahab/go-pong-mvc/controller"
	"github.com/mo-shahab/go-pong-mvc/model"
	"github.com/mo-shahab/go-pong-mvc/test"
)

func TestStartUpPlacement(t *testing.T) {
	for _, dim := range [][2]int{{400, 300}, {401, 301}, {640, 480}, {61, 77}, {5, 39}, {9, 20}, {10, 40}} {
		w, h := dim[0], dim[1]
		t.Run(fmt.Sprintf("%dx%d", w, h), func(t *testing.T) {
			m := model.NewLocator(w, h)
			controller.NewStartUp(m).Execute()

			test.ExpectEquality(t, m.Ball.X(), int(math.Floor(float64(w-10)/2)))
			test.ExpectEquality(t, m.Ball.Y(), int(math.Floor(float64(h-10)/2)))
			test.ExpectEquality(t, m.Player1.X(), 0)
			test.ExpectEquality(t, m.Player1.Y(), int(math.Floor(float64(h-40)/2)))
			test.ExpectEquality(t, m.Player2.X(), w-10)
			test.ExpectEquality(t, m.Player2.Y(), int(math.Floor(float64(h-40)/2)))
			test.ExpectSuccess(t, m.PlayState.Running())
		})
	}
}

func TestStartUpSmallStage(t *testing.T) {
	m := model.NewLocator(5, 39)
	controller.NewStartUp(m).Execute()

	// odd negative offsets round down, not toward zero
	test.ExpectEquality(t, m.Ball.X(), -3)
	test.ExpectEquality(t, m.Ball.Y(), 14)
	test.ExpectEquality(t, m.Player1.Y(), -1)
	test.ExpectEquality(t, m.Player2.Y(), -1)
	test.ExpectEquality(t, m.Player2.X(), -5)
}

func TestMissResetSmallStage(t *testing.T) {
	m := model.NewLocator(5, 39)
	m.Ball.SetX(0)
	m.Ball.SetY(20)
	m.Ball.SetSpeed(2, 0)
	m.Player2.SetY(100)

	controller.NewBall(m).Execute()

	test.ExpectEquality(t, m.Ball.X(), -3)
	test.ExpectEquality(t, m.Ball.Y(), 14)
}

func TestVerticalReflection(t *testing.T) {
	const w, h = 400, 300

	for _, speed := range []int{2, -2} {
		for y := 0; y <= h-10; y++ {
			m := model.NewLocator(w, h)
			m.Ball.SetX(w / 2)
			m.Ball.SetY(y)
			m.Ball.SetSpeed(2, speed)

			controller.NewBall(m).Execute()

			ny := y + speed
			if ny <= 0 || ny >= h-10 {
				test.ExpectEquality(t, m.Ball.VSpeed(), -speed)
			} else {
				test.ExpectEquality(t, m.Ball.VSpeed(), speed)
			}
			test.ExpectEquality(t, m.Ball.Y(), ny)
		}
	}
}

func TestRightPaddleReturn(t *testing.T) {
	const w, h = 400, 300
	m := model.NewLocator(w, h)
	m.Player2.SetY(100)
	m.Ball.SetX(w - 11)
	m.Ball.SetY(110)
	m.Ball.SetSpeed(2, 0)

	controller.NewBall(m).Execute()

	test.ExpectEquality(t, m.Ball.HSpeed(), -2)
	test.ExpectEquality(t, m.Ball.X(), w-9)
	test.ExpectEquality(t, m.Ball.Y(), 110)
}

func TestRightPaddleMiss(t *testing.T) {
	const w, h = 400, 300
	m := model.NewLocator(w, h)
	m.Player2.SetY(100)
	m.Ball.SetX(w - 11)
	m.Ball.SetY(200)
	m.Ball.SetSpeed(2, 0)

	controller.NewBall(m).Execute()

	test.ExpectEquality(t, m.Ball.HSpeed(), 2)
	test.ExpectEquality(t, m.Ball.X(), (w-10)/2)
	test.ExpectEquality(t, m.Ball.Y(), (h-10)/2)
}

func TestCollisionSpanEdges(t *testing.T) {
	const w, h = 400, 300

	// the window is paddle.y to paddle.y+30 inclusive
	for _, c := range []struct {
		y      int
		bounce bool
	}{
		{99, false}, {100, true}, {130, true}, {131, false}, {139, false},
	} {
		m := model.NewLocator(w, h)
		m.Player1.SetY(100)
		m.Ball.SetX(12)
		m.Ball.SetY(c.y)
		m.Ball.SetSpeed(-2, 0)

		controller.NewBall(m).Execute()

		if c.bounce {
			test.ExpectEquality(t, m.Ball.HSpeed(), 2)
			test.ExpectEquality(t, m.Ball.X(), 10)
		} else {
			test.ExpectEquality(t, m.Ball.HSpeed(), -2)
			test.ExpectEquality(t, m.Ball.X(), (w-10)/2)
		}
	}
}

func TestComputerPaddleTracking(t *testing.T) {
	const w, h = 400, 300
	m := model.NewLocator(w, h)
	m.Ball.SetX(w / 2)
	m.Ball.SetY(143)
	m.Ball.SetSpeed(2, 2)

	controller.NewBall(m).Execute()

	// 145 / 290 * 260
	test.ExpectEquality(t, m.Player2.Y(), 130)

	m.Ball.SetY(288)
	m.Ball.SetSpeed(2, 2)
	controller.NewBall(m).Execute()
	test.ExpectEquality(t, m.Player2.Y(), h-40)
}

func TestKeyDownClamp(t *testing.T) {
	const w, h = 400, 300
	m := model.NewLocator(w, h)
	m.Player1.SetY(h - 40)

	down := controller.NewKeyDown(m)
	for i := 0; i < 50; i++ {
		down.Execute()
	}
	test.ExpectEquality(t, m.Player1.Y(), h-40)

	m.Player1.SetY(h - 45)
	for i := 0; i < 50; i++ {
		down.Execute()
	}
	test.ExpectEquality(t, m.Player1.Y(), h-40)
}

func TestKeyUpClamp(t *testing.T) {
	m := model.NewLocator(400, 300)
	m.Player1.SetY(0)

	up := controller.NewKeyUp(m)
	for i := 0; i < 50; i++ {
		up.Execute()
	}
	test.ExpectEquality(t, m.Player1.Y(), 0)

	m.Player1.SetY(3)
	up.Execute()
	test.ExpectEquality(t, m.Player1.Y(), 2)
}
