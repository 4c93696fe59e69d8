package hockey_test

import (
	"fmt"

	"github.com/plus3/puckstick/hockey"
)

func ExampleWorld_Run() {
	world := hockey.NewWorld(hockey.DefaultConfig())
	world.OnGameOver(func(s hockey.Snapshot) {
		fmt.Printf("game over at tick %d, puck (%g, %g)\n", s.Session.Ticks, s.Puck.X, s.Puck.Y)
	})

	ticks := world.Run(0)
	fmt.Println(ticks, world.Over())

	world.Reset()
	fmt.Println(world.Session().State)
	// Output:
	// game over at tick 48, puck (492, 392)
	// 48 true
	// running
}

func ExampleApplyKey() {
	paddle := hockey.Paddle{Speed: 7}

	hockey.ApplyKey(&paddle, hockey.KeyEvent{Dir: hockey.Right, Pressed: true})
	fmt.Println(paddle.DX)

	// Releasing the other direction does not stop the paddle.
	hockey.ApplyKey(&paddle, hockey.KeyEvent{Dir: hockey.Left, Pressed: false})
	fmt.Println(paddle.DX)

	hockey.ApplyKey(&paddle, hockey.KeyEvent{Dir: hockey.Right, Pressed: false})
	fmt.Println(paddle.DX)
	// Output:
	// 7
	// 7
	// 0
}
