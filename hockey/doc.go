// Package hockey is a single-player paddle and puck game.
//
// The player slides a paddle along the bottom of a fixed field to keep a
// bouncing puck in play. The session ends the first time the puck leaves
// through the bottom edge. All state lives in an ecs.Storage and each tick is
// one pass of an ecs.Scheduler, so the game runs the same with or without a
// window.
package hockey
