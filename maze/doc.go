// Package maze adapts text mazes to the search package.
//
// A layout is a rectangle of tiles:
//
//	%  wall
//	P  agent start
//	.  target (food)
//	G  explicit goal cell
//	   (space) open floor
//
// PositionProblem routes the agent to a single goal cell, FoodProblem asks
// it to collect every target. Rows are numbered from the top, so North
// decreases Y.
package maze
