// Package ui provides theme and color support for the simulator's terminal
// output. It defines the color scheme shared by the result presenters and
// the sweep summaries, so loss figures, fiber names, and status lines are
// styled consistently, and honors NO_COLOR through theme initialization.
package ui
