// Package lesson runs an ordered list of independent lessons.
//
// A lesson is a named function that prints to the Env it is handed. Lessons
// share no state: each one reads its inputs from Env.Config and writes to
// Env.Out. The Runner prints a numbered header before each lesson and stops
// at the first lesson that returns an error.
//
// Every log line emitted during a run carries the run's ID so the stderr
// log of one invocation can be told apart from the next.
package lesson
