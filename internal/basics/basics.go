// Package basics covers output formatting, branching and looping.
//
// Every function here is pure: it takes literal inputs and returns the lines
// the tour prints, so the control flow can be tested without capturing
// stdout.
package basics

import "fmt"

// Pi is the constant the output lesson prints.
const Pi = 3.14159

// AdultAge is the age at which a person counts as an adult.
const AdultAge = 18

// Profile is the set of scalar variables the output lesson interpolates.
type Profile struct {
	Name    string
	Age     int
	Height  float64
	Student bool
}

// Introduce renders p as a single sentence.
func Introduce(p Profile) string {
	return fmt.Sprintf("My name is %s, I am %d years old, and my height is %v feet.", p.Name, p.Age, p.Height)
}

// StudentStatus reports the boolean flag in words.
func StudentStatus(p Profile) string {
	if p.Student {
		return p.Name + " is a student."
	}
	return p.Name + " is not a student."
}

// AgeStatus is the plain if/else branch.
func AgeStatus(age int) string {
	if age >= AdultAge {
		return "You are an adult."
	} else {
		return "You are a minor."
	}
}

// NestedStatus branches twice. Non-positive ages produce no message.
func NestedStatus(age int) (string, bool) {
	if age > 0 {
		if age < AdultAge {
			return "You are a child.", true
		}
		return "You are an adult.", true
	}
	return "", false
}

// AgeLabel is the conditional-expression form of AgeStatus. Go has no
// ternary operator, so the default is assigned first and overridden.
func AgeLabel(age int) string {
	label := "Minor"
	if age >= AdultAge {
		label = "Adult"
	}
	return label
}

// GradeMessage is the multi-way branch.
func GradeMessage(grade string) string {
	switch grade {
	case "A":
		return "Excellent!"
	case "B":
		return "Good Job!"
	default:
		return "Keep Trying!"
	}
}

// Iterations is the counted loop: one line per i in [1, n].
func Iterations(n int) []string {
	var lines []string
	for i := 1; i <= n; i++ {
		lines = append(lines, fmt.Sprintf("Iteration %d", i))
	}
	return lines
}

// CountUp is the pre-test loop. The condition is checked before every pass,
// so a limit below 1 yields nothing.
func CountUp(limit int) []string {
	var lines []string
	counter := 1
	for counter <= limit {
		lines = append(lines, fmt.Sprintf("Counter is at %d", counter))
		counter++
	}
	return lines
}

// Countdown is the post-test loop. The body always runs once, even when from
// is already at or below zero.
func Countdown(from int) []string {
	var lines []string
	counter := from
	for {
		lines = append(lines, fmt.Sprintf("Counter is %d", counter))
		counter--
		if counter <= 0 {
			break
		}
	}
	return lines
}

// Each is the range loop over a sequence.
func Each(items []string, fn func(i int, item string)) {
	for i, item := range items {
		fn(i, item)
	}
}
