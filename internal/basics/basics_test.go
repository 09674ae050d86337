package basics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntroduce(t *testing.T) {
	p := Profile{Name: "John", Age: 25, Height: 5.9, Student: true}
	assert.Equal(t, "My name is John, I am 25 years old, and my height is 5.9 feet.", Introduce(p))
	assert.Equal(t, "John is a student.", StudentStatus(p))

	p.Student = false
	assert.Equal(t, "John is not a student.", StudentStatus(p))
}

func TestAgeBranches(t *testing.T) {
	tests := []struct {
		age    int
		status string
		label  string
		nested string
		ok     bool
	}{
		{25, "You are an adult.", "Adult", "You are an adult.", true},
		{18, "You are an adult.", "Adult", "You are an adult.", true},
		{17, "You are a minor.", "Minor", "You are a child.", true},
		{0, "You are a minor.", "Minor", "", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, AgeStatus(tt.age), "AgeStatus(%d)", tt.age)
		assert.Equal(t, tt.label, AgeLabel(tt.age), "AgeLabel(%d)", tt.age)

		nested, ok := NestedStatus(tt.age)
		assert.Equal(t, tt.ok, ok, "NestedStatus(%d) ok", tt.age)
		assert.Equal(t, tt.nested, nested, "NestedStatus(%d)", tt.age)
	}
}

func TestGradeMessage(t *testing.T) {
	assert.Equal(t, "Excellent!", GradeMessage("A"))
	assert.Equal(t, "Good Job!", GradeMessage("B"))
	assert.Equal(t, "Keep Trying!", GradeMessage("C"))
	assert.Equal(t, "Keep Trying!", GradeMessage(""))
}

func TestIterations(t *testing.T) {
	assert.Equal(t, []string{"Iteration 1", "Iteration 2", "Iteration 3"}, Iterations(3))
	assert.Empty(t, Iterations(0))
}

func TestCountUp(t *testing.T) {
	assert.Equal(t, []string{"Counter is at 1", "Counter is at 2", "Counter is at 3"}, CountUp(3))
	assert.Empty(t, CountUp(0))
}

func TestCountdown(t *testing.T) {
	assert.Equal(t, []string{"Counter is 3", "Counter is 2", "Counter is 1"}, Countdown(3))
}

func TestCountdown_RunsAtLeastOnce(t *testing.T) {
	assert.Equal(t, []string{"Counter is 0"}, Countdown(0))
}

func TestEach(t *testing.T) {
	var got []string
	Each([]string{"Apple", "Banana"}, func(i int, item string) {
		got = append(got, item)
	})
	assert.Equal(t, []string{"Apple", "Banana"}, got)
}
