package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepeats(t *testing.T) {
	tests := []struct {
		name     string
		duration int
		want     bool
	}{
		{name: "first tick", duration: 1, want: true},
		{name: "held before delay", duration: 2, want: false},
		{name: "at delay", duration: RepeatDelay, want: false},
		{name: "first repeat", duration: RepeatDelay + RepeatInterval, want: true},
		{name: "between repeats", duration: RepeatDelay + RepeatInterval + 1, want: false},
		{name: "second repeat", duration: RepeatDelay + 2*RepeatInterval, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Repeats(tt.duration))
		})
	}
}

func TestBindingsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, b := range bindings {
		for _, key := range b.keys {
			assert.False(t, seen[key.String()], "key %s bound twice", key)
			seen[key.String()] = true
		}
	}
}
