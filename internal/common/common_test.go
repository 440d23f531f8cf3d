package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPtr(t *testing.T) {
	type sample struct {
		A int
		B string
	}

	assert.Equal(t, 42, *Ptr(42))
	assert.Equal(t, "hello", *Ptr("hello"))
	assert.Equal(t, sample{A: 1, B: "test"}, *Ptr(sample{A: 1, B: "test"}))
	assert.Equal(t, 0.2, *Ptr(0.2))
}

func TestValueOr(t *testing.T) {
	tests := map[string]struct {
		p        *int
		fallback int
		want     int
	}{
		"nil-uses-fallback": {p: nil, fallback: 256, want: 256},
		"set-value-wins":    {p: Ptr(64), fallback: 256, want: 64},
		"zero-is-a-value":   {p: Ptr(0), fallback: 256, want: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValueOr(tt.p, tt.fallback))
		})
	}
}
