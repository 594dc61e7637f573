// Package generator builds random sample input for the calculator.
package generator

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const (
	minValue = 1
	maxValue = 100
)

// Generator produces randomized number lists.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a deterministic Generator.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Numbers returns count whole numbers drawn uniformly from [1, 100].
func (g *Generator) Numbers(count int) []float64 {
	if count <= 0 {
		return nil
	}
	result := make([]float64, 0, count)
	for i := 0; i < count; i++ {
		result = append(result, float64(minValue+g.rnd.Intn(maxValue-minValue+1)))
	}
	return result
}

// Text renders Numbers(count) as a comma separated line.
func (g *Generator) Text(count int) string {
	nums := g.Numbers(count)
	parts := make([]string, len(nums))
	for i, v := range nums {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ", ")
}

// Between returns a whole number in [lo, hi].
func (g *Generator) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rnd.Intn(hi-lo+1)
}
