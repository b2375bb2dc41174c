package randengine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/traffictimer/intersection-sim/utils/randengine"
)

func TestRangeSafe(t *testing.T) {
	e := randengine.New(42)
	for range 1000 {
		v := e.RangeSafe(25, 35)
		assert.GreaterOrEqual(t, v, int32(25))
		assert.Less(t, v, int32(35))
	}
}

func TestSameSeedSameSequence(t *testing.T) {
	a, b := randengine.New(7), randengine.New(7)
	for range 100 {
		assert.Equal(t, a.IntnSafe(1000), b.IntnSafe(1000))
	}
}
