// Package builder_test contains unit tests for the WeightFn implementations
// and the weight policy options.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mstwalk/builder"
)

// TestWeightFnConstructors verifies that WeightFn and option constructors
// panic on invalid parameters.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func()
	}{
		{"ConstantWeightFn_negative", func() { builder.ConstantWeightFn(-1) }},
		{"UniformWeightFn_minNegative", func() { builder.UniformWeightFn(-1, 5) }},
		{"UniformWeightFn_maxLessThanMin", func() { builder.UniformWeightFn(5, 4) }},
		{"WithWeightFn_nil", func() { builder.WithWeightFn(nil) }},
		{"WithRand_nil", func() { builder.WithRand(nil) }},
		{"WithPoints_empty", func() { builder.WithPoints(nil) }},
	}

	for _, tc := range tests {
		tc := tc // capture range variable
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, tc.fn, tc.name)
		})
	}
}

// TestWeightFnBehavior covers the runtime behavior of each WeightFn:
//   - DefaultWeightFn always returns DefaultEdgeWeight.
//   - ConstantWeightFn returns the fixed value.
//   - UniformWeightFn returns DefaultEdgeWeight on nil RNG, and [min,max) otherwise.
func TestWeightFnBehavior(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))

	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(rng))

	const constVal = 7.0
	wfnConst := builder.ConstantWeightFn(constVal)
	assert.Equal(t, constVal, wfnConst(nil))
	assert.Equal(t, constVal, wfnConst(rng))

	wfnDegenerate := builder.UniformWeightFn(3, 3)
	assert.Equal(t, builder.DefaultEdgeWeight, wfnDegenerate(nil))
	assert.Equal(t, 3.0, wfnDegenerate(rng))

	wfnUni := builder.UniformWeightFn(2, 5)
	for i := 0; i < 100; i++ {
		w := wfnUni(rng)
		assert.GreaterOrEqual(t, w, 2.0)
		assert.Less(t, w, 5.0)
	}
}
