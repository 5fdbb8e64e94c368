package network

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestSigmoidMap(t *testing.T) {
	values := mat.NewDense(1, 3, []float64{-2, 0, 2})
	out := Sigmoid{}.Map(values)

	assert.InDelta(t, 0.1192, out.At(0, 0), 1e-4)
	assert.Equal(t, 0.5, out.At(0, 1))
	assert.InDelta(t, 0.8808, out.At(0, 2), 1e-4)
	// 输入不被修改
	assert.Equal(t, -2.0, values.At(0, 0))
}

// 输出在 (0, 1) 内且单调递增
func TestSigmoidRangeAndMonotonic(t *testing.T) {
	data := make([]float64, 0, 121)
	for v := -30.0; v <= 30.0; v += 0.5 {
		data = append(data, v)
	}
	out := Sigmoid{}.Map(mat.NewDense(1, len(data), data))

	prev := math.Inf(-1)
	for j := range data {
		got := out.At(0, j)
		require.Greater(t, got, 0.0, "sigmoid(%v)", data[j])
		require.Less(t, got, 1.0, "sigmoid(%v)", data[j])
		require.GreaterOrEqual(t, got, prev, "sigmoid(%v)", data[j])
		prev = got
	}
}

// 很大的负数溢出为 0，不会 panic
func TestSigmoidOverflow(t *testing.T) {
	out := Sigmoid{}.Map(mat.NewDense(1, 2, []float64{-1000, 1000}))
	assert.Equal(t, 0.0, out.At(0, 0))
	assert.Equal(t, 1.0, out.At(0, 1))
}

func TestSigmoidDerivativeIgnoresWeights(t *testing.T) {
	mapped := mat.NewDense(2, 2, []float64{0.1, 0.5, 0.9, 0.25})
	a := Sigmoid{}.Derivative(mat.NewDense(2, 2, []float64{1, 2, 3, 4}), mapped)
	b := Sigmoid{}.Derivative(mat.NewDense(1, 1, []float64{-7}), mapped)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			m := mapped.At(i, j)
			assert.InDelta(t, m*(1-m), a.At(i, j), 1e-15)
		}
	}
	assert.True(t, mat.Equal(a, b))
}

func TestReLU(t *testing.T) {
	values := mat.NewDense(1, 4, []float64{-1, 0, 0.5, 3})
	out := ReLU{}.Map(values)
	assert.Equal(t, []float64{0, 0, 0.5, 3}, out.RawRowView(0))

	d := ReLU{}.Derivative(nil, out)
	assert.Equal(t, []float64{0, 0, 1, 1}, d.RawRowView(0))
}
