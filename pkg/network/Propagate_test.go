package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestMeanAbsError(t *testing.T) {
	y := mat.NewDense(2, 2, []float64{0.5, 0.25, 1, 0})
	expected := mat.NewDense(2, 2, []float64{1, 0, 0, 0})

	mae, err := MeanAbsError(expected, y)
	require.NoError(t, err)
	assert.InDelta(t, (0.5+0.25+1+0)/4, mae, 1e-15)

	mae, err = MeanAbsError(mat.NewDense(1, 2, []float64{0.5, 0.25}), y)
	require.NoError(t, err)
	assert.InDelta(t, (0+0+0.5+0.25)/4, mae, 1e-15)

	mae, err = MeanAbsError(mat.NewDense(2, 1, []float64{0.5, 1}), y)
	require.NoError(t, err)
	assert.InDelta(t, (0+0.25+0+1)/4, mae, 1e-15)

	mae, err = MeanAbsError(mat.NewDense(1, 1, []float64{0.5}), y)
	require.NoError(t, err)
	assert.InDelta(t, (0+0.25+0.5+0.5)/4, mae, 1e-15)

	_, err = MeanAbsError(mat.NewDense(3, 2, nil), y)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, []int{0, 1, 1}, Classify(mat.NewDense(3, 1, []float64{0.2, 0.5, 0.9})))
	assert.Equal(t, []int{2, 0}, Classify(mat.NewDense(2, 3, []float64{0.1, 0.2, 0.7, 0.9, 0.05, 0.05})))
}

func TestAccuracy(t *testing.T) {
	y := mat.NewDense(4, 1, []float64{0.1, 0.8, 0.6, 0.4})
	expected := mat.NewDense(4, 1, []float64{0, 1, 0, 0})
	assert.Equal(t, 0.75, Accuracy(y, expected))
	assert.Equal(t, 0.0, Accuracy(y, mat.NewDense(2, 1, nil)))
}
