package network

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

/*
该文件包含一些辅助函数，例如误差计算，预测类别，准确度计算
*/

// MeanAbsError 平均绝对误差 mean(|expected - y|)，expected 可以是一行（按行广播）
func MeanAbsError(expected mat.Matrix, y *mat.Dense) (float64, error) {
	target, err := broadcastTo(expected, y)
	if err != nil {
		return 0, err
	}
	var diff mat.Dense
	diff.Sub(target, y)
	diff.Apply(func(_, _ int, v float64) float64 { return math.Abs(v) }, &diff)
	return stat.Mean(diff.RawMatrix().Data, nil), nil
}

// Classify 预测每一行的类别：只有一列时以 0.5 为阈值，否则取最大值的下标
func Classify(y mat.Matrix) []int {
	rows, cols := y.Dims()
	classes := make([]int, rows)
	row := make([]float64, cols)
	for i := 0; i < rows; i++ {
		mat.Row(row, i, y)
		if cols == 1 {
			if row[0] >= 0.5 {
				classes[i] = 1
			}
			continue
		}
		classes[i] = floats.MaxIdx(row)
	}
	return classes
}

// Accuracy 评估预测结果与目标的一致比例
func Accuracy(y, expected mat.Matrix) float64 {
	predicted := Classify(y)
	actual := Classify(expected)
	if len(predicted) == 0 || len(predicted) != len(actual) {
		return 0
	}
	correct := 0
	for i := range predicted {
		if predicted[i] == actual[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(predicted))
}
