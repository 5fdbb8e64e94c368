package network

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Activation 激活函数接口，对矩阵逐元素操作
type Activation interface {
	// Map 返回激活后的新矩阵，不修改输入
	Map(values mat.Matrix) *mat.Dense
	// Derivative 用激活后的输出 mapped 计算导数。
	// weights 实际上是该层的输入 x，保留它是为了让需要激活前数值的导数也能实现这个接口
	Derivative(weights, mapped mat.Matrix) *mat.Dense
}

// Sigmoid 激活函数（对整个矩阵的操作）
//
// 没有做数值截断：输入是很大的负数时 exp(-v) 溢出为 +Inf，结果为 0
type Sigmoid struct{}

func (Sigmoid) Map(values mat.Matrix) *mat.Dense {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 {
		return 1 / (1 + math.Exp(-v))
	}, values)
	return &out
}

// Derivative sigmoid的导数，只依赖于输出 mapped
func (Sigmoid) Derivative(_, mapped mat.Matrix) *mat.Dense {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 {
		return v * (1 - v)
	}, mapped)
	return &out
}

// ReLU 激活函数
type ReLU struct{}

func (ReLU) Map(values mat.Matrix) *mat.Dense {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 {
		if v > 0 {
			return v
		}
		return 0
	}, values)
	return &out
}

// Derivative ReLU 的导数函数
func (ReLU) Derivative(_, mapped mat.Matrix) *mat.Dense {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 {
		if v > 0 {
			return 1
		}
		return 0
	}, mapped)
	return &out
}
