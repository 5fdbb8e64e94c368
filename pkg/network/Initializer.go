package network

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

/*
该文件包含权重矩阵的初始化方法
每次初始化都用保存的种子新建一个随机源，不会读写全局的随机数生成器，
所以同一个种子两次调用得到完全相同的矩阵
*/

// DefaultSeed 默认随机种子
const DefaultSeed uint64 = 1

// Initializer 按给定形状生成初始权重矩阵
type Initializer interface {
	InitWeights(shape Shape) *mat.Dense
}

// RandomInitializer 在 [-1, 1) 上均匀分布的初始化
type RandomInitializer struct {
	seed uint64
}

func NewRandomInitializer(seed uint64) *RandomInitializer {
	return &RandomInitializer{seed: seed}
}

func (r *RandomInitializer) InitWeights(shape Shape) *mat.Dense {
	uniform := distuv.Uniform{
		Min: -1,
		Max: 1,
		Src: newSource(r.seed),
	}
	return fill(shape, uniform.Rand)
}

// HeInitializer 正态分布初始化，标准差为 sqrt(2/fanIn)，适合 ReLU
type HeInitializer struct {
	seed uint64
}

func NewHeInitializer(seed uint64) *HeInitializer {
	return &HeInitializer{seed: seed}
}

func (h *HeInitializer) InitWeights(shape Shape) *mat.Dense {
	normal := distuv.Normal{
		Mu:    0,
		Sigma: math.Sqrt(2.0 / float64(shape.Rows)),
		Src:   newSource(h.seed),
	}
	return fill(shape, normal.Rand)
}

func newSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed)
}

// 按行优先顺序依次抽样填满矩阵
func fill(shape Shape, draw func() float64) *mat.Dense {
	if shape.Rows <= 0 || shape.Cols <= 0 {
		panic(shape.String() + ": " + ErrInvalidShape.Error())
	}
	data := make([]float64, shape.Rows*shape.Cols)
	for i := range data {
		data[i] = draw()
	}
	return mat.NewDense(shape.Rows, shape.Cols, data)
}
