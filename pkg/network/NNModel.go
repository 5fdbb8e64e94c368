package network

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

/*
该文件包含整个神经网络的初始化方法
*/

type NeuronNetwork struct {
	Input  *InputLayer
	Layers []*HiddenLayer
}

// NewNeuronNetwork 按 layerSize 创建一条链：layerSize[0] 是输入层的列数，
// 之后每个数是一层隐藏层的节点数。所有隐藏层共用 activation，
// 第 i 层的随机种子为 seed+i
func NewNeuronNetwork(variable string, layerSize []int, activation Activation, seed uint64) *NeuronNetwork {
	if len(layerSize) < 2 {
		panic(fmt.Sprintf("network needs an input size and at least one layer, got %v", layerSize))
	}
	input := NewInputLayer(variable, layerSize[0])
	layers := make([]*HiddenLayer, len(layerSize)-1)
	var prev Layer = input
	for i := range layers {
		layers[i] = NewHiddenLayer(prev, layerSize[i+1], activation, NewRandomInitializer(seed+uint64(i)))
		prev = layers[i]
	}
	return &NeuronNetwork{Input: input, Layers: layers}
}

// Output 返回最顶层
func (nn *NeuronNetwork) Output() *HiddenLayer {
	return nn.Layers[len(nn.Layers)-1]
}

func (nn *NeuronNetwork) Shape() Shape {
	return nn.Output().Shape()
}

func (nn *NeuronNetwork) Predict(ctx Context) (*mat.Dense, error) {
	return nn.Output().Predict(ctx)
}

func (nn *NeuronNetwork) Adjust(expected mat.Matrix) error {
	return nn.Output().Adjust(expected)
}

// Shapes 从输入层到输出层每一层的形状
func (nn *NeuronNetwork) Shapes() []Shape {
	shapes := make([]Shape, 0, len(nn.Layers)+1)
	shapes = append(shapes, nn.Input.Shape())
	for _, layer := range nn.Layers {
		shapes = append(shapes, layer.Shape())
	}
	return shapes
}

func (nn *NeuronNetwork) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "input %q %v\n", nn.Input.Variable, nn.Input.Shape())
	for i, layer := range nn.Layers {
		fmt.Fprintf(&b, "第 %d 层 %v %T\n", i+1, layer.Shape(), layer.Activation)
	}
	return b.String()
}
