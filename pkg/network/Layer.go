package network

import (
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

/*
该文件包含神经网络层的封装以及该层的前向传播和反向调整
网络是一条链：最底下是 InputLayer，每个 HiddenLayer 持有它的前一层，
Predict 和 Adjust 都只需要在最顶层调用，会沿着链递归下去
*/

// AnyRows 表示行数不受限制（任意批次大小）
const AnyRows = -1

// Shape 层的形状 (行, 列)
type Shape struct {
	Rows int
	Cols int
}

func (s Shape) String() string {
	rows := "?"
	if s.Rows != AnyRows {
		rows = strconv.Itoa(s.Rows)
	}
	return fmt.Sprintf("(%s, %d)", rows, s.Cols)
}

// Context 预测时的外部输入，变量名到 (rows, cols) 矩阵的映射
type Context map[string]*mat.Dense

// Layer 网络中的一层
type Layer interface {
	Shape() Shape
	// Predict 前向传播，先递归到输入层再逐层返回
	Predict(ctx Context) (*mat.Dense, error)
	// Adjust 反向调整权重，并把导出的信号传给前一层
	Adjust(expected mat.Matrix) error
}

// InputLayer 输入层，没有权重，只从上下文里取出变量
type InputLayer struct {
	Variable string
	shape    Shape
}

func NewInputLayer(variable string, cols int) *InputLayer {
	if cols <= 0 {
		panic(fmt.Sprintf("input layer %q: %d columns: %v", variable, cols, ErrInvalidShape))
	}
	return &InputLayer{
		Variable: variable,
		shape:    Shape{Rows: AnyRows, Cols: cols},
	}
}

func (l *InputLayer) Shape() Shape {
	return l.shape
}

func (l *InputLayer) Predict(ctx Context) (*mat.Dense, error) {
	data, ok := ctx[l.Variable]
	if !ok || data == nil {
		return nil, fmt.Errorf("variable %q: %w", l.Variable, ErrMissingVariable)
	}
	rows, cols := data.Dims()
	if cols != l.shape.Cols {
		return nil, fmt.Errorf("variable %q expected shape %v, got (%d, %d): %w",
			l.Variable, l.shape, rows, cols, ErrShapeMismatch)
	}
	return data, nil
}

// Adjust 输入层不再向后传播
func (l *InputLayer) Adjust(mat.Matrix) error {
	return nil
}

// HiddenLayer 全连接层，权重矩阵大小为 InputCols*Nodes，没有偏置
type HiddenLayer struct {
	Input      Layer
	Activation Activation
	Weights    *mat.Dense
	shape      Shape

	// 最近一次 Predict/Adjust 的中间结果
	X     *mat.Dense
	Y     *mat.Dense
	Error *mat.Dense
	Delta *mat.Dense
}

// NewHiddenLayer 在 input 之上创建一层，activation 为 nil 时使用 Sigmoid，
// initializer 为 nil 时使用种子为 DefaultSeed 的 RandomInitializer
func NewHiddenLayer(input Layer, nodes int, activation Activation, initializer Initializer) *HiddenLayer {
	if nodes <= 0 {
		panic(fmt.Sprintf("hidden layer: %d nodes: %v", nodes, ErrInvalidShape))
	}
	if activation == nil {
		activation = Sigmoid{}
	}
	if initializer == nil {
		initializer = NewRandomInitializer(DefaultSeed)
	}
	shape := Shape{Rows: input.Shape().Cols, Cols: nodes}
	return &HiddenLayer{
		Input:      input,
		Activation: activation,
		Weights:    initializer.InitWeights(shape),
		shape:      shape,
	}
}

func (l *HiddenLayer) Shape() Shape {
	return l.shape
}

func (l *HiddenLayer) Predict(ctx Context) (*mat.Dense, error) {
	x, err := l.Input.Predict(ctx)
	if err != nil {
		return nil, err
	}
	if _, cols := x.Dims(); cols != l.shape.Rows {
		return nil, fmt.Errorf("hidden layer %v received %d input columns: %w",
			l.shape, cols, ErrPreconditionViolation)
	}
	l.X = x

	// y = activation(x·W)
	var z mat.Dense
	z.Mul(x, l.Weights)
	l.Y = l.Activation.Map(&z)
	return l.Y, nil
}

// Adjust 计算 error = expected - y 和 delta = error ⊙ f'(y)，
// 先原地更新 W += xᵀ·delta（没有学习率），再用更新后的 W 把 x + delta·Wᵀ 传给前一层
func (l *HiddenLayer) Adjust(expected mat.Matrix) error {
	if l.X == nil || l.Y == nil {
		return ErrNotPredicted
	}
	target, err := broadcastTo(expected, l.Y)
	if err != nil {
		return err
	}

	var diff mat.Dense
	diff.Sub(target, l.Y)
	l.Error = &diff

	var delta mat.Dense
	delta.MulElem(l.Error, l.Activation.Derivative(l.X, l.Y))
	l.Delta = &delta

	var step mat.Dense
	step.Mul(l.X.T(), l.Delta)
	l.Weights.Add(l.Weights, &step)

	var back mat.Dense
	back.Mul(l.Delta, l.Weights.T())
	back.Add(l.X, &back)
	return l.Input.Adjust(&back)
}

// broadcastTo 期望值与 y 形状相同时直接使用；行数或列数为 1 时沿该维度广播
func broadcastTo(expected mat.Matrix, y *mat.Dense) (mat.Matrix, error) {
	rows, cols := y.Dims()
	er, ec := expected.Dims()
	if er == rows && ec == cols {
		return expected, nil
	}
	if (er != 1 && er != rows) || (ec != 1 && ec != cols) {
		return nil, fmt.Errorf("expected (%d, %d) cannot broadcast to output (%d, %d): %w",
			er, ec, rows, cols, ErrShapeMismatch)
	}
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, expected.At(i%er, j%ec))
		}
	}
	return out, nil
}
