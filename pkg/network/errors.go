package network

import "errors"

var (
	// ErrShapeMismatch 输入数据或期望值的形状与层声明的形状不一致
	ErrShapeMismatch = errors.New("shape mismatch")
	// ErrPreconditionViolation 隐藏层收到的输入列数与权重行数不一致，说明网络链配置错误
	ErrPreconditionViolation = errors.New("precondition violation")
	// ErrMissingVariable 上下文中找不到输入层需要的变量
	ErrMissingVariable = errors.New("missing variable")
	// ErrNotPredicted 在任何一次 Predict 之前调用了 Adjust
	ErrNotPredicted = errors.New("adjust called before predict")
	// ErrInvalidShape 层的列数或节点数不是正数
	ErrInvalidShape = errors.New("invalid shape")
)
