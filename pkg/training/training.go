package training

import (
	"fmt"
	"log"
	"time"

	"DNNDev/pkg/network"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// TrainConfig 训练配置
type TrainConfig struct {
	// 迭代次数，每次迭代是一对 Predict/Adjust
	Iterations int
	// 每隔多少次迭代打印一次误差，<=0 时不打印过程
	LogEvery int
	// 日志输出，为 nil 时不打印
	Logger *log.Logger
	// 平均绝对误差不超过该值时提前停止，0 表示不提前停止
	Tolerance float64
}

// NewTrainConfig 创建一个默认的训练配置
func NewTrainConfig() *TrainConfig {
	return &TrainConfig{
		Iterations: 10000,
		LogEvery:   1000,
		Logger:     log.Default(),
		Tolerance:  0,
	}
}

// Run 一次训练的结果
type Run struct {
	ID      uuid.UUID
	History []float64 // 每次迭代 Adjust 之前的平均绝对误差
	Elapsed time.Duration
}

// FinalError 最后一次迭代的误差
func (r *Run) FinalError() float64 {
	if len(r.History) == 0 {
		return 0
	}
	return r.History[len(r.History)-1]
}

func (r *Run) logf(cfg *TrainConfig, format string, args ...any) {
	if cfg.Logger == nil {
		return
	}
	cfg.Logger.Printf("[run %s] "+format, append([]any{r.ID.String()[:8]}, args...)...)
}

// TrainModel 在最顶层 top 上交替调用 Predict 和 Adjust。
// 更新规则没有学习率，误差不保证收敛
func TrainModel(top network.Layer, ctx network.Context, expected mat.Matrix, cfg *TrainConfig) (*Run, error) {
	if cfg == nil {
		cfg = NewTrainConfig()
	}
	run := &Run{
		ID:      uuid.New(),
		History: make([]float64, 0, cfg.Iterations),
	}
	run.logf(cfg, "开始训练 - 输出形状: %v, 迭代次数: %d", top.Shape(), cfg.Iterations)

	start := time.Now()
	for i := 0; i < cfg.Iterations; i++ {
		y, err := top.Predict(ctx)
		if err != nil {
			return run, fmt.Errorf("第 %d 次迭代前向传播失败: %w", i+1, err)
		}
		mae, err := network.MeanAbsError(expected, y)
		if err != nil {
			return run, fmt.Errorf("第 %d 次迭代计算误差失败: %w", i+1, err)
		}
		run.History = append(run.History, mae)

		if cfg.LogEvery > 0 && (i+1)%cfg.LogEvery == 0 {
			run.logf(cfg, "第 %d 次迭代 - 平均绝对误差: %.6f", i+1, mae)
		}
		if cfg.Tolerance > 0 && mae <= cfg.Tolerance {
			run.logf(cfg, "第 %d 次迭代误差 %.6f 已达到阈值 %.6f", i+1, mae, cfg.Tolerance)
			break
		}
		if err := top.Adjust(expected); err != nil {
			return run, fmt.Errorf("第 %d 次迭代反向调整失败: %w", i+1, err)
		}
	}
	run.Elapsed = time.Since(start)
	run.logf(cfg, "训练耗时: %v, 最终误差: %.6f", run.Elapsed, run.FinalError())
	return run, nil
}

// Improving 比较历史误差最后 window 次与最初 window 次的平均值，判断误差整体是否下降
func Improving(history []float64, window int) bool {
	if window <= 0 || len(history) < 2*window {
		return false
	}
	first := stat.Mean(history[:window], nil)
	last := stat.Mean(history[len(history)-window:], nil)
	return last < first
}
