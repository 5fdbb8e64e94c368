package main

import (
	"DNNDev/pkg/dataProcess"
	"DNNDev/pkg/network"
	"DNNDev/pkg/training"

	"fmt"
	"log"

	"gonum.org/v1/gonum/mat"
)

func main() {
	// 两个真值表：OR 对无偏置的单层网络可学习，XOR 需要隐藏层
	orInputs, orTargets := dataProcess.ORDataset()
	xorInputs, xorTargets := dataProcess.XORDataset()

	cfg := training.NewTrainConfig()
	cfg.Iterations = 5000

	// 单个节点的网络
	input := network.NewInputLayer("x", 2)
	single := network.NewHiddenLayer(input, 1, nil, network.NewRandomInitializer(network.DefaultSeed))
	report("OR 2-1", single, network.Context{"x": orInputs}, orTargets, cfg)

	// 带一层隐藏层的网络
	nn := network.NewNeuronNetwork("x", []int{2, 4, 1}, network.Sigmoid{}, network.DefaultSeed)
	fmt.Print(nn)
	report("XOR 2-4-1", nn, network.Context{"x": xorInputs}, xorTargets, cfg)
}

func report(name string, top network.Layer, ctx network.Context, targets *mat.Dense, cfg *training.TrainConfig) {
	run, err := training.TrainModel(top, ctx, targets, cfg)
	if err != nil {
		log.Fatalf("%s 训练失败: %v", name, err)
	}
	y, err := top.Predict(ctx)
	if err != nil {
		log.Fatalf("%s 预测失败: %v", name, err)
	}
	fmt.Printf("%s - 初始误差: %.4f, 最终误差: %.4f, 误差下降: %v, 准确率: %.2f%%\n",
		name, run.History[0], run.FinalError(), training.Improving(run.History, 100), network.Accuracy(y, targets)*100)
	fmt.Printf("输出:\n%v\n", mat.Formatted(y, mat.Prefix("  "), mat.Squeeze()))
}
