package main

import (
	"DNNDev/pkg/dataProcess"
	"DNNDev/pkg/network"
	"DNNDev/pkg/training"

	"fmt"
	"log"
)

func main() {
	// 加载数据集
	trainDataset, testDataset, err := dataProcess.LoadDataset("../../test/data")
	if err != nil {
		log.Fatalf("加载数据集失败: %v", err)
	}
	fmt.Printf("训练数据集包含 %d 个样本\n", len(trainDataset.Images))
	fmt.Printf("测试数据集包含 %d 个样本\n", len(testDataset.Images))

	// 更新规则没有学习率也不对批次求平均，样本太多时sigmoid很快饱和，只取一小部分
	numClasses := 10
	trainCtx, trainTargets, err := trainDataset.Subset(500).ToContext("x", numClasses)
	if err != nil {
		log.Fatalf("准备训练数据失败: %v", err)
	}
	testCtx, testTargets, err := testDataset.Subset(500).ToContext("x", numClasses)
	if err != nil {
		log.Fatalf("准备测试数据失败: %v", err)
	}

	// 定义神经网络
	inputSize := len(trainDataset.Images[0])
	nn := network.NewNeuronNetwork("x", []int{inputSize, 32, numClasses}, network.Sigmoid{}, network.DefaultSeed)
	fmt.Print(nn)

	cfg := training.NewTrainConfig()
	cfg.Iterations = 200
	cfg.LogEvery = 20
	if _, err := training.TrainModel(nn, trainCtx, trainTargets, cfg); err != nil {
		log.Fatalf("训练失败: %v", err)
	}

	y, err := nn.Predict(testCtx)
	if err != nil {
		log.Fatalf("预测失败: %v", err)
	}
	fmt.Printf("测试准确率: %.2f%%\n", network.Accuracy(y, testTargets)*100)

	predicted := network.Classify(y)
	for i := 0; i < 10; i++ {
		fmt.Printf("样本 %d 的预测类别：%d, 真实类别：%d\n", i+1, predicted[i], testDataset.Labels[i])
	}
}
