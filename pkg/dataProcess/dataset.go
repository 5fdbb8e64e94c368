package dataProcess

import (
	"compress/gzip"
	"encoding/binary"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"DNNDev/pkg/network"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

/*
该文件实现数据集的加载，以及把数据转换成网络预测用的上下文
*/

// NewMatrix 把按行存储的数据转换成矩阵，每行长度必须一致
func NewMatrix(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("数据为空")
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("第 %d 行有 %d 列，应为 %d 列: %w", i, len(row), cols, network.ErrShapeMismatch)
		}
		data = append(data, row...)
	}
	return mat.NewDense(len(rows), cols, data), nil
}

// NewContext 用一个变量创建预测上下文
func NewContext(variable string, rows [][]float64) (network.Context, error) {
	m, err := NewMatrix(rows)
	if err != nil {
		return nil, fmt.Errorf("变量 %q: %w", variable, err)
	}
	return network.Context{variable: m}, nil
}

// XORDataset 异或真值表
func XORDataset() (*mat.Dense, *mat.Dense) {
	return truthTable(), mat.NewDense(4, 1, []float64{0, 1, 1, 0})
}

// ORDataset 或运算真值表
func ORDataset() (*mat.Dense, *mat.Dense) {
	return truthTable(), mat.NewDense(4, 1, []float64{0, 1, 1, 1})
}

func truthTable() *mat.Dense {
	return mat.NewDense(4, 2, []float64{
		0, 0,
		0, 1,
		1, 0,
		1, 1,
	})
}

// OneHotEncode 将标签转换为one-hot编码，每个标签一行
func OneHotEncode(labels []int, numClasses int) (*mat.Dense, error) {
	oneHot := mat.NewDense(len(labels), numClasses, nil)
	for i, label := range labels {
		if label < 0 || label >= numClasses {
			return nil, fmt.Errorf("第 %d 个标签 %d 超出类别数 %d", i, label, numClasses)
		}
		oneHot.Set(i, label, 1.0)
	}
	return oneHot, nil
}

// LoadCSV 读取CSV格式的数值数据
func LoadCSV(path string) ([][]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("无法打开CSV文件: %w", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("读取CSV文件失败: %w", err)
	}

	rows := make([][]float64, len(records))
	for i, record := range records {
		rows[i] = make([]float64, len(record))
		for j, val := range record {
			rows[i][j], err = strconv.ParseFloat(val, 64)
			if err != nil {
				return nil, fmt.Errorf("第 %d 行第 %d 列: %w", i+1, j+1, err)
			}
		}
	}
	return rows, nil
}

// LoadLabelsCSV 读取CSV格式的标签数据，每行第一列是标签
func LoadLabelsCSV(path string) ([]int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("无法打开标签文件: %w", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("读取标签文件失败: %w", err)
	}

	labels := make([]int, len(records))
	for i, record := range records {
		labels[i], err = strconv.Atoi(record[0])
		if err != nil {
			return nil, fmt.Errorf("第 %d 行: %w", i+1, err)
		}
	}
	return labels, nil
}

type Dataset struct {
	Images [][]byte
	Labels []byte
}

// Subset 取前 n 个样本
func (d *Dataset) Subset(n int) *Dataset {
	if n > len(d.Images) {
		n = len(d.Images)
	}
	return &Dataset{Images: d.Images[:n], Labels: d.Labels[:n]}
}

// ToContext 把像素归一化到 0-1 之间作为变量 variable，标签转换为 one-hot 目标矩阵
func (d *Dataset) ToContext(variable string, numClasses int) (network.Context, *mat.Dense, error) {
	if len(d.Images) == 0 {
		return nil, nil, fmt.Errorf("数据集为空")
	}
	if len(d.Images) != len(d.Labels) {
		return nil, nil, fmt.Errorf("图像数量 %d 与标签数量 %d 不一致", len(d.Images), len(d.Labels))
	}

	pixels := len(d.Images[0])
	inputs := mat.NewDense(len(d.Images), pixels, nil)
	row := make([]float64, pixels)
	for i, img := range d.Images {
		if len(img) != pixels {
			return nil, nil, fmt.Errorf("第 %d 张图像有 %d 个像素，应为 %d: %w", i, len(img), pixels, network.ErrShapeMismatch)
		}
		for j, p := range img {
			row[j] = float64(p)
		}
		floats.Scale(1.0/255.0, row)
		inputs.SetRow(i, row)
	}

	labels := make([]int, len(d.Labels))
	for i, l := range d.Labels {
		labels[i] = int(l)
	}
	targets, err := OneHotEncode(labels, numClasses)
	if err != nil {
		return nil, nil, err
	}
	return network.Context{variable: inputs}, targets, nil
}

// IDX 文件中数据部分的最大字节数
const maxIDXBytes = 1 << 30

// LoadImages 从 gzip 压缩的 IDX 文件加载图像数据
func LoadImages(filename string) ([][]byte, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("无法打开图像文件: %w", err)
	}
	defer file.Close()

	// 解压缩文件
	reader, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("无法解压缩文件: %w", err)
	}
	defer reader.Close()

	// 读取 IDX 头信息（魔数、维度等）
	var header struct {
		Magic, Count, Rows, Cols int32
	}
	if err := binary.Read(reader, binary.BigEndian, &header); err != nil {
		return nil, fmt.Errorf("读取图像文件头失败: %w", err)
	}
	if header.Magic != 2051 {
		return nil, fmt.Errorf("文件格式不正确（魔数 %d 不匹配）", header.Magic)
	}
	if header.Count < 0 || header.Rows <= 0 || header.Cols <= 0 ||
		int64(header.Count)*int64(header.Rows)*int64(header.Cols) > maxIDXBytes {
		return nil, fmt.Errorf("图像文件头不合法: %d 张 %dx%d", header.Count, header.Rows, header.Cols)
	}

	images := make([][]byte, header.Count)
	for i := range images {
		img := make([]byte, int(header.Rows)*int(header.Cols))
		if _, err := io.ReadFull(reader, img); err != nil {
			return nil, fmt.Errorf("读取第 %d 张图像失败: %w", i, err)
		}
		images[i] = img
	}
	return images, nil
}

// LoadLabels 从 IDX 文件加载标签数据
func LoadLabels(filename string) ([]byte, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("无法打开标签文件: %w", err)
	}
	defer file.Close()

	reader, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("无法解压缩文件: %w", err)
	}
	defer reader.Close()

	var magicNumber, numItems int32
	if err := binary.Read(reader, binary.BigEndian, &magicNumber); err != nil {
		return nil, fmt.Errorf("读取魔数失败: %w", err)
	}
	if magicNumber != 2049 {
		return nil, fmt.Errorf("文件格式不正确（魔数 %d 不匹配）", magicNumber)
	}
	if err := binary.Read(reader, binary.BigEndian, &numItems); err != nil {
		return nil, fmt.Errorf("读取标签数量失败: %w", err)
	}
	if numItems < 0 || int64(numItems) > maxIDXBytes {
		return nil, fmt.Errorf("标签数量 %d 不合法", numItems)
	}

	labels := make([]byte, numItems)
	if _, err := io.ReadFull(reader, labels); err != nil {
		return nil, fmt.Errorf("读取标签数据失败: %w", err)
	}
	return labels, nil
}

// LoadDataset 从目录 dir 加载训练和测试数据集
func LoadDataset(dir string) (*Dataset, *Dataset, error) {
	train, err := loadPair(dir, "train-images-idx3-ubyte.gz", "train-labels-idx1-ubyte.gz")
	if err != nil {
		return nil, nil, fmt.Errorf("加载训练数据失败: %w", err)
	}
	test, err := loadPair(dir, "t10k-images-idx3-ubyte.gz", "t10k-labels-idx1-ubyte.gz")
	if err != nil {
		return nil, nil, fmt.Errorf("加载测试数据失败: %w", err)
	}
	return train, test, nil
}

func loadPair(dir, imageFile, labelFile string) (*Dataset, error) {
	images, err := LoadImages(filepath.Join(dir, imageFile))
	if err != nil {
		return nil, err
	}
	labels, err := LoadLabels(filepath.Join(dir, labelFile))
	if err != nil {
		return nil, err
	}
	return &Dataset{Images: images, Labels: labels}, nil
}
