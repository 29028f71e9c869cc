package classifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"regexp"
	"strings"
)

// artifact 是训练侧导出的模型文件结构, 字段名与导出脚本保持一致
type artifact struct {
	Classes    []string           `json:"classes"`
	Vocabulary map[string]int     `json:"vocabulary"`
	Idf        []float64          `json:"idf"`
	Coef       [][]float64        `json:"coef"`
	Intercept  []float64          `json:"intercept"`
}

// Model 是已加载的线性意图分类模型: TF-IDF特征 + 线性层 + softmax。
// 加载后只读, 可被多协程并发调用。
type Model struct {
	classes    []string
	vocabulary map[string]int
	idf        []float64
	coef       [][]float64
	intercept  []float64
}

// Prediction 单个类别的归一化概率
type Prediction struct {
	Intent      string
	Probability float64
}

// Distribution 全部类别的概率分布, 按类别在模型中的顺序排列
type Distribution []Prediction

// Top 返回概率最高的预测; 概率相同时取类别名字典序较小者, 保证结果确定
func (d Distribution) Top() Prediction {
	var best Prediction
	for _, p := range d {
		if p.Probability > best.Probability ||
			(p.Probability == best.Probability && best.Intent != "" && p.Intent < best.Intent) {
			best = p
		}
	}
	return best
}

// tokenPattern 与训练侧的分词规则一致: 连续2个及以上的字母数字
var tokenPattern = regexp.MustCompile(`\b\w\w+\b`)

// Load 从JSON工件文件加载模型并校验维度一致性
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取模型文件失败: %w", err)
	}

	var a artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("解析模型文件失败: %w", err)
	}

	if len(a.Classes) == 0 {
		return nil, errors.New("模型文件缺少类别列表")
	}
	if len(a.Vocabulary) == 0 {
		return nil, errors.New("模型文件缺少词表")
	}
	if len(a.Idf) != len(a.Vocabulary) {
		return nil, fmt.Errorf("idf维度(%d)与词表大小(%d)不一致", len(a.Idf), len(a.Vocabulary))
	}
	if len(a.Coef) != len(a.Classes) || len(a.Intercept) != len(a.Classes) {
		return nil, fmt.Errorf("权重维度与类别数(%d)不一致", len(a.Classes))
	}
	for i, row := range a.Coef {
		if len(row) != len(a.Vocabulary) {
			return nil, fmt.Errorf("第%d个类别的权重维度(%d)与词表大小(%d)不一致", i, len(row), len(a.Vocabulary))
		}
	}
	for token, idx := range a.Vocabulary {
		if idx < 0 || idx >= len(a.Idf) {
			return nil, fmt.Errorf("词表项%q的索引(%d)越界", token, idx)
		}
	}

	return &Model{
		classes:    a.Classes,
		vocabulary: a.Vocabulary,
		idf:        a.Idf,
		coef:       a.Coef,
		intercept:  a.Intercept,
	}, nil
}

// Classes 返回模型支持的全部意图类别
func (m *Model) Classes() []string {
	return m.classes
}

// Classify 对输入文本做一次完整推理, 返回全类别概率分布。
// 文本中没有任何词表内词时返回错误, 由调用方降级处理。
func (m *Model) Classify(text string) (Distribution, error) {
	features := m.vectorize(text)
	if len(features) == 0 {
		return nil, errors.New("输入文本不含词表内的词")
	}

	scores := make([]float64, len(m.classes))
	for c := range m.classes {
		score := m.intercept[c]
		for idx, val := range features {
			score += m.coef[c][idx] * val
		}
		scores[c] = score
	}

	probs := softmax(scores)
	dist := make(Distribution, len(m.classes))
	for c, name := range m.classes {
		dist[c] = Prediction{Intent: name, Probability: probs[c]}
	}
	return dist, nil
}

// vectorize 计算稀疏的L2归一化TF-IDF特征向量
func (m *Model) vectorize(text string) map[int]float64 {
	counts := make(map[int]float64)
	for _, token := range tokenPattern.FindAllString(strings.ToLower(text), -1) {
		if idx, ok := m.vocabulary[token]; ok {
			counts[idx]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	var norm float64
	for idx := range counts {
		counts[idx] *= m.idf[idx]
		norm += counts[idx] * counts[idx]
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for idx := range counts {
			counts[idx] /= norm
		}
	}
	return counts
}

// softmax 带最大值平移, 避免指数溢出
func softmax(scores []float64) []float64 {
	maxScore := scores[0]
	for _, s := range scores[1:] {
		if s > maxScore {
			maxScore = s
		}
	}

	probs := make([]float64, len(scores))
	var sum float64
	for i, s := range scores {
		probs[i] = math.Exp(s - maxScore)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}
