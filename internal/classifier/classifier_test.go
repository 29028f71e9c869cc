package classifier

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeArtifact(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("写入模型工件失败: %v", err)
	}
	return path
}

const validArtifact = `{
	"classes": ["check_balance", "loan_menu"],
	"vocabulary": {"balance": 0, "loan": 1, "emi": 2},
	"idf": [1.2, 1.5, 1.5],
	"coef": [[2.0, -1.0, -1.0], [-1.0, 2.0, 1.0]],
	"intercept": [0.1, -0.1]
}`

func TestLoad(t *testing.T) {
	m, err := Load(writeArtifact(t, validArtifact))
	if err != nil {
		t.Fatalf("加载合法模型失败: %v", err)
	}
	if got := len(m.Classes()); got != 2 {
		t.Fatalf("类别数量错误: got %d, want 2", got)
	}
}

func TestLoadRejectsBadArtifacts(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"非法JSON", `{`},
		{"缺少类别", `{"classes": [], "vocabulary": {"a": 0}, "idf": [1], "coef": [], "intercept": []}`},
		{"idf维度不符", `{"classes": ["a"], "vocabulary": {"x": 0}, "idf": [1, 2], "coef": [[1]], "intercept": [0]}`},
		{"权重维度不符", `{"classes": ["a", "b"], "vocabulary": {"x": 0}, "idf": [1], "coef": [[1]], "intercept": [0]}`},
		{"词表索引越界", `{"classes": ["a"], "vocabulary": {"x": 5}, "idf": [1], "coef": [[1]], "intercept": [0]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(writeArtifact(t, tc.content)); err == nil {
				t.Error("期望加载失败, 实际成功")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("期望文件不存在时报错")
	}
}

func TestClassify(t *testing.T) {
	m, err := Load(writeArtifact(t, validArtifact))
	if err != nil {
		t.Fatalf("加载模型失败: %v", err)
	}

	dist, err := m.Classify("What is my account Balance?")
	if err != nil {
		t.Fatalf("推理失败: %v", err)
	}
	if len(dist) != 2 {
		t.Fatalf("分布长度错误: got %d, want 2", len(dist))
	}

	var sum float64
	for _, p := range dist {
		if p.Probability < 0 || p.Probability > 1 {
			t.Errorf("概率越界: %s=%f", p.Intent, p.Probability)
		}
		sum += p.Probability
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("概率未归一化: sum=%f", sum)
	}

	if top := dist.Top(); top.Intent != "check_balance" {
		t.Errorf("最高概率类别错误: got %s, want check_balance", top.Intent)
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	m, err := Load(writeArtifact(t, validArtifact))
	if err != nil {
		t.Fatalf("加载模型失败: %v", err)
	}

	lower, err := m.Classify("loan emi")
	if err != nil {
		t.Fatalf("推理失败: %v", err)
	}
	upper, err := m.Classify("LOAN EMI")
	if err != nil {
		t.Fatalf("推理失败: %v", err)
	}
	for i := range lower {
		if lower[i].Probability != upper[i].Probability {
			t.Errorf("大小写导致结果不一致: %s", lower[i].Intent)
		}
	}
}

func TestClassifyOutOfVocabulary(t *testing.T) {
	m, err := Load(writeArtifact(t, validArtifact))
	if err != nil {
		t.Fatalf("加载模型失败: %v", err)
	}

	if _, err := m.Classify("xyzzy quux"); err == nil {
		t.Error("词表外文本期望返回错误")
	}
	if _, err := m.Classify(""); err == nil {
		t.Error("空文本期望返回错误")
	}
}

func TestTopTieBreak(t *testing.T) {
	dist := Distribution{
		{Intent: "loan_menu", Probability: 0.5},
		{Intent: "check_balance", Probability: 0.5},
	}
	if top := dist.Top(); top.Intent != "check_balance" {
		t.Errorf("并列时应取字典序较小者: got %s", top.Intent)
	}
}
