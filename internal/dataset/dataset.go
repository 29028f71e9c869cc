package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record 数据集中的一行: 用户问法、标注意图、预设回复
type Record struct {
	Text     string
	Intent   string
	Response string
}

// Set 一次加载的完整数据集
type Set struct {
	Records []Record
	Skipped int // 因缺列或空值被跳过的行数
}

// 列名别名, 兼容协作方导出的多种表头; 按序取第一个出现的列
var (
	textAliases     = []string{"text", "query", "question"}
	intentAliases   = []string{"intent", "label"}
	responseAliases = []string{"response", "answer"}
)

// Load 从CSV文件加载数据集。表头行必须存在, 列顺序不限,
// 列名大小写不敏感; 缺少必需列时整体报错, 个别坏行只计数跳过。
func Load(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("打开数据集文件失败: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse 从任意reader解析数据集, 便于处理上传的文件流
func Parse(r io.Reader) (*Set, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // 行宽不一致时不报错, 逐行自行校验
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("读取CSV表头失败: %w", err)
	}

	textCol, err := findColumn(header, textAliases)
	if err != nil {
		return nil, err
	}
	intentCol, err := findColumn(header, intentAliases)
	if err != nil {
		return nil, err
	}
	// 回复列允许缺失: 纯训练样本文件只有问法和意图
	responseCol, _ := findColumn(header, responseAliases)

	set := &Set{}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// 引号不配对等结构性坏行
			set.Skipped++
			continue
		}

		rec := Record{
			Text:   field(row, textCol),
			Intent: field(row, intentCol),
		}
		if responseCol >= 0 {
			rec.Response = field(row, responseCol)
		}

		if rec.Text == "" || rec.Intent == "" {
			set.Skipped++
			continue
		}
		set.Records = append(set.Records, rec)
	}

	if len(set.Records) == 0 {
		return nil, errors.New("数据集不含任何有效记录")
	}
	return set, nil
}

// ByIntent 按意图聚合回复, 保持文件内顺序并去重
func (s *Set) ByIntent() map[string][]string {
	out := make(map[string][]string)
	seen := make(map[string]struct{})
	for _, rec := range s.Records {
		if rec.Response == "" {
			continue
		}
		key := rec.Intent + "\x00" + rec.Response
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out[rec.Intent] = append(out[rec.Intent], rec.Response)
	}
	return out
}

// findColumn 在表头中查找别名列表里第一个出现的列, 返回其下标
func findColumn(header, aliases []string) (int, error) {
	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
	}
	for _, alias := range aliases {
		for i, h := range normalized {
			if h == alias {
				return i, nil
			}
		}
	}
	return -1, fmt.Errorf("CSV缺少必需列(别名: %s)", strings.Join(aliases, "/"))
}

func field(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}
