package user

import (
	"strings"

	"gitee.com/taoJie_1/bank-agent/model/enum"
	"gitee.com/taoJie_1/bank-agent/utils"
)

type IKeyword interface {
	// 对短输入做关键词表匹配, 返回首个在词表中且有回复数据的候选意图
	Match(text string) (enum.Intent, bool)
}

// keywordEntry 一个关键词短语与其候选意图列表, 候选按偏好排序
type keywordEntry struct {
	phrase     string
	candidates []string
}

// keywordTable 处理短而含糊的输入, 顺序即优先级。
// 候选意图不限于内置枚举, 数据集中出现的意图同样可作为候选。
var keywordTable = []keywordEntry{
	{"debit card", []string{"debit_card_block", "debit_card_replacement", "debit_card_replacement2"}},
	{"credit card", []string{"credit_card_block", "credit_card_limit", "credit_card_payment"}},
	{"card block", []string{"block_card", "debit_card_block", "credit_card_block"}},
	{"block card", []string{"block_card", "debit_card_block", "credit_card_block"}},
	{"card", []string{"debit_card_block", "card_inquiry", "card_request", "credit_card_block"}},
}

type keywordService struct {
	maxTokens int
	hasIntent func(intent string) bool
}

// hasIntent 用于校验候选意图在当前加载的数据集中确实存在
func NewKeywordService(maxTokens int, hasIntent func(intent string) bool) *keywordService {
	if maxTokens <= 0 {
		maxTokens = 3
	}
	return &keywordService{
		maxTokens: maxTokens,
		hasIntent: hasIntent,
	}
}

func (d *keywordService) Match(text string) (enum.Intent, bool) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" || len(utils.Tokenize(text)) > d.maxTokens {
		return "", false
	}

	for _, entry := range keywordTable {
		if !strings.Contains(text, entry.phrase) {
			continue
		}
		for _, cand := range entry.candidates {
			if d.hasIntent(cand) {
				return enum.Intent(cand), true
			}
		}
	}
	return "", false
}
