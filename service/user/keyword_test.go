package user

import (
	"testing"

	"gitee.com/taoJie_1/bank-agent/model/enum"
)

func hasIntentFrom(set ...string) func(string) bool {
	m := make(map[string]bool, len(set))
	for _, s := range set {
		m[s] = true
	}
	return func(intent string) bool { return m[intent] }
}

func TestKeywordMatch(t *testing.T) {
	svc := NewKeywordService(3, hasIntentFrom("debit_card_block", "credit_card_block"))

	intent, ok := svc.Match("debit card")
	if !ok || intent != enum.Intent("debit_card_block") {
		t.Fatalf("短输入应命中关键词表: got (%q, %v)", intent, ok)
	}
}

// 候选意图要经过词表校验, 首个在数据集中存在的候选生效
func TestKeywordMatchSkipsUnknownCandidates(t *testing.T) {
	svc := NewKeywordService(3, hasIntentFrom("credit_card_limit"))

	intent, ok := svc.Match("credit card")
	if !ok || intent != enum.Intent("credit_card_limit") {
		t.Fatalf("应跳过词表中不存在的候选: got (%q, %v)", intent, ok)
	}
}

func TestKeywordMatchTokenLimit(t *testing.T) {
	svc := NewKeywordService(3, hasIntentFrom("debit_card_block"))

	if _, ok := svc.Match("please block my debit card immediately"); ok {
		t.Error("超过令牌数上限的输入不应走关键词表")
	}
}

func TestKeywordMatchPhrasePriority(t *testing.T) {
	// "debit card"条目在"card"之前, 应优先命中
	svc := NewKeywordService(3, hasIntentFrom("debit_card_block", "card_inquiry"))

	intent, ok := svc.Match("my debit card")
	if !ok || intent != enum.Intent("debit_card_block") {
		t.Fatalf("长短语应优先于短短语: got (%q, %v)", intent, ok)
	}

	intent, ok = svc.Match("card")
	if !ok || intent != enum.Intent("debit_card_block") {
		t.Fatalf("card条目首个存在的候选应生效: got (%q, %v)", intent, ok)
	}
}

func TestKeywordMatchMiss(t *testing.T) {
	svc := NewKeywordService(3, hasIntentFrom("debit_card_block"))

	if _, ok := svc.Match("loan please"); ok {
		t.Error("无关键词的输入不应命中")
	}
	if _, ok := svc.Match(""); ok {
		t.Error("空输入不应命中")
	}
}
