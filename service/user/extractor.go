package user

import (
	"regexp"
	"strings"

	"gitee.com/taoJie_1/bank-agent/model/enum"
)

type IExtractor interface {
	// 从文本中抽取全部槽位实体, 无匹配的槽位不出现在结果中
	Extract(text string) map[enum.Slot]string
}

// slotRule 单条抽取规则: group>=0时取对应捕获组, 否则使用固定值value
type slotRule struct {
	slot  enum.Slot
	re    *regexp.Regexp
	group int
	value string
}

type extractorService struct {
	rules []slotRule
}

// 规则按槽位分组有序排列; 同一槽位的多条规则按先后取第一条命中的,
// 不同槽位相互独立, 同一段数字可以同时落入多个槽位
func NewExtractorService() *extractorService {
	return &extractorService{
		rules: []slotRule{
			{slot: enum.SlotAccountNumber, re: regexp.MustCompile(`\b\d{6,16}\b`), group: 0},
			{slot: enum.SlotMobileNumber, re: regexp.MustCompile(`\b\d{10}\b`), group: 0},
			{slot: enum.SlotAmount, re: regexp.MustCompile(`(?:₹|rs\.?|inr)?\s?(\d{2,9})`), group: 1},
			{slot: enum.SlotCityName, re: regexp.MustCompile(`\b(?:chennai|puducherry|mumbai|delhi|bangalore|kolkata|hyderabad|pune)\b`), group: 0},
			{slot: enum.SlotPaymentMethod, re: regexp.MustCompile(`\bupi\b`), group: -1, value: "UPI"},
			{slot: enum.SlotPaymentMethod, re: regexp.MustCompile(`\b(?:bank transfer|neft|imps|rtgs)\b`), group: -1, value: "Bank Transfer"},
			{slot: enum.SlotCardType, re: regexp.MustCompile(`\bdebit\b`), group: -1, value: "debit"},
			{slot: enum.SlotCardType, re: regexp.MustCompile(`\bcredit\b`), group: -1, value: "credit"},
			{slot: enum.SlotAccountType, re: regexp.MustCompile(`\b(?:savings|current|salary)\b`), group: 0},
		},
	}
}

func (d *extractorService) Extract(text string) map[enum.Slot]string {
	text = strings.ToLower(text)
	entities := make(map[enum.Slot]string)

	for _, rule := range d.rules {
		if _, exists := entities[rule.slot]; exists {
			continue
		}
		if rule.group < 0 {
			if rule.re.MatchString(text) {
				entities[rule.slot] = rule.value
			}
			continue
		}
		if m := rule.re.FindStringSubmatch(text); m != nil {
			entities[rule.slot] = m[rule.group]
		}
	}
	return entities
}
