package user

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"gitee.com/taoJie_1/bank-agent/global"
	"gitee.com/taoJie_1/bank-agent/model/common"
	"gitee.com/taoJie_1/bank-agent/model/enum"
	"gitee.com/taoJie_1/bank-agent/utils"
)

type IFlow interface {
	// 尝试用本轮输入完成会话中的待定流程, 未能推进时返回nil
	Continue(text string, entities map[enum.Slot]string, sess *global.Session) *common.Resolution
}

var (
	// 裸账号输入: 整条消息只有6~16位数字
	bareAccountRe = regexp.MustCompile(`^\d{6,16}$`)
	numberRe      = regexp.MustCompile(`\d+`)
)

type flowService struct {
	annualRate float64
	responder  IResponder
}

func NewFlowService(annualRate float64, responder IResponder) *flowService {
	if annualRate <= 0 {
		annualRate = 0.085
	}
	return &flowService{
		annualRate: annualRate,
		responder:  responder,
	}
}

func (d *flowService) Continue(text string, entities map[enum.Slot]string, sess *global.Session) *common.Resolution {
	switch sess.PendingFlow {
	case enum.FlowAwaitBalanceAccount:
		return d.continueBalance(text, entities, sess)
	case enum.FlowAwaitEmiParams:
		return d.continueEmi(text, entities, sess)
	}
	return nil
}

// continueBalance 等待裸账号输入; 非账号形态的输入不消费, 交还给主管线
func (d *flowService) continueBalance(text string, entities map[enum.Slot]string, sess *global.Session) *common.Resolution {
	account := strings.TrimSpace(text)
	if !bareAccountRe.MatchString(account) {
		return nil
	}

	sess.ClearFlow()
	if entities == nil {
		entities = make(map[enum.Slot]string)
	}
	entities[enum.SlotAccountNumber] = account

	return &common.Resolution{
		Intent:     enum.IntentBalanceResult,
		Confidence: enum.ConfidenceRule,
		Entities:   entities,
		Reply:      fmt.Sprintf("Your account balance is %s.", FabricateBalance(account)),
	}
}

// continueEmi 输入中凑齐两个数字(本金、期数)即完成计算, 否则留在流程内重新提示
func (d *flowService) continueEmi(text string, entities map[enum.Slot]string, sess *global.Session) *common.Resolution {
	nums := numberRe.FindAllString(text, -1)
	if len(nums) < 2 {
		return &common.Resolution{
			Intent:     enum.IntentEmiError,
			Confidence: enum.ConfidenceRule,
			Entities:   entities,
			Reply:      d.responder.Resolve(enum.IntentEmiError),
		}
	}

	principal, err1 := strconv.ParseFloat(nums[0], 64)
	months, err2 := strconv.Atoi(nums[1])
	if err1 != nil || err2 != nil || principal <= 0 || months < 1 {
		return &common.Resolution{
			Intent:     enum.IntentEmiError,
			Confidence: enum.ConfidenceRule,
			Entities:   entities,
			Reply:      d.responder.Resolve(enum.IntentEmiError),
		}
	}

	sess.ClearFlow()
	if entities == nil {
		entities = make(map[enum.Slot]string)
	}
	entities[enum.SlotAmount] = nums[0]
	entities[enum.SlotTenure] = nums[1]

	emi := CalculateEmi(principal, months, d.annualRate)
	return &common.Resolution{
		Intent:     enum.IntentEmiResult,
		Confidence: enum.ConfidenceRule,
		Entities:   entities,
		Reply:      fmt.Sprintf("Your estimated EMI is ₹%s/month.", utils.CommaFormat(int64(emi))),
	}
}

// CalculateEmi 等额本息月供: EMI = P*r*(1+r)^n / ((1+r)^n - 1), r为月利率
func CalculateEmi(principal float64, months int, annualRate float64) float64 {
	r := annualRate / 12
	factor := math.Pow(1+r, float64(months))
	return principal * r * factor / (factor - 1)
}

// FabricateBalance 为演示账号生成一个稳定的余额(1000~500000),
// 同一账号恒得同一数值
func FabricateBalance(account string) string {
	n := 1000 + int64(utils.Fnv64a(account)%499001)
	return "₹" + utils.CommaFormat(n)
}

const txnCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// FabricateTxnID 由转账参数派生一个稳定的交易号, 形如TXN加8位大写字母数字
func FabricateTxnID(account, amount string) string {
	h := utils.Fnv64a(account + ":" + amount)
	buf := make([]byte, 8)
	for i := range buf {
		buf[i] = txnCharset[h%uint64(len(txnCharset))]
		h /= uint64(len(txnCharset))
	}
	return "TXN" + string(buf)
}
