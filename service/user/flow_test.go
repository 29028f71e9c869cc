package user

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"gitee.com/taoJie_1/bank-agent/global"
	"gitee.com/taoJie_1/bank-agent/model/enum"
	"gitee.com/taoJie_1/bank-agent/utils"
)

func newTestSession(flow enum.FlowState) *global.Session {
	sess := &global.Session{ID: "t1", PendingFlow: enum.FlowNone}
	if flow != enum.FlowNone {
		sess.EnterFlow(flow)
	}
	return sess
}

func TestContinueBalance(t *testing.T) {
	svc := NewFlowService(0.085, NewResponderService())
	sess := newTestSession(enum.FlowAwaitBalanceAccount)

	res := svc.Continue("1234567890", nil, sess)
	if res == nil {
		t.Fatal("裸账号输入应完成余额流程")
	}
	if res.Intent != enum.IntentBalanceResult || res.Confidence != enum.ConfidenceRule {
		t.Errorf("解析结果错误: %+v", res)
	}
	if res.Entities[enum.SlotAccountNumber] != "1234567890" {
		t.Errorf("账号实体未填充: %v", res.Entities)
	}
	if want := fmt.Sprintf("Your account balance is %s.", FabricateBalance("1234567890")); res.Reply != want {
		t.Errorf("回复错误: got %q, want %q", res.Reply, want)
	}
	if sess.PendingFlow != enum.FlowNone {
		t.Error("流程完成后应清空会话状态")
	}
}

// 非账号形态的输入不被流程消费, 留给主管线且流程保持待定
func TestContinueBalanceNonAccountInput(t *testing.T) {
	svc := NewFlowService(0.085, NewResponderService())
	sess := newTestSession(enum.FlowAwaitBalanceAccount)

	if res := svc.Continue("what is my emi", nil, sess); res != nil {
		t.Errorf("非账号输入不应被流程消费: %+v", res)
	}
	if sess.PendingFlow != enum.FlowAwaitBalanceAccount {
		t.Error("流程未推进时应保持待定状态")
	}
}

func TestContinueEmi(t *testing.T) {
	svc := NewFlowService(0.085, NewResponderService())
	sess := newTestSession(enum.FlowAwaitEmiParams)

	res := svc.Continue("50000 12", nil, sess)
	if res == nil || res.Intent != enum.IntentEmiResult {
		t.Fatalf("两个数字应完成EMI计算: %+v", res)
	}
	if res.Entities[enum.SlotAmount] != "50000" || res.Entities[enum.SlotTenure] != "12" {
		t.Errorf("实体填充错误: %v", res.Entities)
	}
	want := fmt.Sprintf("Your estimated EMI is ₹%s/month.", utils.CommaFormat(int64(CalculateEmi(50000, 12, 0.085))))
	if res.Reply != want {
		t.Errorf("回复错误: got %q, want %q", res.Reply, want)
	}
	if sess.PendingFlow != enum.FlowNone {
		t.Error("流程完成后应清空会话状态")
	}
}

func TestContinueEmiMissingParams(t *testing.T) {
	svc := NewFlowService(0.085, NewResponderService())
	sess := newTestSession(enum.FlowAwaitEmiParams)

	res := svc.Continue("just 50000", nil, sess)
	if res == nil || res.Intent != enum.IntentEmiError {
		t.Fatalf("数字不足应返回emi_error: %+v", res)
	}
	if sess.PendingFlow != enum.FlowAwaitEmiParams {
		t.Error("参数不足时应留在流程内重新提示")
	}
}

func TestContinueEmiInvalidMonths(t *testing.T) {
	svc := NewFlowService(0.085, NewResponderService())
	sess := newTestSession(enum.FlowAwaitEmiParams)

	res := svc.Continue("50000 0", nil, sess)
	if res == nil || res.Intent != enum.IntentEmiError {
		t.Fatalf("期数为0应返回emi_error: %+v", res)
	}
}

func TestCalculateEmi(t *testing.T) {
	// 单期贷款的月供应等于本金加一个月利息
	got := CalculateEmi(12000, 1, 0.12)
	if math.Abs(got-12120) > 0.01 {
		t.Errorf("CalculateEmi(12000, 1, 0.12) = %f, want 12120", got)
	}

	// 期数越长月供越低
	if CalculateEmi(50000, 24, 0.085) >= CalculateEmi(50000, 12, 0.085) {
		t.Error("期数增加时月供应下降")
	}
}

func TestFabricateBalanceDeterministic(t *testing.T) {
	a := FabricateBalance("1234567890")
	b := FabricateBalance("1234567890")
	if a != b {
		t.Errorf("同一账号的余额应稳定: %q != %q", a, b)
	}
	if !strings.HasPrefix(a, "₹") {
		t.Errorf("余额应带货币符号: %q", a)
	}
	if FabricateBalance("1234567890") == FabricateBalance("1234567891") {
		t.Error("不同账号的余额大概率不同")
	}
}

func TestFabricateTxnID(t *testing.T) {
	id := FabricateTxnID("12345678", "500")
	if !strings.HasPrefix(id, "TXN") || len(id) != 11 {
		t.Errorf("交易号格式错误: %q", id)
	}
	if id != FabricateTxnID("12345678", "500") {
		t.Error("同一参数的交易号应稳定")
	}
}
