package user

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gitee.com/taoJie_1/bank-agent/global"
	"gitee.com/taoJie_1/bank-agent/internal/classifier"
	"gitee.com/taoJie_1/bank-agent/model/common"
	"gitee.com/taoJie_1/bank-agent/model/enum"
	"github.com/sirupsen/logrus"
)

func TestMain(m *testing.M) {
	global.Log = logrus.New()
	global.Log.SetOutput(io.Discard)
	global.Tz = time.UTC
	global.Config.Bot.KeywordMaxTokens = 3
	global.Config.Bot.AnnualInterestRate = 0.085
	os.Exit(m.Run())
}

// noopChatLog 测试中不落日志
type noopChatLog struct{}

func (noopChatLog) Record(string, string, *common.Resolution) {}

func newTestRouter() IRouter {
	responder := NewResponderService()
	return NewRouterService(
		NewExtractorService(),
		NewRulesService(),
		NewKeywordService(3, global.Responses.Has),
		NewFlowService(0.085, responder),
		responder,
		noopChatLog{},
	)
}

func loadTestClassifier(t *testing.T, artifact string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.json")
	if err := os.WriteFile(path, []byte(artifact), 0644); err != nil {
		t.Fatalf("写入模型工件失败: %v", err)
	}
	model, err := classifier.Load(path)
	if err != nil {
		t.Fatalf("加载模型失败: %v", err)
	}
	global.Classifier.Set(model)
	t.Cleanup(func() { global.Classifier.Set(nil) })
}

func TestRouteEmptyInput(t *testing.T) {
	router := newTestRouter()
	sess := newTestSession(enum.FlowNone)

	res := router.Route("   ", sess)
	if res.Intent != enum.IntentUnknown || res.Confidence != enum.ConfidenceFallback {
		t.Errorf("空输入应返回unknown/0.0: %+v", res)
	}
	if res.Reply != EmptyInputReply {
		t.Errorf("空输入回复错误: %q", res.Reply)
	}
}

// 问候词优先于其他任何规则
func TestRouteGreetPrecedence(t *testing.T) {
	router := newTestRouter()
	sess := newTestSession(enum.FlowNone)

	res := router.Route("Hello, I want a loan", sess)
	if res.Intent != enum.IntentGreet || res.Confidence != enum.ConfidenceRule {
		t.Errorf("greet应优先命中: %+v", res)
	}
}

func TestRouteBalanceFlowRoundTrip(t *testing.T) {
	router := newTestRouter()
	sess := newTestSession(enum.FlowNone)

	// 第一轮: 进入等待账号的流程
	res := router.Route("check my balance", sess)
	if res.Intent != enum.IntentCheckBalance {
		t.Fatalf("第一轮意图错误: %+v", res)
	}
	if sess.PendingFlow != enum.FlowAwaitBalanceAccount {
		t.Fatal("应进入等待账号的流程")
	}

	// 第二轮: 裸账号完成流程
	res = router.Route("1234567890", sess)
	if res.Intent != enum.IntentBalanceResult || res.Confidence != enum.ConfidenceRule {
		t.Fatalf("第二轮意图错误: %+v", res)
	}
	if res.Entities[enum.SlotAccountNumber] != "1234567890" {
		t.Errorf("账号实体缺失: %v", res.Entities)
	}
	if sess.PendingFlow != enum.FlowNone {
		t.Error("流程完成后应清空")
	}

	// 同一账号再查一次, 余额应一致
	sess2 := newTestSession(enum.FlowAwaitBalanceAccount)
	res2 := router.Route("1234567890", sess2)
	if res2.Reply != res.Reply {
		t.Errorf("同一账号两次查询余额应一致: %q vs %q", res.Reply, res2.Reply)
	}
}

// 本轮已带账号时直接出结果, 不进流程
func TestRouteBalanceWithAccountInline(t *testing.T) {
	router := newTestRouter()
	sess := newTestSession(enum.FlowNone)

	res := router.Route("balance for 123456789012", sess)
	if res.Intent != enum.IntentBalanceResult {
		t.Fatalf("带账号的余额查询应直接出结果: %+v", res)
	}
	if sess.PendingFlow != enum.FlowNone {
		t.Error("不应进入流程")
	}
}

func TestRouteGreetInterruptsFlow(t *testing.T) {
	router := newTestRouter()
	sess := newTestSession(enum.FlowAwaitBalanceAccount)

	res := router.Route("hello", sess)
	if res.Intent != enum.IntentGreet {
		t.Fatalf("问候应打断流程: %+v", res)
	}
	if sess.PendingFlow != enum.FlowNone {
		t.Error("被打断的流程应被清空")
	}
}

func TestRouteFlowKeepsPendingOnMiss(t *testing.T) {
	router := newTestRouter()
	sess := newTestSession(enum.FlowAwaitBalanceAccount)

	res := router.Route("qwerty", sess)
	if res.Intent != enum.IntentUnknown {
		t.Fatalf("无法归类的输入应兜底: %+v", res)
	}
	if sess.PendingFlow != enum.FlowAwaitBalanceAccount {
		t.Error("未推进的流程应保持待定")
	}
}

func TestRouteEmiFlow(t *testing.T) {
	router := newTestRouter()
	sess := newTestSession(enum.FlowNone)

	res := router.Route("emi calculator", sess)
	if res.Intent != enum.IntentEmiStart {
		t.Fatalf("第一轮意图错误: %+v", res)
	}
	if sess.PendingFlow != enum.FlowAwaitEmiParams {
		t.Fatal("应进入等待EMI参数的流程")
	}

	// 参数不足: 留在流程内
	res = router.Route("amount is fifty thousand", sess)
	if res.Intent != enum.IntentEmiError {
		t.Fatalf("参数不足应返回emi_error: %+v", res)
	}
	if sess.PendingFlow != enum.FlowAwaitEmiParams {
		t.Fatal("参数不足时应留在流程内")
	}

	// 凑齐参数: 完成计算
	res = router.Route("50000 12", sess)
	if res.Intent != enum.IntentEmiResult || res.Confidence != enum.ConfidenceRule {
		t.Fatalf("应完成EMI计算: %+v", res)
	}
	if sess.PendingFlow != enum.FlowNone {
		t.Error("流程完成后应清空")
	}
}

func TestRouteTransfer(t *testing.T) {
	router := newTestRouter()
	sess := newTestSession(enum.FlowNone)

	res := router.Route("transfer 500 to 12345678", sess)
	if res.Intent != enum.IntentMoneyTransfer {
		t.Fatalf("转账意图错误: %+v", res)
	}
	if !strings.Contains(res.Reply, "₹500") || !strings.Contains(res.Reply, "12345678") {
		t.Errorf("转账回执应包含金额与账号: %q", res.Reply)
	}
	if !strings.Contains(res.Reply, "TXN") {
		t.Errorf("转账回执应包含交易号: %q", res.Reply)
	}

	// 缺少参数时转为引导
	res = router.Route("send money", sess)
	if res.Intent != enum.IntentMoneyTransferStart {
		t.Fatalf("参数不全应引导补充: %+v", res)
	}
}

// 词法规则先于关键词表, 含card的短输入先被card规则归类到菜单
func TestRouteCardRulePrecedesKeywordTable(t *testing.T) {
	global.Responses.Replace(map[string][]string{
		"debit_card_block": {"Your debit card has been blocked."},
	})
	defer global.Responses.Replace(map[string][]string{})

	router := newTestRouter()
	sess := newTestSession(enum.FlowNone)

	res := router.Route("debit card", sess)
	if res.Intent != enum.IntentDebitMenu || res.Confidence != enum.ConfidenceRule {
		t.Fatalf("card规则应先于关键词表命中: %+v", res)
	}
}

func TestRouteClassifierAccepted(t *testing.T) {
	loadTestClassifier(t, `{
		"classes": ["loan_info", "account_statement"],
		"vocabulary": {"interest": 0},
		"idf": [1.0],
		"coef": [[5.0], [-5.0]],
		"intercept": [0, 0]
	}`)

	router := newTestRouter()
	sess := newTestSession(enum.FlowNone)

	res := router.Route("interest", sess)
	if res.Intent != enum.IntentLoanInfo {
		t.Fatalf("高置信预测应被采纳: %+v", res)
	}
	if res.Confidence < enum.ClassifierThreshold {
		t.Errorf("置信度应不低于阈值: %f", res.Confidence)
	}
}

// 三类均分时最高概率1/3低于阈值, 应兜底
func TestRouteClassifierBelowThreshold(t *testing.T) {
	loadTestClassifier(t, `{
		"classes": ["loan_info", "account_statement", "ifsc_search"],
		"vocabulary": {"interest": 0},
		"idf": [1.0],
		"coef": [[0], [0], [0]],
		"intercept": [0, 0, 0]
	}`)

	router := newTestRouter()
	sess := newTestSession(enum.FlowNone)

	res := router.Route("interest", sess)
	if res.Intent != enum.IntentUnknown || res.Confidence != enum.ConfidenceFallback {
		t.Fatalf("低于阈值的预测应兜底: %+v", res)
	}
}

func TestRouteUnknownWithoutClassifier(t *testing.T) {
	router := newTestRouter()
	sess := newTestSession(enum.FlowNone)

	res := router.Route("qwerty asdfgh", sess)
	if res.Intent != enum.IntentUnknown || res.Confidence != enum.ConfidenceFallback {
		t.Fatalf("无分类器时应兜底: %+v", res)
	}
	if res.Reply == "" {
		t.Error("兜底回复不应为空")
	}

	// 相同输入的解析应幂等
	res2 := router.Route("qwerty asdfgh", sess)
	if res2.Intent != res.Intent || res2.Reply != res.Reply {
		t.Errorf("相同输入应得到相同结果: %+v vs %+v", res, res2)
	}
}
