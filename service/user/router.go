package user

import (
	"fmt"
	"strings"

	"gitee.com/taoJie_1/bank-agent/global"
	"gitee.com/taoJie_1/bank-agent/model/common"
	"gitee.com/taoJie_1/bank-agent/model/enum"
)

type IRouter interface {
	// 执行完整的意图解析管线, 返回(意图, 置信度, 实体, 回复)并推进会话状态
	Route(text string, sess *global.Session) *common.Resolution
}

type routerService struct {
	extractor IExtractor
	rules     IRules
	keyword   IKeyword
	flow      IFlow
	responder IResponder
	chatlog   IChatLog
}

func NewRouterService(extractor IExtractor, rules IRules, keyword IKeyword, flow IFlow, responder IResponder, chatlog IChatLog) *routerService {
	return &routerService{
		extractor: extractor,
		rules:     rules,
		keyword:   keyword,
		flow:      flow,
		responder: responder,
		chatlog:   chatlog,
	}
}

// Route 的解析顺序是固定的: 流程续接 > 词法规则 > 关键词表 > 分类器 > 兜底。
// 实体抽取独立于意图解析, 对每条非空输入都执行。
func (d *routerService) Route(text string, sess *global.Session) *common.Resolution {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		// 空输入不进管线也不记日志
		return &common.Resolution{
			Intent:     enum.IntentUnknown,
			Confidence: enum.ConfidenceFallback,
			Entities:   map[enum.Slot]string{},
			Reply:      EmptyInputReply,
		}
	}

	lower := strings.ToLower(trimmed)
	entities := d.extractor.Extract(lower)

	res := d.resolve(lower, entities, sess)
	d.chatlog.Record(sess.ID, trimmed, res)
	return res
}

func (d *routerService) resolve(text string, entities map[enum.Slot]string, sess *global.Session) *common.Resolution {
	// 1. 流程续接; 问候/告别可打断未完成的流程
	if sess.PendingFlow != enum.FlowNone {
		if canInterruptFlow(text) {
			sess.ClearFlow()
		} else if res := d.flow.Continue(text, entities, sess); res != nil {
			return res
		}
		// 流程未被本轮输入推进时保持待定, 继续走主管线
	}

	// 2. 词法规则
	if intent, ok := d.rules.Match(text, entities); ok {
		return d.applyRule(intent, entities, sess)
	}

	// 3. 关键词表(短输入)
	if intent, ok := d.keyword.Match(text); ok {
		return &common.Resolution{
			Intent:     intent,
			Confidence: enum.ConfidenceKeyword,
			Entities:   entities,
			Reply:      d.responder.Resolve(intent),
		}
	}

	// 4. 分类器; 未加载或推理失败都按"无预测"降级
	if model := global.Classifier.Get(); model != nil {
		dist, err := model.Classify(text)
		if err != nil {
			global.Log.Debugf("[router]分类器未给出预测: %v", err)
		} else if top := dist.Top(); top.Probability >= enum.ClassifierThreshold {
			intent := enum.Intent(strings.ToLower(top.Intent))
			return &common.Resolution{
				Intent:     intent,
				Confidence: top.Probability,
				Entities:   entities,
				Reply:      d.responder.Resolve(intent),
			}
		}
	}

	// 5. 兜底
	return &common.Resolution{
		Intent:     enum.IntentUnknown,
		Confidence: enum.ConfidenceFallback,
		Entities:   entities,
		Reply:      d.responder.Resolve(enum.IntentUnknown),
	}
}

// applyRule 处理规则命中后的流程进入与动态回复
func (d *routerService) applyRule(intent enum.Intent, entities map[enum.Slot]string, sess *global.Session) *common.Resolution {
	res := &common.Resolution{
		Intent:     intent,
		Confidence: enum.ConfidenceRule,
		Entities:   entities,
	}

	switch intent {
	case enum.IntentCheckBalance:
		// 账号已随本轮给出时直接出结果, 否则进入等待账号的流程
		if account, ok := entities[enum.SlotAccountNumber]; ok {
			res.Intent = enum.IntentBalanceResult
			res.Reply = fmt.Sprintf("Your account balance is %s.", FabricateBalance(account))
			return res
		}
		sess.EnterFlow(enum.FlowAwaitBalanceAccount)

	case enum.IntentEmiStart:
		sess.EnterFlow(enum.FlowAwaitEmiParams)

	case enum.IntentMoneyTransfer:
		amount, hasAmount := entities[enum.SlotAmount]
		account, hasAccount := entities[enum.SlotAccountNumber]
		if hasAmount && hasAccount {
			res.Reply = fmt.Sprintf("₹%s transferred to A/C %s. Transaction ID: %s.",
				amount, account, FabricateTxnID(account, amount))
			return res
		}
		res.Intent = enum.IntentMoneyTransferStart
	}

	res.Reply = d.responder.Resolve(res.Intent)
	return res
}
