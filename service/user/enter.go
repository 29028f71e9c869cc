package user

import (
	"gitee.com/taoJie_1/bank-agent/global"
)

type ServiceGroup struct {
	Extractor IExtractor
	Rules     IRules
	Keyword   IKeyword
	Flow      IFlow
	Responder IResponder
	Router    IRouter
	ChatLog   IChatLog
	Dashboard IDashboard
	Validator IValidator
}

func NewServiceGroup() ServiceGroup {
	extractor := NewExtractorService()
	rules := NewRulesService()
	responder := NewResponderService()
	keyword := NewKeywordService(global.Config.Bot.KeywordMaxTokens, func(intent string) bool {
		return global.Responses.Has(intent)
	})
	flow := NewFlowService(global.Config.Bot.AnnualInterestRate, responder)
	chatlog := NewChatLogService()
	router := NewRouterService(extractor, rules, keyword, flow, responder, chatlog)

	return ServiceGroup{
		Extractor: extractor,
		Rules:     rules,
		Keyword:   keyword,
		Flow:      flow,
		Responder: responder,
		Router:    router,
		ChatLog:   chatlog,
		Dashboard: NewDashboardService(),
		Validator: &Validator{},
	}
}
