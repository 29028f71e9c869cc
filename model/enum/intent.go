package enum

// Intent 是一次用户输入最终归类到的规范动作标签, 全部为小写token
type Intent string

const (
	IntentGreet              Intent = "greet"
	IntentThanks             Intent = "thanks"
	IntentGoodbye            Intent = "goodbye"
	IntentCheckBalance       Intent = "check_balance"
	IntentBalanceResult      Intent = "balance_result"
	IntentCardMenu           Intent = "card_menu"
	IntentDebitMenu          Intent = "debit_menu"
	IntentCreditMenu         Intent = "credit_menu"
	IntentDebitCardBlock     Intent = "debit_card_block"
	IntentCreditCardBlock    Intent = "credit_card_block"
	IntentDebitCardApply     Intent = "debit_card_apply"
	IntentCreditCardApply    Intent = "credit_card_apply"
	IntentCreditCardBill     Intent = "credit_card_bill"
	IntentBlockCard          Intent = "block_card"
	IntentLoanMenu           Intent = "loan_menu"
	IntentLoanInfo           Intent = "loan_info"
	IntentEmiStart           Intent = "emi_start"
	IntentEmiResult          Intent = "emi_result"
	IntentEmiError           Intent = "emi_error"
	IntentMoneyTransfer      Intent = "money_transfer"
	IntentMoneyTransferStart Intent = "money_transfer_start"
	IntentAtmInfo            Intent = "atm_info"
	IntentNetbanking         Intent = "netbanking"
	IntentIfscSearch         Intent = "ifsc_search"
	IntentWhoIsManager       Intent = "who_is_manager"
	IntentChequeDeposit      Intent = "cheque_deposit"
	IntentAccountStatement   Intent = "account_statement"
	IntentUnknown            Intent = "unknown"
)

// Slot 是实体抽取的槽位名
type Slot string

const (
	SlotAccountNumber Slot = "account_number"
	SlotAmount        Slot = "amount"
	SlotMobileNumber  Slot = "mobile_number"
	SlotCityName      Slot = "city_name"
	SlotPaymentMethod Slot = "payment_method"
	SlotCardType      Slot = "card_type"
	SlotAccountType   Slot = "account_type"
	SlotTenure        Slot = "tenure"
)

// FlowState 表示会话中唯一的待定多轮流程, 同一时刻只能有一个
type FlowState string

const (
	FlowNone                FlowState = "none"
	FlowAwaitBalanceAccount FlowState = "awaiting_balance_account"
	FlowAwaitEmiParams      FlowState = "awaiting_emi_params"
)

// 置信度约定: 词法规则与流程续接为确定性匹配取1.0, 关键词表取0.95,
// 分类器输出为其概率, 兜底为0.0
const (
	ConfidenceRule      = 1.0
	ConfidenceKeyword   = 0.95
	ConfidenceFallback  = 0.0
	ClassifierThreshold = 0.4
)
