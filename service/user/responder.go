package user

import (
	"gitee.com/taoJie_1/bank-agent/global"
	"gitee.com/taoJie_1/bank-agent/model/enum"
)

type IResponder interface {
	// 为意图解析出一条回复, 永不为空
	Resolve(intent enum.Intent) string
}

// FallbackReply 兜底回复, 任何查找都失败时使用
const FallbackReply = "Sorry, I didn't understand that. Could you provide more details?"

// EmptyInputReply 空输入的固定提示
const EmptyInputReply = "Please type a message so I can help you."

// responseAliases 数据集历史遗留的键名映射: 部分意图在数据集中使用旧键
var responseAliases = map[enum.Intent]string{
	enum.IntentAtmInfo:    "atm_location",
	enum.IntentNetbanking: "netbanking_register",
}

// builtinDefaults 数据集缺失时的内置回复表
var builtinDefaults = map[enum.Intent]string{
	enum.IntentGreet:        "Hello! How can I assist you with banking today?",
	enum.IntentThanks:       "You're welcome!",
	enum.IntentGoodbye:      "Thank you for banking with us. Have a great day!",
	enum.IntentCheckBalance: "Please provide your account number to check balance.",
	enum.IntentCardMenu:     "Would you like Debit Card or Credit Card services?",
	enum.IntentDebitMenu: "Debit Card Options:\n1. Block Debit Card\n2. Unblock Debit Card\n" +
		"3. Check Status\n4. Apply New Card\n5. Report Lost Card",
	enum.IntentCreditMenu: "Credit Card Options:\n1. Block Credit Card\n2. Unblock Credit Card\n" +
		"3. View Bill\n4. Apply New Card\n5. Pay Bill",
	enum.IntentBlockCard: "Would you like to block a debit or credit card?",
	enum.IntentLoanMenu: "Loan Services:\n1. Apply for Loan\n2. Check Eligibility\n" +
		"3. Loan Balance\n4. EMI Calculator",
	enum.IntentLoanInfo:           "We offer personal, car, and home loans. Which would you like to know about?",
	enum.IntentEmiStart:           "Please provide loan amount and tenure (e.g., 100000 24 months).",
	enum.IntentEmiError:           "Please provide amount and months (e.g., 50000 12).",
	enum.IntentMoneyTransferStart: "Please provide amount and receiver account number.",
	enum.IntentWhoIsManager:       "Please provide the Bank and City to find the branch manager details.",
	enum.IntentAccountStatement:   "Please share your registered account number to fetch the statement.",
	enum.IntentUnknown:            FallbackReply,
}

type responderService struct{}

func NewResponderService() *responderService {
	return &responderService{}
}

// Resolve 查找顺序: 数据集回复表(取首条, 保证确定性) > 别名键 > 内置默认表 > 兜底。
func (d *responderService) Resolve(intent enum.Intent) string {
	if list := global.Responses.Get(string(intent)); len(list) > 0 {
		return list[0]
	}
	if alias, ok := responseAliases[intent]; ok {
		if list := global.Responses.Get(alias); len(list) > 0 {
			return list[0]
		}
	}
	if reply, ok := builtinDefaults[intent]; ok {
		return reply
	}
	return FallbackReply
}
