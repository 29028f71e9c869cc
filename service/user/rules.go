package user

import (
	"regexp"

	"gitee.com/taoJie_1/bank-agent/model/enum"
)

type IRules interface {
	// 按固定优先级匹配词法规则, 返回命中的意图; 规则之间不互斥, 先命中者生效
	Match(text string, entities map[enum.Slot]string) (enum.Intent, bool)
}

// 规则共用的正则, 流程打断判定也会用到
var (
	greetRe   = regexp.MustCompile(`\b(?:hi|hello|hey)\b`)
	goodbyeRe = regexp.MustCompile(`\b(?:bye|goodbye|exit)\b`)
	thanksRe  = regexp.MustCompile(`thank`)

	balanceRe    = regexp.MustCompile(`\b(?:balance|check balance|account balance)\b`)
	cardRe       = regexp.MustCompile(`\bcard\b`)
	blockRe      = regexp.MustCompile(`\b(?:block|lost|stolen)\b`)
	debitRe      = regexp.MustCompile(`\bdebit\b`)
	creditRe     = regexp.MustCompile(`\bcredit\b`)
	applyRe      = regexp.MustCompile(`\b(?:apply|new card)\b`)
	billRe       = regexp.MustCompile(`\b(?:bill|pay)\b`)
	loanRe       = regexp.MustCompile(`\b(?:loan|apply loan|personal loan)\b`)
	emiRe        = regexp.MustCompile(`\b(?:emi|emi calculator)\b`)
	transferRe   = regexp.MustCompile(`\b(?:transfer|send|pay)\b`)
	atmRe        = regexp.MustCompile(`\batm\b`)
	netbankingRe = regexp.MustCompile(`\b(?:netbanking|net banking|online banking)\b`)
	ifscRe       = regexp.MustCompile(`\bifsc\b`)
	managerRe    = regexp.MustCompile(`\bmanager\b`)
	chequeRe     = regexp.MustCompile(`\b(?:cheque|chequebook|check book)\b`)
	statementRe  = regexp.MustCompile(`\b(?:statement|transactions|transaction history)\b`)
)

type rulesService struct{}

func NewRulesService() *rulesService {
	return &rulesService{}
}

// Match 的规则顺序是固定的业务约定, 调整顺序会改变重叠文本的归类结果。
// 例如同时含"card"和"block"的输入先被card规则捕获。
func (d *rulesService) Match(text string, entities map[enum.Slot]string) (enum.Intent, bool) {
	switch {
	case greetRe.MatchString(text):
		return enum.IntentGreet, true
	case goodbyeRe.MatchString(text):
		return enum.IntentGoodbye, true
	case thanksRe.MatchString(text):
		return enum.IntentThanks, true
	case balanceRe.MatchString(text):
		return enum.IntentCheckBalance, true
	case cardRe.MatchString(text):
		switch entities[enum.SlotCardType] {
		case "debit":
			return enum.IntentDebitMenu, true
		case "credit":
			return enum.IntentCreditMenu, true
		}
		return enum.IntentCardMenu, true
	case blockRe.MatchString(text) && debitRe.MatchString(text):
		return enum.IntentDebitCardBlock, true
	case blockRe.MatchString(text) && creditRe.MatchString(text):
		return enum.IntentCreditCardBlock, true
	case applyRe.MatchString(text) && creditRe.MatchString(text):
		return enum.IntentCreditCardApply, true
	case applyRe.MatchString(text) && debitRe.MatchString(text):
		return enum.IntentDebitCardApply, true
	case billRe.MatchString(text) && creditRe.MatchString(text):
		return enum.IntentCreditCardBill, true
	case loanRe.MatchString(text):
		return enum.IntentLoanMenu, true
	case emiRe.MatchString(text):
		return enum.IntentEmiStart, true
	case transferRe.MatchString(text):
		return enum.IntentMoneyTransfer, true
	case atmRe.MatchString(text):
		return enum.IntentAtmInfo, true
	case netbankingRe.MatchString(text):
		return enum.IntentNetbanking, true
	case ifscRe.MatchString(text):
		return enum.IntentIfscSearch, true
	case managerRe.MatchString(text):
		return enum.IntentWhoIsManager, true
	case chequeRe.MatchString(text):
		return enum.IntentChequeDeposit, true
	case statementRe.MatchString(text):
		return enum.IntentAccountStatement, true
	}
	return "", false
}

// canInterruptFlow 判定输入是否属于可打断未完成流程的高优先级意图。
// 只有问候与告别可以打断, 其余输入在流程内按流程语义处理。
func canInterruptFlow(text string) bool {
	return greetRe.MatchString(text) || goodbyeRe.MatchString(text)
}
