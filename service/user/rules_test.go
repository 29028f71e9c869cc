package user

import (
	"testing"

	"gitee.com/taoJie_1/bank-agent/model/enum"
)

func TestRulesMatch(t *testing.T) {
	svc := NewRulesService()

	cases := []struct {
		text string
		want enum.Intent
	}{
		{"hello there", enum.IntentGreet},
		{"ok bye", enum.IntentGoodbye},
		{"thank you so much", enum.IntentThanks},
		{"what is my account balance", enum.IntentCheckBalance},
		{"i need a loan", enum.IntentLoanMenu},
		{"emi calculator", enum.IntentEmiStart},
		{"transfer money please", enum.IntentMoneyTransfer},
		{"nearest atm", enum.IntentAtmInfo},
		{"how to register net banking", enum.IntentNetbanking},
		{"ifsc of branch", enum.IntentIfscSearch},
		{"who is the branch manager", enum.IntentWhoIsManager},
		{"deposit a cheque", enum.IntentChequeDeposit},
		{"show my transaction history", enum.IntentAccountStatement},
	}
	for _, tc := range cases {
		intent, ok := svc.Match(tc.text, nil)
		if !ok || intent != tc.want {
			t.Errorf("Match(%q) = (%q, %v), want %q", tc.text, intent, ok, tc.want)
		}
	}
}

func TestRulesCardMenuBranching(t *testing.T) {
	svc := NewRulesService()

	cases := []struct {
		cardType string
		want     enum.Intent
	}{
		{"", enum.IntentCardMenu},
		{"debit", enum.IntentDebitMenu},
		{"credit", enum.IntentCreditMenu},
	}
	for _, tc := range cases {
		entities := map[enum.Slot]string{}
		if tc.cardType != "" {
			entities[enum.SlotCardType] = tc.cardType
		}
		intent, ok := svc.Match("card services", entities)
		if !ok || intent != tc.want {
			t.Errorf("card_type=%q: got (%q, %v), want %q", tc.cardType, intent, ok, tc.want)
		}
	}
}

// card规则在block规则之前是固定的业务顺序:
// 同时含card与block的输入归入卡片菜单而不是挂失
func TestRulesCardBeforeBlock(t *testing.T) {
	svc := NewRulesService()

	intent, ok := svc.Match("block my card", map[enum.Slot]string{})
	if !ok || intent != enum.IntentCardMenu {
		t.Errorf("含card的输入应先被card规则捕获: got (%q, %v)", intent, ok)
	}

	// 不含"card"整词时block组合规则才会命中
	intent, ok = svc.Match("my debit got stolen", nil)
	if !ok || intent != enum.IntentDebitCardBlock {
		t.Errorf("debit+stolen应命中挂失: got (%q, %v)", intent, ok)
	}
}

func TestRulesNoMatch(t *testing.T) {
	svc := NewRulesService()

	if intent, ok := svc.Match("qwerty asdfgh", nil); ok {
		t.Errorf("无规则命中时应返回false: got %q", intent)
	}
}

func TestCanInterruptFlow(t *testing.T) {
	if !canInterruptFlow("hello") || !canInterruptFlow("bye") {
		t.Error("问候与告别应可打断流程")
	}
	if canInterruptFlow("thanks a lot") || canInterruptFlow("50000 12") {
		t.Error("其他输入不应打断流程")
	}
}
