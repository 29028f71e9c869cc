package user

import (
	"testing"

	"gitee.com/taoJie_1/bank-agent/model/enum"
)

func TestExtract(t *testing.T) {
	svc := NewExtractorService()

	entities := svc.Extract("Transfer ₹5000 to 9876543210 via UPI from my savings account in Chennai")

	want := map[enum.Slot]string{
		enum.SlotAccountNumber: "9876543210",
		enum.SlotMobileNumber:  "9876543210",
		enum.SlotAmount:        "5000",
		enum.SlotCityName:      "chennai",
		enum.SlotPaymentMethod: "UPI",
		enum.SlotAccountType:   "savings",
	}
	for slot, val := range want {
		if got := entities[slot]; got != val {
			t.Errorf("槽位 %s 抽取错误: got %q, want %q", slot, got, val)
		}
	}
}

// 10位数字同时满足账号和手机号两种形态, 两个槽位都应填充
func TestExtractTenDigitFillsBothSlots(t *testing.T) {
	svc := NewExtractorService()

	entities := svc.Extract("my number is 9876543210")
	if entities[enum.SlotAccountNumber] != "9876543210" {
		t.Errorf("账号槽位未填充: %v", entities)
	}
	if entities[enum.SlotMobileNumber] != "9876543210" {
		t.Errorf("手机号槽位未填充: %v", entities)
	}
}

func TestExtractCardTypePriority(t *testing.T) {
	svc := NewExtractorService()

	cases := []struct {
		text string
		want string
	}{
		{"block my debit card", "debit"},
		{"block my credit card", "credit"},
		// 同时出现时debit规则在前
		{"debit and credit card", "debit"},
	}
	for _, tc := range cases {
		if got := svc.Extract(tc.text)[enum.SlotCardType]; got != tc.want {
			t.Errorf("Extract(%q) card_type = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestExtractPaymentMethod(t *testing.T) {
	svc := NewExtractorService()

	if got := svc.Extract("pay via NEFT please")[enum.SlotPaymentMethod]; got != "Bank Transfer" {
		t.Errorf("neft应归一化为Bank Transfer, got %q", got)
	}
	if got := svc.Extract("pay via upi")[enum.SlotPaymentMethod]; got != "UPI" {
		t.Errorf("upi应归一化为UPI, got %q", got)
	}
}

func TestExtractNoMatch(t *testing.T) {
	svc := NewExtractorService()

	entities := svc.Extract("hello there")
	if len(entities) != 0 {
		t.Errorf("无实体输入应返回空映射, got %v", entities)
	}
}
