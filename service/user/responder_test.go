package user

import (
	"testing"

	"gitee.com/taoJie_1/bank-agent/global"
	"gitee.com/taoJie_1/bank-agent/model/enum"
)

func TestResolveDatasetFirst(t *testing.T) {
	global.Responses.Replace(map[string][]string{
		"greet": {"Namaste! Welcome to the bank.", "Hi there"},
	})
	defer global.Responses.Replace(map[string][]string{})

	svc := NewResponderService()
	// 数据集存在时优先数据集, 且固定取首条
	if got := svc.Resolve(enum.IntentGreet); got != "Namaste! Welcome to the bank." {
		t.Errorf("应优先返回数据集首条回复, got %q", got)
	}
}

func TestResolveAliasKey(t *testing.T) {
	global.Responses.Replace(map[string][]string{
		"atm_location":        {"Nearest ATM is at Main Street."},
		"netbanking_register": {"Visit the portal to register."},
	})
	defer global.Responses.Replace(map[string][]string{})

	svc := NewResponderService()
	if got := svc.Resolve(enum.IntentAtmInfo); got != "Nearest ATM is at Main Street." {
		t.Errorf("atm_info应回退到别名键atm_location, got %q", got)
	}
	if got := svc.Resolve(enum.IntentNetbanking); got != "Visit the portal to register." {
		t.Errorf("netbanking应回退到别名键netbanking_register, got %q", got)
	}
}

func TestResolveBuiltinDefault(t *testing.T) {
	global.Responses.Replace(map[string][]string{})

	svc := NewResponderService()
	if got := svc.Resolve(enum.IntentCardMenu); got != builtinDefaults[enum.IntentCardMenu] {
		t.Errorf("数据集缺失时应使用内置回复, got %q", got)
	}
}

func TestResolveFallback(t *testing.T) {
	global.Responses.Replace(map[string][]string{})

	svc := NewResponderService()
	if got := svc.Resolve(enum.Intent("no_such_intent")); got != FallbackReply {
		t.Errorf("未知意图应使用兜底回复, got %q", got)
	}
}
