package user

import (
	"errors"
	"strings"
	"unicode/utf8"

	"gitee.com/taoJie_1/bank-agent/global"
	"gitee.com/taoJie_1/bank-agent/model/common"
)

type IValidator interface {
	ValidatorChatRequest(data *common.ChatRequest) error
}

type Validator struct{}

func (v *Validator) ValidatorChatRequest(data *common.ChatRequest) error {
	if strings.TrimSpace(data.SessionID) == "" {
		return errors.New("参数错误[vchat1]")
	}
	maxLen := global.Config.Bot.MaxInputLength
	if maxLen > 0 && utf8.RuneCountInString(data.Content) > int(maxLen) {
		return errors.New("输入内容过长[vchat2]")
	}
	return nil
}
