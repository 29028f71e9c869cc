package user

import (
	"github.com/gin-gonic/gin"

	"gitee.com/taoJie_1/bank-agent/global"
	"gitee.com/taoJie_1/bank-agent/model/common"
	"gitee.com/taoJie_1/bank-agent/service"
)

type ChatApi struct{}

// HandleChat 同步处理一轮对话: 解析意图并立即返回(意图, 置信度, 实体, 回复)
func (d *ChatApi) HandleChat(ctx *gin.Context) {
	var req common.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		common.Fail(ctx, "参数无效")
		return
	}

	if err := service.Service.UserServiceGroup.Validator.ValidatorChatRequest(&req); err != nil {
		common.Fail(ctx, err.Error())
		return
	}

	defer func() {
		if p := recover(); p != nil {
			global.Log.Errorf("[HandleChat]: %v", p)
			common.Fail(ctx, "服务暂时不可用")
		}
	}()

	sess := global.Sessions.GetOrCreate(req.SessionID)
	res := service.Service.UserServiceGroup.Router.Route(req.Content, sess)

	common.Success(ctx, res)
}
