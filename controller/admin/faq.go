package admin

import (
	"gitee.com/taoJie_1/bank-agent/model/common"
	"gitee.com/taoJie_1/bank-agent/model/dto"
	"gitee.com/taoJie_1/bank-agent/service"
	"github.com/gin-gonic/gin"
)

type FaqApi struct{}

// ListItems 列出全部FAQ条目
func (f *FaqApi) ListItems(ctx *gin.Context) {
	items, err := service.Service.AdminServiceGroup.FaqService.ListItems(ctx.Request.Context())
	if err != nil {
		common.Fail(ctx, err.Error())
		return
	}
	common.Success(ctx, items)
}

// UpsertItem 创建或更新一个意图的回复集
func (f *FaqApi) UpsertItem(ctx *gin.Context) {
	var req dto.UpsertFaqRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		common.Fail(ctx, "参数无效")
		return
	}

	if err := service.Service.AdminServiceGroup.FaqService.UpsertItem(ctx.Request.Context(), &req); err != nil {
		common.Fail(ctx, err.Error())
		return
	}
	common.SuccessOk(ctx, "保存成功")
}

// DeleteItem 删除一个意图的全部回复
func (f *FaqApi) DeleteItem(ctx *gin.Context) {
	intent := ctx.Param("intent")
	if intent == "" {
		common.Fail(ctx, "参数无效")
		return
	}

	if err := service.Service.AdminServiceGroup.FaqService.DeleteItem(ctx.Request.Context(), intent); err != nil {
		common.Fail(ctx, err.Error())
		return
	}
	common.SuccessOk(ctx, "删除成功")
}

// GenerateQuestions 调用LLM为FAQ生成训练问法
func (f *FaqApi) GenerateQuestions(ctx *gin.Context) {
	var req dto.GenerateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		common.Fail(ctx, "参数无效")
		return
	}

	resp, err := service.Service.AdminServiceGroup.FaqService.GenerateQuestions(ctx.Request.Context(), &req)
	if err != nil {
		common.Fail(ctx, err.Error())
		return
	}
	common.Success(ctx, resp)
}

// ForceSync 手动触发数据集重新同步
func (f *FaqApi) ForceSync(ctx *gin.Context) {
	if err := service.Service.AdminServiceGroup.FaqService.ForceSync(ctx.Request.Context()); err != nil {
		common.Fail(ctx, err.Error())
		return
	}
	common.SuccessOk(ctx, "同步完成")
}
