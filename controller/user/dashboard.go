package user

import (
	"gitee.com/taoJie_1/bank-agent/model/common"
	"gitee.com/taoJie_1/bank-agent/service"
	"github.com/gin-gonic/gin"
)

type DashboardApi struct{}

// GetStats 返回对话日志的聚合分析数据, 供仪表盘展示
func (p *DashboardApi) GetStats(ctx *gin.Context) {
	var req common.DashboardQuery
	if err := ctx.ShouldBindQuery(&req); err != nil {
		common.Fail(ctx, "参数解析失败")
		return
	}

	stats, err := service.Service.UserServiceGroup.Dashboard.Stats(req.RecentLimit)
	if err != nil {
		common.Fail(ctx, err.Error())
		return
	}

	common.Success(ctx, stats)
}
