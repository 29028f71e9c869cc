package admin

import (
	"gitee.com/taoJie_1/bank-agent/model/common"
	"gitee.com/taoJie_1/bank-agent/service"
	"github.com/gin-gonic/gin"
)

type UploadApi struct{}

// UploadDataset 处理管理面板的数据集CSV上传
func (u *UploadApi) UploadDataset(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		common.Fail(c, "获取文件失败: "+err.Error())
		return
	}

	count, err := service.Service.AdminServiceGroup.UploadService.UploadDataset(file)
	if err != nil {
		common.Fail(c, "上传失败: "+err.Error())
		return
	}

	common.Success(c, gin.H{"imported": count})
}
