package service

import (
	"gitee.com/taoJie_1/bank-agent/service/admin"
	"gitee.com/taoJie_1/bank-agent/service/user"
	"gitee.com/taoJie_1/bank-agent/task"
)

type ServiceGroup struct {
	UserServiceGroup  user.ServiceGroup
	AdminServiceGroup admin.ServiceGroup
}

var Service = new(ServiceGroup)

// Setup 在配置与全局依赖就绪后装配各服务
func Setup(taskManager *task.Manager) {
	Service.UserServiceGroup = user.NewServiceGroup()
	Service.AdminServiceGroup = admin.NewServiceGroup(taskManager)
}
