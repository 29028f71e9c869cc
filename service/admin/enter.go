package admin

import "gitee.com/taoJie_1/bank-agent/task"

type ServiceGroup struct {
	FaqService    FaqService
	UploadService UploadService
}

func NewServiceGroup(taskManager *task.Manager) ServiceGroup {
	return ServiceGroup{
		FaqService:    NewFaqService(taskManager),
		UploadService: NewUploadService(taskManager),
	}
}
