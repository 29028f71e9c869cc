package controller

import (
	"gitee.com/taoJie_1/bank-agent/controller/admin"
	"gitee.com/taoJie_1/bank-agent/controller/user"
)

var Api = new(ApiGroup)

type ApiGroup struct {
	UserApiGroup  user.ApiGroup
	AdminApiGroup admin.ApiGroup
}
