package initialize

import (
	"gitee.com/taoJie_1/bank-agent/global"
	"gitee.com/taoJie_1/bank-agent/task"
)

// loadData 加载业务所需数据
func (i *Initializer) loadData(taskManager *task.Manager) {
	// 预设回复是服务的基础数据, 加载失败无法提供任何回复
	if err := taskManager.DatasetReloader(); err != nil {
		panic("启动时导入数据集失败: " + err.Error())
	}

	// 分类模型缺失时退化为纯规则模式, 不阻塞启动
	if err := taskManager.ClassifierReloader(); err != nil {
		global.Log.Errorln("启动时加载分类模型失败, 将以纯规则模式运行:", err)
	}
}
