package task

import (
	"sync"
	"time"

	"gitee.com/taoJie_1/bank-agent/global"
)

var (
	datasetReloadTimer *time.Timer
	datasetReloadMutex sync.Mutex
)

// DebounceDatasetReload 为 DatasetReloader 提供防抖调用功能。
// 每次调用都会重置定时器。
func (m *Manager) DebounceDatasetReload(delay time.Duration) {
	datasetReloadMutex.Lock()
	defer datasetReloadMutex.Unlock()

	// 如果已存在一个定时器，则停止它
	if datasetReloadTimer != nil {
		datasetReloadTimer.Stop()
	}

	// 创建一个新的定时器，在延迟时间后执行同步任务
	datasetReloadTimer = time.AfterFunc(delay, func() {
		global.Log.Info("触发经防抖处理的数据集重同步任务...")
		if err := m.DatasetReloader(); err != nil {
			global.Log.Errorf("执行经防抖处理的数据集重同步任务失败: %v", err)
		}
	})
	global.Log.Infof("数据集重同步任务已调度在 %v 后执行", delay)
}
