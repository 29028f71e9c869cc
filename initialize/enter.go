package initialize

import (
	"context"
	"io"
	"sync"

	"gitee.com/taoJie_1/bank-agent/task"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
)

// Initializer 统一管理项目的所有初始化工作
type Initializer struct {
	cron           *cron.Cron
	logFileClosers []io.Closer
	reloadLock     sync.Mutex
	taskManager    *task.Manager
}

// Run 并发执行所有核心服务的初始化
func (i *Initializer) Run() error {
	eg, _ := errgroup.WithContext(context.Background())

	// 关键任务，失败会终止程序
	eg.Go(i.dbStart)

	// 非关键任务，失败只打印日志，不影响启动
	eg.Go(func() error {
		i.initRedis()
		return nil
	})
	eg.Go(func() error {
		i.initLlm()
		return nil
	})
	eg.Go(func() error {
		i.initOss()
		return nil
	})

	return eg.Wait()
}

// Close 优雅地关闭和释放所有资源
func (i *Initializer) Close() {
	i.dbClose()
	i.redisClose()
	i.ossClose()
	i.timerStop()
	for _, closer := range i.logFileClosers {
		closer.Close()
	}
}

// StartSystem 启动系统级服务，如定时器和数据加载
func (i *Initializer) StartSystem(taskManager *task.Manager) {
	i.taskManager = taskManager
	if err := i.timerStart(taskManager); err != nil {
		panic(err)
	}
	i.loadData(taskManager)
}
