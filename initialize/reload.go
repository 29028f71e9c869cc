package initialize

import (
	"context"
	"reflect"
	"strings"
	"time"

	"gitee.com/taoJie_1/bank-agent/global"
	"gitee.com/taoJie_1/bank-agent/model/config"
	"gitee.com/taoJie_1/bank-agent/service"
	"gitee.com/taoJie_1/bank-agent/service/user"
	"golang.org/x/sync/errgroup"
)

// HandleConfigChange 检测配置变化并安全地、并发地重载相关服务
func (i *Initializer) HandleConfigChange(oldConfig, newConfig *config.Config) {
	i.reloadLock.Lock()
	defer i.reloadLock.Unlock()

	var restartNeeded []string

	// --- 1. 检查不可热重载的高风险配置 ---
	if !reflect.DeepEqual(oldConfig.Database, newConfig.Database) {
		restartNeeded = append(restartNeeded, "database")
	}
	if oldConfig.GinAddr != newConfig.GinAddr {
		restartNeeded = append(restartNeeded, "gin_addr")
	}
	if oldConfig.GinLogPath != newConfig.GinLogPath || oldConfig.RunLogPath != newConfig.RunLogPath {
		restartNeeded = append(restartNeeded, "log_path")
	}
	if oldConfig.Dataset.ReloadCron != newConfig.Dataset.ReloadCron {
		restartNeeded = append(restartNeeded, "dataset.reload_cron")
	}

	// --- 2. 并发执行可安全热重载的任务 ---
	eg, _ := errgroup.WithContext(context.Background())

	// 时区重载
	if oldConfig.Tz != newConfig.Tz {
		eg.Go(func() error {
			if err := i.InitTz(); err != nil {
				global.Log.Errorf("热重载时区失败: %v", err)
				return err
			}
			return nil
		})
	}

	// Redis客户端重载
	if !reflect.DeepEqual(oldConfig.Redis, newConfig.Redis) {
		eg.Go(func() error {
			if err := i.redisClose(); err != nil {
				global.Log.Warnf("关闭旧Redis客户端失败: %v", err)
			}
			if err := i.initRedis(); err != nil {
				global.Log.Errorf("热重载Redis客户端失败: %v", err)
				return err
			}
			return nil
		})
	}

	// LLM服务重载
	if !reflect.DeepEqual(oldConfig.Llm, newConfig.Llm) {
		eg.Go(func() error {
			if err := i.initLlm(); err != nil {
				global.Log.Errorf("热重载LLM服务失败: %v", err)
				return err
			}
			return nil
		})
	}

	// OSS 服务重载
	if !reflect.DeepEqual(oldConfig.Oss, newConfig.Oss) {
		eg.Go(func() error {
			if err := i.ossClose(); err != nil {
				global.Log.Warnf("关闭旧OSS客户端失败: %v", err)
			}
			if err := i.initOss(); err != nil {
				global.Log.Errorf("热重载OSS客户端失败: %v", err)
				return err
			}
			return nil
		})
	}

	// 对话管线配置重载
	if !reflect.DeepEqual(oldConfig.Bot, newConfig.Bot) {
		eg.Go(func() error {
			// 关键词门限与利率等参数在构造时固化，需要重建服务组
			service.Service.UserServiceGroup = user.NewServiceGroup()
			return nil
		})
	}

	// 数据集文件路径变更时, 延迟触发一次重新导入
	if oldConfig.Dataset.CsvPath != newConfig.Dataset.CsvPath ||
		oldConfig.Dataset.ModelPath != newConfig.Dataset.ModelPath {
		eg.Go(func() error {
			if i.taskManager != nil {
				i.taskManager.DebounceDatasetReload(time.Duration(newConfig.Dataset.ReloadDebounce) * time.Second)
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		global.Log.Errorf("并发热重载过程中发生错误: %v", err)
	}

	// --- 3. 如果有需要重启的变更，发出统一警告 ---
	if len(restartNeeded) > 0 {
		global.Log.Warnf("检测到存在需要 重启服务 才能生效的配置变更: [%s]。", strings.Join(restartNeeded, ", "))
	}

	global.Log.Info("配置变更处理完成")
}
