package initialize

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"gitee.com/taoJie_1/bank-agent/global"
	"gitee.com/taoJie_1/bank-agent/internal/llm"
	"gitee.com/taoJie_1/bank-agent/internal/oss"
	"gitee.com/taoJie_1/bank-agent/internal/redis"
	"gitee.com/taoJie_1/bank-agent/utils"
	"github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

// setupLogFile 是一个辅助函数，用于创建和打开一个每日轮转的日志文件。
func (i *Initializer) setupLogFile(logPath string) (*os.File, error) {
	// 采用更通用的日志命名规范, 例如: gin.log -> gin.log.2025-10-28
	dateSuffix := time.Now().In(global.Tz).Format("2006-01-02")
	dailyLogPath := fmt.Sprintf("%s.%s", logPath, dateSuffix)

	if err := utils.CreateFile(dailyLogPath); err != nil {
		return nil, fmt.Errorf("创建日志文件 '%s' 失败: %w", dailyLogPath, err)
	}

	file, err := os.OpenFile(dailyLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("打开日志文件 '%s' 失败: %w", dailyLogPath, err)
	}

	i.logFileClosers = append(i.logFileClosers, file)
	return file, nil
}

// CustomJSONFormatter for logrus to set timezone
type CustomJSONFormatter struct {
	logrus.JSONFormatter
}

func (f *CustomJSONFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	entry.Time = entry.Time.In(global.Tz)
	return f.JSONFormatter.Format(entry)
}

// InitLog 初始化logrus日志库
func (i *Initializer) InitLog() error {
	runfile, err := i.setupLogFile(global.Config.RunLogPath)
	if err != nil {
		return fmt.Errorf("初始化运行日志失败: %w", err)
	}

	global.Log = logrus.New()
	global.Log.SetFormatter(&CustomJSONFormatter{
		JSONFormatter: logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "msg",
				logrus.FieldKeyTime:  "time",
			},
		},
	})
	if global.Config.Debug {
		global.Log.SetLevel(logrus.DebugLevel)
	} else {
		global.Log.SetLevel(logrus.InfoLevel)
	}

	global.Log.SetOutput(io.MultiWriter(os.Stdout, runfile))
	return nil
}

func (i *Initializer) InitTz() error {
	Location, err := time.LoadLocation(global.Config.Tz)
	if err != nil {
		return fmt.Errorf("时区配置失败[siortuj]: %w", err)
	}
	global.Tz = Location
	return nil
}

// initRedis 初始化Redis客户端; 统计计数是尽力而为的功能, 失败不阻塞启动
func (i *Initializer) initRedis() error {
	client, err := redis.NewClient(
		global.Config.Redis.Addr,
		global.Config.Redis.Password,
		int(global.Config.Redis.DB),
	)
	if err != nil {
		global.Log.Warnf("初始化Redis客户端失败, 统计计数将不可用: %v", err)
		return err
	}
	global.RedisClient = client
	global.Log.Info("初始化Redis服务成功")
	return nil
}

// redisClose 关闭Redis客户端连接
func (i *Initializer) redisClose() error {
	if global.RedisClient != nil {
		return global.RedisClient.Close()
	}
	return nil
}

func (i *Initializer) initLlm() error {
	if err := i.doInitLlm(); err != nil {
		global.Log.Warnf("初始化LLM服务失败, 问题生成助手将不可用: %v", err)
		return err
	}
	global.Log.Info("初始化LLM服务成功")
	return nil
}

func (i *Initializer) doInitLlm() error {
	cfg := global.Config.Llm
	if cfg.Url == "" || cfg.Model == "" {
		return fmt.Errorf("未配置LLM")
	}

	clientConfig := openai.DefaultConfig(cfg.Auth)
	clientConfig.BaseURL = cfg.Url
	clientConfig.HTTPClient = &http.Client{Timeout: time.Duration(cfg.Timeout) * time.Second}
	llmClient := openai.NewClientWithConfig(clientConfig)

	// 通过ListModels接口验证服务是否可用
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := llmClient.ListModels(ctx); err != nil {
		return fmt.Errorf("无法连接到LLM服务 (url: %s): %w", cfg.Url, err)
	}

	global.LlmService = llm.NewClient(global.Log, llmClient, cfg)
	return nil
}

func (i *Initializer) initOss() error {
	cfg := global.Config.Oss
	// OSS仅用于数据集备份, 配置不完整时直接跳过
	if cfg.Endpoint == "" || cfg.Bucket == "" || cfg.AccessKeyId == "" || cfg.AccessKeySecret == "" {
		global.Log.Info("OSS配置不完整，跳过初始化")
		return nil
	}

	// 传递全局时区信息给OSS客户端
	client, err := oss.NewClient(cfg, global.Tz)
	if err != nil {
		global.Log.Warnf("初始化OSS服务失败: %v", err)
		return err
	}
	global.OssService = client
	global.Log.Info("初始化OSS服务成功")
	return nil
}

func (i *Initializer) ossClose() error {
	if global.OssService != nil {
		return global.OssService.Close()
	}
	return nil
}
