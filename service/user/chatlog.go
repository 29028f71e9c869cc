package user

import (
	"context"
	"encoding/csv"
	"os"
	"strconv"
	"sync"
	"time"

	"gitee.com/taoJie_1/bank-agent/dao"
	"gitee.com/taoJie_1/bank-agent/global"
	"gitee.com/taoJie_1/bank-agent/model/common"
	"gitee.com/taoJie_1/bank-agent/model/db"
	"gitee.com/taoJie_1/bank-agent/model/enum"
	"gitee.com/taoJie_1/bank-agent/utils"
)

type IChatLog interface {
	// 异步落一条对话日志并更新统计计数, 失败不影响本轮应答
	Record(sessionID, content string, res *common.Resolution)
}

type chatLogService struct {
	csvMu sync.Mutex
}

func NewChatLogService() *chatLogService {
	return &chatLogService{}
}

func (d *chatLogService) Record(sessionID, content string, res *common.Resolution) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				global.Log.Errorf("[chatlog]日志协程panic: %v", r)
			}
		}()

		if dao.DB != nil {
			log := &db.ChatLog{
				SessionID:  sessionID,
				Content:    content,
				Intent:     string(res.Intent),
				Confidence: res.Confidence,
			}
			if err := dao.App.ChatLogsDb.Insert(log); err != nil {
				global.Log.Warnf("[chatlog]写入对话日志失败: %v", err)
			}
		}

		if csvPath := global.Config.Dataset.ChatLogCsv; csvPath != "" {
			if err := d.appendCsv(csvPath, sessionID, content, res); err != nil {
				global.Log.Warnf("[chatlog]追加对话CSV失败: %v", err)
			}
		}

		if global.RedisClient != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()

			prefix := global.Config.Redis.StatsPrefix
			if err := global.RedisClient.Incr(ctx, prefix+"total").Err(); err != nil {
				global.Log.Warnf("[chatlog]更新总量计数失败: %v", err)
				return
			}
			if err := global.RedisClient.HIncrBy(ctx, prefix+"intents", string(res.Intent), 1).Err(); err != nil {
				global.Log.Warnf("[chatlog]更新意图计数失败: %v", err)
			}
			if res.Intent != enum.IntentUnknown {
				if err := global.RedisClient.Incr(ctx, prefix+"resolved").Err(); err != nil {
					global.Log.Warnf("[chatlog]更新成功计数失败: %v", err)
				}
			}
		}
	}()
}

// appendCsv 以追加方式落一行对话到CSV, 供外部协作方离线复训使用
func (d *chatLogService) appendCsv(path, sessionID, content string, res *common.Resolution) error {
	d.csvMu.Lock()
	defer d.csvMu.Unlock()

	if err := utils.Mkdir(path); err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	record := []string{
		time.Now().In(global.Tz).Format(time.RFC3339),
		sessionID,
		content,
		string(res.Intent),
		strconv.FormatFloat(res.Confidence, 'f', 4, 64),
	}
	if err := w.Write(record); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
