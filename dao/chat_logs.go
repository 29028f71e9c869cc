package dao

import (
	"fmt"

	"gitee.com/taoJie_1/bank-agent/model/db"
	"gitee.com/taoJie_1/bank-agent/model/enum"
)

type ChatLogsDb struct{}

// Insert 写入一条对话日志
func (d *ChatLogsDb) Insert(log *db.ChatLog) error {
	sqlData := []map[string]interface{}{{
		"session_id": log.SessionID,
		"content":    log.Content,
		"intent":     log.Intent,
		"confidence": log.Confidence,
	}}

	sql, args, err := utils.getBatchInsertSql(db.ChatLog{}, sqlData)
	if err != nil {
		return fmt.Errorf("构建插入SQL失败: %w", err)
	}

	sql = DB.Rebind(sql)
	if _, err := DB.Exec(sql, args...); err != nil {
		return fmt.Errorf("插入对话日志失败: %w", err)
	}
	return nil
}

// CountTotal 对话日志总条数
func (d *ChatLogsDb) CountTotal() (int64, error) {
	var total int64
	sql := fmt.Sprintf("SELECT COUNT(*) FROM `%s`", db.ChatLog{}.TableName())
	err := DB.Get(&total, sql)
	return total, err
}

// CountResolved 成功识别(非兜底意图)的条数
func (d *ChatLogsDb) CountResolved() (int64, error) {
	var count int64
	sql := fmt.Sprintf("SELECT COUNT(*) FROM `%s` WHERE `intent` != ?", db.ChatLog{}.TableName())
	err := DB.Get(&count, DB.Rebind(sql), string(enum.IntentUnknown))
	return count, err
}

type intentCount struct {
	Intent string `db:"intent"`
	Count  int64  `db:"count"`
}

// CountByIntent 各意图命中次数
func (d *ChatLogsDb) CountByIntent() (map[string]int64, error) {
	var rows []intentCount
	sql := fmt.Sprintf("SELECT `intent`, COUNT(*) AS `count` FROM `%s` GROUP BY `intent`", db.ChatLog{}.TableName())
	if err := DB.Select(&rows, sql); err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Intent] = row.Count
	}
	return counts, nil
}

// GetRecent 最近的若干条日志, 按时间倒序
func (d *ChatLogsDb) GetRecent(limit int, list *[]db.ChatLog) error {
	sql := fmt.Sprintf("SELECT `id`, `session_id`, `content`, `intent`, `confidence`, `created_at` FROM `%s` ORDER BY `id` DESC LIMIT ?", db.ChatLog{}.TableName())
	return DB.Select(list, DB.Rebind(sql), limit)
}

// DeleteBefore 删除指定时间戳之前的日志, 返回删除行数
func (d *ChatLogsDb) DeleteBefore(timestamp int64) (int64, error) {
	sql := fmt.Sprintf("DELETE FROM `%s` WHERE `created_at` < ?", db.ChatLog{}.TableName())
	result, err := DB.Exec(DB.Rebind(sql), timestamp)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
