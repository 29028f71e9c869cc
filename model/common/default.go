package common

import "gitee.com/taoJie_1/bank-agent/model/enum"

// Resolution 是一轮对话的完整解析结果: (意图, 置信度, 实体, 回复)
type Resolution struct {
	Intent     enum.Intent          `json:"intent"`
	Confidence float64              `json:"confidence"`
	Entities   map[enum.Slot]string `json:"entities"`
	Reply      string               `json:"reply"`
}

// LogRecord 是一条只写不读的对话日志, 供外部分析使用
type LogRecord struct {
	Time       int64       `json:"time"`
	SessionID  string      `json:"session_id"`
	Content    string      `json:"content"`
	Intent     enum.Intent `json:"intent"`
	Confidence float64     `json:"confidence"`
}

// DashboardStats 仪表盘聚合数据
type DashboardStats struct {
	TotalQueries  int64            `json:"total_queries"`
	SuccessRate   float64          `json:"success_rate"`
	UniqueIntents int64            `json:"unique_intents"`
	IntentCounts  map[string]int64 `json:"intent_counts"`
	Recent        []LogRecord      `json:"recent"`
}
