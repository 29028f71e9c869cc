package db

// ChatLog 一轮对话的路由结果, 只追加不修改
type ChatLog struct {
	BaseField
	SessionID  string  `db:"session_id" json:"session_id" info:"会话id"`
	Content    string  `db:"content" json:"content" info:"用户原始输入"`
	Intent     string  `db:"intent" json:"intent" info:"解析出的意图"`
	Confidence float64 `db:"confidence" json:"confidence" info:"置信度"`
}

func (ChatLog) TableName() string {
	return `chat_logs`
}
