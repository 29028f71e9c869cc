package common

// ChatRequest 是聊天接口的请求体, 一次请求对应一轮对话
type ChatRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Content   string `json:"content"`
}

// DashboardQuery 仪表盘查询参数
type DashboardQuery struct {
	RecentLimit int `form:"recent_limit"`
}
