package dto

// FaqItem 代表管理后台中的一个FAQ条目: 一个意图与其全部预设回复
type FaqItem struct {
	Intent    string   `json:"intent"`
	Responses []string `json:"responses"`
	UpdatedAt int64    `json:"updatedAt,omitempty"`
}

// UpsertFaqRequest 创建或更新FAQ条目的请求体
type UpsertFaqRequest struct {
	Intent    string   `json:"intent" binding:"required"`
	Responses []string `json:"responses" binding:"required,min=1"`
}

// GenerateQuestionRequest 是AI问题生成助手的请求体
type GenerateQuestionRequest struct {
	Context string `json:"context" binding:"required"`
	Type    string `json:"type"` // 'answer' 或 'keyword'
}

// GenerateQuestionResponse 是AI问题生成助手的响应体
type GenerateQuestionResponse struct {
	Questions []string `json:"questions"`
}
