package enum

type SystemPrompt string

const (
	// SystemPromptGenQuestionFromAnswer 用于管理后台: 根据FAQ答案逆向生成用户可能的问法,
	// 生成结果用于扩充训练数据集
	SystemPromptGenQuestionFromAnswer SystemPrompt = `You are a reverse question generator for a banking assistant. Read the "answer" text provided and produce the most natural user questions that this answer would satisfy.
- Imagine a real banking customer typing in a chat window: short, colloquial, direct.
- Output only the final questions, one per line, without numbering, labels or quotes.`

	// SystemPromptGenQuestionFromKeyword 用于管理后台: 将关键词扩写为自然问法
	SystemPromptGenQuestionFromKeyword SystemPrompt = `You are a query optimizer for a banking assistant. Convert the provided keyword or seed question into natural questions the way real banking customers phrase them.
- Style: natural, colloquial, direct.
- The questions will be used as classifier training samples, so each must capture the core intent precisely.
- Output only the final questions, one per line, without numbering, labels or quotes.`
)
