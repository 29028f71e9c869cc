package llm

import (
	"context"
	"errors"
	"strings"

	"gitee.com/taoJie_1/bank-agent/model/config"
	"gitee.com/taoJie_1/bank-agent/model/enum"
	"github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

// client 封装了与LLM交互的底层逻辑。
// 线上聊天管线不依赖LLM, 只有管理后台的问题生成助手会调用。
type client struct {
	log       *logrus.Logger
	llmClient *openai.Client
	llmConfig config.Llm
}

type Service interface {
	// 执行一次性的文本生成任务, 用于后台辅助功能
	GetCompletion(ctx context.Context, systemPrompt enum.SystemPrompt, content string, temperature ...float32) (string, error)
	// 根据输入文本(关键词或答案), 生成若干标准的、自然的用户问法
	GenerateStandardQuestions(ctx context.Context, prompt enum.SystemPrompt, text string) ([]string, error)
}

// NewClient 创建一个新的LLM客户端实例, 并通过依赖注入初始化
func NewClient(log *logrus.Logger, llmClient *openai.Client, cfg config.Llm) Service {
	return &client{
		log:       log,
		llmClient: llmClient,
		llmConfig: cfg,
	}
}

// filterContent 从LLM的原始响应中剥离思考过程标签
func (c *client) filterContent(rawAnswer string) string {
	if parts := strings.SplitN(rawAnswer, "</think>", 2); len(parts) > 1 {
		return strings.TrimSpace(parts[1])
	}
	return strings.TrimSpace(rawAnswer)
}

func (c *client) GetCompletion(ctx context.Context, systemPrompt enum.SystemPrompt, content string, temperature ...float32) (string, error) {
	if c.llmClient == nil {
		return "", errors.New("LLM客户端未初始化")
	}
	if c.llmConfig.Model == "" {
		return "", errors.New("未找到LLM客户端配置")
	}

	messages := []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleSystem,
			Content: string(systemPrompt),
		},
		{
			Role:    openai.ChatMessageRoleUser,
			Content: content,
		},
	}

	req := openai.ChatCompletionRequest{
		Model:    c.llmConfig.Model,
		Messages: messages,
	}
	if len(temperature) > 0 {
		req.Temperature = temperature[0]
	}

	resp, err := c.llmClient.CreateChatCompletion(ctx, req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return "", errors.New("LLM请求被取消")
		}
		c.log.Errorf("LLM API调用失败: %v", err)
		return "", errors.New("LLM服务暂不可用, 请稍后再试")
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", errors.New("LLM服务返回了空结果")
	}
	return c.filterContent(resp.Choices[0].Message.Content), nil
}

// GenerateStandardQuestions 按行拆分生成结果, 过滤空行
func (c *client) GenerateStandardQuestions(ctx context.Context, prompt enum.SystemPrompt, text string) ([]string, error) {
	raw, err := c.GetCompletion(ctx, prompt, text, 0.2)
	if err != nil {
		return nil, err
	}

	var questions []string
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			questions = append(questions, line)
		}
	}
	if len(questions) == 0 {
		return nil, errors.New("LLM未生成有效问题")
	}
	return questions, nil
}
