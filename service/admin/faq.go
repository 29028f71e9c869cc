package admin

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"gitee.com/taoJie_1/bank-agent/dao"
	"gitee.com/taoJie_1/bank-agent/global"
	"gitee.com/taoJie_1/bank-agent/model/db"
	"gitee.com/taoJie_1/bank-agent/model/dto"
	"gitee.com/taoJie_1/bank-agent/model/enum"
	"gitee.com/taoJie_1/bank-agent/task"
	"github.com/jmoiron/sqlx"
)

// FaqService 定义FAQ条目(意图->回复集)的管理接口
type FaqService interface {
	// ListItems 列出数据库中的全部FAQ条目
	ListItems(ctx context.Context) ([]*dto.FaqItem, error)
	// UpsertItem 创建或整体替换一个意图的回复集
	UpsertItem(ctx context.Context, req *dto.UpsertFaqRequest) error
	// DeleteItem 删除一个意图的全部回复
	DeleteItem(ctx context.Context, intent string) error
	// GenerateQuestions 调用LLM根据上下文生成训练问法
	GenerateQuestions(ctx context.Context, req *dto.GenerateQuestionRequest) (*dto.GenerateQuestionResponse, error)
	// ForceSync 手动触发数据集重新同步
	ForceSync(ctx context.Context) error
}

type faqService struct {
	taskManager *task.Manager
}

// NewFaqService 创建 FaqService 实例
func NewFaqService(tm *task.Manager) FaqService {
	return &faqService{taskManager: tm}
}

func (s *faqService) ListItems(ctx context.Context) ([]*dto.FaqItem, error) {
	var list []db.Responses
	if err := dao.App.ResponsesDb.GetAllList(&list); err != nil {
		return nil, fmt.Errorf("读取回复表失败: %w", err)
	}

	grouped := make(map[string]*dto.FaqItem)
	for _, row := range list {
		item, exists := grouped[row.Intent]
		if !exists {
			item = &dto.FaqItem{Intent: row.Intent}
			grouped[row.Intent] = item
		}
		item.Responses = append(item.Responses, row.Content)
		if row.UpdatedAt > item.UpdatedAt {
			item.UpdatedAt = row.UpdatedAt
		}
	}

	items := make([]*dto.FaqItem, 0, len(grouped))
	for _, item := range grouped {
		items = append(items, item)
	}
	// 意图名排序, 保证列表稳定
	sort.Slice(items, func(i, j int) bool {
		return items[i].Intent < items[j].Intent
	})
	return items, nil
}

func (s *faqService) UpsertItem(ctx context.Context, req *dto.UpsertFaqRequest) error {
	const maxResponsesPerIntent = 20
	if len(req.Responses) > maxResponsesPerIntent {
		return fmt.Errorf("每个意图最多只能配置 %d 条回复", maxResponsesPerIntent)
	}

	err := dao.Tx(func(tx *sqlx.Tx) error {
		return dao.App.ResponsesDb.UpsertIntent(req.Intent, req.Responses, tx)
	})
	if err != nil {
		return fmt.Errorf("保存FAQ条目失败: %w", err)
	}

	// 先即时刷新内存映射, 再调度一次延迟的全量校准
	if err := s.taskManager.LoadResponses(); err != nil {
		global.Log.Errorf("UpsertItem后刷新内存映射失败: %v", err)
	}
	debounceDelay := time.Duration(global.Config.Dataset.ReloadDebounce) * time.Second
	s.taskManager.DebounceDatasetReload(debounceDelay)

	return nil
}

func (s *faqService) DeleteItem(ctx context.Context, intent string) error {
	var rows int64
	err := dao.Tx(func(tx *sqlx.Tx) (e error) {
		rows, e = dao.App.ResponsesDb.DeleteIntent(intent, tx)
		return
	})
	if err != nil {
		return fmt.Errorf("删除FAQ条目失败: %w", err)
	}
	if rows == 0 {
		global.Log.Infof("DeleteItem: 未找到意图 %s 的回复, 无需操作", intent)
		return nil
	}

	if err := s.taskManager.LoadResponses(); err != nil {
		global.Log.Errorf("DeleteItem后刷新内存映射失败: %v", err)
	}
	return nil
}

func (s *faqService) GenerateQuestions(ctx context.Context, req *dto.GenerateQuestionRequest) (*dto.GenerateQuestionResponse, error) {
	if global.LlmService == nil {
		return nil, errors.New("LLM服务未初始化")
	}

	var prompt enum.SystemPrompt
	if req.Type == "keyword" {
		prompt = enum.SystemPromptGenQuestionFromKeyword
	} else {
		prompt = enum.SystemPromptGenQuestionFromAnswer
	}

	// 要求LLM返回换行分隔的列表, 便于解析
	const instruction = "Generate 3 related user questions with different phrasings. One question per line, no numbering or extra symbols."
	fullPrompt := fmt.Sprintf("%s\n\n%s", req.Context, instruction)

	questions, err := global.LlmService.GenerateStandardQuestions(ctx, prompt, fullPrompt)
	if err != nil {
		return nil, fmt.Errorf("调用LLM生成问题失败: %w", err)
	}

	return &dto.GenerateQuestionResponse{Questions: questions}, nil
}

func (s *faqService) ForceSync(ctx context.Context) error {
	return s.taskManager.DatasetReloader()
}
