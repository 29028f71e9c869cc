package task

import (
	"fmt"
	"os"

	"gitee.com/taoJie_1/bank-agent/dao"
	"gitee.com/taoJie_1/bank-agent/global"
	"gitee.com/taoJie_1/bank-agent/internal/classifier"
	"gitee.com/taoJie_1/bank-agent/internal/dataset"
	"gitee.com/taoJie_1/bank-agent/model/db"
	"github.com/jmoiron/sqlx"
)

// DatasetReloader 从配置的CSV重新加载数据集: CSV -> 数据库 -> 内存
func (m *Manager) DatasetReloader() error {
	global.Log.Println("开始同步训练数据集...")

	set, err := dataset.Load(global.Config.Dataset.CsvPath)
	if err != nil {
		return fmt.Errorf("加载数据集失败: %w", err)
	}
	if set.Skipped > 0 {
		global.Log.Warnf("数据集中有 %d 行格式异常被跳过", set.Skipped)
	}

	return m.ImportDataset(set)
}

// ImportDataset 将已解析的数据集写入数据库并刷新内存映射。
// 管理后台上传新数据集后也走这条路径。
func (m *Manager) ImportDataset(set *dataset.Set) error {
	if err := syncDb(set.ByIntent()); err != nil {
		return err
	}
	return m.LoadResponses()
}

// 数据库处理
func syncDb(data map[string][]string) error {
	var count int64
	err := dao.Tx(func(tx *sqlx.Tx) (e error) {
		// 清空旧数据
		e = dao.App.ResponsesDb.CleanTable(tx)
		if e != nil {
			return e
		}

		// 插入新数据
		count, e = dao.App.ResponsesDb.BatchInsert(data, tx)
		if e != nil {
			return e
		}
		return
	})
	if err != nil {
		global.Log.Errorln("[rspsync]同步回复表到数据库失败:", err)
		return fmt.Errorf("同步回复表到数据库失败: %w", err)
	}

	global.Log.Printf("成功从数据集同步 %d 条预设回复到数据库", count)
	return nil
}

// LoadResponses 从数据库加载预设回复到内存
func (m *Manager) LoadResponses() error {
	var list []db.Responses
	if err := dao.App.ResponsesDb.GetAllList(&list); err != nil {
		return fmt.Errorf("加载预设回复失败: %w", err)
	}
	if len(list) < 1 {
		return nil
	}

	tempMap := make(map[string][]string)
	for _, v := range list {
		tempMap[v.Intent] = append(tempMap[v.Intent], v.Content)
	}

	global.Responses.Replace(tempMap)
	global.Log.Printf("成功加载 %d 个意图的预设回复到内存", len(tempMap))

	return nil
}

// ClassifierReloader 重新加载意图分类模型工件。
// 工件缺失是降级模式而非错误: 清空当前模型, 管线退化为纯规则+关键词。
func (m *Manager) ClassifierReloader() error {
	path := global.Config.Dataset.ModelPath
	if path == "" {
		global.Classifier.Set(nil)
		global.Log.Warn("未配置分类模型路径, 以纯规则模式运行")
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		global.Classifier.Set(nil)
		global.Log.Warnf("分类模型工件 %s 不存在, 以纯规则模式运行", path)
		return nil
	}

	model, err := classifier.Load(path)
	if err != nil {
		return fmt.Errorf("加载分类模型失败: %w", err)
	}

	global.Classifier.Set(model)
	global.Log.Printf("成功加载分类模型, 共 %d 个意图类别", len(model.Classes()))
	return nil
}
