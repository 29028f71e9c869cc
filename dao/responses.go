package dao

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gitee.com/taoJie_1/bank-agent/global"
	"gitee.com/taoJie_1/bank-agent/model/db"
	"gitee.com/taoJie_1/bank-agent/model/enum"
	"github.com/jmoiron/sqlx"
)

type ResponsesDb struct{}

// 获取所有数据, 按意图和sort排序, 保证内存映射内的回复顺序稳定
func (d *ResponsesDb) GetAllList(list *[]db.Responses, tx ...*sqlx.Tx) error {
	sql := fmt.Sprintf("SELECT `id`, `intent`, `content`, `sort`, `updated_at` FROM `%s` ORDER BY `intent` ASC, `sort` ASC, `id` ASC;", db.Responses{}.TableName())

	if len(tx) > 0 && tx[0] != nil {
		return tx[0].Select(list, sql)
	}
	return DB.Select(list, sql)
}

// 清空表
func (d *ResponsesDb) CleanTable(tx *sqlx.Tx) error {
	if tx == nil {
		return errors.New("请使用事务[rsp01]")
	}

	switch global.Config.Database.Type {
	case string(enum.SQLITE):
		sql := fmt.Sprintf("DELETE FROM `%s`", db.Responses{}.TableName())
		if _, err := tx.Exec(sql); err != nil {
			return err
		}
		// 重置自增ID
		sql = fmt.Sprintf("DELETE FROM sqlite_sequence WHERE name='%s'", db.Responses{}.TableName())
		_, err := tx.Exec(sql)
		return err
	case string(enum.MYSQL):
		sql := fmt.Sprintf("TRUNCATE TABLE `%s`", db.Responses{}.TableName())
		_, err := tx.Exec(sql)
		return err
	}

	return errors.New("数据库类型错误[rsp02]")
}

// BatchInsert 按意图批量插入回复, 意图按字典序、回复按传入顺序写sort值
func (d *ResponsesDb) BatchInsert(data map[string][]string, tx *sqlx.Tx) (int64, error) {
	if tx == nil {
		return 0, errors.New("请使用事务[rsp01]")
	}

	if len(data) == 0 {
		return 0, nil
	}

	intents := make([]string, 0, len(data))
	for intent := range data {
		intents = append(intents, intent)
	}
	sort.Strings(intents)

	var sqlData []map[string]interface{}
	for _, intent := range intents {
		for i, content := range data[intent] {
			content = strings.TrimSpace(content)
			if content == "" {
				continue // 跳过无效数据
			}
			sqlData = append(sqlData, map[string]interface{}{
				"intent":  intent,
				"content": content,
				"sort":    i,
			})
		}
	}

	sql, args, err := utils.getBatchInsertSql(db.Responses{}, sqlData)
	if err != nil {
		return 0, fmt.Errorf("构建批量插入SQL失败: %w", err)
	}
	if sql == "" {
		return 0, nil
	}

	sql = tx.Rebind(sql)
	result, err := tx.Exec(sql, args...)
	if err != nil {
		return 0, fmt.Errorf("批量插入数据失败: %w", err)
	}

	return result.RowsAffected()
}

// UpsertIntent 整体替换一个意图的全部回复(管理后台编辑FAQ时使用)
func (d *ResponsesDb) UpsertIntent(intent string, responses []string, tx *sqlx.Tx) error {
	if tx == nil {
		return errors.New("请使用事务[rsp01]")
	}

	sql := fmt.Sprintf("DELETE FROM `%s` WHERE `intent` = ?", db.Responses{}.TableName())
	if _, err := tx.Exec(tx.Rebind(sql), intent); err != nil {
		return fmt.Errorf("删除旧回复失败: %w", err)
	}

	_, err := d.BatchInsert(map[string][]string{intent: responses}, tx)
	return err
}

// DeleteIntent 删除一个意图的全部回复, 返回删除行数
func (d *ResponsesDb) DeleteIntent(intent string, tx *sqlx.Tx) (int64, error) {
	if tx == nil {
		return 0, errors.New("请使用事务[rsp01]")
	}

	sql := fmt.Sprintf("DELETE FROM `%s` WHERE `intent` = ?", db.Responses{}.TableName())
	result, err := tx.Exec(tx.Rebind(sql), intent)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
