package dao

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"gitee.com/taoJie_1/bank-agent/model/db"
)

type dbUtils struct{}

// getBatchInsertSql 由字段名->值的行集合构建批量插入语句。
// 调用方未提供created_at/updated_at时自动补当前时间戳。
func (u *dbUtils) getBatchInsertSql(d db.Dbfunc, data []map[string]interface{}) (string, []interface{}, error) {
	if len(data) == 0 {
		return "", nil, nil
	}

	rowLen := len(data[0])
	tags := db.GetBaseFieldDbTags()
	now := time.Now().Unix()

	// 字段顺序以首行为准, 时间戳字段缺失时补齐
	keys := make([]string, 0, rowLen+2)
	for k := range data[0] {
		keys = append(keys, k)
	}
	for _, tag := range []string{tags.CreatedAtDbTag, tags.UpdatedAtDbTag} {
		if tag == "" {
			continue
		}
		if _, exists := data[0][tag]; !exists {
			keys = append(keys, tag)
		}
	}
	sort.Strings(keys)

	var fields strings.Builder
	fields.WriteByte('(')
	for i, k := range keys {
		if i > 0 {
			fields.WriteString(", ")
		}
		fields.WriteByte('`')
		fields.WriteString(k)
		fields.WriteByte('`')
	}
	fields.WriteByte(')')

	placeholder := "(?" + strings.Repeat(", ?", len(keys)-1) + ")"
	valueStrings := make([]string, 0, len(data))
	valueArgs := make([]interface{}, 0, len(data)*len(keys))

	for _, row := range data {
		if len(row) != rowLen {
			return "", nil, fmt.Errorf("批量插入失败：数据行的字段数量不一致")
		}

		valueStrings = append(valueStrings, placeholder)
		for _, k := range keys {
			val, ok := row[k]
			if !ok {
				if k == tags.CreatedAtDbTag || k == tags.UpdatedAtDbTag {
					val = now
				} else {
					return "", nil, fmt.Errorf("批量插入失败：数据行缺少字段 '%s'", k)
				}
			}
			valueArgs = append(valueArgs, val)
		}
	}

	var sql strings.Builder
	sql.WriteString("INSERT INTO `")
	sql.WriteString(d.TableName())
	sql.WriteString("` ")
	sql.WriteString(fields.String())
	sql.WriteString(" VALUES ")
	sql.WriteString(strings.Join(valueStrings, ", "))

	return sql.String(), valueArgs, nil
}
