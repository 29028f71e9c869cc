package dao

import (
	"github.com/jmoiron/sqlx"
)

var (
	DB *sqlx.DB
	// CanLock 标记当前数据库是否支持行级锁(mysql支持, sqlite不支持)
	CanLock bool

	utils = new(dbUtils)

	App = new(DaoGroup)
)

type DaoGroup struct {
	ResponsesDb
	ChatLogsDb
}

// Tx 在一个事务中执行fn, fn返回错误或panic时回滚
func Tx(fn func(tx *sqlx.Tx) error) error {
	tx, err := DB.Beginx()
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}
