package user

import (
	"gitee.com/taoJie_1/bank-agent/dao"
	"gitee.com/taoJie_1/bank-agent/model/common"
	"gitee.com/taoJie_1/bank-agent/model/db"
	"gitee.com/taoJie_1/bank-agent/model/enum"
	"golang.org/x/sync/errgroup"
)

type IDashboard interface {
	// 汇总对话日志的分析数据
	Stats(recentLimit int) (*common.DashboardStats, error)
}

type dashboardService struct{}

func NewDashboardService() *dashboardService {
	return &dashboardService{}
}

func (d *dashboardService) Stats(recentLimit int) (*common.DashboardStats, error) {
	if recentLimit <= 0 {
		recentLimit = 20
	}
	if recentLimit > 100 {
		recentLimit = 100
	}

	var (
		total    int64
		resolved int64
		counts   map[string]int64
		recent   []db.ChatLog
	)

	var g errgroup.Group
	g.Go(func() (err error) {
		total, err = dao.App.ChatLogsDb.CountTotal()
		return
	})
	g.Go(func() (err error) {
		resolved, err = dao.App.ChatLogsDb.CountResolved()
		return
	})
	g.Go(func() (err error) {
		counts, err = dao.App.ChatLogsDb.CountByIntent()
		return
	})
	g.Go(func() error {
		return dao.App.ChatLogsDb.GetRecent(recentLimit, &recent)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &common.DashboardStats{
		TotalQueries:  total,
		UniqueIntents: int64(len(counts)),
		IntentCounts:  counts,
		Recent:        make([]common.LogRecord, 0, len(recent)),
	}
	if total > 0 {
		stats.SuccessRate = float64(resolved) / float64(total)
	}
	for _, row := range recent {
		stats.Recent = append(stats.Recent, common.LogRecord{
			Time:       row.CreatedAt,
			SessionID:  row.SessionID,
			Content:    row.Content,
			Intent:     enum.Intent(row.Intent),
			Confidence: row.Confidence,
		})
	}
	return stats, nil
}
