package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recordsIngested = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rec_records_ingested_total",
		Help: "通过上传导入的记录数",
	})

	statusChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rec_relationship_status_changes_total",
			Help: "关系状态变更次数",
		},
		[]string{"status"},
	)

	searchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rec_searches_total",
			Help: "搜索次数",
		},
		[]string{"combinator"},
	)

	clearAllTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rec_clear_all_total",
		Help: "清空全部数据的次数",
	})
)
