package service

import (
	"fmt"
	"strings"

	"rec-go/internal/models"
	"rec-go/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm/clause"
)

// SearchableFields 高级搜索允许的字段，ভোটার_নং 不在其中
var SearchableFields = []string{
	models.FieldSerialNo,
	models.FieldName,
	models.FieldFatherName,
	models.FieldMotherName,
	models.FieldOccupation,
	models.FieldAddress,
	models.FieldDateOfBirth,
}

// SimpleSearchFields 简单搜索匹配的字段
var SimpleSearchFields = []string{
	models.FieldName,
	models.FieldFatherName,
	models.FieldMotherName,
	models.FieldAddress,
}

// IsSearchableField 判断字段是否允许搜索
func IsSearchableField(name string) bool {
	for _, f := range SearchableFields {
		if f == name {
			return true
		}
	}
	return false
}

type combinator int

const (
	matchAll combinator = iota
	matchAny
)

func (c combinator) String() string {
	if c == matchAny {
		return "OR"
	}
	return "AND"
}

// fieldMatch 单个字段的子串匹配条件
type fieldMatch struct {
	field string
	value string
}

// likeEscaper 转义 LIKE 通配符，让用户输入按字面匹配
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// substringMatch 构造不区分大小写的子串匹配条件
// 列名只来自白名单并作为标识符引用，值始终是绑定参数
func substringMatch(operator string, matches []fieldMatch, comb combinator) clause.Expression {
	if len(matches) == 0 {
		return nil
	}

	exprs := make([]clause.Expression, 0, len(matches))
	for _, m := range matches {
		exprs = append(exprs, clause.Expr{
			SQL: "? " + operator + ` ? ESCAPE '\'`,
			Vars: []interface{}{
				clause.Column{Table: "records", Name: m.field},
				"%" + likeEscaper.Replace(m.value) + "%",
			},
		})
	}

	if comb == matchAny {
		return clause.Or(exprs...)
	}
	return clause.And(exprs...)
}

// SearchService 记录搜索服务
type SearchService struct {
	recordRepo *repository.RecordRepository
	logger     *logrus.Logger
}

// NewSearchService 创建搜索服务
func NewSearchService(recordRepo *repository.RecordRepository, logger *logrus.Logger) *SearchService {
	return &SearchService{
		recordRepo: recordRepo,
		logger:     logger,
	}
}

// SearchAdvanced 多字段搜索，非空条件之间为 AND
// 条件为空时返回全部记录
func (s *SearchService) SearchAdvanced(criteria map[string]string) ([]models.Record, error) {
	for field := range criteria {
		if !IsSearchableField(field) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	matches := []fieldMatch{}
	for _, field := range SearchableFields {
		value := strings.TrimSpace(criteria[field])
		if value != "" {
			matches = append(matches, fieldMatch{field: field, value: value})
		}
	}
	return s.run(matches, matchAll)
}

// SearchSimple 在姓名、父母姓名和地址中搜索，任一字段匹配即可
// 搜索词为空时返回全部记录
func (s *SearchService) SearchSimple(term string) ([]models.Record, error) {
	term = strings.TrimSpace(term)

	matches := []fieldMatch{}
	if term != "" {
		for _, field := range SimpleSearchFields {
			matches = append(matches, fieldMatch{field: field, value: term})
		}
	}
	return s.run(matches, matchAny)
}

func (s *SearchService) run(matches []fieldMatch, comb combinator) ([]models.Record, error) {
	criteria := make(map[string]string, len(matches))
	for _, m := range matches {
		criteria[m.field] = m.value
	}
	s.logger.WithFields(logrus.Fields{
		"criteria":   criteria,
		"combinator": comb.String(),
	}).Debug("执行搜索")

	searchesTotal.WithLabelValues(comb.String()).Inc()
	records, err := s.recordRepo.Search(substringMatch(s.recordRepo.LikeOperator(), matches, comb))
	if err != nil {
		return nil, fmt.Errorf("搜索失败: %w", err)
	}
	return records, nil
}
