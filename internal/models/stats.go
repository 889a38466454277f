package models

// OccupationCount 按职业分组的计数，职业为 NULL 时单独成组
type OccupationCount struct {
	Occupation *string `json:"পেশা"`
	Count      int64   `json:"count"`
}

// StatusCount 按关系状态分组的计数
type StatusCount struct {
	RelationshipStatus RelationshipStatus `json:"relationship_status"`
	Count              int64              `json:"count"`
}

// BatchStatusCount 按批次和关系状态分组的计数
type BatchStatusCount struct {
	BatchID            uint               `json:"batch_id"`
	BatchName          string             `json:"batch_name"`
	RelationshipStatus RelationshipStatus `json:"relationship_status"`
	Count              int64              `json:"count"`
}
