package db

// Responses 意图到预设回复的映射, 一个意图可有多条, sort决定顺序
type Responses struct {
	BaseField
	Intent  string `db:"intent" json:"intent" info:"意图"`
	Content string `db:"content" json:"content" info:"回复内容"`
	Sort    int    `db:"sort" json:"sort" info:"同一意图内的顺序"`
}

func (Responses) TableName() string {
	return `responses`
}
