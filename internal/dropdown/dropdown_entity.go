package dropdown

import "time"

// Option is one entry of a named lookup list (positions, departments,
// qualifications) that the admin forms offer as select choices.
type Option struct {
	ID        uint   `gorm:"column:id;primaryKey;autoIncrement"`
	Type      string `gorm:"column:type;type:varchar(50);not null;uniqueIndex:uq_dropdown_options,priority:1"`
	Value     string `gorm:"column:value;type:varchar(255);not null;uniqueIndex:uq_dropdown_options,priority:2"`
	CreatedAt time.Time
}

func (Option) TableName() string {
	return "dropdown_options"
}
