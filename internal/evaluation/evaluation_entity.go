package evaluation

import (
	"fmt"
	"math"
	"time"
)

// EvaluationID is deterministic over (year, employee) so one evaluation per
// employee per year holds at the storage key as well as the pre-write check.
func EvaluationID(year int, employeeID string) string {
	return fmt.Sprintf("E-%d-%s", year, employeeID)
}

// AverageScore is the arithmetic mean of the three criteria, rounded to one
// decimal place.
func AverageScore(professional, attitude, discipline float64) float64 {
	avg := (professional + attitude + discipline) / 3
	return math.Round(avg*10) / 10
}

type Evaluation struct {
	ID                string  `gorm:"column:id;type:varchar(40);primaryKey"`
	EmployeeID        string  `gorm:"column:employee_id;type:varchar(20);not null;uniqueIndex:uq_evaluations_employee_year,priority:1"`
	FullName          string  `gorm:"column:full_name;type:varchar(255)"`
	Position          string  `gorm:"column:position;type:varchar(255)"`
	Year              int     `gorm:"column:year;not null;uniqueIndex:uq_evaluations_employee_year,priority:2"`
	ScoreProfessional float64 `gorm:"column:score_professional;not null"`
	ScoreAttitude     float64 `gorm:"column:score_attitude;not null"`
	ScoreDiscipline   float64 `gorm:"column:score_discipline;not null"`
	AverageScore      float64 `gorm:"column:average_score;not null"`
	Rank              string  `gorm:"column:rank;type:varchar(100)"`
	RewardProposal    string  `gorm:"column:reward_proposal;type:text"`
	RewardTitle       string  `gorm:"column:reward_title;type:varchar(255)"`
	Notes             string  `gorm:"column:notes;type:text"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (Evaluation) TableName() string {
	return "evaluations"
}
