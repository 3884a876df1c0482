package Models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// AssessmentResult is written exactly once per completed attempt and never
// updated afterwards.
type AssessmentResult struct {
	gorm.Model
	ChildID            uint           `json:"child_id"`
	AssessmentID       uint           `json:"assessment_id"`
	AssessmentTitle    string         `json:"assessment_title"`
	NegativePercentage float64        `json:"negative_percentage"`
	NeedsConsultation  bool           `json:"needs_consultation"`
	Recommendation     string         `json:"recommendation"`
	CompletedAt        time.Time      `json:"completed_at"`
	Answers            []ResultAnswer `json:"answers" gorm:"constraint:OnDelete:CASCADE;"`
}

type ResultAnswer struct {
	gorm.Model
	AssessmentResultID uint `json:"assessment_result_id"`
	QuestionID         uint `json:"question_id"`
	Position           int  `json:"position"`
	IsPositive         bool `json:"is_positive"`
}

func GetResultForChild(resultID, childID uint) (AssessmentResult, error) {
	var result AssessmentResult
	if err := DB.Model(&AssessmentResult{}).
		Where("id = ? AND child_id = ?", resultID, childID).
		First(&result).Error; err != nil {
		return result, errors.New("Result not found")
	}
	return result, nil
}

func GetResultsForChild(childID uint) ([]AssessmentResult, error) {
	var results []AssessmentResult
	err := DB.Model(&AssessmentResult{}).
		Where("child_id = ?", childID).
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("result_answers.position ASC")
		}).
		Order("completed_at DESC").
		Find(&results).Error
	return results, err
}
