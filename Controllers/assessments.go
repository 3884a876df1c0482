package Controllers

import (
	"log"
	"net/http"
	"strconv"

	"CDCPlatform/Models"
	"CDCPlatform/SSE"
	"CDCPlatform/Scoring"
	"CDCPlatform/Utils/Token"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// FetchAssessmentsByAge lists the catalog entries whose age band, in months,
// contains the requested age.
func FetchAssessmentsByAge(c *gin.Context) {
	age, err := strconv.Atoi(c.Query("age"))
	if err != nil || age < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "age must be a non-negative number of months"})
		return
	}

	assessments, err := Models.GetAssessmentsForAge(age)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"assessments": assessments})
}

type SubmitAssessmentInput struct {
	ChildID      uint `json:"child_id" binding:"required"`
	AssessmentID uint `json:"assessment_id" binding:"required"`
	Answers      []struct {
		IsPositive *bool `json:"is_positive" binding:"required"`
	} `json:"answers" binding:"required"`
}

// SubmitAssessment replays the submitted sheet through the scoring engine in
// question order and persists the outcome once.
func SubmitAssessment(c *gin.Context) {
	var input SubmitAssessmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	parent_id, err := Token.ExtractTokenID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	child, err := Models.GetChildForParent(input.ChildID, parent_id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Child not found"})
		return
	}

	var assessment Models.Assessment
	if err := Models.DB.Model(&Models.Assessment{}).Where("id = ?", input.AssessmentID).
		Preload("Questions", func(db *gorm.DB) *gorm.DB { return db.Order("questions.position ASC") }).
		First(&assessment).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Assessment not found"})
		return
	}

	questionIDs := make([]uint, len(assessment.Questions))
	for index, question := range assessment.Questions {
		questionIDs[index] = question.ID
	}

	attempt := Scoring.NewAttempt()
	if err := attempt.Start(assessment.ID, child.ID, questionIDs, child.AgeInMonths, assessment.MinAgeMonths, assessment.MaxAgeMonths); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(input.Answers) != len(questionIDs) {
		c.JSON(http.StatusBadRequest, gin.H{"error": Scoring.ErrUnanswered.Error()})
		return
	}

	var scored *Scoring.Result
	for index, answer := range input.Answers {
		scored, err = attempt.Answer(index, *answer.IsPositive)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	if scored == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": Scoring.ErrUnanswered.Error()})
		return
	}

	result := Models.AssessmentResult{
		ChildID:            child.ID,
		AssessmentID:       assessment.ID,
		AssessmentTitle:    assessment.Title,
		NegativePercentage: scored.NegativePercentage,
		NeedsConsultation:  scored.NeedsConsultation,
		Recommendation:     scored.Recommendation,
		CompletedAt:        scored.CompletedAt,
	}
	for index, isPositive := range scored.Answers {
		result.Answers = append(result.Answers, Models.ResultAnswer{
			QuestionID: questionIDs[index],
			Position:   index + 1,
			IsPositive: isPositive,
		})
	}

	tx := Models.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&result).Error; err != nil {
		log.Println(err)
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save result"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		log.Println(err)
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
		return
	}

	if result.NeedsConsultation {
		SSE.Broadcaster.Broadcast("refresh")
	}
	c.JSON(http.StatusOK, gin.H{"message": "Assessment completed successfully", "result": result})
}

func FetchChildResults(c *gin.Context) {
	childID, err := strconv.ParseUint(c.Param("childId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid child id"})
		return
	}

	parent_id, err := Token.ExtractTokenID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	if _, err := Models.GetChildForParent(uint(childID), parent_id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Child not found"})
		return
	}

	results, err := Models.GetResultsForChild(uint(childID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}
