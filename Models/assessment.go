package Models

import (
	"log"

	"gorm.io/gorm"
)

type Assessment struct {
	gorm.Model
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	AgeGroup     string     `json:"age_group"`
	MinAgeMonths int        `json:"min_age_months"`
	MaxAgeMonths int        `json:"max_age_months"`
	Questions    []Question `json:"questions" gorm:"constraint:OnDelete:CASCADE;"`
}

type Question struct {
	gorm.Model
	AssessmentID uint   `json:"assessment_id"`
	Position     int    `json:"position"`
	Text         string `json:"text"`
	Category     string `json:"category"`
}

// EligibleForAge reports whether a child of the given age, in whole months,
// falls inside the assessment's band. Bounds are inclusive.
func (assessment *Assessment) EligibleForAge(ageInMonths int) bool {
	return ageInMonths >= assessment.MinAgeMonths && ageInMonths <= assessment.MaxAgeMonths
}

func GetAssessmentsForAge(ageInMonths int) ([]Assessment, error) {
	var assessments []Assessment
	err := DB.Model(&Assessment{}).
		Where("min_age_months <= ? AND max_age_months >= ?", ageInMonths, ageInMonths).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.position ASC")
		}).
		Find(&assessments).Error
	return assessments, err
}

// SeedAssessments loads the screening catalog on first boot.
func SeedAssessments() {
	var count int64
	if err := DB.Model(&Assessment{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	catalog := []Assessment{
		{
			Title:        "Early Childhood Development Screening",
			Description:  "Comprehensive developmental milestone assessment for early childhood",
			AgeGroup:     "0-3 years",
			MinAgeMonths: 0,
			MaxAgeMonths: 36,
			Questions: []Question{
				{Position: 1, Text: "Does your child respond to their name when called?", Category: "social"},
				{Position: 2, Text: "Can your child make eye contact during interactions?", Category: "social"},
				{Position: 3, Text: "Does your child show interest in playing with toys?", Category: "play"},
				{Position: 4, Text: "Can your child follow simple instructions?", Category: "cognitive"},
				{Position: 5, Text: "Does your child use gestures like pointing or waving?", Category: "communication"},
			},
		},
		{
			Title:        "Preschool Developmental Assessment",
			Description:  "Evaluates cognitive, social, and motor skills development",
			AgeGroup:     "3-6 years",
			MinAgeMonths: 36,
			MaxAgeMonths: 72,
			Questions: []Question{
				{Position: 1, Text: "Can your child speak in complete sentences?", Category: "communication"},
				{Position: 2, Text: "Does your child play well with other children?", Category: "social"},
				{Position: 3, Text: "Can your child count to 10 or higher?", Category: "cognitive"},
				{Position: 4, Text: "Does your child show interest in learning new things?", Category: "cognitive"},
				{Position: 5, Text: "Can your child follow multi-step instructions?", Category: "cognitive"},
				{Position: 6, Text: "Does your child demonstrate age-appropriate fine motor skills?", Category: "motor"},
			},
		},
		{
			Title:        "School-Age Development Check",
			Description:  "Comprehensive assessment for school readiness and academic skills",
			AgeGroup:     "6-12 years",
			MinAgeMonths: 72,
			MaxAgeMonths: 144,
			Questions: []Question{
				{Position: 1, Text: "Can your child read age-appropriate books?", Category: "academic"},
				{Position: 2, Text: "Does your child have friends at school?", Category: "social"},
				{Position: 3, Text: "Can your child complete homework independently?", Category: "academic"},
				{Position: 4, Text: "Does your child show appropriate emotional regulation?", Category: "emotional"},
				{Position: 5, Text: "Can your child participate in group activities?", Category: "social"},
				{Position: 6, Text: "Does your child demonstrate problem-solving skills?", Category: "cognitive"},
			},
		},
	}

	for index := range catalog {
		if err := DB.Create(&catalog[index]).Error; err != nil {
			log.Println("failed to seed assessment:", err)
		}
	}
}
