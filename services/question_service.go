package services

import (
	"fmt"
	"time"

	"github.com/MichelaFaella/EcoGrow-BackEnd/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

type defaultQuestion struct {
	Text    string
	Type    string
	Options string
}

var defaultQuestions = []defaultQuestion{
	{
		Text:    "When do you prefer to take care of your plants?",
		Type:    models.QuestionTypeCareDay,
		Options: `["Weekdays only","Weekends","Any day","Every other day"]`,
	},
	{
		Text:    "At what time of day are you usually available?",
		Type:    models.QuestionTypeTimeOfDay,
		Options: `["Morning (07-10)","Lunch break","Evening (18-21)","I don't care"]`,
	},
	{
		Text:    "Do you want eco-friendly watering suggestions?",
		Type:    models.QuestionTypeEcoMode,
		Options: `["No","Yes, check soil moisture","Yes, with rainwater tips","Yes, everything"]`,
	},
}

// SeedDefaults creates the onboarding questions for a new user. Existing
// questions are left untouched.
func (s *QuestionService) SeedDefaults(userID string) error {
	var count int64
	if err := s.db.Model(&models.Question{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, dq := range defaultQuestions {
		q := models.Question{
			UserID:  userID,
			Text:    dq.Text,
			Type:    dq.Type,
			Options: datatypes.JSON(dq.Options),
			Active:  true,
		}
		if err := s.db.Create(&q).Error; err != nil {
			return err
		}
	}
	return nil
}

// List returns the user's active questions.
func (s *QuestionService) List(userID string) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Where("user_id = ? AND active = ?", userID, true).
		Order("created_at ASC").
		Find(&questions).Error
	return questions, err
}

// SaveAnswers stores 1-based option positions keyed by question id. All ids
// must belong to the user and all positions must be in 1..4, otherwise
// nothing is written.
func (s *QuestionService) SaveAnswers(userID string, answers map[string]int) error {
	if len(answers) == 0 {
		return nil
	}

	ids := make([]string, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var questions []models.Question
		if err := tx.Where("id IN ?", ids).Find(&questions).Error; err != nil {
			return err
		}

		byID := make(map[string]*models.Question, len(questions))
		for i := range questions {
			byID[questions[i].ID] = &questions[i]
		}

		for id, pos := range answers {
			q, ok := byID[id]
			if !ok || q.UserID != userID {
				return fmt.Errorf("invalid question id for this user: %s", id)
			}
			if pos < 1 || pos > 4 {
				return fmt.Errorf("answer position out of range for question %s: %d", id, pos)
			}
		}

		now := time.Now()
		for id, pos := range answers {
			q := byID[id]
			p := pos
			q.Answer = &p
			q.AnsweredAt = &now
			if err := tx.Save(q).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
