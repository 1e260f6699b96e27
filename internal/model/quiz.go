package model

import (
	"time"
)

type AttemptStatus string

const (
	AttemptInProgress AttemptStatus = "in_progress"
	AttemptCompleted  AttemptStatus = "completed"
)

// AttemptAnswer mirrors the wire shape the scoring engine consumes.
type AttemptAnswer struct {
	QuestionID     string `json:"question_id"`
	SelectedOption string `json:"selected_option"`
}

// QuizAttempt is one run through a question series. Answers are stored on
// submit together with the status flip, so a completed attempt is immutable.
//
// swagger:model QuizAttempt
type QuizAttempt struct {
	UUIDBase
	UserID      uint            `gorm:"index;not null" json:"userId"`
	Series      string          `gorm:"size:50;not null" json:"series"`
	Language    string          `gorm:"size:10;default:'id'" json:"language"`
	Status      AttemptStatus   `gorm:"type:enum('in_progress','completed');default:'in_progress'" json:"status"`
	Answers     []AttemptAnswer `gorm:"type:json;serializer:json" json:"answers"`
	CompletedAt *time.Time      `json:"completedAt"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}

// QuizResult is the scored outcome of a completed attempt. Everything except
// IsPaid, AIReport and ShareCardURL is written once at submit time.
//
// swagger:model QuizResult
type QuizResult struct {
	UUIDBase
	UserID             uint           `gorm:"index;not null" json:"userId"`
	AttemptID          string         `gorm:"size:36;uniqueIndex;not null" json:"attemptId"`
	Series             string         `gorm:"size:50;not null" json:"series"`
	Language           string         `gorm:"size:10;default:'id'" json:"language"`
	Scores             map[string]int `gorm:"type:json;serializer:json" json:"scores"`
	PrimaryArchetype   string         `gorm:"size:20;not null" json:"primary_archetype"`
	SecondaryArchetype string         `gorm:"size:20;not null" json:"secondary_archetype"`
	BalanceIndex       float64        `json:"balance_index"`
	StressFlag         bool           `gorm:"default:false" json:"stress_flag"`
	StressMarkers      int            `gorm:"default:0" json:"stress_markers"`
	IsPaid             bool           `gorm:"default:false" json:"is_paid"`
	AIReport           string         `gorm:"type:longtext" json:"-"`
	ShareCardURL       string         `gorm:"size:255" json:"shareCardUrl"`
}

func (QuizResult) TableName() string {
	return "quiz_results"
}
