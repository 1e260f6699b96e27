package model

// QuestionOption is one forced-choice option. The archetype label is what the
// scoring engine consumes; the texts are what the client renders.
type QuestionOption struct {
	Archetype string `json:"archetype"`
	TextID    string `json:"text_id"`
	TextEN    string `json:"text_en"`
}

// Question is a quiz-bank entry. StressMarker marks questions whose driver
// answers count toward the stress flag.
//
// swagger:model Question
type Question struct {
	UUIDBase
	Series       string           `gorm:"size:50;index;not null" json:"series"`
	SortOrder    int              `gorm:"not null;default:0" json:"sortOrder"`
	TextID       string           `gorm:"type:text;not null" json:"text_id"`
	TextEN       string           `gorm:"type:text;not null" json:"text_en"`
	Options      []QuestionOption `gorm:"type:json;serializer:json" json:"options"`
	StressMarker bool             `gorm:"default:false" json:"stressMarker"`
	Active       bool             `gorm:"default:true" json:"active"`
}

func (Question) TableName() string {
	return "questions"
}
