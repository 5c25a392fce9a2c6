package models

// Answer is a reply attached to a single question.
type Answer struct {
	BaseModel
	Content    string   `gorm:"type:text;not null" json:"content"`
	QuestionID uint     `gorm:"index;not null" json:"question_id"`
	AuthorID   uint     `gorm:"index;not null" json:"author_id"`
	Question   Question `gorm:"foreignKey:QuestionID" json:"-"`
	Author     User     `gorm:"foreignKey:AuthorID" json:"-"`
}
