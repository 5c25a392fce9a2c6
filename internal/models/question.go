package models

// Question is a post opened by a user for others to answer.
type Question struct {
	BaseModel
	Title    string `gorm:"size:100;not null" json:"title"`
	Content  string `gorm:"type:text;not null" json:"content"`
	AuthorID uint   `gorm:"index;not null" json:"author_id"`
	Author   User   `gorm:"foreignKey:AuthorID" json:"-"`
}
