package models

// User represents a registered forum member. The password is only ever
// stored as a bcrypt hash and never serialized.
type User struct {
	BaseModel
	Phone        string `gorm:"size:11;uniqueIndex;not null" json:"phone"`
	Username     string `gorm:"size:50;not null" json:"username"`
	PasswordHash string `gorm:"size:100;not null" json:"-"`
}
