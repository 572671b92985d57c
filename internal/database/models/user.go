package models

// User is an account that can sign in, join teams and submit pulse logs and feedback.
// IsStaff marks an administrator.
type User struct {
	BaseModel
	Username  string `json:"username" gorm:"uniqueIndex;not null;size:150"`
	Email     string `json:"email" gorm:"uniqueIndex;not null;size:254"`
	Password  string `json:"-" gorm:"not null;size:128"`
	FirstName string `json:"first_name" gorm:"size:150"`
	LastName  string `json:"last_name" gorm:"size:150"`
	IsStaff   bool   `json:"is_staff" gorm:"not null;default:false;index"`
	IsActive  bool   `json:"is_active" gorm:"not null;default:true"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
