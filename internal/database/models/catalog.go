package models

// Mood is a point on the mood scale. Values may repeat.
type Mood struct {
	BaseModel
	Value       int     `json:"value" gorm:"not null;index"`
	Description string  `json:"description" gorm:"not null;size:255"`
	ImageURL    *string `json:"image_url" gorm:"type:text"`
}

// TableName returns the table name for Mood
func (Mood) TableName() string {
	return "moods"
}

// Workload is a point on the workload scale. Values are unique.
type Workload struct {
	BaseModel
	Value       int     `json:"value" gorm:"not null;uniqueIndex"`
	Description string  `json:"description" gorm:"not null;size:255"`
	ImageURL    *string `json:"image_url" gorm:"type:text"`
}

// TableName returns the table name for Workload
func (Workload) TableName() string {
	return "workloads"
}
