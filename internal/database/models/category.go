package models

// Category classifies the requested equipment (vehicles, machinery, ...)
type Category struct {
	BaseModel
	Name string `json:"name" gorm:"not null;size:120;uniqueIndex" validate:"required,max=120"`
}

// TableName returns the table name for Category
func (Category) TableName() string {
	return "categories"
}
