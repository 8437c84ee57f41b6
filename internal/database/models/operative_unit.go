package models

// OperativeUnit is a field unit that raises equipment requests
type OperativeUnit struct {
	BaseModel
	Name string `json:"name" gorm:"not null;size:120;uniqueIndex" validate:"required,max=120"`
}

// TableName returns the table name for OperativeUnit
func (OperativeUnit) TableName() string {
	return "operative_units"
}
