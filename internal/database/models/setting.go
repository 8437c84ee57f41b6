package models

// SettingKeyAppPassword is the key of the shared login secret
const SettingKeyAppPassword = "app_password"

// Setting is a key/value configuration entry
type Setting struct {
	BaseModel
	Key   string `json:"key" gorm:"not null;size:100;uniqueIndex" validate:"required,max=100"`
	Value string `json:"value" gorm:"not null;size:500" validate:"required,max=500"`
}

// TableName returns the table name for Setting
func (Setting) TableName() string {
	return "settings"
}
