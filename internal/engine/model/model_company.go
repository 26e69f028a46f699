package model

// Company 公司（租户）表
type Company struct {
	BaseModel
	CompanyId string `gorm:"column:company_id;not null;uniqueIndex" json:"companyId"`
	Name      string `gorm:"column:name;not null" json:"name"`
	Slug      string `gorm:"column:slug;uniqueIndex" json:"slug"`
	IsEnabled int    `gorm:"column:is_enabled;default:1" json:"isEnabled"`
}

func (Company) TableName() string {
	return "t_company"
}
