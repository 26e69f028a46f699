package model

// OauthProvider OAuth 提供方配置表
type OauthProvider struct {
	BaseModel
	ProviderId   string `gorm:"column:provider_id;not null;uniqueIndex" json:"providerId"`
	Name         string `gorm:"column:name;not null;uniqueIndex" json:"name"` // github / gitlab / google ...
	ClientID     string `gorm:"column:client_id;not null" json:"clientId"`
	ClientSecret string `gorm:"column:client_secret;not null" json:"-"`
	RedirectURL  string `gorm:"column:redirect_url" json:"redirectUrl"`
	AuthURL      string `gorm:"column:auth_url" json:"authUrl"`
	TokenURL     string `gorm:"column:token_url" json:"tokenUrl"`
	UserInfoURL  string `gorm:"column:user_info_url" json:"userInfoUrl"`
	Scopes       string `gorm:"column:scopes" json:"scopes"` // 逗号分隔
	IsEnabled    int    `gorm:"column:is_enabled;default:1" json:"isEnabled"`
}

func (OauthProvider) TableName() string {
	return "t_oauth_provider"
}
