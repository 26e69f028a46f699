package model

// User 用户表
type User struct {
	BaseModel
	UserId    string `gorm:"column:user_id;not null;uniqueIndex" json:"userId"`
	CompanyId string `gorm:"column:company_id;index" json:"companyId"`
	Username  string `gorm:"column:username;uniqueIndex" json:"username"`
	FirstName string `gorm:"column:first_name" json:"firstName"`
	LastName  string `gorm:"column:last_name" json:"lastName"`
	Password  string `gorm:"column:password" json:"-"`
	Avatar    string `gorm:"column:avatar" json:"avatar"`
	Email     string `gorm:"column:email;index" json:"email"`
	Phone     string `gorm:"column:phone" json:"phone"`
	Role      string `gorm:"column:role" json:"role"`                // 历史遗留的单角色字段，无角色绑定时作为兜底
	IsEnabled int    `gorm:"column:is_enabled;default:1" json:"isEnabled"` // 0: disabled, 1: enabled
}

func (User) TableName() string {
	return "t_user"
}

type Register struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar"`
	Password  string `json:"password"`
	CompanyId string `json:"companyId"`
}

type Login struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResp struct {
	UserInfo  UserInfo          `json:"userInfo"`
	Token     map[string]string `json:"token"`
	Roles     []string          `json:"roles"`
	Dashboard string            `json:"dashboard"`
}

type UserInfo struct {
	UserId    string `json:"userId"`
	CompanyId string `json:"companyId"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Avatar    string `json:"avatar"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// TokenInfo token information stored in Redis
type TokenInfo struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpireAt     int64  `json:"expireAt"`
	CreateAt     int64  `json:"createAt"`
}

// AddUserReq request for inviting a user
type AddUserReq struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	CompanyId string `json:"companyId"`
	Role      string `json:"role"`
	IsEnabled int    `json:"isEnabled"`
}
