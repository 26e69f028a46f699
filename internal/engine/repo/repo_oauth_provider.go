package repo

import (
	"github.com/go-staffly/staffly/internal/engine/model"
	"github.com/go-staffly/staffly/pkg/database"
)

type IOauthProviderRepository interface {
	GetOauthProvider(name string) (*model.OauthProvider, error)
}

type OauthProviderRepo struct {
	database.IDatabase
}

func NewOauthProviderRepo(db database.IDatabase) IOauthProviderRepository {
	return &OauthProviderRepo{
		IDatabase: db,
	}
}

// GetOauthProvider 根据名称获取启用的 OAuth 提供方
func (r *OauthProviderRepo) GetOauthProvider(name string) (*model.OauthProvider, error) {
	var provider model.OauthProvider
	err := r.Database().Where("name = ? AND is_enabled = 1", name).First(&provider).Error
	if err != nil {
		return nil, err
	}
	return &provider, nil
}
