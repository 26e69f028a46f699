// Copyright 2025 Staffly Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-staffly/staffly/internal/engine/consts"
	"github.com/go-staffly/staffly/internal/engine/model"
	"github.com/go-staffly/staffly/internal/engine/repo"
	"github.com/go-staffly/staffly/pkg/cache"
	"github.com/go-staffly/staffly/pkg/http"
	"github.com/go-staffly/staffly/pkg/http/jwt"
	"github.com/go-staffly/staffly/pkg/id"
	"github.com/go-staffly/staffly/pkg/log"
	"github.com/go-staffly/staffly/pkg/sso/oauth"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
)

var (
	ErrBadCredentials = errors.New("invalid username or password")
	ErrUserDisabled   = errors.New("user is disabled")
	ErrInvalidState   = errors.New("invalid oauth state")
)

// AuthService 注册、登录、token 维护与 OAuth 登录
type AuthService struct {
	userRepo    repo.IUserRepository
	oauthRepo   repo.IOauthProviderRepository
	userService *UserService
	dashboard   *DashboardService
	rdb         cache.ICache
	auth        *http.Auth
}

func NewAuthService(userRepo repo.IUserRepository, oauthRepo repo.IOauthProviderRepository,
	userService *UserService, dashboard *DashboardService, rdb cache.ICache, auth *http.Auth) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		oauthRepo:   oauthRepo,
		userService: userService,
		dashboard:   dashboard,
		rdb:         rdb,
		auth:        auth,
	}
}

// Register 注册新用户，默认 employee 角色
func (s *AuthService) Register(req *model.Register) error {
	if _, err := s.userRepo.GetUserByUsername(req.Username); err == nil {
		return ErrUserExists
	}
	if req.Email != "" {
		if _, err := s.userRepo.GetUserByEmail(req.Email); err == nil {
			return ErrUserExists
		}
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := &model.User{
		UserId:    id.GetUUIDWithoutDashes(),
		CompanyId: req.CompanyId,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  string(hashed),
		Avatar:    req.Avatar,
		Email:     req.Email,
		Role:      string(model.RoleEmployee),
		IsEnabled: 1,
	}
	return s.userRepo.CreateUser(user)
}

// Login 用户名或邮箱登录
func (s *AuthService) Login(ctx context.Context, req *model.Login) (*model.LoginResp, error) {
	var user *model.User
	var err error
	if req.Username != "" {
		user, err = s.userRepo.GetUserByUsername(req.Username)
	} else {
		user, err = s.userRepo.GetUserByEmail(req.Email)
	}
	if err != nil {
		return nil, ErrBadCredentials
	}
	if user.IsEnabled == 0 {
		return nil, ErrUserDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrBadCredentials
	}
	return s.issueTokens(ctx, user)
}

// Logout 删除 redis 中的 token 记录
func (s *AuthService) Logout(ctx context.Context, userId string) error {
	return s.rdb.Del(ctx, consts.UserTokenKey+userId).Err()
}

// Refresh 刷新 token 对并更新 redis 记录
func (s *AuthService) Refresh(ctx context.Context, userId, rToken string) (map[string]string, error) {
	token, err := jwt.RefreshToken(s.auth, userId, rToken)
	if err != nil {
		return nil, err
	}
	if err := s.cacheToken(ctx, userId, token["accessToken"], token["refreshToken"]); err != nil {
		return nil, err
	}
	return token, nil
}

// issueTokens 签发 token 对、写入 redis，并组装登录响应
func (s *AuthService) issueTokens(ctx context.Context, user *model.User) (*model.LoginResp, error) {
	aToken, rToken, err := jwt.GenToken(user.UserId, []byte(s.auth.SecretKey), s.auth.AccessExpire, s.auth.RefreshExpire)
	if err != nil {
		return nil, err
	}
	if err := s.cacheToken(ctx, user.UserId, aToken, rToken); err != nil {
		return nil, err
	}

	roles, err := s.userService.Roles(user.UserId)
	if err != nil {
		log.Warnw("fetch user roles failed, falling back to legacy role", "userId", user.UserId, "err", err)
		roles = []string{user.Role}
	}

	return &model.LoginResp{
		UserInfo: model.UserInfo{
			UserId:    user.UserId,
			CompanyId: user.CompanyId,
			Username:  user.Username,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Avatar:    user.Avatar,
			Email:     user.Email,
			Phone:     user.Phone,
		},
		Token: map[string]string{
			"accessToken":  aToken,
			"refreshToken": rToken,
		},
		Roles:     roles,
		Dashboard: s.dashboard.Resolve(user.UserId, roles),
	}, nil
}

func (s *AuthService) cacheToken(ctx context.Context, userId, aToken, rToken string) error {
	now := time.Now()
	info := &model.TokenInfo{
		AccessToken:  aToken,
		RefreshToken: rToken,
		ExpireAt:     now.Add(s.auth.AccessExpire * time.Minute).Unix(),
		CreateAt:     now.Unix(),
	}
	data, err := sonic.Marshal(info)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, consts.UserTokenKey+userId, data, s.auth.AccessExpire*time.Minute).Err()
}

// OauthAuthorizeURL 生成授权跳转地址，state 暂存 redis 防 CSRF
func (s *AuthService) OauthAuthorizeURL(ctx context.Context, providerName string) (string, error) {
	provider, err := s.buildProvider(providerName)
	if err != nil {
		return "", err
	}
	state := oauth.GenState()
	if state == "" {
		return "", errors.New("generate oauth state failed")
	}
	if err := s.rdb.Set(ctx, consts.OauthStateKey+state, providerName, 10*time.Minute).Err(); err != nil {
		return "", err
	}
	return provider.AuthURL(state), nil
}

// OauthCallback 校验 state、换取 token、拉取用户信息并登录。
// 首次 OAuth 登录自动以 employee 角色开通账号。
func (s *AuthService) OauthCallback(ctx context.Context, providerName, state, code string) (*model.LoginResp, error) {
	stored, err := s.rdb.Get(ctx, consts.OauthStateKey+state).Result()
	if err != nil || stored != providerName {
		return nil, ErrInvalidState
	}
	s.rdb.Del(ctx, consts.OauthStateKey+state)

	provider, err := s.buildProvider(providerName)
	if err != nil {
		return nil, err
	}
	token, err := provider.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("token exchange failed: %w", err)
	}
	info, err := provider.FetchUserInfo(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("fetch user info failed: %w", err)
	}

	user, err := s.findOrProvision(providerName, info)
	if err != nil {
		return nil, err
	}
	return s.issueTokens(ctx, user)
}

func (s *AuthService) buildProvider(providerName string) (*oauth.Provider, error) {
	row, err := s.oauthRepo.GetOauthProvider(providerName)
	if err != nil {
		return nil, fmt.Errorf("oauth provider %s not configured", providerName)
	}
	if row.AuthURL == "" || row.TokenURL == "" {
		return nil, fmt.Errorf("invalid oauth endpoints for provider: %s", providerName)
	}
	var scopes []string
	for _, sc := range strings.Split(row.Scopes, ",") {
		if sc = strings.TrimSpace(sc); sc != "" {
			scopes = append(scopes, sc)
		}
	}
	endpoint := oauth2.Endpoint{
		AuthURL:  row.AuthURL,
		TokenURL: row.TokenURL,
	}
	return oauth.NewProvider(row.ClientID, row.ClientSecret, row.RedirectURL, scopes, endpoint, row.UserInfoURL), nil
}

func (s *AuthService) findOrProvision(providerName string, info *oauth.UserInfo) (*model.User, error) {
	email := info.Email
	if email == "" {
		email = fmt.Sprintf("%s@%s.oauth", info.Username, providerName)
	}
	if user, err := s.userRepo.GetUserByEmail(email); err == nil {
		return user, nil
	}
	if user, err := s.userRepo.GetUserByUsername(info.Username); err == nil {
		return user, nil
	}

	// OAuth 账号没有本地密码，生成随机值占位
	hashed, err := bcrypt.GenerateFromPassword([]byte(id.GetUUID()), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		UserId:    id.GetUUIDWithoutDashes(),
		Username:  info.Username,
		FirstName: info.Name,
		Password:  string(hashed),
		Avatar:    info.AvatarURL,
		Email:     email,
		Role:      string(model.RoleEmployee),
		IsEnabled: 1,
	}
	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}
