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

package oauth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"
)

// UserInfo 从提供方 userinfo 端点取回的标准化用户信息
type UserInfo struct {
	Username  string `json:"login"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// Provider 封装一个 OAuth2 提供方及其 userinfo 端点
type Provider struct {
	Config      *oauth2.Config
	UserInfoURL string
	client      *resty.Client
}

func NewProvider(clientID, clientSecret, redirectURL string, scopes []string, endpoint oauth2.Endpoint, userInfoURL string) *Provider {
	return &Provider{
		Config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       scopes,
			Endpoint:     endpoint,
		},
		UserInfoURL: userInfoURL,
		client:      resty.New(),
	}
}

// AuthURL 生成带 state 的授权跳转地址
func (p *Provider) AuthURL(state string) string {
	return p.Config.AuthCodeURL(state)
}

// Exchange 用授权码换取 token
func (p *Provider) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	return p.Config.Exchange(ctx, code)
}

// FetchUserInfo 携带 token 请求 userinfo 端点
func (p *Provider) FetchUserInfo(ctx context.Context, token *oauth2.Token) (*UserInfo, error) {
	var info UserInfo
	resp, err := p.client.R().
		SetContext(ctx).
		SetAuthToken(token.AccessToken).
		SetHeader("Accept", "application/json").
		SetResult(&info).
		Get(p.UserInfoURL)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("user info request failed: %s", resp.Status())
	}
	return &info, nil
}

// GenState 生成随机 state 参数
func GenState() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return ""
	}
	return hex.EncodeToString(b)
}
