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

package repo

import (
	"github.com/go-staffly/staffly/internal/engine/model"
	"github.com/go-staffly/staffly/pkg/database"
)

type IMenuRepository interface {
	GetMenu(menuId string) (*model.Menu, error)
	GetActiveMenus() ([]model.Menu, error)
	GetAllMenus() ([]model.Menu, error)
	GetMenusByParentId(parentId string) ([]model.Menu, error)
	CreateMenu(menu *model.Menu) error
	UpdateMenu(menu *model.Menu) error
	DeleteMenu(menuId string) error
	CountMenus() (total, active, routed int64, err error)
}

type MenuRepo struct {
	database.IDatabase
}

func NewMenuRepo(db database.IDatabase) IMenuRepository {
	return &MenuRepo{
		IDatabase: db,
	}
}

// GetMenu 获取菜单
func (r *MenuRepo) GetMenu(menuId string) (*model.Menu, error) {
	var menu model.Menu
	err := r.Database().Select("id", "menu_id", "parent_id", "name", "slug", "route", "icon", "sort_order", "is_active", "created_at", "updated_at").
		Where("menu_id = ?", menuId).First(&menu).Error
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

// GetActiveMenus 获取所有启用的菜单，按 sort_order、name 排序
func (r *MenuRepo) GetActiveMenus() ([]model.Menu, error) {
	var menus []model.Menu
	err := r.Database().Select("id", "menu_id", "parent_id", "name", "slug", "route", "icon", "sort_order", "is_active", "created_at", "updated_at").
		Where("is_active = ?", model.MenuActive).
		Order("sort_order ASC, name ASC").Find(&menus).Error
	return menus, err
}

// GetAllMenus 获取所有菜单（含停用）
func (r *MenuRepo) GetAllMenus() ([]model.Menu, error) {
	var menus []model.Menu
	err := r.Database().Select("id", "menu_id", "parent_id", "name", "slug", "route", "icon", "sort_order", "is_active", "created_at", "updated_at").
		Order("sort_order ASC, name ASC").Find(&menus).Error
	return menus, err
}

// GetMenusByParentId 根据父菜单ID获取子菜单
func (r *MenuRepo) GetMenusByParentId(parentId string) ([]model.Menu, error) {
	var menus []model.Menu
	err := r.Database().Select("id", "menu_id", "parent_id", "name", "slug", "route", "icon", "sort_order", "is_active", "created_at", "updated_at").
		Where("parent_id = ?", parentId).
		Order("sort_order ASC, name ASC").Find(&menus).Error
	return menus, err
}

// CreateMenu 创建菜单
func (r *MenuRepo) CreateMenu(menu *model.Menu) error {
	return r.Database().Create(menu).Error
}

// UpdateMenu 更新菜单
func (r *MenuRepo) UpdateMenu(menu *model.Menu) error {
	return r.Database().Model(&model.Menu{}).Where("menu_id = ?", menu.MenuId).
		Select("parent_id", "name", "slug", "route", "icon", "sort_order", "is_active").
		Updates(menu).Error
}

// DeleteMenu 删除菜单
func (r *MenuRepo) DeleteMenu(menuId string) error {
	return r.Database().Where("menu_id = ?", menuId).Delete(&model.Menu{}).Error
}

// CountMenus 统计菜单数量：总数、启用数、已配置路由数
func (r *MenuRepo) CountMenus() (total, active, routed int64, err error) {
	db := r.Database().Model(&model.Menu{})
	if err = db.Count(&total).Error; err != nil {
		return
	}
	if err = r.Database().Model(&model.Menu{}).Where("is_active = ?", model.MenuActive).Count(&active).Error; err != nil {
		return
	}
	err = r.Database().Model(&model.Menu{}).Where("route <> ''").Count(&routed).Error
	return
}
