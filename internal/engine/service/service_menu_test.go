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
	"testing"
	"time"

	"github.com/go-staffly/staffly/internal/engine/model"
	"github.com/go-staffly/staffly/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMenuRepo struct {
	menus        []model.Menu
	resolveCount int
	failFetch    bool
}

func (f *fakeMenuRepo) GetMenu(menuId string) (*model.Menu, error) {
	for i := range f.menus {
		if f.menus[i].MenuId == menuId {
			return &f.menus[i], nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakeMenuRepo) GetActiveMenus() ([]model.Menu, error) {
	f.resolveCount++
	if f.failFetch {
		return nil, errors.New("storage unreachable")
	}
	var active []model.Menu
	for _, m := range f.menus {
		if m.IsActive == model.MenuActive {
			active = append(active, m)
		}
	}
	return active, nil
}

func (f *fakeMenuRepo) GetAllMenus() ([]model.Menu, error) {
	return f.menus, nil
}

func (f *fakeMenuRepo) GetMenusByParentId(parentId string) ([]model.Menu, error) {
	var children []model.Menu
	for _, m := range f.menus {
		if m.ParentId == parentId {
			children = append(children, m)
		}
	}
	return children, nil
}

func (f *fakeMenuRepo) CreateMenu(menu *model.Menu) error {
	f.menus = append(f.menus, *menu)
	return nil
}

func (f *fakeMenuRepo) UpdateMenu(menu *model.Menu) error {
	for i := range f.menus {
		if f.menus[i].MenuId == menu.MenuId {
			f.menus[i] = *menu
			return nil
		}
	}
	return errors.New("record not found")
}

func (f *fakeMenuRepo) DeleteMenu(menuId string) error {
	for i := range f.menus {
		if f.menus[i].MenuId == menuId {
			f.menus = append(f.menus[:i], f.menus[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeMenuRepo) CountMenus() (total, active, routed int64, err error) {
	for _, m := range f.menus {
		total++
		if m.IsActive == model.MenuActive {
			active++
		}
		if m.Route != "" {
			routed++
		}
	}
	return
}

type fakeBindingRepo struct {
	bindings []model.RoleMenuBinding
}

func (f *fakeBindingRepo) GetRoleMenuBindings(roleId string) ([]model.RoleMenuBinding, error) {
	var out []model.RoleMenuBinding
	for _, b := range f.bindings {
		if b.RoleId == roleId {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBindingRepo) GetBindingsByMenuIds(menuIds []string) ([]model.RoleMenuBinding, error) {
	ids := make(map[string]struct{}, len(menuIds))
	for _, id := range menuIds {
		ids[id] = struct{}{}
	}
	var out []model.RoleMenuBinding
	for _, b := range f.bindings {
		if _, ok := ids[b.MenuId]; ok {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBindingRepo) UpsertRoleMenuBinding(binding *model.RoleMenuBinding) error {
	for i := range f.bindings {
		if f.bindings[i].RoleId == binding.RoleId && f.bindings[i].MenuId == binding.MenuId {
			f.bindings[i].CanView = binding.CanView
			return nil
		}
	}
	f.bindings = append(f.bindings, *binding)
	return nil
}

func (f *fakeBindingRepo) DeleteRoleMenuBinding(roleId, menuId string) error {
	for i := range f.bindings {
		if f.bindings[i].RoleId == roleId && f.bindings[i].MenuId == menuId {
			f.bindings = append(f.bindings[:i], f.bindings[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeBindingRepo) CountBindings() (int64, error) {
	return int64(len(f.bindings)), nil
}

type fakeRoleRepo struct {
	roles []model.Role
}

func (f *fakeRoleRepo) GetRole(roleId string) (*model.Role, error) {
	for i := range f.roles {
		if f.roles[i].RoleId == roleId {
			return &f.roles[i], nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakeRoleRepo) GetRoleByName(name string) (*model.Role, error) {
	for i := range f.roles {
		if f.roles[i].Name == name {
			return &f.roles[i], nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakeRoleRepo) ListRoles() ([]model.Role, error) {
	return f.roles, nil
}

func (f *fakeRoleRepo) CreateRole(role *model.Role) error {
	f.roles = append(f.roles, *role)
	return nil
}

func (f *fakeRoleRepo) UpdateRole(role *model.Role) error { return nil }

func (f *fakeRoleRepo) DeleteRole(roleId string) error { return nil }

func (f *fakeRoleRepo) CountRoles() (int64, error) {
	return int64(len(f.roles)), nil
}

// 测试数据：
//   dashboard       顶级，无任何授权记录（默认可见）
//   admin-area      顶级，仅 admin 可见
//     admin-users   子级，仅 admin 可见
//     billing       子级，仅 superadmin 可见
//   hr              顶级，employee 的授权记录存在但 can_view=0
func newMenuFixture() (*MenuService, *fakeMenuRepo) {
	menuRepo := &fakeMenuRepo{
		menus: []model.Menu{
			{MenuId: "dashboard", Name: "Dashboard", Route: "/dashboard", SortOrder: 1, IsActive: model.MenuActive},
			{MenuId: "admin-area", Name: "Admin", Route: "/admin", SortOrder: 2, IsActive: model.MenuActive},
			{MenuId: "admin-users", ParentId: "admin-area", Name: "Users", Route: "/admin/users", SortOrder: 1, IsActive: model.MenuActive},
			{MenuId: "billing", ParentId: "admin-area", Name: "Billing", Route: "/admin/billing", SortOrder: 2, IsActive: model.MenuActive},
			{MenuId: "hr", Name: "HR", Route: "/hr", SortOrder: 3, IsActive: model.MenuActive},
			{MenuId: "legacy", Name: "Legacy", Route: "/legacy", SortOrder: 4, IsActive: model.MenuInactive},
		},
	}
	bindingRepo := &fakeBindingRepo{
		bindings: []model.RoleMenuBinding{
			{RoleMenuId: "b1", RoleId: "r-admin", MenuId: "admin-area", CanView: model.RoleMenuCanView},
			{RoleMenuId: "b2", RoleId: "r-admin", MenuId: "admin-users", CanView: model.RoleMenuCanView},
			{RoleMenuId: "b3", RoleId: "r-super", MenuId: "billing", CanView: model.RoleMenuCanView},
			{RoleMenuId: "b4", RoleId: "r-employee", MenuId: "hr", CanView: model.RoleMenuCannotView},
		},
	}
	roleRepo := &fakeRoleRepo{
		roles: []model.Role{
			{RoleId: "r-super", Name: "superadmin"},
			{RoleId: "r-admin", Name: "admin"},
			{RoleId: "r-employee", Name: "employee"},
		},
	}
	store := cache.NewFastStore(1 << 20)
	return NewMenuService(menuRepo, bindingRepo, roleRepo, store, time.Minute), menuRepo
}

func menuIds(nodes []model.MenuNode) map[string]struct{} {
	ids := make(map[string]struct{})
	var walk func([]model.MenuNode)
	walk = func(ns []model.MenuNode) {
		for _, n := range ns {
			ids[n.MenuId] = struct{}{}
			walk(n.Children)
		}
	}
	walk(nodes)
	return ids
}

func TestGetMenuForRolesEmptySet(t *testing.T) {
	svc, repo := newMenuFixture()

	nodes := svc.GetMenuForRoles(context.Background(), nil)
	assert.Empty(t, nodes)
	nodes = svc.GetMenuForRoles(context.Background(), []string{"", "  "})
	assert.Empty(t, nodes)
	// 空集不触发解析，也不进缓存
	assert.Equal(t, 0, repo.resolveCount)
}

func TestGetMenuForRolesDefaultAllow(t *testing.T) {
	svc, _ := newMenuFixture()

	nodes := svc.GetMenuForRoles(context.Background(), []string{"employee"})
	ids := menuIds(nodes)
	// 无授权记录的菜单对所有角色可见
	assert.Contains(t, ids, "dashboard")
	// 有授权记录但 can_view=0 的菜单不可见
	assert.NotContains(t, ids, "hr")
	// 授权给其他角色的菜单不可见
	assert.NotContains(t, ids, "admin-area")
}

func TestGetMenuForRolesRecursivePruning(t *testing.T) {
	svc, _ := newMenuFixture()

	nodes := svc.GetMenuForRoles(context.Background(), []string{"admin"})
	require.Len(t, nodes, 2)
	assert.Equal(t, "dashboard", nodes[0].MenuId)

	adminArea := nodes[1]
	require.Equal(t, "admin-area", adminArea.MenuId)
	// billing 只授权给 superadmin，需从子树中整棵剔除
	require.Len(t, adminArea.Children, 1)
	assert.Equal(t, "admin-users", adminArea.Children[0].MenuId)
	assert.True(t, adminArea.HasChildren)
	assert.False(t, adminArea.Children[0].HasChildren)
	assert.NotNil(t, adminArea.Children[0].Children)
}

func TestGetMenuForRolesMonotonicity(t *testing.T) {
	svc, _ := newMenuFixture()

	small := menuIds(svc.GetMenuForRoles(context.Background(), []string{"employee"}))
	large := menuIds(svc.GetMenuForRoles(context.Background(), []string{"employee", "admin", "superadmin"}))
	for id := range small {
		assert.Contains(t, large, id)
	}
	// 角色更多只会多见，不会少见
	assert.GreaterOrEqual(t, len(large), len(small))
	assert.Contains(t, large, "billing")
}

func TestGetMenuForRolesCaching(t *testing.T) {
	svc, repo := newMenuFixture()
	ctx := context.Background()

	svc.GetMenuForRoles(ctx, []string{"admin", "employee"})
	assert.Equal(t, 1, repo.resolveCount)

	// 同一集合的乱序、重复、空白写法命中同一个缓存 key
	svc.GetMenuForRoles(ctx, []string{"employee", "admin"})
	svc.GetMenuForRoles(ctx, []string{"admin", "admin", " employee "})
	assert.Equal(t, 1, repo.resolveCount)

	svc.ClearCache(ctx)
	svc.GetMenuForRoles(ctx, []string{"admin", "employee"})
	assert.Equal(t, 2, repo.resolveCount)
}

func TestGetMenuForRolesFallbackOnError(t *testing.T) {
	svc, repo := newMenuFixture()
	repo.failFetch = true

	nodes := svc.GetMenuForRoles(context.Background(), []string{"admin"})
	require.NotEmpty(t, nodes)
	assert.Equal(t, FallbackMenu("admin"), nodes)

	// 未收录的角色降级为空列表，但同样不报错
	nodes = svc.GetMenuForRoles(context.Background(), []string{"editor"})
	assert.Empty(t, nodes)
}

func TestFallbackMenuKnownRoles(t *testing.T) {
	assert.NotEmpty(t, FallbackMenu("superadmin"))
	assert.NotEmpty(t, FallbackMenu("admin"))
	assert.NotEmpty(t, FallbackMenu("employee"))
	assert.Empty(t, FallbackMenu("editor"))
	assert.Empty(t, FallbackMenu(""))
}

func TestUpdateMenuRejectsCycle(t *testing.T) {
	svc, _ := newMenuFixture()
	ctx := context.Background()

	// admin-area 挂到自己的子级下会成环
	parentId := "admin-users"
	err := svc.UpdateMenu(ctx, "admin-area", &model.UpdateMenuReq{ParentId: &parentId})
	assert.ErrorIs(t, err, ErrMenuParentCycle)

	self := "admin-area"
	err = svc.UpdateMenu(ctx, "admin-area", &model.UpdateMenuReq{ParentId: &self})
	assert.ErrorIs(t, err, ErrMenuParentCycle)

	missing := "no-such-menu"
	err = svc.UpdateMenu(ctx, "admin-area", &model.UpdateMenuReq{ParentId: &missing})
	assert.ErrorIs(t, err, ErrMenuParentNotFound)
}

func TestMenuMutationsInvalidateCache(t *testing.T) {
	svc, repo := newMenuFixture()
	ctx := context.Background()

	svc.GetMenuForRoles(ctx, []string{"admin"})
	assert.Equal(t, 1, repo.resolveCount)

	_, err := svc.CreateMenu(ctx, &model.CreateMenuReq{Name: "Reports", Route: "/reports"})
	require.NoError(t, err)

	svc.GetMenuForRoles(ctx, []string{"admin"})
	assert.Equal(t, 2, repo.resolveCount)
}

func TestSyncRoutes(t *testing.T) {
	svc, repo := newMenuFixture()
	repo.menus = append(repo.menus, model.Menu{
		MenuId: "unrouted", Name: "Team Calendar", SortOrder: 5, IsActive: model.MenuActive,
	})

	results, err := svc.SyncRoutes(context.Background(), []string{"/dashboard", "/admin", "/admin/users", "/admin/billing", "/team-calendar"})
	require.NoError(t, err)

	byId := make(map[string]RouteSyncResult)
	for _, r := range results {
		byId[r.MenuId] = r
	}
	assert.True(t, byId["dashboard"].OK)
	assert.True(t, byId["unrouted"].OK)
	assert.Equal(t, "/team-calendar", byId["unrouted"].Route)
	// hr 的路由不在注册表中
	assert.False(t, byId["hr"].OK)
}
