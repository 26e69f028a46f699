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
	"sort"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-staffly/staffly/internal/engine/consts"
	"github.com/go-staffly/staffly/internal/engine/model"
	"github.com/go-staffly/staffly/internal/engine/repo"
	"github.com/go-staffly/staffly/pkg/cache"
	"github.com/go-staffly/staffly/pkg/id"
	"github.com/go-staffly/staffly/pkg/log"
)

var (
	ErrMenuNotFound       = errors.New("menu item not found")
	ErrMenuParentNotFound = errors.New("parent menu item not found")
	ErrMenuParentCycle    = errors.New("parent assignment would create a cycle")
)

// MenuService 菜单服务：按角色集合解析可见菜单树，带缓存
type MenuService struct {
	menuRepo    repo.IMenuRepository
	bindingRepo repo.IRoleMenuBindingRepository
	roleRepo    repo.IRoleRepository
	store       cache.Store
	ttl         time.Duration
}

func NewMenuService(menuRepo repo.IMenuRepository, bindingRepo repo.IRoleMenuBindingRepository,
	roleRepo repo.IRoleRepository, store cache.Store, ttl time.Duration) *MenuService {
	return &MenuService{
		menuRepo:    menuRepo,
		bindingRepo: bindingRepo,
		roleRepo:    roleRepo,
		store:       store,
		ttl:         ttl,
	}
}

// GetMenuForRoles 解析角色集合可见的菜单树。
// 解析失败不向调用方抛错，降级为按主角色的静态兜底菜单。
func (s *MenuService) GetMenuForRoles(ctx context.Context, roles []string) []model.MenuNode {
	normalized := normalizeRoles(roles)
	if len(normalized) == 0 {
		return []model.MenuNode{}
	}

	key := consts.MenuCacheKey + strings.Join(normalized, ",")
	if data, ok := s.store.Get(ctx, key); ok {
		var nodes []model.MenuNode
		if err := sonic.Unmarshal(data, &nodes); err == nil {
			return nodes
		}
		// 缓存内容损坏，丢弃后重新计算
		s.store.Invalidate(ctx, key)
	}

	nodes, err := s.resolveMenus(normalized)
	if err != nil {
		log.Errorw("resolve menus failed, falling back to static menu", "roles", normalized, "err", err)
		return FallbackMenu(primaryRole(normalized))
	}

	if data, err := sonic.Marshal(nodes); err == nil {
		s.store.Set(ctx, key, data, s.ttl)
	}
	return nodes
}

// ClearCache 清空菜单缓存，菜单和授权变更后调用
func (s *MenuService) ClearCache(ctx context.Context) {
	s.store.InvalidateAll(ctx)
}

// resolveMenus 从存储重建菜单树并按角色裁剪
func (s *MenuService) resolveMenus(roles []string) ([]model.MenuNode, error) {
	menus, err := s.menuRepo.GetActiveMenus()
	if err != nil {
		return nil, fmt.Errorf("fetch active menus: %w", err)
	}

	menuIds := make([]string, 0, len(menus))
	for _, m := range menus {
		menuIds = append(menuIds, m.MenuId)
	}
	bindings, err := s.bindingRepo.GetBindingsByMenuIds(menuIds)
	if err != nil {
		return nil, fmt.Errorf("fetch menu grants: %w", err)
	}
	roleNameById, err := s.roleNamesById()
	if err != nil {
		return nil, fmt.Errorf("fetch roles: %w", err)
	}

	// 每个菜单的授权角色名集合；hasGrant 区分"无授权记录"与"有记录但不可见"
	granted := make(map[string]map[string]struct{})
	hasGrant := make(map[string]bool)
	for _, b := range bindings {
		hasGrant[b.MenuId] = true
		if b.CanView != model.RoleMenuCanView {
			continue
		}
		name, ok := roleNameById[b.RoleId]
		if !ok {
			continue
		}
		if granted[b.MenuId] == nil {
			granted[b.MenuId] = make(map[string]struct{})
		}
		granted[b.MenuId][name] = struct{}{}
	}

	roleSet := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		roleSet[r] = struct{}{}
	}
	visible := func(menuId string) bool {
		// 无任何授权记录时默认可见
		if !hasGrant[menuId] {
			return true
		}
		for name := range granted[menuId] {
			if _, held := roleSet[name]; held {
				return true
			}
		}
		return false
	}

	tree := buildMenuTree(menus)
	return pruneMenuTree(tree, visible), nil
}

// buildMenuTree 两遍构建菜单树，menus 需按 sort_order、name 预先排序
func buildMenuTree(menus []model.Menu) []*model.MenuNode {
	nodeMap := make(map[string]*model.MenuNode, len(menus))
	for _, m := range menus {
		nodeMap[m.MenuId] = &model.MenuNode{
			MenuId:    m.MenuId,
			Name:      m.Name,
			Slug:      m.Slug,
			Route:     m.Route,
			Icon:      m.Icon,
			ParentId:  m.ParentId,
			SortOrder: m.SortOrder,
			Children:  []model.MenuNode{},
		}
	}

	var roots []*model.MenuNode
	children := make(map[string][]*model.MenuNode)
	for _, m := range menus {
		node := nodeMap[m.MenuId]
		if m.ParentId == "" {
			roots = append(roots, node)
			continue
		}
		if _, exists := nodeMap[m.ParentId]; exists {
			children[m.ParentId] = append(children[m.ParentId], node)
		} else {
			// 父菜单停用或缺失，提升为顶级
			log.Warnw("parent menu not found, promoting to top level", "menuId", m.MenuId, "parentId", m.ParentId)
			roots = append(roots, node)
		}
	}

	var attach func(node *model.MenuNode)
	attach = func(node *model.MenuNode) {
		for _, child := range children[node.MenuId] {
			attach(child)
			node.Children = append(node.Children, *child)
		}
	}
	for _, root := range roots {
		attach(root)
	}
	return roots
}

// pruneMenuTree 递归裁剪不可见节点。不可见节点整棵剔除，不保留空壳
func pruneMenuTree(nodes []*model.MenuNode, visible func(menuId string) bool) []model.MenuNode {
	result := []model.MenuNode{}
	for _, node := range nodes {
		if !visible(node.MenuId) {
			continue
		}
		kept := *node
		kept.Children = pruneChildren(node.Children, visible)
		kept.HasChildren = len(kept.Children) > 0
		result = append(result, kept)
	}
	return result
}

func pruneChildren(nodes []model.MenuNode, visible func(menuId string) bool) []model.MenuNode {
	result := []model.MenuNode{}
	for _, node := range nodes {
		if !visible(node.MenuId) {
			continue
		}
		kept := node
		kept.Children = pruneChildren(node.Children, visible)
		kept.HasChildren = len(kept.Children) > 0
		result = append(result, kept)
	}
	return result
}

func (s *MenuService) roleNamesById() (map[string]string, error) {
	roleRows, err := s.roleRepo.ListRoles()
	if err != nil {
		return nil, err
	}
	byId := make(map[string]string, len(roleRows))
	for _, r := range roleRows {
		byId[r.RoleId] = r.Name
	}
	return byId, nil
}

// normalizeRoles 去重、去空并排序，保证缓存 key 稳定
func normalizeRoles(roles []string) []string {
	seen := make(map[string]struct{}, len(roles))
	normalized := make([]string, 0, len(roles))
	for _, r := range roles {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		normalized = append(normalized, r)
	}
	sort.Strings(normalized)
	return normalized
}

// primaryRole 取角色集合中层级最高的角色，无内置角色时取第一个
func primaryRole(roles []string) string {
	for _, candidate := range []string{"developer", "superadmin", "admin", "supervisor", "employee"} {
		for _, r := range roles {
			if r == candidate {
				return candidate
			}
		}
	}
	if len(roles) > 0 {
		return roles[0]
	}
	return ""
}

// FallbackMenu 静态兜底菜单。菜单解析失败时按主角色返回，未收录的角色返回空列表
func FallbackMenu(role string) []model.MenuNode {
	switch role {
	case "developer", "superadmin":
		return []model.MenuNode{
			{MenuId: "fallback-dashboard", Name: "Dashboard", Slug: "dashboard", Route: "/superadmin/dashboard", Icon: "home", Children: []model.MenuNode{}},
			{MenuId: "fallback-companies", Name: "Companies", Slug: "companies", Route: "/superadmin/companies", Icon: "building", Children: []model.MenuNode{}},
			{MenuId: "fallback-users", Name: "Users", Slug: "users", Route: "/superadmin/users", Icon: "users", Children: []model.MenuNode{}},
		}
	case "admin":
		return []model.MenuNode{
			{MenuId: "fallback-dashboard", Name: "Dashboard", Slug: "dashboard", Route: "/admin/dashboard", Icon: "home", Children: []model.MenuNode{}},
			{MenuId: "fallback-employees", Name: "Employees", Slug: "employees", Route: "/admin/employees", Icon: "users", Children: []model.MenuNode{}},
			{MenuId: "fallback-attendance", Name: "Attendance", Slug: "attendance", Route: "/admin/attendance", Icon: "clock", Children: []model.MenuNode{}},
		}
	case "employee":
		return []model.MenuNode{
			{MenuId: "fallback-dashboard", Name: "Dashboard", Slug: "dashboard", Route: "/employee/dashboard", Icon: "home", Children: []model.MenuNode{}},
			{MenuId: "fallback-attendance", Name: "My Attendance", Slug: "my-attendance", Route: "/employee/attendance", Icon: "clock", Children: []model.MenuNode{}},
		}
	default:
		return []model.MenuNode{}
	}
}

// CreateMenu 创建菜单项，父菜单必须存在
func (s *MenuService) CreateMenu(ctx context.Context, req *model.CreateMenuReq) (*model.Menu, error) {
	if req.ParentId != "" {
		if _, err := s.menuRepo.GetMenu(req.ParentId); err != nil {
			return nil, ErrMenuParentNotFound
		}
	}
	slug := req.Slug
	if slug == "" {
		slug = slugify(req.Name)
	}
	isActive := model.MenuActive
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	menu := &model.Menu{
		MenuId:    id.GetUUIDWithoutDashes(),
		ParentId:  req.ParentId,
		Name:      req.Name,
		Slug:      slug,
		Route:     req.Route,
		Icon:      req.Icon,
		SortOrder: req.SortOrder,
		IsActive:  isActive,
	}
	if err := s.menuRepo.CreateMenu(menu); err != nil {
		return nil, err
	}
	s.ClearCache(ctx)
	return menu, nil
}

// UpdateMenu 更新菜单项，父菜单变更时校验不成环
func (s *MenuService) UpdateMenu(ctx context.Context, menuId string, req *model.UpdateMenuReq) error {
	menu, err := s.menuRepo.GetMenu(menuId)
	if err != nil {
		return ErrMenuNotFound
	}
	if req.ParentId != nil && *req.ParentId != menu.ParentId {
		if err := s.checkParent(menuId, *req.ParentId); err != nil {
			return err
		}
		menu.ParentId = *req.ParentId
	}
	if req.Name != nil {
		menu.Name = *req.Name
	}
	if req.Slug != nil {
		menu.Slug = *req.Slug
	}
	if req.Route != nil {
		menu.Route = *req.Route
	}
	if req.Icon != nil {
		menu.Icon = *req.Icon
	}
	if req.SortOrder != nil {
		menu.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		menu.IsActive = *req.IsActive
	}
	if err := s.menuRepo.UpdateMenu(menu); err != nil {
		return err
	}
	s.ClearCache(ctx)
	return nil
}

// DeleteMenu 删除菜单项，子菜单提升为顶级
func (s *MenuService) DeleteMenu(ctx context.Context, menuId string) error {
	if _, err := s.menuRepo.GetMenu(menuId); err != nil {
		return ErrMenuNotFound
	}
	orphans, err := s.menuRepo.GetMenusByParentId(menuId)
	if err != nil {
		return err
	}
	for i := range orphans {
		orphans[i].ParentId = ""
		if err := s.menuRepo.UpdateMenu(&orphans[i]); err != nil {
			return err
		}
	}
	if err := s.menuRepo.DeleteMenu(menuId); err != nil {
		return err
	}
	s.ClearCache(ctx)
	return nil
}

// checkParent 父菜单必须存在，且沿祖先链上溯不得回到自身
func (s *MenuService) checkParent(menuId, parentId string) error {
	if parentId == "" {
		return nil
	}
	current := parentId
	for current != "" {
		if current == menuId {
			return ErrMenuParentCycle
		}
		parent, err := s.menuRepo.GetMenu(current)
		if err != nil {
			return ErrMenuParentNotFound
		}
		current = parent.ParentId
	}
	return nil
}

// GrantMenu 授予或撤回角色对菜单的可见性
func (s *MenuService) GrantMenu(ctx context.Context, req *model.GrantMenuReq) error {
	if _, err := s.menuRepo.GetMenu(req.MenuId); err != nil {
		return ErrMenuNotFound
	}
	if _, err := s.roleRepo.GetRole(req.RoleId); err != nil {
		return ErrRoleNotFound
	}
	canView := model.RoleMenuCanView
	if req.CanView != nil {
		canView = *req.CanView
	}
	binding := &model.RoleMenuBinding{
		RoleMenuId: id.GetUUIDWithoutDashes(),
		RoleId:     req.RoleId,
		MenuId:     req.MenuId,
		CanView:    canView,
	}
	if err := s.bindingRepo.UpsertRoleMenuBinding(binding); err != nil {
		return err
	}
	s.ClearCache(ctx)
	return nil
}

// RevokeMenu 删除角色菜单授权记录
func (s *MenuService) RevokeMenu(ctx context.Context, roleId, menuId string) error {
	if err := s.bindingRepo.DeleteRoleMenuBinding(roleId, menuId); err != nil {
		return err
	}
	s.ClearCache(ctx)
	return nil
}

// MenuStats 菜单统计，CLI 默认输出
type MenuStats struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Routed   int64 `json:"routed"`
	Unrouted int64 `json:"unrouted"`
	Roles    int64 `json:"roles"`
	Grants   int64 `json:"grants"`
}

// Stats 统计菜单、角色、授权数量
func (s *MenuService) Stats() (*MenuStats, error) {
	total, active, routed, err := s.menuRepo.CountMenus()
	if err != nil {
		return nil, err
	}
	roles, err := s.roleRepo.CountRoles()
	if err != nil {
		return nil, err
	}
	grants, err := s.bindingRepo.CountBindings()
	if err != nil {
		return nil, err
	}
	return &MenuStats{
		Total:    total,
		Active:   active,
		Routed:   routed,
		Unrouted: total - routed,
		Roles:    roles,
		Grants:   grants,
	}, nil
}

// RouteSyncResult --sync 的单项结果
type RouteSyncResult struct {
	MenuId string `json:"menuId"`
	Name   string `json:"name"`
	Route  string `json:"route"`
	OK     bool   `json:"ok"`
	Detail string `json:"detail"`
}

// SyncRoutes 为未配置路由的启用菜单生成 slug/路由，并校验已有路由是否在注册表中。
// 单项失败只记录，不中断批次。
func (s *MenuService) SyncRoutes(ctx context.Context, registered []string) ([]RouteSyncResult, error) {
	menus, err := s.menuRepo.GetActiveMenus()
	if err != nil {
		return nil, err
	}
	known := make(map[string]struct{}, len(registered))
	for _, r := range registered {
		known[r] = struct{}{}
	}

	results := make([]RouteSyncResult, 0, len(menus))
	changed := false
	for i := range menus {
		m := &menus[i]
		res := RouteSyncResult{MenuId: m.MenuId, Name: m.Name}
		if m.Route == "" {
			if m.Slug == "" {
				m.Slug = slugify(m.Name)
			}
			if m.Slug == "" {
				res.OK = false
				res.Detail = "cannot derive route: empty name"
				results = append(results, res)
				continue
			}
			m.Route = "/" + m.Slug
			if err := s.menuRepo.UpdateMenu(m); err != nil {
				res.OK = false
				res.Detail = err.Error()
				results = append(results, res)
				continue
			}
			changed = true
			res.OK = true
			res.Route = m.Route
			res.Detail = "route generated"
		} else if _, ok := known[m.Route]; !ok && len(known) > 0 {
			res.OK = false
			res.Route = m.Route
			res.Detail = "route not registered"
		} else {
			res.OK = true
			res.Route = m.Route
			res.Detail = "ok"
		}
		results = append(results, res)
	}
	if changed {
		s.ClearCache(ctx)
	}
	return results, nil
}
