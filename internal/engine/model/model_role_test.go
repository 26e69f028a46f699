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

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoveredRoles_Hierarchy(t *testing.T) {
	cases := []struct {
		role    string
		covered []string
	}{
		{"developer", []string{"developer", "superadmin", "admin", "supervisor", "employee"}},
		{"superadmin", []string{"superadmin", "admin", "supervisor", "employee"}},
		{"admin", []string{"admin", "supervisor", "employee"}},
		{"supervisor", []string{"supervisor", "employee"}},
		{"employee", []string{"employee"}},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.covered, CoveredRoles(tc.role), "role %s", tc.role)
	}
}

func TestCoveredRoles_UnknownRoleIdentity(t *testing.T) {
	// 未知角色只覆盖自身
	assert.Equal(t, []string{"editor"}, CoveredRoles("editor"))
}

func TestRoleCovers(t *testing.T) {
	assert.True(t, RoleCovers("admin", "employee"))
	assert.True(t, RoleCovers("developer", "superadmin"))
	assert.False(t, RoleCovers("employee", "admin"))
	assert.False(t, RoleCovers("supervisor", "admin"))

	// 未知角色不产生越权：editor 访问 employee 门槛的路由被拒
	assert.False(t, RoleCovers("editor", "employee"))
	assert.True(t, RoleCovers("editor", "editor"))
}

func TestAnyRoleCovers(t *testing.T) {
	assert.True(t, AnyRoleCovers([]string{"editor", "admin"}, "supervisor"))
	assert.False(t, AnyRoleCovers([]string{"editor", "employee"}, "admin"))
	assert.False(t, AnyRoleCovers(nil, "employee"))
}

func TestParseRoleName(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseRoleName("admin"))
	assert.Equal(t, RoleUnknown, ParseRoleName("editor"))
	assert.Equal(t, RoleUnknown, ParseRoleName(""))
}
