package authorization

import "strings"

type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleEditor UserRole = "editor"
	RoleViewer UserRole = "viewer"
)

var validRoles = map[UserRole]struct{}{
	RoleAdmin:  {},
	RoleEditor: {},
	RoleViewer: {},
}

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsValid() bool {
	_, ok := validRoles[r]
	return ok
}

type Permission string

const (
	PermissionEditPages      Permission = "edit_pages"
	PermissionDeletePages    Permission = "delete_pages"
	PermissionManageSettings Permission = "manage_settings"
	PermissionManageCache    Permission = "manage_cache"
)

var rolePermissions = map[UserRole]map[Permission]struct{}{
	RoleAdmin: {
		PermissionEditPages:      {},
		PermissionDeletePages:    {},
		PermissionManageSettings: {},
		PermissionManageCache:    {},
	},
	RoleEditor: {
		PermissionEditPages: {},
	},
	RoleViewer: {},
}

func RoleHasPermission(role UserRole, permission Permission) bool {
	perms, ok := rolePermissions[role]
	if !ok {
		return false
	}
	_, ok = perms[permission]
	return ok
}

// ParseUserRole normalises a role claim. Unknown values are rejected.
func ParseUserRole(value interface{}) (UserRole, bool) {
	var raw string
	switch v := value.(type) {
	case UserRole:
		raw = string(v)
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return "", false
	}

	role := UserRole(strings.ToLower(strings.TrimSpace(raw)))
	if !role.IsValid() {
		return "", false
	}
	return role, true
}
