package authorization

import "testing"

func TestParseUserRole(t *testing.T) {
	tests := []struct {
		input interface{}
		want  UserRole
		ok    bool
	}{
		{"admin", RoleAdmin, true},
		{"  Editor ", RoleEditor, true},
		{[]byte("viewer"), RoleViewer, true},
		{RoleAdmin, RoleAdmin, true},
		{"owner", "", false},
		{42, "", false},
	}

	for _, tt := range tests {
		got, ok := ParseUserRole(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("ParseUserRole(%v) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRoleHasPermission(t *testing.T) {
	if !RoleHasPermission(RoleEditor, PermissionEditPages) {
		t.Fatalf("editors must be able to edit pages")
	}
	if RoleHasPermission(RoleEditor, PermissionManageSettings) {
		t.Fatalf("editors must not manage settings")
	}
	if !RoleHasPermission(RoleAdmin, PermissionManageCache) {
		t.Fatalf("admins must be able to clear the cache")
	}
	if RoleHasPermission(RoleViewer, PermissionEditPages) {
		t.Fatalf("viewers must not edit pages")
	}
	if RoleHasPermission(UserRole("ghost"), PermissionEditPages) {
		t.Fatalf("unknown roles have no permissions")
	}
}
