package auth

import "testing"

func TestIsValidRole(t *testing.T) {
	tests := []struct {
		role  string
		valid bool
	}{
		{"vendedor", true},
		{"gerente", true},
		{"admin", true},
		{"Admin", false},
		{"root", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			if got := IsValidRole(Role(tt.role)); got != tt.valid {
				t.Errorf("IsValidRole(%q) = %v, want %v", tt.role, got, tt.valid)
			}
		})
	}
}

func TestIsAllowed(t *testing.T) {
	tests := []struct {
		name    string
		role    Role
		allowed []Role
		want    bool
	}{
		{"admin in admin-only", RoleAdmin, []Role{RoleAdmin}, true},
		{"gerente in admin-only", RoleGerente, []Role{RoleAdmin}, false},
		{"gerente in write set", RoleGerente, []Role{RoleGerente, RoleAdmin}, true},
		{"vendedor in write set", RoleVendedor, []Role{RoleGerente, RoleAdmin}, false},
		{"vendedor in read set", RoleVendedor, []Role{RoleVendedor, RoleGerente, RoleAdmin}, true},
		{"empty allowed set", RoleAdmin, nil, false},
		{"unknown role", Role("root"), []Role{RoleVendedor, RoleGerente, RoleAdmin}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAllowed(tt.role, tt.allowed...); got != tt.want {
				t.Errorf("IsAllowed(%q, %v) = %v, want %v", tt.role, tt.allowed, got, tt.want)
			}
		})
	}
}
