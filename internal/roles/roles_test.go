package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const mechanicEmail = "protocolnetwork18052687686@gmail.com"

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  Role
	}{
		{"mechanic exact", "protocolnetwork18052687686@gmail.com", RoleMechanic},
		{"mechanic mixed case and padding", "  Protocolnetwork18052687686@GMAIL.com ", RoleMechanic},
		{"customer", "customer@example.com", RoleCustomer},
		{"customer close to mechanic", "protocolnetwork18052687687@gmail.com", RoleCustomer},
		{"empty email has no role", "", RoleNone},
		{"whitespace only has no role", "   ", RoleNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.email, mechanicEmail))
		})
	}
}

func TestResolveMechanicEmailNormalizedToo(t *testing.T) {
	got := Resolve("shop@repair.example", " Shop@Repair.Example ")
	assert.Equal(t, RoleMechanic, got)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "a@b.c", Normalize("  A@B.C "))
	assert.Equal(t, "", Normalize("   "))
}
