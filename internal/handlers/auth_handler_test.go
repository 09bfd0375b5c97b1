package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ProtocolNetwork/shop-portal/internal/config"
	"github.com/ProtocolNetwork/shop-portal/internal/middleware"
	"github.com/ProtocolNetwork/shop-portal/internal/models"
	"github.com/ProtocolNetwork/shop-portal/internal/roles"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:     "test-secret",
		MechanicEmail: testMechanicEmail,
	}
}

func seedCredentials(t *testing.T, db *gorm.DB, email, password string) models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Email:        roles.Normalize(email),
		PasswordHash: string(hashed),
		Name:         "Dana Customer",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func doLogin(t *testing.T, r http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginIssuesUsableToken(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()
	seedCredentials(t, db, "customer@example.com", "hunter22")

	auth := NewAuthHandler(db, cfg)
	me := NewMeHandler(db)

	r := newTestRouter()
	r.POST("/api/auth/login", auth.Login)
	r.GET("/api/me", middleware.AuthMiddleware(cfg), me.GetMe)

	w := doLogin(t, r, `{"email":"Customer@Example.com","password":"hunter22"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
		User  struct {
			Role string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, string(roles.RoleCustomer), resp.User.Role)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Contains(t, w2.Body.String(), "customer@example.com")
}

func TestLoginRejectsBadPassword(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()
	seedCredentials(t, db, "customer@example.com", "hunter22")

	auth := NewAuthHandler(db, cfg)
	r := newTestRouter()
	r.POST("/api/auth/login", auth.Login)

	w := doLogin(t, r, `{"email":"customer@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_credentials")
}

func TestLoginRewritesStaleRoleColumn(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()
	user := seedCredentials(t, db, testMechanicEmail, "hunter22")

	// Tamper with the stored column; login must put it back.
	require.NoError(t, db.Model(&user).Update("role", "customer").Error)

	auth := NewAuthHandler(db, cfg)
	r := newTestRouter()
	r.POST("/api/auth/login", auth.Login)

	w := doLogin(t, r, `{"email":"`+testMechanicEmail+`","password":"hunter22"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, user.ID).Error)
	assert.Equal(t, string(roles.RoleMechanic), reloaded.Role)
}

func TestMechanicRoutesRejectCustomers(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()
	user := createTestUser(t, db, "customer@example.com")

	h := NewCustomerHandler(db, cfg)
	r := newTestRouter()
	r.GET("/api/mechanic/customers",
		asPrincipal(user.ID, roles.RoleCustomer),
		middleware.RequireRole(roles.RoleMechanic),
		h.List,
	)

	req := httptest.NewRequest(http.MethodGet, "/api/mechanic/customers", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "role_required")
}

func TestAuthMiddlewareRejectsGarbageToken(t *testing.T) {
	cfg := testConfig()
	me := NewMeHandler(newTestDB(t))

	r := newTestRouter()
	r.GET("/api/me", middleware.AuthMiddleware(cfg), me.GetMe)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
