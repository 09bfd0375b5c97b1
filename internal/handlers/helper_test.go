package handlers

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/ProtocolNetwork/shop-portal/internal/db"
	"github.com/ProtocolNetwork/shop-portal/internal/middleware"
	"github.com/ProtocolNetwork/shop-portal/internal/models"
	"github.com/ProtocolNetwork/shop-portal/internal/roles"
)

const testMechanicEmail = "protocolnetwork18052687686@gmail.com"

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(db))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()

	user := models.User{
		Email: email,
		Name:  "Dana Customer",
		Phone: "555-0100",
		Role:  string(roles.RoleCustomer),
		Vehicle: models.Vehicle{
			Make:    "Honda",
			Model:   "Civic",
			Year:    "2015",
			Mileage: "42000",
		},
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

// asPrincipal injects an authenticated identity the way the JWT
// middleware would.
func asPrincipal(userID uint, role roles.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Set(middleware.ContextUserEmail, "test@example.com")
		c.Set(middleware.ContextUserRole, role)
		c.Next()
	}
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}
