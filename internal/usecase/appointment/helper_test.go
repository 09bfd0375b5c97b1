package appointment

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ProtocolNetwork/shop-portal/internal/audit"
	dbpkg "github.com/ProtocolNetwork/shop-portal/internal/db"
	infraRepo "github.com/ProtocolNetwork/shop-portal/internal/infra/repository"
	"github.com/ProtocolNetwork/shop-portal/internal/models"
)

type fixture struct {
	db     *gorm.DB
	repo   *infraRepo.AppointmentGormRepository
	audit  *audit.Dispatcher
	userID uint
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(db))

	user := models.User{
		Email: "customer@example.com",
		Name:  "Dana Customer",
		Phone: "555-0100",
		Vehicle: models.Vehicle{
			Make:    "Honda",
			Model:   "Civic",
			Year:    "2015",
			VIN:     "VIN123",
			Plate:   "ABC-1234",
			Mileage: "42000",
		},
	}
	require.NoError(t, db.Create(&user).Error)

	return &fixture{
		db:     db,
		repo:   infraRepo.NewAppointmentGormRepository(db),
		audit:  audit.NewDispatcher(audit.New(db)),
		userID: user.ID,
	}
}
