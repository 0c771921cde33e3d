package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/vpriyankaa/sales-admin-sub000/internal/model"
	"github.com/vpriyankaa/sales-admin-sub000/internal/repository"
	"github.com/vpriyankaa/sales-admin-sub000/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupApp(t *testing.T) (*fiber.App, *jwt.Manager, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&model.Privilege{}, &model.User{}))

	tokens := jwt.NewManager("test-secret")
	app := fiber.New()
	app.Get("/orders", RequireAuth(tokens, repository.NewUserRepo(db)), RequirePrivilege("order:create"), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("user_name").(string))
	})
	return app, tokens, db
}

func createUser(t *testing.T, db *gorm.DB, active bool, codes ...string) *model.User {
	t.Helper()
	user := &model.User{Email: uuid.NewString() + "@example.com", FullName: "Operator", IsActive: true}
	require.NoError(t, user.SetPassword("secret123"))
	for _, code := range codes {
		user.Privileges = append(user.Privileges, model.Privilege{Code: code, Name: code})
	}
	require.NoError(t, db.Create(user).Error)
	if !active {
		require.NoError(t, db.Model(user).Update("is_active", false).Error)
	}
	return user
}

func status(t *testing.T, app *fiber.App, header string) int {
	t.Helper()
	req := httptest.NewRequest("GET", "/orders", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	return resp.StatusCode
}

func TestRequireAuth(t *testing.T) {
	app, tokens, db := setupApp(t)

	allowed := createUser(t, db, true, "order:create")
	token, err := tokens.GenerateToken(allowed.ID, allowed.Email, allowed.FullName, nil)
	require.NoError(t, err)

	assert.Equal(t, 401, status(t, app, ""))
	assert.Equal(t, 401, status(t, app, "Token "+token))
	assert.Equal(t, 401, status(t, app, "Bearer not-a-token"))
	assert.Equal(t, 200, status(t, app, "Bearer "+token))

	other := jwt.NewManager("other-secret")
	forged, err := other.GenerateToken(allowed.ID, allowed.Email, allowed.FullName, []string{"order:create"})
	require.NoError(t, err)
	assert.Equal(t, 401, status(t, app, "Bearer "+forged))

	ghost, err := tokens.GenerateToken(uuid.New(), "ghost@example.com", "Ghost", []string{"order:create"})
	require.NoError(t, err)
	assert.Equal(t, 401, status(t, app, "Bearer "+ghost))

	inactive := createUser(t, db, false, "order:status")
	token, err = tokens.GenerateToken(inactive.ID, inactive.Email, inactive.FullName, nil)
	require.NoError(t, err)
	assert.Equal(t, 401, status(t, app, "Bearer "+token))
}

func TestRequirePrivilegeReadsDatabase(t *testing.T) {
	app, tokens, db := setupApp(t)

	viewer := createUser(t, db, true, "dashboard:view")
	// claims carry the privilege but the stored account does not
	token, err := tokens.GenerateToken(viewer.ID, viewer.Email, viewer.FullName, []string{"order:create"})
	require.NoError(t, err)
	assert.Equal(t, 403, status(t, app, "Bearer "+token))

	var privilege model.Privilege
	require.NoError(t, db.FirstOrCreate(&privilege, model.Privilege{Code: "order:create", Name: "Create Order"}).Error)
	require.NoError(t, db.Model(viewer).Association("Privileges").Append(&privilege))
	assert.Equal(t, 200, status(t, app, "Bearer "+token))
}
