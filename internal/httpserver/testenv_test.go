package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/models"
	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/repo"
	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/service"
)

type testEnv struct {
	T         *testing.T
	E         *echo.Echo
	DB        *gorm.DB
	Catalog   *CatalogHTTP
	User      *UserHTTP
	Order     *OrderHTTP
	Dashboard *DashboardHTTP
	Auth      *AuthHTTP
	JWTSecret []byte
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.ProductColor{},
		&models.User{},
		&models.Order{},
		&models.OrderItem{},
	))

	r := &repo.GormRepo{DB: db}
	secret := []byte("test-jwt-secret")

	e := echo.New()
	e.Validator = NewValidator()

	return &testEnv{
		T:         t,
		E:         e,
		DB:        db,
		Catalog:   &CatalogHTTP{Svc: &service.CatalogService{Repo: r}},
		User:      &UserHTTP{Svc: &service.UserService{Repo: r}},
		Order:     &OrderHTTP{Svc: &service.OrderService{Repo: r}},
		Dashboard: &DashboardHTTP{Svc: &service.DashboardService{Repo: r}},
		Auth:      &AuthHTTP{Svc: &service.AuthService{Repo: r, JWTSecret: secret}},
		JWTSecret: secret,
	}
}

func (env *testEnv) doJSONRequest(method, path string, body any) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func (env *testEnv) seedUser(u models.User) models.User {
	env.T.Helper()
	require.NoError(env.T, env.DB.Create(&u).Error)
	return u
}

func (env *testEnv) seedProduct(p models.Product) models.Product {
	env.T.Helper()
	require.NoError(env.T, env.DB.Create(&p).Error)
	return p
}

func (env *testEnv) seedOrder(o models.Order) models.Order {
	env.T.Helper()
	require.NoError(env.T, env.DB.Create(&o).Error)
	return o
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

// errorBody is the failure half of the envelope.
type errorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details"`
}

func requireError(t *testing.T, rec *httptest.ResponseRecorder, status int, msg string) {
	t.Helper()
	require.Equal(t, status, rec.Code)

	var body errorBody
	decodeJSON(t, rec, &body)
	require.False(t, body.Success)
	require.Equal(t, msg, body.Error)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}
