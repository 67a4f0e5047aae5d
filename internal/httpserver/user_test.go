package httpserver

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/models"
	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/transport"
)

func TestCreateUserAndGet(t *testing.T) {
	env := newTestEnv(t)

	body := transport.CreateUserRequest{
		ID:       "jihye90",
		Name:     "Kim Jihye",
		Email:    "jihye@example.com",
		Password: "secret-pass",
		Gender:   "F",
		PhoneNum: "010-1234-5678",
		Address:  "Seoul",
	}

	rec, c := env.doJSONRequest(http.MethodPost, "/api/users", body)
	require.NoError(t, env.User.CreateUser(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created transport.CreateUserResponse
	decodeJSON(t, rec, &created)
	require.True(t, created.Success)
	require.Equal(t, "User inserted successfully", created.Message)
	require.NotZero(t, created.UserID)

	rec2, c2 := env.doJSONRequest(http.MethodGet, "/api/users/1", nil)
	c2.SetParamNames("idx")
	c2.SetParamValues(fmt.Sprint(created.UserID))
	require.NoError(t, env.User.GetUser(c2))
	require.Equal(t, http.StatusOK, rec2.Code)

	var got struct {
		Success bool        `json:"success"`
		Data    models.User `json:"data"`
	}
	decodeJSON(t, rec2, &got)
	require.True(t, got.Success)
	require.Equal(t, "jihye90", got.Data.ID)
	require.Equal(t, "Kim Jihye", got.Data.Name)
	require.True(t, got.Data.IsActive)
	require.False(t, got.Data.IsAdmin)
}

func TestCreateUser_RejectsBadEmail(t *testing.T) {
	env := newTestEnv(t)

	body := transport.CreateUserRequest{
		ID:       "jihye90",
		Name:     "Kim Jihye",
		Email:    "not-an-email",
		Password: "secret-pass",
	}
	rec, c := env.doJSONRequest(http.MethodPost, "/api/users", body)
	require.NoError(t, env.User.CreateUser(c))
	requireError(t, rec, http.StatusBadRequest, "invalid body")
}

func TestGetUsers_Filters(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(models.User{ID: "john88", Name: "John", Email: "j@example.com", Password: "x", Gender: "M", RegistDate: date(2024, time.March, 1)})
	env.seedUser(models.User{ID: "mary01", Name: "Mary", Email: "m@example.com", Password: "x", Gender: "F", IsAdmin: true, RegistDate: date(2024, time.June, 15)})
	ohara := env.seedUser(models.User{ID: "ohara", Name: "Ohara", Email: "o@example.com", Password: "x", Gender: "F", RegistDate: date(2025, time.January, 10)})
	// gorm skips zero-value fields that carry a default, deactivate explicitly.
	require.NoError(t, env.DB.Model(&ohara).UpdateColumn("is_active", false).Error)

	type listResp struct {
		Data  []models.User `json:"data"`
		Total int64         `json:"total"`
	}

	cases := []struct {
		name  string
		query string
		want  []string
	}{
		{"id substring", "id=oh", []string{"john88", "ohara"}},
		{"gender", "gender=F", []string{"mary01", "ohara"}},
		{"is_admin", "is_admin=true", []string{"mary01"}},
		{"is_active false", "is_active=false", []string{"ohara"}},
		{"regist date range", "start_date=2024-01-01&end_date=2024-12-31", []string{"john88", "mary01"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, c := env.doJSONRequest(http.MethodGet, "/api/users?"+tc.query, nil)
			require.NoError(t, env.User.GetUsers(c))
			require.Equal(t, http.StatusOK, rec.Code)

			var resp listResp
			decodeJSON(t, rec, &resp)
			require.EqualValues(t, len(tc.want), resp.Total)
			got := make([]string, 0, len(resp.Data))
			for _, u := range resp.Data {
				got = append(got, u.ID)
			}
			require.Equal(t, tc.want, got)
		})
	}
}

func TestGetUsers_RejectsBadBoolParam(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/users?is_admin=banana", nil)
	require.NoError(t, env.User.GetUsers(c))
	requireError(t, rec, http.StatusBadRequest, "is_admin must be true or false")
}

func TestGetUsers_RejectsBadDateParam(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/users?start_date=03-2024", nil)
	require.NoError(t, env.User.GetUsers(c))
	requireError(t, rec, http.StatusBadRequest, "start_date must be a date in YYYY-MM-DD form")
}

func TestUpdateUser(t *testing.T) {
	env := newTestEnv(t)
	seeded := env.seedUser(models.User{ID: "jihye90", Name: "Kim Jihye", Email: "jihye@example.com", Password: "old"})

	body := transport.UpdateUserRequest{
		Name:     "Kim Jihye",
		Email:    "jihye@newmail.com",
		Password: "new-pass",
		Address:  "Busan",
	}
	rec, c := env.doJSONRequest(http.MethodPut, "/api/users/1", body)
	c.SetParamNames("idx")
	c.SetParamValues(fmt.Sprint(seeded.Idx))
	require.NoError(t, env.User.UpdateUser(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var stored models.User
	require.NoError(t, env.DB.First(&stored, "idx = ?", seeded.Idx).Error)
	require.Equal(t, "jihye@newmail.com", stored.Email)
	require.Equal(t, "new-pass", stored.Password)
	require.Equal(t, "Busan", stored.Address)
}

func TestUpdateUser_NotFound(t *testing.T) {
	env := newTestEnv(t)

	body := transport.UpdateUserRequest{Name: "n", Email: "n@example.com", Password: "p"}
	rec, c := env.doJSONRequest(http.MethodPut, "/api/users/777", body)
	c.SetParamNames("idx")
	c.SetParamValues("777")
	require.NoError(t, env.User.UpdateUser(c))
	requireError(t, rec, http.StatusNotFound, "User not found or no changes made")
}

func TestDeactivateUser_KeepsRow(t *testing.T) {
	env := newTestEnv(t)
	seeded := env.seedUser(models.User{ID: "jihye90", Name: "Kim Jihye", Email: "jihye@example.com", Password: "x"})

	rec, c := env.doJSONRequest(http.MethodDelete, "/api/users/1", nil)
	c.SetParamNames("idx")
	c.SetParamValues(fmt.Sprint(seeded.Idx))
	require.NoError(t, env.User.DeactivateUser(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp transport.Response
	decodeJSON(t, rec, &resp)
	require.True(t, resp.Success)
	require.Equal(t, "User account deleted successfully", resp.Message)

	// The row survives, it is only flagged inactive.
	var stored models.User
	require.NoError(t, env.DB.First(&stored, "idx = ?", seeded.Idx).Error)
	require.False(t, stored.IsActive)

	rec2, c2 := env.doJSONRequest(http.MethodGet, "/api/users/1", nil)
	c2.SetParamNames("idx")
	c2.SetParamValues(fmt.Sprint(seeded.Idx))
	require.NoError(t, env.User.GetUser(c2))
	require.Equal(t, http.StatusOK, rec2.Code)
}

func TestGetUser_RejectsNonPositiveIdx(t *testing.T) {
	env := newTestEnv(t)

	for _, raw := range []string{"-1", "0"} {
		t.Run(raw, func(t *testing.T) {
			rec, c := env.doJSONRequest(http.MethodGet, "/api/users/"+raw, nil)
			c.SetParamNames("idx")
			c.SetParamValues(raw)
			require.NoError(t, env.User.GetUser(c))
			requireError(t, rec, http.StatusBadRequest, "idx must be a positive integer")
		})
	}
}

func TestDeactivateUser_NotFound(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodDelete, "/api/users/9", nil)
	c.SetParamNames("idx")
	c.SetParamValues("9")
	require.NoError(t, env.User.DeactivateUser(c))
	requireError(t, rec, http.StatusNotFound, "User not found")
}
