package userControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Aayushsah6969/ShoeStore/auth"
	"github.com/Aayushsah6969/ShoeStore/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}, &models.OrderItem{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, password string, isAdmin bool) models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{FullName: "Test User", Email: email, Password: string(hashed), IsAdmin: isAdmin}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func authRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/users/signup", Signup(db))
	r.POST("/api/users/login", Login(db))
	r.GET("/api/users/logout", Logout())
	r.POST("/api/users/admin-login", AdminLogin(db))
	r.GET("/api/users/admin-logout", AdminLogout())
	return r
}

func cookieNamed(res *http.Response, name string) *http.Cookie {
	for _, c := range res.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestSignupCreatesUserWithHashedPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	router := authRouter(db)

	w := postJSON(t, router, "/api/users/signup", gin.H{
		"full_name": "Jane Doe",
		"email":     "jane@example.com",
		"password":  "secret123",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var user models.User
	require.NoError(t, db.Where("email = ?", "jane@example.com").First(&user).Error)
	assert.NotEqual(t, "secret123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))
	assert.False(t, user.IsAdmin)
}

func TestSignupDuplicateEmailConflictLeavesRecordUntouched(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	existing := seedUser(t, db, "jane@example.com", "original", false)
	router := authRouter(db)

	w := postJSON(t, router, "/api/users/signup", gin.H{
		"full_name": "Impostor",
		"email":     "jane@example.com",
		"password":  "different",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	var after models.User
	require.NoError(t, db.Where("email = ?", "jane@example.com").First(&after).Error)
	assert.Equal(t, existing.Password, after.Password)
	assert.Equal(t, existing.FullName, after.FullName)
}

func TestLoginDemoUserSetsSessionCookie(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	seedUser(t, db, "demo@solestyle.com", "demo123", true)
	router := authRouter(db)

	w := postJSON(t, router, "/api/users/login", gin.H{
		"email":    "demo@solestyle.com",
		"password": "demo123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	cookie := cookieNamed(w.Result(), auth.UserCookie)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)

	claims, err := auth.ParseToken(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, "demo@solestyle.com", claims.Email)
}

func TestLoginWrongPasswordIsGenericAndSetsNoCookie(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	seedUser(t, db, "demo@solestyle.com", "demo123", true)
	router := authRouter(db)

	w := postJSON(t, router, "/api/users/login", gin.H{
		"email":    "demo@solestyle.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, cookieNamed(w.Result(), auth.UserCookie))

	// Unknown email answers the same way.
	w2 := postJSON(t, router, "/api/users/login", gin.H{
		"email":    "ghost@example.com",
		"password": "demo123",
	})
	assert.Equal(t, http.StatusUnauthorized, w2.Code)
	assert.JSONEq(t, w.Body.String(), w2.Body.String())
}

func TestAdminLoginRejectsValidNonAdminCredentials(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	seedUser(t, db, "user@example.com", "secret123", false)
	router := authRouter(db)

	w := postJSON(t, router, "/api/users/admin-login", gin.H{
		"email":    "user@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, cookieNamed(w.Result(), auth.AdminCookie))
}

func TestAdminLoginSetsDistinctCookie(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	seedUser(t, db, "demo@solestyle.com", "demo123", true)
	router := authRouter(db)

	w := postJSON(t, router, "/api/users/admin-login", gin.H{
		"email":    "demo@solestyle.com",
		"password": "demo123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	res := w.Result()
	assert.NotNil(t, cookieNamed(res, auth.AdminCookie))
	assert.Nil(t, cookieNamed(res, auth.UserCookie))
}

func TestLogoutAlwaysSucceeds(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	router := authRouter(db)

	// No session existed; logout still clears and answers 200.
	req := httptest.NewRequest(http.MethodGet, "/api/users/logout", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	cookie := cookieNamed(w.Result(), auth.UserCookie)
	require.NotNil(t, cookie)
	assert.Less(t, cookie.MaxAge, 0)
}
