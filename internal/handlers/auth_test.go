package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/eventlite/eventlite-api/internal/constants"
	"github.com/eventlite/eventlite-api/internal/database"
	"github.com/eventlite/eventlite-api/internal/dto"
	"github.com/eventlite/eventlite-api/internal/models"
	"github.com/eventlite/eventlite-api/internal/repository"
	"github.com/eventlite/eventlite-api/internal/services"
)

type authTestEnv struct {
	db          *gorm.DB
	handler     *AuthHandler
	authService *services.AuthService
	userRepo    repository.UserRepository
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Profile{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	userRepo := repository.NewUserRepository(db)
	authService := services.NewAuthService(userRepo)
	handler := NewAuthHandler(authService)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return authTestEnv{
		db:          db,
		handler:     handler,
		authService: authService,
		userRepo:    userRepo,
	}
}

func authRouter(env authTestEnv) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))
	r.POST("/api/auth/signup", env.handler.Signup)
	r.POST("/api/auth/login", env.handler.Login)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, url string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Signup(t *testing.T) {
	env := setupAuthTestEnv(t)
	r := authRouter(env)

	w := postJSON(t, r, "/api/auth/signup", map[string]string{
		"username": "olivia",
		"password": "supersecret",
		"role":     "ORGANIZER",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "olivia", response.Username)
	require.Equal(t, models.RoleOrganizer, response.Role)

	// Exactly one profile, carrying the chosen role
	var profiles []models.Profile
	require.NoError(t, env.db.Where("user_id = ?", response.ID).Find(&profiles).Error)
	require.Len(t, profiles, 1)
	require.Equal(t, models.RoleOrganizer, profiles[0].Role)

	// Signup logs the user in
	require.NotEmpty(t, w.Result().Cookies(), "expected session cookie to be set")
}

func TestAuthHandler_Signup_DuplicateUsername(t *testing.T) {
	env := setupAuthTestEnv(t)
	r := authRouter(env)

	payload := map[string]string{
		"username": "taken",
		"password": "supersecret",
		"role":     "ATTENDEE",
	}

	w := postJSON(t, r, "/api/auth/signup", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, r, "/api/auth/signup", payload)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_Signup_InvalidRole(t *testing.T) {
	env := setupAuthTestEnv(t)
	r := authRouter(env)

	w := postJSON(t, r, "/api/auth/signup", map[string]string{
		"username": "nobody",
		"password": "supersecret",
		"role":     "ADMIN",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.User{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestAuthHandler_Signup_ShortPassword(t *testing.T) {
	env := setupAuthTestEnv(t)
	r := authRouter(env)

	w := postJSON(t, r, "/api/auth/signup", map[string]string{
		"username": "shorty",
		"password": "short",
		"role":     "ATTENDEE",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupAuthTestEnv(t)
	r := authRouter(env)

	_, err := env.authService.Signup(services.SignupInput{
		Username: "existing",
		Password: "supersecret",
		Role:     models.RoleAttendee,
	})
	require.NoError(t, err)

	w := postJSON(t, r, "/api/auth/login", map[string]string{
		"username": "existing",
		"password": "supersecret",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "existing", response.Username)
	require.Equal(t, models.RoleAttendee, response.Role)

	require.NotEmpty(t, w.Result().Cookies(), "expected session cookie to be set")
}

func TestAuthHandler_Login_ProvisionsDefaultProfile(t *testing.T) {
	env := setupAuthTestEnv(t)
	r := authRouter(env)

	// A user that predates the profile table
	hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := &models.User{Username: "legacy", PasswordHash: string(hash)}
	require.NoError(t, env.db.Create(user).Error)

	w := postJSON(t, r, "/api/auth/login", map[string]string{
		"username": "legacy",
		"password": "supersecret",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var profiles []models.Profile
	require.NoError(t, env.db.Where("user_id = ?", user.ID).Find(&profiles).Error)
	require.Len(t, profiles, 1)
	require.Equal(t, models.RoleAttendee, profiles[0].Role)
}

func TestAuthHandler_GetCurrentUser(t *testing.T) {
	env := setupAuthTestEnv(t)

	user, err := env.authService.Signup(services.SignupInput{
		Username: "current-user",
		Password: "supersecret",
		Role:     models.RoleOrganizer,
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set(constants.ContextKeyUserID, user.ID)

	env.handler.GetCurrentUser(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, user.Username, response.Username)
	require.Equal(t, models.RoleOrganizer, response.Role)
}

func TestSignup_ProfileUpsertKeepsChosenRole(t *testing.T) {
	env := setupAuthTestEnv(t)

	user, err := env.authService.Signup(services.SignupInput{
		Username: "organizer",
		Password: "supersecret",
		Role:     models.RoleOrganizer,
	})
	require.NoError(t, err)

	// A default-provision attempt after signup must neither duplicate the
	// profile nor downgrade the chosen role.
	require.NoError(t, env.userRepo.EnsureProfile(user.ID, models.RoleAttendee))

	var profiles []models.Profile
	require.NoError(t, env.db.Where("user_id = ?", user.ID).Find(&profiles).Error)
	require.Len(t, profiles, 1)
	require.Equal(t, models.RoleOrganizer, profiles[0].Role)
}
