package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/eventlite/eventlite-api/internal/constants"
	"github.com/eventlite/eventlite-api/internal/database"
	"github.com/eventlite/eventlite-api/internal/dto"
	"github.com/eventlite/eventlite-api/internal/models"
	"github.com/eventlite/eventlite-api/internal/repository"
	"github.com/eventlite/eventlite-api/internal/services"
)

type notificationTestEnv struct {
	db      *gorm.DB
	handler *NotificationHandler
}

func setupNotificationTestEnv(t *testing.T) notificationTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Event{},
		&models.Bookmark{},
		&models.Comment{},
		&models.Notification{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	notificationRepo := repository.NewNotificationRepository(db)
	interactionRepo := repository.NewInteractionRepository(db)
	userRepo := repository.NewUserRepository(db)
	notificationService := services.NewNotificationService(notificationRepo, interactionRepo, userRepo)
	handler := NewNotificationHandler(notificationService)

	gin.SetMode(gin.TestMode)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return notificationTestEnv{
		db:      db,
		handler: handler,
	}
}

func createNotificationTestUser(t *testing.T, db *gorm.DB, username string, role models.Role) *models.User {
	t.Helper()

	user := &models.User{
		Username:     username,
		PasswordHash: "hashed",
	}
	require.NoError(t, db.Create(user).Error)
	require.NoError(t, db.Create(&models.Profile{UserID: user.ID, Role: role}).Error)
	return user
}

func notificationTestContext(method, url string, userID uint64) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, url, nil)
	c.Set(constants.ContextKeyUserID, userID)
	return c, w
}

func TestNotificationHandler_GetCounts_Attendee(t *testing.T) {
	env := setupNotificationTestEnv(t)

	organizer := createNotificationTestUser(t, env.db, "organizer", models.RoleOrganizer)
	attendee := createNotificationTestUser(t, env.db, "attendee", models.RoleAttendee)

	event := &models.Event{
		Title:       "GopherCon",
		StartsAt:    time.Now().Add(24 * time.Hour),
		OrganizerID: organizer.ID,
	}
	require.NoError(t, env.db.Create(event).Error)
	require.NoError(t, env.db.Create(&models.Bookmark{UserID: attendee.ID, EventID: event.ID}).Error)

	require.NoError(t, env.db.Create(&models.Notification{UserID: attendee.ID, Message: "one"}).Error)
	require.NoError(t, env.db.Create(&models.Notification{UserID: attendee.ID, Message: "two"}).Error)
	require.NoError(t, env.db.Create(&models.Notification{UserID: attendee.ID, Message: "read", IsRead: true}).Error)

	c, w := notificationTestContext(http.MethodGet, "/api/me/counts", attendee.ID)
	env.handler.GetCounts(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.CountsDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.EqualValues(t, 2, response.UnreadNotificationsCount)
	require.EqualValues(t, 1, response.MyBookmarksCount)
}

func TestNotificationHandler_GetCounts_OrganizerHasNoBookmarkCount(t *testing.T) {
	env := setupNotificationTestEnv(t)

	organizer := createNotificationTestUser(t, env.db, "organizer", models.RoleOrganizer)
	require.NoError(t, env.db.Create(&models.Notification{UserID: organizer.ID, Message: "unread"}).Error)

	c, w := notificationTestContext(http.MethodGet, "/api/me/counts", organizer.ID)
	env.handler.GetCounts(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.CountsDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.EqualValues(t, 1, response.UnreadNotificationsCount)
	require.Zero(t, response.MyBookmarksCount)
}

func TestNotificationHandler_ListNotifications(t *testing.T) {
	env := setupNotificationTestEnv(t)

	user := createNotificationTestUser(t, env.db, "user", models.RoleAttendee)
	other := createNotificationTestUser(t, env.db, "other", models.RoleAttendee)

	require.NoError(t, env.db.Create(&models.Notification{UserID: user.ID, Message: "mine"}).Error)
	require.NoError(t, env.db.Create(&models.Notification{UserID: other.ID, Message: "not mine"}).Error)

	c, w := notificationTestContext(http.MethodGet, "/api/me/notifications", user.ID)
	env.handler.ListNotifications(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response map[string][]dto.NotificationDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	notifications := response["notifications"]
	require.Len(t, notifications, 1)
	require.Equal(t, "mine", notifications[0].Message)
	require.False(t, notifications[0].IsRead)
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	env := setupNotificationTestEnv(t)

	user := createNotificationTestUser(t, env.db, "user", models.RoleAttendee)

	notification := &models.Notification{UserID: user.ID, Message: "unread"}
	require.NoError(t, env.db.Create(notification).Error)

	c, w := notificationTestContext(http.MethodPost, "/api/me/notifications/1/read", user.ID)
	c.Params = gin.Params{{Key: "id", Value: strconv.FormatUint(notification.ID, 10)}}
	env.handler.MarkRead(c)

	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Notification
	require.NoError(t, env.db.First(&updated, notification.ID).Error)
	require.True(t, updated.IsRead)
}

func TestNotificationHandler_MarkRead_OtherUsersNotification(t *testing.T) {
	env := setupNotificationTestEnv(t)

	owner := createNotificationTestUser(t, env.db, "owner", models.RoleAttendee)
	intruder := createNotificationTestUser(t, env.db, "intruder", models.RoleAttendee)

	notification := &models.Notification{UserID: owner.ID, Message: "private"}
	require.NoError(t, env.db.Create(notification).Error)

	c, w := notificationTestContext(http.MethodPost, "/api/me/notifications/1/read", intruder.ID)
	c.Params = gin.Params{{Key: "id", Value: strconv.FormatUint(notification.ID, 10)}}
	env.handler.MarkRead(c)

	require.Equal(t, http.StatusNotFound, w.Code)

	var unchanged models.Notification
	require.NoError(t, env.db.First(&unchanged, notification.ID).Error)
	require.False(t, unchanged.IsRead)
}

func TestNotificationHandler_MarkAllRead(t *testing.T) {
	env := setupNotificationTestEnv(t)

	user := createNotificationTestUser(t, env.db, "user", models.RoleAttendee)

	require.NoError(t, env.db.Create(&models.Notification{UserID: user.ID, Message: "one"}).Error)
	require.NoError(t, env.db.Create(&models.Notification{UserID: user.ID, Message: "two"}).Error)

	c, w := notificationTestContext(http.MethodPost, "/api/me/notifications/read-all", user.ID)
	env.handler.MarkAllRead(c)

	require.Equal(t, http.StatusOK, w.Code)

	var unreadCount int64
	require.NoError(t, env.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", user.ID, false).
		Count(&unreadCount).Error)
	require.Zero(t, unreadCount)
}
