package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	auth "github.com/MedusCode/kupipodariday-backend/internal/authService"
	model "github.com/MedusCode/kupipodariday-backend/internal/models"
	offers "github.com/MedusCode/kupipodariday-backend/internal/offerService"
	"github.com/MedusCode/kupipodariday-backend/internal/repository"
	"github.com/MedusCode/kupipodariday-backend/internal/server"
	users "github.com/MedusCode/kupipodariday-backend/internal/userService"
	wishes "github.com/MedusCode/kupipodariday-backend/internal/wishService"
	wishlists "github.com/MedusCode/kupipodariday-backend/internal/wishlistService"
)

// dsnEnv points the suite at a disposable Postgres database. All tables
// are truncated before every test, so never aim it at real data.
const dsnEnv = "KUPI_TEST_DSN"

const testJWTSecret = "integration-test-secret"

// SetupTestRouter connects to the test database, resets its state and
// wires the full application stack the same way main does.
func SetupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	dsn := os.Getenv(dsnEnv)
	if dsn == "" {
		t.Skipf("set %s to run integration tests", dsnEnv)
	}

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(&model.User{}, &model.Wish{}, &model.Offer{}, &model.Wishlist{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	err = db.Exec("TRUNCATE TABLE wishlist_items, wishlists, offers, wishes, users RESTART IDENTITY CASCADE").Error
	if err != nil {
		t.Fatalf("failed to reset test database: %v", err)
	}

	wishRepo := repository.NewWishRepo(db)
	offerRepo := repository.NewOfferRepo(db)
	wishlistRepo := repository.NewWishlistRepo(db)
	userRepo := repository.NewUserRepo(db)

	userService := users.NewService(userRepo, wishRepo)

	return server.SetupRouter(server.Services{
		Auth:      auth.NewService(userService, testJWTSecret, time.Hour),
		Users:     userService,
		Wishes:    wishes.NewService(wishRepo),
		Offers:    offers.NewService(offerRepo, wishRepo),
		Wishlists: wishlists.NewService(wishlistRepo),
	})
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		var err error
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request and decodes the JSON envelope.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, token string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	w := ExecuteRequest(t, router, method, url, token, body)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}
