package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"revenue-recovery/internal/core/ports"
	"revenue-recovery/internal/core/ports/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokenSvc := mocks.NewMockTokenService(ctrl)

	router := gin.New()
	router.GET("/test", JWTAuth(tokenSvc, zerolog.Nop()), func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokenSvc := mocks.NewMockTokenService(ctrl)

	tokenSvc.EXPECT().Validate("bad_token").Return(nil, assert.AnError)

	router := gin.New()
	router.GET("/test", JWTAuth(tokenSvc, zerolog.Nop()), func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer bad_token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokenSvc := mocks.NewMockTokenService(ctrl)

	operatorID := uuid.New()
	companyID := uuid.New()
	tokenSvc.EXPECT().Validate("good_token").Return(&ports.TokenClaims{
		OperatorID: operatorID,
		CompanyID:  companyID,
	}, nil)

	var gotOperator, gotCompany uuid.UUID
	router := gin.New()
	router.GET("/test", JWTAuth(tokenSvc, zerolog.Nop()), func(c *gin.Context) {
		op, _ := c.Get(CtxOperatorID)
		co, _ := c.Get(CtxCompanyID)
		gotOperator = op.(uuid.UUID)
		gotCompany = co.(uuid.UUID)
		c.JSON(200, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer good_token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, operatorID, gotOperator)
	assert.Equal(t, companyID, gotCompany)
}

func setupCronRouter(t *testing.T, secret string, tokenSvc ports.TokenService) *gin.Engine {
	t.Helper()
	router := gin.New()
	router.POST("/scheduler", CronAuth(secret, tokenSvc, zerolog.Nop()), func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	return router
}

func TestCronAuth_ValidSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := setupCronRouter(t, "cron-secret", mocks.NewMockTokenService(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/scheduler", nil)
	req.Header.Set(HeaderCronSecret, "cron-secret")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCronAuth_WrongSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := setupCronRouter(t, "cron-secret", mocks.NewMockTokenService(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/scheduler", nil)
	req.Header.Set(HeaderCronSecret, "guess")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCronAuth_EmptyConfiguredSecretRejectsHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := setupCronRouter(t, "", mocks.NewMockTokenService(ctrl))

	// An unset secret must never mean "any value matches".
	req := httptest.NewRequest(http.MethodPost, "/scheduler", nil)
	req.Header.Set(HeaderCronSecret, "anything")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCronAuth_JWTFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokenSvc := mocks.NewMockTokenService(ctrl)
	tokenSvc.EXPECT().Validate("operator_token").Return(&ports.TokenClaims{
		OperatorID: uuid.New(),
		CompanyID:  uuid.New(),
	}, nil)
	router := setupCronRouter(t, "cron-secret", tokenSvc)

	req := httptest.NewRequest(http.MethodPost, "/scheduler", nil)
	req.Header.Set("Authorization", "Bearer operator_token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCronAuth_NoCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := setupCronRouter(t, "cron-secret", mocks.NewMockTokenService(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/scheduler", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequestID_GeneratedAndEchoed(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/test", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	// A caller-supplied id is passed through unchanged.
	req = httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Request-ID", "req-abc-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "req-abc-123", w.Header().Get("X-Request-ID"))
}

func TestRecovery_PanicRecovered(t *testing.T) {
	router := gin.New()
	router.Use(Recovery(zerolog.Nop()))
	router.GET("/panic", func(c *gin.Context) {
		panic("something went wrong")
	})

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SYS_001", resp["error_code"])
}
