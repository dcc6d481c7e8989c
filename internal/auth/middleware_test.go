package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"usage-insights-service/internal/auth"
)

const secret = "test-secret"

func setupApp() (*fiber.App, *string) {
	var seenUserID string
	app := fiber.New()
	app.Get("/protected", auth.Middleware(secret), func(c *fiber.Ctx) error {
		seenUserID = auth.UserID(c)
		return c.SendString("ok")
	})
	return app, &seenUserID
}

func signToken(t *testing.T, key []byte, claims jwt.Claims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func request(t *testing.T, app *fiber.App, authorization string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set(fiber.HeaderAuthorization, authorization)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	return resp
}

func TestMiddleware_ValidToken(t *testing.T) {
	app, seenUserID := setupApp()

	token := signToken(t, []byte(secret), jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	resp := request(t, app, "Bearer "+token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if *seenUserID != "u1" {
		t.Fatalf("expected userID u1, got %q", *seenUserID)
	}
}

func TestMiddleware_MissingHeader(t *testing.T) {
	app, _ := setupApp()

	resp := request(t, app, "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.StatusCode)
	}
}

func TestMiddleware_WrongSignature(t *testing.T) {
	app, _ := setupApp()

	token := signToken(t, []byte("other-secret"), jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	resp := request(t, app, "Bearer "+token)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.StatusCode)
	}
}

func TestMiddleware_ExpiredToken(t *testing.T) {
	app, _ := setupApp()

	token := signToken(t, []byte(secret), jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})

	resp := request(t, app, "Bearer "+token)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.StatusCode)
	}
}

func TestMiddleware_MissingSubject(t *testing.T) {
	app, _ := setupApp()

	token := signToken(t, []byte(secret), jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	resp := request(t, app, "Bearer "+token)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.StatusCode)
	}
}
