package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"hoaportal_backend/internals/configs"
	authModel "hoaportal_backend/internals/features/users/auth/model"
	authmw "hoaportal_backend/internals/middlewares/auth"
	"hoaportal_backend/internals/testutil"
)

const testSecret = "optional-auth-test-secret"

func signToken(t *testing.T, sub string) string {
	t.Helper()
	now := time.Now().UTC()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sub,
		"iat": now.Unix(),
		"exp": now.Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func newOptionalAuthApp(t *testing.T) (*fiber.App, *authModel.UserModel) {
	t.Helper()
	db := testutil.OpenTestDB(t)

	prev := configs.JWTSecret
	configs.JWTSecret = testSecret
	t.Cleanup(func() { configs.JWTSecret = prev })

	user := &authModel.UserModel{Email: "dana@hoa.example", Password: "x", IsActive: true}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	app := testutil.NewTestApp(t)
	app.Get("/whoami", authmw.OptionalAuthMiddleware(db), func(c *fiber.Ctx) error {
		id, _ := c.Locals("auth_user_id").(string)
		return c.JSON(fiber.Map{"auth_user_id": id})
	})
	return app, user
}

func TestOptionalAuth_AttachesIdentityWithValidToken(t *testing.T) {
	app, user := newOptionalAuthApp(t)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, user.ID.String()))

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if got := readAuthUserID(t, resp); got != user.ID.String() {
		t.Fatalf("auth_user_id = %q, want %s", got, user.ID)
	}
}

func TestOptionalAuth_PassesThroughWithoutToken(t *testing.T) {
	app, _ := newOptionalAuthApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/whoami", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 (optional auth must not reject)", resp.StatusCode)
	}
	if got := readAuthUserID(t, resp); got != "" {
		t.Fatalf("auth_user_id = %q, want empty", got)
	}
}

func TestOptionalAuth_IgnoresGarbageToken(t *testing.T) {
	app, _ := newOptionalAuthApp(t)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 (optional auth must not reject)", resp.StatusCode)
	}
	if got := readAuthUserID(t, resp); got != "" {
		t.Fatalf("auth_user_id = %q, want empty for a bad token", got)
	}
}

func readAuthUserID(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body struct {
		AuthUserID string `json:"auth_user_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body.AuthUserID
}
