package serverutils

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const testJwtSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJwtSecret))
	if err != nil {
		t.Fatal(err)
	}
	return signed
}

func newAuthedApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", JwtMiddleware, func(ctx *fiber.Ctx) error {
		// mirrors how controllers read the identity
		userId := ctx.Locals("user_id").(string)
		return ctx.JSON(fiber.Map{"user_id": userId})
	})
	return app
}

func TestJwtMiddlewareAcceptsSubClaim(t *testing.T) {
	t.Setenv("JWT_SECRET", testJwtSecret)
	app := newAuthedApp()

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.MapClaims{
		"sub":   "7b6cbd6e-5f4a-4f2b-9f1f-bb4c2f9f0001",
		"email": "user@example.com",
	}))

	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", res.StatusCode)
	}
}

func TestJwtMiddlewareAcceptsUserIdClaim(t *testing.T) {
	t.Setenv("JWT_SECRET", testJwtSecret)
	app := newAuthedApp()

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.MapClaims{
		"user_id": "7b6cbd6e-5f4a-4f2b-9f1f-bb4c2f9f0002",
	}))

	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", res.StatusCode)
	}
}

func TestJwtMiddlewareRejectsTokenWithoutIdentity(t *testing.T) {
	t.Setenv("JWT_SECRET", testJwtSecret)
	app := newAuthedApp()

	// valid signature, but no usable identity claim; must 401 instead of
	// leaving a nil user_id for handlers to trip over
	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.MapClaims{
		"email": "user@example.com",
	}))

	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", res.StatusCode)
	}
}

func TestJwtMiddlewareRejectsMissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testJwtSecret)
	app := newAuthedApp()

	res, err := app.Test(httptest.NewRequest("GET", "/me", nil))
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", res.StatusCode)
	}
}
