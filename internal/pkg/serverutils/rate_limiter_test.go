package serverutils

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func newLimitedApp(max int) *fiber.App {
	app := fiber.New()
	app.Use(RateLimiter(max, time.Minute))
	app.Get("/api/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/api/dictionary/exercises", func(ctx *fiber.Ctx) error {
		return ctx.JSON(SuccessResponse[any]("ok", nil))
	})
	return app
}

func TestRateLimiterThrottlesAfterMax(t *testing.T) {
	app := newLimitedApp(2)

	for i := 0; i < 2; i++ {
		res, err := app.Test(httptest.NewRequest("GET", "/api/dictionary/exercises", nil))
		if err != nil {
			t.Fatal(err)
		}
		if res.StatusCode != fiber.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i+1, res.StatusCode)
		}
	}

	res, err := app.Test(httptest.NewRequest("GET", "/api/dictionary/exercises", nil))
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429 once the window is spent", res.StatusCode)
	}

	var body Response[any]
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Success {
		t.Error("throttled response reported success")
	}
	if body.Message == "" {
		t.Error("throttled response carries no message")
	}
}

func TestRateLimiterSkipsHealthCheck(t *testing.T) {
	app := newLimitedApp(1)

	for i := 0; i < 5; i++ {
		res, err := app.Test(httptest.NewRequest("GET", "/api/health", nil))
		if err != nil {
			t.Fatal(err)
		}
		if res.StatusCode != fiber.StatusOK {
			t.Fatalf("health check throttled on request %d", i+1)
		}
	}
}
