package server

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/encryptcookie"
	"github.com/gofiber/fiber/v3/middleware/session"

	"seoscope/internal/config"
)

func TestDeriveEncryptionKey(t *testing.T) {
	key := deriveEncryptionKey("short")
	raw, err := base64.StdEncoding.DecodeString(key)
	if err != nil {
		t.Fatalf("key is not base64: %v", err)
	}
	if len(raw) != 32 {
		t.Errorf("key length = %d bytes, want 32", len(raw))
	}

	if deriveEncryptionKey("a") == deriveEncryptionKey("b") {
		t.Error("distinct secrets produced the same key")
	}
}

// API routes must get the JSON error envelope from the global error
// handler, never a rendered HTML page.
func TestErrorHandler_APIPathsGetJSON(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler(&config.Config{SiteTitle: "SEOScope"}),
	})
	app.Get("/api/v1/boom", func(fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "analysis not found")
	})

	req, _ := http.NewRequest("GET", "/api/v1/boom", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}

	var envelope map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if envelope["status"] != "error" || envelope["error"] != "analysis not found" {
		t.Errorf("envelope = %v", envelope)
	}
}

// The session must survive a client replaying its encrypted cookies, in
// the production middleware order (encryptcookie before session).
func TestSessionSurvivesEncryptedCookieReplay(t *testing.T) {
	app := fiber.New()
	app.Use(encryptcookie.New(encryptcookie.Config{
		Key: deriveEncryptionKey("session-secret-used-only-in-tests"),
	}))
	sessionMiddleware, _ := session.NewWithStore(session.Config{
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
	app.Use(sessionMiddleware)

	app.Post("/set", func(c fiber.Ctx) error {
		session.FromContext(c).Set("user_sub", "sub-42")
		return c.SendString("ok")
	})
	app.Get("/get", func(c fiber.Ctx) error {
		sub, _ := session.FromContext(c).Get("user_sub").(string)
		return c.SendString(sub)
	})

	setReq, _ := http.NewRequest("POST", "/set", nil)
	setResp, err := app.Test(setReq)
	if err != nil {
		t.Fatal(err)
	}
	cookies := setResp.Cookies()
	if len(cookies) == 0 {
		t.Fatal("no session cookie issued")
	}

	// Replay the cookie twice; decryption happens on each request.
	for i := 0; i < 2; i++ {
		getReq, _ := http.NewRequest("GET", "/get", nil)
		for _, ck := range cookies {
			getReq.AddCookie(ck)
		}
		getResp, err := app.Test(getReq)
		if err != nil {
			t.Fatalf("replay %d: %v", i, err)
		}
		body, _ := io.ReadAll(getResp.Body)
		if string(body) != "sub-42" {
			t.Fatalf("replay %d: session value = %q, want sub-42", i, body)
		}
		if fresh := getResp.Cookies(); len(fresh) > 0 {
			cookies = fresh
		}
	}
}
