package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFlash_SetThenTake(t *testing.T) {
	// First response sets the flash
	w1 := httptest.NewRecorder()
	Set(w1, Success("Signed in successfully"))

	cookies := w1.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}

	// Next request carries the cookie; Take returns and clears it
	r := httptest.NewRequest(http.MethodGet, "/restaurants", nil)
	r.AddCookie(cookies[0])
	w2 := httptest.NewRecorder()

	f, ok := Take(w2, r)
	if !ok {
		t.Fatal("expected a flash message")
	}
	if f.Kind != KindSuccess {
		t.Errorf("kind = %q, want %q", f.Kind, KindSuccess)
	}
	if f.Message != "Signed in successfully" {
		t.Errorf("message = %q, want %q", f.Message, "Signed in successfully")
	}

	// Take must expire the cookie so the message renders once
	var cleared bool
	for _, c := range w2.Result().Cookies() {
		if c.Name == "flash" && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("expected the flash cookie to be cleared")
	}
}

func TestFlash_TakeWithoutCookie(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	if _, ok := Take(w, r); ok {
		t.Error("expected no flash without a cookie")
	}
}

func TestFlash_TakeGarbageCookie(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "flash", Value: "not-base64!!"})
	w := httptest.NewRecorder()

	if _, ok := Take(w, r); ok {
		t.Error("expected no flash for an undecodable cookie")
	}
}

func TestFlash_ErrorKind(t *testing.T) {
	f := Error("You can only edit your own profile")
	if f.Kind != KindError {
		t.Errorf("kind = %q, want %q", f.Kind, KindError)
	}
}
