// Package flash implements one-time messages carried across a redirect in a
// cookie. A message is an explicit (kind, message) pair: Set stores it on the
// response, Take on the next request returns it and clears the cookie.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

const cookieName = "flash"

// Message kinds
const (
	KindSuccess = "success"
	KindError   = "error"
)

// Flash is a single one-time message.
type Flash struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Success builds a success flash.
func Success(message string) Flash {
	return Flash{Kind: KindSuccess, Message: message}
}

// Error builds an error flash.
func Error(message string) Flash {
	return Flash{Kind: KindError, Message: message}
}

// Set stores the flash on the response so the next request can read it.
func Set(w http.ResponseWriter, f Flash) {
	data, err := json.Marshal(f)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    base64.URLEncoding.EncodeToString(data),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Take reads the flash from the request, clears the cookie, and returns it.
// The second return is false when no flash is present or it cannot be decoded.
func Take(w http.ResponseWriter, r *http.Request) (Flash, bool) {
	cookie, err := r.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return Flash{}, false
	}

	clear(w)

	data, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return Flash{}, false
	}

	var f Flash
	if err := json.Unmarshal(data, &f); err != nil {
		return Flash{}, false
	}
	return f, true
}

func clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
