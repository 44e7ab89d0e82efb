package httpapi

import (
	"net/http"
	"net/url"
)

// handleAuthCallback finishes the OAuth login: it exchanges the provider code
// for a session, drops the access token in a cookie, and sends the user to
// the dashboard. Failures land on the login page with an error message.
func (s *Server) handleAuthCallback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		http.Redirect(w, r, s.cfg.AppBaseURL+"/dashboard", http.StatusFound)
		return
	}

	verifier := ""
	if cookie, err := r.Cookie("sb-code-verifier"); err == nil {
		verifier = cookie.Value
	}

	session, err := s.supabase.ExchangeCode(r.Context(), code, verifier)
	if err != nil {
		s.log.Error("auth callback", "err", err)
		http.Redirect(w, r, s.cfg.AppBaseURL+"/login?error="+url.QueryEscape("Authentication failed"), http.StatusFound)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "sb-access-token",
		Value:    session.AccessToken,
		Path:     "/",
		MaxAge:   session.ExpiresIn,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     "sb-refresh-token",
		Value:    session.RefreshToken,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, s.cfg.AppBaseURL+"/dashboard", http.StatusFound)
}
