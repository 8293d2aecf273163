package server

import (
	"net/http"

	"github.com/adrianistaken/time-tracker/internal/domain"
	"github.com/adrianistaken/time-tracker/internal/service"
)

// The authentication surface is deliberately narrow: a cookie naming the
// current user, issued by POST /login for the seeded default user. Anything
// heavier belongs to an external identity collaborator.
const userCookie = "tt_user"

// withUser resolves the current user and passes it to the handler, or
// redirects guests to the login page.
func (s *Server) withUser(next func(http.ResponseWriter, *http.Request, *domain.User)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := s.resolveUser(r)
		if user == nil {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next(w, r, user)
	}
}

func (s *Server) resolveUser(r *http.Request) *domain.User {
	cookie, err := r.Cookie(userCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}
	user, err := s.users.GetByID(r.Context(), cookie.Value)
	if err != nil {
		return nil
	}
	return user
}

func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "POST to /login to sign in as the default user.",
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	user, err := s.users.GetByEmail(r.Context(), service.DefaultUserEmail)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"errors": map[string][]string{"email": {"No default user exists. Run the seeder first."}},
		})
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     userCookie,
		Value:    user.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/", http.StatusFound)
}
