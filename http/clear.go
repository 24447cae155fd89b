package http

import (
	"net/http"

	"github.com/topfive/backend/logger"
	"golang.org/x/crypto/bcrypt"
)

// postClear wipes the store. The action is gated behind an admin password
// checked against the configured bcrypt hash; with no hash configured the
// action stays disabled rather than silently open.
func (s *HttpServer) postClear(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if s.cfg.AdminPwdBcrypt == "" {
		log.Warn("clear-all refused: no admin password configured")
		s.flash.Set(w, Flash{
			Message:  "Clearing submissions is disabled: no admin password is configured.",
			Category: "error",
		})
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	password := r.PostFormValue("admin_password")
	err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPwdBcrypt), []byte(password))
	if err != nil {
		log.Warn("clear-all rejected: wrong admin password")
		s.flash.Set(w, Flash{Message: "Invalid admin password.", Category: "error"})
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	removed := s.store.Clear()
	submissionsStored.Set(0)
	log.Info("all submissions cleared", "removed", removed)

	s.flash.Set(w, Flash{
		Message:  "All submissions have been cleared.",
		Category: "info",
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
