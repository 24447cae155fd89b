package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/topfive/backend/logger"
	"github.com/topfive/backend/srvcerror"
	"github.com/topfive/backend/subm"
)

func (s *HttpServer) postSubmission(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	// Submit never surfaces a fault page: whatever goes wrong, the user
	// gets a notice and lands back on the form.
	defer func() {
		if rec := recover(); rec != nil {
			log.Error("error processing submission", "panic", rec)
			s.flash.Set(w, Flash{
				Message:  "An error occurred. Please try again.",
				Category: "error",
			})
			http.Redirect(w, r, "/", http.StatusSeeOther)
		}
	}()

	if err := r.ParseForm(); err != nil {
		log.Error("error processing submission", "error", err)
		s.flash.Set(w, Flash{
			Message:  "An error occurred. Please try again.",
			Category: "error",
		})
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	category := strings.TrimSpace(r.PostFormValue("category"))
	var items [subm.NumItems]string
	for i := range items {
		items[i] = strings.TrimSpace(r.PostFormValue(fmt.Sprintf("item%d", i+1)))
	}

	if err := subm.ValidateField(category, subm.MaxCategoryLength, "Category"); err != nil {
		s.rejectSubmission(w, r, err)
		return
	}
	for i, item := range items {
		fieldName := fmt.Sprintf("Item %d", i+1)
		if err := subm.ValidateField(item, subm.MaxItemLength, fieldName); err != nil {
			s.rejectSubmission(w, r, err)
			return
		}
	}

	created, err := s.store.Append(category, items)
	if err != nil {
		log.Warn("submission limit reached", "size", s.store.Size())
		s.rejectSubmission(w, r, err)
		return
	}

	log.Info("new submission added", "id", created.ID, "category", created.Category)
	submissionsStored.Set(float64(s.store.Size()))

	s.flash.Set(w, Flash{
		Message:  "Your top 5 list has been submitted successfully!",
		Category: "success",
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// rejectSubmission redirects back to the form with the error's user-facing
// message as the notice. Debug detail, if any, stays in the log.
func (s *HttpServer) rejectSubmission(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	msg := "An error occurred. Please try again."
	srvcErr := &srvcerror.Error{}
	if errors.As(err, &srvcErr) {
		msg = srvcErr.Error()
		if srvcErr.DebugInfo() != nil {
			log.Warn("submission rejected",
				"code", srvcErr.ErrorCode(), "debug", srvcErr.DebugInfo())
		} else {
			log.Debug("submission rejected", "code", srvcErr.ErrorCode())
		}
	} else {
		log.Error("error processing submission", "error", err)
	}

	s.flash.Set(w, Flash{Message: msg, Category: "error"})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
