package http

import (
	"net/http"

	"github.com/topfive/backend/subm"
)

type homePageData struct {
	Submissions       []subm.Submission
	MaxCategoryLength int
	MaxItemLength     int
	ItemSlots         []int
	Flash             *Flash
	ClearEnabled      bool
}

func (s *HttpServer) getHome(w http.ResponseWriter, r *http.Request) {
	slots := make([]int, subm.NumItems)
	for i := range slots {
		slots[i] = i + 1
	}

	data := homePageData{
		Submissions:       s.store.ListNewestFirst(),
		MaxCategoryLength: subm.MaxCategoryLength,
		MaxItemLength:     subm.MaxItemLength,
		ItemSlots:         slots,
		Flash:             s.flash.Pop(w, r),
		ClearEnabled:      s.cfg.AdminPwdBcrypt != "",
	}
	s.renderPage(w, r, http.StatusOK, "index.html", data)
}
