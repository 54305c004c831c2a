// Package server provides the HTTP REST API for the resume builder.
package server

import (
	"net/http"

	"github.com/jdoe/resume-builder/internal/rendering"
	"github.com/jdoe/resume-builder/internal/types"
)

// handleGetTemplates returns the template catalog and which themes the
// caller's subscription plan unlocks.
func (s *Server) handleGetTemplates(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	user, err := s.userService.GetProfile(r.Context(), userID)
	if err != nil {
		jsonError(w, HTTPStatus(err), err.Error())
		return
	}

	jsonResponse(w, http.StatusOK, types.TemplatesResponse{
		AllTemplates:       rendering.AllThemes(),
		AvailableTemplates: rendering.ThemesFor(user.IsPremium()),
		SubscriptionPlan:   user.SubscriptionPlan,
		IsPremium:          user.IsPremium(),
	})
}
