package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/workpulse/workpulse-backend-go/internal/domain/roster"
	"github.com/workpulse/workpulse-backend-go/internal/domain/user"
	"github.com/workpulse/workpulse-backend-go/internal/handler/http/response"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/validator"
)

type RosterHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type rosterHandlerImpl struct {
	rosterService roster.Service
	userRepo      user.UserRepository
}

func NewRosterHandler(rosterService roster.Service, userRepo user.UserRepository) RosterHandler {
	return &rosterHandlerImpl{
		rosterService: rosterService,
		userRepo:      userRepo,
	}
}

// List implements RosterHandler. Without a user_ids filter the roster
// covers every active user; an optional `at` timestamp builds the board
// as of that instant instead of now.
func (h *rosterHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	if raw := r.URL.Query().Get("at"); !validator.IsEmpty(raw) {
		at, ok := validator.IsValidDateTime(raw)
		if !ok {
			response.HandleError(w, validator.ValidationErrors{
				{Field: "at", Message: "must be an RFC3339 timestamp"},
			})
			return
		}
		now = at
	}

	var userIDs []string

	if raw := r.URL.Query().Get("user_ids"); !validator.IsEmpty(raw) {
		var errs validator.ValidationErrors
		for _, id := range strings.Split(raw, ",") {
			id = strings.TrimSpace(id)
			if !validator.IsValidUUID(id) {
				errs = append(errs, validator.ValidationError{Field: "user_ids", Message: "must be a list of valid UUIDs"})
				break
			}
			userIDs = append(userIDs, id)
		}
		if len(errs) > 0 {
			response.HandleError(w, errs)
			return
		}
	} else {
		users, err := h.userRepo.ListActive(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}
		for _, u := range users {
			userIDs = append(userIDs, u.ID)
		}
	}

	rows, err := h.rosterService.BuildRoster(r.Context(), userIDs, now)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}
