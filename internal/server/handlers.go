package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/adrianistaken/time-tracker/internal/domain"
	"github.com/adrianistaken/time-tracker/internal/repository"
)

// handleEntry is the smart entry redirect: active session wins, a first-time
// user gets a project and running session made for them, everyone else lands
// on the dashboard.
func (s *Server) handleEntry(w http.ResponseWriter, r *http.Request, user *domain.User) {
	ctx := r.Context()

	active, err := s.sessions.Active(ctx, user.ID)
	if err != nil {
		s.serverError(w, err)
		return
	}
	if active != nil {
		http.Redirect(w, r, "/session/"+active.ID, http.StatusFound)
		return
	}

	projects, err := s.projects.ListActive(ctx, user.ID)
	if err != nil {
		s.serverError(w, err)
		return
	}
	archived, err := s.projects.ListArchived(ctx, user.ID)
	if err != nil {
		s.serverError(w, err)
		return
	}

	if len(projects) == 0 && len(archived) == 0 {
		sess, _, err := s.sessions.CreateProjectAndStart(ctx, user.ID,
			domain.RandomProjectName(s.rng), domain.RandomColor(s.rng))
		if err != nil {
			s.serverError(w, err)
			return
		}
		http.Redirect(w, r, "/session/"+sess.ID, http.StatusFound)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request, user *domain.User) {
	rangeName := r.URL.Query().Get("range")
	if rangeName == "" {
		rangeName = "7d"
	}

	d, err := s.stats.Dashboard(r.Context(), user.ID, rangeName)
	if err != nil {
		s.serverError(w, err)
		return
	}

	vm := dashboardVM(d, time.Now())
	vm.Flash = takeFlash(w, r)
	writeJSON(w, http.StatusOK, vm)
}

// handleSessionShow renders the focus view for a running session. Completed
// or foreign sessions bounce back to the dashboard.
func (s *Server) handleSessionShow(w http.ResponseWriter, r *http.Request, user *domain.User) {
	sess, err := s.sessions.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		s.serverError(w, err)
		return
	}
	if sess.UserID != user.ID {
		http.NotFound(w, r)
		return
	}
	if !sess.IsActive() {
		setFlash(w, "info", "That session has ended.")
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}

	project, err := s.projects.GetForUser(r.Context(), sess.ProjectID, user.ID)
	if err != nil {
		s.serverError(w, err)
		return
	}

	vm := FocusVM{Session: activeSessionVM(sess, project)}
	vm.Flash = takeFlash(w, r)
	writeJSON(w, http.StatusOK, vm)
}

func (s *Server) handleSessionStart(w http.ResponseWriter, r *http.Request, user *domain.User) {
	projectID := r.FormValue("project_id")
	if projectID == "" {
		writeValidationErrors(w, map[string][]string{
			"project_id": {"Please select a project to track time for."},
		})
		return
	}

	sess, err := s.sessions.Start(r.Context(), user.ID, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// A missing or foreign project surfaces as a field error, not a 404.
			writeValidationErrors(w, map[string][]string{
				"project_id": {"The selected project does not exist."},
			})
			return
		}
		s.serverError(w, err)
		return
	}

	http.Redirect(w, r, "/session/"+sess.ID, http.StatusFound)
}

func (s *Server) handleSessionStop(w http.ResponseWriter, r *http.Request, user *domain.User) {
	_, stopped, err := s.sessions.Stop(r.Context(), user.ID, r.PathValue("id"), r.FormValue("note"))
	if err != nil {
		var v *domain.ValidationError
		if errors.As(err, &v) {
			writeValidationErrors(w, v.Messages)
			return
		}
		if errors.Is(err, repository.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		s.serverError(w, err)
		return
	}

	if stopped {
		setFlash(w, "success", "Session stopped.")
	} else {
		setFlash(w, "info", "That session has already ended.")
	}
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// handleProjectStore creates a project and immediately starts tracking it.
func (s *Server) handleProjectStore(w http.ResponseWriter, r *http.Request, user *domain.User) {
	sess, _, err := s.sessions.CreateProjectAndStart(r.Context(), user.ID,
		r.FormValue("name"), r.FormValue("color"))
	if err != nil {
		var v *domain.ValidationError
		if errors.As(err, &v) {
			writeValidationErrors(w, v.Messages)
			return
		}
		s.serverError(w, err)
		return
	}

	http.Redirect(w, r, "/session/"+sess.ID, http.StatusFound)
}

func (s *Server) handleProjectUpdate(w http.ResponseWriter, r *http.Request, user *domain.User) {
	project, err := s.projects.Update(r.Context(), user.ID, r.PathValue("id"),
		r.FormValue("name"), r.FormValue("color"))
	if err != nil {
		s.projectMutationError(w, r, err)
		return
	}

	setFlash(w, "success", fmt.Sprintf("Project '%s' updated.", project.Name))
	s.redirectBack(w, r)
}

func (s *Server) handleProjectArchive(w http.ResponseWriter, r *http.Request, user *domain.User) {
	project, err := s.projects.Archive(r.Context(), user.ID, r.PathValue("id"))
	if err != nil {
		s.projectMutationError(w, r, err)
		return
	}

	setFlash(w, "success", fmt.Sprintf("Project '%s' archived.", project.Name))
	s.redirectBack(w, r)
}

func (s *Server) handleProjectUnarchive(w http.ResponseWriter, r *http.Request, user *domain.User) {
	project, err := s.projects.Unarchive(r.Context(), user.ID, r.PathValue("id"))
	if err != nil {
		s.projectMutationError(w, r, err)
		return
	}

	setFlash(w, "success", fmt.Sprintf("Project '%s' restored.", project.Name))
	s.redirectBack(w, r)
}

func (s *Server) projectMutationError(w http.ResponseWriter, r *http.Request, err error) {
	var v *domain.ValidationError
	if errors.As(err, &v) {
		writeValidationErrors(w, v.Messages)
		return
	}
	if errors.Is(err, repository.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	s.serverError(w, err)
}

// redirectBack sends the client to the page it came from, defaulting to the
// dashboard.
func (s *Server) redirectBack(w http.ResponseWriter, r *http.Request) {
	target := r.Referer()
	if target == "" {
		target = "/dashboard"
	}
	http.Redirect(w, r, target, http.StatusFound)
}

func writeValidationErrors(w http.ResponseWriter, messages map[string][]string) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": messages})
}

func (s *Server) serverError(w http.ResponseWriter, err error) {
	s.logger.Error("request failed", "error", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
