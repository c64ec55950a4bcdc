package web

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jrammler/userdesk/internal/controller/web/templates"
	"github.com/jrammler/userdesk/internal/entity"
)

func (s *Server) AddUserHandlers() {
	s.mux.HandleFunc("GET /users", s.requireSession(s.handleUsersGet))
	s.mux.HandleFunc("GET /users/new", s.requireSession(s.handleUserNewGet))
	s.mux.HandleFunc("POST /users", s.requireSession(s.handleUsersPost))
	s.mux.HandleFunc("GET /users/{id}", s.requireSession(s.handleUserGet))
	s.mux.HandleFunc("GET /users/{id}/edit", s.requireSession(s.handleUserEditGet))
	s.mux.HandleFunc("POST /users/{id}", s.requireSession(s.handleUserPost))
	s.mux.HandleFunc("GET /users/{id}/delete", s.requireSession(s.handleUserDeleteGet))
	s.mux.HandleFunc("POST /users/{id}/delete", s.requireSession(s.handleUserDeletePost))
}

func (s *Server) handleUsersGet(w http.ResponseWriter, r *http.Request) {
	users, err := s.service.UserService.GetAll(r.Context())
	if err != nil {
		renderBackendError(w, r, err)
		return
	}
	render(w, r, http.StatusOK, templates.UserList(users))
}

func (s *Server) handleUserNewGet(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, templates.UserForm(templates.UserFormProps{}))
}

func (s *Server) handleUsersPost(w http.ResponseWriter, r *http.Request) {
	payload, err := payloadFromForm(r)
	if err != nil {
		http.Error(w, "Error parsing form", http.StatusBadRequest)
		return
	}
	err = s.service.UserService.Create(r.Context(), payload)
	if err != nil {
		render(w, r, http.StatusBadGateway, templates.UserForm(templates.UserFormProps{
			Error: "Could not create user: " + err.Error(),
		}))
		return
	}
	http.Redirect(w, r, "/users", http.StatusSeeOther)
}

func (s *Server) handleUserGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathId(w, r)
	if !ok {
		return
	}
	user, err := s.service.UserService.GetOne(r.Context(), id)
	if err != nil {
		renderBackendError(w, r, err)
		return
	}
	render(w, r, http.StatusOK, templates.UserDetails(user))
}

func (s *Server) handleUserEditGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathId(w, r)
	if !ok {
		return
	}
	user, err := s.service.UserService.GetOne(r.Context(), id)
	if err != nil {
		renderBackendError(w, r, err)
		return
	}
	render(w, r, http.StatusOK, templates.UserForm(templates.UserFormProps{User: &user}))
}

func (s *Server) handleUserPost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathId(w, r)
	if !ok {
		return
	}
	err := r.ParseForm()
	if err != nil {
		http.Error(w, "Error parsing form", http.StatusBadRequest)
		return
	}
	current, err := s.service.UserService.GetOne(r.Context(), id)
	if err != nil {
		renderBackendError(w, r, err)
		return
	}
	payload := changedFields(current, r.PostForm)
	if !payload.IsEmpty() {
		err = s.service.UserService.Update(r.Context(), id, payload)
		if err != nil {
			renderBackendError(w, r, err)
			return
		}
	}
	http.Redirect(w, r, fmt.Sprintf("/users/%d", id), http.StatusSeeOther)
}

func (s *Server) handleUserDeleteGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathId(w, r)
	if !ok {
		return
	}
	user, err := s.service.UserService.GetOne(r.Context(), id)
	if err != nil {
		renderBackendError(w, r, err)
		return
	}
	render(w, r, http.StatusOK, templates.ConfirmDelete(user))
}

func (s *Server) handleUserDeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathId(w, r)
	if !ok {
		return
	}
	err := s.service.UserService.Delete(r.Context(), id)
	if err != nil {
		renderBackendError(w, r, err)
		return
	}
	http.Redirect(w, r, "/users", http.StatusSeeOther)
}

func pathId(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// payloadFromForm copies the submitted fields as-is; empty fields stay unset.
func payloadFromForm(r *http.Request) (entity.UserPayload, error) {
	err := r.ParseForm()
	if err != nil {
		return entity.UserPayload{}, err
	}
	return entity.UserPayload{
		Email:     r.PostForm.Get("email"),
		Password:  r.PostForm.Get("password"),
		FirstName: entity.Optional(r.PostForm.Get("firstName")),
		LastName:  entity.Optional(r.PostForm.Get("lastName")),
		Role:      entity.Role(r.PostForm.Get("role")),
	}, nil
}

// changedFields keeps the submitted fields that differ from current. Email,
// password and role are left unchanged when blank; names may be cleared.
func changedFields(current entity.User, form url.Values) entity.UserPayload {
	var payload entity.UserPayload
	if email := form.Get("email"); email != "" && email != current.Email {
		payload.Email = email
	}
	payload.Password = form.Get("password")
	if form.Has("firstName") && form.Get("firstName") != current.FirstName {
		firstName := form.Get("firstName")
		payload.FirstName = &firstName
	}
	if form.Has("lastName") && form.Get("lastName") != current.LastName {
		lastName := form.Get("lastName")
		payload.LastName = &lastName
	}
	if role := entity.Role(form.Get("role")); role != "" && role != current.Role {
		payload.Role = role
	}
	return payload
}

// The users client has already logged the failure.
func renderBackendError(w http.ResponseWriter, r *http.Request, err error) {
	render(w, r, http.StatusBadGateway, templates.ErrorPage(http.StatusBadGateway, err.Error()))
}
