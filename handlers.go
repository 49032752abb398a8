package main

// handlers.go renders the dashboard pages and routes form submissions to the editors

import (
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"trim": strings.TrimSpace,
}).ParseFS(templateFS, "templates/*.html"))

type pageData struct {
	Title   string
	Shell   bool
	Notice  string
	Loading bool

	// login
	Email string
	Error string

	Form ProfileForm

	Draft      ProjectForm
	TechInput  string
	Projects   []Project
	Categories []string

	SkillForm SkillForm
	Skills    []Skill

	// confirm
	Prompt  string
	Subject string
	Action  string
	Back    string
}

type server struct {
	cfg      Config
	auth     Authenticator
	profile  *ProfileManager
	projects *ProjectManager
	skills   *SkillManager
	feed     *siteFeed
}

// notices collects acknowledgements shown on the next render.
type notices []string

func (n *notices) Notify(message string) { *n = append(*n, message) }

func (n notices) String() string { return strings.Join(n, " ") }

// formConfirmer answers the delete prompt from the submitted form.
type formConfirmer struct {
	r *http.Request
}

func (c formConfirmer) Confirm(string) bool {
	return c.r.PostFormValue("confirm") == "yes"
}

func (s *server) gate(w http.ResponseWriter, r *http.Request) *SessionGate {
	g := NewSessionGate(&cookieFlags{
		w:      w,
		r:      r,
		secret: []byte(s.cfg.SessionSecret),
		ttl:    s.cfg.SessionTTL,
		secure: s.cfg.SecureCookies,
	})
	g.Init()
	return g
}

func render(w http.ResponseWriter, status int, name string, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		log.Error().Err(err).Str("template", name).Msg("render failed")
	}
}

func (s *server) Index(w http.ResponseWriter, r *http.Request) {
	switch s.gate(w, r).View() {
	case ViewShell:
		render(w, http.StatusOK, "shell", pageData{Title: "Dashboard", Shell: true})
	case ViewLogin:
		render(w, http.StatusOK, "login", pageData{Title: "Login"})
	default:
		render(w, http.StatusOK, "loading", pageData{Title: "Loading"})
	}
}

func (s *server) Login(w http.ResponseWriter, r *http.Request) {
	email := r.PostFormValue("email")
	err := s.auth.Authenticate(r.Context(), email, r.PostFormValue("password"))

	g := s.gate(w, r)
	g.HandleLogin(err == nil)
	if err != nil {
		if !errors.Is(err, ErrInvalidCredentials) {
			log.Error().Err(err).Msg("login failed")
		}
		render(w, http.StatusUnauthorized, "login", pageData{Title: "Login", Email: email, Error: "Invalid credentials"})
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *server) Logout(w http.ResponseWriter, r *http.Request) {
	s.gate(w, r).HandleLogout()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *server) requireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.gate(w, r).Authenticated() {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	}
}

// Editor pages fetch on GET. POST renders the editor's local state as is.

func (s *server) GetProfile(w http.ResponseWriter, r *http.Request) {
	_ = s.profile.Fetch(r.Context())
	s.renderProfile(w, "")
}

func (s *server) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	form := ProfileForm{
		Bio:          r.PostFormValue("bio"),
		AvatarURL:    r.PostFormValue("avatar_url"),
		CVURL:        r.PostFormValue("cv_url"),
		LinkedInURL:  r.PostFormValue("linkedin_url"),
		GitHubURL:    r.PostFormValue("github_url"),
		InstagramURL: r.PostFormValue("instagram_url"),
	}

	var n notices
	_ = s.profile.Update(r.Context(), form, &n)
	s.renderProfile(w, n.String())
}

func (s *server) renderProfile(w http.ResponseWriter, notice string) {
	render(w, http.StatusOK, "profile", pageData{
		Title:   "Profile",
		Shell:   true,
		Notice:  notice,
		Loading: s.profile.Loading(),
		Form:    s.profile.Form(),
	})
}

func (s *server) GetProjects(w http.ResponseWriter, r *http.Request) {
	_ = s.projects.Fetch(r.Context())
	s.renderProjects(w, "")
}

func (s *server) SubmitProject(w http.ResponseWriter, r *http.Request) {
	s.projects.SetDraft(ProjectForm{
		Title:       r.PostFormValue("title"),
		Description: r.PostFormValue("description"),
		ProjectURL:  r.PostFormValue("project_url"),
		GithubURL:   r.PostFormValue("github_url"),
		ImageURL:    r.PostFormValue("image_url"),
		Category:    r.PostFormValue("category"),
		Featured:    r.PostFormValue("featured") != "",
	})
	tech := r.PostFormValue("tech")

	if removed := r.PostFormValue("remove_tech"); removed != "" {
		s.projects.RemoveTechnology(removed)
		s.renderProjects(w, tech)
		return
	}

	switch action := r.PostFormValue("action"); {
	case action == "add_tech",
		// A blank tag input means Enter came from another field.
		action == "add_tech_enter" && strings.TrimSpace(tech) != "":
		if s.projects.AddTechnology(tech) {
			tech = ""
		}
		s.renderProjects(w, tech)
		return
	case action != "create" && action != "add_tech_enter":
		s.renderProjects(w, tech)
		return
	}

	_ = s.projects.Add(r.Context())
	s.renderProjects(w, tech)
}

func (s *server) renderProjects(w http.ResponseWriter, techInput string) {
	render(w, http.StatusOK, "projects", pageData{
		Title:      "Projects",
		Shell:      true,
		Loading:    s.projects.Loading(),
		Draft:      s.projects.Draft(),
		TechInput:  techInput,
		Projects:   s.projects.Projects(),
		Categories: projectCategories,
	})
}

func (s *server) ConfirmDeleteProject(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	p, ok := s.projects.Find(id)
	if !ok {
		http.Redirect(w, r, "/projects", http.StatusSeeOther)
		return
	}
	render(w, http.StatusOK, "confirm", pageData{
		Title:   "Delete Project",
		Shell:   true,
		Prompt:  deleteProjectPrompt,
		Subject: p.Title,
		Action:  "/projects/" + id + "/delete",
		Back:    "/projects",
	})
}

func (s *server) DeleteProject(w http.ResponseWriter, r *http.Request) {
	_ = s.projects.Delete(r.Context(), r.PathValue("id"), formConfirmer{r})
	s.renderProjects(w, "")
}

func (s *server) GetSkills(w http.ResponseWriter, r *http.Request) {
	_ = s.skills.Fetch(r.Context())
	s.renderSkills(w)
}

func (s *server) CreateSkill(w http.ResponseWriter, r *http.Request) {
	_ = s.skills.Add(r.Context(), SkillForm{
		Name:     r.PostFormValue("name"),
		Category: r.PostFormValue("category"),
		IconURL:  r.PostFormValue("icon_url"),
	})
	s.renderSkills(w)
}

func (s *server) renderSkills(w http.ResponseWriter) {
	render(w, http.StatusOK, "skills", pageData{
		Title:      "Skills",
		Shell:      true,
		Loading:    s.skills.Loading(),
		SkillForm:  s.skills.Form(),
		Skills:     s.skills.Skills(),
		Categories: skillCategories,
	})
}

func (s *server) ConfirmDeleteSkill(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	sk, ok := s.skills.Find(id)
	if !ok {
		http.Redirect(w, r, "/skills", http.StatusSeeOther)
		return
	}
	render(w, http.StatusOK, "confirm", pageData{
		Title:   "Delete Skill",
		Shell:   true,
		Prompt:  deleteSkillPrompt,
		Subject: sk.Name,
		Action:  "/skills/" + id + "/delete",
		Back:    "/skills",
	})
}

func (s *server) DeleteSkill(w http.ResponseWriter, r *http.Request) {
	_ = s.skills.Delete(r.Context(), r.PathValue("id"), formConfirmer{r})
	s.renderSkills(w)
}

func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
