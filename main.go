// main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
)

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.Index)
	mux.HandleFunc("POST /login", s.Login)
	mux.HandleFunc("POST /logout", s.Logout)

	// Editors sit behind the session gate
	mux.HandleFunc("GET /profile", s.requireSession(s.GetProfile))
	mux.HandleFunc("POST /profile", s.requireSession(s.UpdateProfile))
	mux.HandleFunc("GET /projects", s.requireSession(s.GetProjects))
	mux.HandleFunc("POST /projects", s.requireSession(s.SubmitProject))
	mux.HandleFunc("GET /projects/{id}/delete", s.requireSession(s.ConfirmDeleteProject))
	mux.HandleFunc("POST /projects/{id}/delete", s.requireSession(s.DeleteProject))
	mux.HandleFunc("GET /skills", s.requireSession(s.GetSkills))
	mux.HandleFunc("POST /skills", s.requireSession(s.CreateSkill))
	mux.HandleFunc("GET /skills/{id}/delete", s.requireSession(s.ConfirmDeleteSkill))
	mux.HandleFunc("POST /skills/{id}/delete", s.requireSession(s.DeleteSkill))

	// Public feed for the portfolio frontend
	c := cors.New(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins(),
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})
	mux.Handle("GET /api/profile", c.Handler(http.HandlerFunc(s.feed.GetProfile)))
	mux.Handle("GET /api/projects", c.Handler(http.HandlerFunc(s.feed.GetProjects)))
	mux.Handle("GET /api/skills", c.Handler(http.HandlerFunc(s.feed.GetSkills)))
	mux.HandleFunc("GET /healthz", Health)

	return requestLogger(mux)
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		initLogger("info", "console")
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	initLogger(cfg.LogLevel, cfg.LogFormat)

	db, err := openDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}
	if err := seedAdmin(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin user")
	}

	profiles := newGormTable[Profile](db)
	projects := newGormTable[Project](db)
	skills := newGormTable[Skill](db)
	feed := newSiteFeed(cfg, profiles, projects, skills)

	s := &server{
		cfg:      cfg,
		auth:     userAuth{db: db},
		profile:  NewProfileManager(profiles, feed),
		projects: NewProjectManager(projects, feed),
		skills:   NewSkillManager(skills, feed),
		feed:     feed,
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Admin dashboard running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
