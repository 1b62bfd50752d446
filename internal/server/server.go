package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pageza/recipe-ai/config"
	"github.com/pageza/recipe-ai/internal/api"
	"github.com/pageza/recipe-ai/internal/database"
	"github.com/pageza/recipe-ai/internal/router"
	"github.com/pageza/recipe-ai/internal/service"
)

// Server represents the stand-in HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *gorm.DB
}

// New migrates db, seeds it from the configured fixtures and wires the
// services behind the router
func New(cfg config.ServerConfig, db *gorm.DB) (*Server, error) {
	if err := database.RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	fixtures, err := service.LoadFixtures(cfg.FixturesPath)
	if err != nil {
		return nil, err
	}
	if err := fixtures.Seed(context.Background(), db, time.Now()); err != nil {
		return nil, err
	}

	ingredients := service.NewIngredientService(db, cfg.FoodExpiryDays)
	svc := api.Services{
		Ingredients: ingredients,
		Recipes:     service.NewRecipeService(db, ingredients, service.NewChef(), fixtures.Suggestions),
		Invoices:    service.NewInvoiceService(fixtures.InvoiceItems),
	}

	r := router.SetupRouter(db, svc)
	return &Server{
		router: r,
		db:     db,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Handler exposes the router, e.g. for httptest
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called
func (s *Server) Start() error {
	log.Printf("Stand-in API listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server and closes the database
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.http.Shutdown(ctx)
	if sqlDB, dbErr := s.db.DB(); dbErr == nil {
		err = errors.Join(err, sqlDB.Close())
	}
	return err
}
