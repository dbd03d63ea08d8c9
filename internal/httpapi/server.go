// Package httpapi exposes the faculty record over a small JSON API.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/alexanderramin/promotrack/internal/domain"
	"github.com/alexanderramin/promotrack/internal/importer"
	"github.com/alexanderramin/promotrack/internal/service"
	"github.com/gin-gonic/gin"
)

var errMalformedBody = errors.New("malformed request body")

// Server routes requests to the faculty service. Requests are handled one
// at a time since every route reads or writes the same record.
type Server struct {
	faculty service.FacultyService
	mu      sync.Mutex
}

func NewServer(faculty service.FacultyService) *Server {
	return &Server{faculty: faculty}
}

// Router builds the gin engine. Access logs go to logOut when non-nil.
func (s *Server) Router(logOut io.Writer) *gin.Engine {
	r := gin.New()
	if logOut != nil {
		r.Use(gin.LoggerWithWriter(logOut))
	}
	r.Use(gin.Recovery())

	api := r.Group("/api")
	api.GET("/health", s.health)
	api.GET("/config/points", s.pointsConfig)
	api.GET("/config/requirements", s.requirementsConfig)

	fac := api.Group("/faculty", s.serialize)
	{
		fac.GET("", s.getFaculty)
		fac.POST("/wizard", s.completeWizard)
		fac.POST("/profile", s.updateProfile)
		fac.POST("/achievements/:type", s.addAchievement)
		fac.DELETE("/achievements/:type/:id", s.deleteAchievement)
		fac.GET("/eligibility", s.eligibility)
		fac.POST("/apply", s.apply)
		fac.POST("/reset", s.reset)
		fac.POST("/simulate", s.simulate)
	}

	return r
}

func (s *Server) serialize(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.Next()
}

func decodeBody(c *gin.Context, v any) error {
	data, err := c.GetRawData()
	if err != nil {
		return fmt.Errorf("%w: %v", errMalformedBody, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		if errors.Is(err, domain.ErrInvalidCategory) {
			return err
		}
		return fmt.Errorf("%w: %v", errMalformedBody, err)
	}
	return nil
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) pointsConfig(c *gin.Context) {
	respondOK(c, "", ratesView())
}

func (s *Server) requirementsConfig(c *gin.Context) {
	respondOK(c, "", requirementsView())
}

func (s *Server) getFaculty(c *gin.Context) {
	f, err := s.faculty.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", facultyView(f))
}

func (s *Server) completeWizard(c *gin.Context) {
	var req importer.WizardImport
	if err := decodeBody(c, &req); err != nil {
		respondError(c, err)
		return
	}
	if err := importer.ValidateWizard(&req, true); err != nil {
		respondError(c, err)
		return
	}

	f, err := s.faculty.CompleteWizard(c.Request.Context(), req.Profile.Profile(), req.Achievements.Set())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "onboarding completed", gin.H{
		"faculty":     facultyView(f),
		"eligibility": eligibilityView(f.Eligibility(), nil),
	})
}

type profilePatchRequest struct {
	Name            *string `json:"name"`
	Degree          *string `json:"degree"`
	CurrentPosition *string `json:"currentPosition"`
	YearsOfService  *int    `json:"yearsOfService"`
}

func (r profilePatchRequest) patch() (domain.ProfilePatch, error) {
	patch := domain.ProfilePatch{Name: r.Name, Degree: r.Degree, YearsOfService: r.YearsOfService}
	if r.Name != nil && *r.Name == "" {
		return patch, fmt.Errorf("%w: name is required", importer.ErrValidation)
	}
	if r.YearsOfService != nil && *r.YearsOfService < 0 {
		return patch, fmt.Errorf("%w: yearsOfService must be at least 0", importer.ErrValidation)
	}
	if r.CurrentPosition != nil {
		p, err := domain.ParsePosition(*r.CurrentPosition)
		if err != nil {
			return patch, err
		}
		patch.CurrentPosition = &p
	}
	return patch, nil
}

func (s *Server) updateProfile(c *gin.Context) {
	var req profilePatchRequest
	if err := decodeBody(c, &req); err != nil {
		respondError(c, err)
		return
	}
	patch, err := req.patch()
	if err != nil {
		respondError(c, err)
		return
	}

	f, err := s.faculty.UpdateProfile(c.Request.Context(), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "profile updated", gin.H{
		"profile":  profileView(f.Profile),
		"eligible": f.Promotion.Eligible,
	})
}

func (s *Server) addAchievement(c *gin.Context) {
	data, err := c.GetRawData()
	if err != nil {
		respondError(c, fmt.Errorf("%w: %v", errMalformedBody, err))
		return
	}
	details, err := importer.DecodeRecord(c.Param("type"), data)
	if err != nil {
		respondError(c, err)
		return
	}

	res, err := s.faculty.AddAchievement(c.Request.Context(), details)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "achievement added", gin.H{
		"item":     achievementView(res.Achievement),
		"points":   PointsView{Total: res.Faculty.Points.Total, Breakdown: breakdownView(res.Faculty.Points.Breakdown)},
		"eligible": res.Faculty.Promotion.Eligible,
	})
}

func (s *Server) deleteAchievement(c *gin.Context) {
	category, err := domain.ParseCategory(c.Param("type"))
	if err != nil {
		respondError(c, err)
		return
	}
	ctx := c.Request.Context()
	id := c.Param("id")

	// The path names the category too; a record filed elsewhere is a miss.
	a, err := s.faculty.GetAchievement(ctx, id)
	switch {
	case err == nil && a.Category() != category:
		respondError(c, fmt.Errorf("%w: %s in %s", domain.ErrAchievementNotFound, id, category))
		return
	case err != nil && !errors.Is(err, domain.ErrAchievementNotFound):
		respondError(c, err)
		return
	}

	res, err := s.faculty.DeleteAchievement(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "achievement deleted", gin.H{
		"points":   PointsView{Total: res.Faculty.Points.Total, Breakdown: breakdownView(res.Faculty.Points.Breakdown)},
		"eligible": res.Faculty.Promotion.Eligible,
	})
}

func (s *Server) eligibility(c *gin.Context) {
	f, err := s.faculty.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", eligibilityView(f.Eligibility(), f.Points.Breakdown))
}

func (s *Server) apply(c *gin.Context) {
	f, err := s.faculty.Apply(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "application submitted", gin.H{
		"status": PromotionStatusView{
			Eligible:        f.Promotion.Eligible,
			ApplicationDate: f.Promotion.ApplicationDate,
			Status:          string(f.Promotion.Status),
		},
	})
}

func (s *Server) reset(c *gin.Context) {
	if _, err := s.faculty.Reset(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "all data reset", nil)
}

func (s *Server) simulate(c *gin.Context) {
	var req importer.SimulationImport
	if err := decodeBody(c, &req); err != nil {
		respondError(c, err)
		return
	}
	if err := importer.Validate(&req); err != nil {
		respondError(c, err)
		return
	}

	sim, err := s.faculty.Simulate(c.Request.Context(), req.Additions.Set())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", simulationView(sim))
}

// ListenAndServe runs the API on addr until ctx is cancelled, then shuts
// down gracefully.
func ListenAndServe(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
