package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portfolioUC "github.com/khoahotran/portfolio-api/internal/application/usecase/portfolio"
	seedUC "github.com/khoahotran/portfolio-api/internal/application/usecase/seed"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type PortfolioHandler struct {
	logger logger.Logger
}

func NewPortfolioHandler(log logger.Logger) *PortfolioHandler {
	return &PortfolioHandler{logger: log}
}

// queries binds the query use case to the request's session.
func (h *PortfolioHandler) queries(c *gin.Context) (*portfolioUC.QueryUseCase, bool) {
	repos, ok := GetRepositories(c)
	if !ok {
		c.Error(apperror.NewInternal("database session missing from request context", nil))
		return nil, false
	}
	return portfolioUC.NewQueryUseCase(repos, h.logger), true
}

func (h *PortfolioHandler) GetProfile(c *gin.Context) {
	uc, ok := h.queries(c)
	if !ok {
		return
	}
	p, err := uc.GetProfile(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProfileDTO(p))
}

func (h *PortfolioHandler) GetExperience(c *gin.Context) {
	uc, ok := h.queries(c)
	if !ok {
		return
	}
	list, err := uc.GetExperiences(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToExperienceListResponse(list))
}

// GetProjects lists featured projects unless ?featured=false is given.
func (h *PortfolioHandler) GetProjects(c *gin.Context) {
	featuredOnly := true
	if raw := c.Query("featured"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.Error(apperror.NewValidation("invalid query parameter", map[string]string{"featured": "must be a boolean"}, err))
			return
		}
		featuredOnly = v
	}

	uc, ok := h.queries(c)
	if !ok {
		return
	}
	list, err := uc.GetProjects(c.Request.Context(), featuredOnly)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProjectListResponse(list))
}

func (h *PortfolioHandler) GetSkills(c *gin.Context) {
	uc, ok := h.queries(c)
	if !ok {
		return
	}
	catalog, err := uc.GetSkillsByCategory(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, catalog)
}

// Root serves the landing summary built from the active profile. Until a
// profile is stored it falls back to the bundled sample profile.
func (h *PortfolioHandler) Root(c *gin.Context) {
	uc, ok := h.queries(c)
	if !ok {
		return
	}
	p, err := uc.GetProfile(c.Request.Context())
	if errors.Is(err, apperror.ErrNotFound) {
		p = seedUC.SampleData().Profile.Profile()
		err = nil
	}
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToRootDTO(p))
}
