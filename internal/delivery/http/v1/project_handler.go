package v1

import (
	"errors"
	"net/http"
	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectUC domain.ProjectUsecase
}

// ProjectList is the body of GET /projects
type ProjectList struct {
	Filter   string                 `json:"filter"`
	Total    int                    `json:"total"`
	Projects []domain.ProjectRecord `json:"projects"`
}

func NewProjectHandler(public *gin.RouterGroup, projectUC domain.ProjectUsecase) {
	handler := &ProjectHandler{projectUC: projectUC}

	projects := public.Group("/projects")
	{
		projects.GET("", handler.List)
		projects.GET("/categories", handler.Categories)
		projects.GET("/:id", handler.GetDetails)
	}
}

// List godoc
// @Summary      List projects
// @Description  Returns the catalog filtered by category, in catalog order
// @Tags         projects
// @Produce      json
// @Param        filter  query     string  false  "all | frontend | api | backend | cpp, or a category token"
// @Success      200     {object}  response.Response{data=ProjectList}
// @Failure      400     {object}  response.Response
// @Router       /projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	selection, err := domain.ParseFilterSelection(c.Query("filter"))
	if err != nil {
		c.Error(apperror.BadRequest("Unknown project filter"))
		return
	}

	projects, err := h.projectUC.List(c.Request.Context(), selection)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	response.Success(c, http.StatusOK, "Projects retrieved", ProjectList{
		Filter:   selection.String(),
		Total:    len(projects),
		Projects: projects,
	})
}

// Categories godoc
// @Summary      List project filters
// @Description  Every filter selection with its label, category token and match count
// @Tags         projects
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.CategorySummary}
// @Router       /projects/categories [get]
func (h *ProjectHandler) Categories(c *gin.Context) {
	summaries, err := h.projectUC.Categories(c.Request.Context())
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	response.Success(c, http.StatusOK, "Categories retrieved", summaries)
}

// GetDetails godoc
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Param        id   path      int  true  "Project ID"
// @Success      200  {object}  response.Response{data=domain.ProjectRecord}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /projects/{id} [get]
func (h *ProjectHandler) GetDetails(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Error(apperror.BadRequest("Invalid project ID"))
		return
	}

	project, err := h.projectUC.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.Error(apperror.NotFound("Project not found"))
			return
		}
		c.Error(apperror.Internal(err))
		return
	}

	response.Success(c, http.StatusOK, "Project retrieved", project)
}
