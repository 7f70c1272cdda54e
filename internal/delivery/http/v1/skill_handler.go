package v1

import (
	"net/http"
	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	skillUC domain.SkillUsecase
}

func NewSkillHandler(public *gin.RouterGroup, skillUC domain.SkillUsecase) {
	handler := &SkillHandler{skillUC: skillUC}
	public.GET("/skills", handler.List)
}

// List godoc
// @Summary      List skills
// @Description  Skill categories with proficiency percentages, plus the badge list
// @Tags         skills
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.SkillSet}
// @Router       /skills [get]
func (h *SkillHandler) List(c *gin.Context) {
	set, err := h.skillUC.List(c.Request.Context())
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	response.Success(c, http.StatusOK, "Skills retrieved", set)
}
