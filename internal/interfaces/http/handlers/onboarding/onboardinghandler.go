package onboarding

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpcenter/internal/application/onboarding/usecases"
	"helpcenter/internal/shared/errors"
	"helpcenter/internal/shared/logger"
	"helpcenter/internal/shared/utils"
)

type PutProgressRequest struct {
	CompletedSteps []int `json:"completed_steps" binding:"required"`
}

type OnboardingHandler struct {
	getUC  usecases.GetProgressExecutor
	listUC usecases.ListProgressExecutor
	putUC  usecases.PutProgressExecutor
	logger logger.Interface
}

func NewOnboardingHandler(
	getUC usecases.GetProgressExecutor,
	listUC usecases.ListProgressExecutor,
	putUC usecases.PutProgressExecutor,
	log logger.Interface,
) *OnboardingHandler {
	return &OnboardingHandler{getUC: getUC, listUC: listUC, putUC: putUC, logger: log}
}

// ListProgress handles GET /onboarding/progress
func (h *OnboardingHandler) ListProgress(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context(), utils.GetActor(c).UserID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetProgress handles GET /onboarding/guides/:slug
func (h *OnboardingHandler) GetProgress(c *gin.Context) {
	slug, err := utils.ParseSlugParam(c, "slug")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), utils.GetActor(c).UserID, slug)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// PutProgress handles PUT /onboarding/guides/:slug. The body replaces the
// stored completed-step set.
func (h *OnboardingHandler) PutProgress(c *gin.Context) {
	slug, err := utils.ParseSlugParam(c, "slug")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req PutProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for put progress", "error", err, "slug", slug)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.putUC.Execute(c.Request.Context(), usecases.PutProgressCommand{
		OwnerID:        utils.GetActor(c).UserID,
		GuideSlug:      slug,
		CompletedSteps: req.CompletedSteps,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}
