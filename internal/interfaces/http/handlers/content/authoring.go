package content

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpcenter/internal/application/content/usecases"
	"helpcenter/internal/shared/errors"
	"helpcenter/internal/shared/logger"
	"helpcenter/internal/shared/utils"
)

func bindError(c *gin.Context, log logger.Interface, op string, err error) {
	log.Warnw("invalid request body for "+op, "error", err)
	utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
}

type ArticleHandler struct {
	createUC usecases.CreateArticleExecutor
	updateUC usecases.UpdateArticleExecutor
	logger   logger.Interface
}

func NewArticleHandler(createUC usecases.CreateArticleExecutor, updateUC usecases.UpdateArticleExecutor, log logger.Interface) *ArticleHandler {
	return &ArticleHandler{createUC: createUC, updateUC: updateUC, logger: log}
}

// Create handles POST /admin/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.logger, "create article", err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req.ToCommand(utils.GetActor(c).UserID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Article created successfully")
}

// Update handles PATCH /admin/articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "article")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.logger, "update article", err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), req.ToCommand(id, utils.GetActor(c).UserID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Article updated successfully", result)
}

type GuideHandler struct {
	createUC usecases.CreateGuideExecutor
	updateUC usecases.UpdateGuideExecutor
	logger   logger.Interface
}

func NewGuideHandler(createUC usecases.CreateGuideExecutor, updateUC usecases.UpdateGuideExecutor, log logger.Interface) *GuideHandler {
	return &GuideHandler{createUC: createUC, updateUC: updateUC, logger: log}
}

// Create handles POST /admin/guides
func (h *GuideHandler) Create(c *gin.Context) {
	var req CreateGuideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.logger, "create guide", err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req.ToCommand(utils.GetActor(c).UserID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Guide created successfully")
}

// Update handles PATCH /admin/guides/:id
func (h *GuideHandler) Update(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "guide")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateGuideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.logger, "update guide", err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), req.ToCommand(id, utils.GetActor(c).UserID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Guide updated successfully", result)
}

type VideoHandler struct {
	createUC usecases.CreateVideoExecutor
	updateUC usecases.UpdateVideoExecutor
	logger   logger.Interface
}

func NewVideoHandler(createUC usecases.CreateVideoExecutor, updateUC usecases.UpdateVideoExecutor, log logger.Interface) *VideoHandler {
	return &VideoHandler{createUC: createUC, updateUC: updateUC, logger: log}
}

// Create handles POST /admin/videos
func (h *VideoHandler) Create(c *gin.Context) {
	var req CreateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.logger, "create video", err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req.ToCommand(utils.GetActor(c).UserID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Video created successfully")
}

// Update handles PATCH /admin/videos/:id
func (h *VideoHandler) Update(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "video")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.logger, "update video", err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), req.ToCommand(id, utils.GetActor(c).UserID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Video updated successfully", result)
}
