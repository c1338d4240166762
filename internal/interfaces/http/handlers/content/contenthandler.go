package content

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"helpcenter/internal/application/content/usecases"
	"helpcenter/internal/shared/errors"
	"helpcenter/internal/shared/logger"
	"helpcenter/internal/shared/utils"
)

// ContentHandler serves the read and lifecycle routes shared by articles,
// guides and videos. D is the kind's DTO.
type ContentHandler[D any] struct {
	kind          string
	getUC         usecases.GetContentExecutor[D]
	listUC        usecases.ListContentExecutor[D]
	publicationUC usecases.ChangePublicationExecutor
	logger        logger.Interface
}

func NewContentHandler[D any](
	kind string,
	getUC usecases.GetContentExecutor[D],
	listUC usecases.ListContentExecutor[D],
	publicationUC usecases.ChangePublicationExecutor,
	log logger.Interface,
) *ContentHandler[D] {
	return &ContentHandler[D]{
		kind:          kind,
		getUC:         getUC,
		listUC:        listUC,
		publicationUC: publicationUC,
		logger:        log,
	}
}

// GetPublished handles GET /{kind}/:slug
func (h *ContentHandler[D]) GetPublished(c *gin.Context) {
	slug, err := utils.ParseSlugParam(c, "slug")
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError(h.kind+" not found"))
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetContentQuery{Slug: slug})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListPublished handles GET /{kind}
func (h *ContentHandler[D]) ListPublished(c *gin.Context) {
	h.list(c, true)
}

// AdminGet handles GET /admin/{kind}/:id
func (h *ContentHandler[D]) AdminGet(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", h.kind)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetContentQuery{ID: id, IncludeUnpublished: true})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AdminList handles GET /admin/{kind}; any status is visible.
func (h *ContentHandler[D]) AdminList(c *gin.Context) {
	h.list(c, false)
}

func (h *ContentHandler[D]) list(c *gin.Context, publicOnly bool) {
	p := utils.ParsePagination(c)
	query := usecases.ListContentQuery{
		Audience:   c.Query("audience"),
		Query:      strings.TrimSpace(c.Query("q")),
		Page:       p.Page,
		PageSize:   p.PageSize,
		PublicOnly: publicOnly,
	}
	if !publicOnly {
		query.Status = c.Query("status")
	}

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

type UnpublishRequest struct {
	Target string `json:"target"`
}

// Publish handles POST /admin/{kind}/:id/publish
func (h *ContentHandler[D]) Publish(c *gin.Context) {
	h.changePublication(c, usecases.ActionPublish, "")
}

// Unpublish handles POST /admin/{kind}/:id/unpublish. The optional body
// selects DRAFT (default) or ARCHIVED.
func (h *ContentHandler[D]) Unpublish(c *gin.Context) {
	var req UnpublishRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
			return
		}
	}
	h.changePublication(c, usecases.ActionUnpublish, req.Target)
}

// Archive handles DELETE /admin/{kind}/:id. Content is archived, never removed.
func (h *ContentHandler[D]) Archive(c *gin.Context) {
	h.changePublication(c, usecases.ActionArchive, "")
}

func (h *ContentHandler[D]) changePublication(c *gin.Context, action usecases.PublicationAction, target string) {
	id, err := utils.ParseUintParam(c, "id", h.kind)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.publicationUC.Execute(c.Request.Context(), usecases.ChangePublicationCommand{
		ID:      id,
		Action:  action,
		Target:  target,
		ActorID: utils.GetActor(c).UserID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
