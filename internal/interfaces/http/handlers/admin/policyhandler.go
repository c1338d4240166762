package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpcenter/internal/shared/constants"
	"helpcenter/internal/shared/errors"
	"helpcenter/internal/shared/logger"
	"helpcenter/internal/shared/utils"
)

// PolicyStore is the casbin-backed policy set.
type PolicyStore interface {
	Policies() ([][]string, error)
	AddPolicy(role, path, method string) error
	RemovePolicy(role, path, method string) error
	LoadPolicy() error
}

type PolicyHandler struct {
	store  PolicyStore
	logger logger.Interface
}

func NewPolicyHandler(store PolicyStore, log logger.Interface) *PolicyHandler {
	return &PolicyHandler{store: store, logger: log}
}

type PolicyRequest struct {
	Role   string `json:"role" binding:"required,oneof=guest customer vendor admin"`
	Path   string `json:"path" binding:"required,startswith=/api/"`
	Method string `json:"method" binding:"required,oneof=GET POST PUT PATCH DELETE *"`
}

type PolicyResponse struct {
	Role   string `json:"role"`
	Path   string `json:"path"`
	Method string `json:"method"`
}

// ListPolicies handles GET /admin/policies
func (h *PolicyHandler) ListPolicies(c *gin.Context) {
	rules, err := h.store.Policies()
	if err != nil {
		h.logger.Errorw("failed to list policies", "error", err)
		utils.ErrorResponseWithError(c, errors.NewInternalError("failed to list policies"))
		return
	}

	out := make([]PolicyResponse, 0, len(rules))
	for _, r := range rules {
		if len(r) < 3 {
			continue
		}
		out = append(out, PolicyResponse{Role: r[0], Path: r[1], Method: r[2]})
	}
	utils.SuccessResponse(c, http.StatusOK, "", out)
}

// AddPolicy handles POST /admin/policies
func (h *PolicyHandler) AddPolicy(c *gin.Context) {
	var req PolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	if err := h.store.AddPolicy(req.Role, req.Path, req.Method); err != nil {
		h.logger.Errorw("failed to add policy", "error", err, "role", req.Role, "path", req.Path)
		utils.ErrorResponseWithError(c, errors.NewInternalError("failed to add policy"))
		return
	}

	h.logger.Infow("policy added", "role", req.Role, "path", req.Path, "method", req.Method,
		"actor_id", utils.GetActor(c).UserID)
	utils.CreatedResponse(c, PolicyResponse(req), "Policy added successfully")
}

// RemovePolicy handles DELETE /admin/policies. Admin access to the admin
// routes cannot be removed through the API.
func (h *PolicyHandler) RemovePolicy(c *gin.Context) {
	var req PolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}
	if req.Role == constants.RoleAdmin && req.Path == "/api/v1/admin/*" {
		utils.ErrorResponseWithError(c, errors.NewForbiddenError("admin access policy cannot be removed"))
		return
	}

	if err := h.store.RemovePolicy(req.Role, req.Path, req.Method); err != nil {
		h.logger.Errorw("failed to remove policy", "error", err, "role", req.Role, "path", req.Path)
		utils.ErrorResponseWithError(c, errors.NewInternalError("failed to remove policy"))
		return
	}

	h.logger.Infow("policy removed", "role", req.Role, "path", req.Path, "method", req.Method,
		"actor_id", utils.GetActor(c).UserID)
	utils.NoContentResponse(c)
}

// ReloadPolicies handles POST /admin/policies/reload
func (h *PolicyHandler) ReloadPolicies(c *gin.Context) {
	if err := h.store.LoadPolicy(); err != nil {
		h.logger.Errorw("failed to reload policies", "error", err)
		utils.ErrorResponseWithError(c, errors.NewInternalError("failed to reload policies"))
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Policies reloaded", nil)
}
