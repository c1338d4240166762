package addressbook

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"helpcenter/internal/application/addressbook/usecases"
	"helpcenter/internal/shared/errors"
	"helpcenter/internal/shared/logger"
	"helpcenter/internal/shared/utils"
)

type AddAddressRequest struct {
	Label         string `json:"label" binding:"max=50"`
	RecipientName string `json:"recipient_name" binding:"required,max=100"`
	Phone         string `json:"phone" binding:"required,max=32"`
	Line1         string `json:"line1" binding:"required,max=200"`
	Line2         string `json:"line2" binding:"max=200"`
	City          string `json:"city" binding:"required,max=100"`
	Region        string `json:"region" binding:"max=100"`
	PostalCode    string `json:"postal_code" binding:"required,max=20"`
	Country       string `json:"country" binding:"required,max=56"`
	IsDefault     bool   `json:"is_default"`
}

func (r *AddAddressRequest) ToCommand(ownerID uint) usecases.AddAddressCommand {
	return usecases.AddAddressCommand{
		OwnerID:       ownerID,
		Label:         r.Label,
		RecipientName: r.RecipientName,
		Phone:         r.Phone,
		Line1:         r.Line1,
		Line2:         r.Line2,
		City:          r.City,
		Region:        r.Region,
		PostalCode:    r.PostalCode,
		Country:       r.Country,
		IsDefault:     r.IsDefault,
	}
}

type UpdateAddressRequest struct {
	Label         *string `json:"label" binding:"omitempty,max=50"`
	RecipientName *string `json:"recipient_name" binding:"omitempty,max=100"`
	Phone         *string `json:"phone" binding:"omitempty,max=32"`
	Line1         *string `json:"line1" binding:"omitempty,max=200"`
	Line2         *string `json:"line2" binding:"omitempty,max=200"`
	City          *string `json:"city" binding:"omitempty,max=100"`
	Region        *string `json:"region" binding:"omitempty,max=100"`
	PostalCode    *string `json:"postal_code" binding:"omitempty,max=20"`
	Country       *string `json:"country" binding:"omitempty,max=56"`
	IsDefault     *bool   `json:"is_default"`
}

func (r *UpdateAddressRequest) ToCommand(ownerID uint, addressID string) usecases.UpdateAddressCommand {
	return usecases.UpdateAddressCommand{
		OwnerID:       ownerID,
		AddressID:     addressID,
		Label:         r.Label,
		RecipientName: r.RecipientName,
		Phone:         r.Phone,
		Line1:         r.Line1,
		Line2:         r.Line2,
		City:          r.City,
		Region:        r.Region,
		PostalCode:    r.PostalCode,
		Country:       r.Country,
		IsDefault:     r.IsDefault,
	}
}

// AddressBookHandler serves the caller's own address book; the owner is
// always taken from the access token.
type AddressBookHandler struct {
	getUC    usecases.GetAddressBookExecutor
	addUC    usecases.AddAddressExecutor
	updateUC usecases.UpdateAddressExecutor
	removeUC usecases.RemoveAddressExecutor
	logger   logger.Interface
}

func NewAddressBookHandler(
	getUC usecases.GetAddressBookExecutor,
	addUC usecases.AddAddressExecutor,
	updateUC usecases.UpdateAddressExecutor,
	removeUC usecases.RemoveAddressExecutor,
	log logger.Interface,
) *AddressBookHandler {
	return &AddressBookHandler{getUC: getUC, addUC: addUC, updateUC: updateUC, removeUC: removeUC, logger: log}
}

// Get handles GET /address-book
func (h *AddressBookHandler) Get(c *gin.Context) {
	result, err := h.getUC.Execute(c.Request.Context(), utils.GetActor(c).UserID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Add handles POST /address-book/entries
func (h *AddressBookHandler) Add(c *gin.Context) {
	var req AddAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add address", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.addUC.Execute(c.Request.Context(), req.ToCommand(utils.GetActor(c).UserID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Address added successfully")
}

// Update handles PATCH /address-book/entries/:id
func (h *AddressBookHandler) Update(c *gin.Context) {
	addressID, err := parseAddressID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update address", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), req.ToCommand(utils.GetActor(c).UserID, addressID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Address updated successfully", result)
}

// Remove handles DELETE /address-book/entries/:id and returns the book after removal.
func (h *AddressBookHandler) Remove(c *gin.Context) {
	addressID, err := parseAddressID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.removeUC.Execute(c.Request.Context(), utils.GetActor(c).UserID, addressID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Address removed successfully", result)
}

func parseAddressID(c *gin.Context) (string, error) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", errors.NewValidationError("address ID is required")
	}
	return id, nil
}
