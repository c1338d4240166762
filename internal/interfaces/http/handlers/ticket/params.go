package ticket

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"helpcenter/internal/application/ticket/usecases"
	"helpcenter/internal/shared/errors"
	"helpcenter/internal/shared/utils"
)

func parseTicketNumber(c *gin.Context) (string, error) {
	number := strings.TrimSpace(c.Param("number"))
	if number == "" {
		return "", errors.NewValidationError("ticket number is required")
	}
	return strings.ToUpper(number), nil
}

func parseUint(raw string) (uint, error) {
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}

func ticketActor(c *gin.Context) usecases.Actor {
	a := utils.GetActor(c)
	return usecases.Actor{ID: a.UserID, Role: a.Role, Email: a.Email}
}
