package handlers

import (
	"net/http"

	"travelconsole/internal/forms"
	"travelconsole/internal/http/middleware"
	"travelconsole/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) commissions(c *gin.Context) services.CommissionService {
	return services.CommissionService{
		Source:    h.Store.Commissions,
		RequestID: middleware.GetRequestID(c),
	}
}

func (h *Handler) CreateCommission(c *gin.Context) {
	var f forms.CommissionForm
	if !BindJSONOrError(c, &f) {
		return
	}
	rule, msg, err := h.commissions(c).Create(c.Request.Context(), f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": msg, "data": rule})
}

func (h *Handler) UpdateCommission(c *gin.Context) {
	var f forms.CommissionForm
	if !BindJSONOrError(c, &f) {
		return
	}
	rule, msg, err := h.commissions(c).Update(c.Request.Context(), c.Param("id"), f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg, "data": rule})
}

// ToggleCommission flips the active flag of rule :id.
func (h *Handler) ToggleCommission(c *gin.Context) {
	rule, msg, err := h.commissions(c).Toggle(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg, "data": rule})
}
