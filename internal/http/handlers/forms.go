package handlers

import (
	"net/http"

	"travelconsole/internal/forms"
	"travelconsole/internal/http/middleware"
	"travelconsole/internal/services"

	"github.com/gin-gonic/gin"
)

// ListForms names the entity forms the console accepts.
func (h *Handler) ListForms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"forms": forms.Names()})
}

// CreateForm validates a new entity. Nothing is stored.
func (h *Handler) CreateForm(c *gin.Context) {
	h.submitForm(c, "")
}

// UpdateForm validates an edit of entity :id. Nothing is stored.
func (h *Handler) UpdateForm(c *gin.Context) {
	h.submitForm(c, c.Param("id"))
}

func (h *Handler) submitForm(c *gin.Context, id string) {
	name := c.Param("form")
	f, err := forms.New(name)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !BindJSONOrError(c, &f) {
		return
	}
	svc := services.FormService{RequestID: middleware.GetRequestID(c)}
	sub, err := svc.Submit(name, id, f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	status := http.StatusCreated
	if id != "" {
		status = http.StatusOK
	}
	c.JSON(status, gin.H{"message": sub.Message, "data": sub})
}
