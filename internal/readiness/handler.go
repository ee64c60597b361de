package readiness

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"readiness-api/internal/shared/server/respond"
)

// Handler exposes readiness endpoints.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes wires readiness routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/readiness/calculate", h.calculate)
}

func (h *Handler) calculate(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		respond.ValidationFailed(c, []string{ErrInvalidBody.Error()})
		return
	}

	res, err := h.Svc.CalculateJSON(c.Request.Context(), body)
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			respond.ValidationFailed(c, verr.Messages)
		case errors.Is(err, ErrInvalidBody):
			respond.ValidationFailed(c, []string{ErrInvalidBody.Error()})
		default:
			respond.Error(c, http.StatusInternalServerError, "internal", "Unexpected server error", nil)
		}
		return
	}

	respond.Created(c, res)
}
