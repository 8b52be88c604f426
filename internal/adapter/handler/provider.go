package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/debateclub/arena/errors"
	dto "github.com/debateclub/arena/internal/adapter/dto/provider"
	"github.com/debateclub/arena/pkg/ai"
)

// Provider handles AI provider credential checks
type Provider struct {
	registry *ai.Registry
	logger   *zap.Logger
}

// NewProviderHandler creates a new provider handler
func NewProviderHandler(registry *ai.Registry, logger *zap.Logger) *Provider {
	return &Provider{
		registry: registry,
		logger:   logger,
	}
}

// TestProvider handles POST /providers/test
// @Summary      Test a provider credential
// @Description  Runs a minimal generation call against the provider and reports latency
// @Tags         Providers
// @Accept       json
// @Produce      json
// @Param        request  body      provider.TestProviderRequest  true  "Provider credential"
// @Success      200      {object}  provider.TestProviderResponse  "Check outcome"
// @Failure      400      {object}  common.ErrorResponse  "Invalid request"
// @Router       /providers/test [post]
func (h *Provider) TestProvider(c echo.Context) error {
	var req dto.TestProviderRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	start := time.Now()
	text, err := h.registry.TestProvider(c.Request().Context(), req.Provider, req.Model, req.APIKey)
	latency := time.Since(start).Milliseconds()

	if err != nil {
		h.logger.Warn("provider test failed",
			zap.String("provider", req.Provider),
			zap.Error(err),
		)
		// A failed credential is a valid outcome, not a server error
		return c.JSON(http.StatusOK, dto.TestProviderResponse{
			Success: false,
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, dto.TestProviderResponse{
		Success:   true,
		Message:   "Connection successful",
		LatencyMS: latency,
		Response:  text,
	})
}
