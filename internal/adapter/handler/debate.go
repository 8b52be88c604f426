package handler

import (
	"context"
	stdErrors "errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/debateclub/arena/errors"
	dto "github.com/debateclub/arena/internal/adapter/dto/debate"
	"github.com/debateclub/arena/internal/adapter/presenter"
	"github.com/debateclub/arena/internal/domain/entities"
	debateUsecase "github.com/debateclub/arena/internal/usecase/debate"
	"github.com/debateclub/arena/internal/usecase/export"
)

// Debate handles debate-related HTTP requests
type Debate struct {
	debateService debateUsecase.Service
	exportService *export.Service
	logger        *zap.Logger
}

// NewDebateHandler creates a new debate handler
func NewDebateHandler(debateService debateUsecase.Service, exportService *export.Service, logger *zap.Logger) *Debate {
	return &Debate{
		debateService: debateService,
		exportService: exportService,
		logger:        logger,
	}
}

// CreateDebate handles POST /debates
// @Summary      Create a debate
// @Description  Creates a debate session and starts its scheduler immediately
// @Tags         Debates
// @Accept       json
// @Produce      json
// @Param        request  body      debate.CreateDebateRequest  true  "Debate setup"
// @Success      201      {object}  debate.DebateResponse  "Debate created"
// @Failure      400      {object}  common.ErrorResponse  "Invalid request or validation failed"
// @Failure      500      {object}  common.ErrorResponse  "Failed to create debate"
// @Router       /debates [post]
func (h *Debate) CreateDebate(c echo.Context) error {
	var req dto.CreateDebateRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	input := debateUsecase.CreateDebateInput{
		TopicID:          req.TopicID,
		TopicTitle:       req.TopicTitle,
		TopicDescription: req.TopicDescription,
		Mode:             entities.DebateMode(req.Mode),
		Format:           entities.DebateFormat(req.Format),
		JudgeProvider:    req.JudgeProvider,
		JudgeModel:       req.JudgeModel,
		Rules:            buildRules(req.Rules),
		Participants:     buildParticipants(req.Participants),
	}

	session, err := h.debateService.CreateDebate(c.Request().Context(), input)
	if err != nil {
		return HandleError(h.logger, c, errors.FromDomain(err, ""))
	}

	return c.JSON(http.StatusCreated, presenter.ToDebateResponse(session))
}

// ListDebates handles GET /debates
// @Summary      List debates
// @Description  Gets every debate session, newest first
// @Tags         Debates
// @Produce      json
// @Success      200  {object}  debate.DebateListResponse  "List of debates"
// @Router       /debates [get]
func (h *Debate) ListDebates(c echo.Context) error {
	sessions, err := h.debateService.ListDebates(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, errors.ErrDBQueryFailed(err))
	}
	return c.JSON(http.StatusOK, presenter.ToDebateListResponse(sessions))
}

// GetDebate handles GET /debates/:id
// @Summary      Get debate details
// @Description  Gets the full debate session including transcript and standings
// @Tags         Debates
// @Produce      json
// @Param        id   path      string  true  "Debate ID (UUID)"
// @Success      200  {object}  debate.DebateResponse  "Debate details"
// @Failure      400  {object}  common.ErrorResponse  "Invalid debate ID"
// @Failure      404  {object}  common.ErrorResponse  "Debate not found"
// @Router       /debates/{id} [get]
func (h *Debate) GetDebate(c echo.Context) error {
	debateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("debate ID must be a valid UUID"))
	}

	session, err := h.debateService.GetDebate(c.Request().Context(), debateID)
	if err != nil {
		return HandleError(h.logger, c, errors.FromDomain(err, debateID.String()))
	}
	return c.JSON(http.StatusOK, presenter.ToDebateResponse(session))
}

// DeleteDebate handles DELETE /debates/:id
// @Summary      Delete a debate
// @Description  Stops the debate runner and removes the session with all its records
// @Tags         Debates
// @Produce      json
// @Param        id   path      string  true  "Debate ID (UUID)"
// @Success      200  {object}  common.SuccessResponse  "Debate deleted"
// @Failure      404  {object}  common.ErrorResponse  "Debate not found"
// @Router       /debates/{id} [delete]
func (h *Debate) DeleteDebate(c echo.Context) error {
	debateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("debate ID must be a valid UUID"))
	}

	if err := h.debateService.DeleteDebate(c.Request().Context(), debateID); err != nil {
		return HandleError(h.logger, c, errors.FromDomain(err, debateID.String()))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "debate deleted",
	})
}

// RaiseHand handles POST /debates/:id/raise-hand
// @Summary      Raise a hand
// @Description  Queues a solo-mode participant to speak on the next eligible turn
// @Tags         Debates
// @Accept       json
// @Produce      json
// @Param        id       path      string  true  "Debate ID (UUID)"
// @Param        request  body      debate.RaiseHandRequest  true  "Raise hand intent"
// @Success      201      {object}  debate.RaiseHandResponse  "Intent queued"
// @Failure      400      {object}  common.ErrorResponse  "Invalid request"
// @Failure      404      {object}  common.ErrorResponse  "Debate or participant not found"
// @Failure      409      {object}  common.ErrorResponse  "Debate finished or not in solo mode"
// @Router       /debates/{id}/raise-hand [post]
func (h *Debate) RaiseHand(c echo.Context) error {
	debateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("debate ID must be a valid UUID"))
	}

	var req dto.RaiseHandRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	participantID, err := uuid.Parse(req.ParticipantID)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("participant ID must be a valid UUID"))
	}

	intent, err := h.debateService.RaiseHand(c.Request().Context(), debateID, participantID, entities.IntentKind(req.Intent), req.Priority)
	if err != nil {
		return HandleError(h.logger, c, errors.FromDomain(err, debateID.String()))
	}
	return c.JSON(http.StatusCreated, presenter.ToRaiseHandResponse(intent))
}

// PauseDebate handles POST /debates/:id/pause
// @Summary      Pause a debate
// @Description  Suspends scheduling; the debate stays loaded and can be resumed
// @Tags         Debates
// @Produce      json
// @Param        id   path      string  true  "Debate ID (UUID)"
// @Success      200  {object}  debate.DebateResponse  "Debate paused"
// @Failure      404  {object}  common.ErrorResponse  "Debate not found"
// @Failure      409  {object}  common.ErrorResponse  "Debate is not active"
// @Router       /debates/{id}/pause [post]
func (h *Debate) PauseDebate(c echo.Context) error {
	return h.transition(c, h.debateService.PauseDebate)
}

// ResumeDebate handles POST /debates/:id/resume
// @Summary      Resume a debate
// @Description  Resumes scheduling of a paused debate
// @Tags         Debates
// @Produce      json
// @Param        id   path      string  true  "Debate ID (UUID)"
// @Success      200  {object}  debate.DebateResponse  "Debate resumed"
// @Failure      404  {object}  common.ErrorResponse  "Debate not found"
// @Failure      409  {object}  common.ErrorResponse  "Debate is not paused"
// @Router       /debates/{id}/resume [post]
func (h *Debate) ResumeDebate(c echo.Context) error {
	return h.transition(c, h.debateService.ResumeDebate)
}

// EndDebate handles POST /debates/:id/end
// @Summary      End a debate
// @Description  Finishes the debate ahead of its time limit and computes the winner
// @Tags         Debates
// @Produce      json
// @Param        id   path      string  true  "Debate ID (UUID)"
// @Success      200  {object}  debate.DebateResponse  "Debate finished"
// @Failure      404  {object}  common.ErrorResponse  "Debate not found"
// @Failure      409  {object}  common.ErrorResponse  "Debate already finished"
// @Router       /debates/{id}/end [post]
func (h *Debate) EndDebate(c echo.Context) error {
	return h.transition(c, h.debateService.EndDebate)
}

// ExportDebate handles GET /debates/:id/export
// @Summary      Export a transcript
// @Description  Renders the debate as JSON or Markdown; with store=true the artifact is uploaded and its URL returned
// @Tags         Debates
// @Produce      json
// @Param        id      path      string  true   "Debate ID (UUID)"
// @Param        format  query     string  false  "Export format (json/markdown, default json)"
// @Param        store   query     bool    false  "Store the artifact in object storage"
// @Success      200     {object}  debate.ExportResponse  "Stored artifact URL (store=true) or the rendered transcript"
// @Failure      400     {object}  common.ErrorResponse  "Invalid format"
// @Failure      404     {object}  common.ErrorResponse  "Debate not found"
// @Router       /debates/{id}/export [get]
func (h *Debate) ExportDebate(c echo.Context) error {
	debateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("debate ID must be a valid UUID"))
	}

	format := export.Format(c.QueryParam("format"))
	if format == "" {
		format = export.FormatJSON
	}
	store, _ := strconv.ParseBool(c.QueryParam("store"))

	session, err := h.debateService.GetDebate(c.Request().Context(), debateID)
	if err != nil {
		return HandleError(h.logger, c, errors.FromDomain(err, debateID.String()))
	}

	artifact, err := h.exportService.Export(c.Request().Context(), session, format, store)
	if err != nil {
		if stdErrors.Is(err, export.ErrUnsupportedFormat) {
			return HandleError(h.logger, c, errors.ErrInvalidArgument("format must be json or markdown"))
		}
		return HandleError(h.logger, c, errors.ErrExportFailed(string(format), err))
	}

	if artifact.URL != "" {
		return c.JSON(http.StatusOK, dto.ExportResponse{
			DebateID: debateID.String(),
			Format:   string(artifact.Format),
			URL:      artifact.URL,
		})
	}
	return c.Blob(http.StatusOK, artifact.ContentType, artifact.Data)
}

// GetSummary handles GET /debates/:id/summary
// @Summary      Get a shareable summary
// @Description  Builds the plain-text recap with outcome and top highlights
// @Tags         Debates
// @Produce      json
// @Param        id   path      string  true  "Debate ID (UUID)"
// @Success      200  {object}  debate.SummaryResponse  "Summary"
// @Failure      404  {object}  common.ErrorResponse  "Debate not found"
// @Router       /debates/{id}/summary [get]
func (h *Debate) GetSummary(c echo.Context) error {
	debateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("debate ID must be a valid UUID"))
	}

	session, err := h.debateService.GetDebate(c.Request().Context(), debateID)
	if err != nil {
		return HandleError(h.logger, c, errors.FromDomain(err, debateID.String()))
	}
	return c.JSON(http.StatusOK, dto.SummaryResponse{
		DebateID: debateID.String(),
		Summary:  export.BuildSummary(session),
	})
}

// GetStats handles GET /stats
// @Summary      Get global stats
// @Description  Aggregates debate, message and scoring counts across all sessions
// @Tags         Stats
// @Produce      json
// @Success      200  {object}  debateUsecase.Stats  "Aggregated stats"
// @Router       /stats [get]
func (h *Debate) GetStats(c echo.Context) error {
	stats, err := h.debateService.GetStats(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, errors.ErrDBQueryFailed(err))
	}
	return c.JSON(http.StatusOK, stats)
}

// ListTopics handles GET /topics
// @Summary      List builtin topics
// @Tags         Catalog
// @Produce      json
// @Success      200  {object}  common.ListResponse  "Builtin topics"
// @Router       /topics [get]
func (h *Debate) ListTopics(c echo.Context) error {
	topics := entities.BuiltinTopics()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"data":  topics,
		"total": len(topics),
	})
}

// ListFormats handles GET /formats
// @Summary      List debate formats
// @Tags         Catalog
// @Produce      json
// @Success      200  {object}  common.ListResponse  "Available formats"
// @Router       /formats [get]
func (h *Debate) ListFormats(c echo.Context) error {
	formats := entities.DebateFormats()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"data":  formats,
		"total": len(formats),
	})
}

func (h *Debate) transition(c echo.Context, op func(ctx context.Context, id uuid.UUID) (*entities.DebateSession, error)) error {
	debateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("debate ID must be a valid UUID"))
	}

	session, err := op(c.Request().Context(), debateID)
	if err != nil {
		return HandleError(h.logger, c, errors.FromDomain(err, debateID.String()))
	}
	return c.JSON(http.StatusOK, presenter.ToDebateResponse(session))
}

func buildRules(req *dto.RulesRequest) *entities.DebateRules {
	if req == nil {
		return nil
	}
	rules := entities.DefaultRules()
	if req.MaxMessageLength != nil {
		rules.MaxMessageLength = *req.MaxMessageLength
	}
	if req.NoPersonalAttacks != nil {
		rules.NoPersonalAttacks = *req.NoPersonalAttacks
	}
	if req.StayOnTopic != nil {
		rules.StayOnTopic = *req.StayOnTopic
	}
	if req.NoFakeCitations != nil {
		rules.NoFakeCitations = *req.NoFakeCitations
	}
	return &rules
}

func buildParticipants(reqs []dto.ParticipantRequest) []debateUsecase.ParticipantInput {
	inputs := make([]debateUsecase.ParticipantInput, len(reqs))
	for i, req := range reqs {
		input := debateUsecase.ParticipantInput{
			Name:        req.Name,
			Provider:    req.Provider,
			Model:       req.Model,
			RoleStyle:   entities.RoleStyle(req.RoleStyle),
			Temperature: req.Temperature,
		}
		if req.Team != nil {
			team := entities.Team(*req.Team)
			input.Team = &team
		}
		inputs[i] = input
	}
	return inputs
}
