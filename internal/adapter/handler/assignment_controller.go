package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/task-assigner/errors"
	dto "github.com/johnquangdev/task-assigner/internal/adapter/dto/assignment"
	"github.com/johnquangdev/task-assigner/internal/adapter/presenter"
	"github.com/johnquangdev/task-assigner/internal/domain/entities"
	assignuse "github.com/johnquangdev/task-assigner/internal/usecase/assignment"
)

// AssignmentController handles task assignment API endpoints
type AssignmentController struct {
	svc       assignuse.Service
	presenter *presenter.ResultPresenter
	logger    *zap.Logger
}

// NewAssignmentController creates a new assignment controller
func NewAssignmentController(svc assignuse.Service, logger *zap.Logger) *AssignmentController {
	return &AssignmentController{
		svc:       svc,
		presenter: presenter.NewResultPresenter(),
		logger:    logger,
	}
}

// ProcessTranscript extracts and assigns tasks from a meeting transcript
// @Summary      Process meeting transcript
// @Description  Runs rule-based task extraction and assignment over a transcript and roster
// @Tags         Assignments
// @Accept       json
// @Produce      json
// @Param        request  body      object{transcript=string,team_members=[]object}  true  "Transcript and team roster"
// @Success      200      {object}  map[string]interface{}  "Extraction result"
// @Failure      400      {object}  map[string]interface{}  "Invalid payload or roster"
// @Router       /assignments [post]
func (ac *AssignmentController) ProcessTranscript(c echo.Context) error {
	var req dto.ProcessTranscriptRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidRoster(err))
	}

	result, err := ac.svc.ProcessTranscript(c.Request().Context(), req.Transcript, req.TeamMembers)
	if err != nil {
		return HandleError(ac.logger, c, err)
	}
	return HandleSuccess(ac.logger, c, result)
}

// ProcessRecording transcribes a recording and extracts tasks from it
// @Summary      Process meeting recording
// @Description  Transcribes an audio URL via the speech service, then runs task extraction
// @Tags         Assignments
// @Accept       json
// @Produce      json
// @Param        request  body      object{audio_url=string,team_members=[]object}  true  "Recording URL and team roster"
// @Success      200      {object}  map[string]interface{}  "Extraction result"
// @Failure      400      {object}  map[string]interface{}  "Invalid payload or roster"
// @Failure      502      {object}  map[string]interface{}  "Transcription failed"
// @Router       /assignments/from-recording [post]
func (ac *AssignmentController) ProcessRecording(c echo.Context) error {
	var req dto.ProcessRecordingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidPayload())
	}
	if req.AudioURL == "" {
		return HandleError(ac.logger, c, errors.ErrMissingAudioURL())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidRoster(err))
	}

	result, err := ac.svc.ProcessRecording(c.Request().Context(), req.AudioURL, req.TeamMembers)
	if err != nil {
		return HandleError(ac.logger, c, err)
	}
	return HandleSuccess(ac.logger, c, result)
}

// Export renders a result document as a downloadable CSV or text table
// @Summary      Export assignment result
// @Description  Renders a previously produced result document as CSV or a fixed-width table
// @Tags         Assignments
// @Accept       json
// @Produce      text/csv
// @Param        format   query     string  false  "Export format: csv (default) or table"
// @Param        request  body      object  true   "Result document"
// @Success      200      {string}  string  "Rendered export"
// @Failure      400      {object}  map[string]interface{}  "Invalid payload or format"
// @Router       /assignments/export [post]
func (ac *AssignmentController) Export(c echo.Context) error {
	var result entities.Result
	if err := c.Bind(&result); err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidPayload())
	}

	format := c.QueryParam("format")
	if format == "" {
		format = "csv"
	}

	switch format {
	case "csv":
		out, err := ac.presenter.RenderCSV(&result)
		if err != nil {
			return HandleError(ac.logger, c, errors.ErrExportFailed(err))
		}
		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="task_assignments.csv"`)
		return c.Blob(http.StatusOK, "text/csv", []byte(out))
	case "table":
		return c.String(http.StatusOK, ac.presenter.FormatTable(&result))
	default:
		return HandleError(ac.logger, c, errors.ErrInvalidArgument("unsupported export format: "+format))
	}
}
