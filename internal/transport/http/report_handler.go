package http

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	apierrors "revcli/internal/errors"
	"revcli/internal/services"
	"revcli/pkg/contracts/domain"
)

// ReportHandler handles analysis HTTP requests.
type ReportHandler struct {
	service        *services.ReportService
	validate       *validator.Validate
	maxUploadBytes int64
	logger         *slog.Logger
}

// NewReportHandler creates a report handler.
func NewReportHandler(service *services.ReportService, maxUploadBytes int64, logger *slog.Logger) *ReportHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportHandler{
		service:        service,
		validate:       validator.New(),
		maxUploadBytes: maxUploadBytes,
		logger:         logger.With(slog.String("handler", "report")),
	}
}

// Routes returns the handler's route group.
func (h *ReportHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/analyze", h.Analyze)
	r.Post("/workbook", h.Workbook)
	return r
}

// Analyze handles POST /api/reports/analyze. The body is a multipart form
// with the source under "file"; display parameters arrive as form values.
func (h *ReportHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	file, filename, params, apiErr := h.parseUpload(r)
	if apiErr != nil {
		render.Render(w, r, apierrors.NewErrorResponse(apiErr))
		return
	}
	defer file.Close()

	result, err := h.service.Analyze(ctx, file, filename, params)
	if err != nil {
		render.Render(w, r, apierrors.NewErrorResponse(h.mapError(ctx, err)))
		return
	}

	render.JSON(w, r, result)
}

// Workbook handles POST /api/reports/workbook. Same upload contract as
// Analyze; the response is the xlsx workbook as an attachment.
func (h *ReportHandler) Workbook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	file, filename, params, apiErr := h.parseUpload(r)
	if apiErr != nil {
		render.Render(w, r, apierrors.NewErrorResponse(apiErr))
		return
	}
	defer file.Close()

	result, err := h.service.Analyze(ctx, file, filename, params)
	if err != nil {
		render.Render(w, r, apierrors.NewErrorResponse(h.mapError(ctx, err)))
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="sections.xlsx"`)
	if err := h.service.WriteWorkbook(ctx, w, result.Tables); err != nil {
		// Headers are already out; all we can do is log.
		h.logger.ErrorContext(ctx, "workbook write failed", slog.String("error", err.Error()))
	}
}

// parseUpload extracts the uploaded file and display parameters from a
// multipart request.
func (h *ReportHandler) parseUpload(r *http.Request) (multipart.File, string, domain.ReportParams, *apierrors.APIError) {
	var params domain.ReportParams

	r.Body = http.MaxBytesReader(nil, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		return nil, "", params, apierrors.InvalidRequestWithError(fmt.Errorf("parse multipart form: %w", err))
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, "", params, apierrors.ErrValidation("file", "multipart field \"file\" is required")
	}

	params, apiErr := h.parseParams(r)
	if apiErr != nil {
		file.Close()
		return nil, "", params, apiErr
	}
	return file, header.Filename, params, nil
}

// parseParams reads the optional display parameters from form values,
// applies defaults, and validates bounds.
func (h *ReportHandler) parseParams(r *http.Request) (domain.ReportParams, *apierrors.APIError) {
	params := domain.DefaultReportParams()

	intField := func(name string, dst *int) *apierrors.APIError {
		raw := r.FormValue(name)
		if raw == "" {
			return nil
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return apierrors.ErrValidation(name, "must be an integer")
		}
		*dst = v
		return nil
	}
	if apiErr := intField("top_n", &params.TopN); apiErr != nil {
		return params, apiErr
	}
	if apiErr := intField("amount_col", &params.AmountCol); apiErr != nil {
		return params, apiErr
	}
	if apiErr := intField("page_width", &params.PageWidth); apiErr != nil {
		return params, apiErr
	}

	if format := r.FormValue("format"); format != "" {
		params.Format = format
	}

	dateField := func(name string, dst *time.Time) *apierrors.APIError {
		raw := r.FormValue(name)
		if raw == "" {
			return nil
		}
		v, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return apierrors.ErrValidation(name, "must be a YYYY-MM-DD date")
		}
		*dst = v
		return nil
	}
	if apiErr := dateField("start_date", &params.StartDate); apiErr != nil {
		return params, apiErr
	}
	if apiErr := dateField("end_date", &params.EndDate); apiErr != nil {
		return params, apiErr
	}

	if err := h.validate.Struct(params); err != nil {
		var verrs validator.ValidationErrors
		if stderrors.As(err, &verrs) && len(verrs) > 0 {
			return params, apierrors.ErrValidation(verrs[0].Field(), "out of range")
		}
		return params, apierrors.InvalidRequestWithError(err)
	}
	return params, nil
}

// mapError converts domain errors into API errors.
func (h *ReportHandler) mapError(ctx context.Context, err error) *apierrors.APIError {
	if mc, ok := apierrors.AsMissingColumns(err); ok {
		return apierrors.MissingColumnsAPIError(mc.Columns)
	}
	if stderrors.Is(err, apierrors.ErrUnreadableSource) {
		return apierrors.UnreadableSourceError(err)
	}
	h.logger.ErrorContext(ctx, "analysis failed", slog.String("error", err.Error()))
	return apierrors.ErrInternalServer
}
