package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pveldman/studioadmin/internal/application/service"
	"github.com/pveldman/studioadmin/pkg/apperror"
	"github.com/pveldman/studioadmin/pkg/document"
)

const dateLayout = "2006-01-02"

// parseDateRange resolves the date range of a request. A period query
// parameter (day, week, month, year) wins; otherwise explicit start and end
// dates are expected in YYYY-MM-DD form.
func parseDateRange(c *gin.Context) (time.Time, time.Time, error) {
	if period := c.Query("period"); period != "" {
		return service.PeriodRange(period, time.Now())
	}

	startStr := c.Query("start")
	endStr := c.Query("end")
	if startStr == "" || endStr == "" {
		return time.Time{}, time.Time{}, apperror.NewBadRequestError("Provide either period or start and end dates")
	}
	start, err := time.ParseInLocation(dateLayout, startStr, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, apperror.NewBadRequestError("Start date must be in YYYY-MM-DD format")
	}
	end, err := time.ParseInLocation(dateLayout, endStr, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, apperror.NewBadRequestError("End date must be in YYYY-MM-DD format")
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, apperror.NewBadRequestError("End date must not precede start date")
	}
	return start, end, nil
}

// parseOptionalClientID reads the optional client_id query parameter.
func parseOptionalClientID(c *gin.Context) (*uuid.UUID, error) {
	raw := c.Query("client_id")
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, apperror.NewBadRequestError("Invalid client ID")
	}
	return &id, nil
}

// sendArtifact streams a rendered document or export as a file download.
func sendArtifact(c *gin.Context, artifact *document.Artifact, contentType string) {
	c.Header("Content-Disposition", `attachment; filename="`+artifact.Filename+`"`)
	c.Data(http.StatusOK, contentType, artifact.Data)
}
