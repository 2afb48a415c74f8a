package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"docsummary/internal/service"
)

// ListSummaries godoc
// @Summary      List summary audit records
// @Description  Metadata of past summaries, newest first. Only served when the audit log is enabled.
// @Tags         summaries
// @Produce      json
// @Param        limit   query  int  false  "Page size (max 100)"  default(10)
// @Param        offset  query  int  false  "Rows to skip"         default(0)
// @Success      200  {object}  service.SummaryListResult
// @Failure      400  {object}  errorPayload
// @Failure      500  {object}  errorPayload
// @Router       /summaries [get]
func ListSummaries(svc service.SummaryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, msgInvalidLimit)
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, msgInvalidOffset)
		}

		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			if errors.Is(err, service.ErrAuditDisabled) {
				return writeError(c, fiber.StatusNotFound, msgAuditNotEnabled)
			}
			return writeError(c, fiber.StatusInternalServerError, msgInternal)
		}
		return c.JSON(res)
	}
}
