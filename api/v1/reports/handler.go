package reports

import (
	"go_vms/internal/httpx"
	"go_vms/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetHandler handles GET /api/reports/:report_type
func GetHandler(db *gorm.DB) gin.HandlerFunc {
	reports := service.NewReportService(db)

	return func(c *gin.Context) {
		switch c.Param("report_type") {
		case "daily":
			report, err := reports.Daily(c.Query("date"))
			if err != nil {
				httpx.FailErr(c, httpx.AsAppError(err))
				return
			}
			httpx.OKMsg(c, "daily report generated", report)

		case "summary":
			report, err := reports.Summary()
			if err != nil {
				httpx.FailErr(c, httpx.AsAppError(err))
				return
			}
			httpx.OKMsg(c, "30-day summary generated", report)

		case "frequent":
			rows, err := reports.Frequent()
			if err != nil {
				httpx.FailErr(c, httpx.AsAppError(err))
				return
			}
			httpx.OKMsg(c, "frequent visitors report generated", rows)

		default:
			httpx.FailErr(c, httpx.ErrParamIllegal("invalid report type"))
		}
	}
}
