package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dinehub/franchise-admin/services"
	"github.com/dinehub/franchise-admin/utils"
)

type ReportController struct {
	Svc *services.ReportService
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{Svc: services.NewReportService(db)}
}

func (rc *ReportController) Generate(c *gin.Context) {
	var f services.ReportFilters
	if err := c.ShouldBindQuery(&f); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	rows, err := rc.Svc.Generate(f)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	utils.RespondData(c, http.StatusOK, gin.H{
		"reportType": f.ReportType,
		"dateRange":  f.DateRange,
		"rowCount":   len(rows),
		"rows":       rows,
	})
}

func (rc *ReportController) Export(c *gin.Context) {
	var f services.ReportFilters
	if err := c.ShouldBindQuery(&f); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	rows, err := rc.Svc.Generate(f)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	data, err := rc.Svc.ExportXLSX(f, rows)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+f.ReportType+`_report.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func (rc *ReportController) ExportPDF(c *gin.Context) {
	var f services.ReportFilters
	if err := c.ShouldBindQuery(&f); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	rows, err := rc.Svc.Generate(f)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	data, err := rc.Svc.ExportPDF(f, rows)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+f.ReportType+`_report.pdf"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

func (rc *ReportController) History(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	entries, err := rc.Svc.History(limit)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondData(c, http.StatusOK, entries)
}
