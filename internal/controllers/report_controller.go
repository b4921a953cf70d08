package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"fleetkeeper/internal/config"
	"fleetkeeper/internal/report"
)

type ReportController struct {
	Dashboard *DashboardController
	SMTP      config.SMTPConfig
}

// SendWeeklyReport emails the current admin-scope alert list. Admin only.
func (rc *ReportController) SendWeeklyReport(c *gin.Context) {
	alerts, err := rc.Dashboard.BuildFor(c.Request.Context(), "admin", 0, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	subject, body := report.ComposeDigest(alerts, rc.Dashboard.getClock().Now())
	if err := report.SendDigest(rc.SMTP, subject, body); err != nil {
		logrus.WithError(err).Error("failed to send weekly report")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send report: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Report sent", "alerts": len(alerts)})
}
