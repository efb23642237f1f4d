package controllers

import (
	"errors"
	"net/http"

	"academic-directory-api/services"
	"academic-directory-api/utils"

	"github.com/gin-gonic/gin"
)

type RankingController struct {
	job       *services.RankingJobService
	trigger   string
	recordRun bool
}

func NewRankingController(job *services.RankingJobService, trigger string, recordRun bool) *RankingController {
	return &RankingController{job: job, trigger: trigger, recordRun: recordRun}
}

// ANY /functions/v1/update-rankings
// POST /api/v1/admin/rankings/recompute
func (rc *RankingController) UpdateRankings(c *gin.Context) {
	summary, err := rc.job.RecomputeAllRankings(c.Request.Context(), &services.RankingRecomputeInput{
		TriggerSource: rc.trigger,
		RecordRun:     rc.recordRun,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": rankingErrorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"updatedCount": summary.UpdatedCount,
		"message":      summary.Message(),
	})
}

func rankingErrorMessage(err error) string {
	var rerr *services.RankingError
	if errors.As(err, &rerr) && rerr.Message() != "" {
		return rerr.Message()
	}
	return err.Error()
}

type RankingRunController struct {
	runs *services.RankingRunService
}

func NewRankingRunController(runs *services.RankingRunService) *RankingRunController {
	return &RankingRunController{runs: runs}
}

// GET /api/v1/admin/rankings/runs/:id
func (rc *RankingRunController) GetRun(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid run id"})
		return
	}

	run, err := rc.runs.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrRankingRunNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": run})
}
