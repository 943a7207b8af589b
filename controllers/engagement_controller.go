package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vidhub-backend/models"
	"vidhub-backend/services"
)

type EngagementController struct {
	engagementService *services.EngagementService
}

func NewEngagementController(engagementService *services.EngagementService) *EngagementController {
	return &EngagementController{
		engagementService: engagementService,
	}
}

func (c *EngagementController) ToggleLike(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	videoID, ok := pathObjectID(ctx, "videoId")
	if !ok {
		return
	}

	response, err := c.engagementService.ToggleLike(ctx.Request.Context(), userID, videoID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

func (c *EngagementController) RateVideo(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	videoID, ok := pathObjectID(ctx, "videoId")
	if !ok {
		return
	}

	var req models.RateVideoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "rating is required"})
		return
	}

	response, err := c.engagementService.UpsertRating(ctx.Request.Context(), userID, videoID, req.Rating)
	if err != nil {
		respondError(ctx, err)
		return
	}

	status := http.StatusOK
	message := "Rating updated"
	if response.Created {
		status = http.StatusCreated
		message = "Rating created"
	}
	ctx.JSON(status, gin.H{
		"message":       message,
		"averageRating": response.AverageRating,
		"totalRatings":  response.TotalRatings,
		"userRating":    response.UserRating,
	})
}

func (c *EngagementController) GetOwnRating(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	videoID, ok := pathObjectID(ctx, "videoId")
	if !ok {
		return
	}

	response, err := c.engagementService.GetOwnRating(ctx.Request.Context(), userID, videoID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

func (c *EngagementController) DeleteRating(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	videoID, ok := pathObjectID(ctx, "videoId")
	if !ok {
		return
	}

	response, err := c.engagementService.RemoveRating(ctx.Request.Context(), userID, videoID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"averageRating": response.AverageRating,
		"totalRatings":  response.TotalRatings,
	})
}

func (c *EngagementController) RatingStats(ctx *gin.Context) {
	videoID, ok := pathObjectID(ctx, "videoId")
	if !ok {
		return
	}

	stats, err := c.engagementService.RatingStatistics(ctx.Request.Context(), videoID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

func (c *EngagementController) AddComment(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	videoID, ok := pathObjectID(ctx, "videoId")
	if !ok {
		return
	}

	var req models.CommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	response, err := c.engagementService.AddComment(ctx.Request.Context(), userID, videoID, req.Text)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, response)
}

func (c *EngagementController) EditComment(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	videoID, ok := pathObjectID(ctx, "videoId")
	if !ok {
		return
	}

	var req models.CommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	response, err := c.engagementService.EditComment(ctx.Request.Context(), userID, videoID, ctx.Param("commentId"), req.Text)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

func (c *EngagementController) DeleteComment(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	videoID, ok := pathObjectID(ctx, "videoId")
	if !ok {
		return
	}

	response, err := c.engagementService.DeleteComment(ctx.Request.Context(), userID, videoID, ctx.Param("commentId"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"totalComments": response.TotalComments})
}

func (c *EngagementController) ListComments(ctx *gin.Context) {
	videoID, ok := pathObjectID(ctx, "videoId")
	if !ok {
		return
	}

	page, _ := strconv.Atoi(ctx.Query("page"))
	limit, _ := strconv.Atoi(ctx.Query("limit"))

	response, err := c.engagementService.ListComments(ctx.Request.Context(), videoID, page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}
