package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vidhub-backend/services"
)

type VideoController struct {
	videoService *services.VideoService
}

func NewVideoController(videoService *services.VideoService) *VideoController {
	return &VideoController{
		videoService: videoService,
	}
}

func (c *VideoController) ListVideos(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.Query("page"))
	limit, _ := strconv.Atoi(ctx.Query("limit"))

	response, err := c.videoService.ListVideos(ctx.Request.Context(), page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

func (c *VideoController) GetVideo(ctx *gin.Context) {
	videoID, ok := pathObjectID(ctx, "videoId")
	if !ok {
		return
	}

	video, err := c.videoService.GetVideo(ctx.Request.Context(), videoID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, video)
}

// Ingest pulls videos from the external catalog into the local store;
// routed behind the admin guard.
func (c *VideoController) Ingest(ctx *gin.Context) {
	pages, _ := strconv.Atoi(ctx.DefaultQuery("pages", "1"))
	perPage, _ := strconv.Atoi(ctx.DefaultQuery("perPage", "15"))
	query := ctx.Query("query")

	var (
		result *services.IngestionResult
		err    error
	)
	if query != "" {
		result, err = c.videoService.IngestSearch(ctx.Request.Context(), query, pages, perPage)
	} else {
		result, err = c.videoService.IngestPopular(ctx.Request.Context(), pages, perPage)
	}
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}
