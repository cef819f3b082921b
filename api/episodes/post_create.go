package episodes

import (
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/podhaven/ingest-api/api/types"
	"github.com/podhaven/ingest-api/internal/services/ingest"
)

// PostCreate handles a multipart episode upload
// @Summary      Upload a new episode
// @Description  Validate an uploaded audio file, store it, extract its duration and create the episode record
// @Tags         episodes
// @Accept       multipart/form-data
// @Produce      json
// @Param        audioFile formData file true "Audio file (.mp3, .wav, .m4a)"
// @Param        thumbnailFile formData file false "Optional thumbnail image"
// @Param        podcastId formData int true "Owning podcast ID"
// @Param        title formData string false "Episode title (derived from filename when blank)"
// @Success      200 {object} types.UploadResponse "Uploaded episode"
// @Failure      400 {object} types.ErrorResponse "Invalid upload"
// @Failure      413 {object} types.ErrorResponse "Payload too large"
// @Failure      500 {object} types.ErrorResponse "Storage or database failure"
// @Router       /api/v1/episodes [post]
func PostCreate(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		podcastID, err := strconv.ParseUint(c.PostForm("podcastId"), 10, 32)
		if err != nil {
			types.SendBadRequest(c, "Invalid podcastId")
			return
		}

		req := ingest.IngestRequest{
			PodcastID:    uint(podcastID),
			Title:        c.PostForm("title"),
			Description:  c.PostForm("description"),
			Host:         c.PostForm("host"),
			Topic:        c.PostForm("topic"),
			DurationHint: c.PostForm("duration"),
		}

		if raw := c.PostForm("releaseDate"); raw != "" {
			if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
				req.ReleaseDate = &parsed
			}
		}

		// The pipeline needs re-readable bytes: the storage upload
		// consumes the stream before duration extraction runs.
		if file, header, err := c.Request.FormFile("audioFile"); err == nil {
			data, filename, contentType, readErr := readUpload(file, header)
			if readErr != nil {
				types.SendBadRequest(c, "Could not read audio file")
				return
			}
			req.Audio = data
			req.AudioFilename = filename
			req.AudioContentType = contentType
		}

		if file, header, err := c.Request.FormFile("thumbnailFile"); err == nil {
			data, filename, contentType, readErr := readUpload(file, header)
			if readErr == nil {
				req.Thumbnail = data
				req.ThumbnailFilename = filename
				req.ThumbnailContentType = contentType
			}
		}

		result, err := deps.IngestService.IngestEpisode(c.Request.Context(), req)
		if err != nil {
			log.Printf("[ERROR] Episode upload failed: %v", err)
			types.SendIngestError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.UploadResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Episode uploaded successfully",
			},
			EpisodeID:    result.Episode.ID,
			AudioURL:     result.AudioURL,
			ThumbnailURL: result.ThumbnailURL,
			Duration:     result.Episode.Duration,
		})
	}
}

func readUpload(file multipart.File, header *multipart.FileHeader) ([]byte, string, string, error) {
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", "", err
	}
	return data, header.Filename, header.Header.Get("Content-Type"), nil
}
