package httpserver

import (
	"mime/multipart"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"vertexit-site/internal/domain"
)

// maxUploadBytes caps CV and media uploads.
const maxUploadBytes = 20 << 20

// submitApplication accepts the public career form: candidate details as
// multipart fields plus an optional CV file that goes to object storage
// before the application document is written.
func (h *handlers) submitApplication(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	app := domain.JobApplication{
		JobID:       c.PostForm("jobId"),
		JobTitle:    c.PostForm("jobTitle"),
		Name:        c.PostForm("name"),
		Email:       c.PostForm("email"),
		Phone:       c.PostForm("phone"),
		CoverLetter: c.PostForm("coverLetter"),
	}

	if file, err := c.FormFile("cv"); err == nil {
		if h.deps.Uploader == nil {
			fail(c, http.StatusServiceUnavailable, "uploads_disabled", "file storage not configured")
			return
		}
		url, storagePath, err := h.storeFile(c, file, "applications")
		if err != nil {
			h.logger.Printf("store cv: %v", err)
			writeError(c, err)
			return
		}
		app.CVURL = url
		app.CVPath = storagePath
	}

	id, err := h.deps.Applications.Save(c.Request.Context(), app)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// upload stores an admin media file and returns its public URL together
// with the storage path needed to delete it later.
func (h *handlers) upload(c *gin.Context) {
	if h.deps.Uploader == nil {
		fail(c, http.StatusServiceUnavailable, "uploads_disabled", "file storage not configured")
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	file, err := c.FormFile("file")
	if err != nil {
		writeError(c, domain.Required("file"))
		return
	}
	folder := sanitizeFolder(c.PostForm("folder"))
	url, storagePath, err := h.storeFile(c, file, folder)
	if err != nil {
		h.logger.Printf("store upload: %v", err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url, "path": storagePath})
}

func (h *handlers) deleteUpload(c *gin.Context) {
	if h.deps.Uploader == nil {
		fail(c, http.StatusServiceUnavailable, "uploads_disabled", "file storage not configured")
		return
	}
	storagePath := c.Query("path")
	if storagePath == "" {
		writeError(c, domain.Required("path"))
		return
	}
	if err := h.deps.Uploader.Delete(c.Request.Context(), storagePath); err != nil {
		h.logger.Printf("delete upload: %v", err)
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) storeFile(c *gin.Context, file *multipart.FileHeader, folder string) (url, storagePath string, err error) {
	src, err := file.Open()
	if err != nil {
		return "", "", err
	}
	defer src.Close()

	storagePath = folder + "/" + uuid.NewString() + strings.ToLower(path.Ext(file.Filename))
	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	url, err = h.deps.Uploader.Upload(c.Request.Context(), storagePath, src, file.Size, contentType)
	if err != nil {
		return "", "", err
	}
	return url, storagePath, nil
}

// sanitizeFolder keeps admin-chosen folders to a single flat segment.
func sanitizeFolder(folder string) string {
	folder = strings.Trim(folder, "/")
	if folder == "" || strings.ContainsAny(folder, "./\\") {
		return "uploads"
	}
	return folder
}
