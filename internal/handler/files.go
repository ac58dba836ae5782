package handler

import (
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"path/filepath"
	"time"

	"mission-review-service/api"
	"mission-review-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// Лимит размера загружаемого файла.
const maxUploadSize = 5 << 20 // 5 MiB

// FilesHandler прокидывает загружаемые файлы в объектное хранилище.
type FilesHandler struct {
	*BaseHandler
	storage domain.ObjectStorage
}

// NewFilesHandler создает новый экземпляр FilesHandler
func NewFilesHandler(storage domain.ObjectStorage, logger *logrus.Logger) *FilesHandler {
	return &FilesHandler{
		BaseHandler: NewBaseHandler(logger),
		storage:     storage,
	}
}

// PostFilesUpload принимает multipart-файл и возвращает публичный URL и ключ
func (h *FilesHandler) PostFilesUpload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.logger.WithError(err).Warn("Failed to read uploaded file")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", "file is required"))
	}

	if fileHeader.Size > maxUploadSize {
		return c.JSON(http.StatusRequestEntityTooLarge, toErrorResponse("FILE_TOO_LARGE", "file exceeds 5MB limit"))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	key := fmt.Sprintf("uploads/%d-%d%s", time.Now().UnixMilli(), rand.Intn(1e9), filepath.Ext(fileHeader.Filename))
	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := h.storage.Upload(c.Request().Context(), key, contentType, data)
	if err != nil {
		h.logger.WithError(err).Error("Failed to upload file")
		return c.JSON(http.StatusInternalServerError, toErrorResponse("UPLOAD_FAILED", err.Error()))
	}

	h.logRequest(c, "upload_file").WithField("key", key).Info("File uploaded")
	return c.JSON(http.StatusCreated, api.FileUploadResponse{Url: url, Key: key})
}
