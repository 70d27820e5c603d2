package handler

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"estateconnect/internal/domain/entity"
	"estateconnect/internal/domain/repository"
	"estateconnect/internal/domain/service"
	"estateconnect/pkg/errors"
	"estateconnect/pkg/logger"
	"estateconnect/pkg/response"
	"estateconnect/pkg/utils"
)

type FileHandler struct {
	fileService      service.FileUploadService
	fileMetadataRepo repository.FileMetadataRepository
	maxFileSize      int64
}

func NewFileHandler(fileService service.FileUploadService, fileMetadataRepo repository.FileMetadataRepository) *FileHandler {
	return &FileHandler{
		fileService:      fileService,
		fileMetadataRepo: fileMetadataRepo,
		maxFileSize:      5 * 1024 * 1024,
	}
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

// UploadImage stores a property image in the blob store and records
// its metadata, returning a retrievable URL.
func (h *FileHandler) UploadImage(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing or invalid file", err))
	}

	if file.Size > h.maxFileSize {
		return response.Error(c, errors.BadRequest(fmt.Sprintf("File size exceeds maximum allowed (%dMB)", h.maxFileSize/(1024*1024)), nil))
	}

	fileType := file.Header.Get("Content-Type")
	if !allowedImageTypes[fileType] {
		return response.Error(c, errors.BadRequest("File type not supported", nil))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Unable to read file", err))
	}
	defer src.Close()

	result, err := h.fileService.UploadFile(c.Request().Context(), src, fileType, "property-images", true)
	if err != nil {
		logger.Error("Image upload failed: %v", err)
		return response.Error(c, errors.Internal("Failed to upload image", err))
	}

	userID := c.Get("uid").(string)

	metadata := &entity.FileMetadata{
		ID:         uuid.New().String(),
		URL:        result.URL,
		ObjectName: result.ObjectName,
		EntityType: "property",
		UploadedBy: userID,
		Filename:   file.Filename,
		FileType:   fileType,
		FileSize:   result.Size,
		IsPublic:   true,
		CreatedAt:  time.Now(),
	}
	if err := h.fileMetadataRepo.Create(c.Request().Context(), metadata); err != nil {
		// The blob is already stored; surface the URL anyway.
		logger.Error("Failed to record file metadata: %v", err)
	}

	return response.Created(c, map[string]string{
		"url":  result.URL,
		"path": result.ObjectName,
	})
}

// ListMyFiles returns the caller's own uploads, newest first.
func (h *FileHandler) ListMyFiles(c echo.Context) error {
	userID := c.Get("uid").(string)

	pagination := utils.GetPaginationParams(c)

	files, total, err := h.fileMetadataRepo.GetByUploader(c.Request().Context(), userID, pagination.PageSize, pagination.Offset)
	if err != nil {
		logger.Error("Failed to list files for %s: %v", userID, err)
		return response.Error(c, err)
	}

	return response.Paginated(c, files, total, pagination.Page, pagination.PageSize)
}

// DeleteFile removes the blob and its metadata record. Only the
// uploader may delete a file.
func (h *FileHandler) DeleteFile(c echo.Context) error {
	userID := c.Get("uid").(string)

	metadata, err := h.fileMetadataRepo.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	if metadata.UploadedBy != userID {
		return response.Error(c, errors.Forbidden("Not authorized to delete this file", nil))
	}

	if err := h.fileService.DeleteFile(c.Request().Context(), metadata.ObjectName); err != nil {
		logger.Error("Failed to delete blob %s: %v", metadata.ObjectName, err)
		return response.Error(c, errors.Internal("Failed to delete file", err))
	}

	if err := h.fileMetadataRepo.Delete(c.Request().Context(), metadata.ID); err != nil {
		// The blob is gone; a stale metadata record is harmless.
		logger.Error("Failed to delete file metadata %s: %v", metadata.ID, err)
	}

	return response.Success(c, map[string]string{
		"message": "File deleted successfully",
	})
}
