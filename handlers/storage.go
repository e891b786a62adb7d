package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"goodrunss/database/repository/venue"
	"goodrunss/services/storage"
	"goodrunss/utils"

	"github.com/gin-gonic/gin"
)

// StorageHandler handles venue media uploads.
type StorageHandler struct {
	StorageSvc storage.StorageService
	VenueRepo  venueRepo.VenueRepository
}

func NewStorageHandler(svc storage.StorageService, venues venueRepo.VenueRepository) *StorageHandler {
	return &StorageHandler{StorageSvc: svc, VenueRepo: venues}
}

// tempUploadPath places an upload under the OS temp directory. The client
// supplies the filename, so only its base name is used; path separators in it
// must not escape the directory.
func tempUploadPath(filename string) string {
	return filepath.Join(os.TempDir(), filepath.Base(filename))
}

// UploadVenuePhoto handles POST /api/venues/:id/photos.
func (h *StorageHandler) UploadVenuePhoto(c *gin.Context) {
	venueID := c.Param("id")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "file not provided", err.Error())
		return
	}

	tempFilePath := tempUploadPath(fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save file", err.Error())
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := h.StorageSvc.UploadFile(c, tempFilePath, "venues/"+venueID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to upload file", err.Error())
		return
	}

	url, err := h.StorageSvc.GetDownloadURL(publicID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to construct download URL", err.Error())
		return
	}

	if err := h.VenueRepo.AddPhoto(venueID, url); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to record photo", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"publicId": publicID, "url": url})
}
