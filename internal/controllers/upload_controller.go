package controllers

import (
	"net/http"

	"github.com/NoBrainerCoder/realestate-website-sub000/internal/dtos"
	"github.com/NoBrainerCoder/realestate-website-sub000/internal/services"
	"github.com/NoBrainerCoder/realestate-website-sub000/internal/utils"
)

// 32 MiB of multipart form data held in memory; the rest spills to disk.
const maxUploadMemory = 32 << 20

type UploadController struct {
	storageService services.StorageService
}

func NewUploadController(s services.StorageService) *UploadController {
	return &UploadController{storageService: s}
}

// ----------------------------------------------------------------
// POST /api/v1/uploads
// ----------------------------------------------------------------
//
// Accepts multipart form data under the "files" field. Uploads run
// concurrently and fail independently; the response lists the URLs that
// made it plus a count of those that didn't.
func (c *UploadController) UploadHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid multipart form", nil, err)
		return
	}

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "No files provided", nil)
		return
	}

	files := make([]services.UploadFile, 0, len(headers))
	for _, h := range headers {
		f, err := h.Open()
		if err != nil {
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Could not read uploaded file", nil, err)
			return
		}
		defer f.Close()
		files = append(files, services.UploadFile{Name: h.Filename, Reader: f})
	}

	urls, failed := c.storageService.UploadAll(r.Context(), files)
	if len(urls) == 0 && failed > 0 {
		utils.RespondErrorWithCode(w, http.StatusBadGateway, utils.ErrCodeExternalServiceFailure, "All uploads failed", nil)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dtos.UploadResponse{URLs: urls, Failed: failed})
}
