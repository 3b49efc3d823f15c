package http

import (
	"errors"
	"net/http"

	"fintech-directory/internal/usecase/upload"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type UploadHandler struct {
	uc  *upload.Usecase
	log *zap.Logger
}

func NewUploadHandler(uc *upload.Usecase, log *zap.Logger) *UploadHandler {
	return &UploadHandler{uc: uc, log: log}
}

// Upload stores the multipart "file" part under the optional "category".
func (h *UploadHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return respondError(c, h.log, upload.ErrNoFile)
		}
		return invalidBody(c)
	}
	src, err := fh.Open()
	if err != nil {
		return respondError(c, h.log, err)
	}
	defer src.Close()

	info, err := h.uc.Save(c.Request().Context(), upload.File{
		Name:        fh.Filename,
		Size:        fh.Size,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Body:        src,
	}, c.FormValue("category"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message": "File uploaded successfully",
		"file":    info,
	})
}

func (h *UploadHandler) Limits(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.Limits())
}
