package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"filedepot/internal/service"
)

// ListFiles handles GET /files: enumerate every object in the container.
func ListFiles(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		files, err := svc.ListFiles(c.UserContext())
		if err != nil {
			logError(c, "list_files", err)
			return writeError(c, fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{"files": files})
	}
}

// DownloadLink handles GET /download/:filename: issue a read-only,
// time-limited URL for the blob.
func DownloadLink(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filename := c.Params("filename")

		url, err := svc.DownloadURL(c.UserContext(), filename)
		if err != nil {
			if errors.Is(err, service.ErrFilenameRequired) {
				return writeError(c, fiber.StatusBadRequest, "filename is required")
			}
			logError(c, "download_link", err)
			return writeError(c, fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{"url": url})
	}
}

// UploadFile handles POST /upload (multipart field "file"): write the blob
// under its filename and record a metadata row.
func UploadFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "multipart field 'file' is required")
		}
		if fh.Filename == "" {
			return writeError(c, fiber.StatusBadRequest, "filename is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		id, err := svc.Upload(c.UserContext(), f, fh.Filename, ct, fh.Size)
		if err != nil {
			logError(c, "upload_file", err)
			return writeError(c, fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{
			"message": "file " + fh.Filename + " uploaded",
			"file_id": id,
		})
	}
}

// DeleteFile handles DELETE /delete/:filename: best-effort removal of the
// blob and its metadata rows.
func DeleteFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filename := c.Params("filename")

		if err := svc.Delete(c.UserContext(), filename); err != nil {
			if errors.Is(err, service.ErrFilenameRequired) {
				return writeError(c, fiber.StatusBadRequest, "filename is required")
			}
			logError(c, "delete_file", err)
			return writeError(c, fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{"message": "file " + filename + " deleted"})
	}
}

// ListFileMetadata handles GET /file_metadata: typed dump of the metadata
// table.
func ListFileMetadata(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.ListMetadata(c.UserContext())
		if err != nil {
			logError(c, "list_file_metadata", err)
			return writeError(c, fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{"metadata": items})
	}
}
