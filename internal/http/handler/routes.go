package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"

	"filedepot"
	"filedepot/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Handlers
// stay minimal: extract inputs, call one service operation, map the outcome.
func RegisterRoutes(app *fiber.App, db *sql.DB, fileSvc service.FileService, recordSvc service.RecordService, reg *prometheus.Registry) {
	// Serve OpenAPI spec and Swagger UI. The spec is embedded in the
	// binary, so serving it does not depend on the working directory.
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		spec, err := filedepot.OpenAPIFS.ReadFile("openapi.yaml")
		if err != nil {
			return fiber.ErrInternalServerError
		}
		c.Type("yaml")
		return c.Send(spec)
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())
	if reg != nil {
		app.Get("/metrics", Metrics(reg))
	}

	// Object storage surface
	app.Get("/files", ListFiles(fileSvc))
	app.Get("/download/:filename", DownloadLink(fileSvc))
	app.Post("/upload", UploadFile(fileSvc))
	app.Delete("/delete/:filename", DeleteFile(fileSvc))
	app.Get("/file_metadata", ListFileMetadata(fileSvc))

	// Demonstration table CRUD
	app.Get("/", ListRecords(recordSvc))
	app.Get("/read/:id", ReadRecord(recordSvc))
	app.Post("/create", CreateRecord(recordSvc))
	app.Put("/update/:id", UpdateRecord(recordSvc))
	app.Delete("/delete_record/:id", DeleteRecord(recordSvc))
}
