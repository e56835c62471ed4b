package serve

import (
	"bytes"
	"fmt"

	"github.com/bsthun/gut"
	"github.com/contentmine/cproject"
	"github.com/contentmine/cproject/compat/response"
	"github.com/contentmine/cproject/package/telemetry"
	"github.com/gofiber/fiber/v3"
	"github.com/minio/minio-go/v7"
)

type Handler struct {
	Config    *Config
	Project   *cproject.Project
	Minio     *minio.Client
	Telemetry *telemetry.Telemetry
}

func NewHandler(config *Config, project *cproject.Project, minioClient *minio.Client, tele *telemetry.Telemetry) *Handler {
	return &Handler{
		Config:    config,
		Project:   project,
		Minio:     minioClient,
		Telemetry: tele,
	}
}

func Bind(app *fiber.App, handler *Handler) {
	if handler.Telemetry != nil {
		app.Use(handler.Telemetry.Middleware())
	}

	api := app.Group("/api")
	api.Get("/project", handler.HandleProject)
	api.Get("/ctrees", handler.HandleCTreeList)
	api.Get("/ctrees/:id", handler.HandleCTreeGet)
	api.Get("/ctrees/:id/metadata", handler.HandleCTreeMetadata)
	api.Get("/table", handler.HandleTable)
	api.Post("/publish", handler.HandlePublish, handler.Authenticate)
}

func (r *Handler) HandleProject(c fiber.Ctx) error {
	return c.JSON(response.Success(fiber.Map{
		"name":   r.Project.Name,
		"path":   r.Project.Path,
		"size":   r.Project.Size(),
		"ctrees": r.Project.Order,
	}))
}

func (r *Handler) HandleCTreeList(c fiber.Ctx) error {
	return c.JSON(response.Success(r.Project.Order))
}

func (r *Handler) HandleCTreeGet(c fiber.Ctx) error {
	ctree := r.Project.CTree(c.Params("id"))
	if ctree == nil {
		return fiber.NewError(fiber.StatusNotFound, "ctree not found")
	}

	return c.JSON(response.Success(ctree))
}

func (r *Handler) HandleCTreeMetadata(c fiber.Ctx) error {
	ctree := r.Project.CTree(c.Params("id"))
	if ctree == nil {
		return fiber.NewError(fiber.StatusNotFound, "ctree not found")
	}

	return c.JSON(response.Success(ctree.Metadata()))
}

func (r *Handler) HandleTable(c fiber.Ctx) error {
	// * parse pagination
	paginate := new(response.Paginate)
	if err := c.Bind().Query(paginate); err != nil {
		return err
	}
	if err := gut.Validate(paginate); err != nil {
		return err
	}

	table := r.Project.Table()
	rows := table.Maps()

	// * apply optional windowing
	if paginate.Offset != nil {
		offset := int(*paginate.Offset)
		if offset > len(rows) {
			offset = len(rows)
		}
		rows = rows[offset:]
	}
	if paginate.Limit != nil && int(*paginate.Limit) < len(rows) {
		rows = rows[:int(*paginate.Limit)]
	}

	return c.JSON(response.Success(fiber.Map{
		"columns": table.Columns,
		"rows":    rows,
		"total":   len(table.Rows),
	}))
}

func (r *Handler) HandlePublish(c fiber.Ctx) error {
	if r.Minio == nil || r.Config.MinioBucket == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "object storage not configured")
	}

	// * serialize the flattened table
	var buffer bytes.Buffer
	if err := r.Project.Table().WriteJSON(&buffer); err != nil {
		return err
	}

	// * upload to object storage
	objectName := fmt.Sprintf("%s/table.json", *r.Project.Name)
	info, err := r.Minio.PutObject(
		c.Context(),
		*r.Config.MinioBucket,
		objectName,
		bytes.NewReader(buffer.Bytes()),
		int64(buffer.Len()),
		minio.PutObjectOptions{ContentType: "application/json"},
	)
	if err != nil {
		return fmt.Errorf("failed to upload table dump: %w", err)
	}

	// * count metric
	if r.Telemetry != nil {
		r.Telemetry.Instrument.PublishRecord(c.Context(), *r.Project.Name)
	}

	return c.JSON(response.SuccessMessage("published", fiber.Map{
		"bucket": info.Bucket,
		"key":    info.Key,
		"size":   info.Size,
	}))
}
