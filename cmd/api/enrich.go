package main

import (
	"errors"
	"net/http"
	"path"
	"time"

	"github.com/gin-gonic/gin"

	"openelev/internal/enrich"
	"openelev/internal/input"
	"openelev/internal/output"
	"openelev/internal/providers/openelevation"
)

// EnrichResponse is the JSON summary returned for a successful run
type EnrichResponse struct {
	Summary     enrich.Summary `json:"summary"`
	CSVPath     string         `json:"csv_path,omitempty"`
	GeoJSONPath string         `json:"geojson_path,omitempty"`
}

// handleEnrich godoc
// @Summary Enrich uploaded points with elevation data
// @Description Upload a CSV table with coordinate columns or a GeoJSON point collection; every resolvable record is augmented with an elevation from the Open-Elevation lookup service. The download query parameter selects the response encoding.
// @Tags enrich
// @Accept multipart/form-data
// @Produce json
// @Produce text/csv
// @Produce application/geo+json
// @Param file formData file true "CSV or GeoJSON document"
// @Param format formData string false "Input format override" Enums(csv, geojson)
// @Param save formData bool false "Also save both renderings to the configured output directory"
// @Param download query string false "Response encoding" Enums(json, csv, geojson) default(json)
// @Success 200 {object} EnrichResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /enrich [post]
func (app *App) handleEnrich(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file upload"})
		return
	}

	format := input.Format(c.PostForm("format"))
	if format == "" {
		format = input.DetectFormat(fileHeader.Filename)
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open upload"})
		return
	}
	defer func() {
		_ = file.Close()
	}()

	records, err := input.Read(file, format)
	if err != nil {
		if errors.Is(err, input.ErrInvalidFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		app.logger.Error("failed to read upload", "filename", fileHeader.Filename, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload"})
		return
	}

	result, err := app.enrichService.Enrich(c.Request.Context(), records)
	if err != nil {
		var upstream *openelevation.UpstreamError
		if errors.As(err, &upstream) {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		app.logger.Error("enrichment failed", "filename", fileHeader.Filename, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "enrichment failed"})
		return
	}

	csvData, err := output.EncodeCSV(result)
	if err != nil {
		app.logger.Error("failed to render CSV", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render output"})
		return
	}
	geojsonData, err := output.EncodeGeoJSON(result)
	if err != nil {
		app.logger.Error("failed to render GeoJSON", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render output"})
		return
	}

	resp := EnrichResponse{Summary: result.Summary()}

	if c.PostForm("save") == "true" {
		csvPath, geojsonPath, err := output.Save(app.cfg.Output.Dir, csvData, geojsonData, time.Now())
		if err != nil {
			app.logger.Error("failed to save outputs", "dir", app.cfg.Output.Dir, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save outputs"})
			return
		}
		resp.CSVPath = csvPath
		resp.GeoJSONPath = geojsonPath

		if app.archive != nil {
			app.archiveOutputs(c, csvPath, csvData, geojsonPath, geojsonData)
		}
	}

	switch c.DefaultQuery("download", "json") {
	case "csv":
		c.Header("Content-Disposition", `attachment; filename="open_elevation.csv"`)
		c.Data(http.StatusOK, "text/csv", csvData)
	case "geojson":
		c.Header("Content-Disposition", `attachment; filename="open_elevation.geojson"`)
		c.Data(http.StatusOK, "application/geo+json", geojsonData)
	default:
		c.JSON(http.StatusOK, resp)
	}
}

// archiveOutputs mirrors the saved artifacts into the object store. Archive
// problems are logged, not surfaced; the run already succeeded.
func (app *App) archiveOutputs(c *gin.Context, csvPath string, csvData []byte, geojsonPath string, geojsonData []byte) {
	ctx := c.Request.Context()
	if err := app.archive.EnsureBucket(ctx); err != nil {
		app.logger.Error("failed to ensure archive bucket", "error", err)
		return
	}
	if err := app.archive.StoreArtifact(ctx, path.Base(csvPath), csvData, "text/csv"); err != nil {
		app.logger.Error("failed to archive CSV", "error", err)
	}
	if err := app.archive.StoreArtifact(ctx, path.Base(geojsonPath), geojsonData, "application/geo+json"); err != nil {
		app.logger.Error("failed to archive GeoJSON", "error", err)
	}
}
