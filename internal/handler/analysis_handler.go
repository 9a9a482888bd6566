package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ridelog/faff-backend-go/internal/analysis"
	"github.com/ridelog/faff-backend-go/internal/config"
	"github.com/ridelog/faff-backend-go/internal/models"
	"github.com/ridelog/faff-backend-go/internal/service"
	"github.com/ridelog/faff-backend-go/pkg/response"
)

// AnalysisHandler handles HTTP requests for activity analysis.
type AnalysisHandler struct {
	service *service.AnalysisService
	cfg     *config.Config
}

// NewAnalysisHandler creates a new analysis handler.
func NewAnalysisHandler(svc *service.AnalysisService, cfg *config.Config) *AnalysisHandler {
	return &AnalysisHandler{service: svc, cfg: cfg}
}

// Analyze handles POST /api/v1/activities/analyze. The FIT file arrives
// as the multipart "file" field; options as form or query parameters:
// buckets (comma-separated tags), gap_threshold_ms, split.
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	opts, err := h.parseOptions(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Missing 'file' upload field", err)
		return
	}
	defer file.Close()

	if header.Size > h.cfg.MaxUploadBytes {
		response.Error(c, http.StatusRequestEntityTooLarge, "FIT file too large", nil)
		return
	}

	result, err := h.service.AnalyzeFIT(file, opts)
	if err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "Failed to parse FIT file", err)
		return
	}

	response.Success(c, result)
}

// ListBuckets handles GET /api/v1/buckets.
func (h *AnalysisHandler) ListBuckets(c *gin.Context) {
	buckets := make([]gin.H, 0, len(models.AllBuckets))
	for _, b := range models.AllBuckets {
		buckets = append(buckets, gin.H{
			"tag":   string(b),
			"label": b.Label(),
		})
	}
	response.Success(c, gin.H{"buckets": buckets})
}

// parseOptions builds engine options from the request, falling back to
// the configured defaults. Unknown bucket tags are rejected here so a
// frontend typo surfaces as a 400 instead of a silently empty result.
func (h *AnalysisHandler) parseOptions(c *gin.Context) (analysis.Options, error) {
	opts := analysis.Options{GapThreshold: h.cfg.GapThreshold}
	opts.Split, _ = analysis.ParseSplitPolicy(h.cfg.SplitPolicy)

	for _, tag := range strings.Split(param(c, "buckets"), ",") {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		b, ok := models.ParseBucket(tag)
		if !ok {
			return opts, &optionError{"unknown bucket tag: " + tag}
		}
		opts.Buckets = append(opts.Buckets, b)
	}

	if raw := param(c, "gap_threshold_ms"); raw != "" {
		ms, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || ms <= 0 {
			return opts, &optionError{"gap_threshold_ms must be a positive integer"}
		}
		opts.GapThreshold = time.Duration(ms) * time.Millisecond
	}

	if raw := param(c, "split"); raw != "" {
		split, ok := analysis.ParseSplitPolicy(raw)
		if !ok {
			return opts, &optionError{"split must be 'simple' or 'gap-aware'"}
		}
		opts.Split = split
	}

	return opts, nil
}

// param reads a request parameter from the multipart form first, then the
// query string.
func param(c *gin.Context, name string) string {
	if v := c.PostForm(name); v != "" {
		return v
	}
	return c.Query(name)
}

type optionError struct{ msg string }

func (e *optionError) Error() string { return e.msg }
