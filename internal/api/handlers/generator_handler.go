package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ngodingskuyy/doctypes-go/internal/application"
	"github.com/ngodingskuyy/doctypes-go/pkg/response"
	"gorm.io/gorm"
)

type GeneratorHandler struct {
	service *application.GeneratorService
}

func NewGeneratorHandler(service *application.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: service}
}

// GenerationResult is the per-artifact API shape: either a rendered artifact
// or that artifact's error, never both.
type GenerationResult struct {
	Path          string `json:"path,omitempty"`
	Content       string `json:"content,omitempty"`
	ExistedBefore bool   `json:"existed_before,omitempty"`
	Error         string `json:"error,omitempty"`
}

// POST /doctypes/name/:name/generate?types=model,request&force=true&preview=false
func (h *GeneratorHandler) Generate(c *gin.Context) {
	var typeNames []string
	if raw := c.Query("types"); raw != "" {
		typeNames = strings.Split(raw, ",")
	}

	types, err := h.service.ParseTypes(typeNames)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	force, _ := strconv.ParseBool(c.Query("force"))
	preview, _ := strconv.ParseBool(c.Query("preview"))

	results, err := h.service.Generate(c.Param("name"), types, force, preview)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Doctype not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	out := make(map[string]GenerationResult, len(results))
	for t, result := range results {
		if result.Err != nil {
			out[string(t)] = GenerationResult{Error: result.Err.Error()}
			continue
		}
		gr := GenerationResult{
			Path:          result.Artifact.Path,
			ExistedBefore: result.Artifact.ExistedBefore,
		}
		if preview {
			gr.Content = result.Artifact.Content
		}
		out[string(t)] = gr
	}

	status := http.StatusOK
	for _, r := range out {
		if r.Error != "" {
			status = http.StatusMultiStatus
			break
		}
	}
	c.JSON(status, gin.H{"results": out})
}
