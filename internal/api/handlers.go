package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"codegen/internal/pipeline"
)

// Runner is the part of pipeline.CodeGenerator the handlers need.
type Runner interface {
	Run(ctx context.Context, userInput string, mode pipeline.Mode) (*pipeline.Result, error)
}

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	pipeline Runner
	logger   *zap.Logger
}

// NewAPIHandler initializes a new API handler with its dependencies.
func NewAPIHandler(p Runner, logger *zap.Logger) *APIHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &APIHandler{
		pipeline: p,
		logger:   logger,
	}
}

// --- Structs for API Requests/Responses ---

type GenerateRequest struct {
	Prompt string `json:"prompt" binding:"required"`
	Mode   string `json:"mode"` // defaults to requirements
}

type PhaseResponse struct {
	Phase    string `json:"phase"`
	Commands int    `json:"commands"`
	Folders  int    `json:"folders"`
	Files    int    `json:"files"`
}

type GenerateResponse struct {
	ProjectDir             string          `json:"projectDir,omitempty"`
	FunctionalRequirements string          `json:"functionalRequirements"`
	TechnicalRequirements  string          `json:"technicalRequirements"`
	Phases                 []PhaseResponse `json:"phases"`
}

// --- API Handlers ---

// POST /project/generate
func (h *APIHandler) GenerateProject(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if strings.TrimSpace(req.Mode) == "" {
		req.Mode = string(pipeline.ModeRequirements)
	}
	mode, err := pipeline.ParseMode(req.Mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.logger.Info("Received generation request", zap.String("mode", string(mode)))
	res, err := h.pipeline.Run(c.Request.Context(), req.Prompt, mode)
	if err != nil {
		h.logger.Error("Generation failed", zap.Error(err))
		body := gin.H{"error": "Failed to generate project: " + err.Error()}
		if res != nil && res.ProjectDir != "" {
			body["projectDir"] = res.ProjectDir
		}
		c.JSON(http.StatusInternalServerError, body)
		return
	}

	resp := GenerateResponse{
		ProjectDir:             res.ProjectDir,
		FunctionalRequirements: res.FunctionalRequirements,
		TechnicalRequirements:  res.TechnicalRequirements,
		Phases:                 []PhaseResponse{},
	}
	for _, p := range res.Phases {
		pr := PhaseResponse{Phase: p.Phase}
		if p.Report != nil {
			pr.Commands, pr.Folders, pr.Files = len(p.Report.Commands), len(p.Report.Folders), len(p.Report.Files)
		}
		resp.Phases = append(resp.Phases, pr)
	}
	c.JSON(http.StatusCreated, resp)
}
