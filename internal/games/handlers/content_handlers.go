package handlers

import (
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/architect/soundlearn/internal/catalog"
	"github.com/architect/soundlearn/internal/common/errors"
	"github.com/architect/soundlearn/internal/common/middleware"
	"github.com/architect/soundlearn/internal/common/validation"
	"github.com/architect/soundlearn/internal/games/mathlearning"
	"github.com/architect/soundlearn/internal/games/quiz"
)

// ContentHandler generates quiz rounds and math problems on request.
type ContentHandler struct {
	catalog *catalog.Catalog

	mu  sync.Mutex
	rng *rand.Rand
}

func NewContentHandler(cat *catalog.Catalog, rng *rand.Rand) *ContentHandler {
	if cat == nil {
		cat = catalog.Default
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &ContentHandler{catalog: cat, rng: rng}
}

type QuizRequest struct {
	Category   string `json:"category" binding:"required"`
	Difficulty string `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
}

type QuizResponse struct {
	Category   catalog.Category `json:"category"`
	Difficulty quiz.Difficulty  `json:"difficulty"`
	Questions  []quiz.Question  `json:"questions"`
}

type MathRequest struct {
	Family string `json:"family" binding:"required,oneof=counting addition patterns comparison"`
	Count  int    `json:"count" binding:"omitempty,min=1,max=20"`
}

type MathResponse struct {
	Problems []mathlearning.Problem `json:"problems"`
}

// Register mounts the content routes on r.
func (h *ContentHandler) Register(r gin.IRouter) {
	r.POST("/quiz/questions", h.QuizQuestions)
	r.POST("/math/problems", h.MathProblems)
}

// QuizQuestions builds one quiz round for a category
func (h *ContentHandler) QuizQuestions(c *gin.Context) {
	var req QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, validation.FromBinding(err))
		return
	}
	category, err := catalog.ParseCategory(req.Category)
	if err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("validation failed", err.Error()))
		return
	}
	difficulty := quiz.Easy
	if req.Difficulty != "" {
		difficulty = quiz.Difficulty(req.Difficulty)
	}

	h.mu.Lock()
	questions, err := quiz.Generate(h.rng, h.catalog, category, difficulty)
	h.mu.Unlock()
	if err != nil {
		middleware.JSONErrorResponse(c, errors.Internal("failed to generate quiz", err.Error()))
		return
	}
	c.JSON(http.StatusOK, QuizResponse{Category: category, Difficulty: difficulty, Questions: questions})
}

// MathProblems builds problems of one family
func (h *ContentHandler) MathProblems(c *gin.Context) {
	var req MathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, validation.FromBinding(err))
		return
	}
	if req.Count == 0 {
		req.Count = 1
	}

	problems := make([]mathlearning.Problem, 0, req.Count)
	h.mu.Lock()
	defer h.mu.Unlock()
	for i := 0; i < req.Count; i++ {
		p, err := mathlearning.Generate(h.rng, mathlearning.Family(req.Family))
		if err != nil {
			middleware.JSONErrorResponse(c, errors.Validation("validation failed", err.Error()))
			return
		}
		problems = append(problems, p)
	}
	c.JSON(http.StatusOK, MathResponse{Problems: problems})
}
