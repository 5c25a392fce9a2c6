package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/example/qaforum/internal/middleware"
	"github.com/example/qaforum/internal/models"
	"github.com/example/qaforum/internal/store"
	"github.com/example/qaforum/internal/utils"
)

const maxTitleLength = 100

// QuestionHandler serves the listing, detail, posting and search
// endpoints.
type QuestionHandler struct {
	store store.Store
}

// NewQuestionHandler constructs a QuestionHandler.
func NewQuestionHandler(st store.Store) *QuestionHandler {
	return &QuestionHandler{store: st}
}

// List returns questions ordered by recency, newest first.
func (h *QuestionHandler) List(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)

	total, err := h.store.CountQuestions()
	if err != nil {
		return err
	}

	questions, err := h.store.ListQuestions(pg.Limit, pg.Offset)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    questions,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// Detail shows a question together with its answers and answer count.
func (h *QuestionHandler) Detail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid question id")
	}

	question, err := h.store.FindQuestionByID(uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "question not found")
		}
		return err
	}

	answers, err := h.store.FindAnswersForQuestion(question.ID)
	if err != nil {
		return err
	}

	count, err := h.store.CountAnswers(question.ID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"question":     question,
			"answers":      answers,
			"answer_count": count,
		},
	})
}

type createQuestionRequest struct {
	Title   string `json:"title" form:"title"`
	Content string `json:"content" form:"content"`
}

// NewQuestionForm describes the new-question form.
func (h *QuestionHandler) NewQuestionForm(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"fields":  []string{"title", "content"},
	})
}

// CreateQuestion posts a new question authored by the current user.
func (h *QuestionHandler) CreateQuestion(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req createQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Title == "" || req.Content == "" {
		return fiber.NewError(fiber.StatusBadRequest, "title and content are required")
	}

	if len(req.Title) > maxTitleLength {
		return fiber.NewError(fiber.StatusBadRequest, "title is too long")
	}

	question := models.Question{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: user.ID,
	}

	if err := h.store.CreateQuestion(&question); err != nil {
		return err
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

type addAnswerRequest struct {
	Content    string `json:"answer_content" form:"answer_content"`
	QuestionID uint   `json:"question_id" form:"question_id"`
}

// AddAnswer posts an answer to an existing question and returns to its
// detail view. A missing question yields 404 rather than a dangling
// insert.
func (h *QuestionHandler) AddAnswer(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req addAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Content == "" || req.QuestionID == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "answer_content and question_id are required")
	}

	question, err := h.store.FindQuestionByID(req.QuestionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "question not found")
		}
		return err
	}

	answer := models.Answer{
		Content:    req.Content,
		QuestionID: question.ID,
		AuthorID:   user.ID,
	}

	if err := h.store.CreateAnswer(&answer); err != nil {
		return err
	}

	return c.Redirect(fmt.Sprintf("/detail/%d", question.ID), fiber.StatusSeeOther)
}

// Search returns questions whose title or content contains the query
// term as a substring. An empty term behaves like the listing and
// matches everything.
func (h *QuestionHandler) Search(c *fiber.Ctx) error {
	questions, err := h.store.SearchQuestions(c.Query("q"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": questions})
}

// MyQuestions lists the questions authored by the current user.
func (h *QuestionHandler) MyQuestions(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	questions, err := h.store.FindQuestionsByAuthor(user.ID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": questions})
}
