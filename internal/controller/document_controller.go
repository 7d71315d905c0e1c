package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"legal-assistant-be/internal/dto"
	"legal-assistant-be/internal/pkg/serverutils"
	"legal-assistant-be/internal/service"
)

type IDocumentController interface {
	RegisterRoutes(r fiber.Router)
	CreateDecision(ctx *fiber.Ctx) error
	ListDecisions(ctx *fiber.Ctx) error
	ShowDecision(ctx *fiber.Ctx) error
	ListStatutes(ctx *fiber.Ctx) error
}

type documentController struct {
	documentService service.IDocumentService
}

func NewDocumentController(documentService service.IDocumentService) IDocumentController {
	return &documentController{
		documentService: documentService,
	}
}

func (c *documentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/document/v1")
	h.Post("decision", c.CreateDecision)
	h.Get("decisions", c.ListDecisions)
	h.Get("decision/:id", c.ShowDecision)
	h.Get("statutes", c.ListStatutes)
}

func (c *documentController) CreateDecision(ctx *fiber.Ctx) error {
	var req dto.CreateDecisionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	res, err := c.documentService.CreateDecision(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create decision", res))
}

func (c *documentController) ListDecisions(ctx *fiber.Ctx) error {
	res, err := c.documentService.ListDecisions(ctx.Context(), ctx.Query("query"), ctx.QueryInt("limit"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list decisions", res))
}

func (c *documentController) ShowDecision(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Geçersiz karar kimliği")
	}

	res, err := c.documentService.GetDecision(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show decision", res))
}

func (c *documentController) ListStatutes(ctx *fiber.Ctx) error {
	res, err := c.documentService.ListStatutes(ctx.Context(), ctx.Query("query"), ctx.QueryInt("limit"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list statutes", res))
}
