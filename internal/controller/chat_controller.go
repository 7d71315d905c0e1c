package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"legal-assistant-be/internal/dto"
	"legal-assistant-be/internal/pkg/serverutils"
	"legal-assistant-be/internal/service"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Send(ctx *fiber.Ctx) error
	CreateConversation(ctx *fiber.Ctx) error
	ListConversations(ctx *fiber.Ctx) error
	ShowConversation(ctx *fiber.Ctx) error
	DeleteConversation(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Post("send", c.Send)
	h.Post("conversation", c.CreateConversation)
	h.Get("conversations", c.ListConversations)
	h.Get("conversation/:id", c.ShowConversation)
	h.Delete("conversation/:id", c.DeleteConversation)
}

func (c *chatController) Send(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdentity(ctx)
	clientIP := serverutils.ClientIP(ctx)

	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Mesaj gerekli")
	}

	res, err := c.chatService.SendChat(ctx.Context(), userId, clientIP, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send chat", res))
}

func (c *chatController) CreateConversation(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdentity(ctx)

	var req dto.CreateConversationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.chatService.CreateConversation(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create conversation", res))
}

func (c *chatController) ListConversations(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdentity(ctx)
	clientIP := serverutils.ClientIP(ctx)

	res, err := c.chatService.GetConversations(ctx.Context(), userId, clientIP)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list conversations", res))
}

func (c *chatController) ShowConversation(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdentity(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Geçersiz konuşma kimliği")
	}

	res, err := c.chatService.GetConversation(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show conversation", res))
}

func (c *chatController) DeleteConversation(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdentity(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Geçersiz konuşma kimliği")
	}

	if err := c.chatService.DeleteConversation(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete conversation", nil))
}
