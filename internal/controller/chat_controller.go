package controller

import (
	"healthsphere-ml-be/internal/dto"
	"healthsphere-ml-be/internal/pkg/serverutils"
	"healthsphere-ml-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Message(ctx *fiber.Ctx) error
	StartConversation(ctx *fiber.Ctx) error
	ConversationHistory(ctx *fiber.Ctx) error
	DeleteConversation(ctx *fiber.Ctx) error
	Contexts(ctx *fiber.Ctx) error
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
	h := r.Group("/chat")
	h.Post("", c.Message)
	h.Post("/conversation", c.StartConversation)
	h.Get("/conversation/:id", c.ConversationHistory)
	h.Delete("/conversation/:id", c.DeleteConversation)
	h.Get("/contexts", c.Contexts)
}

func (c *chatController) Message(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("invalid request body: %v", err)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.ProcessMessage(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(res))
}

// StartConversation accepts user_id and context as query parameters or as a
// JSON body; query values fill fields the body left empty.
func (c *chatController) StartConversation(ctx *fiber.Ctx) error {
	var req dto.StartConversationRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return serverutils.NewValidationError("invalid request body: %v", err)
		}
	}
	if req.UserId == "" {
		req.UserId = ctx.Query("user_id")
	}
	if req.Context == "" {
		req.Context = ctx.Query("context")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.StartConversation(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *chatController) ConversationHistory(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	res, err := c.chatService.GetConversationHistory(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *chatController) DeleteConversation(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	if err := c.chatService.DeleteConversation(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.MessageResponse("Conversation deleted successfully"))
}

func (c *chatController) Contexts(ctx *fiber.Ctx) error {
	res, err := c.chatService.GetAvailableContexts(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(res))
}
