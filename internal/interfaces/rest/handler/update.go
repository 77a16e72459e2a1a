package handler

import (
	"github.com/mauops/mau-backend/internal/logic"
	"github.com/mauops/mau-backend/internal/model"
	"github.com/mauops/mau-backend/internal/pkg/errs"
	"github.com/mauops/mau-backend/internal/pkg/restserver/response"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type UpdateHandler struct {
	logger        *zap.Logger
	resolverLogic *logic.ResolverLogic
}

func NewUpdateHandler(logger *zap.Logger, resolverLogic *logic.ResolverLogic) *UpdateHandler {
	return &UpdateHandler{
		logger:        logger,
		resolverLogic: resolverLogic,
	}
}

func (h *UpdateHandler) Register(r fiber.Router) {
	r.Get("/api/v1/products", h.ListProducts)
	r.Get("/api/v1/products/:product/updates/latest", h.GetLatest)
}

func (h *UpdateHandler) ListProducts(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(response.Success(h.resolverLogic.Products()))
}

func (h *UpdateHandler) GetLatest(c *fiber.Ctx) error {
	req := &model.GetLatestUpdateRequest{
		Product: c.Params("product"),
		Version: model.SelectorLatest,
	}
	if err := c.QueryParser(req); err != nil {
		return errs.ErrInvalidParams.Wrap(err)
	}
	if req.Product == "" {
		return errs.ErrInvalidParams.WithDetails("product is required")
	}

	res, err := h.resolverLogic.ResolveLatest(c.UserContext(), req.Product, req.Version)
	if err != nil {
		return err
	}

	h.logger.Info("resolved latest update",
		zap.String("product", req.Product),
		zap.String("version", res.Version),
		zap.String("url", res.URL),
	)
	return c.Status(fiber.StatusOK).JSON(response.Success(res))
}
