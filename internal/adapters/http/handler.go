package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/randomtoy/menu-designer/internal/app"
	"github.com/randomtoy/menu-designer/internal/domain"
)

type Handler struct {
	svc *app.MenuService
}

func NewHandler(svc *app.MenuService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)

	v1 := e.Group("/v1")
	v1.GET("/catalog", h.Catalog)
	v1.POST("/menus", h.GenerateMenu)
	v1.POST("/sessions", h.CreateSession)
	v1.GET("/sessions/:id", h.GetSession)
	v1.PUT("/sessions/:id/config", h.Configure)
	v1.POST("/sessions/:id/generate", h.GenerateForSession)
	v1.DELETE("/sessions/:id/menu", h.ClearMenu)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) Catalog(c echo.Context) error {
	info, err := h.svc.CatalogInfo(c.Request().Context())
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, CatalogResponse{
		Cuisines:   info.Cuisines,
		Categories: info.Categories,
		Limits: LimitsResp{
			MaxCategories: info.Limits.MaxCategories,
			MaxDishes:     info.Limits.MaxDishes,
		},
	})
}

func (h *Handler) GenerateMenu(c echo.Context) error {
	var req ConfigRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	menu, err := h.svc.Generate(c.Request().Context(), app.GenerateRequest{
		Config: req.toConfiguration(domain.DefaultConfiguration()),
		Seed:   req.Seed,
	})
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusOK, MenuResponse{
		Menu: menu,
		Meta: MetaResp{RequestID: requestID(c), Seed: req.Seed},
	})
}

func (h *Handler) CreateSession(c echo.Context) error {
	sess, err := h.svc.CreateSession(c.Request().Context())
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusCreated, toSessionResponse(sess, requestID(c), nil))
}

func (h *Handler) GetSession(c echo.Context) error {
	sess, err := h.svc.GetSession(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, toSessionResponse(sess, requestID(c), nil))
}

func (h *Handler) Configure(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	var req ConfigRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	current, err := h.svc.GetSession(ctx, id)
	if err != nil {
		return mapError(c, err)
	}

	sess, err := h.svc.Configure(ctx, id, req.toConfiguration(current.Config))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, toSessionResponse(sess, requestID(c), nil))
}

func (h *Handler) GenerateForSession(c echo.Context) error {
	var seed *uint64
	if raw := c.QueryParam("seed"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "seed must be a non-negative integer"})
		}
		seed = &parsed
	}

	sess, err := h.svc.GenerateForSession(c.Request().Context(), c.Param("id"), seed)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, toSessionResponse(sess, requestID(c), seed))
}

func (h *Handler) ClearMenu(c echo.Context) error {
	sess, err := h.svc.ClearMenu(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, toSessionResponse(sess, requestID(c), nil))
}

// toConfiguration overlays the request on base. Names are always taken from
// the request; counts only when present.
func (r ConfigRequest) toConfiguration(base domain.Configuration) domain.Configuration {
	cfg := domain.Configuration{
		RestaurantName:    r.RestaurantName,
		CuisineType:       r.CuisineType,
		CategoryCount:     base.CategoryCount,
		DishesPerCategory: base.DishesPerCategory,
	}
	if r.CategoryCount != nil {
		cfg.CategoryCount = *r.CategoryCount
	}
	if r.DishesPerCategory != nil {
		cfg.DishesPerCategory = *r.DishesPerCategory
	}
	return cfg
}

func toSessionResponse(s domain.Session, requestID string, seed *uint64) SessionResponse {
	return SessionResponse{
		ID:        s.ID,
		Config:    s.Config,
		Menu:      s.Menu,
		UpdatedAt: s.UpdatedAt.UTC().Format(time.RFC3339),
		Meta:      MetaResp{RequestID: requestID, Seed: seed},
	}
}

func requestID(c echo.Context) string {
	id, _ := c.Get("request_id").(string)
	return id
}

func mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: domain.ErrSessionNotFound.Error()})
	default:
		slog.Error("internal error", "request_id", requestID(c), "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
