package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"plant-exchange/internal/domain"
	"plant-exchange/internal/usecase"
)

type Handler struct {
	auth   *usecase.AuthUsecase
	plants *usecase.PlantUsecase
	logger *zap.Logger
}

func NewHandler(auth *usecase.AuthUsecase, plants *usecase.PlantUsecase, logger *zap.Logger) *Handler {
	return &Handler{auth: auth, plants: plants, logger: logger}
}

// Register wires all routes under the /api prefix.
func (h *Handler) Register(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/", h.Root)
	api.GET("/sample-images", h.SampleImages)
	api.POST("/register", h.RegisterUser)
	api.POST("/login", h.Login)

	protected := api.Group("", h.RequireAuth)
	protected.GET("/me", h.Me)
	protected.POST("/plants", h.CreatePlant)
	protected.GET("/plants", h.ListPlants)
	protected.GET("/plants/my", h.ListMyPlants)
	protected.POST("/plants/:id/like", h.LikePlant)
	protected.DELETE("/plants/:id/like", h.UnlikePlant)
	protected.GET("/plants/:id/likes", h.PlantLikes)
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r registerRequest) validate() error {
	if r.Username == "" || r.Email == "" || r.Password == "" {
		return errors.New("username, email and password are required")
	}
	return nil
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r loginRequest) validate() error {
	if r.Username == "" || r.Password == "" {
		return errors.New("username and password are required")
	}
	return nil
}

type createPlantRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	PhotoURL    string  `json:"photo_url"`
}

func (r createPlantRequest) validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	if r.PhotoURL == "" {
		return errors.New("photo_url is required")
	}
	if r.Price < 0 {
		return errors.New("price must not be negative")
	}
	return nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type plantResponse struct {
	domain.Plant
	IsLikedByUser bool `json:"is_liked_by_user"`
}

type plantLikesResponse struct {
	PlantID    string          `json:"plant_id"`
	LikesCount int             `json:"likes_count"`
	LikedBy    []usecase.Liker `json:"liked_by"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (h *Handler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "Plant Exchange API"})
}

func (h *Handler) SampleImages(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string][]string{"images": samplePlantImages})
}

func (h *Handler) RegisterUser(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Detail: "invalid request body"})
	}
	if err := req.validate(); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Detail: err.Error()})
	}

	token, err := h.auth.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return h.domainError(c, err)
	}
	return c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Detail: "invalid request body"})
	}
	if err := req.validate(); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Detail: err.Error()})
	}

	token, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return h.domainError(c, err)
	}
	return c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (h *Handler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, currentUser(c))
}

func (h *Handler) CreatePlant(c echo.Context) error {
	var req createPlantRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Detail: "invalid request body"})
	}
	if err := req.validate(); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Detail: err.Error()})
	}

	plant, err := h.plants.Create(c.Request().Context(), currentUser(c), req.Name, req.Description, req.Price, req.PhotoURL)
	if err != nil {
		return h.domainError(c, err)
	}
	return c.JSON(http.StatusOK, plantResponse{Plant: *plant})
}

func (h *Handler) ListPlants(c echo.Context) error {
	plants, err := h.plants.ListAll(c.Request().Context(), currentUser(c).ID)
	if err != nil {
		return h.domainError(c, err)
	}

	out := make([]plantResponse, 0, len(plants))
	for _, p := range plants {
		out = append(out, plantResponse{Plant: p.Plant, IsLikedByUser: p.IsLikedByUser})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) ListMyPlants(c echo.Context) error {
	plants, err := h.plants.ListOwned(c.Request().Context(), currentUser(c).ID)
	if err != nil {
		return h.domainError(c, err)
	}

	out := make([]plantResponse, 0, len(plants))
	for _, p := range plants {
		out = append(out, plantResponse{Plant: p})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) LikePlant(c echo.Context) error {
	if err := h.plants.Like(c.Request().Context(), currentUser(c).ID, c.Param("id")); err != nil {
		return h.domainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Plant liked successfully"})
}

func (h *Handler) UnlikePlant(c echo.Context) error {
	if err := h.plants.Unlike(c.Request().Context(), currentUser(c).ID, c.Param("id")); err != nil {
		return h.domainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Plant unliked successfully"})
}

func (h *Handler) PlantLikes(c echo.Context) error {
	likes, err := h.plants.Likes(c.Request().Context(), currentUser(c).ID, c.Param("id"))
	if err != nil {
		return h.domainError(c, err)
	}
	return c.JSON(http.StatusOK, plantLikesResponse{
		PlantID:    likes.PlantID,
		LikesCount: likes.LikesCount,
		LikedBy:    likes.LikedBy,
	})
}

// domainError maps the domain error taxonomy onto HTTP statuses. Anything
// outside the taxonomy is a store or programming failure and stays opaque.
func (h *Handler) domainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrUserExists),
		errors.Is(err, domain.ErrAlreadyLiked),
		errors.Is(err, domain.ErrNotLiked):
		return c.JSON(http.StatusBadRequest, errorResponse{Detail: err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrInvalidToken):
		return c.JSON(http.StatusUnauthorized, errorResponse{Detail: err.Error()})
	case errors.Is(err, domain.ErrNotOwner):
		return c.JSON(http.StatusForbidden, errorResponse{Detail: err.Error()})
	case errors.Is(err, domain.ErrPlantNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Detail: err.Error()})
	default:
		h.logger.Error("request failed",
			zap.String("path", c.Path()),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, errorResponse{Detail: "internal server error"})
	}
}
