package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/caretide/caretide_backend/internal/service/user"
	pasetotoken "github.com/caretide/caretide_backend/pkg/paseto"
)

type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

func mapUserError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, user.ErrEmailTaken):
		return conflict(c, err.Error())
	case errors.Is(err, user.ErrEmailRequired), errors.Is(err, user.ErrInvalidRole):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /users/create
func (h *UserHandler) Create(c fiber.Ctx) error {
	var body struct {
		Email         string  `json:"email"`
		Password      *string `json:"password"`
		FirstName     string  `json:"first_name"`
		LastName      string  `json:"last_name"`
		Role          *string `json:"role"`
		Department    *string `json:"department"`
		LicenseNumber *string `json:"license_number"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.FirstName == "" || body.LastName == "" {
		return badRequest(c, "first_name and last_name are required")
	}

	req := user.CreateUserRequest{
		Email:         body.Email,
		Password:      body.Password,
		FirstName:     body.FirstName,
		LastName:      body.LastName,
		Role:          body.Role,
		Department:    body.Department,
		LicenseNumber: body.LicenseNumber,
	}
	if claims, found := pasetotoken.ClaimsFromFiber(c); found {
		creator := claims.UserID
		req.CreatedBy = &creator
	}

	u, err := h.svc.Create(c.Context(), req)
	if err != nil {
		return mapUserError(c, err)
	}

	return created(c, "user created", u)
}

// POST /users/list
func (h *UserHandler) List(c fiber.Ctx) error {
	var body struct {
		Page            int     `json:"page"`
		Limit           int     `json:"limit"`
		Search          *string `json:"search"`
		Role            *string `json:"role"`
		IncludeInactive bool    `json:"include_inactive"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	result, err := h.svc.List(c.Context(), user.ListUsersRequest{
		Page:            body.Page,
		Limit:           body.Limit,
		Search:          body.Search,
		Role:            body.Role,
		IncludeInactive: body.IncludeInactive,
	})
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, "users retrieved", result)
}

// GET /users/:id
func (h *UserHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	u, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, "user retrieved", u)
}

// PATCH /users/:id
func (h *UserHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	var body struct {
		FirstName     *string `json:"first_name"`
		LastName      *string `json:"last_name"`
		Role          *string `json:"role"`
		Department    *string `json:"department"`
		LicenseNumber *string `json:"license_number"`
		IsActive      *bool   `json:"is_active"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	u, err := h.svc.Update(c.Context(), id, user.UpdateUserRequest{
		FirstName:     body.FirstName,
		LastName:      body.LastName,
		Role:          body.Role,
		Department:    body.Department,
		LicenseNumber: body.LicenseNumber,
		IsActive:      body.IsActive,
	})
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, "user updated", u)
}

// DELETE /users/:id
func (h *UserHandler) Deactivate(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	if err := h.svc.Deactivate(c.Context(), id); err != nil {
		return mapUserError(c, err)
	}

	return ok(c, "user deactivated", nil)
}
