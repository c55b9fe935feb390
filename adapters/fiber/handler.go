package fiber

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/nbarth/gatehouse/core"
)

// cookieName is the HTTP-only cookie carrying the token for browser
// clients that do not set the Authorization header themselves.
const cookieName = "access_token"

// signUp handles POST /api/auth/signup
func (a *Adapter) signUp(c fiber.Ctx) error {
	var input core.SignUpInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if _, err := a.auth.SignUp(c.Context(), input); err != nil {
		return handleError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "user created successfully",
	})
}

// signIn handles POST /api/auth/signin
func (a *Adapter) signIn(c fiber.Ctx) error {
	var input core.SignInInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	result, err := a.auth.SignIn(c.Context(), input)
	if err != nil {
		return handleError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     cookieName,
		Value:    result.Token,
		HTTPOnly: true,
	})

	return c.Status(http.StatusOK).JSON(result)
}

// userInfo handles GET /api/user-info
func (a *Adapter) userInfo(c fiber.Ctx) error {
	user, err := a.auth.CurrentUser(c.Context(), subject(c))
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(user)
}

// userImage handles GET /api/user-image
func (a *Adapter) userImage(c fiber.Ctx) error {
	locator, err := a.assets.Image(c.Context(), subject(c))
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(core.UploadResult{Image: locator})
}

// upload handles POST /api/upload (multipart, single "image" field)
func (a *Adapter) upload(c fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return handleError(c, core.ErrNoFile)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return handleError(c, core.ErrNoFile)
	}
	defer file.Close()

	locator, err := a.assets.Bind(
		c.Context(),
		subject(c),
		fileHeader.Filename,
		fileHeader.Header.Get(fiber.HeaderContentType),
		file,
	)
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(core.UploadResult{Image: locator})
}

// handleError maps domain errors to HTTP responses. Internal failures
// collapse to a generic message so storage details never reach clients.
func handleError(c fiber.Ctx, err error) error {
	status := mapErrorToStatus(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal server error"
	}
	return c.Status(status).JSON(fiber.Map{
		"error": msg,
	})
}

// mapErrorToStatus maps the error taxonomy to HTTP status codes
func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, core.ErrUsernameRequired),
		errors.Is(err, core.ErrEmailRequired),
		errors.Is(err, core.ErrPasswordRequired),
		errors.Is(err, core.ErrNoFile):
		return http.StatusBadRequest

	case errors.Is(err, core.ErrInvalidCredentials),
		errors.Is(err, core.ErrMissingCredential):
		return http.StatusUnauthorized

	case errors.Is(err, core.ErrInvalidToken):
		return http.StatusForbidden

	case errors.Is(err, core.ErrUserNotFound),
		errors.Is(err, core.ErrNoImage):
		return http.StatusNotFound

	case errors.Is(err, core.ErrUserExists):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}
