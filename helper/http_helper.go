package helper

import (
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"diskusi-bisnis/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"
)

const internalErrorMessage = "Internal server error"

// HTTPHelper ...
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
	// ExposeErrors adds the underlying error text to 500 responses.
	ExposeErrors bool
	Logger       *slog.Logger
}

// NewHTTPHelper builds a helper with an English validation translator.
func NewHTTPHelper(exposeErrors bool, logger *slog.Logger) *HTTPHelper {
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")

	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = en_translations.RegisterDefaultTranslations(validate, trans)

	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPHelper{Validate: validate, Translator: trans, ExposeErrors: exposeErrors, Logger: logger}
}

// GetStatusCode ...
func (u *HTTPHelper) GetStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// BindJSON decodes the body into req and validates it. On failure the error
// response has already been written and false is returned.
func (u *HTTPHelper) BindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		u.SendBadRequest(c, "Invalid request body")
		return false
	}
	if err := u.Validate.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			u.SendValidationError(c, validationErrors)
			return false
		}
		u.SendBadRequest(c, err.Error())
		return false
	}
	return true
}

// SendSuccess ...
// Send success response to consumers.
func (u *HTTPHelper) SendSuccess(c *gin.Context, message string, data interface{}) {
	u.SendResponse(c, http.StatusOK, message, data)
}

// SendCreated ...
func (u *HTTPHelper) SendCreated(c *gin.Context, message string, data interface{}) {
	u.SendResponse(c, http.StatusCreated, message, data)
}

// SendResponse ...
// Send response
func (u *HTTPHelper) SendResponse(c *gin.Context, code int, message string, data interface{}) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(code, body)
}

// SendError maps err to a status code. Unknown errors become a generic 500.
func (u *HTTPHelper) SendError(c *gin.Context, err error) {
	code := u.GetStatusCode(err)
	if code != http.StatusInternalServerError {
		var appErr *models.AppError
		message := err.Error()
		if errors.As(err, &appErr) {
			message = appErr.Message
		}
		u.sendFailure(c, code, message, nil)
		return
	}

	u.Logger.ErrorContext(c.Request.Context(), "request failed",
		"method", c.Request.Method, "path", c.FullPath(), "error", err)

	var extra gin.H
	if u.ExposeErrors {
		extra = gin.H{"error": err.Error()}
	}
	u.sendFailure(c, code, internalErrorMessage, extra)
}

// SendBadRequest ...
// Send bad request response to consumers.
func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string) {
	u.sendFailure(c, http.StatusBadRequest, message, nil)
}

// SendUnauthorizedError ...
func (u *HTTPHelper) SendUnauthorizedError(c *gin.Context, message string) {
	u.sendFailure(c, http.StatusUnauthorized, message, nil)
}

// SendForbiddenError ...
func (u *HTTPHelper) SendForbiddenError(c *gin.Context, message string) {
	u.sendFailure(c, http.StatusForbidden, message, nil)
}

// SendNotFoundError ...
func (u *HTTPHelper) SendNotFoundError(c *gin.Context, message string) {
	u.sendFailure(c, http.StatusNotFound, message, nil)
}

// SendValidationError ...
// Send validation error response to consumers.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) {
	errorResponse := map[string][]string{}
	errorTranslation := validationErrors.Translate(u.Translator)
	for _, err := range validationErrors {
		errKey := Underscore(err.StructField())
		errorResponse[errKey] = append(errorResponse[errKey], errorTranslation[err.Namespace()])
	}

	u.sendFailure(c, http.StatusBadRequest, "Validation failed", gin.H{"errors": errorResponse})
}

func (u *HTTPHelper) sendFailure(c *gin.Context, code int, message string, extra gin.H) {
	body := gin.H{"success": false, "message": message}
	for k, v := range extra {
		body[k] = v
	}
	c.AbortWithStatusJSON(code, body)
}
