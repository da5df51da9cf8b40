package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/karla-codes/rest-api/internal/models"
	"github.com/karla-codes/rest-api/pkg/logger"
)

type AccountService interface {
	Register(ctx context.Context, account models.Account, password string) (*models.Account, error)
	Verify(ctx context.Context, emailAddress, password string) (*models.Account, error)
}

type AccountHandler struct {
	log     logger.Log
	service AccountService
	respond *ErrorResponder
}

func NewAccountHandler(l logger.Log, s AccountService, r *ErrorResponder) *AccountHandler {
	return &AccountHandler{
		log:     l,
		service: s,
		respond: r,
	}
}

// Me returns the authenticated account's public fields. Unreachable
// without Authenticate having run first.
func (h *AccountHandler) Me(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Access denied"})
		return
	}

	c.JSON(http.StatusOK, account.Public())
}

type createAccountRequest struct {
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName" binding:"required"`
	EmailAddress string `json:"emailAddress" binding:"required"`
	Password     string `json:"password" binding:"required"`
}

// Create signs up a new account. Duplicate email addresses are not
// pre-checked here; the store's uniqueness constraint surfaces through
// the responder as a 400.
func (h *AccountHandler) Create(c *gin.Context) {
	var input createAccountRequest
	if !bindInput(c, &input) {
		return
	}

	account := models.Account{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		EmailAddress: input.EmailAddress,
	}

	_, err := h.service.Register(c.Request.Context(), account, input.Password)
	if err != nil {
		h.respond.Respond(c, err)
		return
	}

	c.Header("Location", "/")
	c.JSON(http.StatusCreated, gin.H{"message": "Account successfully created!"})
}
