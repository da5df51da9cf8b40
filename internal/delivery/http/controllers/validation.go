package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// requiredFieldMessages maps struct field names to the client-facing
// validation messages. Message order in a 400 response follows struct
// field order, which is the order the validator reports them in.
var requiredFieldMessages = map[string]string{
	"FirstName":    "First name is required",
	"LastName":     "Last name is required",
	"EmailAddress": "Email address is required",
	"Password":     "Password is required",
	"Title":        "Title is required",
	"Description":  "Description is required",
}

// bindInput decodes the JSON body into input. On failure it writes a 400
// with the accumulated messages and returns false; the handler must not
// proceed.
func bindInput(c *gin.Context, input any) bool {
	err := c.ShouldBindJSON(input)
	if err == nil {
		return true
	}

	// An absent body means every field is missing: validate the zero
	// value so the required-field messages still accumulate.
	if errors.Is(err, io.EOF) {
		if err = binding.Validator.ValidateStruct(input); err == nil {
			return true
		}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		messages := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			if m, ok := requiredFieldMessages[fe.Field()]; ok {
				messages = append(messages, m)
			} else {
				messages = append(messages, fe.Field()+" is invalid")
			}
		}
		c.JSON(http.StatusBadRequest, gin.H{"errors": messages})
		return false
	}

	c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Request body must be valid JSON"}})
	return false
}
