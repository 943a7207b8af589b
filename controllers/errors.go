package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidhub-backend/models"
)

var debugMode bool

// SetDebugMode controls whether unexpected errors leak their details to
// clients. Only development deployments enable it.
func SetDebugMode(enabled bool) {
	debugMode = enabled
}

// respondError maps the service error taxonomy onto HTTP statuses. Every
// failure yields a single human-readable error field.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidArgument):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrUnauthenticated):
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrForbidden):
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		message := "Internal server error"
		if debugMode {
			message = err.Error()
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": message})
	}
}

// currentUserID resolves the authenticated caller's id placed in the
// context by the auth middleware.
func currentUserID(ctx *gin.Context) (primitive.ObjectID, bool) {
	raw, exists := ctx.Get("user_id")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return primitive.NilObjectID, false
	}

	idStr, ok := raw.(string)
	if !ok {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return primitive.NilObjectID, false
	}

	id, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return primitive.NilObjectID, false
	}
	return id, true
}

// pathObjectID parses an ObjectID path parameter, answering 400 on
// malformed input.
func pathObjectID(ctx *gin.Context, param string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(ctx.Param(param))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + param})
		return primitive.NilObjectID, false
	}
	return id, true
}
