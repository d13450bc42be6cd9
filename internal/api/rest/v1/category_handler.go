package v1

import (
	"net/http"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain/categories"

	"github.com/gin-gonic/gin"
)

// CategoryHandler defines the interface for handling category-related operations
type CategoryHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type categoryHandler struct {
	categoryService categories.VideoCategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService categories.VideoCategoryService) CategoryHandler {
	return &categoryHandler{categoryService: categoryService}
}

func (handler *categoryHandler) Create(ctx *gin.Context) {
	var request CategoryRequest
	if !bindJSON(ctx, &request) {
		return
	}

	category, err := handler.categoryService.Create(ctx, &categories.CategoryInput{
		Name:        request.Name,
		Description: request.Description,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newCategoryResponse(category))
}

func (handler *categoryHandler) List(ctx *gin.Context) {
	list, err := handler.categoryService.List(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	listResponse := []CategoryResponse{}
	for _, category := range list {
		listResponse = append(listResponse, newCategoryResponse(category))
	}
	ctx.JSON(http.StatusOK, listResponse)
}

func (handler *categoryHandler) GetByID(ctx *gin.Context) {
	category, err := handler.categoryService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newCategoryResponse(category))
}

func (handler *categoryHandler) Update(ctx *gin.Context) {
	var request CategoryRequest
	if !bindJSON(ctx, &request) {
		return
	}

	category, err := handler.categoryService.Update(ctx, ctx.Param("id"), &categories.CategoryInput{
		Name:        request.Name,
		Description: request.Description,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newCategoryResponse(category))
}

func (handler *categoryHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.categoryService.DeleteByID(ctx, ctx.Param("id")); err != nil {
		writeError(ctx, err)
		return
	}
	writeNoContent(ctx)
}
