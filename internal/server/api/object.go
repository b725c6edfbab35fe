package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/looplj/objecthub/internal/objects"
	"github.com/looplj/objecthub/internal/server/middleware"
)

// Argument names shared by routes and handlers.
const (
	ArgArticle = "article"
	ArgProduct = "product"
	ArgFolder  = "folder"
	ArgContent = "content"
)

var errNotBound = errors.New("data object argument is not bound")

type ObjectHandlersParams struct {
	fx.In
}

// ObjectHandlers render the data objects bound by middleware.BindArguments.
type ObjectHandlers struct{}

func NewObjectHandlers(params ObjectHandlersParams) *ObjectHandlers {
	return &ObjectHandlers{}
}

type ContentResponse struct {
	ID        int    `json:"id"`
	Class     string `json:"class"`
	Title     string `json:"title"`
	Published bool   `json:"published"`
}

type FeedResponse struct {
	Folder *objects.Folder `json:"folder"`
}

func renderBound[T objects.DataObject](c *gin.Context, name string) {
	obj, ok := middleware.BoundValue[T](c, name)
	if !ok {
		JSONError(c, http.StatusInternalServerError, fmt.Errorf("%w: %s", errNotBound, name))
		return
	}

	c.JSON(http.StatusOK, obj)
}

func (h *ObjectHandlers) GetArticle(c *gin.Context) {
	renderBound[*objects.Article](c, ArgArticle)
}

func (h *ObjectHandlers) GetProduct(c *gin.Context) {
	renderBound[*objects.Product](c, ArgProduct)
}

func (h *ObjectHandlers) GetFolder(c *gin.Context) {
	renderBound[*objects.Folder](c, ArgFolder)
}

// GetContent renders any titled object as a content summary.
func (h *ObjectHandlers) GetContent(c *gin.Context) {
	content, ok := middleware.BoundValue[objects.Content](c, ArgContent)
	if !ok {
		JSONError(c, http.StatusInternalServerError, fmt.Errorf("%w: %s", errNotBound, ArgContent))
		return
	}

	c.JSON(http.StatusOK, ContentResponse{
		ID:        content.GetID(),
		Class:     content.GetClass(),
		Title:     content.GetTitle(),
		Published: content.IsPublished(),
	})
}

// GetFeed renders the feed of a folder, the folder is null when none was requested.
func (h *ObjectHandlers) GetFeed(c *gin.Context) {
	folder, _ := middleware.BoundValue[*objects.Folder](c, ArgFolder)
	c.JSON(http.StatusOK, FeedResponse{Folder: folder})
}
