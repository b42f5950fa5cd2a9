package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/Go-Blog-Moderation/domain"
	"github.com/Guyuepp/Go-Blog-Moderation/internal/rest/request"
	"github.com/Guyuepp/Go-Blog-Moderation/internal/rest/response"
)

type categoryHandler struct {
	Service domain.CategoryUsecase
}

func NewCategoryHandler(svc domain.CategoryUsecase) *categoryHandler {
	return &categoryHandler{
		Service: svc,
	}
}

func (h *categoryHandler) Create(c *gin.Context) {
	var req request.CreateCategory
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}
	category, err := h.Service.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, response.NewCategoryFromDomain(category))
}

func (h *categoryHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req request.UpdateCategory
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}
	category, err := h.Service.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewCategoryFromDomain(category))
}

func (h *categoryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	deleted, _ := h.Service.Delete(c.Request.Context(), id)
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

func (h *categoryHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	category, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewCategoryFromDomain(category))
}

func (h *categoryHandler) GetBySlug(c *gin.Context) {
	category, err := h.Service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewCategoryFromDomain(category))
}

func (h *categoryHandler) Fetch(c *gin.Context) {
	categories, pagination, err := h.Service.GetAll(c.Request.Context(), queryFromRequest(c))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewPaginated(response.NewCategoriesFromDomain(categories), pagination))
}

func (h *categoryHandler) FetchActive(c *gin.Context) {
	categories, err := h.Service.GetActive(c.Request.Context())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": response.NewCategoriesFromDomain(categories)})
}

func (h *categoryHandler) FetchPopular(c *gin.Context) {
	categories, err := h.Service.GetPopular(c.Request.Context(), limitQuery(c, 10))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": response.NewCategoriesFromDomain(categories)})
}

func (h *categoryHandler) UpdateSortOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req request.SortOrder
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}
	if err := h.Service.UpdateSortOrder(c.Request.Context(), id, req.SortOrder); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "sort order updated"})
}

func (h *categoryHandler) BulkUpdateSortOrder(c *gin.Context) {
	var req request.BulkSortOrder
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}
	if err := h.Service.BulkUpdateSortOrder(c.Request.Context(), req.ToDomain()); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "sort orders updated"})
}

func (h *categoryHandler) Stats(c *gin.Context) {
	stats, err := h.Service.Stats(c.Request.Context())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *categoryHandler) Count(c *gin.Context) {
	counts, err := h.Service.Count(c.Request.Context())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, counts)
}
