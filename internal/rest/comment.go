package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/Go-Blog-Moderation/domain"
	"github.com/Guyuepp/Go-Blog-Moderation/internal/rest/request"
	"github.com/Guyuepp/Go-Blog-Moderation/internal/rest/response"
)

type commentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *commentHandler {
	return &commentHandler{
		Service: svc,
	}
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return 0, false
	}
	return id, true
}

func queryFromRequest(c *gin.Context) domain.Query {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	q := domain.Query{
		Page:      page,
		Limit:     limit,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}
	q.Normalize()
	return q
}

func actorID(c *gin.Context) (int64, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: "user not authenticated"})
		return 0, false
	}
	return userID.(int64), true
}

// CreateComment stores a new PENDING comment on a post.
func (h *commentHandler) CreateComment(c *gin.Context) {
	uid, ok := actorID(c)
	if !ok {
		return
	}
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req request.CreateComment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	comment := req.ToDomain(uid)
	comment.PostID = postID

	ctx := c.Request.Context()
	if err := h.Service.Create(ctx, &comment); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, response.NewCommentFromDomain(&comment))
}

// CreateCommentChecked runs the spam heuristic on top of a plain create and
// returns the verdict annotations alongside the comment.
func (h *commentHandler) CreateCommentChecked(c *gin.Context) {
	uid, ok := actorID(c)
	if !ok {
		return
	}
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req request.CreateComment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	comment := req.ToDomain(uid)
	comment.PostID = postID

	ctx := c.Request.Context()
	verdict, err := h.Service.CreateWithSpamDetection(ctx, &comment)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, response.NewVerdictFromDomain(verdict))
}

func (h *commentHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	comment, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewCommentFromDomain(comment))
}

// FetchByPost returns the approved top-level comments with replies.
func (h *commentHandler) FetchByPost(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	comments, pagination, err := h.Service.GetByPost(c.Request.Context(), postID, queryFromRequest(c))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewPaginated(response.NewCommentsFromDomain(comments), pagination))
}

func (h *commentHandler) FetchByAuthor(c *gin.Context) {
	authorID, ok := pathID(c, "id")
	if !ok {
		return
	}
	comments, pagination, err := h.Service.GetByAuthor(c.Request.Context(), authorID, queryFromRequest(c))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewPaginated(response.NewCommentsFromDomain(comments), pagination))
}

func (h *commentHandler) FetchPending(c *gin.Context) {
	comments, pagination, err := h.Service.GetPending(c.Request.Context(), queryFromRequest(c))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewPaginated(response.NewCommentsFromDomain(comments), pagination))
}

func (h *commentHandler) Search(c *gin.Context) {
	keyword := c.Query("q")
	comments, pagination, err := h.Service.Search(c.Request.Context(), keyword, queryFromRequest(c))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewPaginated(response.NewCommentsFromDomain(comments), pagination))
}

func (h *commentHandler) Approve(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	comment, err := h.Service.Approve(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewCommentFromDomain(comment))
}

func (h *commentHandler) Reject(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	comment, err := h.Service.Reject(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewCommentFromDomain(comment))
}

func (h *commentHandler) bulkTransition(c *gin.Context, apply func([]int64) (domain.BulkModerationResult, error)) {
	var req request.BulkModeration
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}
	res, err := apply(req.IDs)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewBulkModerationFromDomain(res))
}

func (h *commentHandler) ApproveMultiple(c *gin.Context) {
	ctx := c.Request.Context()
	h.bulkTransition(c, func(ids []int64) (domain.BulkModerationResult, error) {
		return h.Service.ApproveMultiple(ctx, ids)
	})
}

func (h *commentHandler) RejectMultiple(c *gin.Context) {
	ctx := c.Request.Context()
	h.bulkTransition(c, func(ids []int64) (domain.BulkModerationResult, error) {
		return h.Service.RejectMultiple(ctx, ids)
	})
}

func (h *commentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req request.UpdateComment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}
	var status *domain.CommentStatus
	if req.Status != nil {
		st := domain.CommentStatus(*req.Status)
		status = &st
	}
	comment, err := h.Service.Update(c.Request.Context(), id, req.Content, status)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewCommentFromDomain(comment))
}

func (h *commentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	deleted, _ := h.Service.Delete(c.Request.Context(), id)
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

func (h *commentHandler) HardDelete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	deleted, _ := h.Service.HardDelete(c.Request.Context(), id)
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

func (h *commentHandler) Stats(c *gin.Context) {
	stats, err := h.Service.Stats(c.Request.Context())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *commentHandler) EngagementStats(c *gin.Context) {
	stats, err := h.Service.EngagementStats(c.Request.Context())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func limitQuery(c *gin.Context, fallback int) int {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 1 {
		return fallback
	}
	return limit
}

func (h *commentHandler) TopCommentedPosts(c *gin.Context) {
	res, err := h.Service.TopCommentedPosts(c.Request.Context(), limitQuery(c, 10))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": res})
}

func (h *commentHandler) MostActiveCommenters(c *gin.Context) {
	res, err := h.Service.MostActiveCommenters(c.Request.Context(), limitQuery(c, 10))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"commenters": res})
}

func (h *commentHandler) Trends(c *gin.Context) {
	days, err := strconv.Atoi(c.Query("days"))
	if err != nil || days < 1 {
		days = 7
	}
	res, err := h.Service.Trends(c.Request.Context(), days)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"trends": res})
}

func (h *commentHandler) Cleanup(c *gin.Context) {
	var req request.CleanupComments
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}
	if req.DaysOld == 0 {
		req.DaysOld = 30
	}
	affected, err := h.Service.CleanupRejected(c.Request.Context(), req.DaysOld)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cleaned": affected})
}

func (h *commentHandler) Orphaned(c *gin.Context) {
	res, err := h.Service.OrphanedComments(c.Request.Context())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orphaned": response.NewCommentsFromDomain(res)})
}
