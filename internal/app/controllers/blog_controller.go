package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/elementa/backend/internal/app/models/dto"
	"github.com/elementa/backend/internal/app/services"
	"github.com/elementa/backend/internal/middleware"
	"github.com/elementa/backend/internal/pkg/helpers"
)

// BlogController handles blog operations
type BlogController struct {
	blogService *services.BlogService
}

// NewBlogController creates a new BlogController
func NewBlogController(blogService *services.BlogService) *BlogController {
	return &BlogController{
		blogService: blogService,
	}
}

// ListPosts returns published blog posts
// @Summary List blog posts
// @Description Returns published posts, newest first
// @Tags blog
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.BlogPostListResponse} "Posts"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /blog [get]
func (c *BlogController) ListPosts(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	posts, err := c.blogService.ListPublished(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      posts,
		Timestamp: time.Now(),
	})
}

// GetPost returns a published post by slug
// @Summary Get a blog post
// @Description Returns a published post by its slug
// @Tags blog
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} dto.APIResponse{data=models.BlogPost} "Post"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /blog/{slug} [get]
func (c *BlogController) GetPost(ctx *gin.Context) {
	post, err := c.blogService.GetBySlug(ctx, ctx.Param("slug"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      post,
		Timestamp: time.Now(),
	})
}

// ListAllPosts returns every post for the back office
// @Summary List all blog posts
// @Description Returns all posts including drafts
// @Tags admin-blog
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.BlogPostListResponse} "Posts"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /admin/blog [get]
func (c *BlogController) ListAllPosts(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	posts, err := c.blogService.ListAll(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      posts,
		Timestamp: time.Now(),
	})
}

// CreatePost adds a blog post
// @Summary Create a blog post
// @Description Creates a new blog post
// @Tags admin-blog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBlogPostRequest true "Post information"
// @Success 201 {object} dto.APIResponse{data=models.BlogPost} "Post created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Slug already in use"
// @Router /admin/blog [post]
func (c *BlogController) CreatePost(ctx *gin.Context) {
	var req dto.CreateBlogPostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	post, err := c.blogService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      post,
		Timestamp: time.Now(),
	})
}

// UpdatePost modifies a blog post
// @Summary Update a blog post
// @Description Updates an existing blog post
// @Tags admin-blog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body dto.UpdateBlogPostRequest true "Post information"
// @Success 200 {object} dto.APIResponse{data=models.BlogPost} "Post updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /admin/blog/{id} [put]
func (c *BlogController) UpdatePost(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateBlogPostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	post, err := c.blogService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      post,
		Timestamp: time.Now(),
	})
}

// DeletePost removes a blog post
// @Summary Delete a blog post
// @Description Deletes a blog post
// @Tags admin-blog
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Post deleted"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /admin/blog/{id} [delete]
func (c *BlogController) DeletePost(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.blogService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Post deleted"},
		Timestamp: time.Now(),
	})
}
