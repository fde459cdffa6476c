package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"taskvault/internal/domain"
	"taskvault/internal/logger"
	"taskvault/internal/repository"

	"github.com/gin-gonic/gin"
)

type createTaskRequest struct {
	Description string `json:"description" binding:"required,min=4,max=200"`
	Priority    string `json:"priority" binding:"omitempty,oneof=HIGH MEDIUM LOW"`
}

type updateTaskRequest struct {
	Description string `json:"description" binding:"required,min=4,max=200"`
}

type priorityRequest struct {
	Priority string `json:"priority" binding:"required,oneof=HIGH MEDIUM LOW"`
}

// taskID parses the :id path parameter. Zero and negative ids never
// exist, so they are rejected up front.
func taskID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "Bad Request",
			"message": "Invalid or missing task ID",
		})
		return 0, false
	}
	return id, true
}

func (h *Handler) storageError(c *gin.Context, op string, err error) {
	logger.Error("task storage failure", "op", op, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  "Internal Server Error",
		"message": "An unexpected error occurred",
	})
}

// CreateTask inserts a task owned by the caller. Priority defaults to LOW.
func (h *Handler) CreateTask(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "Unauthorized",
			"message": "Invalid or missing token",
		})
		return
	}

	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "Bad Request",
			"message": "Description must be between 4 and 200 characters",
		})
		return
	}

	task := &domain.Task{
		UserID:      userID,
		Description: req.Description,
		Priority:    req.Priority,
	}
	if err := h.Tasks.Create(c.Request.Context(), task); err != nil {
		h.storageError(c, "create", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "Created",
		"message": "The task was successfully created",
		"task":    task,
	})
}

// ListTasks returns the caller's tasks, paginated by page/limit query
// parameters and ordered by ascending id.
func (h *Handler) ListTasks(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "Unauthorized",
			"message": "Invalid or missing token",
		})
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "Bad Request",
			"message": "Invalid pagination parameters",
		})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "Bad Request",
			"message": "Invalid pagination parameters",
		})
		return
	}
	offset := (page - 1) * limit

	tasks, err := h.Tasks.ListByUser(c.Request.Context(), userID, limit, offset)
	if err != nil {
		h.storageError(c, "list", err)
		return
	}

	if len(tasks) < 1 {
		c.JSON(http.StatusOK, gin.H{
			"status":  "Success",
			"message": "No tasks found for this user.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "Success",
		"tasks":  tasks,
	})
}

// GetTask returns a single task. A task owned by someone else is
// indistinguishable from a missing one.
func (h *Handler) GetTask(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "Unauthorized",
			"message": "Invalid or missing token",
		})
		return
	}

	id, ok := taskID(c)
	if !ok {
		return
	}

	task, err := h.Tasks.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "Not Found",
				"message": "No task with this ID was found",
			})
			return
		}
		h.storageError(c, "get", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "Success",
		"task":   task,
	})
}

// UpdateTask replaces the description of an owned task.
func (h *Handler) UpdateTask(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "Unauthorized",
			"message": "Invalid or missing token",
		})
		return
	}

	id, ok := taskID(c)
	if !ok {
		return
	}

	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "Bad Request",
			"message": "Description must be between 4 and 200 characters",
		})
		return
	}

	if err := h.Tasks.UpdateDescription(c.Request.Context(), id, userID, req.Description); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "Not Found",
				"message": "No task with this ID was found",
			})
			return
		}
		h.storageError(c, "update", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "The task was successfully updated",
	})
}

// DeleteTask removes an owned task. Deleting an id that matches nothing
// still succeeds.
func (h *Handler) DeleteTask(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "Unauthorized",
			"message": "Invalid or missing token",
		})
		return
	}

	id, ok := taskID(c)
	if !ok {
		return
	}

	if err := h.Tasks.Delete(c.Request.Context(), id, userID); err != nil {
		h.storageError(c, "delete", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "The task was successfully deleted",
	})
}

// DeleteAllTasks removes every task owned by the caller.
func (h *Handler) DeleteAllTasks(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "Unauthorized",
			"message": "Invalid or missing token",
		})
		return
	}

	if err := h.Tasks.DeleteAllForUser(c.Request.Context(), userID); err != nil {
		h.storageError(c, "delete_all", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CompleteTask marks an owned task as completed.
func (h *Handler) CompleteTask(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "Unauthorized",
			"message": "Invalid or missing token",
		})
		return
	}

	id, ok := taskID(c)
	if !ok {
		return
	}

	task, err := h.Tasks.Complete(c.Request.Context(), id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "Not Found",
				"message": "Task not found or unauthorized",
			})
			return
		}
		h.storageError(c, "complete", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Task completed successfully",
		"task":    task,
	})
}

// SetTaskPriority updates the priority of an owned task.
func (h *Handler) SetTaskPriority(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "Unauthorized",
			"message": "Invalid or missing token",
		})
		return
	}

	id, ok := taskID(c)
	if !ok {
		return
	}

	var req priorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "Bad Request",
			"message": "Priority must be one of HIGH, MEDIUM, LOW",
		})
		return
	}

	if err := h.Tasks.SetPriority(c.Request.Context(), id, userID, req.Priority); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "Not Found",
				"message": "Task not found or unauthorized",
			})
			return
		}
		h.storageError(c, "priority", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Priority successfully updated",
	})
}
