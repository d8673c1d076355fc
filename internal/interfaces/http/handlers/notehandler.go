package handlers

import (
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wicket/internal/application/note/usecases"
	"wicket/internal/domain/note"
	"wicket/internal/interfaces/http/middleware"
	"wicket/internal/shared/logger"
	"wicket/internal/shared/utils"
)

type createNoteUseCase interface {
	Execute(cmd usecases.CreateNoteCommand) (*note.Note, error)
}

type listNotesUseCase interface {
	Execute() ([]usecases.NoteView, error)
}

type CreateNoteRequest struct {
	Content string `json:"content" binding:"required"`
}

type NoteResponse struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	HTML      string    `json:"html,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NoteHandler serves the notes page and the notes API. All of its routes
// sit behind the auth middleware.
type NoteHandler struct {
	createNote createNoteUseCase
	listNotes  listNotesUseCase
	logger     logger.Interface
}

func NewNoteHandler(createNote createNoteUseCase, listNotes listNotesUseCase, logger logger.Interface) *NoteHandler {
	return &NoteHandler{
		createNote: createNote,
		listNotes:  listNotes,
		logger:     logger,
	}
}

// Home renders the notes page for the signed-in user.
func (h *NoteHandler) Home(c *gin.Context) {
	views, err := h.listNotes.Execute()
	if err != nil {
		h.logger.Errorw("failed to load notes for home page", "error", err)
		c.Data(http.StatusInternalServerError, "text/html; charset=utf-8", []byte("<h1>Something went wrong</h1>"))
		return
	}

	email := ""
	if identity := middleware.GetIdentity(c); identity != nil {
		email = identity.Email
	}

	data := homePageData{Email: email}
	for _, v := range views {
		data.Notes = append(data.Notes, homePageNote{
			HTML:      template.HTML(v.HTML),
			CreatedAt: v.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	c.Writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	c.Writer.WriteHeader(http.StatusOK)
	if err := homePageTemplate.Execute(c.Writer, data); err != nil {
		h.logger.Errorw("failed to render home page", "error", err)
	}
}

// ListNotes returns all notes, newest first, with sanitized HTML renderings.
func (h *NoteHandler) ListNotes(c *gin.Context) {
	views, err := h.listNotes.Execute()
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	responses := make([]NoteResponse, 0, len(views))
	for _, v := range views {
		responses = append(responses, NoteResponse{
			ID:        v.ID,
			Content:   v.Content,
			HTML:      v.HTML,
			CreatedAt: v.CreatedAt,
		})
	}

	utils.SuccessResponse(c, http.StatusOK, "notes retrieved", responses)
}

// CreateNote stores a new markdown note.
func (h *NoteHandler) CreateNote(c *gin.Context) {
	var req CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "content is required")
		return
	}

	n, err := h.createNote.Execute(usecases.CreateNoteCommand{Content: req.Content})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "note created", NoteResponse{
		ID:        n.ID,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
	})
}
