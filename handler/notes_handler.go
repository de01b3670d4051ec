package handler

import (
	"quicknotes/dto"
	"quicknotes/middleware"
	"quicknotes/usecase"
	"quicknotes/utils"

	"github.com/gin-gonic/gin"
)

// ownerID is the caller's user id. Routes in this file sit behind
// AuthMiddleware, so a missing identity is a wiring fault.
func ownerID(c *gin.Context) (string, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, "Authentication required")
		return "", false
	}
	return user.ID, true
}

func CreateNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	userID, ok := ownerID(c)
	if !ok {
		return
	}

	var req dto.AddNoteRequest
	if !bindBody(c, &req, msgMissingFields) {
		return
	}

	note, err := notesService.CreateNote(c.Request.Context(), userID, usecase.CreateNoteInput{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, "Note added successfully", gin.H{"note": note})
}

func EditNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	userID, ok := ownerID(c)
	if !ok {
		return
	}

	var req dto.EditNoteRequest
	if !bindBody(c, &req, msgInvalidBody) {
		return
	}

	note, err := notesService.EditNote(c.Request.Context(), userID, c.Param("noteId"), usecase.EditNoteInput{
		Title:    req.Title,
		Content:  req.Content,
		Tags:     req.Tags,
		IsPinned: req.IsPinned,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, "Note updated successfully", gin.H{"note": note})
}

func UpdateNotePinnedHandler(c *gin.Context, notesService *usecase.NotesService) {
	userID, ok := ownerID(c)
	if !ok {
		return
	}

	var req dto.PinNoteRequest
	if !bindBody(c, &req, msgInvalidBody) {
		return
	}

	note, err := notesService.SetPinned(c.Request.Context(), userID, c.Param("noteId"), req.IsPinned)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, "Note pinned status updated successfully", gin.H{"note": note})
}

func GetAllNotesHandler(c *gin.Context, notesService *usecase.NotesService) {
	userID, ok := ownerID(c)
	if !ok {
		return
	}

	notes, err := notesService.ListNotes(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, "All notes retrieved successfully", gin.H{"notes": notes})
}

func DeleteNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	userID, ok := ownerID(c)
	if !ok {
		return
	}

	if err := notesService.DeleteNote(c.Request.Context(), userID, c.Param("noteId")); err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, "Note deleted successfully", nil)
}

func SearchNotesHandler(c *gin.Context, notesService *usecase.NotesService) {
	userID, ok := ownerID(c)
	if !ok {
		return
	}

	var req dto.SearchNotesRequest
	if !bindBody(c, &req, msgInvalidBody) {
		return
	}

	notes, err := notesService.SearchNotes(c.Request.Context(), userID, req.Params.Query)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, "Notes matching the search query retrieved successfully", gin.H{"notes": notes})
}
