// Package server provides the HTTP REST API for the resume builder.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jdoe/resume-builder/internal/schemas"
	"github.com/jdoe/resume-builder/internal/server/middleware"
	"github.com/jdoe/resume-builder/internal/types"
)

// requestUserID extracts the authenticated user id, writing a 401 when absent.
func requestUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		jsonError(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, false
	}
	return userID, true
}

// pathUUID parses a path parameter as a UUID, writing a 400 when malformed.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// handleCreateResume creates an empty titled resume for the caller.
func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	var req types.CreateResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		jsonError(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	resume, err := s.db.CreateResume(r.Context(), userID, req.Title)
	if err != nil {
		jsonError(w, HTTPStatus(err), err.Error())
		return
	}
	jsonResponse(w, http.StatusCreated, resume)
}

// handleListResumes returns the caller's resumes, most recently updated first.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	resumes, err := s.db.ListResumesByUser(r.Context(), userID)
	if err != nil {
		jsonError(w, HTTPStatus(err), err.Error())
		return
	}
	if resumes == nil {
		resumes = []*types.Resume{}
	}
	jsonResponse(w, http.StatusOK, resumes)
}

// handleGetResume returns one of the caller's resumes.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	resume, err := s.db.GetResume(r.Context(), id, userID)
	if err != nil {
		jsonError(w, HTTPStatus(err), err.Error())
		return
	}
	if resume == nil {
		err := &ErrResumeNotFound{ResumeID: id}
		jsonError(w, HTTPStatus(err), err.Error())
		return
	}
	jsonResponse(w, http.StatusOK, resume)
}

// handleUpdateResume replaces the stored resume document wholesale.
func (s *Server) handleUpdateResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var resume types.Resume
	if err := json.NewDecoder(r.Body).Decode(&resume); err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Out-of-range proficiency values are clamped, not rejected.
	for i := range resume.Languages {
		resume.Languages[i].Progress = types.ClampProgress(resume.Languages[i].Progress)
	}

	document, err := json.Marshal(&resume)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid resume document")
		return
	}
	if err := schemas.ValidateResumeJSON(document); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := s.db.UpdateResume(r.Context(), id, userID, &resume)
	if err != nil {
		jsonError(w, HTTPStatus(err), err.Error())
		return
	}
	if updated == nil {
		err := &ErrResumeNotFound{ResumeID: id}
		jsonError(w, HTTPStatus(err), err.Error())
		return
	}
	jsonResponse(w, http.StatusOK, updated)
}

// handleDeleteResume removes one of the caller's resumes.
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	deleted, err := s.db.DeleteResume(r.Context(), id, userID)
	if err != nil {
		jsonError(w, HTTPStatus(err), err.Error())
		return
	}
	if !deleted {
		err := &ErrResumeNotFound{ResumeID: id}
		jsonError(w, HTTPStatus(err), err.Error())
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "Resume deleted successfully"})
}

// handleUploadResumeImages stores an uploaded preview thumbnail for a resume.
func (s *Server) handleUploadResumeImages(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	url, err := saveUploadedImage(r, "thumbnail", s.uploadDir, "thumbnails", s.publicURL)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	resume, err := s.db.SetResumeThumbnail(r.Context(), id, userID, url)
	if err != nil {
		jsonError(w, HTTPStatus(err), err.Error())
		return
	}
	if resume == nil {
		err := &ErrResumeNotFound{ResumeID: id}
		jsonError(w, HTTPStatus(err), err.Error())
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"thumbnailLink": url})
}
