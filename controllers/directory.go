package controllers

import (
	"errors"
	"net/http"

	"academic-directory-api/models"
	"academic-directory-api/services"
	"academic-directory-api/utils"

	"github.com/gin-gonic/gin"
)

type DirectoryController struct {
	professors   *services.ProfessorService
	publications *services.PublicationService
}

func NewDirectoryController(professors *services.ProfessorService, publications *services.PublicationService) *DirectoryController {
	return &DirectoryController{professors: professors, publications: publications}
}

type professorView struct {
	models.Professor
	Completion int `json:"completion"`
}

type publicationView struct {
	models.Publication
	AuthorsDisplay string `json:"authors_display"`
	SourceDisplay  string `json:"source_display"`
}

func newProfessorView(p models.Professor) professorView {
	return professorView{
		Professor: p,
		Completion: utils.ProfileCompletion(
			&p.FullName, p.Email, p.Title, p.Department,
			p.University, p.Bio, p.AvatarURL, p.ResearchInterests,
		),
	}
}

func newPublicationView(p models.Publication) publicationView {
	return publicationView{
		Publication:    p,
		AuthorsDisplay: utils.FormatAuthors(p.Authors),
		SourceDisplay:  utils.FormatPublicationSource(p.Journal, p.Publisher),
	}
}

// GET /api/v1/professors?limit=50&offset=0
func (dc *DirectoryController) ListProfessors(c *gin.Context) {
	limit := parseIntOrDefault(c.Query("limit"), 50)
	offset := parseIntOrDefault(c.Query("offset"), 0)

	items, page, err := dc.professors.ListByRanking(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	views := make([]professorView, 0, len(items))
	for _, p := range items {
		views = append(views, newProfessorView(p))
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    views,
		"paging":  page,
	})
}

// GET /api/v1/professors/:id
func (dc *DirectoryController) GetProfessor(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid professor id"})
		return
	}

	prof, err := dc.professors.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrProfessorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": newProfessorView(*prof)})
}

// GET /api/v1/professors/:id/publications?year=2024&limit=50&offset=0
func (dc *DirectoryController) ListProfessorPublications(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid professor id"})
		return
	}
	year := parseOptionalInt(c.Query("year"))
	limit := parseIntOrDefault(c.Query("limit"), 50)
	offset := parseIntOrDefault(c.Query("offset"), 0)

	items, page, err := dc.publications.ListByProfessor(id, year, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	views := make([]publicationView, 0, len(items))
	for _, p := range items {
		views = append(views, newPublicationView(p))
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    views,
		"paging":  page,
	})
}
