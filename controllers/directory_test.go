package controllers

import (
	"database/sql/driver"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"academic-directory-api/internal/dbtest"
	"academic-directory-api/models"
	"academic-directory-api/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewPublicationViewFormatsDisplayFields(t *testing.T) {
	v := newPublicationView(models.Publication{
		Title:     "Graph Neural Networks",
		Authors:   strPtr("Kim, Lee"),
		Publisher: strPtr("IEEE"),
	})
	assert.Equal(t, "Kim, Lee", v.AuthorsDisplay)
	assert.Equal(t, "IEEE", v.SourceDisplay)

	v = newPublicationView(models.Publication{Title: "Untitled draft"})
	assert.Equal(t, "Unknown Authors", v.AuthorsDisplay)
	assert.Equal(t, "Unknown Publisher", v.SourceDisplay)
}

func TestNewProfessorViewCompletion(t *testing.T) {
	v := newProfessorView(models.Professor{
		FullName:   "Grace Hopper",
		Email:      strPtr("grace@uni.edu"),
		Department: strPtr("Computer Science"),
		University: strPtr("Yale"),
	})
	assert.Equal(t, 50, v.Completion)
}

func TestDirectoryRejectsInvalidProfessorID(t *testing.T) {
	dc := NewDirectoryController(nil, nil)
	router := gin.New()
	router.GET("/professors/:id", dc.GetProfessor)
	router.GET("/professors/:id/publications", dc.ListProfessorPublications)

	for _, path := range []string{"/professors/42", "/professors/not-a-uuid/publications"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.JSONEq(t, `{"success":false,"error":"invalid professor id"}`, w.Body.String())
	}
}

func TestListProfessorsReportsAppliedPaging(t *testing.T) {
	cases := []struct {
		query      string
		sqlLimit   string
		wantPaging string
	}{
		{"?limit=1000", "LIMIT 200$", `{"total":1,"limit":200,"offset":0}`},
		{"?limit=-5&offset=-3", "LIMIT 50$", `{"total":1,"limit":50,"offset":0}`},
		{"?limit=10&offset=30", "LIMIT 10 OFFSET 30$", `{"total":1,"limit":10,"offset":30}`},
	}
	for _, tc := range cases {
		db, script := dbtest.Open(t,
			&dbtest.Step{
				Kind:    dbtest.Query,
				Pattern: regexp.MustCompile("SELECT count\\(\\*\\) FROM `professors`"),
				Columns: []string{"count"},
				Rows:    [][]driver.Value{{int64(1)}},
			},
			&dbtest.Step{
				Kind:    dbtest.Query,
				Pattern: regexp.MustCompile("FROM `professors` ORDER BY ranking_points DESC.*" + tc.sqlLimit),
				Columns: []string{"id", "full_name", "ranking_points"},
				Rows:    [][]driver.Value{{"11111111-1111-4111-8111-111111111111", "Ada Lovelace", int64(90)}},
			},
		)
		dc := NewDirectoryController(services.NewProfessorService(db), services.NewPublicationService(db))
		router := gin.New()
		router.GET("/professors", dc.ListProfessors)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/professors"+tc.query, nil))
		require.Equal(t, http.StatusOK, w.Code, tc.query)

		var body struct {
			Paging json.RawMessage `json:"paging"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.JSONEq(t, tc.wantPaging, string(body.Paging), tc.query)
		require.NoError(t, script.Verify(), tc.query)
	}
}
