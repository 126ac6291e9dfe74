//go:build unit || e2e

// Package fakeapi is an in-process double of the starclip remote API. It
// implements the dashboard and order endpoints with the production envelope
// convention so the client, controller and projections can be exercised
// end to end without the real platform.
package fakeapi

import (
	"net/http"
	"strings"
	"sync"

	"starclip/domain/availability"
	"starclip/domain/earnings"
	"starclip/domain/request"

	"github.com/gin-gonic/gin"
)

type Server struct {
	Engine *gin.Engine

	mu         sync.Mutex
	order      []string
	requests   map[string]*request.Request
	earnings   earnings.Summary
	week       availability.Week
	signedURLs map[string]string

	// FailNextPatch makes the next status patch answer with a request-level
	// error, for exercising the confirm-then-apply discipline.
	FailNextPatch bool
}

func New() *Server {
	gin.SetMode(gin.TestMode)

	s := &Server{
		requests:   make(map[string]*request.Request),
		week:       availability.DefaultWeek(),
		signedURLs: make(map[string]string),
	}

	engine := gin.New()
	engine.Use(s.requireBearer)

	engine.GET("/dashboard/requests", s.listRequests)
	engine.PATCH("/dashboard/requests/:id", s.patchRequest)
	engine.POST("/dashboard/requests/:id/video", s.uploadVideo)
	engine.GET("/dashboard/earnings", s.getEarnings)
	engine.GET("/dashboard/availability", s.getAvailability)
	engine.PATCH("/dashboard/availability", s.patchAvailability)
	engine.GET("/orders/:id/video-url", s.getVideoURL)

	s.Engine = engine
	return s
}

func (s *Server) Seed(reqs ...request.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range reqs {
		r := reqs[i]
		if _, ok := s.requests[r.ID]; !ok {
			s.order = append(s.order, r.ID)
		}
		s.requests[r.ID] = &r
	}
}

func (s *Server) SeedEarnings(sum earnings.Summary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.earnings = sum
}

func (s *Server) SeedSignedURL(orderID, url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.signedURLs[orderID] = url
}

// RequestStatus reports the server-side status, for asserting what was
// actually persisted.
func (s *Server) RequestStatus(id string) (request.Status, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.requests[id]; ok {
		return r.Status, true
	}
	return "", false
}

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func fail(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"error":   gin.H{"message": message, "code": code},
	})
}

func (s *Server) requireBearer(c *gin.Context) {
	auth := c.GetHeader("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") || len(auth) <= len("Bearer ") {
		fail(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing bearer token")
		return
	}
	c.Next()
}

func (s *Server) listRequests(c *gin.Context) {
	statusFilter := request.Status(c.Query("status"))

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]request.Request, 0, len(s.order))
	for _, id := range s.order {
		r := s.requests[id]
		if statusFilter != "" && r.Status != statusFilter {
			continue
		}
		out = append(out, *r)
	}
	ok(c, out)
}

func (s *Server) patchRequest(c *gin.Context) {
	var body struct {
		Status request.Status `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "BAD_REQUEST", "invalid status payload")
		return
	}
	if body.Status != request.StatusApproved && body.Status != request.StatusRejected {
		fail(c, http.StatusBadRequest, "BAD_REQUEST", "status must be approved or rejected")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailNextPatch {
		s.FailNextPatch = false
		fail(c, http.StatusInternalServerError, "INTERNAL", "temporary storage failure")
		return
	}

	r, ok2 := s.requests[c.Param("id")]
	if !ok2 {
		fail(c, http.StatusNotFound, "NOT_FOUND", "request not found")
		return
	}
	if !r.Status.CanTransitionTo(body.Status) {
		fail(c, http.StatusConflict, "CONFLICT", "request already decided")
		return
	}

	r.Status = body.Status
	ok(c, request.StatusPatch{ID: r.ID, Status: r.Status})
}

func (s *Server) uploadVideo(c *gin.Context) {
	file, err := c.FormFile("video")
	if err != nil {
		fail(c, http.StatusBadRequest, "BAD_REQUEST", "missing video field")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok2 := s.requests[c.Param("id")]
	if !ok2 {
		fail(c, http.StatusNotFound, "NOT_FOUND", "request not found")
		return
	}
	if r.Status != request.StatusApproved {
		fail(c, http.StatusConflict, "CONFLICT", "request is not approved")
		return
	}

	r.Status = request.StatusCompleted
	r.VideoURL = "https://cdn.fake.starclip/" + r.ID + "/" + file.Filename
	s.signedURLs[r.ID] = r.VideoURL + "?sig=fake"

	ok(c, request.UploadResult{ID: r.ID, Status: r.Status, VideoURL: r.VideoURL})
}

func (s *Server) getEarnings(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok(c, s.earnings)
}

func (s *Server) getAvailability(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok(c, s.week)
}

func (s *Server) patchAvailability(c *gin.Context) {
	var week availability.Week
	if err := c.ShouldBindJSON(&week); err != nil {
		fail(c, http.StatusBadRequest, "BAD_REQUEST", "invalid schedule payload")
		return
	}
	week = week.Normalized()
	if err := week.Validate(); err != nil {
		fail(c, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.week = week
	ok(c, week)
}

func (s *Server) getVideoURL(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	url, ok2 := s.signedURLs[c.Param("id")]
	if !ok2 {
		fail(c, http.StatusNotFound, "NOT_FOUND", "no video for this order")
		return
	}
	ok(c, gin.H{"signedUrl": url})
}
