package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleListPersonas handles GET /personas, optionally filtered by
// ?agentType=.
func (s *Server) handleListPersonas(c *gin.Context) {
	personas, err := s.personas.ListPersonas(c.Request.Context(), c.Query("agentType"))
	if err != nil {
		mapServiceError(c, err)
		return
	}

	out := make([]PersonaResponse, len(personas))
	for i, p := range personas {
		out[i] = toPersonaResponse(p)
	}
	c.JSON(http.StatusOK, gin.H{"personas": out})
}

// handleGetPersona handles GET /personas/:id.
func (s *Server) handleGetPersona(c *gin.Context) {
	p, err := s.personas.GetPersona(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPersonaResponse(p))
}
