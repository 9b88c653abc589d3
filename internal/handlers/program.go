package handlers

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"
	"valhalla/internal/content"
	"valhalla/internal/services"
	"valhalla/internal/utils"

	"github.com/gin-gonic/gin"
)

type ProgramHandler struct{}

func NewProgramHandler() *ProgramHandler {
	return &ProgramHandler{}
}

// Show is the workout-plan viewer, one phase at a time.
func (h *ProgramHandler) Show(c *gin.Context) {
	slug := c.Param("slug")

	program, err := services.FindProgram(slug)
	if err != nil {
		if errors.Is(err, services.ErrProgramNotFound) {
			RenderError(c, http.StatusNotFound, "Program not found")
			return
		}
		RenderError(c, http.StatusInternalServerError, alertText("Error loading program", err))
		return
	}

	plan, ok := content.LookupPlan(program.Slug)
	if !program.Available || !ok {
		RenderError(c, http.StatusNotFound, program.Title+" is coming soon")
		return
	}

	idx, phase := plan.PhaseAt(utils.StringToInt(c.Query("phase")))
	description, _ := utils.Remember(fmt.Sprintf("plan:%s:phase:%d", plan.Slug, idx), time.Hour, func() (template.HTML, error) {
		return utils.RenderMarkdown(phase.Description), nil
	})

	Render(c, http.StatusOK, "program/plan.html", gin.H{
		"Title":       program.Title,
		"Program":     program,
		"Plan":        plan,
		"Phase":       phase,
		"PhaseIndex":  idx,
		"PhaseCount":  len(plan.Phases),
		"Description": description,
		"Prev":        plan.Prev(idx),
		"Next":        plan.Next(idx),
	})
}
