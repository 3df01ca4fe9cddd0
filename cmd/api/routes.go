package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (app *application) routes() http.Handler {
	if app.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(app.Logger))
	r.Use(corsMiddleware(app.Config.GetCORSOrigins()))

	h := app.Handler

	v1 := r.Group("/api/v1")
	{
		v1.POST("/signup", h.SignUp)
		v1.POST("/login", h.Login)
		v1.GET("/settings", h.Settings)
	}

	protected := v1.Group("/")
	protected.Use(app.AuthMiddleware())
	{
		protected.GET("/me", h.Me)
		protected.POST("/users/invite", h.InviteUser)

		// wizard sessions
		protected.POST("/wizard", h.OpenWizard)
		protected.GET("/wizard/:id", h.GetWizard)
		protected.DELETE("/wizard/:id", h.CloseWizard)
		protected.PATCH("/wizard/:id/fields", h.SetWizardField)
		protected.PUT("/wizard/:id/skills/:list/input", h.SetSkillInput)
		protected.POST("/wizard/:id/skills/:list", h.AddSkill)
		protected.POST("/wizard/:id/skills/:list/key", h.SkillKeyDown)
		protected.DELETE("/wizard/:id/skills/:list/:skill", h.RemoveSkill)
		protected.PUT("/wizard/:id/custom-questions/count", h.SetCustomQuestionCount)
		protected.PUT("/wizard/:id/custom-questions/:index", h.SetCustomQuestion)
		protected.POST("/wizard/:id/next", h.WizardNext)
		protected.POST("/wizard/:id/back", h.WizardBack)
		protected.POST("/wizard/:id/share", h.WizardShare)
		protected.POST("/wizard/:id/submit", h.WizardSubmit)

		// lists
		protected.GET("/jobs", h.ListJobs)
		protected.POST("/jobs/import", h.ImportJob)
		protected.GET("/jobs/:id/rounds", h.ListRounds)
		protected.GET("/interviewers", h.ListInterviewers)
		protected.GET("/interviews", h.ListInterviews)
		protected.GET("/interviews/:id", h.GetInterview)
		protected.GET("/applicants", h.ListApplicants)
	}

	return r
}
