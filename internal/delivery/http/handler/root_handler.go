package handler

import (
	"mentor-match/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type RootHandler struct{}

func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

func (h *RootHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}

	app.Get("/", h.Landing)
	app.Get("/health", h.Health)
}

func (h *RootHandler) Landing(c fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(fiber.StatusOK).SendString(landingPage)
}

func (h *RootHandler) Health(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

const landingPage = `<html>
	<head>
		<title>Mentor-Mentee API</title>
		<style>
			body { font-family: Arial, sans-serif; line-height: 1.6; max-width: 800px; margin: 0 auto; padding: 20px; }
			h1 { color: #2c3e50; border-bottom: 2px solid #3498db; padding-bottom: 10px; }
			h2 { color: #3498db; }
			.endpoint { background-color: #f8f9fa; border-left: 4px solid #3498db; padding: 10px; margin: 10px 0; }
		</style>
	</head>
	<body>
		<h1>Mentor-Mentee Matching API</h1>
		<p>This service matches mentors with mentees.</p>

		<h2>Main endpoints</h2>
		<div class="endpoint"><strong>POST /api/signup</strong> - register a new mentor or mentee</div>
		<div class="endpoint"><strong>POST /api/login</strong> - log in and receive a bearer token</div>
		<div class="endpoint"><strong>GET /api/me</strong> - current authenticated user</div>
		<div class="endpoint"><strong>GET /api/mentors</strong> - browse mentors (mentees only)</div>
		<div class="endpoint"><strong>POST /api/match-requests</strong> - create a match request</div>

		<h2>Status</h2>
		<p>API service running</p>
	</body>
</html>`
