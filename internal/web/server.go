// Package web binds the two-pane UI to the report generator: one page, one
// JSON endpoint, per-session last-report state.
package web

import (
	"bytes"
	"html/template"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"postmortem/internal/report"
)

const (
	placeholderMessage = "Click the button to generate a report..."
	blankInputWarning  = "Please paste a transcript first."
	failureMessage     = "Report generation failed. Check the API key or network and try again."

	sessionCookie = "pm_session"
)

type reportRequest struct {
	Transcript string `json:"transcript"`
}

type reportResponse struct {
	Report string `json:"report"`
	HTML   string `json:"html"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type pageData struct {
	Example    string
	ReportHTML template.HTML
	Failed     bool
}

type Server struct {
	app       *fiber.App
	generator report.Generator
	sessions  *SessionStore
	renderer  *renderer
	page      *template.Template
	example   string
	log       *slog.Logger
}

func NewServer(
	generator report.Generator,
	example string,
	log *slog.Logger,
) *Server {
	s := &Server{
		app: fiber.New(fiber.Config{
			AppName:               "postmortem",
			DisableStartupMessage: true,
		}),
		generator: generator,
		sessions:  NewSessionStore(),
		renderer:  newRenderer(),
		page:      template.Must(template.New("page").Parse(pageTemplate)),
		example:   example,
		log:       log,
	}

	s.app.Get("/", s.handleIndex)
	s.app.Post("/api/report", s.handleGenerate)

	return s
}

// Listen blocks serving HTTP on addr.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown stops the server, waiting for in-flight requests.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// sessionID returns the request's session identifier, issuing a cookie for
// first-time visitors.
func (s *Server) sessionID(c *fiber.Ctx) string {
	if id := c.Cookies(sessionCookie); id != "" {
		return id
	}

	id := s.sessions.NewID()
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    id,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return id
}

func (s *Server) handleIndex(c *fiber.Ctx) error {
	id := s.sessionID(c)

	data := pageData{
		Example:    s.example,
		ReportHTML: escapedHTML(placeholderMessage),
	}

	if last, ok := s.sessions.Get(id); ok {
		data.Failed = last.Failed
		data.ReportHTML = s.reportHTML(c, last)
	}

	var buf bytes.Buffer
	if err := s.page.Execute(&buf, data); err != nil {
		s.log.ErrorContext(c.UserContext(), "Failed to render page",
			"error", err)

		return fiber.ErrInternalServerError
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}

func (s *Server) handleGenerate(c *fiber.Ctx) error {
	id := s.sessionID(c)

	var req reportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(errorResponse{Error: blankInputWarning})
	}

	if strings.TrimSpace(req.Transcript) == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(errorResponse{Error: blankInputWarning})
	}

	markdown, err := s.generator.Generate(c.UserContext(), req.Transcript)
	if err != nil {
		s.log.ErrorContext(c.UserContext(), "Failed to generate report",
			"error", err,
			"transcriptLength", len(req.Transcript))

		s.sessions.Put(id, Report{Markdown: failureMessage, Failed: true})

		return c.Status(fiber.StatusBadGateway).
			JSON(errorResponse{Error: failureMessage})
	}

	last := Report{Markdown: markdown}
	s.sessions.Put(id, last)

	return c.JSON(reportResponse{
		Report: markdown,
		HTML:   string(s.reportHTML(c, last)),
	})
}

// reportHTML renders a stored report for display. Failure messages are plain
// text; service output goes through the Markdown renderer. A rendering error
// degrades to escaped raw Markdown so the report itself is never lost.
func (s *Server) reportHTML(c *fiber.Ctx, last Report) template.HTML {
	if last.Failed {
		return escapedHTML(last.Markdown)
	}

	html, err := s.renderer.Render(last.Markdown)
	if err != nil {
		s.log.ErrorContext(c.UserContext(), "Failed to render report markdown",
			"error", err)

		return "<pre>" + escapedHTML(last.Markdown) + "</pre>"
	}

	return html
}

func escapedHTML(text string) template.HTML {
	return template.HTML(template.HTMLEscapeString(text))
}
