// Package server exposes the scheduling engine over HTTP.
package server

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/Haston00/DABO/internal/activity"
	"github.com/Haston00/DABO/internal/cpm"
	"github.com/Haston00/DABO/internal/export"
	"github.com/Haston00/DABO/internal/plan"
	"github.com/Haston00/DABO/internal/schedstore"
)

// criticalEntry is one activity on the critical path, as served by the API.
type criticalEntry struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Duration int    `json:"duration"`
}

// New builds the HTTP API on top of a schedule store.
func New(store schedstore.Store) *fiber.App {
	app := fiber.New()

	// ── Schedules ─────────────────────────────────────────────────────
	app.Post("/schedules", func(c fiber.Ctx) error {
		var p plan.Plan
		if err := c.Bind().JSON(&p); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}

		acts := p.Activities()
		res, err := cpm.Compute(acts)
		if err != nil {
			return computeError(c, err)
		}

		stored, err := store.SaveSchedule(c.Context(), &schedstore.Stored{
			Name:    p.Project.Name,
			Plan:    &p,
			Result:  res,
			Summary: cpm.Summarize(acts, res),
		})
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(201).JSON(stored)
	})

	app.Get("/schedules", func(c fiber.Ctx) error {
		metas, err := store.ListSchedules(c.Context())
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		if metas == nil {
			metas = []schedstore.Meta{}
		}
		return c.JSON(metas)
	})

	app.Get("/schedules/:id", func(c fiber.Ctx) error {
		s, err := store.GetSchedule(c.Context(), c.Params("id"))
		if errors.Is(err, schedstore.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "schedule not found"})
		}
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(s)
	})

	app.Delete("/schedules/:id", func(c fiber.Ctx) error {
		err := store.DeleteSchedule(c.Context(), c.Params("id"))
		if errors.Is(err, schedstore.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "schedule not found"})
		}
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(204)
	})

	// ── Views ─────────────────────────────────────────────────────────
	app.Get("/schedules/:id/critical-path", func(c fiber.Ctx) error {
		s, err := store.GetSchedule(c.Context(), c.Params("id"))
		if errors.Is(err, schedstore.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "schedule not found"})
		}
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}

		byID := activity.Index(s.Plan.Activities())
		path := make([]criticalEntry, 0, len(s.Result.CriticalPath))
		for _, id := range s.Result.CriticalPath {
			a := byID[id]
			path = append(path, criticalEntry{ID: a.ID, Name: a.Name, Duration: a.Duration})
		}
		return c.JSON(path)
	})

	app.Get("/schedules/:id/rows", func(c fiber.Ctx) error {
		s, err := store.GetSchedule(c.Context(), c.Params("id"))
		if errors.Is(err, schedstore.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "schedule not found"})
		}
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}

		cal, err := s.Plan.Calendar(time.Now())
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		if start := c.Query("start"); start != "" {
			t, err := time.Parse("2006-01-02", start)
			if err != nil {
				return c.Status(400).JSON(fiber.Map{"error": "invalid start date, want YYYY-MM-DD"})
			}
			cal.Start = t
		}
		switch c.Query("weekends") {
		case "":
		case "skip":
			cal.SkipWeekends = true
		case "work":
			cal.SkipWeekends = false
		default:
			return c.Status(400).JSON(fiber.Map{"error": "invalid weekends mode, want skip or work"})
		}

		return c.JSON(export.Rows(s.Plan.Activities(), s.Result, cal))
	})

	// ── Validation ────────────────────────────────────────────────────
	app.Post("/validate", func(c fiber.Ctx) error {
		var p plan.Plan
		if err := c.Bind().JSON(&p); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}

		acts := p.Activities()
		problems := activity.Messages(activity.Validate(acts))
		if problems == nil {
			problems = []string{}
		}
		cycle := activity.DetectCycles(acts)
		return c.JSON(fiber.Map{
			"valid":    len(problems) == 0 && !cycle,
			"problems": problems,
			"cycle":    cycle,
		})
	})

	return app
}

// computeError maps scheduling failures onto HTTP statuses: bad input is
// 422 with the full problem list, anything else is 500.
func computeError(c fiber.Ctx, err error) error {
	var vf *cpm.ValidationFailure
	if errors.As(err, &vf) {
		return c.Status(422).JSON(fiber.Map{
			"error":    "validation failed",
			"problems": activity.Messages(vf.Errs),
		})
	}
	if errors.Is(err, cpm.ErrCycle) {
		return c.Status(422).JSON(fiber.Map{"error": "cycle detected"})
	}
	return c.Status(500).JSON(fiber.Map{"error": err.Error()})
}
