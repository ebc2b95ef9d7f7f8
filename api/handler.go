package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/inference-sim/cpusched/config"
	"github.com/inference-sim/cpusched/sim"
	"github.com/inference-sim/cpusched/sim/trace"
	"github.com/inference-sim/cpusched/sim/workload"
)

// ScheduleRequest is the JSON body of every scheduling endpoint. Omitted
// parameters fall back to the server configuration.
type ScheduleRequest struct {
	Processes     []sim.Process `json:"processes"`
	ContextSwitch *int64        `json:"context_switch"`
	Quantum       *int64        `json:"quantum"`
	ThroughputAt  *int64        `json:"throughput_at"`
	Trace         bool          `json:"trace"`
}

// SchedulerHandler serves one endpoint per policy plus one running them all.
type SchedulerHandler struct {
	config *config.ServerConfig
}

func NewSchedulerHandler(cfg *config.ServerConfig) *SchedulerHandler {
	return &SchedulerHandler{config: cfg}
}

func (h *SchedulerHandler) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return h.schedule(ctx, sim.PolicyFCFS)
}

func (h *SchedulerHandler) ShortestJobFirst(ctx *fiber.Ctx) error {
	return h.schedule(ctx, sim.PolicySJF)
}

func (h *SchedulerHandler) RoundRobin(ctx *fiber.Ctx) error {
	return h.schedule(ctx, sim.PolicyRoundRobin)
}

func (h *SchedulerHandler) AllAlgorithms(ctx *fiber.Ctx) error {
	return h.schedule(ctx, "")
}

// schedule runs policy, or every policy when it is empty, over the request body.
func (h *SchedulerHandler) schedule(ctx *fiber.Ctx, policy string) error {
	var request ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
	}

	sc := h.scenario(&request, policy)
	if err := sc.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	level := trace.TraceLevelNone
	if request.Trace {
		level = trace.TraceLevelDecisions
	}
	report, err := sc.Simulate(ctx.UserContext(), level)
	if err != nil {
		if isInputError(err) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		logrus.Errorf("scheduling %d processes: %v", len(request.Processes), err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
	}
	return ctx.JSON(report)
}

// isInputError reports whether err rejects the request's processes rather
// than signalling a server fault.
func isInputError(err error) bool {
	return errors.Is(err, sim.ErrInvalidBurst) ||
		errors.Is(err, sim.ErrInvalidArrival) ||
		errors.Is(err, sim.ErrClockOverflow)
}

func (h *SchedulerHandler) scenario(request *ScheduleRequest, policy string) *workload.Scenario {
	sc := &workload.Scenario{
		Name:          "request",
		ContextSwitch: h.config.ContextSwitch,
		Quantum:       h.config.Quantum,
		ThroughputAt:  h.config.ThroughputAt,
		MaxSegments:   h.config.MaxSegments,
		Processes:     request.Processes,
	}
	if policy != "" {
		sc.Name = policy
		sc.Policies = []string{policy}
	}
	if request.ContextSwitch != nil {
		sc.ContextSwitch = *request.ContextSwitch
	}
	if request.Quantum != nil {
		sc.Quantum = *request.Quantum
	}
	if request.ThroughputAt != nil {
		sc.ThroughputAt = request.ThroughputAt
	}
	return sc
}

// NewApp builds the fiber application with the scheduling routes under /api/v1.
func NewApp(cfg *config.ServerConfig) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	handler := NewSchedulerHandler(cfg)

	v1 := app.Group("/api").Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/all", handler.AllAlgorithms)
	}
	return app
}
