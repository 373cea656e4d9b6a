package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"elevhtn/internal/domain"
	"elevhtn/internal/protocol/solve"
)

// maxErrorBody bounds how much of a failed response is quoted in errors.
const maxErrorBody = 512

// Span and attribute names recorded around each planner call.
const (
	SpanSolve     = "elevhtn.planner.solve"
	AttrRequestID = "elevhtn.request.id"
	AttrProblem   = "elevhtn.problem.name"
	AttrPlanSteps = "elevhtn.plan.steps"
)

type HTTP struct {
	Base   string
	HTTP   *http.Client
	Tracer trace.Tracer
}

// NewHTTP returns a client for the planner at base. A nil hc uses
// http.DefaultClient. Spans go to the global tracer provider until Tracer is
// replaced.
func NewHTTP(base string, hc *http.Client) *HTTP {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &HTTP{
		Base:   strings.TrimRight(base, "/"),
		HTTP:   hc,
		Tracer: otel.Tracer("elevhtn/planner"),
	}
}

// Solve posts problem to the planner and returns the solved plan.
func (c *HTTP) Solve(ctx context.Context, id domain.RequestID, problem domain.Problem) ([]domain.GroundAction, error) {
	tracer := c.Tracer
	if tracer == nil {
		tracer = otel.Tracer("elevhtn/planner")
	}
	ctx, span := tracer.Start(ctx, SpanSolve, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String(AttrRequestID, string(id)),
		attribute.String(AttrProblem, problem.Name),
	)

	plan, err := c.solve(ctx, id, problem)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int(AttrPlanSteps, len(plan)))
	span.SetStatus(codes.Ok, "")
	return plan, nil
}

func (c *HTTP) solve(ctx context.Context, id domain.RequestID, problem domain.Problem) ([]domain.GroundAction, error) {
	if c.Base == "" {
		return nil, fmt.Errorf("planner: %w: no planner URL configured", domain.ErrPlannerFailure)
	}
	var resp solve.Response
	if err := c.post(ctx, solve.Path, solve.Request{RequestID: id, Problem: problem}, &resp); err != nil {
		return nil, fmt.Errorf("planner: %w: %w", domain.ErrPlannerFailure, err)
	}
	return resp.Result(id)
}

func (c *HTTP) post(ctx context.Context, path string, in any, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		if msg := strings.TrimSpace(string(body)); msg != "" {
			return fmt.Errorf("post %s: %s: %s", path, resp.Status, msg)
		}
		return fmt.Errorf("post %s: %s", path, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("post %s: decode response: %w", path, err)
	}
	return nil
}

var _ domain.Planner = (*HTTP)(nil)
